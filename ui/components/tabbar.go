package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Rorical/RoriShell/internal/theme"
)

type TabView struct {
	Icon  string
	Title string
}

// RenderTabBar draws the bottom tab bar and returns one hit box per tab,
// relative to the bar.
func RenderTabBar(p theme.Palette, tabs []TabView, active, width int) (string, []Rect) {
	if len(tabs) == 0 {
		return "", nil
	}
	cell := max(width/len(tabs), 1)
	cells := make([]string, len(tabs))
	rects := make([]Rect, len(tabs))
	for i, t := range tabs {
		s := lipgloss.NewStyle().
			Width(cell).
			Align(lipgloss.Center).
			Foreground(p.TabBarInactive)
		if i == active {
			s = s.Foreground(p.TabBarActive).Bold(true)
		}
		cells[i] = s.Render(t.Icon + " " + t.Title)
		rects[i] = Rect{X: i * cell, Y: 1, W: cell, H: 1}
	}
	bar := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), true, false, false, false).
		BorderForeground(p.Border).
		Render(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	return bar, rects
}
