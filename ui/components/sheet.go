package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Rorical/RoriShell/internal/theme"
)

// RenderActionSheet draws a bottom sheet. Buttons with the cancel style are
// moved into a detached section under the main group. Hit boxes are relative
// to the sheet and follow the order of buttons.
func RenderActionSheet(p theme.Palette, title, message string, buttons []ButtonView, selected, width int) (string, []Rect) {
	sheetWidth := min(max(width-4, 20), 60)
	inner := sheetWidth - 2

	var main, cancel []int
	for i, b := range buttons {
		if b.Style == ButtonCancel {
			cancel = append(cancel, i)
		} else {
			main = append(main, i)
		}
	}

	row := func(i int) string {
		b := buttons[i]
		s := lipgloss.NewStyle().Width(inner).Align(lipgloss.Center).Foreground(p.SelectedButton)
		switch b.Style {
		case ButtonDestructive:
			s = s.Foreground(lipgloss.Color("#FF3B30"))
		case ButtonCancel:
			s = s.Bold(true)
		}
		if i == selected {
			s = s.Background(p.IndicatorBox).Bold(true)
		}
		return s.Render(b.Text)
	}

	rects := make([]Rect, len(buttons))
	var lines []string
	if title != "" {
		lines = append(lines, strings.Split(lipgloss.NewStyle().Width(inner).Align(lipgloss.Center).
			Bold(true).Foreground(p.SecondaryText).Render(title), "\n")...)
	}
	if message != "" {
		lines = append(lines, strings.Split(lipgloss.NewStyle().Width(inner).Align(lipgloss.Center).
			Foreground(p.SecondaryText).Render(message), "\n")...)
	}
	if len(lines) > 0 {
		lines = append(lines, lipgloss.NewStyle().Foreground(p.Border).Render(strings.Repeat("─", inner)))
	}
	for _, i := range main {
		rects[i] = Rect{X: 1, Y: 1 + len(lines), W: inner, H: 1}
		lines = append(lines, row(i))
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Background(p.CardBackground)
	sheet := box.Render(strings.Join(lines, "\n"))

	if len(cancel) > 0 {
		top := lipgloss.Height(sheet) + 1
		cancelLines := make([]string, 0, len(cancel))
		for n, i := range cancel {
			rects[i] = Rect{X: 1, Y: top + 1 + n, W: inner, H: 1}
			cancelLines = append(cancelLines, row(i))
		}
		sheet = sheet + "\n\n" + box.Render(strings.Join(cancelLines, "\n"))
	}
	return sheet, rects
}
