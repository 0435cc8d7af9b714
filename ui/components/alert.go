package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Rorical/RoriShell/internal/theme"
)

// Button styles shared by alerts and action sheets.
const (
	ButtonDefault     = "default"
	ButtonCancel      = "cancel"
	ButtonDestructive = "destructive"
)

type ButtonView struct {
	Text  string
	Style string
}

func alertButton(p theme.Palette, b ButtonView, selected bool) string {
	s := lipgloss.NewStyle().
		Padding(0, 2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.ButtonBorder).
		Foreground(p.Text)
	switch b.Style {
	case ButtonCancel:
		s = s.Foreground(p.SecondaryText).BorderForeground(p.Border)
	case ButtonDestructive:
		s = s.Foreground(lipgloss.Color("#FF3B30")).BorderForeground(lipgloss.Color("#FF3B30"))
	}
	if selected {
		s = s.Bold(true).BorderForeground(p.SelectedButton)
		if b.Style == ButtonDestructive {
			s = s.Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#FF3B30"))
		} else {
			s = s.Foreground(p.SelectedButtonText).Background(p.SelectedButton)
		}
	}
	return s.Render(b.Text)
}

// RenderAlert draws a centered alert card. Button hit boxes are relative to
// the card and follow the order of buttons. Cancel buttons are drawn first
// and set apart from the others by a divider.
func RenderAlert(p theme.Palette, title, message string, buttons []ButtonView, selected, width int, settled bool) (string, []Rect) {
	cardWidth := min(max(width*85/100, 24), 56)
	inner := cardWidth - 6 // border and horizontal padding

	titleColor := p.Text
	border := p.SelectedButton
	if !settled {
		titleColor = p.SecondaryText
		border = p.Border
	}

	var lines []string
	if title != "" {
		lines = append(lines, strings.Split(lipgloss.NewStyle().
			Width(inner).Align(lipgloss.Center).Bold(true).Foreground(titleColor).
			Render(title), "\n")...)
	}
	if message != "" {
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, strings.Split(lipgloss.NewStyle().
			Width(inner).Align(lipgloss.Center).Foreground(p.SecondaryText).
			Render(message), "\n")...)
	}
	if len(lines) > 0 {
		lines = append(lines, "")
	}

	order := make([]int, 0, len(buttons))
	for i, b := range buttons {
		if b.Style == ButtonCancel {
			order = append(order, i)
		}
	}
	cancelCount := len(order)
	for i, b := range buttons {
		if b.Style != ButtonCancel {
			order = append(order, i)
		}
	}

	rendered := make([]string, 0, len(order)+1)
	offsets := make([]int, len(buttons))
	x := 0
	for n, idx := range order {
		if n > 0 {
			gap := " "
			if n == cancelCount {
				gap = lipgloss.NewStyle().Foreground(p.Border).Render(" │ ")
			}
			rendered = append(rendered, gap)
			x += lipgloss.Width(gap)
		}
		btn := alertButton(p, buttons[idx], idx == selected)
		offsets[idx] = x
		rendered = append(rendered, btn)
		x += lipgloss.Width(btn)
	}
	row := lipgloss.JoinHorizontal(lipgloss.Center, rendered...)
	left := max((inner-lipgloss.Width(row))/2, 0)
	rowLines := strings.Split(row, "\n")
	for i := range rowLines {
		rowLines[i] = strings.Repeat(" ", left) + rowLines[i]
	}
	buttonTop := len(lines)
	lines = append(lines, rowLines...)

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(1, 2).
		Width(cardWidth - 2).
		Render(strings.Join(lines, "\n"))

	rects := make([]Rect, len(buttons))
	for i, b := range buttons {
		w := lipgloss.Width(alertButton(p, b, i == selected))
		// border(1) + padding top(1), border(1) + padding left(2)
		rects[i] = Rect{X: 3 + left + offsets[i], Y: 2 + buttonTop, W: w, H: 3}
	}
	return card, rects
}
