package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Rorical/RoriShell/internal/theme"
	"github.com/Rorical/RoriShell/ui/styles"
)

type DropdownView struct {
	Label       string
	Value       string
	Placeholder string
	Options     []string
	Open        bool
	Cursor      int
	Focused     bool
	Width       int
}

func RenderDropdown(p theme.Palette, d DropdownView) string {
	value := d.Value
	valueStyle := lipgloss.NewStyle().Foreground(p.Text)
	if value == "" {
		value = d.Placeholder
		valueStyle = valueStyle.Foreground(p.SecondaryText)
	}
	arrow := "▾"
	if d.Open {
		arrow = "▴"
	}
	field := valueStyle.Render(value) + "  " + lipgloss.NewStyle().Foreground(p.SecondaryText).Render(arrow)
	out := RenderInput(p, d.Label, field, d.Width, d.Focused)
	if !d.Open {
		return out
	}
	opts := make([]string, 0, len(d.Options))
	for i, o := range d.Options {
		s := lipgloss.NewStyle().Foreground(p.Text).Padding(0, 1)
		if i == d.Cursor {
			s = s.Foreground(p.SelectedButtonText).Background(p.SelectedButton)
		}
		opts = append(opts, s.Render(o))
	}
	list := styles.CardStyle(p, max(d.Width-4, 10)).Render(strings.Join(opts, "\n"))
	return lipgloss.JoinVertical(lipgloss.Left, out, list)
}
