package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Rorical/RoriShell/internal/theme"
	"github.com/Rorical/RoriShell/ui/styles"
)

// RenderInput frames an already rendered text field with its label.
func RenderInput(p theme.Palette, label, field string, width int, focused bool) string {
	labelStyle := styles.SubtitleStyle(p)
	if focused {
		labelStyle = styles.AccentStyle(p)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		labelStyle.Render(label),
		styles.InputStyle(p, width, focused).Render(field),
	)
}
