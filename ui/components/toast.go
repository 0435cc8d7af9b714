package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

var toastColors = map[string]lipgloss.Color{
	"success": "#34C759",
	"error":   "#FF3B30",
	"warning": "#FF9500",
	"info":    "#007AFF",
}

var toastIcons = map[string]string{
	"success": "✔",
	"error":   "✖",
	"warning": "⚠",
	"info":    "ℹ",
}

// RenderToast draws a toast banner and returns the hit box of its close
// button relative to the banner.
func RenderToast(message, kind string, width int) (string, Rect) {
	bg, ok := toastColors[kind]
	if !ok {
		bg = toastColors["info"]
		kind = "info"
	}
	width = max(width, 16)
	inner := width - 4
	closeLabel := " × "
	textWidth := inner - 2 - ansi.StringWidth(closeLabel)

	text := lipgloss.NewStyle().Width(textWidth).Render(message)
	row := lipgloss.JoinHorizontal(lipgloss.Top,
		toastIcons[kind]+" ",
		text,
		closeLabel,
	)
	banner := lipgloss.NewStyle().
		Background(bg).
		Foreground(lipgloss.Color("#FFFFFF")).
		Bold(true).
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(bg).
		Render(row)

	// border + padding + icon + text
	closeX := 1 + 1 + 2 + textWidth
	return banner, Rect{X: closeX, Y: 1, W: ansi.StringWidth(closeLabel), H: 1}
}
