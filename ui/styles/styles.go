package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Rorical/RoriShell/internal/theme"
)

func InputStyle(p theme.Palette, width int, focused bool) lipgloss.Style {
	border := p.InputBorder
	if focused {
		border = p.SelectedButton
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Foreground(p.Text).
		Padding(0, 1).
		Width(max(width-4, 10))
}

func StatusStyle(p theme.Palette, width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(p.SecondaryText).
		Background(p.HeaderBackground).
		Padding(0, 1).
		Width(width)
}

func HeaderStyle(p theme.Palette, width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(p.Text).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(p.HeaderBorder).
		Padding(0, 1).
		Width(width)
}

func TitleStyle(p theme.Palette) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(p.Text).
		Bold(true)
}

func SubtitleStyle(p theme.Palette) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(p.SecondaryText)
}

func AccentStyle(p theme.Palette) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(p.SelectedButton).
		Bold(true)
}

func ErrorStyle(p theme.Palette) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(p.ErrorText)
}

func CardStyle(p theme.Palette, width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Foreground(p.Text).
		Padding(0, 1).
		Width(width)
}

func ButtonStyle(p theme.Palette, selected bool) lipgloss.Style {
	s := lipgloss.NewStyle().
		Padding(0, 2).
		Foreground(p.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.ButtonBorder)
	if selected {
		s = s.Foreground(p.SelectedButtonText).
			Background(p.SelectedButton).
			BorderForeground(p.SelectedButton)
	}
	return s
}
