package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/Rorical/RoriShell/internal/theme"
)

// MenuRow is everything needed to draw one swipeable row.
type MenuRow struct {
	Icon     string
	Title    string
	Subtitle string
	Logout   bool
	Selected bool
	// ShiftCols is how far the row content is pushed left.
	ShiftCols int
	Open      bool
	// ActionCols is the width of the revealed action button.
	ActionCols int
	Width      int
}

// ActionLabel is the text on a row's revealed action.
func ActionLabel(logout bool) string {
	if logout {
		return "⏻ Logout"
	}
	return "✕ Delete"
}

func RenderMenuRow(p theme.Palette, r MenuRow) string {
	width := max(r.Width, 8)

	iconColor := p.SelectedButton
	if r.Logout {
		iconColor = p.ErrorText
	}
	marker := " "
	if r.Selected {
		marker = lipgloss.NewStyle().Foreground(p.SelectedButton).Render("▌")
	}
	body := marker + " " +
		lipgloss.NewStyle().Foreground(iconColor).Render(r.Icon) + "  " +
		lipgloss.NewStyle().Foreground(p.Text).Render(r.Title)
	if r.Subtitle != "" {
		body += "  " + lipgloss.NewStyle().Foreground(p.SecondaryText).Render(r.Subtitle)
	}
	chevron := lipgloss.NewStyle().Foreground(p.SecondaryText).Render("›") + " "
	if gap := width - ansi.StringWidth(body) - ansi.StringWidth(chevron); gap > 0 {
		body += strings.Repeat(" ", gap)
	}
	line := padRight(body+chevron, width)

	shift := min(max(r.ShiftCols, 0), width)
	content := dropColumns(line, shift)

	// The action sits behind the row and shows through the columns the row
	// has moved away from.
	actionCols := min(max(r.ActionCols, 1), width)
	visible := min(shift, actionCols)
	if r.Open {
		visible = actionCols
	}
	if visible == 0 {
		return padRight(content, width)
	}

	bg := p.ErrorText
	if r.Logout {
		bg = p.WarningText
	}
	action := lipgloss.NewStyle().
		Background(bg).
		Foreground(lipgloss.Color("#ffffff")).
		Bold(true).
		Width(visible).
		Align(lipgloss.Center).
		Render(ansi.Truncate(ActionLabel(r.Logout), visible, ""))
	return padRight(content, width-visible) + ansi.Truncate(action, visible, "")
}
