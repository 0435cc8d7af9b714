package screens

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Rorical/RoriShell/internal/config"
	"github.com/Rorical/RoriShell/internal/router"
	"github.com/Rorical/RoriShell/ui/components"
	"github.com/Rorical/RoriShell/ui/styles"
)

type quickAction struct {
	icon    string
	title   string
	path    string
	feature config.Feature // empty means always available
}

var quickActions = []quickAction{
	{icon: "⇄", title: "Trade", path: router.Trade, feature: config.FeatureTrading},
	{icon: "📈", title: "Charts", path: router.Chart, feature: config.FeatureAnalytics},
	{icon: "?", title: "Help & Support", path: router.Help},
}

// Home is the first tab: a welcome card and quick actions.
type Home struct {
	d      Deps
	cursor int
	rows   []components.Rect
}

func NewHome(d Deps) *Home {
	return &Home{d: d}
}

func (h *Home) Title() string { return "Home" }

func (h *Home) Init() tea.Cmd { return nil }

// actions lists the quick actions the active client allows.
func (h *Home) actions() []quickAction {
	out := make([]quickAction, 0, len(quickActions))
	for _, a := range quickActions {
		if a.feature == "" || h.d.Config.IsFeatureEnabled(a.feature) {
			out = append(out, a)
		}
	}
	return out
}

func (h *Home) Update(msg tea.Msg) tea.Cmd {
	actions := h.actions()
	if len(actions) == 0 {
		return nil
	}
	h.cursor = min(h.cursor, len(actions)-1)
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, listKeys.Up):
			h.cursor = max(h.cursor-1, 0)
		case key.Matches(msg, listKeys.Down):
			h.cursor = min(h.cursor+1, len(actions)-1)
		case key.Matches(msg, listKeys.Press):
			return router.PushCmd(actions[h.cursor].path)
		}
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return nil
		}
		for i, r := range h.rows {
			if i < len(actions) && r.Contains(msg.X, msg.Y) {
				h.cursor = i
				return router.PushCmd(actions[i].path)
			}
		}
	}
	return nil
}

func (h *Home) View(width, height int) string {
	p := h.d.palette()
	client := h.d.client()

	greeting := "Welcome to " + client.AppName + "!"
	if name := h.d.App.UserName(); name != "" {
		greeting = "Welcome back, " + name + "!"
	}
	card := styles.CardStyle(p, max(width-4, 20)).Render(lipgloss.JoinVertical(lipgloss.Left,
		styles.TitleStyle(p).Render(greeting),
		styles.SubtitleStyle(p).Render("Welcome to "+client.AppName+". Pick a quick action below."),
	))

	header := lipgloss.JoinVertical(lipgloss.Left, card, "", styles.AccentStyle(p).Render("Quick actions"))
	top := components.Height(header)

	actions := h.actions()
	lines := make([]string, len(actions))
	h.rows = make([]components.Rect, len(actions))
	for i, a := range actions {
		marker := "  "
		style := lipgloss.NewStyle().Foreground(p.Text)
		if i == h.cursor {
			marker = "› "
			style = style.Foreground(p.SelectedButton).Bold(true)
		}
		lines[i] = style.Render(marker + a.icon + "  " + a.title)
		h.rows[i] = components.Rect{X: 0, Y: top + i, W: width, H: 1}
	}
	if len(actions) == 0 {
		lines = []string{styles.SubtitleStyle(p).Render("No actions are enabled for this client.")}
	}
	return header + "\n" + strings.Join(lines, "\n")
}
