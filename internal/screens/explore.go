package screens

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Rorical/RoriShell/internal/config"
	"github.com/Rorical/RoriShell/internal/notify"
	"github.com/Rorical/RoriShell/internal/router"
	"github.com/Rorical/RoriShell/ui/components"
	"github.com/Rorical/RoriShell/ui/styles"
)

type feature struct {
	icon        string
	title       string
	description string
	path        string         // pushed directly when set
	gate        config.Feature // empty means always shown
	badge       string
}

var features = []feature{
	{icon: "◉", title: "Camera", description: "Take amazing photos"},
	{icon: "▦", title: "Gallery", description: "Browse your photos"},
	{icon: "↗", title: "Trading Charts", description: "View real-time market data", path: router.Chart, gate: config.FeatureAnalytics, badge: "NEW"},
	{icon: "✎", title: "Edit", description: "Enhance your images"},
	{icon: "⇪", title: "Share", description: "Share with friends"},
	{icon: "▤", title: "Analytics", description: "Track your performance", gate: config.FeatureAnalytics},
}

var galleryPhotos = []string{"Happy Face", "Cool Face", "Wink Face", "Love Face", "Laugh Face", "Surprise Face"}

// Explore is the feature catalogue.
type Explore struct {
	d      Deps
	cursor int
	rows   []components.Rect
}

func NewExplore(d Deps) *Explore {
	return &Explore{d: d}
}

func (e *Explore) Title() string { return "Explore" }

func (e *Explore) Init() tea.Cmd { return nil }

// Features lists the cards the active client allows.
func (e *Explore) Features() []string {
	var out []string
	for _, f := range e.visible() {
		out = append(out, f.title)
	}
	return out
}

func (e *Explore) visible() []feature {
	out := make([]feature, 0, len(features))
	for _, f := range features {
		if f.gate == "" || e.d.Config.IsFeatureEnabled(f.gate) {
			out = append(out, f)
		}
	}
	return out
}

func (e *Explore) Update(msg tea.Msg) tea.Cmd {
	visible := e.visible()
	if len(visible) == 0 {
		return nil
	}
	e.cursor = min(e.cursor, len(visible)-1)
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, listKeys.Up):
			e.cursor = max(e.cursor-1, 0)
		case key.Matches(msg, listKeys.Down):
			e.cursor = min(e.cursor+1, len(visible)-1)
		case key.Matches(msg, listKeys.Press):
			return e.open(visible[e.cursor])
		}
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return nil
		}
		for i, r := range e.rows {
			if i < len(visible) && r.Contains(msg.X, msg.Y) {
				e.cursor = i
				return e.open(visible[i])
			}
		}
	}
	return nil
}

func (e *Explore) open(f feature) tea.Cmd {
	if f.path != "" {
		return router.PushCmd(f.path)
	}
	if f.title == "Gallery" {
		e.gallery()
		return nil
	}
	e.d.sheet(notify.SheetConfig{
		Title:   f.title,
		Message: f.description,
		Buttons: []notify.Button{
			{Text: "Open", OnPress: func() tea.Cmd {
				e.d.toast(notify.ToastInfo, f.title+" is coming soon")
				return nil
			}},
			{Text: "Share", OnPress: func() tea.Cmd {
				e.d.toast(notify.ToastSuccess, "Shared "+f.title)
				return nil
			}},
			{Text: "Cancel", Style: notify.StyleCancel},
		},
	})
	return nil
}

func (e *Explore) gallery() {
	buttons := make([]notify.Button, 0, len(galleryPhotos)+1)
	for _, title := range galleryPhotos {
		buttons = append(buttons, notify.Button{Text: title, OnPress: func() tea.Cmd {
			e.d.toast(notify.ToastInfo, "Previewing "+title)
			return nil
		}})
	}
	buttons = append(buttons, notify.Button{Text: "Close", Style: notify.StyleCancel})
	e.d.sheet(notify.SheetConfig{
		Title:   "Gallery",
		Message: fmt.Sprintf("%d photos", len(galleryPhotos)),
		Buttons: buttons,
	})
}

func (e *Explore) View(width, height int) string {
	p := e.d.palette()
	header := lipgloss.JoinVertical(lipgloss.Left,
		styles.TitleStyle(p).Render("Explore Features"),
		styles.SubtitleStyle(p).Render("Discover what you can do"),
		"",
	)
	top := components.Height(header)

	visible := e.visible()
	lines := make([]string, len(visible))
	e.rows = make([]components.Rect, len(visible))
	for i, f := range visible {
		title := lipgloss.NewStyle().Foreground(p.Text).Bold(true)
		marker := "  "
		if i == e.cursor {
			marker = "› "
			title = title.Foreground(p.SelectedButton)
		}
		line := marker + lipgloss.NewStyle().Foreground(p.SelectedButton).Render(f.icon) + "  " +
			title.Render(f.title) + "  " + styles.SubtitleStyle(p).Render(f.description)
		if f.badge != "" {
			line += "  " + lipgloss.NewStyle().
				Background(p.SelectedButton).
				Foreground(p.SelectedButtonText).
				Padding(0, 1).
				Render(f.badge)
		}
		lines[i] = line
		e.rows[i] = components.Rect{X: 0, Y: top + i, W: width, H: 1}
	}
	return header + "\n" + strings.Join(lines, "\n")
}
