package screens

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Rorical/RoriShell/ui/components"
)

type tab struct {
	icon string
	page Screen
}

type TabsKeyMap struct {
	Next key.Binding
	Prev key.Binding
	Jump key.Binding
}

var DefaultTabsKeyMap = TabsKeyMap{
	Next: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
	Prev: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous tab")),
	Jump: key.NewBinding(key.WithKeys("1", "2", "3"), key.WithHelp("1-3", "go to tab")),
}

// Tabs is the tab navigator holding Home, Explore and Profile.
type Tabs struct {
	d      Deps
	tabs   []tab
	active int

	barY   int
	barHit []components.Rect

	Keys TabsKeyMap
}

func NewTabs(d Deps) *Tabs {
	return &Tabs{
		d: d,
		tabs: []tab{
			{icon: "⌂", page: NewHome(d)},
			{icon: "◎", page: NewExplore(d)},
			{icon: "☺", page: NewProfile(d)},
		},
		Keys: DefaultTabsKeyMap,
	}
}

func (t *Tabs) Title() string {
	return t.tabs[t.active].page.Title()
}

func (t *Tabs) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(t.tabs))
	for _, tb := range t.tabs {
		cmds = append(cmds, tb.page.Init())
	}
	return tea.Batch(cmds...)
}

func (t *Tabs) Active() int {
	return t.active
}

// Page returns the screen behind tab i.
func (t *Tabs) Page(i int) Screen {
	return t.tabs[i].page
}

// Select switches to tab i.
func (t *Tabs) Select(i int) tea.Cmd {
	if i < 0 || i >= len(t.tabs) || i == t.active {
		return nil
	}
	var cmd tea.Cmd
	// Leaving a tab closes its open rows.
	if r, ok := t.tabs[t.active].page.(interface{ Reset() tea.Cmd }); ok {
		cmd = r.Reset()
	}
	t.active = i
	return cmd
}

func (t *Tabs) Capturing() bool {
	c, ok := t.tabs[t.active].page.(Capturer)
	return ok && c.Capturing()
}

func (t *Tabs) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, t.Keys.Next):
			return t.Select((t.active + 1) % len(t.tabs))
		case key.Matches(msg, t.Keys.Prev):
			return t.Select((t.active + len(t.tabs) - 1) % len(t.tabs))
		case key.Matches(msg, t.Keys.Jump):
			return t.Select(int(msg.Runes[0] - '1'))
		}
		return t.tabs[t.active].page.Update(msg)
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			for i, r := range t.barHit {
				if r.Offset(0, t.barY).Contains(msg.X, msg.Y) {
					return t.Select(i)
				}
			}
		}
		return t.tabs[t.active].page.Update(msg)
	}

	// Everything else, animation frames included, goes to every page so a
	// page keeps animating after it loses focus.
	cmds := make([]tea.Cmd, 0, len(t.tabs))
	for _, tb := range t.tabs {
		cmds = append(cmds, tb.page.Update(msg))
	}
	return tea.Batch(cmds...)
}

func (t *Tabs) View(width, height int) string {
	p := t.d.palette()
	views := make([]components.TabView, len(t.tabs))
	for i, tb := range t.tabs {
		views[i] = components.TabView{Icon: tb.icon, Title: tb.page.Title()}
	}
	bar, hits := components.RenderTabBar(p, views, t.active, width)
	barH := components.Height(bar)
	bodyH := max(height-barH, 1)

	body := components.Canvas(t.tabs[t.active].page.View(width, bodyH), width, bodyH)
	t.barY = bodyH
	t.barHit = hits
	return lipgloss.JoinVertical(lipgloss.Left, body, bar)
}
