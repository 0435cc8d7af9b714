package app

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Rorical/RoriShell/internal/dispatcher"
	"github.com/Rorical/RoriShell/internal/notify"
	"github.com/Rorical/RoriShell/internal/router"
	"github.com/Rorical/RoriShell/internal/screens"
	"github.com/Rorical/RoriShell/internal/update"
	"github.com/Rorical/RoriShell/ui/components"
	"github.com/Rorical/RoriShell/ui/styles"
)

// headerHeight is the title line plus its bottom border.
const headerHeight = 2

// Model is the root Bubble Tea model: a header, the screen stack kept in step
// with the router, a status line and the notification layer on top.
type Model struct {
	deps       screens.Deps
	provider   *notify.Provider
	dispatcher *dispatcher.EventDispatcher
	router     *router.Router
	stack      []screens.Screen
}

func NewModel(deps screens.Deps, provider *notify.Provider, disp *dispatcher.EventDispatcher, r *router.Router) *Model {
	return &Model{
		deps:       deps,
		provider:   provider,
		dispatcher: disp,
		router:     r,
		stack:      []screens.Screen{screens.New(r.Current(), deps)},
	}
}

// Screen is the mounted screen on top of the stack.
func (m *Model) Screen() screens.Screen {
	return m.stack[len(m.stack)-1]
}

func (m *Model) Router() *router.Router { return m.router }

func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		update.TickCmd(),
		m.dispatcher.Listen(),
		m.Screen().Init(),
	)
}

func (m *Model) capturing() bool {
	if m.provider.Capturing() {
		return true
	}
	c, ok := m.Screen().(screens.Capturer)
	return ok && c.Capturing()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	app := m.deps.App
	switch msg := msg.(type) {
	case dispatcher.RequestMsg:
		// Handle the request and continue listening
		update.HandleUpdate(app, msg, m.router, false)
		_, cmd := m.provider.Update(msg.Request)
		return m, tea.Batch(cmd, m.dispatcher.Listen())
	case dispatcher.ClosedMsg:
		return m, nil
	case router.NavigateMsg:
		return m, m.navigate(msg)
	}

	cmd, handled := update.HandleUpdate(app, msg, m.router, m.capturing())
	if handled {
		return m, cmd
	}
	cmds := []tea.Cmd{cmd}

	if handled, pcmd := m.provider.Update(msg); handled {
		return m, tea.Batch(append(cmds, pcmd)...)
	}

	if mouse, ok := msg.(tea.MouseMsg); ok {
		mouse.Y -= headerHeight
		msg = mouse
	}
	cmds = append(cmds, m.Screen().Update(msg))
	return m, tea.Batch(cmds...)
}

// navigate moves the router and mounts or unmounts screens to match.
func (m *Model) navigate(msg router.NavigateMsg) tea.Cmd {
	changed, ok, err := m.router.Navigate(msg)
	if err != nil {
		slog.Warn("navigation failed", "op", msg.Op, "path", msg.Path, "err", err)
		m.deps.App.SetError(err)
		return nil
	}
	if !ok {
		return nil
	}

	var initCmd tea.Cmd
	switch msg.Op {
	case router.OpPush:
		m.stack = append(m.stack, screens.New(changed.Path, m.deps))
		initCmd = m.Screen().Init()
	case router.OpReplace:
		m.stack = []screens.Screen{screens.New(changed.Path, m.deps)}
		initCmd = m.Screen().Init()
	case router.OpBack:
		m.stack = m.stack[:len(m.stack)-1]
	}
	cmd, _ := update.HandleUpdate(m.deps.App, changed, m.router, false)
	return tea.Batch(cmd, initCmd)
}

func (m *Model) View() string {
	app := m.deps.App
	if app.Width == 0 {
		return ""
	}
	p := m.deps.Theme.Palette()

	title := m.Screen().Title()
	if app.AppName != "" {
		title += styles.SubtitleStyle(p).Render("  " + app.AppName)
	}
	header := styles.HeaderStyle(p, app.Width).Render(title)
	status := components.RenderStatus(p, app.Status, app.StatusErr, app.Loading, app.LoadingDots, app.Width)

	bodyHeight := max(app.Height-headerHeight-components.Height(status), 1)
	body := components.Canvas(m.Screen().View(app.Width, bodyHeight), app.Width, bodyHeight)

	base := lipgloss.JoinVertical(lipgloss.Left, header, body, status)
	return m.provider.View(base, app.Width, app.Height, p)
}
