package app

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/Rorical/RoriShell/internal/auth"
	"github.com/Rorical/RoriShell/internal/config"
	"github.com/Rorical/RoriShell/internal/dispatcher"
	"github.com/Rorical/RoriShell/internal/eventbus"
	"github.com/Rorical/RoriShell/internal/models"
	"github.com/Rorical/RoriShell/internal/notify"
	"github.com/Rorical/RoriShell/internal/router"
	"github.com/Rorical/RoriShell/internal/screens"
	"github.com/Rorical/RoriShell/internal/store"
	"github.com/Rorical/RoriShell/internal/theme"
)

func newTestModel(t *testing.T, initial string) (*Model, *eventbus.EventBus) {
	t.Helper()
	dir := t.TempDir()
	cfg, err := config.Load(filepath.Join(dir, "config.json"))
	require.NoError(t, err)

	st, err := store.OpenInDir(dir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	bus := eventbus.NewEventBus()
	t.Cleanup(bus.Close)
	disp := dispatcher.NewEventDispatcher(bus)
	t.Cleanup(disp.Stop)

	center := notify.NewCenter(bus)
	provider := notify.NewProvider()
	center.Attach(provider)

	deps := screens.Deps{
		Config: cfg,
		Theme:  theme.NewResolver(st, theme.Light),
		Auth:   auth.New(st, auth.WithLatency(0)),
		Center: center,
		App:    &models.AppModel{Route: initial, Status: "Ready", AppName: cfg.Current().AppName},
	}
	m := NewModel(deps, provider, disp, router.New(initial))
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 30})
	return m, bus
}

func TestModelNavigation(t *testing.T) {
	m, _ := newTestModel(t, router.Tabs)
	_, ok := m.Screen().(*screens.Tabs)
	require.True(t, ok)

	m.Update(router.NavigateMsg{Op: router.OpPush, Path: router.Trade})
	require.Len(t, m.stack, 2)
	require.Equal(t, router.Trade, m.deps.App.Route)
	_, ok = m.Screen().(*screens.Trade)
	require.True(t, ok)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	nav, ok := cmd().(router.NavigateMsg)
	require.True(t, ok)
	require.Equal(t, router.OpBack, nav.Op)

	m.Update(nav)
	require.Len(t, m.stack, 1)
	require.Equal(t, router.Tabs, m.deps.App.Route)

	m.Update(router.NavigateMsg{Op: router.OpReplace, Path: router.Login})
	require.Len(t, m.stack, 1)
	_, ok = m.Screen().(*screens.Login)
	require.True(t, ok)
	require.Equal(t, 1, m.router.Depth())
}

func TestModelBackAtRootIsIgnored(t *testing.T) {
	m, _ := newTestModel(t, router.Tabs)
	m.Update(router.NavigateMsg{Op: router.OpBack})
	require.Len(t, m.stack, 1)
	require.Equal(t, router.Tabs, m.router.Current())
}

func TestModelUnknownRouteSetsError(t *testing.T) {
	m, _ := newTestModel(t, router.Tabs)
	m.Update(router.NavigateMsg{Op: router.OpPush, Path: "/nowhere"})
	require.Len(t, m.stack, 1)
	require.True(t, m.deps.App.StatusErr)
	require.Contains(t, m.deps.App.Status, `"/nowhere"`)
	require.Equal(t, router.Tabs, m.deps.App.Route)
}

func TestModelDeliversRequests(t *testing.T) {
	m, bus := newTestModel(t, router.Tabs)
	require.NoError(t, m.deps.Center.Alert("Hello", "World"))

	req := <-bus.Requests()
	_, cmd := m.Update(dispatcher.RequestMsg{Request: req})
	require.NotNil(t, cmd)
	require.Equal(t, notify.PhasePending, m.provider.AlertPhase())

	require.Len(t, m.deps.App.Messages, 1)
	require.Equal(t, models.Alert, m.deps.App.Messages[0].Type)
}

func TestModelCtrlCQuits(t *testing.T) {
	m, _ := newTestModel(t, router.Tabs)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModelView(t *testing.T) {
	m, _ := newTestModel(t, router.Tabs)
	view := m.View()
	require.Contains(t, view, "StickerSmash")
	require.Contains(t, view, "Ready")
}
