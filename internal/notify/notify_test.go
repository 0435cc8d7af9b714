package notify

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/Rorical/RoriShell/internal/eventbus"
	"github.com/Rorical/RoriShell/internal/theme"
)

var fast = Timing{Frame: time.Millisecond, Enter: 3 * time.Millisecond, Exit: 3 * time.Millisecond}

func newTestProvider() *Provider {
	return NewProvider(WithTiming(fast, fast, fast))
}

// drain runs cmd and everything it leads to, feeding each message to p.
func drain(t *testing.T, p *Provider, cmd tea.Cmd) {
	t.Helper()
	drainUntil(t, p, cmd, func() bool { return false })
}

// drainUntil is drain that stops as soon as done reports true, leaving any
// remaining timers unrun.
func drainUntil(t *testing.T, p *Provider, cmd tea.Cmd, done func() bool) {
	t.Helper()
	queue := []tea.Cmd{cmd}
	for steps := 0; len(queue) > 0 && !done(); steps++ {
		require.Less(t, steps, 10000, "commands never settled")
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}
		switch msg := c().(type) {
		case nil:
		case tea.BatchMsg:
			queue = append(queue, msg...)
		default:
			_, next := p.Update(msg)
			queue = append(queue, next)
		}
	}
}

// apply delivers the deferred show of cmd and returns the animation command.
func apply(t *testing.T, p *Provider, cmd tea.Cmd) tea.Cmd {
	t.Helper()
	require.NotNil(t, cmd)
	handled, next := p.Update(cmd())
	require.True(t, handled)
	return next
}

func TestToastVisibleWithinOneTickAndAutoHides(t *testing.T) {
	p := newTestProvider()
	hides := 0
	cmd := p.ShowToast(ToastConfig{
		Message:  "Saved",
		Type:     ToastSuccess,
		Duration: 20 * time.Millisecond,
		OnHide: func() tea.Cmd {
			hides++
			return nil
		},
	})
	require.Equal(t, PhasePending, p.ToastPhase(), "show is deferred")
	_, visible := p.Toast()
	require.False(t, visible)

	next := apply(t, p, cmd)
	cfg, visible := p.Toast()
	require.True(t, visible)
	require.Equal(t, "Saved", cfg.Message)

	start := time.Now()
	drain(t, p, next)
	require.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
	require.Equal(t, PhaseHidden, p.ToastPhase())
	require.Equal(t, 1, hides)
}

func TestToastDefaults(t *testing.T) {
	cfg := ToastConfig{Message: "x", Type: "bogus"}.normalized()
	require.Equal(t, ToastInfo, cfg.Type)
	require.Equal(t, ToastTop, cfg.Position)
	require.Equal(t, DefaultToastDuration, cfg.holdFor())
}

func TestAlertButtonInvokesCallbackOnce(t *testing.T) {
	p := newTestProvider()
	var ok, cancel int
	cmd := p.ShowAlert(AlertConfig{
		Title:   "T",
		Message: "M",
		Buttons: []Button{
			{Text: "Cancel", Style: StyleCancel, OnPress: func() tea.Cmd { cancel++; return nil }},
			{Text: "OK", OnPress: func() tea.Cmd { ok++; return nil }},
		},
	})
	drain(t, p, apply(t, p, cmd))
	require.Equal(t, PhaseShown, p.AlertPhase())

	hide := p.PressAlertButton(1)
	require.Equal(t, 1, ok)
	require.Nil(t, p.PressAlertButton(1), "an exiting alert ignores presses")
	drain(t, p, hide)

	require.Equal(t, PhaseHidden, p.AlertPhase())
	require.Equal(t, 1, ok)
	require.Zero(t, cancel)
}

func TestHideSkipsButtonCallbacks(t *testing.T) {
	p := newTestProvider()
	called := false
	hidden := 0
	cmd := p.ShowAlert(AlertConfig{
		Title:   "T",
		Buttons: []Button{{Text: "OK", OnPress: func() tea.Cmd { called = true; return nil }}},
		OnHide:  func() tea.Cmd { hidden++; return nil },
	})
	drain(t, p, apply(t, p, cmd))
	drain(t, p, p.HideAlert())

	require.Equal(t, PhaseHidden, p.AlertPhase())
	require.False(t, called)
	require.Equal(t, 1, hidden)
}

func TestEmptyButtonsDefaultToOK(t *testing.T) {
	p := newTestProvider()
	apply(t, p, p.ShowAlert(AlertConfig{Title: "Hello"}))
	cfg, visible := p.Alert()
	require.True(t, visible)
	require.Len(t, cfg.Buttons, 1)
	require.Equal(t, "OK", cfg.Buttons[0].Text)
}

func TestLastWriteWins(t *testing.T) {
	p := newTestProvider()
	firstHidden := 0
	first := p.ShowToast(ToastConfig{Message: "first", OnHide: func() tea.Cmd { firstHidden++; return nil }})
	second := p.ShowToast(ToastConfig{Message: "second", Duration: 5 * time.Millisecond})

	handled, cmd := p.Update(first())
	require.True(t, handled)
	require.Nil(t, cmd, "superseded show does nothing")
	require.Equal(t, PhasePending, p.ToastPhase())

	drain(t, p, apply(t, p, second))
	require.Zero(t, firstHidden, "the first toast was never shown")
}

func TestShowWhileVisibleReplaces(t *testing.T) {
	p := newTestProvider()
	drain(t, p, apply(t, p, p.ShowAlert(AlertConfig{Title: "one"})))
	apply(t, p, p.ShowAlert(AlertConfig{Title: "two"}))

	cfg, visible := p.Alert()
	require.True(t, visible)
	require.Equal(t, "two", cfg.Title)
}

func TestHideWhenHiddenIsNoop(t *testing.T) {
	p := newTestProvider()
	require.Nil(t, p.HideToast())
	require.Nil(t, p.HideAlert())
	require.Nil(t, p.HideActionSheet())
	require.Equal(t, PhaseHidden, p.ToastPhase())
}

func TestHideDropsPendingRequest(t *testing.T) {
	p := newTestProvider()
	cmd := p.ShowToast(ToastConfig{Message: "never"})
	require.Nil(t, p.HideToast())
	p.Update(cmd())
	require.Equal(t, PhaseHidden, p.ToastPhase())
}

func TestCloseInvalidatesTimers(t *testing.T) {
	p := newTestProvider()
	hides := 0
	next := apply(t, p, p.ShowToast(ToastConfig{
		Message:  "bye",
		Duration: time.Millisecond,
		OnHide:   func() tea.Cmd { hides++; return nil },
	}))
	p.Close()
	drain(t, p, next)

	require.Zero(t, hides)
	require.Equal(t, PhaseHidden, p.ToastPhase())
	require.Nil(t, p.ShowToast(ToastConfig{Message: "after"}))
}

func TestAlertKeyboard(t *testing.T) {
	p := newTestProvider()
	deleted := 0
	drain(t, p, apply(t, p, p.ShowAlert(AlertConfig{
		Title: "Delete item",
		Buttons: []Button{
			{Text: "Delete", Style: StyleDestructive, OnPress: func() tea.Cmd { deleted++; return nil }},
			{Text: "Cancel", Style: StyleCancel},
		},
	})))
	require.True(t, p.Capturing())
	require.Equal(t, 1, p.AlertSelection(), "cancel is highlighted first")

	handled, _ := p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.True(t, handled, "alerts swallow other keys")

	p.Update(tea.KeyMsg{Type: tea.KeyRight})
	require.Equal(t, 0, p.AlertSelection())
	_, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, 1, deleted)
	drain(t, p, cmd)
	require.False(t, p.Capturing())

	drain(t, p, apply(t, p, p.ShowAlert(AlertConfig{Title: "again"})))
	_, cmd = p.Update(tea.KeyMsg{Type: tea.KeyEsc})
	drain(t, p, cmd)
	require.Equal(t, PhaseHidden, p.AlertPhase())
	require.Equal(t, 1, deleted)
}

func TestAlertBackdrop(t *testing.T) {
	pal, _ := theme.Lookup(theme.Light)
	click := tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}

	p := newTestProvider()
	drain(t, p, apply(t, p, p.ShowAlert(AlertConfig{Title: "Sticky"})))
	p.View("", 60, 20, pal)
	handled, cmd := p.Update(click)
	require.True(t, handled)
	require.Nil(t, cmd)
	require.Equal(t, PhaseShown, p.AlertPhase())

	drain(t, p, apply(t, p, p.ShowAlert(AlertConfig{Title: "Loose", Dismissible: true})))
	p.View("", 60, 20, pal)
	_, cmd = p.Update(click)
	drain(t, p, cmd)
	require.Equal(t, PhaseHidden, p.AlertPhase())
}

func TestAlertButtonClick(t *testing.T) {
	pal, _ := theme.Lookup(theme.Dark)
	p := newTestProvider()
	pressed := 0
	drain(t, p, apply(t, p, p.ShowAlert(AlertConfig{
		Title:   "Confirm",
		Buttons: []Button{{Text: "Yes", OnPress: func() tea.Cmd { pressed++; return nil }}},
	})))
	p.View("", 60, 20, pal)
	require.Len(t, p.alertButtons, 1)
	r := p.alertButtons[0]
	_, cmd := p.Update(tea.MouseMsg{X: r.X + 1, Y: r.Y + 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	drain(t, p, cmd)
	require.Equal(t, 1, pressed)
	require.Equal(t, PhaseHidden, p.AlertPhase())
}

func TestActionSheet(t *testing.T) {
	pal, _ := theme.Lookup(theme.Moonlight)
	p := newTestProvider()
	var picked []string
	pick := func(s string) func() tea.Cmd {
		return func() tea.Cmd { picked = append(picked, s); return nil }
	}
	drain(t, p, apply(t, p, p.ShowActionSheet(SheetConfig{
		Title: "Theme",
		Buttons: []Button{
			{Text: "Cancel", Style: StyleCancel, OnPress: pick("cancel")},
			{Text: "Light", OnPress: pick("light")},
			{Text: "Dark", OnPress: pick("dark")},
		},
	})))
	require.Equal(t, 1, p.SheetSelection(), "first main button is selected")

	p.Update(tea.KeyMsg{Type: tea.KeyDown})
	require.Equal(t, 2, p.SheetSelection())
	p.Update(tea.KeyMsg{Type: tea.KeyDown})
	require.Equal(t, 0, p.SheetSelection(), "cancel comes last")

	view := p.View("", 60, 20, pal)
	require.Contains(t, view, "Dark")
	r := p.sheetButtons[2]
	_, cmd := p.Update(tea.MouseMsg{X: r.X, Y: r.Y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	drain(t, p, cmd)
	require.Equal(t, []string{"dark"}, picked)

	drain(t, p, apply(t, p, p.ShowActionSheet(SheetConfig{Buttons: []Button{{Text: "Open", OnPress: pick("open")}}})))
	p.View("", 60, 20, pal)
	_, cmd = p.Update(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	drain(t, p, cmd)
	require.Equal(t, PhaseHidden, p.SheetPhase())
	require.Equal(t, []string{"dark"}, picked, "backdrop dismiss runs no button")
}

func toastShown(p *Provider) func() bool {
	return func() bool { return p.ToastPhase() == PhaseShown }
}

func TestToastCloseKey(t *testing.T) {
	p := newTestProvider()
	drainUntil(t, p, apply(t, p, p.ShowToast(ToastConfig{Message: "hi", Duration: time.Hour})), toastShown(p))
	require.False(t, p.Capturing(), "toasts never capture input")

	handled, _ := p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")})
	require.False(t, handled)

	handled, cmd := p.Update(tea.KeyMsg{Type: tea.KeyCtrlX})
	require.True(t, handled)
	drain(t, p, cmd)
	require.Equal(t, PhaseHidden, p.ToastPhase())
}

func TestViewStacksToastOverAlert(t *testing.T) {
	pal, _ := theme.Lookup(theme.Light)
	p := newTestProvider()
	drain(t, p, apply(t, p, p.ShowAlert(AlertConfig{Title: "Alert title"})))
	drainUntil(t, p, apply(t, p, p.ShowToast(ToastConfig{Message: "Toast text", Duration: time.Hour})), toastShown(p))

	view := p.View("base screen", 60, 20, pal)
	require.Contains(t, view, "Alert title")
	require.Contains(t, view, "Toast text")
	require.Contains(t, view, "base screen")
}

func TestRequestsAddressedElsewhereAreIgnored(t *testing.T) {
	p := newTestProvider()
	handled, cmd := p.Update(ToastRequest{Target: p.ID() + 1, Config: ToastConfig{Message: "x"}})
	require.False(t, handled)
	require.Nil(t, cmd)

	handled, _ = p.Update(frameMsg{owner: p.ID() + 1, kind: surfaceToast})
	require.False(t, handled)
}

func TestCenterPublishesToAttachedProvider(t *testing.T) {
	bus := eventbus.NewEventBus()
	center := NewCenter(bus)
	p := newTestProvider()

	require.ErrorIs(t, center.Alert("T", "M"), eventbus.ErrDetached)

	center.Attach(p)
	require.NoError(t, center.Alert("T", "M"))
	req := <-bus.Requests()
	ar, ok := req.(AlertRequest)
	require.True(t, ok)
	require.Equal(t, p.ID(), ar.Target)

	handled, cmd := p.Update(req)
	require.True(t, handled)
	apply(t, p, cmd)
	cfg, visible := p.Alert()
	require.True(t, visible)
	require.Equal(t, "OK", cfg.Buttons[0].Text)

	other := newTestProvider()
	center.Detach(other)
	_, attached := bus.Attached()
	require.True(t, attached, "only the attached provider can detach itself")

	center.Detach(p)
	require.ErrorIs(t, center.Toast(ToastConfig{Message: "x"}), eventbus.ErrDetached)
}
