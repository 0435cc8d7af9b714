package swipe

import (
	"math/rand"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func TestTrackerActivatesAfterHorizontalSlop(t *testing.T) {
	var tr Tracker
	tr.Begin(100, 100)

	_, ok := tr.Move(95, 100)
	require.False(t, ok, "5 units is below the activation offset")

	tx, ok := tr.Move(80, 102)
	require.True(t, ok)
	require.Equal(t, -20.0, tx)

	// Vertical drift after activation does not fail the pan.
	tx, ok = tr.Move(60, 140)
	require.True(t, ok)
	require.Equal(t, -40.0, tx)
}

func TestTrackerFailsOnVerticalMovement(t *testing.T) {
	var tr Tracker
	tr.Begin(0, 0)

	_, ok := tr.Move(-5, 12)
	require.False(t, ok)
	_, ok = tr.Move(-200, 12)
	require.False(t, ok, "a failed pan stays failed")

	_, ok = tr.End(-200, 12)
	require.False(t, ok)
	require.False(t, tr.Tracking())
}

func TestTrackerEndWithoutActivationIsTap(t *testing.T) {
	var tr Tracker
	tr.Begin(10, 10)
	_, ok := tr.End(12, 10)
	require.False(t, ok)
}

func TestItemDragStaysWithinBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	it := NewItem("row", KindDelete)
	for i := 0; i < 2000; i++ {
		it.Drag(rng.Float64()*1000 - 700)
		require.GreaterOrEqual(t, it.Offset(), -MaxOffset)
		require.LessOrEqual(t, it.Offset(), 0.0)
		if i%50 == 0 {
			it.Release(rng.Float64()*400 - 300)
			for it.Step() {
				require.GreaterOrEqual(t, it.Offset(), -MaxOffset)
				require.LessOrEqual(t, it.Offset(), 0.0)
			}
		}
	}
}

func TestItemDragIgnoresRightwardTranslation(t *testing.T) {
	it := NewItem("row", KindDelete)
	it.Drag(-40)
	it.Drag(30)
	require.Equal(t, -40.0, it.Offset())
}

func TestItemReleaseThreshold(t *testing.T) {
	cases := []struct {
		tx   float64
		want Transition
		open bool
	}{
		{tx: -101, want: Opened, open: true},
		{tx: -99, want: Closed, open: false},
		{tx: -100, want: Closed, open: false},
		{tx: 0, want: Closed, open: false},
	}
	for _, tc := range cases {
		it := NewItem("row", KindDelete)
		it.Drag(tc.tx)
		require.Equal(t, tc.want, it.Release(tc.tx), "tx=%v", tc.tx)
		require.Equal(t, tc.open, it.IsOpen(), "tx=%v", tc.tx)
	}
}

func TestItemSettlesAtRevealOffset(t *testing.T) {
	it := NewItem("row", KindDelete)
	it.Drag(-150)
	require.Equal(t, -MaxOffset, it.Offset())
	it.Release(-150)

	frames := 0
	for it.Step() {
		frames++
		require.Less(t, frames, 600, "animation never settled")
	}
	require.Equal(t, -RevealOffset, it.Offset())

	it.Reset()
	for it.Step() {
	}
	require.Equal(t, 0.0, it.Offset())
}

func TestItemTap(t *testing.T) {
	it := NewItem("row", KindDelete)
	require.Equal(t, TapPress, it.Tap())

	it.Reveal()
	require.Equal(t, TapReset, it.Tap())
	require.False(t, it.IsOpen())
}

func TestItemSyncClosesWhenNoLongerActive(t *testing.T) {
	it := NewItem("row", KindDelete)
	require.False(t, it.Sync(false), "closed row has nothing to do")

	it.Reveal()
	require.False(t, it.Sync(true))
	require.True(t, it.IsOpen())
	require.True(t, it.Sync(false))
	require.False(t, it.IsOpen())
}

func TestCoordinator(t *testing.T) {
	var c Coordinator
	_, ok := c.Active()
	require.False(t, ok)

	c.NotifyOpen("a")
	require.True(t, c.IsActive("a"))
	c.NotifyOpen("b")
	require.False(t, c.IsActive("a"))
	require.True(t, c.IsActive("b"))

	c.NotifyClosed("a")
	require.True(t, c.IsActive("b"), "closing an inactive row leaves the active one alone")
	c.NotifyClosed("b")
	_, ok = c.Active()
	require.False(t, ok)

	c.NotifyOpen("c")
	c.ResetAll()
	require.False(t, c.IsActive("c"))
}

func testRows() []Row {
	return []Row{
		{ID: "settings", Icon: "⚙", Title: "Settings"},
		{ID: "help", Icon: "?", Title: "Help"},
		{ID: "logout", Icon: "⏻", Title: "Logout", Kind: KindLogout},
	}
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func mouse(action tea.MouseAction, x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: tea.MouseButtonLeft}
}

func settle(t *testing.T, l *List) {
	t.Helper()
	for i := 0; l.animating; i++ {
		require.Less(t, i, 1000, "list animation never settled")
		l.Update(frameMsg{list: l.id, gen: l.gen})
	}
}

func TestListKeepsAtMostOneRowOpen(t *testing.T) {
	l := NewList(testRows())

	l.Update(keyPress("left"))
	require.Equal(t, []string{"settings"}, l.OpenIDs())

	l.Update(keyPress("down"))
	require.Empty(t, l.OpenIDs(), "moving the cursor resets swipes")

	l.Update(keyPress("left"))
	require.Equal(t, []string{"help"}, l.OpenIDs())

	// Swipe the first row open with the pointer while "help" is open.
	l.SetOrigin(0, 5)
	l.Update(mouse(tea.MouseActionPress, 30, 5))
	l.Update(mouse(tea.MouseActionMotion, 20, 5))
	l.Update(mouse(tea.MouseActionMotion, 10, 5))
	require.Len(t, l.OpenIDs(), 1, "dragging alone does not change open state")
	l.Update(mouse(tea.MouseActionRelease, 10, 5))

	require.Equal(t, []string{"settings"}, l.OpenIDs())
	active, ok := l.Active()
	require.True(t, ok)
	require.Equal(t, "settings", active)

	settle(t, l)
	it, _ := l.Item("settings")
	require.Equal(t, -RevealOffset, it.Offset())
	other, _ := l.Item("help")
	require.Equal(t, 0.0, other.Offset())
}

func TestListShortDragResets(t *testing.T) {
	l := NewList(testRows())
	l.SetOrigin(0, 0)
	l.Update(mouse(tea.MouseActionPress, 30, 0))
	l.Update(mouse(tea.MouseActionMotion, 20, 0))
	it, _ := l.Item("settings")
	require.Equal(t, -80.0, it.Offset())
	l.Update(mouse(tea.MouseActionRelease, 20, 0))
	require.False(t, it.IsOpen())
	settle(t, l)
	require.Equal(t, 0.0, it.Offset())
}

func TestListTapClosedRowPressesOnce(t *testing.T) {
	l := NewList(testRows())
	var pressed []string
	l.OnPress = func(id string) tea.Cmd {
		pressed = append(pressed, id)
		return nil
	}
	l.Update(mouse(tea.MouseActionPress, 3, 1))
	l.Update(mouse(tea.MouseActionRelease, 3, 1))
	require.Equal(t, []string{"help"}, pressed)
}

func TestListTapOpenRowResetsWithoutPress(t *testing.T) {
	l := NewList(testRows())
	pressed := 0
	l.OnPress = func(string) tea.Cmd {
		pressed++
		return nil
	}
	l.Update(keyPress("left"))
	l.Update(keyPress("enter"))
	require.Zero(t, pressed)
	require.Empty(t, l.OpenIDs())
	_, ok := l.Active()
	require.False(t, ok)

	l.Update(keyPress("enter"))
	require.Equal(t, 1, pressed)
}

func TestListActionReceivesRowID(t *testing.T) {
	l := NewList(testRows())
	l.SetWidth(40)
	var got []string
	l.OnAction = func(id string) tea.Cmd {
		got = append(got, id)
		return nil
	}

	l.Update(keyPress("d"))
	require.Empty(t, got, "closed rows have no action")

	l.Update(keyPress("down"))
	l.Update(keyPress("down"))
	l.Update(keyPress("left"))
	l.Update(keyPress("d"))
	require.Equal(t, []string{"logout"}, got)

	// Click inside the revealed logout button.
	l.Update(mouse(tea.MouseActionPress, 38, 2))
	require.Equal(t, []string{"logout", "logout"}, got)
}

func TestListOutsideTapAndScrollResetAll(t *testing.T) {
	l := NewList(testRows())
	l.SetOrigin(0, 2)

	l.Update(keyPress("left"))
	l.Update(mouse(tea.MouseActionPress, 5, 0))
	require.Empty(t, l.OpenIDs())

	l.Update(keyPress("left"))
	l.Update(tea.MouseMsg{X: 5, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	require.Empty(t, l.OpenIDs())
}

func TestListVerticalDragDoesNotSwipe(t *testing.T) {
	l := NewList(testRows())
	l.Update(mouse(tea.MouseActionPress, 30, 0))
	l.Update(mouse(tea.MouseActionMotion, 29, 1))
	l.Update(mouse(tea.MouseActionMotion, 5, 1))
	it, _ := l.Item("settings")
	require.Equal(t, 0.0, it.Offset())
}

func TestListRemoveActiveRowClearsCoordinator(t *testing.T) {
	l := NewList(testRows())
	l.Update(keyPress("left"))
	l.Remove("settings")
	_, ok := l.Active()
	require.False(t, ok)
	require.Len(t, l.Rows(), 2)
}

func TestListIgnoresStaleFrames(t *testing.T) {
	l := NewList(testRows())
	l.Update(keyPress("left"))
	require.True(t, l.animating)
	it, _ := l.Item("settings")
	before := it.Offset()
	require.Nil(t, l.Update(frameMsg{list: l.id, gen: l.gen - 1}))
	require.Nil(t, l.Update(frameMsg{list: l.id + 1000, gen: l.gen}))
	require.Equal(t, before, it.Offset())
}
