package swipe

import (
	"math"
	"strings"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/RoriShell/internal/theme"
	"github.com/Rorical/RoriShell/ui/components"
)

// Units converts terminal cells to gesture units.
type Units struct {
	Column float64
	Row    float64
}

var DefaultUnits = Units{Column: 8, Row: 20}

type Row struct {
	ID       string
	Icon     string
	Title    string
	Subtitle string
	Kind     Kind
}

type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Reveal key.Binding
	Hide   key.Binding
	Press  key.Binding
	Action key.Binding
}

var DefaultKeyMap = KeyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Reveal: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "swipe")),
	Hide:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "close")),
	Press:  key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "open")),
	Action: key.NewBinding(key.WithKeys("d", "delete", "backspace"), key.WithHelp("d", "delete")),
}

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

type frameMsg struct {
	list int
	gen  int
}

// List is a column of swipeable rows with at most one row open.
type List struct {
	id    int
	rows  []Row
	items map[string]*Item
	coord Coordinator

	tracker Tracker
	grabbed string
	cursor  int

	gen       int
	animating bool

	originX, originY int
	width            int
	units            Units

	Keys     KeyMap
	OnPress  func(id string) tea.Cmd
	OnAction func(id string) tea.Cmd
}

func NewList(rows []Row) *List {
	l := &List{
		id:    nextID(),
		items: make(map[string]*Item),
		units: DefaultUnits,
		width: 40,
		Keys:  DefaultKeyMap,
	}
	l.SetRows(rows)
	return l
}

func (l *List) SetUnits(u Units) {
	if u.Column > 0 && u.Row > 0 {
		l.units = u
	}
}

// SetRows replaces the rows, keeping the swipe state of rows that survive.
func (l *List) SetRows(rows []Row) {
	l.rows = rows
	items := make(map[string]*Item, len(rows))
	for _, r := range rows {
		if it, ok := l.items[r.ID]; ok {
			it.Kind = r.Kind
			items[r.ID] = it
			continue
		}
		items[r.ID] = NewItem(r.ID, r.Kind)
	}
	l.items = items
	if id, ok := l.coord.Active(); ok {
		if _, still := items[id]; !still {
			l.coord.ResetAll()
		}
	}
	if l.cursor >= len(rows) {
		l.cursor = max(len(rows)-1, 0)
	}
}

func (l *List) Remove(id string) {
	rows := make([]Row, 0, len(l.rows))
	for _, r := range l.rows {
		if r.ID != id {
			rows = append(rows, r)
		}
	}
	l.SetRows(rows)
}

func (l *List) Rows() []Row {
	return l.rows
}

func (l *List) Item(id string) (*Item, bool) {
	it, ok := l.items[id]
	return it, ok
}

// OpenIDs lists every row currently marked open.
func (l *List) OpenIDs() []string {
	var ids []string
	for _, r := range l.rows {
		if l.items[r.ID].IsOpen() {
			ids = append(ids, r.ID)
		}
	}
	return ids
}

func (l *List) Active() (string, bool) {
	return l.coord.Active()
}

func (l *List) Cursor() int {
	return l.cursor
}

// SetOrigin tells the list where its first row is drawn on screen.
func (l *List) SetOrigin(x, y int) {
	l.originX = x
	l.originY = y
}

func (l *List) SetWidth(w int) {
	if w > 0 {
		l.width = w
	}
}

func (l *List) Height() int {
	return len(l.rows)
}

// ResetAll closes every row.
func (l *List) ResetAll() tea.Cmd {
	l.coord.ResetAll()
	l.sync()
	return l.animate()
}

func (l *List) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case frameMsg:
		return l.handleFrame(msg)
	case tea.KeyMsg:
		return l.handleKey(msg)
	case tea.MouseMsg:
		return l.handleMouse(msg)
	}
	return nil
}

func (l *List) handleKey(msg tea.KeyMsg) tea.Cmd {
	if len(l.rows) == 0 {
		return nil
	}
	id := l.rows[l.cursor].ID
	it := l.items[id]
	switch {
	case key.Matches(msg, l.Keys.Up):
		if l.cursor > 0 {
			l.cursor--
		}
		return l.ResetAll()
	case key.Matches(msg, l.Keys.Down):
		if l.cursor < len(l.rows)-1 {
			l.cursor++
		}
		return l.ResetAll()
	case key.Matches(msg, l.Keys.Reveal):
		it.Reveal()
		l.coord.NotifyOpen(id)
		l.sync()
		return l.animate()
	case key.Matches(msg, l.Keys.Hide):
		it.Reset()
		l.coord.NotifyClosed(id)
		l.sync()
		return l.animate()
	case key.Matches(msg, l.Keys.Press):
		return l.tap(id)
	case key.Matches(msg, l.Keys.Action):
		if it.IsOpen() && l.OnAction != nil {
			return l.OnAction(id)
		}
	}
	return nil
}

func (l *List) handleMouse(msg tea.MouseMsg) tea.Cmd {
	x := float64(msg.X) * l.units.Column
	y := float64(msg.Y) * l.units.Row

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown {
			l.tracker.Cancel()
			l.grabbed = ""
			return l.ResetAll()
		}
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}
		idx := l.rowAt(msg.Y)
		if idx < 0 {
			return l.ResetAll()
		}
		l.cursor = idx
		id := l.rows[idx].ID
		it := l.items[id]
		if it.IsOpen() && l.actionHit(it, msg.X) {
			if l.OnAction != nil {
				return l.OnAction(id)
			}
			return nil
		}
		l.grabbed = id
		l.tracker.Begin(x, y)
		return nil

	case tea.MouseActionMotion:
		if l.grabbed == "" {
			return nil
		}
		if tx, ok := l.tracker.Move(x, y); ok {
			l.items[l.grabbed].Drag(tx)
		}
		return nil

	case tea.MouseActionRelease:
		if l.grabbed == "" {
			return nil
		}
		id := l.grabbed
		l.grabbed = ""
		it, ok := l.items[id]
		if !ok {
			l.tracker.Cancel()
			return nil
		}
		tx, swiped := l.tracker.End(x, y)
		if !swiped {
			return l.tap(id)
		}
		switch it.Release(tx) {
		case Opened:
			l.coord.NotifyOpen(id)
		case Closed:
			l.coord.NotifyClosed(id)
		}
		l.sync()
		return l.animate()
	}
	return nil
}

// tap closes an open row or runs the press action of a closed one.
func (l *List) tap(id string) tea.Cmd {
	it := l.items[id]
	if it.Tap() == TapReset {
		l.coord.NotifyClosed(id)
		l.sync()
		return l.animate()
	}
	if l.OnPress != nil {
		return l.OnPress(id)
	}
	return nil
}

// sync lets every row observe the coordinator's active id.
func (l *List) sync() {
	for _, r := range l.rows {
		l.items[r.ID].Sync(l.coord.IsActive(r.ID))
	}
}

func (l *List) animate() tea.Cmd {
	if l.animating || !l.moving() {
		return nil
	}
	l.animating = true
	l.gen++
	return l.frame()
}

func (l *List) frame() tea.Cmd {
	id, gen := l.id, l.gen
	return tea.Tick(time.Second/FrameRate, func(time.Time) tea.Msg {
		return frameMsg{list: id, gen: gen}
	})
}

func (l *List) handleFrame(msg frameMsg) tea.Cmd {
	if msg.list != l.id || msg.gen != l.gen || !l.animating {
		return nil
	}
	moving := false
	for _, r := range l.rows {
		if l.items[r.ID].Step() {
			moving = true
		}
	}
	if !moving {
		l.animating = false
		return nil
	}
	return l.frame()
}

func (l *List) moving() bool {
	for _, r := range l.rows {
		if l.items[r.ID].Moving() {
			return true
		}
	}
	return false
}

func (l *List) rowAt(screenY int) int {
	idx := screenY - l.originY
	if idx < 0 || idx >= len(l.rows) {
		return -1
	}
	return idx
}

func (l *List) actionHit(it *Item, screenX int) bool {
	cols := l.actionCols(it)
	return screenX >= l.originX+l.width-cols && screenX < l.originX+l.width
}

func (l *List) actionCols(it *Item) int {
	return int(math.Round(it.Kind.ActionWidth() / l.units.Column))
}

func (l *List) View(p theme.Palette) string {
	lines := make([]string, 0, len(l.rows))
	for i, r := range l.rows {
		it := l.items[r.ID]
		lines = append(lines, components.RenderMenuRow(p, components.MenuRow{
			Icon:       r.Icon,
			Title:      r.Title,
			Subtitle:   r.Subtitle,
			Logout:     r.Kind == KindLogout,
			Selected:   i == l.cursor,
			ShiftCols:  int(math.Round(-it.Offset() / l.units.Column)),
			Open:       it.IsOpen(),
			ActionCols: l.actionCols(it),
			Width:      l.width,
		}))
	}
	return strings.Join(lines, "\n")
}
