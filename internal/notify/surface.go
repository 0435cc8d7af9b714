package notify

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Phase is where a surface is in its show/hide cycle.
type Phase int

const (
	PhaseHidden Phase = iota
	PhasePending
	PhaseEntering
	PhaseShown
	PhaseExiting
)

func (p Phase) String() string {
	switch p {
	case PhasePending:
		return "pending"
	case PhaseEntering:
		return "entering"
	case PhaseShown:
		return "shown"
	case PhaseExiting:
		return "exiting"
	}
	return "hidden"
}

// Timing controls the enter and exit animations of a surface.
type Timing struct {
	Frame time.Duration
	Enter time.Duration
	Exit  time.Duration
}

var (
	ToastTiming = Timing{Frame: 16 * time.Millisecond, Enter: 300 * time.Millisecond, Exit: 300 * time.Millisecond}
	AlertTiming = Timing{Frame: 16 * time.Millisecond, Enter: 200 * time.Millisecond, Exit: 200 * time.Millisecond}
	SheetTiming = Timing{Frame: 16 * time.Millisecond, Enter: 250 * time.Millisecond, Exit: 200 * time.Millisecond}
)

type surface int

const (
	surfaceToast surface = iota
	surfaceAlert
	surfaceSheet
)

// applyMsg makes the pending request of a slot visible.
type applyMsg struct {
	owner int
	kind  surface
	gen   int
}

type frameMsg struct {
	owner int
	kind  surface
	gen   int
}

type holdMsg struct {
	owner int
	kind  surface
	gen   int
}

// request is what every surface config provides to its slot.
type request interface {
	hideHook() func() tea.Cmd
	holdFor() time.Duration
}

// slot holds at most one request of a single surface kind. Every scheduled
// message carries the generation it was issued for; bumping gen drops
// everything already in flight.
type slot[C request] struct {
	owner  int
	kind   surface
	timing Timing

	phase    Phase
	gen      int
	progress float64
	current  C
	pending  C
	queued   bool
	closed   bool
}

func newSlot[C request](owner int, kind surface, timing Timing) *slot[C] {
	return &slot[C]{owner: owner, kind: kind, timing: timing}
}

// visible reports whether the current request is on screen.
func (s *slot[C]) visible() bool {
	return s.phase == PhaseEntering || s.phase == PhaseShown || s.phase == PhaseExiting
}

// interactive reports whether the current request still accepts input.
func (s *slot[C]) interactive() bool {
	return s.phase == PhaseEntering || s.phase == PhaseShown
}

// show records cfg as the pending request. It becomes visible when the
// returned command's message comes back through Update, and only if no newer
// show or hide happened in between.
func (s *slot[C]) show(cfg C) tea.Cmd {
	if s.closed {
		return nil
	}
	s.gen++
	s.pending = cfg
	s.queued = true
	if s.phase == PhaseHidden {
		s.phase = PhasePending
	}
	m := applyMsg{owner: s.owner, kind: s.kind, gen: s.gen}
	return func() tea.Msg { return m }
}

func (s *slot[C]) apply(gen int) tea.Cmd {
	if s.closed || gen != s.gen || !s.queued {
		return nil
	}
	var hook func() tea.Cmd
	if s.phase == PhaseExiting {
		// The outgoing request was already dismissed.
		hook = s.current.hideHook()
	}
	var zero C
	s.current = s.pending
	s.pending = zero
	s.queued = false
	s.phase = PhaseEntering
	s.progress = 0
	cmds := []tea.Cmd{s.frame()}
	if hook != nil {
		cmds = append(cmds, hook())
	}
	return tea.Batch(cmds...)
}

// hide starts the exit animation. A request that is still pending is
// dropped without ever becoming visible.
func (s *slot[C]) hide() tea.Cmd {
	if s.closed || s.phase == PhaseHidden {
		return nil
	}
	var zero C
	s.gen++
	s.pending = zero
	s.queued = false
	if s.phase == PhasePending {
		s.phase = PhaseHidden
		return nil
	}
	s.phase = PhaseExiting
	return s.frame()
}

func (s *slot[C]) step(d time.Duration) float64 {
	if d <= 0 || s.timing.Frame <= 0 {
		return 1
	}
	return float64(s.timing.Frame) / float64(d)
}

func (s *slot[C]) advance(gen int) tea.Cmd {
	if s.closed || gen != s.gen {
		return nil
	}
	switch s.phase {
	case PhaseEntering:
		s.progress += s.step(s.timing.Enter)
		if s.progress < 1 {
			return s.frame()
		}
		s.progress = 1
		s.phase = PhaseShown
		if d := s.current.holdFor(); d > 0 {
			return s.hold(d)
		}
	case PhaseExiting:
		s.progress -= s.step(s.timing.Exit)
		if s.progress > 0 {
			return s.frame()
		}
		return s.finish()
	}
	return nil
}

func (s *slot[C]) expire(gen int) tea.Cmd {
	if s.closed || gen != s.gen || s.phase != PhaseShown {
		return nil
	}
	return s.hide()
}

func (s *slot[C]) finish() tea.Cmd {
	var zero C
	hook := s.current.hideHook()
	s.current = zero
	s.phase = PhaseHidden
	s.progress = 0
	if hook != nil {
		return hook()
	}
	return nil
}

// close drops everything. Messages already scheduled become no-ops and no
// callback fires afterwards.
func (s *slot[C]) close() {
	var zero C
	s.closed = true
	s.gen++
	s.current = zero
	s.pending = zero
	s.queued = false
	s.phase = PhaseHidden
	s.progress = 0
}

func (s *slot[C]) frame() tea.Cmd {
	m := frameMsg{owner: s.owner, kind: s.kind, gen: s.gen}
	return tea.Tick(s.timing.Frame, func(time.Time) tea.Msg { return m })
}

func (s *slot[C]) hold(d time.Duration) tea.Cmd {
	m := holdMsg{owner: s.owner, kind: s.kind, gen: s.gen}
	return tea.Tick(d, func(time.Time) tea.Msg { return m })
}
