package swipe

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

const (
	// MaxOffset bounds a drag and is also the commit threshold.
	MaxOffset = 100.0
	// RevealOffset is where an open row comes to rest. It is smaller than
	// MaxOffset so a committed row settles back a little after the drag.
	RevealOffset = 80.0

	// FrameRate drives the settle animation.
	FrameRate = 60

	settleEpsilon = 0.5
)

// Kind selects the action revealed behind a row.
type Kind int

const (
	KindDelete Kind = iota
	KindLogout
)

// ActionWidth is the width, in gesture units, of the revealed action button.
func (k Kind) ActionWidth() float64 {
	if k == KindLogout {
		return 100
	}
	return 80
}

// Transition is what a release did to the row.
type Transition int

const (
	Opened Transition = iota
	Closed
)

// TapResult tells the caller whether a tap was consumed by closing the row.
type TapResult int

const (
	TapPress TapResult = iota
	TapReset
)

// Item is the swipe state of a single row.
type Item struct {
	ID   string
	Kind Kind

	offset   float64
	velocity float64
	target   float64
	open     bool
	spring   harmonica.Spring
}

func NewItem(id string, kind Kind) *Item {
	return &Item{
		ID:   id,
		Kind: kind,
		// Critically damped so a settling row never crosses its bounds.
		spring: harmonica.NewSpring(harmonica.FPS(FrameRate), 8.0, 1.0),
	}
}

// Offset is the displayed horizontal displacement, always in [-MaxOffset, 0].
func (it *Item) Offset() float64 {
	return it.offset
}

func (it *Item) IsOpen() bool {
	return it.open
}

// Drag follows the finger. Rightward translation is ignored.
func (it *Item) Drag(translationX float64) {
	if translationX >= 0 {
		return
	}
	it.offset = clampOffset(math.Max(translationX, -MaxOffset))
	it.target = it.offset
	it.velocity = 0
}

// Release commits the row open when the drag went past MaxOffset and resets
// it otherwise.
func (it *Item) Release(translationX float64) Transition {
	if translationX < -MaxOffset {
		it.Reveal()
		return Opened
	}
	it.Reset()
	return Closed
}

func (it *Item) Reveal() {
	it.open = true
	it.target = -RevealOffset
}

func (it *Item) Reset() {
	it.open = false
	it.target = 0
}

// Tap closes an open row; on a closed row the caller runs the press action.
func (it *Item) Tap() TapResult {
	if it.open {
		it.Reset()
		return TapReset
	}
	return TapPress
}

// Sync closes the row when it is open but no longer the active one. It
// reports whether anything changed.
func (it *Item) Sync(active bool) bool {
	if active || !it.open {
		return false
	}
	it.Reset()
	return true
}

// Moving reports whether the row still has animation left to run.
func (it *Item) Moving() bool {
	return math.Abs(it.offset-it.target) >= settleEpsilon || math.Abs(it.velocity) >= settleEpsilon
}

// Step advances the settle animation by one frame and reports whether the
// row is still moving afterwards.
func (it *Item) Step() bool {
	if !it.Moving() {
		it.offset = it.target
		it.velocity = 0
		return false
	}
	it.offset, it.velocity = it.spring.Update(it.offset, it.velocity, it.target)
	it.offset = clampOffset(it.offset)
	if !it.Moving() {
		it.offset = it.target
		it.velocity = 0
		return false
	}
	return true
}

func clampOffset(v float64) float64 {
	if v < -MaxOffset {
		return -MaxOffset
	}
	if v > 0 {
		return 0
	}
	return v
}
