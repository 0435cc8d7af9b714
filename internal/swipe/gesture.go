package swipe

import "math"

const (
	// ActivateOffsetX is the horizontal travel needed before a pan counts as a swipe.
	ActivateOffsetX = 10.0
	// FailOffsetY is the vertical travel that cancels a pan before it activates.
	FailOffsetY = 10.0
)

// Tracker recognizes a horizontal pan from a stream of pointer positions.
// Positions are in gesture units, not terminal cells.
type Tracker struct {
	startX   float64
	startY   float64
	tracking bool
	active   bool
	failed   bool
}

func (t *Tracker) Begin(x, y float64) {
	t.startX = x
	t.startY = y
	t.tracking = true
	t.active = false
	t.failed = false
}

// Move reports the cumulative horizontal translation since Begin. The bool is
// false until the pan has activated, and stays false once it has failed.
func (t *Tracker) Move(x, y float64) (float64, bool) {
	if !t.tracking || t.failed {
		return 0, false
	}
	dx := x - t.startX
	dy := y - t.startY
	if !t.active {
		if math.Abs(dy) >= FailOffsetY {
			t.failed = true
			return 0, false
		}
		if math.Abs(dx) >= ActivateOffsetX {
			t.active = true
		}
	}
	if !t.active {
		return 0, false
	}
	return dx, true
}

// End finishes the gesture. ok is false when the pan never activated, which
// callers treat as a tap.
func (t *Tracker) End(x, y float64) (translationX float64, ok bool) {
	translationX, ok = t.Move(x, y)
	t.Cancel()
	return translationX, ok
}

func (t *Tracker) Cancel() {
	t.tracking = false
	t.active = false
	t.failed = false
}

func (t *Tracker) Tracking() bool {
	return t.tracking
}
