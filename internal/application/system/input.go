package system

import (
	"math"

	"github.com/younwookim/swipesnake/internal/domain/entity"
)

// DirectionSink receives direction requests that passed the reversal guard
type DirectionSink interface {
	SetDesiredDirection(d entity.Direction)
	CurrentDirection() entity.Direction
}

// InputSystem turns press/release gestures into direction requests.
// It is meant to be driven from a single input goroutine.
type InputSystem struct {
	sink DirectionSink

	startX, startY float64
	tracking       bool
}

// NewInputSystem creates a new input system writing into sink
func NewInputSystem(sink DirectionSink) *InputSystem {
	return &InputSystem{sink: sink}
}

// OnGestureStart records the press position
func (s *InputSystem) OnGestureStart(x, y float64) {
	s.startX = x
	s.startY = y
	s.tracking = true
}

// OnGestureEnd resolves the swipe from the recorded press position to (x, y).
// Returns the proposed direction and whether it was forwarded to the sink.
func (s *InputSystem) OnGestureEnd(x, y float64) (entity.Direction, bool) {
	if !s.tracking {
		return 0, false
	}
	s.tracking = false

	dir, ok := SwipeDirection(x-s.startX, y-s.startY)
	if !ok {
		return 0, false
	}
	return dir, s.RequestDirection(dir)
}

// Tracking reports whether a gesture is in progress
func (s *InputSystem) Tracking() bool {
	return s.tracking
}

// RequestDirection forwards d unless it would reverse the snake into its neck
func (s *InputSystem) RequestDirection(d entity.Direction) bool {
	if d == s.sink.CurrentDirection().Opposite() {
		return false
	}
	s.sink.SetDesiredDirection(d)
	return true
}

// SwipeDirection maps a drag delta to a cardinal direction.
// Horizontal wins only when |dx| > |dy|; ties go to the vertical axis.
// A delta with no vertical component on the vertical branch proposes nothing.
func SwipeDirection(dx, dy float64) (entity.Direction, bool) {
	if math.Abs(dx) > math.Abs(dy) {
		if dx > 0 {
			return entity.DirRight, true
		}
		return entity.DirLeft, true
	}

	switch {
	case dy > 0:
		return entity.DirDown, true
	case dy < 0:
		return entity.DirUp, true
	default:
		return 0, false
	}
}
