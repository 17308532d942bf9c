package replay

import "github.com/younwookim/swipesnake/internal/domain/entity"

// EventKind identifies what changed before a step
type EventKind int

const (
	EventTurn EventKind = iota
	EventResize
)

// Event is an input that took effect on the step numbered Tick
type Event struct {
	Tick uint64
	Kind EventKind
	Dir  entity.Direction // EventTurn
	Grid entity.Grid      // EventResize
}

// SessionData contains everything needed to re-run a board from creation
type SessionData struct {
	Seed   int64
	Grid   entity.Grid
	Ticks  uint64
	Events []Event
}
