package replay

import (
	"math/rand"

	"github.com/younwookim/swipesnake/internal/application/system"
)

// Replayer re-drives a fresh board from a session journal
type Replayer struct {
	data  SessionData
	board *system.Board
	next  int
}

// NewReplayer creates a replayer positioned before the first step
func NewReplayer(data SessionData) *Replayer {
	r := &Replayer{data: data}
	r.Reset()
	return r
}

// Step applies the events for the next tick and advances the board.
// Returns false once every recorded tick has been replayed.
func (r *Replayer) Step() (system.Snapshot, bool) {
	if r.board.Tick() >= r.data.Ticks {
		return r.board.Snapshot(), false
	}

	tick := r.board.Tick() + 1
	for r.next < len(r.data.Events) && r.data.Events[r.next].Tick == tick {
		ev := r.data.Events[r.next]
		switch ev.Kind {
		case EventResize:
			r.board.Resize(ev.Grid.Cols, ev.Grid.Rows)
		case EventTurn:
			r.board.SetDesiredDirection(ev.Dir)
		}
		r.next++
	}

	r.board.Step()
	return r.board.Snapshot(), true
}

// RunToEnd replays every remaining tick and returns the final snapshot
func (r *Replayer) RunToEnd() system.Snapshot {
	snap := r.board.Snapshot()
	for {
		s, ok := r.Step()
		if !ok {
			return snap
		}
		snap = s
	}
}

// CurrentTick returns the number of replayed steps
func (r *Replayer) CurrentTick() uint64 {
	return r.board.Tick()
}

// TotalTicks returns the number of recorded steps
func (r *Replayer) TotalTicks() uint64 {
	return r.data.Ticks
}

// Seed returns the seed used for the session
func (r *Replayer) Seed() int64 {
	return r.data.Seed
}

// Reset rebuilds the board and rewinds to the beginning
func (r *Replayer) Reset() {
	r.board = system.NewBoard(r.data.Grid, rand.New(rand.NewSource(r.data.Seed)))
	r.next = 0
}
