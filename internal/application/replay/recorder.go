package replay

import (
	"github.com/younwookim/swipesnake/internal/application/system"
	"github.com/younwookim/swipesnake/internal/domain/entity"
)

// Recorder builds a session journal from the snapshots the loop renders.
// Observe must be called for every step, from the loop goroutine.
type Recorder struct {
	data    SessionData
	applied entity.Direction
	grid    entity.Grid

	roundStart uint64
	roundTurns int
}

// NewRecorder creates a recorder for a board created with seed and grid
func NewRecorder(seed int64, grid entity.Grid) *Recorder {
	grid = entity.NewGrid(grid.Cols, grid.Rows)
	return &Recorder{
		data: SessionData{
			Seed:   seed,
			Grid:   grid,
			Events: make([]Event, 0, 256),
		},
		applied: entity.DirRight,
		grid:    grid,
	}
}

// Observe records the inputs that shaped the step in snap
func (r *Recorder) Observe(snap system.Snapshot) {
	if snap.Grid != r.grid {
		r.data.Events = append(r.data.Events, Event{Tick: snap.Tick, Kind: EventResize, Grid: snap.Grid})
		r.grid = snap.Grid
	}
	if snap.Applied != r.applied {
		r.data.Events = append(r.data.Events, Event{Tick: snap.Tick, Kind: EventTurn, Dir: snap.Applied})
		r.applied = snap.Applied
		r.roundTurns++
	}
	r.data.Ticks = snap.Tick

	if snap.Outcome == system.OutcomeCollided {
		// Restart resets the heading; the next step starts from it
		r.applied = snap.Direction
		r.roundStart = snap.Tick
		r.roundTurns = 0
	}
}

// RoundTicks returns the number of steps since the current round began
func (r *Recorder) RoundTicks() uint64 {
	return r.data.Ticks - r.roundStart
}

// RoundTurns returns the number of direction changes in the current round
func (r *Recorder) RoundTurns() int {
	return r.roundTurns
}

// EventCount returns the number of recorded events
func (r *Recorder) EventCount() int {
	return len(r.data.Events)
}

// GetData returns a copy of the journal
func (r *Recorder) GetData() SessionData {
	data := r.data
	data.Events = append([]Event(nil), r.data.Events...)
	return data
}
