package system

import (
	"math/rand"
	"slices"
	"sync/atomic"

	"github.com/younwookim/swipesnake/internal/domain/entity"
)

// InitialLength is the snake length after every restart
const InitialLength = 3

// Outcome describes what a single Step did
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeMoved
	OutcomeAte
	OutcomeCollided
)

// String returns the string representation of the outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "None"
	case OutcomeMoved:
		return "Moved"
	case OutcomeAte:
		return "Ate"
	case OutcomeCollided:
		return "Collided"
	default:
		return "Unknown"
	}
}

// Snapshot is a read-only copy of the board for renderers
type Snapshot struct {
	Grid      entity.Grid
	Snake     []entity.Cell // head first
	Food      entity.Cell
	HasFood   bool // false while the snake fills the whole grid
	Score     int
	Direction entity.Direction // heading after the step
	Applied   entity.Direction // heading the last step moved in
	Tick      uint64
	Outcome   Outcome
}

// Head returns the first snake cell
func (s Snapshot) Head() entity.Cell {
	return s.Snake[0]
}

// RoundSummary describes a round that ended in self-collision
type RoundSummary struct {
	Score  int
	Length int
	Tick   uint64
}

// Board owns the whole simulation state.
//
// Only DesiredDirection may be written from another goroutine (via
// SetDesiredDirection); CurrentDirection may be read from any goroutine.
// Everything else belongs to the goroutine calling Step.
type Board struct {
	grid    entity.Grid
	snake   []entity.Cell
	food    entity.Cell
	hasFood bool
	score   int
	tick    uint64
	last    Outcome
	applied entity.Direction

	current atomic.Int32
	desired atomic.Int32

	rng *rand.Rand

	// OnRoundOver is called on self-collision, before the board restarts
	OnRoundOver func(RoundSummary)
}

// NewBoard creates a board with the canonical snake and an initial food cell
func NewBoard(grid entity.Grid, rng *rand.Rand) *Board {
	b := &Board{
		grid:    entity.NewGrid(grid.Cols, grid.Rows),
		rng:     rng,
		applied: entity.DirRight,
	}
	b.Restart()
	return b
}

// Step advances the simulation by one tick
func (b *Board) Step() Outcome {
	dir := entity.Direction(b.desired.Load())
	b.current.Store(int32(dir))
	b.applied = dir
	b.tick++

	head := b.grid.Wrap(dir.Step(b.snake[0]))

	if b.occupied(head) {
		if b.OnRoundOver != nil {
			b.OnRoundOver(RoundSummary{Score: b.score, Length: len(b.snake), Tick: b.tick})
		}
		b.Restart()
		b.last = OutcomeCollided
		return b.last
	}

	b.snake = slices.Insert(b.snake, 0, head)

	if b.hasFood && head == b.food {
		b.score++
		b.SpawnFood()
		b.last = OutcomeAte
		return b.last
	}

	b.snake = b.snake[:len(b.snake)-1]
	b.last = OutcomeMoved
	return b.last
}

// SetDesiredDirection buffers the heading for the next Step. Safe for concurrent use.
func (b *Board) SetDesiredDirection(d entity.Direction) {
	b.desired.Store(int32(d))
}

// DesiredDirection returns the buffered heading
func (b *Board) DesiredDirection() entity.Direction {
	return entity.Direction(b.desired.Load())
}

// CurrentDirection returns the heading set by the last Step or Restart. Safe for concurrent use.
func (b *Board) CurrentDirection() entity.Direction {
	return entity.Direction(b.current.Load())
}

// SpawnFood moves the food to a random free cell.
// Random sampling is capped at one attempt per grid cell, after which the
// first free cell in row-major order is used. If the snake covers the whole
// grid there is no food until a later spawn finds room, and false is returned.
func (b *Board) SpawnFood() bool {
	for range b.grid.Area() {
		c := entity.Cell{X: b.rng.Intn(b.grid.Cols), Y: b.rng.Intn(b.grid.Rows)}
		if !b.occupied(c) {
			b.food = c
			b.hasFood = true
			return true
		}
	}

	for y := 0; y < b.grid.Rows; y++ {
		for x := 0; x < b.grid.Cols; x++ {
			c := entity.Cell{X: x, Y: y}
			if !b.occupied(c) {
				b.food = c
				b.hasFood = true
				return true
			}
		}
	}
	b.hasFood = false
	return false
}

// Restart resets the snake to the centered three-cell form heading right
func (b *Board) Restart() {
	center := b.grid.Center()
	b.snake = b.snake[:0]
	for i := range InitialLength {
		c := b.grid.Wrap(center.Add(-i, 0))
		// grids narrower than the snake would otherwise fold it onto itself
		if !b.occupied(c) {
			b.snake = append(b.snake, c)
		}
	}

	b.current.Store(int32(entity.DirRight))
	b.desired.Store(int32(entity.DirRight))
	b.score = 0
	b.SpawnFood()
}

// Resize changes the grid dimensions in place. Snake cells are kept as long
// as they still fit; if any cell falls outside the new grid the board restarts.
// Resizing to the current dimensions changes nothing.
// Returns true if the board restarted.
func (b *Board) Resize(cols, rows int) bool {
	g := entity.NewGrid(cols, rows)
	if g == b.grid {
		return false
	}
	b.grid = g

	for _, c := range b.snake {
		if !b.grid.Contains(c) {
			b.Restart()
			return true
		}
	}

	b.SpawnFood()
	return false
}

// Snapshot returns a copy of the state for rendering
func (b *Board) Snapshot() Snapshot {
	return Snapshot{
		Grid:      b.grid,
		Snake:     slices.Clone(b.snake),
		Food:      b.food,
		HasFood:   b.hasFood,
		Score:     b.score,
		Direction: b.CurrentDirection(),
		Applied:   b.applied,
		Tick:      b.tick,
		Outcome:   b.last,
	}
}

// Grid returns the current grid dimensions
func (b *Board) Grid() entity.Grid {
	return b.grid
}

// Score returns the current score
func (b *Board) Score() int {
	return b.score
}

// Tick returns the number of steps taken since the board was created
func (b *Board) Tick() uint64 {
	return b.tick
}

func (b *Board) occupied(c entity.Cell) bool {
	return slices.Contains(b.snake, c)
}
