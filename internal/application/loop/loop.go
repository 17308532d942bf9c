// Package loop drives the board at a fixed tick rate on its own goroutine.
//
// The loop is independent of the render and input cadence: a frontend
// supplies a render callback that receives a snapshot after every step, and
// writes direction requests straight into the board from its own goroutine.
package loop

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/younwookim/swipesnake/internal/application/state"
	"github.com/younwookim/swipesnake/internal/application/system"
	"github.com/younwookim/swipesnake/internal/domain/entity"
)

// DefaultTickInterval is roughly 8.3 steps per second
const DefaultTickInterval = 120 * time.Millisecond

// ErrAlreadyRunning is returned by Run when the loop is already active
var ErrAlreadyRunning = errors.New("loop: already running")

// RenderFunc receives a snapshot after every step.
// It runs on the loop goroutine and must not call Stop.
type RenderFunc func(system.Snapshot)

// Loop steps a Board at a fixed interval
type Loop struct {
	board    *system.Board
	render   RenderFunc
	clock    Clock
	interval time.Duration
	logger   *slog.Logger

	// owned by the loop goroutine
	last time.Time

	runState atomic.Int32

	mu      sync.Mutex // guards stop, done, pending
	stop    chan struct{}
	done    chan struct{}
	pending *entity.Grid
}

// Option configures a Loop
type Option func(*Loop)

// WithClock replaces the system clock
func WithClock(c Clock) Option {
	return func(l *Loop) { l.clock = c }
}

// WithLogger sets the logger used for lifecycle messages
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loop) { l.logger = logger }
}

// New creates a stopped loop. A non-positive interval falls back to DefaultTickInterval.
func New(board *system.Board, interval time.Duration, render RenderFunc, opts ...Option) *Loop {
	if interval <= 0 {
		interval = DefaultTickInterval
	}

	l := &Loop{
		board:    board,
		render:   render,
		clock:    SystemClock{},
		interval: interval,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Start runs the loop on a new goroutine. Returns false if it is already running.
func (l *Loop) Start(ctx context.Context) bool {
	stop, done, ok := l.begin()
	if !ok {
		return false
	}
	go func() { _ = l.run(ctx, stop, done) }()
	return true
}

// Run executes ticks on the calling goroutine until ctx is cancelled or Stop is called
func (l *Loop) Run(ctx context.Context) error {
	stop, done, ok := l.begin()
	if !ok {
		return ErrAlreadyRunning
	}
	return l.run(ctx, stop, done)
}

// Stop signals the loop and blocks until its goroutine has exited.
// No render callback runs after Stop returns. Stopping a stopped loop is a no-op.
func (l *Loop) Stop() {
	l.mu.Lock()
	stop, done := l.stop, l.done
	if done == nil {
		l.mu.Unlock()
		return
	}
	select {
	case <-stop:
	default:
		close(stop)
	}
	l.mu.Unlock()

	<-done
}

// State reports whether the loop is running
func (l *Loop) State() state.LoopState {
	return state.LoopState(l.runState.Load())
}

// Interval returns the fixed tick interval
func (l *Loop) Interval() time.Duration {
	return l.interval
}

// Resize requests new grid dimensions. Only the latest request is kept and it
// is applied on the loop goroutine before the next step.
func (l *Loop) Resize(cols, rows int) {
	g := entity.NewGrid(cols, rows)

	l.mu.Lock()
	l.pending = &g
	l.mu.Unlock()
}

// Advance steps and renders once if at least one interval has elapsed since
// the previous tick. The next tick is measured from now, so a late tick
// pushes the schedule back instead of bunching up catch-up steps.
func (l *Loop) Advance(now time.Time) bool {
	if now.Sub(l.last) < l.interval {
		return false
	}

	l.applyResize()
	l.board.Step()
	if l.render != nil {
		l.render(l.board.Snapshot())
	}
	l.last = now
	return true
}

func (l *Loop) begin() (chan struct{}, chan struct{}, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.done != nil {
		return nil, nil, false
	}
	l.stop = make(chan struct{})
	l.done = make(chan struct{})
	l.last = l.clock.Now()
	l.runState.Store(int32(state.LoopRunning))
	return l.stop, l.done, true
}

func (l *Loop) finish(done chan struct{}) {
	l.mu.Lock()
	l.stop = nil
	l.done = nil
	l.runState.Store(int32(state.LoopStopped))
	l.mu.Unlock()

	close(done)
}

func (l *Loop) run(ctx context.Context, stop <-chan struct{}, done chan struct{}) error {
	defer l.finish(done)

	l.logger.Info("loop started", "interval", l.interval)
	defer func() { l.logger.Info("loop stopped", "tick", l.board.Tick()) }()

	timer := time.NewTimer(l.interval)
	defer timer.Stop()

	for {
		select {
		case <-stop:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		l.Advance(l.clock.Now())

		wait := l.last.Add(l.interval).Sub(l.clock.Now())
		if wait <= 0 {
			continue
		}
		timer.Reset(wait)

		select {
		case <-timer.C:
		case <-stop:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (l *Loop) applyResize() {
	l.mu.Lock()
	g := l.pending
	l.pending = nil
	l.mu.Unlock()

	if g == nil || *g == l.board.Grid() {
		return
	}
	restarted := l.board.Resize(g.Cols, g.Rows)
	l.logger.Info("grid resized", "cols", g.Cols, "rows", g.Rows, "restarted", restarted)
}
