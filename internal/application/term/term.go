// Package term runs the game inside a terminal using tcell.
//
// The surface is measured in canvas pixels: one terminal row high and two
// columns wide, each pixel holding one cell.
package term

import (
	"context"
	"log/slog"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/younwookim/swipesnake/internal/application/loop"
	"github.com/younwookim/swipesnake/internal/application/render"
	"github.com/younwookim/swipesnake/internal/application/replay"
	"github.com/younwookim/swipesnake/internal/application/system"
	"github.com/younwookim/swipesnake/internal/domain/entity"
	"github.com/younwookim/swipesnake/internal/infrastructure/config"
	"github.com/younwookim/swipesnake/internal/infrastructure/sound"
)

var keyDirections = map[tcell.Key]entity.Direction{
	tcell.KeyUp:    entity.DirUp,
	tcell.KeyDown:  entity.DirDown,
	tcell.KeyLeft:  entity.DirLeft,
	tcell.KeyRight: entity.DirRight,
}

var runeDirections = map[rune]entity.Direction{
	'w': entity.DirUp,
	's': entity.DirDown,
	'a': entity.DirLeft,
	'd': entity.DirRight,
}

// Session ties a board, its loop and a tcell screen together
type Session struct {
	screen   tcell.Screen
	logger   *slog.Logger
	sound    sound.Player
	seed     int64
	board    *system.Board
	input    *system.InputSystem
	loop     *loop.Loop
	recorder *replay.Recorder
	renderer *render.Renderer
	canvas   *render.TermCanvas

	pressed bool
}

// NewSession creates a session drawing on an initialized screen.
// A nil player disables sound.
func NewSession(screen tcell.Screen, cfg *config.GameConfig, logger *slog.Logger, player sound.Player) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	if player == nil {
		player = sound.Silent{}
	}

	seed := cfg.Rules.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	palette := render.Palette{
		Background: cfg.Palette.Background.Color(),
		Grid:       cfg.Palette.Grid.Color(),
		Food:       cfg.Palette.Food.Color(),
		Snake:      cfg.Palette.Snake.Color(),
		Text:       cfg.Palette.Text.Color(),
	}
	renderer := render.NewRenderer(palette, 1)
	renderer.TextInset = 0

	grid := surfaceGrid(screen)
	board := system.NewBoard(grid, rand.New(rand.NewSource(seed)))

	s := &Session{
		screen:   screen,
		logger:   logger,
		sound:    player,
		seed:     seed,
		board:    board,
		input:    system.NewInputSystem(board),
		recorder: replay.NewRecorder(seed, grid),
		renderer: renderer,
		canvas:   render.NewTermCanvas(screen),
	}
	board.OnRoundOver = s.roundOver
	s.loop = loop.New(board, cfg.Loop.TickInterval(), s.onStep, loop.WithLogger(logger))
	return s
}

// Run draws the first frame, starts the loop and handles events until the
// player quits or ctx is cancelled. The loop is stopped before Run returns.
func (s *Session) Run(ctx context.Context) error {
	s.screen.EnableMouse()
	s.draw(s.board.Snapshot())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go s.screen.ChannelEvents(events, quit)
	defer close(quit)

	s.logger.Info("session started", "seed", s.seed, "grid", s.board.Grid())
	defer func() {
		data := s.recorder.GetData()
		s.logger.Info("session ended", "seed", data.Seed, "ticks", data.Ticks, "events", len(data.Events))
	}()

	s.loop.Start(ctx)
	defer s.loop.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !s.HandleEvent(ev) {
				return nil
			}
		}
	}
}

// HandleEvent applies one terminal event. Returns false when the player quits.
func (s *Session) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}
		if dir, ok := keyDirections[ev.Key()]; ok {
			s.input.RequestDirection(dir)
		} else if dir, ok := runeDirections[ev.Rune()]; ok && ev.Key() == tcell.KeyRune {
			s.input.RequestDirection(dir)
		}

	case *tcell.EventMouse:
		s.handleMouse(ev)

	case *tcell.EventResize:
		s.screen.Sync()
		g := surfaceGrid(s.screen)
		s.loop.Resize(g.Cols, g.Rows)
	}
	return true
}

// handleMouse turns button 1 press and release into a gesture
func (s *Session) handleMouse(ev *tcell.EventMouse) {
	col, row := ev.Position()
	x, y := float64(col)/2, float64(row)
	down := ev.Buttons()&tcell.Button1 != 0

	switch {
	case down && !s.pressed:
		s.pressed = true
		s.input.OnGestureStart(x, y)
	case !down && s.pressed:
		s.pressed = false
		s.input.OnGestureEnd(x, y)
	}
}

// onStep runs on the loop goroutine after every step
func (s *Session) onStep(snap system.Snapshot) {
	s.recorder.Observe(snap)
	s.draw(snap)
	s.sound.Play(sound.CueFor(snap.Outcome))
}

func (s *Session) draw(snap system.Snapshot) {
	s.renderer.Draw(s.canvas, snap)
	s.canvas.Show()
}

func (s *Session) roundOver(sum system.RoundSummary) {
	s.logger.Info("round over",
		"score", sum.Score,
		"length", sum.Length,
		"tick", sum.Tick,
		"turns", s.recorder.RoundTurns(),
	)
}

// Journal returns the journal recorded so far. Call it after Run returns.
func (s *Session) Journal() replay.SessionData {
	return s.recorder.GetData()
}

// surfaceGrid sizes the grid so each cell is one canvas pixel
func surfaceGrid(screen tcell.Screen) entity.Grid {
	w, h := screen.Size()
	vp := entity.ViewportFor(w/2, h, w/2, 1)
	return vp.Grid
}
