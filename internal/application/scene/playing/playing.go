// Package playing provides the main gameplay scene.
package playing

import (
	"context"
	"log/slog"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/swipesnake/internal/application/loop"
	"github.com/younwookim/swipesnake/internal/application/render"
	"github.com/younwookim/swipesnake/internal/application/replay"
	"github.com/younwookim/swipesnake/internal/application/scene"
	"github.com/younwookim/swipesnake/internal/application/system"
	"github.com/younwookim/swipesnake/internal/domain/entity"
	"github.com/younwookim/swipesnake/internal/infrastructure/config"
	"github.com/younwookim/swipesnake/internal/infrastructure/sound"
)

// Keyboard fallbacks for desktop play
var keyDirections = map[ebiten.Key]entity.Direction{
	ebiten.KeyArrowUp:    entity.DirUp,
	ebiten.KeyArrowDown:  entity.DirDown,
	ebiten.KeyArrowLeft:  entity.DirLeft,
	ebiten.KeyArrowRight: entity.DirRight,
	ebiten.KeyW:          entity.DirUp,
	ebiten.KeyS:          entity.DirDown,
	ebiten.KeyA:          entity.DirLeft,
	ebiten.KeyD:          entity.DirRight,
}

// Playing is the main gameplay scene.
//
// The board is stepped by a loop goroutine; Update only feeds gestures into
// the input system and Draw only reads the last published frame.
type Playing struct {
	config *config.GameConfig
	logger *slog.Logger
	sound  sound.Player

	seed     int64
	board    *system.Board
	input    *system.InputSystem
	loop     *loop.Loop
	recorder *replay.Recorder

	frame    render.Frame
	renderer *render.Renderer
	canvas   *render.EbitenCanvas

	cancel context.CancelFunc

	// active touch gesture
	touchID     ebiten.TouchID
	touchActive bool
	touchIDs    []ebiten.TouchID
}

// New creates a new Playing scene. A nil player disables sound.
func New(cfg *config.GameConfig, logger *slog.Logger, player sound.Player) *Playing {
	if logger == nil {
		logger = slog.Default()
	}
	if player == nil {
		player = sound.Silent{}
	}

	palette := render.Palette{
		Background: cfg.Palette.Background.Color(),
		Grid:       cfg.Palette.Grid.Color(),
		Food:       cfg.Palette.Food.Color(),
		Snake:      cfg.Palette.Snake.Color(),
		Text:       cfg.Palette.Text.Color(),
	}

	return &Playing{
		config:   cfg,
		logger:   logger,
		sound:    player,
		renderer: render.NewRenderer(palette, cfg.Grid.MinCellPx),
		canvas:   render.NewEbitenCanvas(),
	}
}

// OnEnter starts a new session (implements scene.Scene)
func (p *Playing) OnEnter() {
	p.seed = p.config.Rules.Seed
	if p.seed == 0 {
		p.seed = time.Now().UnixNano()
	}

	grid := entity.NewGrid(p.config.Grid.Cols, p.config.Grid.Rows)
	p.board = system.NewBoard(grid, rand.New(rand.NewSource(p.seed)))
	p.input = system.NewInputSystem(p.board)
	p.recorder = replay.NewRecorder(p.seed, grid)
	p.board.OnRoundOver = p.roundOver
	p.frame.Publish(p.board.Snapshot())

	p.loop = loop.New(p.board, p.config.Loop.TickInterval(), p.onStep, loop.WithLogger(p.logger))

	var ctx context.Context
	ctx, p.cancel = context.WithCancel(context.Background())
	p.loop.Start(ctx)

	p.logger.Info("session started", "seed", p.seed, "cols", grid.Cols, "rows", grid.Rows)
}

// OnExit stops the loop (implements scene.Scene)
func (p *Playing) OnExit() {
	if p.loop == nil {
		return
	}
	p.loop.Stop()
	p.cancel()

	data := p.recorder.GetData()
	p.logger.Info("session ended", "seed", data.Seed, "ticks", data.Ticks, "events", len(data.Events))
	p.loop = nil
	p.frame.Reset()
}

// OnResize re-derives cell size and grid from the surface (implements scene.Scene)
func (p *Playing) OnResize(widthPx, heightPx int) {
	vp := entity.ViewportFor(widthPx, heightPx, p.config.Grid.TilesPerRow, p.config.Grid.MinCellPx)
	p.renderer.CellSize = vp.CellSize
	if p.loop != nil {
		p.loop.Resize(vp.Grid.Cols, vp.Grid.Rows)
	}
}

// Update polls gestures (implements scene.Scene)
func (p *Playing) Update(_ float64) (scene.Scene, error) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return nil, ebiten.Termination
	}

	p.updateMouse()
	p.updateTouch()

	for key, dir := range keyDirections {
		if inpututil.IsKeyJustPressed(key) {
			p.input.RequestDirection(dir)
		}
	}

	return nil, nil // nil = stay on this scene
}

func (p *Playing) updateMouse() {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		p.input.OnGestureStart(float64(x), float64(y))
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		p.input.OnGestureEnd(float64(x), float64(y))
	}
}

// updateTouch follows the first finger down until it lifts
func (p *Playing) updateTouch() {
	if !p.touchActive {
		p.touchIDs = inpututil.AppendJustPressedTouchIDs(p.touchIDs[:0])
		if len(p.touchIDs) > 0 {
			p.touchID = p.touchIDs[0]
			p.touchActive = true
			x, y := ebiten.TouchPosition(p.touchID)
			p.input.OnGestureStart(float64(x), float64(y))
		}
		return
	}

	if inpututil.IsTouchJustReleased(p.touchID) {
		x, y := inpututil.TouchPositionInPreviousTick(p.touchID)
		p.input.OnGestureEnd(float64(x), float64(y))
		p.touchActive = false
	}
}

// Draw renders the latest frame (implements scene.Scene)
func (p *Playing) Draw(screen *ebiten.Image) {
	snap, ok := p.frame.Latest()
	if !ok {
		screen.Fill(p.renderer.Palette.Background)
		return
	}
	p.canvas.SetTarget(screen)
	p.renderer.Draw(p.canvas, snap)
}

// onStep runs on the loop goroutine after every step
func (p *Playing) onStep(snap system.Snapshot) {
	p.recorder.Observe(snap)
	p.frame.Publish(snap)
	p.sound.Play(sound.CueFor(snap.Outcome))
}

// roundOver runs on the loop goroutine before the board restarts
func (p *Playing) roundOver(sum system.RoundSummary) {
	p.logger.Info("round over",
		"score", sum.Score,
		"length", sum.Length,
		"tick", sum.Tick,
		"turns", p.recorder.RoundTurns(),
	)
}

// Running reports whether the loop goroutine is active
func (p *Playing) Running() bool {
	return p.loop != nil
}

// Journal returns the journal recorded so far. Call it after OnExit.
func (p *Playing) Journal() replay.SessionData {
	return p.recorder.GetData()
}
