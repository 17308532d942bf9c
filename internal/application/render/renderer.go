// Package render draws board snapshots onto an abstract canvas.
//
// Canvas implementations wrap a concrete surface (an ebiten image or a
// terminal screen). The Renderer itself only knows about pixels, cells and
// the three drawing primitives.
package render

import (
	"fmt"
	"image/color"

	"github.com/younwookim/swipesnake/internal/application/system"
)

// Canvas is the drawing surface a frontend provides
type Canvas interface {
	// Clear fills the whole surface
	Clear(c color.NRGBA)
	// FillRect fills [x0, x1) x [y0, y1)
	FillRect(x0, y0, x1, y1 int, c color.NRGBA)
	// DrawText draws text with its baseline starting at (x, y)
	DrawText(text string, x, y int, c color.NRGBA, size int)
}

// Palette holds the colors used for a frame
type Palette struct {
	Background color.NRGBA
	Grid       color.NRGBA
	Food       color.NRGBA
	Snake      color.NRGBA
	Text       color.NRGBA
}

// DefaultPalette returns the dark theme
func DefaultPalette() Palette {
	return Palette{
		Background: color.NRGBA{20, 20, 20, 255},
		Grid:       color.NRGBA{255, 255, 255, 34},
		Food:       color.NRGBA{255, 85, 85, 255},
		Snake:      color.NRGBA{102, 255, 102, 255},
		Text:       color.NRGBA{255, 255, 255, 255},
	}
}

// Renderer draws snapshots cell by cell
type Renderer struct {
	Palette  Palette
	CellSize int

	// TextInset is the distance of the score text from the top-left corner
	TextInset int
	// DrawGrid toggles the faint per-cell background
	DrawGrid bool
}

// NewRenderer creates a renderer for cells of cellSize pixels
func NewRenderer(palette Palette, cellSize int) *Renderer {
	if cellSize < 1 {
		cellSize = 1
	}
	return &Renderer{
		Palette:   palette,
		CellSize:  cellSize,
		TextInset: 16,
		DrawGrid:  true,
	}
}

// Draw renders a full frame
func (r *Renderer) Draw(c Canvas, snap system.Snapshot) {
	c.Clear(r.Palette.Background)

	if r.DrawGrid {
		cell := r.CellSize
		for x := 0; x < snap.Grid.Cols; x++ {
			for y := 0; y < snap.Grid.Rows; y++ {
				c.FillRect(x*cell, y*cell, (x+1)*cell, (y+1)*cell, r.Palette.Grid)
			}
		}
	}

	if snap.HasFood {
		r.drawCell(c, snap.Food.X, snap.Food.Y, r.Palette.Food)
	}
	for _, s := range snap.Snake {
		r.drawCell(c, s.X, s.Y, r.Palette.Snake)
	}

	size := r.TextSize()
	c.DrawText(ScoreText(snap.Score), r.TextInset, size+r.TextInset, r.Palette.Text, size)
}

// TextSize returns the score text height (80% of a cell)
func (r *Renderer) TextSize() int {
	size := r.CellSize * 8 / 10
	if size < 1 {
		size = 1
	}
	return size
}

// CellRect returns the inset rectangle used for a snake or food cell
func (r *Renderer) CellRect(x, y int) (x0, y0, x1, y1 int) {
	cell := r.CellSize
	margin := cell / 10
	return x*cell + margin, y*cell + margin, (x+1)*cell - margin, (y+1)*cell - margin
}

func (r *Renderer) drawCell(c Canvas, x, y int, col color.NRGBA) {
	x0, y0, x1, y1 := r.CellRect(x, y)
	c.FillRect(x0, y0, x1, y1, col)
}

// ScoreText formats the score line
func ScoreText(score int) string {
	return fmt.Sprintf("Score: %d", score)
}
