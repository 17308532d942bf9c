package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewGrid_ClampsToOne(t *testing.T) {
	tests := []struct {
		name       string
		cols, rows int
		want       Grid
	}{
		{"normal", 20, 15, Grid{Cols: 20, Rows: 15}},
		{"zero cols", 0, 15, Grid{Cols: 1, Rows: 15}},
		{"negative rows", 20, -3, Grid{Cols: 20, Rows: 1}},
		{"both degenerate", 0, 0, Grid{Cols: 1, Rows: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewGrid(tt.cols, tt.rows))
		})
	}
}

func TestGrid_Wrap(t *testing.T) {
	g := NewGrid(20, 10)

	tests := []struct {
		name string
		in   Cell
		want Cell
	}{
		{"inside", Cell{5, 5}, Cell{5, 5}},
		{"off left edge", Cell{-1, 5}, Cell{19, 5}},
		{"off right edge", Cell{20, 5}, Cell{0, 5}},
		{"off top edge", Cell{3, -1}, Cell{3, 9}},
		{"off bottom edge", Cell{3, 10}, Cell{3, 0}},
		{"corner", Cell{-1, -1}, Cell{19, 9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.Wrap(tt.in)
			assert.Equal(t, tt.want, got)
			assert.True(t, g.Contains(got))
		})
	}
}

func TestGrid_Contains(t *testing.T) {
	g := NewGrid(4, 3)

	assert.True(t, g.Contains(Cell{0, 0}))
	assert.True(t, g.Contains(Cell{3, 2}))
	assert.False(t, g.Contains(Cell{4, 0}))
	assert.False(t, g.Contains(Cell{0, 3}))
	assert.False(t, g.Contains(Cell{-1, 0}))
	assert.Equal(t, 12, g.Area())
	assert.Equal(t, Cell{2, 1}, g.Center())
	assert.Equal(t, "4x3", g.String())
}

func TestViewportFor(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		wantCell      int
		wantGrid      Grid
	}{
		{"phone portrait", 1080, 1920, 33, Grid{Cols: 32, Rows: 58}},
		{"small window uses minimum cell", 320, 240, 16, Grid{Cols: 20, Rows: 15}},
		{"degenerate surface", 0, 0, 16, Grid{Cols: 1, Rows: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vp := ViewportFor(tt.width, tt.height, 32, 16)
			assert.Equal(t, tt.wantCell, vp.CellSize)
			assert.Equal(t, tt.wantGrid, vp.Grid)
		})
	}
}

func TestDirection_Delta(t *testing.T) {
	tests := []struct {
		dir    Direction
		dx, dy int
	}{
		{DirUp, 0, -1},
		{DirDown, 0, 1},
		{DirLeft, -1, 0},
		{DirRight, 1, 0},
		{Direction(42), 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			dx, dy := tt.dir.Delta()
			assert.Equal(t, tt.dx, dx)
			assert.Equal(t, tt.dy, dy)
		})
	}
}

func TestDirection_Opposite(t *testing.T) {
	assert.Equal(t, DirDown, DirUp.Opposite())
	assert.Equal(t, DirUp, DirDown.Opposite())
	assert.Equal(t, DirRight, DirLeft.Opposite())
	assert.Equal(t, DirLeft, DirRight.Opposite())

	for d := DirUp; d <= DirRight; d++ {
		assert.Equal(t, d, d.Opposite().Opposite(), "opposite is an involution")
	}
}

func TestDirection_Step(t *testing.T) {
	assert.Equal(t, Cell{11, 10}, DirRight.Step(Cell{10, 10}))
	assert.Equal(t, Cell{-1, 10}, DirLeft.Step(Cell{0, 10}), "step does not wrap")
}

func TestDirection_String(t *testing.T) {
	assert.Equal(t, "Up", DirUp.String())
	assert.Equal(t, "Right", DirRight.String())
	assert.Equal(t, "Unknown", Direction(-1).String())
}
