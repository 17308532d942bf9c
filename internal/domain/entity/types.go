package entity

import "strconv"

// Cell is a single grid position
type Cell struct {
	X, Y int
}

// Add returns the cell offset by (dx, dy), without wrapping
func (c Cell) Add(dx, dy int) Cell {
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// Grid holds the playfield dimensions in cells
type Grid struct {
	Cols int
	Rows int
}

// NewGrid creates a grid, clamping both dimensions to at least one cell
func NewGrid(cols, rows int) Grid {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return Grid{Cols: cols, Rows: rows}
}

// Wrap maps any cell onto the torus
func (g Grid) Wrap(c Cell) Cell {
	return Cell{X: mod(c.X, g.Cols), Y: mod(c.Y, g.Rows)}
}

// Contains reports whether the cell lies inside the grid without wrapping
func (g Grid) Contains(c Cell) bool {
	return c.X >= 0 && c.X < g.Cols && c.Y >= 0 && c.Y < g.Rows
}

// Area returns the number of cells in the grid
func (g Grid) Area() int {
	return g.Cols * g.Rows
}

// Center returns the middle cell (rounded down)
func (g Grid) Center() Cell {
	return Cell{X: g.Cols / 2, Y: g.Rows / 2}
}

func (g Grid) String() string {
	return strconv.Itoa(g.Cols) + "x" + strconv.Itoa(g.Rows)
}

// Viewport describes how a pixel surface is divided into cells
type Viewport struct {
	CellSize int
	Grid     Grid
}

// ViewportFor computes the cell size and grid for a surface of widthPx x heightPx.
// The cell size is width/tilesPerRow but never smaller than minCellPx.
func ViewportFor(widthPx, heightPx, tilesPerRow, minCellPx int) Viewport {
	if tilesPerRow < 1 {
		tilesPerRow = 1
	}
	if minCellPx < 1 {
		minCellPx = 1
	}

	cell := widthPx / tilesPerRow
	if cell < minCellPx {
		cell = minCellPx
	}

	return Viewport{
		CellSize: cell,
		Grid:     NewGrid(widthPx/cell, heightPx/cell),
	}
}

func mod(v, n int) int {
	if n <= 0 {
		return 0
	}
	r := v % n
	if r < 0 {
		r += n
	}
	return r
}
