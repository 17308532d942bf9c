package render

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
)

// TermCanvas draws onto a tcell screen. One canvas pixel is one terminal row
// high and two columns wide so square cells look square.
type TermCanvas struct {
	screen tcell.Screen
	bg     color.NRGBA
}

// NewTermCanvas creates a canvas drawing on screen
func NewTermCanvas(screen tcell.Screen) *TermCanvas {
	return &TermCanvas{screen: screen}
}

// Clear fills the whole screen
func (t *TermCanvas) Clear(c color.NRGBA) {
	t.bg = c
	t.screen.Fill(' ', tcell.StyleDefault.Background(toTcell(c)))
}

// FillRect fills [x0, x1) x [y0, y1). Translucent colors are blended over the clear color.
func (t *TermCanvas) FillRect(x0, y0, x1, y1 int, c color.NRGBA) {
	style := tcell.StyleDefault.Background(toTcell(blend(c, t.bg)))
	for y := y0; y < y1; y++ {
		for x := x0 * 2; x < x1*2; x++ {
			t.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// DrawText writes text on the row above the baseline. Size is ignored.
func (t *TermCanvas) DrawText(text string, x, y int, c color.NRGBA, _ int) {
	row := y - 1
	if row < 0 {
		row = 0
	}
	style := tcell.StyleDefault.Foreground(toTcell(c)).Background(toTcell(t.bg))
	col := x * 2
	for _, r := range text {
		t.screen.SetContent(col, row, r, nil, style)
		col++
	}
}

// Show flushes the frame to the terminal
func (t *TermCanvas) Show() {
	t.screen.Show()
}

func toTcell(c color.NRGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// blend composites c over bg using c's alpha
func blend(c, bg color.NRGBA) color.NRGBA {
	if c.A == 255 {
		return c
	}
	a := uint32(c.A)
	mix := func(fg, back uint8) uint8 {
		return uint8((uint32(fg)*a + uint32(back)*(255-a)) / 255)
	}
	return color.NRGBA{mix(c.R, bg.R), mix(c.G, bg.G), mix(c.B, bg.B), 255}
}
