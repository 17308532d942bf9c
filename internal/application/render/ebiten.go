package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Debug font glyph size used by ebitenutil.DebugPrint
const (
	debugGlyphWidth  = 6
	debugGlyphHeight = 16
)

// EbitenCanvas draws onto an ebiten image
type EbitenCanvas struct {
	dst *ebiten.Image

	// cached text image, redrawn only when the text changes
	text    string
	textImg *ebiten.Image
}

// NewEbitenCanvas creates a canvas with no target; call SetTarget before drawing
func NewEbitenCanvas() *EbitenCanvas {
	return &EbitenCanvas{}
}

// SetTarget sets the image drawn on by the following calls
func (e *EbitenCanvas) SetTarget(dst *ebiten.Image) {
	e.dst = dst
}

// Clear fills the whole target
func (e *EbitenCanvas) Clear(c color.NRGBA) {
	e.dst.Fill(c)
}

// FillRect fills [x0, x1) x [y0, y1)
func (e *EbitenCanvas) FillRect(x0, y0, x1, y1 int, c color.NRGBA) {
	if x1 <= x0 || y1 <= y0 {
		return
	}
	ebitenutil.DrawRect(e.dst, float64(x0), float64(y0), float64(x1-x0), float64(y1-y0), c)
}

// DrawText draws text scaled from the debug font so its height matches size
func (e *EbitenCanvas) DrawText(text string, x, y int, c color.NRGBA, size int) {
	if text == "" {
		return
	}
	if e.textImg == nil || text != e.text {
		if e.textImg != nil {
			e.textImg.Deallocate()
		}
		e.textImg = ebiten.NewImage(len(text)*debugGlyphWidth, debugGlyphHeight)
		ebitenutil.DebugPrint(e.textImg, text)
		e.text = text
	}

	scale := float64(size) / debugGlyphHeight
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(x), float64(y-size))
	op.ColorScale.ScaleWithColor(c)
	e.dst.DrawImage(e.textImg, op)
}
