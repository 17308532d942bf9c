package render

import (
	"image"
	"image/color"
	"image/draw"
	"sync"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/swipesnake/internal/application/system"
	"github.com/younwookim/swipesnake/internal/domain/entity"
)

type rectCall struct {
	x0, y0, x1, y1 int
	c              color.NRGBA
}

type textCall struct {
	text string
	x, y int
	c    color.NRGBA
	size int
}

// fakeCanvas records drawing calls
type fakeCanvas struct {
	clears []color.NRGBA
	rects  []rectCall
	texts  []textCall
}

func (f *fakeCanvas) Clear(c color.NRGBA) {
	f.clears = append(f.clears, c)
}

func (f *fakeCanvas) FillRect(x0, y0, x1, y1 int, c color.NRGBA) {
	f.rects = append(f.rects, rectCall{x0, y0, x1, y1, c})
}

func (f *fakeCanvas) DrawText(text string, x, y int, c color.NRGBA, size int) {
	f.texts = append(f.texts, textCall{text, x, y, c, size})
}

func (f *fakeCanvas) rectsWithColor(c color.NRGBA) []rectCall {
	var out []rectCall
	for _, r := range f.rects {
		if r.c == c {
			out = append(out, r)
		}
	}
	return out
}

func testSnapshot() system.Snapshot {
	return system.Snapshot{
		Grid:    entity.Grid{Cols: 4, Rows: 3},
		Snake:   []entity.Cell{{2, 1}, {1, 1}, {0, 1}},
		Food:    entity.Cell{3, 2},
		HasFood: true,
		Score:   3,
	}
}

func TestRenderer_Draw(t *testing.T) {
	palette := DefaultPalette()
	r := NewRenderer(palette, 30)
	canvas := &fakeCanvas{}

	r.Draw(canvas, testSnapshot())

	require.Len(t, canvas.clears, 1)
	assert.Equal(t, palette.Background, canvas.clears[0])

	assert.Len(t, canvas.rectsWithColor(palette.Grid), 12, "one faint rect per grid cell")

	food := canvas.rectsWithColor(palette.Food)
	require.Len(t, food, 1)
	assert.Equal(t, rectCall{93, 63, 117, 87, palette.Food}, food[0], "food inset by 10% of the cell")

	snake := canvas.rectsWithColor(palette.Snake)
	require.Len(t, snake, 3)
	assert.Equal(t, rectCall{63, 33, 87, 57, palette.Snake}, snake[0])

	require.Len(t, canvas.texts, 1)
	assert.Equal(t, textCall{"Score: 3", 16, 24 + 16, palette.Text, 24}, canvas.texts[0])
}

func TestRenderer_DrawOrder(t *testing.T) {
	palette := DefaultPalette()
	r := NewRenderer(palette, 10)
	r.DrawGrid = false
	canvas := &fakeCanvas{}

	r.Draw(canvas, testSnapshot())

	require.Len(t, canvas.rects, 4)
	assert.Equal(t, palette.Food, canvas.rects[0].c, "food before snake")
	for _, rc := range canvas.rects[1:] {
		assert.Equal(t, palette.Snake, rc.c)
	}
}

func TestRenderer_NoFoodOnFullGrid(t *testing.T) {
	palette := DefaultPalette()
	r := NewRenderer(palette, 10)
	canvas := &fakeCanvas{}

	snap := testSnapshot()
	snap.HasFood = false
	r.Draw(canvas, snap)

	assert.Empty(t, canvas.rectsWithColor(palette.Food))
	assert.Len(t, canvas.rectsWithColor(palette.Snake), 3)
}

func TestRenderer_SmallCells(t *testing.T) {
	r := NewRenderer(DefaultPalette(), 1)
	r.TextInset = 0

	assert.Equal(t, 1, r.TextSize(), "text size never drops to zero")

	x0, y0, x1, y1 := r.CellRect(3, 2)
	assert.Equal(t, []int{3, 2, 4, 3}, []int{x0, y0, x1, y1}, "no margin on one-pixel cells")

	assert.Equal(t, 1, NewRenderer(DefaultPalette(), 0).CellSize)
}

func TestScoreText(t *testing.T) {
	assert.Equal(t, "Score: 0", ScoreText(0))
	assert.Equal(t, "Score: 42", ScoreText(42))
}

func TestFrame_PublishLatest(t *testing.T) {
	var f Frame

	_, ok := f.Latest()
	assert.False(t, ok)

	snap := testSnapshot()
	f.Publish(snap)

	got, ok := f.Latest()
	require.True(t, ok)
	assert.Equal(t, snap, got)

	f.Reset()
	_, ok = f.Latest()
	assert.False(t, ok)
}

func TestFrame_ConcurrentPublish(t *testing.T) {
	var f Frame
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			s := testSnapshot()
			s.Score = i
			f.Publish(s)
		}
	}()

	for i := 0; i < 500; i++ {
		if s, ok := f.Latest(); ok {
			assert.Len(t, s.Snake, 3, "snapshots are never torn")
		}
	}
	wg.Wait()

	s, ok := f.Latest()
	require.True(t, ok)
	assert.Equal(t, 499, s.Score)
}

func TestBlend(t *testing.T) {
	bg := color.NRGBA{20, 20, 20, 255}

	assert.Equal(t, color.NRGBA{255, 0, 0, 255}, blend(color.NRGBA{255, 0, 0, 255}, bg), "opaque passes through")
	assert.Equal(t, color.NRGBA{51, 51, 51, 255}, blend(color.NRGBA{255, 255, 255, 34}, bg))
	assert.Equal(t, bg, blend(color.NRGBA{255, 255, 255, 0}, bg), "transparent shows background")
}

func TestBlend_MatchesImageDrawOver(t *testing.T) {
	palette := DefaultPalette()

	dst := image.NewRGBA(image.Rect(0, 0, 1, 1))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(palette.Background), image.Point{}, draw.Src)
	draw.Draw(dst, dst.Bounds(), image.NewUniform(palette.Grid), image.Point{}, draw.Over)

	got := blend(palette.Grid, palette.Background)
	want := dst.RGBAAt(0, 0)
	assert.Equal(t, color.NRGBA{want.R, want.G, want.B, want.A}, got, "terminal blend agrees with premultiplied compositing")
	assert.Equal(t, color.NRGBA{51, 51, 51, 255}, got, "grid is a faint overlay, not near-opaque white")
}

func TestTermCanvas(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(20, 6)

	canvas := NewTermCanvas(screen)
	canvas.Clear(color.NRGBA{0, 0, 0, 255})
	canvas.FillRect(1, 1, 2, 2, color.NRGBA{0, 255, 0, 255})
	canvas.DrawText("Hi", 0, 1, color.NRGBA{255, 255, 255, 255}, 1)
	canvas.Show()

	_, _, style, _ := screen.GetContent(2, 1)
	_, bg, _ := style.Decompose()
	assert.Equal(t, tcell.NewRGBColor(0, 255, 0), bg, "one canvas pixel covers two columns")

	_, _, style, _ = screen.GetContent(3, 1)
	_, bg, _ = style.Decompose()
	assert.Equal(t, tcell.NewRGBColor(0, 255, 0), bg)

	_, _, style, _ = screen.GetContent(4, 1)
	_, bg, _ = style.Decompose()
	assert.Equal(t, tcell.NewRGBColor(0, 0, 0), bg)

	r, _, _, _ := screen.GetContent(0, 0)
	assert.Equal(t, 'H', r)
	r, _, _, _ = screen.GetContent(1, 0)
	assert.Equal(t, 'i', r)
}
