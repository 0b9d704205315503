package render

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"
	"time"

	"lifeviz/pkg/core"
	"lifeviz/pkg/geom"
	"lifeviz/pkg/layout"
	"lifeviz/pkg/life"
)

func testFrame(t *testing.T, sim *life.Life, playing bool) (*ImageCanvas, *layout.Layout) {
	t.Helper()
	size := sim.Size()
	l, err := layout.New(layout.DefaultConfig(), 720, 720, size.H, size.W)
	if err != nil {
		t.Fatalf("layout.New: %v", err)
	}
	cv := NewImageCanvas(l.Width, l.Height)
	DrawFrame(cv, Frame{
		Layout:   l,
		Size:     size,
		Cells:    sim.Cells(),
		Playing:  playing,
		Speed:    1,
		Interval: time.Millisecond,
		Palette:  DefaultPalette(),
	})
	return cv, l
}

func newSim(rows, cols int) *life.Life {
	cfg := life.DefaultConfig()
	cfg.Rows, cfg.Cols = rows, cols
	return life.New(cfg)
}

func isColor(cv *ImageCanvas, x, y int, c color.Color) bool {
	r1, g1, b1, a1 := cv.Image().At(x, y).RGBA()
	r2, g2, b2, a2 := c.RGBA()
	return r1 == r2 && g1 == g2 && b1 == b2 && a1 == a2
}

func TestPaintedPlayButtonIsClickable(t *testing.T) {
	cv, l := testFrame(t, newSim(20, 20), false)
	b := l.Play.Bounds()
	for y := b.Y - 3; y < b.Y+b.H+3; y++ {
		for x := b.X - 3; x < b.X+b.W+3; x++ {
			painted := isColor(cv, x, y, color.Black)
			clickable := l.Release(x, y, false).Action == layout.ActionPlay
			if painted != clickable {
				t.Fatalf("(%d,%d): painted=%v clickable=%v", x, y, painted, clickable)
			}
		}
	}
}

func TestPauseBarsReplacePlay(t *testing.T) {
	cv, l := testFrame(t, newSim(20, 20), true)
	for _, bar := range l.Pause {
		if !isColor(cv, bar.X, bar.Y, color.Black) {
			t.Fatalf("pause bar %+v not painted", bar)
		}
	}
	a := l.Play[2]
	if isColor(cv, a.X, a.Y, color.Black) {
		t.Fatal("play tip painted while playing")
	}
}

func TestLiveCellsPaintedInVisibleWindow(t *testing.T) {
	sim := newSim(60, 60)
	sim.Toggle(31, 30)
	cv, l := testFrame(t, sim, false)

	r, c := 30-l.Origin.Y, 31-l.Origin.X
	sq := l.CellSquare(r, c)
	if !isColor(cv, sq.X+sq.W/2, sq.Y+sq.H/2, DefaultPalette().Cells) {
		t.Fatalf("live cell (%d,%d) not painted at %+v", r, c, sq)
	}
	hit := l.Release(sq.X, sq.Y, false)
	if hit.Action != layout.ActionToggleCell || hit.Cell != (geom.Point{X: 31, Y: 30}) {
		t.Fatalf("painted cell maps to %+v", hit)
	}
	other := l.CellSquare(r, c+1)
	if isColor(cv, other.X+1, other.Y+1, DefaultPalette().Cells) {
		t.Fatal("dead neighbor painted")
	}
	line := l.Mapper.GridToScreen(r, c)
	if !isColor(cv, line.X, line.Y+5, color.Black) {
		t.Fatal("grid line missing beside live cell")
	}
}

func TestDrawFrameIgnoresMismatchedCells(t *testing.T) {
	l, err := layout.New(layout.DefaultConfig(), 720, 720, 20, 20)
	if err != nil {
		t.Fatalf("layout.New: %v", err)
	}
	cv := NewImageCanvas(720, 720)
	DrawFrame(cv, Frame{Layout: l, Size: core.Size{W: 20, H: 20}, Cells: make([]uint8, 3), Palette: DefaultPalette()})
	sq := l.CellSquare(0, 0)
	if !isColor(cv, sq.X+1, sq.Y+1, color.White) {
		t.Fatal("cells painted from a short buffer")
	}
}

func TestEncodePNG(t *testing.T) {
	cv, _ := testFrame(t, newSim(20, 20), false)
	var buf bytes.Buffer
	if err := cv.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	if img.Bounds().Dx() != 720 || img.Bounds().Dy() != 720 {
		t.Fatalf("bounds = %v", img.Bounds())
	}
}

func TestImageCanvasClips(t *testing.T) {
	cv := NewImageCanvas(10, 10)
	cv.SetColor(color.White)
	cv.FillRect(geom.Rect{X: -5, Y: -5, W: 100, H: 100})
	cv.FillSpans([]geom.Span{{Y: -1, X0: 0, X1: 4}, {Y: 3, X0: -8, X1: 40}})
	if !isColor(cv, 9, 9, color.White) || !isColor(cv, 0, 0, color.White) {
		t.Fatal("clipped fill missed in-bounds pixels")
	}
}
