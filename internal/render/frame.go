// Package render paints a frame of the visualizer onto any Canvas. It only
// produces rects and spans; the shapes come from layout so that what is
// painted is exactly what is clickable.
package render

import (
	"fmt"
	"image/color"
	"time"

	"lifeviz/pkg/core"
	"lifeviz/pkg/geom"
	"lifeviz/pkg/layout"
)

// Canvas is the drawing surface a driver provides.
type Canvas interface {
	SetColor(c color.Color)
	FillRect(r geom.Rect)
	FillSpans(spans []geom.Span)
}

// TextCanvas is implemented by canvases that can draw labels. The origin is
// the left end of the text baseline.
type TextCanvas interface {
	DrawText(s string, origin geom.Point)
}

// Palette holds the colors of a frame.
type Palette struct {
	Background color.Color
	Lines      color.Color
	Cells      color.Color
	Controls   color.Color
	Button     color.Color
	Track      color.Color
}

// DefaultPalette is black lines and controls on white with gray cells.
func DefaultPalette() Palette {
	return Palette{
		Background: color.White,
		Lines:      color.Black,
		Cells:      color.Gray{Y: 128},
		Controls:   color.Black,
		Button:     color.Gray{Y: 220},
		Track:      color.Gray{Y: 180},
	}
}

// Frame is everything DrawFrame needs besides the canvas.
type Frame struct {
	Layout  *layout.Layout
	Size    core.Size
	Cells   []uint8
	Playing bool
	// Speed is the slider fraction in [0, 1].
	Speed    float64
	Interval time.Duration
	Palette  Palette
}

// DrawFrame paints the grid, the live cells in the visible window and the controls.
func DrawFrame(cv Canvas, f Frame) {
	l := f.Layout
	cv.SetColor(f.Palette.Background)
	cv.FillRect(geom.Rect{W: l.Width, H: l.Height})

	cv.SetColor(f.Palette.Lines)
	for _, line := range l.GridLines() {
		cv.FillRect(line)
	}

	cv.SetColor(f.Palette.Cells)
	drawCells(cv, l, f.Size, f.Cells)

	cv.SetColor(f.Palette.Controls)
	if f.Playing {
		cv.FillRect(l.Pause[0])
		cv.FillRect(l.Pause[1])
	} else {
		cv.FillSpans(l.Play.Fill())
	}

	drawUpload(cv, l, f.Palette)
	drawSlider(cv, l, f)
}

func drawCells(cv Canvas, l *layout.Layout, size core.Size, cells []uint8) {
	if len(cells) != size.W*size.H {
		return
	}
	for r := 0; r < l.Rows; r++ {
		br := l.Origin.Y + r
		if br < 0 || br >= size.H {
			continue
		}
		for c := 0; c < l.Cols; c++ {
			bc := l.Origin.X + c
			if bc < 0 || bc >= size.W {
				continue
			}
			if cells[br*size.W+bc] != 0 {
				cv.FillRect(l.CellSquare(r, c))
			}
		}
	}
}

func drawUpload(cv Canvas, l *layout.Layout, p Palette) {
	cv.SetColor(p.Button)
	cv.FillRect(l.Upload)
	head, stem := l.UploadGlyph()
	cv.SetColor(p.Controls)
	cv.FillSpans(head.Fill())
	cv.FillRect(stem)
}

func drawSlider(cv Canvas, l *layout.Layout, f Frame) {
	s := l.Slider
	cv.SetColor(f.Palette.Track)
	cv.FillRect(s.Track)
	cv.SetColor(f.Palette.Controls)
	cv.FillRect(s.Filled(f.Speed))
	cv.FillRect(s.KnobRect(f.Speed))
	if tc, ok := cv.(TextCanvas); ok {
		tc.DrawText(fmt.Sprintf("%d ms", f.Interval.Milliseconds()), l.LabelOrigin())
	}
}
