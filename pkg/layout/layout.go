package layout

import (
	"fmt"

	"lifeviz/pkg/geom"
)

// Action is the logical outcome of a pointer event.
type Action uint8

const (
	ActionNone Action = iota
	ActionToggleCell
	ActionPlay
	ActionPause
	ActionSlider
	ActionUpload
)

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionToggleCell:
		return "toggle"
	case ActionPlay:
		return "play"
	case ActionPause:
		return "pause"
	case ActionSlider:
		return "slider"
	case ActionUpload:
		return "upload"
	default:
		return fmt.Sprintf("Action(%d)", uint8(a))
	}
}

// Hit is the result of hit testing a pixel. Cell is set for
// ActionToggleCell and holds board coordinates as Point{X: col, Y: row}.
type Hit struct {
	Action Action
	Cell   geom.Point
}

// playAspect is sqrt(3), the width-to-half-height ratio of an equilateral triangle.
const playAspect = 1.7321

// Layout is the view computed for one viewport size: the visible part of
// the board and the shapes of every control. The same shapes are used to
// paint and to hit test.
type Layout struct {
	Config Config
	Mapper Mapper

	Width, Height int

	// Rows and Cols are the visible grid dimensions.
	Rows, Cols int
	// Origin is the board cell shown at visible (0, 0), as Point{X: col, Y: row}.
	Origin geom.Point

	Play   geom.Triangle
	Pause  [2]geom.Rect
	Slider Slider
	Upload geom.Rect
}

// New lays out a width x height viewport showing the center of a
// simRows x simCols board.
func New(cfg Config, width, height, simRows, simCols int) (*Layout, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	m := cfg.Mapper()
	rows, cols, err := m.Visible(width, height, simRows, simCols)
	if err != nil {
		return nil, err
	}
	l := &Layout{
		Config: cfg,
		Mapper: m,
		Width:  width,
		Height: height,
		Rows:   rows,
		Cols:   cols,
		Origin: geom.Point{X: simCols/2 - cols/2, Y: simRows/2 - rows/2},
	}
	l.placeControls()
	return l, nil
}

func (l *Layout) placeControls() {
	w, h := l.Width, l.Height
	margin := l.Config.Margin
	bh := l.Config.buttonHeight()
	padTop := (margin - bh) / 2
	padBottom := margin - padTop - bh
	top := h - margin + padTop

	playW := int(float64(bh/2) * playAspect)
	l.Play = geom.Triangle{
		{X: (w - playW) / 2, Y: top},
		{X: (w - playW) / 2, Y: h - padBottom},
		{X: (w + playW) / 2, Y: h - padBottom - bh/2},
	}

	barW := bh / 4
	gap := bh / 3
	l.Pause = [2]geom.Rect{
		{X: (w-gap)/2 - barW, Y: h - padBottom - bh, W: barW, H: bh},
		{X: (w + gap) / 2, Y: h - padBottom - bh, W: barW, H: bh},
	}

	sw := l.Config.SliderWidth
	l.Slider = Slider{
		Track: geom.Rect{X: w - margin - sw, Y: h - margin + (margin-l.Config.SliderHeight)/2, W: sw, H: l.Config.SliderHeight},
		Area:  geom.Rect{X: w - margin - sw, Y: top, W: sw, H: bh},
		Knob:  l.Config.KnobWidth,
	}

	icon := l.Config.iconSize()
	l.Upload = geom.Rect{X: margin, Y: h - margin + (margin-icon)/2, W: icon, H: icon}
}

// Cell maps a pixel to the board cell under it. ok is false outside the grid.
func (l *Layout) Cell(x, y int) (cell geom.Point, ok bool) {
	v, ok := l.Mapper.ScreenToGrid(x, y, l.Rows, l.Cols)
	if !ok {
		return geom.Point{}, false
	}
	return v.Add(l.Origin), true
}

// InPlay reports whether (x, y) is on the play triangle.
func (l *Layout) InPlay(x, y int) bool { return l.Play.Contains(x, y) }

// InPause reports whether (x, y) is on either pause bar.
func (l *Layout) InPause(x, y int) bool {
	return l.Pause[0].Contains(x, y) || l.Pause[1].Contains(x, y)
}

// InSlider reports whether (x, y) grabs the speed slider.
func (l *Layout) InSlider(x, y int) bool { return l.Slider.Area.Contains(x, y) }

// InUpload reports whether (x, y) is on the upload button.
func (l *Layout) InUpload(x, y int) bool { return l.Upload.Contains(x, y) }

// Press hit tests a button-down event. Only the slider reacts to presses.
func (l *Layout) Press(x, y int) Hit {
	if l.InSlider(x, y) {
		return Hit{Action: ActionSlider}
	}
	return Hit{}
}

// Release hit tests a button-up event. The grid wins over the controls,
// then upload, then whichever of pause or play is currently shown.
func (l *Layout) Release(x, y int, playing bool) Hit {
	if cell, ok := l.Cell(x, y); ok {
		return Hit{Action: ActionToggleCell, Cell: cell}
	}
	if l.InUpload(x, y) {
		return Hit{Action: ActionUpload}
	}
	if playing {
		if l.InPause(x, y) {
			return Hit{Action: ActionPause}
		}
		return Hit{}
	}
	if l.InPlay(x, y) {
		return Hit{Action: ActionPlay}
	}
	return Hit{}
}

// CellSquare returns the painted square of visible cell (r, c), inset from
// the grid lines by the cell padding.
func (l *Layout) CellSquare(r, c int) geom.Rect {
	p := l.Mapper.GridToScreen(r, c)
	pad := l.Config.CellPadding
	side := l.Config.CellSize - 2*pad + 1
	return geom.Rect{X: p.X + pad, Y: p.Y + pad, W: side, H: side}
}

// GridLines returns one-pixel rects for every row and column boundary.
func (l *Layout) GridLines() []geom.Rect {
	cs := l.Config.CellSize
	origin := l.Mapper.GridToScreen(0, 0)
	lines := make([]geom.Rect, 0, l.Rows+l.Cols+2)
	for i := 0; i <= l.Rows; i++ {
		lines = append(lines, geom.Rect{X: origin.X, Y: origin.Y + i*cs, W: l.Cols*cs + 1, H: 1})
	}
	for j := 0; j <= l.Cols; j++ {
		lines = append(lines, geom.Rect{X: origin.X + j*cs, Y: origin.Y, W: 1, H: l.Rows*cs + 1})
	}
	return lines
}

// UploadGlyph returns the up-arrow drawn on the upload button: a head
// triangle and a stem, both inside Upload.
func (l *Layout) UploadGlyph() (head geom.Triangle, stem geom.Rect) {
	r := l.Upload
	half := r.H / 2
	head = geom.Triangle{
		{X: r.X + r.W/2, Y: r.Y + 1},
		{X: r.X + 1, Y: r.Y + half},
		{X: r.X + r.W - 2, Y: r.Y + half},
	}
	third := r.W / 3
	stem = geom.Rect{X: r.X + third, Y: r.Y + half, W: r.W - 2*third, H: r.H - half - 1}
	return head, stem
}

// LabelOrigin is the baseline origin of the speed label, left of the slider.
func (l *Layout) LabelOrigin() geom.Point {
	return geom.Point{X: l.Slider.Area.X - 64, Y: l.Slider.Area.Y + l.Slider.Area.H/2 + 4}
}
