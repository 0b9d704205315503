package layout

import (
	"errors"
	"fmt"

	"lifeviz/pkg/geom"
)

// ErrViewportTooSmall reports a viewport that cannot fit a single cell
// inside the margins.
var ErrViewportTooSmall = errors.New("layout: viewport too small for grid")

// Mapper converts between grid indices and pixel coordinates. Cell (r, c)
// has its top-left corner at (Margin + c*CellSize, Margin + r*CellSize).
type Mapper struct {
	CellSize int
	Margin   int
}

// GridToScreen returns the top-left pixel of cell (r, c).
func (m Mapper) GridToScreen(r, c int) geom.Point {
	return geom.Point{X: m.Margin + c*m.CellSize, Y: m.Margin + r*m.CellSize}
}

// ScreenToGrid maps pixel (x, y) to the cell under it, returned as
// Point{X: col, Y: row}. ok is false when the pixel is outside the visible
// grid; pixels on the margin line itself are outside.
func (m Mapper) ScreenToGrid(x, y, visibleRows, visibleCols int) (cell geom.Point, ok bool) {
	if m.CellSize <= 0 {
		return geom.Point{}, false
	}
	if x <= m.Margin || x >= m.Margin+visibleCols*m.CellSize {
		return geom.Point{}, false
	}
	if y <= m.Margin || y >= m.Margin+visibleRows*m.CellSize {
		return geom.Point{}, false
	}
	return geom.Point{X: (x - m.Margin) / m.CellSize, Y: (y - m.Margin) / m.CellSize}, true
}

// CellRect returns the full square of cell (r, c), grid lines included.
func (m Mapper) CellRect(r, c int) geom.Rect {
	p := m.GridToScreen(r, c)
	return geom.Rect{X: p.X, Y: p.Y, W: m.CellSize, H: m.CellSize}
}

// Visible returns how many rows and columns fit in a width x height viewport,
// capped at maxRows and maxCols.
func (m Mapper) Visible(width, height, maxRows, maxCols int) (rows, cols int, err error) {
	if m.CellSize <= 0 {
		return 0, 0, fmt.Errorf("%w: cell size %d", ErrInvalidConfig, m.CellSize)
	}
	minimal := 2*m.Margin + m.CellSize
	if width < minimal || height < minimal {
		return 0, 0, fmt.Errorf("%w: %dx%d, need at least %dx%d", ErrViewportTooSmall, width, height, minimal, minimal)
	}
	rows = min(maxRows, (height-2*m.Margin)/m.CellSize)
	cols = min(maxCols, (width-2*m.Margin)/m.CellSize)
	if rows <= 0 || cols <= 0 {
		return 0, 0, fmt.Errorf("%w: no cells of a %dx%d board", ErrViewportTooSmall, maxRows, maxCols)
	}
	return rows, cols, nil
}
