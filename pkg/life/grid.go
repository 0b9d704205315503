package life

import (
	"errors"
	"fmt"
)

// ErrInvalidGrid reports a grid with zero dimensions or ragged rows.
var ErrInvalidGrid = errors.New("life: invalid grid")

// Grid is a rectangular matrix of cell states indexed [row][col].
// A Grid returned by Step is never shared with its input.
type Grid [][]bool

// NewGrid allocates an all-dead grid with the given dimensions.
func NewGrid(rows, cols int) Grid {
	if rows <= 0 || cols <= 0 {
		return nil
	}
	cells := make([]bool, rows*cols)
	g := make(Grid, rows)
	for r := range g {
		g[r] = cells[r*cols : (r+1)*cols : (r+1)*cols]
	}
	return g
}

// Rows returns the number of rows.
func (g Grid) Rows() int { return len(g) }

// Cols returns the number of columns, taken from the first row.
func (g Grid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Validate checks that the grid is non-empty and every row has the same length.
func (g Grid) Validate() error {
	if len(g) == 0 {
		return fmt.Errorf("%w: no rows", ErrInvalidGrid)
	}
	cols := len(g[0])
	if cols == 0 {
		return fmt.Errorf("%w: no columns", ErrInvalidGrid)
	}
	for r, row := range g {
		if len(row) != cols {
			return fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidGrid, r, len(row), cols)
		}
	}
	return nil
}

// Clone returns a deep copy of the grid.
func (g Grid) Clone() Grid {
	if len(g) == 0 {
		return nil
	}
	out := NewGrid(g.Rows(), g.Cols())
	for r, row := range g {
		copy(out[r], row)
	}
	return out
}

// Equal reports whether both grids have the same shape and cell states.
func (g Grid) Equal(o Grid) bool {
	if len(g) != len(o) {
		return false
	}
	for r := range g {
		if len(g[r]) != len(o[r]) {
			return false
		}
		for c := range g[r] {
			if g[r][c] != o[r][c] {
				return false
			}
		}
	}
	return true
}

// Alive returns the coordinates of every live cell as [row, col] pairs in
// row-major order.
func (g Grid) Alive() [][2]int {
	var out [][2]int
	for r, row := range g {
		for c, v := range row {
			if v {
				out = append(out, [2]int{r, c})
			}
		}
	}
	return out
}

// Population counts live cells.
func (g Grid) Population() int {
	n := 0
	for _, row := range g {
		for _, v := range row {
			if v {
				n++
			}
		}
	}
	return n
}

// Empty reports whether no cell is alive.
func (g Grid) Empty() bool {
	for _, row := range g {
		if !rowDead(row) {
			return false
		}
	}
	return true
}

// FromCells builds a grid from (row, col) pairs. Pairs outside the grid are ignored.
func FromCells(rows, cols int, alive [][2]int) Grid {
	g := NewGrid(rows, cols)
	for _, rc := range alive {
		r, c := rc[0], rc[1]
		if r < 0 || r >= rows || c < 0 || c >= cols {
			continue
		}
		g[r][c] = true
	}
	return g
}

func rowDead(row []bool) bool {
	for _, v := range row {
		if v {
			return false
		}
	}
	return true
}
