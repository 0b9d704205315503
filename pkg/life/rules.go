package life

import (
	"fmt"
	"strings"
)

// BoundaryPolicy selects how cells at the edge of the grid see their neighbors.
type BoundaryPolicy uint8

const (
	// Toroidal wraps rows and columns so the grid forms a torus.
	Toroidal BoundaryPolicy = iota
	// Bounded treats off-grid neighbors as dead and clears the outermost
	// ring of cells after every generation.
	Bounded
)

func (p BoundaryPolicy) String() string {
	switch p {
	case Toroidal:
		return "toroidal"
	case Bounded:
		return "bounded"
	default:
		return fmt.Sprintf("BoundaryPolicy(%d)", uint8(p))
	}
}

// ParsePolicy converts a policy name into a BoundaryPolicy.
func ParsePolicy(s string) (BoundaryPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "toroidal", "torus", "wrap":
		return Toroidal, nil
	case "bounded", "edge":
		return Bounded, nil
	}
	return Toroidal, fmt.Errorf("life: unknown boundary policy %q", s)
}

// Neighborhood selects which adjacent cells are counted.
type Neighborhood uint8

const (
	// Moore counts all 8 surrounding cells.
	Moore Neighborhood = iota
	// VonNeumann counts only the 4 orthogonally adjacent cells. It keeps the
	// B3/S23 thresholds, so gliders and most classic patterns do not exist.
	VonNeumann
)

func (n Neighborhood) String() string {
	switch n {
	case Moore:
		return "moore"
	case VonNeumann:
		return "vonneumann"
	default:
		return fmt.Sprintf("Neighborhood(%d)", uint8(n))
	}
}

// ParseNeighborhood converts a neighborhood name into a Neighborhood.
func ParseNeighborhood(s string) (Neighborhood, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "moore", "8":
		return Moore, nil
	case "vonneumann", "von-neumann", "4":
		return VonNeumann, nil
	}
	return Moore, fmt.Errorf("life: unknown neighborhood %q", s)
}

var (
	mooreOffsets      = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	vonNeumannOffsets = [][2]int{{-1, 0}, {0, -1}, {0, 1}, {1, 0}}
)

func (n Neighborhood) offsets() [][2]int {
	if n == VonNeumann {
		return vonNeumannOffsets
	}
	return mooreOffsets
}

// Rules bundles the parameters of one generation transition.
type Rules struct {
	Policy       BoundaryPolicy
	Neighborhood Neighborhood
	// SkipQuiescent skips interior rows whose row window (r-1, r, r+1) is
	// entirely dead. The output is identical either way.
	SkipQuiescent bool
}

// DefaultRules returns Moore-neighborhood rules with the quiescent shortcut on.
func DefaultRules(policy BoundaryPolicy) Rules {
	return Rules{Policy: policy, Neighborhood: Moore, SkipQuiescent: true}
}

// Step computes the next generation of g under policy using the Moore
// neighborhood. The input is not modified.
func Step(g Grid, policy BoundaryPolicy) (Grid, error) {
	return DefaultRules(policy).Step(g)
}

// Step computes the next generation of g. The input is not modified and the
// returned grid shares no memory with it.
func (rl Rules) Step(g Grid) (Grid, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	rows, cols := g.Rows(), g.Cols()
	next := NewGrid(rows, cols)
	offsets := rl.Neighborhood.offsets()

	for r := 0; r < rows; r++ {
		if rl.SkipQuiescent && r > 0 && r < rows-1 &&
			rowDead(g[r-1]) && rowDead(g[r]) && rowDead(g[r+1]) {
			continue
		}
		for c := 0; c < cols; c++ {
			if rl.Policy == Bounded && onBorder(r, c, rows, cols) {
				continue
			}
			n := rl.countNeighbors(g, r, c, offsets)
			next[r][c] = nextState(g[r][c], n)
		}
	}
	return next, nil
}

func (rl Rules) countNeighbors(g Grid, r, c int, offsets [][2]int) int {
	rows, cols := len(g), len(g[0])
	n := 0
	for _, d := range offsets {
		nr, nc := r+d[0], c+d[1]
		if rl.Policy == Toroidal {
			nr = (nr + rows) % rows
			nc = (nc + cols) % cols
		} else if nr < 0 || nr >= rows || nc < 0 || nc >= cols {
			continue
		}
		if g[nr][nc] {
			n++
		}
	}
	return n
}

// nextState applies B3/S23.
func nextState(alive bool, n int) bool {
	if alive {
		return n == 2 || n == 3
	}
	return n == 3
}

func onBorder(r, c, rows, cols int) bool {
	return r == 0 || r == rows-1 || c == 0 || c == cols-1
}
