package life

import (
	"errors"
	"fmt"

	"lifeviz/pkg/core"
)

// ErrSizeMismatch reports a grid whose dimensions differ from the board's.
var ErrSizeMismatch = errors.New("life: grid size mismatch")

// Life holds the live board for a driver. Each Step replaces the held grid
// with the fresh one returned by Rules.Step.
type Life struct {
	name  string
	cfg   Config
	cur   Grid
	gen   int
	cells []uint8
}

// New returns an all-dead Life simulation for the provided configuration.
func New(cfg Config) *Life {
	if cfg.Rows <= 0 {
		cfg.Rows = 1
	}
	if cfg.Cols <= 0 {
		cfg.Cols = 1
	}
	name := "life"
	if cfg.Rules.Neighborhood == VonNeumann {
		name = "life-vonneumann"
	}
	return &Life{
		name:  name,
		cfg:   cfg,
		cur:   NewGrid(cfg.Rows, cfg.Cols),
		cells: make([]uint8, cfg.Rows*cfg.Cols),
	}
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return l.name }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.cfg.Cols, H: l.cfg.Rows} }

// Rules returns the transition rules in effect.
func (l *Life) Rules() Rules { return l.cfg.Rules }

// Grid returns the current generation. Callers must not mutate it.
func (l *Life) Grid() Grid { return l.cur }

// Generation returns the number of steps since the last reset or load.
func (l *Life) Generation() int { return l.gen }

// Cells exposes the current grid as row-major 0/1 values.
func (l *Life) Cells() []uint8 {
	cols := l.cfg.Cols
	for r, row := range l.cur {
		for c, v := range row {
			var b uint8
			if v {
				b = 1
			}
			l.cells[r*cols+c] = b
		}
	}
	return l.cells
}

// Reset randomizes the board using the provided seed.
func (l *Life) Reset(seed int64) {
	rng := core.NewRNG(seed)
	g := NewGrid(l.cfg.Rows, l.cfg.Cols)
	for _, row := range g {
		if l.cfg.Density == 0.5 {
			core.FillBinary(rng.Source(), row)
			continue
		}
		for c := range row {
			row[c] = rng.Chance(l.cfg.Density)
		}
	}
	l.cur = g
	l.gen = 0
}

// Clear kills every cell.
func (l *Life) Clear() {
	l.cur = NewGrid(l.cfg.Rows, l.cfg.Cols)
	l.gen = 0
}

// Toggle flips the cell at column x, row y. Out-of-range coordinates are ignored.
func (l *Life) Toggle(x, y int) {
	if y < 0 || y >= l.cfg.Rows || x < 0 || x >= l.cfg.Cols {
		return
	}
	next := l.cur.Clone()
	next[y][x] = !next[y][x]
	l.cur = next
}

// Load replaces the board with g, which must match the board dimensions.
func (l *Life) Load(g Grid) error {
	if err := g.Validate(); err != nil {
		return err
	}
	if g.Rows() != l.cfg.Rows || g.Cols() != l.cfg.Cols {
		return fmt.Errorf("%w: got %dx%d, want %dx%d", ErrSizeMismatch, g.Rows(), g.Cols(), l.cfg.Rows, l.cfg.Cols)
	}
	l.cur = g.Clone()
	l.gen = 0
	return nil
}

// Step advances the simulation by one generation.
func (l *Life) Step() error {
	next, err := l.cfg.Rules.Step(l.cur)
	if err != nil {
		return err
	}
	l.cur = next
	l.gen++
	return nil
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		c.Rules.Neighborhood = Moore
		return New(c)
	})
	core.Register("life-vonneumann", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		c.Rules.Neighborhood = VonNeumann
		return New(c)
	})
}
