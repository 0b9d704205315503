package layout

import (
	"errors"
	"testing"

	"lifeviz/pkg/geom"
)

func TestCellRoundTrip(t *testing.T) {
	m := Mapper{CellSize: 30, Margin: 60}
	const rows, cols = 20, 20
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			p := m.GridToScreen(r, c)
			for _, d := range []geom.Point{{X: 1, Y: 1}, {X: 15, Y: 15}, {X: 29, Y: 29}} {
				got, ok := m.ScreenToGrid(p.X+d.X, p.Y+d.Y, rows, cols)
				if !ok || got != (geom.Point{X: c, Y: r}) {
					t.Fatalf("cell (%d,%d) offset %v mapped to %v ok=%v", r, c, d, got, ok)
				}
			}
		}
	}
}

func TestMarginBandIsOutOfBounds(t *testing.T) {
	m := Mapper{CellSize: 30, Margin: 60}
	const rows, cols = 20, 20
	far := 60 + cols*30
	for i := 0; i <= far+60; i++ {
		for _, p := range []geom.Point{
			{X: i, Y: 60}, {X: 60, Y: i}, // margin lines
			{X: i, Y: 10}, {X: 10, Y: i}, // outer band
			{X: i, Y: far}, {X: far, Y: i}, // far edge
			{X: i, Y: far + 20}, {X: far + 20, Y: i},
		} {
			if got, ok := m.ScreenToGrid(p.X, p.Y, rows, cols); ok {
				t.Fatalf("pixel %v mapped to %v, want out of bounds", p, got)
			}
		}
	}
}

func TestGridToScreen(t *testing.T) {
	m := Mapper{CellSize: 30, Margin: 60}
	if p := m.GridToScreen(2, 5); p != (geom.Point{X: 210, Y: 120}) {
		t.Fatalf("GridToScreen(2,5) = %v", p)
	}
	if r := m.CellRect(0, 0); r != (geom.Rect{X: 60, Y: 60, W: 30, H: 30}) {
		t.Fatalf("CellRect(0,0) = %+v", r)
	}
}

func TestVisible(t *testing.T) {
	m := Mapper{CellSize: 30, Margin: 60}
	rows, cols, err := m.Visible(1280, 720, 60, 60)
	if err != nil {
		t.Fatalf("Visible: %v", err)
	}
	if rows != 20 || cols != 38 {
		t.Fatalf("Visible = %dx%d, want 20x38", rows, cols)
	}
	rows, cols, err = m.Visible(4000, 4000, 60, 50)
	if err != nil || rows != 60 || cols != 50 {
		t.Fatalf("Visible capped = %dx%d, %v", rows, cols, err)
	}
	if _, _, err := m.Visible(149, 720, 60, 60); !errors.Is(err, ErrViewportTooSmall) {
		t.Fatalf("err = %v, want ErrViewportTooSmall", err)
	}
	if _, _, err := (Mapper{CellSize: 0}).Visible(500, 500, 10, 10); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("err = %v, want ErrInvalidConfig", err)
	}
}
