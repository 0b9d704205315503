package geom

import (
	"testing"

	"lifeviz/pkg/core"
)

func spanIndex(spans []Span) map[int]Span {
	out := make(map[int]Span, len(spans))
	for _, s := range spans {
		out[s.Y] = s
	}
	return out
}

func TestInterpolate(t *testing.T) {
	cases := []struct {
		p, q Point
		y    int
		want int
	}{
		{Pt(0, 0), Pt(10, 10), 5, 5},
		{Pt(0, 0), Pt(10, 20), 5, 2},
		{Pt(10, 0), Pt(0, 20), 5, 8},
		{Pt(3, 0), Pt(3, 9), 4, 3},
		{Pt(7, 4), Pt(1, 4), 4, 7},
		{Pt(0, 0), Pt(-7, 2), 1, -3},
	}
	for _, tc := range cases {
		if got := Interpolate(tc.p, tc.q, tc.y); got != tc.want {
			t.Errorf("Interpolate(%v,%v,%d) = %d, want %d", tc.p, tc.q, tc.y, got, tc.want)
		}
	}
}

func TestFillTriangleCoversEveryScanline(t *testing.T) {
	spans := FillTriangle(Pt(10, 5), Pt(0, 15), Pt(20, 25))
	if len(spans) != 21 {
		t.Fatalf("got %d spans, want 21", len(spans))
	}
	for i, s := range spans {
		if s.Y != 5+i {
			t.Fatalf("span %d at y=%d, want %d", i, s.Y, 5+i)
		}
		if s.X0 > s.X1 {
			t.Fatalf("span %+v is reversed", s)
		}
	}
	if spans[0].X0 != 10 || spans[0].X1 != 10 {
		t.Fatalf("top span = %+v, want the apex", spans[0])
	}
	if last := spans[len(spans)-1]; last.X0 != 20 || last.X1 != 20 {
		t.Fatalf("bottom span = %+v, want the apex", last)
	}
}

func TestFillTriangleIgnoresVertexOrder(t *testing.T) {
	a, b, c := Pt(30, 2), Pt(4, 18), Pt(22, 40)
	want := spanIndex(FillTriangle(a, b, c))
	for _, perm := range [][3]Point{{a, c, b}, {b, a, c}, {b, c, a}, {c, a, b}, {c, b, a}} {
		got := spanIndex(FillTriangle(perm[0], perm[1], perm[2]))
		if len(got) != len(want) {
			t.Fatalf("permutation %v: %d spans, want %d", perm, len(got), len(want))
		}
		for y, s := range want {
			if got[y] != s {
				t.Fatalf("permutation %v at y=%d: %+v, want %+v", perm, y, got[y], s)
			}
		}
	}
}

func TestFlatTopAndBottom(t *testing.T) {
	top := FillTriangle(Pt(0, 0), Pt(10, 0), Pt(5, 10))
	if top[0] != (Span{Y: 0, X0: 0, X1: 10}) {
		t.Fatalf("flat top first span = %+v", top[0])
	}
	bottom := FillTriangle(Pt(5, 0), Pt(0, 10), Pt(10, 10))
	if last := bottom[len(bottom)-1]; last != (Span{Y: 10, X0: 0, X1: 10}) {
		t.Fatalf("flat bottom last span = %+v", last)
	}
}

func TestDegenerateTriangle(t *testing.T) {
	tris := []Triangle{
		{Pt(0, 0), Pt(5, 5), Pt(10, 10)},
		{Pt(0, 3), Pt(4, 3), Pt(9, 3)},
		{Pt(2, 0), Pt(2, 4), Pt(2, 8)},
		{Pt(1, 1), Pt(1, 1), Pt(1, 1)},
	}
	for _, tri := range tris {
		if spans := tri.Fill(); len(spans) != 0 {
			t.Fatalf("%v produced spans %v", tri, spans)
		}
		b := tri.Bounds()
		for y := b.Y - 1; y <= b.Y+b.H; y++ {
			for x := b.X - 1; x <= b.X+b.W; x++ {
				if tri.Contains(x, y) {
					t.Fatalf("%v contains (%d,%d)", tri, x, y)
				}
			}
		}
	}
}

func TestPointInTriangleMatchesFill(t *testing.T) {
	rng := core.NewRNG(2024)
	for i := 0; i < 50; i++ {
		tri := Triangle{
			Pt(rng.IntN(201), rng.IntN(201)),
			Pt(rng.IntN(201), rng.IntN(201)),
			Pt(rng.IntN(201), rng.IntN(201)),
		}
		spans := spanIndex(tri.Fill())
		b := tri.Bounds()
		for y := b.Y - 1; y <= b.Y+b.H; y++ {
			s, ok := spans[y]
			for x := b.X - 1; x <= b.X+b.W; x++ {
				painted := ok && s.Contains(x)
				if got := tri.Contains(x, y); got != painted {
					t.Fatalf("triangle %v at (%d,%d): PointInTriangle=%v, painted=%v", tri, x, y, got, painted)
				}
			}
		}
	}
}

func TestPointInTriangleOutsideRange(t *testing.T) {
	a, b, c := Pt(10, 10), Pt(20, 10), Pt(15, 20)
	if PointInTriangle(a, b, c, 15, 9) || PointInTriangle(a, b, c, 15, 21) {
		t.Fatal("points above or below the triangle reported inside")
	}
	if !PointInTriangle(a, b, c, 15, 15) {
		t.Fatal("centroid reported outside")
	}
}

func TestRectSpansMatchContains(t *testing.T) {
	r := Rect{X: 3, Y: 4, W: 5, H: 2}
	spans := spanIndex(r.Spans())
	for y := 0; y < 10; y++ {
		for x := 0; x < 12; x++ {
			s, ok := spans[y]
			if painted := ok && s.Contains(x); painted != r.Contains(x, y) {
				t.Fatalf("(%d,%d): spans=%v contains=%v", x, y, painted, r.Contains(x, y))
			}
		}
	}
	if len((Rect{W: 0, H: 4}).Spans()) != 0 {
		t.Fatal("empty rect produced spans")
	}
	if got := r.Intersect(Rect{X: 6, Y: 0, W: 10, H: 5}); got != (Rect{X: 6, Y: 4, W: 2, H: 1}) {
		t.Fatalf("Intersect = %+v", got)
	}
}
