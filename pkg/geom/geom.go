// Package geom holds the integer geometry shared by drawing and hit testing.
//
// Everything that is painted through FillTriangle is clickable through
// PointInTriangle and nothing else is: both derive their spans from the same
// edge classification.
package geom

// Point is an integer 2-D coordinate.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y int) Point { return Point{X: x, Y: y} }

// Add returns p translated by q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Triangle is an ordered set of three points.
type Triangle [3]Point

// Span is a closed horizontal run [X0, X1] of pixels at height Y.
type Span struct {
	Y      int
	X0, X1 int
}

// Contains reports whether x lies in the span.
func (s Span) Contains(x int) bool { return s.X0 <= x && x <= s.X1 }

// Rect is an axis-aligned rectangle covering X <= x < X+W and Y <= y < Y+H.
type Rect struct {
	X, Y int
	W, H int
}

// Contains reports whether the pixel (x, y) is inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Empty reports whether r covers no pixels.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Spans returns the rows of r as closed spans, matching Contains pixel for pixel.
func (r Rect) Spans() []Span {
	if r.Empty() {
		return nil
	}
	out := make([]Span, 0, r.H)
	for y := r.Y; y < r.Y+r.H; y++ {
		out = append(out, Span{Y: y, X0: r.X, X1: r.X + r.W - 1})
	}
	return out
}

// Intersect returns the overlap of r and o, or the zero Rect.
func (r Rect) Intersect(o Rect) Rect {
	x0, y0 := max(r.X, o.X), max(r.Y, o.Y)
	x1, y1 := min(r.X+r.W, o.X+o.W), min(r.Y+r.H, o.Y+o.H)
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Bounds returns the smallest Rect containing every vertex of t.
func (t Triangle) Bounds() Rect {
	x0, x1 := t[0].X, t[0].X
	y0, y1 := t[0].Y, t[0].Y
	for _, p := range t[1:] {
		x0, x1 = min(x0, p.X), max(x1, p.X)
		y0, y1 = min(y0, p.Y), max(y1, p.Y)
	}
	return Rect{X: x0, Y: y0, W: x1 - x0 + 1, H: y1 - y0 + 1}
}

// Degenerate reports whether the three vertices are collinear.
func (t Triangle) Degenerate() bool {
	ax, ay := t[1].X-t[0].X, t[1].Y-t[0].Y
	bx, by := t[2].X-t[0].X, t[2].Y-t[0].Y
	return ax*by-ay*bx == 0
}
