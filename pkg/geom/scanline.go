package geom

// Edge is a directed segment between two triangle vertices.
type Edge struct {
	P, Q Point
}

// Interpolate returns the x coordinate of line p-q at height y, truncated
// toward zero. A horizontal line yields p.X.
func Interpolate(p, q Point, y int) int {
	if q.Y == p.Y {
		return p.X
	}
	return p.X + (y-p.Y)*(q.X-p.X)/(q.Y-p.Y)
}

// X returns the edge's x coordinate at height y.
func (e Edge) X(y int) int { return Interpolate(e.P, e.Q, y) }

// sortByY orders the vertices by ascending y. Ties keep their input order.
func sortByY(t Triangle) Triangle {
	s := t
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j].Y < s[j-1].Y; j-- {
			s[j], s[j-1] = s[j-1], s[j]
		}
	}
	return s
}

// classifyEdges picks the left and right edges of the y-sorted triangle s at
// scanline y. The long edge s0-s2 spans every scanline; the short edge is
// s0-s1 above the middle vertex and s1-s2 below it. At y == s1.Y the
// non-horizontal one of the two short edges is used. The edge with the
// smaller x at y is the left one; ties go to the long edge.
func classifyEdges(s Triangle, y int) (left, right Edge) {
	long := Edge{s[0], s[2]}
	short := Edge{s[1], s[2]}
	if y < s[1].Y || (y == s[1].Y && s[0].Y != s[1].Y) {
		short = Edge{s[0], s[1]}
	}
	if short.X(y) < long.X(y) {
		return short, long
	}
	return long, short
}

// scanline returns the closed x-range covered by s at height y. The caller
// guarantees s is y-sorted, non-degenerate and s0.Y <= y <= s2.Y.
func scanline(s Triangle, y int) (x0, x1 int) {
	left, right := classifyEdges(s, y)
	return left.X(y), right.X(y)
}

// FillTriangle returns one span per scanline from the lowest to the highest
// vertex y. Collinear triangles produce no spans.
func FillTriangle(a, b, c Point) []Span {
	t := Triangle{a, b, c}
	if t.Degenerate() {
		return nil
	}
	s := sortByY(t)
	spans := make([]Span, 0, s[2].Y-s[0].Y+1)
	for y := s[0].Y; y <= s[2].Y; y++ {
		x0, x1 := scanline(s, y)
		spans = append(spans, Span{Y: y, X0: x0, X1: x1})
	}
	return spans
}

// PointInTriangle reports whether (x, y) lies on a span FillTriangle would
// produce for the same vertices.
func PointInTriangle(a, b, c Point, x, y int) bool {
	t := Triangle{a, b, c}
	if t.Degenerate() {
		return false
	}
	s := sortByY(t)
	if y < s[0].Y || y > s[2].Y {
		return false
	}
	x0, x1 := scanline(s, y)
	return x0 <= x && x <= x1
}

// Fill is FillTriangle for a Triangle value.
func (t Triangle) Fill() []Span { return FillTriangle(t[0], t[1], t[2]) }

// Contains is PointInTriangle for a Triangle value.
func (t Triangle) Contains(x, y int) bool { return PointInTriangle(t[0], t[1], t[2], x, y) }
