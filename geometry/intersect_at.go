package geometry

import (
	"math"

	"github.com/pkg/errors"
)

// ErrUnsupportedPair is returned by IntersectAt for pairs whose crossing
// points it can't compute: anything with a rounded rectangle, and ellipses
// against anything with a curved boundary, except circles against circles.
var ErrUnsupportedPair = errors.New("no crossing points for this pair")

// IntersectAt reports where the boundaries of a and b cross, along with
// whether they intersect at all. The intersection verdict is always the one
// Intersect gives. Crossings are only computed for intersecting shapes, in no
// particular order and without duplicates.
//
// Shapes that intersect with no crossings, such as a circle inside a
// rectangle, give no points. Collinear overlapping edges give the ends of the
// overlap. Points have no boundary, so a point that intersects a shape is its
// own crossing.
//
// Unlike Intersect, this allocates the slice it returns.
func IntersectAt(a, b Shape) ([]Vec2, bool, error) {
	a, b = Deref(a), Deref(b)
	if a == nil || b == nil {
		return nil, false, nil
	}
	a, b = widen(a), widen(b)
	if a.Kind() > b.Kind() {
		a, b = b, a
	}

	ba, okA := boundaryOf(a)
	bb, okB := boundaryOf(b)
	if !okA || !okB || (ba.curved && bb.curved && !(ba.curve.A == ba.curve.B && bb.curve.A == bb.curve.B)) {
		return nil, false, errors.Wrapf(ErrUnsupportedPair, "%s and %s", a.Kind(), b.Kind())
	}

	if !Intersect(a, b) {
		return nil, false, nil
	}
	if ba.point {
		return []Vec2{ba.at}, true, nil
	}
	if bb.point {
		return []Vec2{bb.at}, true, nil
	}

	var points []Vec2
	switch {
	case ba.curved && bb.curved:
		points = circleCrossings(ba.curve, bb.curve, points)
	case ba.curved:
		for _, e := range bb.edges {
			points = ellipseCrossings(e, ba.curve, points)
		}
	case bb.curved:
		for _, e := range ba.edges {
			points = ellipseCrossings(e, bb.curve, points)
		}
	default:
		for _, e := range ba.edges {
			for _, f := range bb.edges {
				points = segmentCrossings(e, f, points)
			}
		}
	}
	return points, true, nil
}

// The boundary of a shape, as straight edges or as a single ellipse. Circles
// are ellipses with equal axes.
type boundary struct {
	edges  []Line
	curved bool
	curve  Ellipse
	point  bool
	at     Vec2
}

// Takes widened shapes.
func boundaryOf(s Shape) (boundary, bool) {
	switch s := s.(type) {
	case Vec2:
		return boundary{point: true, at: s}, true
	case Line:
		return boundary{edges: []Line{s}}, true
	case RectF:
		return boundary{edges: ringEdges(s.TL(), s.TR(), s.BR(), s.BL())}, true
	case Circle:
		return boundary{curved: true, curve: Ellipse{Center: s.Center, A: s.R, B: s.R}}, true
	case Ellipse:
		return boundary{curved: true, curve: s}, true
	case Triangle:
		return boundary{edges: ringEdges(s.P0, s.P1, s.P2)}, true
	case Quad:
		return boundary{edges: ringEdges(s.P0, s.P1, s.P2, s.P3)}, true
	case Polygon:
		var edges []Line
		for e := range s.Edges() {
			edges = append(edges, e)
		}
		return boundary{edges: edges}, true
	case LineString:
		var edges []Line
		for e := range s.Segments() {
			edges = append(edges, e)
		}
		return boundary{edges: edges}, true
	}
	return boundary{}, false
}

func ringEdges(vertices ...Vec2) []Line {
	edges := make([]Line, len(vertices))
	for i, v := range vertices {
		edges[i] = Line{v, vertices[CircularIndex(i+1, len(vertices))]}
	}
	return edges
}

// Appends p unless a point within tolerance is already there.
func appendCrossing(points []Vec2, p Vec2) []Vec2 {
	for _, q := range points {
		if IsZero(p.DistanceSq(q)) {
			return points
		}
	}
	return append(points, p)
}

// Where lineLine finds a hit, this finds the point, or both ends of a
// collinear overlap.
func segmentCrossings(a, b Line, points []Vec2) []Vec2 {
	if !inLineOrder(a, b) {
		a, b = b, a
	}
	if a.IsDegenerate() || b.IsDegenerate() {
		if degenerateLineLine(a, b) {
			if a.IsDegenerate() {
				return appendCrossing(points, a.Begin)
			}
			return appendCrossing(points, b.Begin)
		}
		return points
	}

	r := a.Vector()
	s := b.Vector()
	qp := b.Begin.Sub(a.Begin)
	rxs := r.Cross(s)
	qpxr := qp.Cross(r)

	if IsZero(rxs) {
		if !IsZero(qpxr) {
			return points
		}
		// Collinear. Project b onto a and clip to a.
		rr := r.Dot(r)
		t0 := qp.Dot(r) / rr
		t1 := b.End.Sub(a.Begin).Dot(r) / rr
		lo := math.Max(0, math.Min(t0, t1))
		hi := math.Min(1, math.Max(t0, t1))
		if lo > hi {
			return points
		}
		points = appendCrossing(points, a.Begin.Add(r.Scale(lo)))
		return appendCrossing(points, a.Begin.Add(r.Scale(hi)))
	}

	t := qp.Cross(s) / rxs
	u := qpxr / rxs
	if 0 <= t && t <= 1 && 0 <= u && u <= 1 {
		points = appendCrossing(points, a.Begin.Add(r.Scale(t)))
	}
	return points
}

func ellipseCrossings(a Line, b Ellipse, points []Vec2) []Vec2 {
	if a.IsDegenerate() || b.IsDegenerate() {
		return points
	}
	ta, tb, n := ellipseRoots(a, b)
	roots := [2]float64{ta, tb}
	dir := a.Vector()
	for _, t := range roots[:n] {
		if 0 <= t && t <= 1 {
			points = appendCrossing(points, a.Begin.Add(dir.Scale(t)))
		}
	}
	return points
}

// Both ellipses must be circles. Nested and concentric circles have no
// crossings, even when they coincide.
func circleCrossings(a, b Ellipse, points []Vec2) []Vec2 {
	ra, rb := a.A, b.A
	between := b.Center.Sub(a.Center)
	dSq := between.LengthSq()
	d := math.Sqrt(dSq)
	if d == 0 || d > ra+rb || d < math.Abs(ra-rb) {
		return points
	}

	// Distance from a's center to the chord through both crossings, and half
	// the chord's length
	along := (ra*ra - rb*rb + dSq) / (2 * d)
	half := math.Sqrt(math.Max(0, ra*ra-along*along))

	mid := a.Center.Add(between.Scale(along / d))
	o := between.Scale(half / d)
	points = appendCrossing(points, Vec2{mid.X + o.Y, mid.Y - o.X})
	return appendCrossing(points, Vec2{mid.X - o.Y, mid.Y + o.X})
}
