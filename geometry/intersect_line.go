package geometry

import (
	"cmp"
	"math"
)

// Parametric segment-segment test. With p + t*r for a and q + u*s for b, the
// segments meet iff some t and u in [0, 1] give the same point.
func lineLine(a, b Line) bool {
	// The tolerance tests below treat a and b differently, so the pair is put
	// in a fixed order first.
	if !inLineOrder(a, b) {
		a, b = b, a
	}

	// A zero length segment is a point, and the parametric form below would
	// call it collinear with everything.
	if a.IsDegenerate() || b.IsDegenerate() {
		return degenerateLineLine(a, b)
	}

	r := a.Vector()
	s := b.Vector()
	qp := b.Begin.Sub(a.Begin)
	rxs := r.Cross(s)
	qpxr := qp.Cross(r)
	qpxs := qp.Cross(s)
	rxsIsZero := IsZero(rxs)

	if rxsIsZero && IsZero(qpxr) {
		// Collinear. They intersect iff either segment's start projects into
		// the other.
		qpr := qp.Dot(r)
		pqs := a.Begin.Sub(b.Begin).Dot(s)
		return (0 <= qpr && qpr <= r.Dot(r)) || (0 <= pqs && pqs <= s.Dot(s))
	}

	if rxsIsZero {
		// Parallel, but not on the same line
		return false
	}

	t := qpxs / rxs
	u := qpxr / rxs
	return 0 <= t && t <= 1 && 0 <= u && u <= 1
}

// Longer segments go first, and ties break on the coordinates.
func inLineOrder(a, b Line) bool {
	return cmp.Or(
		cmp.Compare(b.Vector().LengthSq(), a.Vector().LengthSq()),
		cmp.Compare(a.Begin.X, b.Begin.X),
		cmp.Compare(a.Begin.Y, b.Begin.Y),
		cmp.Compare(a.End.X, b.End.X),
		cmp.Compare(a.End.Y, b.End.Y),
	) <= 0
}

func degenerateLineLine(a, b Line) bool {
	if a.IsDegenerate() && b.IsDegenerate() {
		return IsZero(a.Begin.DistanceSq(b.Begin))
	}
	if b.IsDegenerate() {
		a, b = b, a
	}
	// a is now the point
	p := a.Begin
	s := b.Vector()
	bp := p.Sub(b.Begin)
	if !IsZero(bp.Cross(s)) {
		return false
	}
	k := bp.Dot(s)
	return 0 <= k && k <= s.Dot(s)
}

func lineRectF(a Line, b RectF) bool {
	if vec2RectF(a.Begin, b) || vec2RectF(a.End, b) {
		return true
	}
	tl, tr, br, bl := b.TL(), b.TR(), b.BR(), b.BL()
	return lineLine(a, Line{tl, tr}) ||
		lineLine(a, Line{tr, br}) ||
		lineLine(a, Line{br, bl}) ||
		lineLine(a, Line{bl, tl})
}

// The closest point on the segment to the center is found by projection,
// clamped to the endpoints.
func lineCircle(a Line, b Circle) bool {
	ab := a.End.Sub(a.Begin)
	ac := b.Center.Sub(a.Begin)
	bc := b.Center.Sub(a.End)
	e := ac.Dot(ab)
	rr := b.R * b.R

	if e <= 0 {
		return ac.Dot(ac) <= rr
	}

	f := ab.Dot(ab)
	if e >= f {
		return bc.Dot(bc) <= rr
	}

	return ac.Dot(ac)-e*e/f <= rr
}

// Tolerance on the roots of the line/ellipse quadratic
const ellipseRootTolerance = 1e-15

// The segment intersects the ellipse region if a crossing of its boundary lies
// on the segment, or if the segment sits entirely between the two crossings.
func lineEllipse(a Line, b Ellipse) bool {
	if b.IsDegenerate() {
		return false
	}
	if a.IsDegenerate() {
		return vec2Ellipse(a.Begin, b)
	}

	ta, tb, n := ellipseRoots(a, b)
	switch n {
	case 0:
		return false
	case 1:
		// Tangent
		return 0 <= ta && ta <= 1
	}
	if (ta < 0 || 1 < ta) && (tb < 0 || 1 < tb) {
		// Neither crossing is on the segment. It's inside iff the crossings
		// are on opposite sides of it.
		return !((ta < 0 && tb < 0) || (ta > 1 && tb > 1))
	}
	return true
}

// ellipseRoots solves for the parameters along a where the segment's line
// crosses the boundary of b, with ta <= tb. n is the number of distinct
// roots: none for a miss, one for a tangent. Two roots are nudged towards
// [0, 1]. Neither a nor b may be degenerate.
func ellipseRoots(a Line, b Ellipse) (ta, tb float64, n int) {
	rx, ry := b.A, b.B
	dir := a.Vector()
	diff := a.Begin.Sub(b.Center)
	mDir := Vec2{dir.X / (rx * rx), dir.Y / (ry * ry)}
	mDiff := Vec2{diff.X / (rx * rx), diff.Y / (ry * ry)}

	va := dir.Dot(mDir)
	vb := dir.Dot(mDiff)
	vc := diff.Dot(mDiff) - 1
	vd := vb*vb - va*vc

	zero := 10 * math.Max(math.Abs(va), math.Max(math.Abs(vb), math.Abs(vc))) * ellipseRootTolerance
	if math.Abs(vd) < zero {
		vd = 0
	}

	switch {
	case vd < 0:
		return 0, 0, 0
	case vd == 0:
		t := -vb / va
		return t, t, 1
	}

	root := math.Sqrt(vd)
	return nudgeRoot((-vb - root) / va), nudgeRoot((-vb + root) / va), 2
}

// Pulls a root just outside [0, 1] one tolerance step towards the range.
func nudgeRoot(t float64) float64 {
	switch {
	case t > 1:
		return t - ellipseRootTolerance
	case t < 0:
		return t + ellipseRootTolerance
	}
	return t
}

func lineTriangle(a Line, b Triangle) bool {
	if vec2Triangle(a.Begin, b) || vec2Triangle(a.End, b) {
		return true
	}
	return lineLine(a, Line{b.P0, b.P1}) ||
		lineLine(a, Line{b.P1, b.P2}) ||
		lineLine(a, Line{b.P2, b.P0})
}

func lineQuad(a Line, b Quad) bool {
	if vec2Quad(a.Begin, b) || vec2Quad(a.End, b) {
		return true
	}
	return lineLine(a, Line{b.P0, b.P1}) ||
		lineLine(a, Line{b.P1, b.P2}) ||
		lineLine(a, Line{b.P2, b.P3}) ||
		lineLine(a, Line{b.P3, b.P0})
}

func lineRoundRect(a Line, b RoundRect) bool {
	return b.Parts().intersects(
		func(r RectF) bool { return lineRectF(a, r) },
		func(c Circle) bool { return lineCircle(a, c) },
	)
}
