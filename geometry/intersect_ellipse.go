package geometry

import "math"

// Axis-aligned ellipses become the unit circle under a scale about their
// center, and scaling preserves intersection. Rectangles, triangles and quads
// keep their kind under the same scale, so most ellipse tests reduce to the
// circle tests. Everything here assumes the ellipse is not degenerate.

var unitCircle = Circle{R: 1}

// Maps the ellipse onto the unit circle at the origin.
func (e Ellipse) toUnit(p Vec2) Vec2 {
	return Vec2{(p.X - e.Center.X) / e.A, (p.Y - e.Center.Y) / e.B}
}

func (e Ellipse) toUnitRect(r RectF) RectF {
	tl := e.toUnit(r.TL())
	return RectF{X: tl.X, Y: tl.Y, W: r.W / e.A, H: r.H / e.B}
}

func (e Ellipse) toUnitTriangle(t Triangle) Triangle {
	return Triangle{e.toUnit(t.P0), e.toUnit(t.P1), e.toUnit(t.P2)}
}

func (e Ellipse) toUnitQuad(q Quad) Quad {
	return Quad{e.toUnit(q.P0), e.toUnit(q.P1), e.toUnit(q.P2), e.toUnit(q.P3)}
}

// Bisection runs out of precision well before this many steps for float64.
const maxEllipseRootIterations = 1074

// distance returns the distance from p to the closed region of the ellipse,
// which is zero when p is inside. The ellipse must not be degenerate.
//
// Outside points use Eberly's bisection on the closest point equation, which
// is robust where Newton's method is not.
func (e Ellipse) distance(p Vec2) float64 {
	if vec2Ellipse(p, e) {
		return 0
	}
	// Fold into the first quadrant and order so that e0 >= e1
	e0, e1 := e.A, e.B
	y0, y1 := math.Abs(p.X-e.Center.X), math.Abs(p.Y-e.Center.Y)
	if e0 < e1 {
		e0, e1 = e1, e0
		y0, y1 = y1, y0
	}

	// On an axis, the closest point is the vertex on that axis. That's only
	// true from outside, which is all that's left.
	if y0 == 0 {
		return y1 - e1
	}
	if y1 == 0 {
		return y0 - e0
	}

	z0 := y0 / e0
	z1 := y1 / e1
	g := z0*z0 + z1*z1 - 1
	r0 := (e0 / e1) * (e0 / e1)
	sbar := ellipseRoot(r0, z0, z1, g)
	x0 := r0 * y0 / (sbar + r0)
	x1 := y1 / (sbar + 1)
	return math.Hypot(x0-y0, x1-y1)
}

func ellipseRoot(r0, z0, z1, g float64) float64 {
	n0 := r0 * z0
	s0 := z1 - 1
	s1 := 0.0
	if g >= 0 {
		s1 = math.Hypot(n0, z1) - 1
	}
	s := 0.0
	for i := 0; i < maxEllipseRootIterations; i++ {
		s = (s0 + s1) / 2
		if s == s0 || s == s1 {
			break
		}
		ratio0 := n0 / (s + r0)
		ratio1 := z1 / (s + 1)
		g = ratio0*ratio0 + ratio1*ratio1 - 1
		if g > 0 {
			s0 = s
		} else if g < 0 {
			s1 = s
		} else {
			break
		}
	}
	return s
}

func rectFEllipse(a RectF, b Ellipse) bool {
	if b.IsDegenerate() {
		return false
	}
	return rectFCircle(b.toUnitRect(a), unitCircle)
}

func circleEllipse(a Circle, b Ellipse) bool {
	if b.IsDegenerate() {
		return false
	}
	return b.distance(a.Center) <= a.R
}

// After mapping a onto the unit circle, b is still an axis-aligned ellipse,
// and the two meet iff b comes within 1 of the origin.
func ellipseEllipse(a, b Ellipse) bool {
	if a.IsDegenerate() || b.IsDegenerate() {
		return false
	}
	scaled := Ellipse{
		Center: a.toUnit(b.Center),
		A:      b.A / a.A,
		B:      b.B / a.B,
	}
	return scaled.distance(Vec2{}) <= 1
}

func ellipseTriangle(a Ellipse, b Triangle) bool {
	if a.IsDegenerate() {
		return false
	}
	return circleTriangle(unitCircle, a.toUnitTriangle(b))
}

func ellipseQuad(a Ellipse, b Quad) bool {
	if a.IsDegenerate() {
		return false
	}
	return circleQuad(unitCircle, a.toUnitQuad(b))
}

func ellipseRoundRect(a Ellipse, b RoundRect) bool {
	if a.IsDegenerate() {
		return false
	}
	return b.Parts().intersects(
		func(r RectF) bool { return rectFEllipse(r, a) },
		func(c Circle) bool { return circleEllipse(c, a) },
	)
}
