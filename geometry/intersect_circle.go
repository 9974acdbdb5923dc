package geometry

// Touching circles intersect.
func circleCircle(a, b Circle) bool {
	dx := a.Center.X - b.Center.X
	dy := a.Center.Y - b.Center.Y
	return dx*dx+dy*dy <= (a.R+b.R)*(a.R+b.R)
}

// Arvo's circle/triangle test. The stages go from cheapest to most expensive,
// and their order matters: the edge stage assumes the vertices are outside the
// circle.
func circleTriangle(a Circle, b Triangle) bool {
	radiusSq := a.R * a.R

	// Stage 1: a vertex is within the circle. The c*sq values are the squared
	// distances to each vertex, minus the squared radius.
	c1 := a.Center.Sub(b.P0)
	c1sq := c1.LengthSq() - radiusSq
	if c1sq <= 0 {
		return true
	}
	c2 := a.Center.Sub(b.P1)
	c2sq := c2.LengthSq() - radiusSq
	if c2sq <= 0 {
		return true
	}
	c3 := a.Center.Sub(b.P2)
	c3sq := c3.LengthSq() - radiusSq
	if c3sq <= 0 {
		return true
	}

	// Stage 2: the center is within the triangle. This only catches one
	// winding; the final stage catches the other.
	e1 := b.P1.Sub(b.P0)
	e2 := b.P2.Sub(b.P1)
	e3 := b.P0.Sub(b.P2)
	if e1.Y*c1.X >= e1.X*c1.Y && e2.Y*c2.X >= e2.X*c2.Y && e3.Y*c3.X >= e3.X*c3.Y {
		return true
	}

	// Stage 3: the circle crosses an edge
	if circleCrossesEdge(c1, e1, c1sq) || circleCrossesEdge(c2, e2, c2sq) || circleCrossesEdge(c3, e3, c3sq) {
		return true
	}

	// Stage 4: the center is within the triangle, either winding
	return vec2Triangle(a.Center, b)
}

// c is the offset from the edge start to the center, e the edge, and csq the
// squared length of c minus the squared radius.
func circleCrossesEdge(c, e Vec2, csq float64) bool {
	k := c.Dot(e)
	if k <= 0 {
		return false
	}
	// Squared edge length
	l := e.LengthSq()
	if k >= l {
		return false
	}
	return csq*l <= k*k
}

// The quad splits along p1-p3, like the point test.
func circleQuad(a Circle, b Quad) bool {
	return circleTriangle(a, Triangle{b.P0, b.P1, b.P3}) ||
		circleTriangle(a, Triangle{b.P1, b.P2, b.P3})
}

func circleRoundRect(a Circle, b RoundRect) bool {
	return b.Parts().intersects(
		func(r RectF) bool { return rectFCircle(r, a) },
		func(c Circle) bool { return circleCircle(a, c) },
	)
}
