package geometry

import "math"

// Vertex indices for the SAT loop. Edge i runs from edgeStart[i] to
// edgeStart[i+1], and projecting vertex i and opposite[i] onto the edge's
// normal covers the whole triangle, since the edge's two endpoints project to
// the same value.
var (
	opposite  = [3]int{1, 2, 0}
	edgeStart = [4]int{1, 2, 0, 1}
)

// Separating axis test over the three edge normals of each triangle. Touching
// intervals count as overlapping, so triangles that only share a vertex or an
// edge intersect.
//
// Projections are computed in float32, as they always have been. Near
// parallel edges tie-break on that precision; see DESIGN.md before changing
// it.
func triangleTriangle(a, b Triangle) bool {
	return !hasSeparatingEdge(a, b) && !hasSeparatingEdge(b, a)
}

// Checks the edge normals of ta only.
func hasSeparatingEdge(ta, tb Triangle) bool {
	for i := 0; i < 3; i++ {
		edge := ta.P(edgeStart[i+1]).Sub(ta.P(edgeStart[i]))
		l := math.Sqrt(edge.LengthSq())
		if l == 0 {
			// The normal of a zero length edge is undefined, and no
			// projection onto it can overlap.
			return true
		}
		sepX, sepY := float32(edge.Y/l), float32(-edge.X/l)

		s1min := project32(sepX, sepY, ta.P(i))
		s1max := project32(sepX, sepY, ta.P(opposite[i]))
		if s1min > s1max {
			s1min, s1max = s1max, s1min
		}

		s2min := project32(sepX, sepY, tb.P0)
		s2max := project32(sepX, sepY, tb.P1)
		if s2min > s2max {
			s2min, s2max = s2max, s2min
		}
		d3 := project32(sepX, sepY, tb.P2)
		if d3 < s2min {
			s2min = d3
		} else if d3 > s2max {
			s2max = d3
		}

		if (s2min <= s1min && s1min <= s2max) ||
			(s2min <= s1max && s1max <= s2max) ||
			(s1min <= s2min && s2min <= s1max) ||
			(s1min <= s2max && s2max <= s1max) {
			continue
		}
		return true
	}
	return false
}

// Dot product in single precision. The conversions stop the compiler from
// fusing the multiply and add, which would change the rounding.
func project32(x, y float32, p Vec2) float32 {
	return float32(x*float32(p.X)) + float32(y*float32(p.Y))
}

// The quad splits along p0-p2.
func triangleQuad(a Triangle, b Quad) bool {
	return triangleTriangle(a, Triangle{b.P0, b.P1, b.P2}) ||
		triangleTriangle(a, Triangle{b.P0, b.P2, b.P3})
}

func triangleRoundRect(a Triangle, b RoundRect) bool {
	return b.Parts().intersects(
		func(r RectF) bool { return rectFTriangle(r, a) },
		func(c Circle) bool { return circleTriangle(c, a) },
	)
}

func quadQuad(a, b Quad) bool {
	return triangleQuad(Triangle{a.P0, a.P1, a.P2}, b) ||
		triangleQuad(Triangle{a.P0, a.P2, a.P3}, b)
}

func quadRoundRect(a Quad, b RoundRect) bool {
	return b.Parts().intersects(
		func(r RectF) bool { return rectFQuad(r, a) },
		func(c Circle) bool { return circleQuad(c, a) },
	)
}

// Both sides are taken apart, and each of b's parts is tested against a's
// composite.
func roundRectRoundRect(a, b RoundRect) bool {
	if !rectFRectF(a.Rect, b.Rect) {
		return false
	}
	pa := a.Parts()
	pb := b.Parts()
	vsRect := func(r RectF) bool {
		return pa.intersects(
			func(x RectF) bool { return rectFRectF(r, x) },
			func(c Circle) bool { return rectFCircle(r, c) },
		)
	}
	vsCircle := func(c Circle) bool {
		return pa.intersects(
			func(r RectF) bool { return rectFCircle(r, c) },
			func(x Circle) bool { return circleCircle(c, x) },
		)
	}
	return vsRect(pb.RectA) ||
		vsRect(pb.RectB) ||
		vsCircle(pb.CircleTL) ||
		vsCircle(pb.CircleTR) ||
		vsCircle(pb.CircleBR) ||
		vsCircle(pb.CircleBL)
}
