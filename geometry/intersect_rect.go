package geometry

import "math"

// Overlap is open on both ends: rectangles that only share an edge do not
// intersect. Point containment is half-open instead; see vec2RectF.
func rectRect(a, b Rect) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W && a.Y < b.Y+b.H && b.Y < a.Y+a.H
}

func rectFRectF(a, b RectF) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W && a.Y < b.Y+b.H && b.Y < a.Y+a.H
}

// Works with the offset of the circle's center from the rectangle's center,
// folded into the first quadrant.
func rectFCircle(a RectF, b Circle) bool {
	aw := a.W * 0.5
	ah := a.H * 0.5
	cx := math.Abs(b.Center.X - a.X - aw)
	cy := math.Abs(b.Center.Y - a.Y - ah)

	if cx > aw+b.R || cy > ah+b.R {
		return false
	}

	// Inside the band of the rectangle on either axis, so the bounds check
	// above was exact.
	if cx <= aw || cy <= ah {
		return true
	}

	// Only the corner is left
	dx := cx - aw
	dy := cy - ah
	return dx*dx+dy*dy <= b.R*b.R
}

// The rectangle splits along its bl-tr diagonal.
func rectFTriangle(a RectF, b Triangle) bool {
	return triangleTriangle(Triangle{a.TL(), a.TR(), a.BL()}, b) ||
		triangleTriangle(Triangle{a.BL(), a.TR(), a.BR()}, b)
}

// The quad splits along p0-p2.
func rectFQuad(a RectF, b Quad) bool {
	return rectFTriangle(a, Triangle{b.P0, b.P1, b.P2}) ||
		rectFTriangle(a, Triangle{b.P0, b.P2, b.P3})
}

func rectFRoundRect(a RectF, b RoundRect) bool {
	return b.Parts().intersects(
		func(r RectF) bool { return rectFRectF(a, r) },
		func(c Circle) bool { return rectFCircle(a, c) },
	)
}
