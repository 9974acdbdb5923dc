package geometry

// Integer points compare exactly. Every other test against a Point widens it
// to a Vec2 first.
func pointPoint(a, b Point) bool {
	return a == b
}

func vec2Vec2(a, b Vec2) bool {
	return a.DistanceSq(b) < SnapDistanceSq
}

func vec2Line(a Vec2, b Line) bool {
	return DistanceSq(b.Begin, b.End, a) < SnapDistanceSq
}

// Point containment is half-open, like pixels: the left and top edges are
// inside, the right and bottom edges are not. Note that this differs from
// rectangle overlap, which is fully open.
func vec2RectF(a Vec2, b RectF) bool {
	return b.X <= a.X && a.X < b.X+b.W && b.Y <= a.Y && a.Y < b.Y+b.H
}

func vec2Circle(a Vec2, b Circle) bool {
	return a.DistanceSq(b.Center) <= b.R*b.R
}

func vec2Ellipse(a Vec2, b Ellipse) bool {
	if b.IsDegenerate() {
		return false
	}
	xh := b.Center.X - a.X
	yk := b.Center.Y - a.Y
	return (xh*xh)/(b.A*b.A)+(yk*yk)/(b.B*b.B) <= 1
}

// The point is inside when it's on the same side of all three edges, which
// works for either winding.
func vec2Triangle(a Vec2, b Triangle) bool {
	b1 := Sign(a, b.P0, b.P1) < 0
	b2 := Sign(a, b.P1, b.P2) < 0
	b3 := Sign(a, b.P2, b.P0) < 0
	return b1 == b2 && b2 == b3
}

// Quads split along p1-p3 for point tests.
func vec2Quad(a Vec2, b Quad) bool {
	return vec2Triangle(a, Triangle{b.P0, b.P1, b.P3}) ||
		vec2Triangle(a, Triangle{b.P1, b.P2, b.P3})
}

func vec2RoundRect(a Vec2, b RoundRect) bool {
	return b.Parts().intersects(
		func(r RectF) bool { return vec2RectF(a, r) },
		func(c Circle) bool { return vec2Circle(a, c) },
	)
}

func vec2Polygon(a Vec2, b Polygon) bool {
	if b.IsEmpty() || !vec2RectF(a, b.BoundingRect()) {
		return false
	}
	return b.Contains(a)
}
