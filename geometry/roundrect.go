package geometry

import "math"

// RoundRectParts is a rounded rectangle taken apart into shapes the rest of
// the package already knows how to intersect. The area of the rounded
// rectangle is exactly the union of the two bands, which form a plus shape,
// and the four corner disks, which fill in the gaps the plus leaves at the
// corners. RectA is the full width band between the top and bottom corner
// circles, and RectB the full height band between the left and right ones.
//
// Parts are derived on demand with RoundRect.Parts and never stored.
type RoundRectParts struct {
	BoundingRect RectF
	RectA        RectF
	RectB        RectF
	CircleTL     Circle
	CircleTR     Circle
	CircleBR     Circle
	CircleBL     Circle
}

// Radius is the corner radius after clamping to half the shorter side.
func (rr RoundRect) Radius() float64 {
	return math.Min(math.Min(rr.Rect.W*0.5, rr.Rect.H*0.5), rr.R)
}

func (rr RoundRect) Parts() RoundRectParts {
	rect := rr.Rect
	r := rr.Radius()
	x0 := rect.X
	x1 := rect.X + r
	x2 := rect.X + rect.W - r
	y0 := rect.Y
	y1 := rect.Y + r
	y2 := rect.Y + rect.H - r
	return RoundRectParts{
		BoundingRect: rect,
		RectA:        RectF{X: x0, Y: y1, W: rect.W, H: y2 - y1},
		RectB:        RectF{X: x1, Y: y0, W: x2 - x1, H: rect.H},
		CircleTL:     Circle{Vec2{x1, y1}, r},
		CircleTR:     Circle{Vec2{x2, y1}, r},
		CircleBR:     Circle{Vec2{x2, y2}, r},
		CircleBL:     Circle{Vec2{x1, y2}, r},
	}
}

// Circles returns the corner circles clockwise from the top left.
func (p RoundRectParts) Circles() [4]Circle {
	return [4]Circle{p.CircleTL, p.CircleTR, p.CircleBR, p.CircleBL}
}

// intersects runs the composite test for some shape S, given how S intersects
// a rectangle and a circle. The bounding rectangle is tested first since it
// rejects most shapes that are nowhere near.
func (p RoundRectParts) intersects(vsRect func(RectF) bool, vsCircle func(Circle) bool) bool {
	return vsRect(p.BoundingRect) &&
		(vsRect(p.RectA) ||
			vsRect(p.RectB) ||
			vsCircle(p.CircleTL) ||
			vsCircle(p.CircleTR) ||
			vsCircle(p.CircleBR) ||
			vsCircle(p.CircleBL))
}

// Intersects is the composite test against any shape.
func (p RoundRectParts) Intersects(s Shape) bool {
	s = Deref(s)
	return p.intersects(
		func(r RectF) bool { return vsRectF(r, s) },
		func(c Circle) bool { return vsCircle(c, s) },
	)
}
