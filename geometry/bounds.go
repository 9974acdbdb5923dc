package geometry

import "math"

// Bounds returns the smallest axis-aligned rectangle containing s. Points and
// zero length segments have zero size; a nil shape has the zero RectF.
// Pointers are followed.
func Bounds(s Shape) RectF {
	switch s := Deref(s).(type) {
	case Point:
		return RectF{X: float64(s.X), Y: float64(s.Y)}
	case Vec2:
		return RectF{X: s.X, Y: s.Y}
	case Line:
		return boundsOf(s.Begin, s.End)
	case Rect:
		return s.F()
	case RectF:
		return s
	case Circle:
		return RectF{X: s.Center.X - s.R, Y: s.Center.Y - s.R, W: 2 * s.R, H: 2 * s.R}
	case Ellipse:
		return RectF{X: s.Center.X - s.A, Y: s.Center.Y - s.B, W: 2 * s.A, H: 2 * s.B}
	case Triangle:
		return boundsOf(s.P0, s.P1, s.P2)
	case Quad:
		return boundsOf(s.P0, s.P1, s.P2, s.P3)
	case RoundRect:
		return s.Rect
	case Polygon:
		return s.BoundingRect()
	case LineString:
		return boundsOf(s.Points...)
	}
	return RectF{}
}

func boundsOf(points ...Vec2) RectF {
	if len(points) == 0 {
		return RectF{}
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return RectF{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// Union is the smallest rectangle containing both r and o.
func (r RectF) Union(o RectF) RectF {
	return boundsOf(r.TL(), r.BR(), o.TL(), o.BR())
}
