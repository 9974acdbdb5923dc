package geometry

// Polygons are tested as the union of their triangles. Triangles are closed,
// so a shape touching the outer ring or a hole's ring from outside counts.
//
// This is the one path in the package that allocates, since the triangles are
// computed for every test.
func polygonShape(p Polygon, s Shape) bool {
	if p.IsEmpty() || !boundsTouch(p.BoundingRect(), Bounds(s)) {
		return false
	}

	triangles := p.Triangles()
	if q, ok := s.(Polygon); ok {
		others := q.Triangles()
		for _, a := range triangles {
			for _, b := range others {
				if triangleTriangle(a, b) {
					return true
				}
			}
		}
		return false
	}

	for _, tri := range triangles {
		if vsTriangle(tri, s) {
			return true
		}
	}
	return false
}

// Closed overlap. It's only a quick reject, and must never reject shapes that
// touch.
func boundsTouch(a, b RectF) bool {
	return a.X <= b.X+b.W && b.X <= a.X+a.W && a.Y <= b.Y+b.H && b.Y <= a.Y+a.H
}

func lineStringAny(ls LineString, hit func(Line) bool) bool {
	for i := 0; i+1 < len(ls.Points); i++ {
		if hit(Line{ls.Points[i], ls.Points[i+1]}) {
			return true
		}
	}
	return false
}

func lineStringLineString(a, b LineString) bool {
	return lineStringAny(a, func(l Line) bool {
		return lineStringAny(b, func(m Line) bool { return lineLine(l, m) })
	})
}
