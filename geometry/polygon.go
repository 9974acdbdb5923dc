package geometry

import "iter"

// IsEmpty reports whether the polygon has too few outer points to enclose
// anything.
func (poly Polygon) IsEmpty() bool {
	return len(poly.Outer) < 3
}

// Rings yields the outer ring followed by each hole.
func (poly Polygon) Rings() iter.Seq[[]Vec2] {
	return func(yield func([]Vec2) bool) {
		if !yield(poly.Outer) {
			return
		}
		for _, hole := range poly.Holes {
			if !yield(hole) {
				return
			}
		}
	}
}

// Edges yields every edge of every ring, including the closing edge of each
// ring.
func (poly Polygon) Edges() iter.Seq[Line] {
	return func(yield func(Line) bool) {
		for ring := range poly.Rings() {
			for i, vertex := range ring {
				next := ring[CircularIndex(i+1, len(ring))]
				if !yield(Line{vertex, next}) {
					return
				}
			}
		}
	}
}

// BoundingRect is the smallest rectangle containing the outer ring. It is the
// zero RectF for an empty polygon.
func (poly Polygon) BoundingRect() RectF {
	return boundsOf(poly.Outer...)
}

// Contains is an even-odd point-in-polygon test over all rings, so points
// inside a hole are outside the polygon.
func (poly Polygon) Contains(p Vec2) bool {
	if poly.IsEmpty() {
		return false
	}
	return poly.CrossingCount(p)%2 == 1
}

// CrossingCount counts the edges crossed by a ray cast from p towards +X. An
// edge exactly at p's height counts only for its lower endpoint, so a vertex
// on the ray is never counted twice.
func (poly Polygon) CrossingCount(p Vec2) int {
	crossingCount := 0
	for edge := range poly.Edges() {
		a, b := edge.Begin, edge.End
		if (a.Y > p.Y) == (b.Y > p.Y) {
			continue
		}
		x := a.X + (p.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
		if p.X < x {
			crossingCount++
		}
	}
	return crossingCount
}

// Segments yields the consecutive segments of the line string. A line string
// with fewer than two points has none.
func (ls LineString) Segments() iter.Seq[Line] {
	return func(yield func(Line) bool) {
		for i := 0; i+1 < len(ls.Points); i++ {
			if !yield(Line{ls.Points[i], ls.Points[i+1]}) {
				return
			}
		}
	}
}
