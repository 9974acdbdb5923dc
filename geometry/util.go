package geometry

import "math"

const (
	// ZeroTolerance is the absolute tolerance of IsZero. It decides which
	// nearly parallel segments are treated as parallel, so changing it changes
	// which segments intersect.
	ZeroTolerance = 1e-10

	// SnapDistanceSq is the squared distance under which a point is considered
	// to touch another point or a segment. Points are fuzzy; they are a unit
	// wide, not infinitely small.
	SnapDistanceSq = 1.0
)

// IsZero reports whether x is within ZeroTolerance of zero.
func IsZero(x float64) bool {
	return math.Abs(x) < ZeroTolerance
}

// DistanceSq returns the squared distance from p to the segment from begin to
// end. If the segment has zero length, it's the squared distance between p and
// begin.
func DistanceSq(begin, end, p Vec2) float64 {
	l2 := begin.DistanceSq(end)
	if l2 == 0 {
		return begin.DistanceSq(p)
	}

	// Parameter of the projection of p onto the line, clamped to the segment
	t := math.Max(0, math.Min(1, p.Sub(begin).Dot(end.Sub(begin))/l2))
	projection := begin.Add(end.Sub(begin).Scale(t))
	return p.DistanceSq(projection)
}

// Sign tells which side of the line through p3 and p2 the point p1 is on. The
// magnitude is twice the area of the triangle (p1, p2, p3).
func Sign(p1, p2, p3 Vec2) float64 {
	return (p1.X-p3.X)*(p2.Y-p3.Y) - (p2.X-p3.X)*(p1.Y-p3.Y)
}
