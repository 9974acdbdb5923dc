package geometry

import "fmt"

// Kind identifies a shape type. The order of the constants is the canonical
// order used by the dispatcher: for a pair of shapes, the one with the lower
// kind is always tested first, and the mirrored pair just swaps arguments.
type Kind int

const (
	KindPoint Kind = iota
	KindVec2
	KindLine
	KindRect
	KindRectF
	KindCircle
	KindEllipse
	KindTriangle
	KindQuad
	KindRoundRect
	KindPolygon
	KindLineString
)

var kindNames = [...]string{
	KindPoint:      "point",
	KindVec2:       "vec2",
	KindLine:       "line",
	KindRect:       "rect",
	KindRectF:      "rectf",
	KindCircle:     "circle",
	KindEllipse:    "ellipse",
	KindTriangle:   "triangle",
	KindQuad:       "quad",
	KindRoundRect:  "roundrect",
	KindPolygon:    "polygon",
	KindLineString: "linestring",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, bool) {
	for k, name := range kindNames {
		if name == s {
			return Kind(k), true
		}
	}
	return 0, false
}

// Shape is the closed set of shapes the package knows how to intersect.
type Shape interface {
	Kind() Kind

	// Intersects reports whether the shape overlaps other. It is the same as
	// Intersect(s, other).
	Intersects(other Shape) bool

	// Unused, but keeps the set of implementations closed, so the dispatcher
	// can switch over every shape type exhaustively.
	shapeTypeHint()
}

func (Point) shapeTypeHint()      {}
func (Vec2) shapeTypeHint()       {}
func (Line) shapeTypeHint()       {}
func (Rect) shapeTypeHint()       {}
func (RectF) shapeTypeHint()      {}
func (Circle) shapeTypeHint()     {}
func (Ellipse) shapeTypeHint()    {}
func (Triangle) shapeTypeHint()   {}
func (Quad) shapeTypeHint()       {}
func (RoundRect) shapeTypeHint()  {}
func (Polygon) shapeTypeHint()    {}
func (LineString) shapeTypeHint() {}

func (Point) Kind() Kind      { return KindPoint }
func (Vec2) Kind() Kind       { return KindVec2 }
func (Line) Kind() Kind       { return KindLine }
func (Rect) Kind() Kind       { return KindRect }
func (RectF) Kind() Kind      { return KindRectF }
func (Circle) Kind() Kind     { return KindCircle }
func (Ellipse) Kind() Kind    { return KindEllipse }
func (Triangle) Kind() Kind   { return KindTriangle }
func (Quad) Kind() Kind       { return KindQuad }
func (RoundRect) Kind() Kind  { return KindRoundRect }
func (Polygon) Kind() Kind    { return KindPolygon }
func (LineString) Kind() Kind { return KindLineString }

func (p Point) Intersects(other Shape) bool      { return Intersect(p, other) }
func (v Vec2) Intersects(other Shape) bool       { return Intersect(v, other) }
func (l Line) Intersects(other Shape) bool       { return Intersect(l, other) }
func (r Rect) Intersects(other Shape) bool       { return Intersect(r, other) }
func (r RectF) Intersects(other Shape) bool      { return Intersect(r, other) }
func (c Circle) Intersects(other Shape) bool     { return Intersect(c, other) }
func (e Ellipse) Intersects(other Shape) bool    { return Intersect(e, other) }
func (t Triangle) Intersects(other Shape) bool   { return Intersect(t, other) }
func (q Quad) Intersects(other Shape) bool       { return Intersect(q, other) }
func (r RoundRect) Intersects(other Shape) bool  { return Intersect(r, other) }
func (p Polygon) Intersects(other Shape) bool    { return Intersect(p, other) }
func (l LineString) Intersects(other Shape) bool { return Intersect(l, other) }

// Point is an integer position, typically a pixel.
type Point struct {
	X, Y int
}

func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// F converts the point to floating point.
func (p Point) F() Vec2 {
	return Vec2{X: float64(p.X), Y: float64(p.Y)}
}

// Vec2 is a floating point position or vector.
type Vec2 struct {
	X, Y float64
}

func Vec(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Cross is the z component of the 3D cross product of v and o.
func (v Vec2) Cross(o Vec2) float64 {
	return v.X*o.Y - v.Y*o.X
}

func (v Vec2) LengthSq() float64 {
	return v.Dot(v)
}

func (v Vec2) DistanceSq(o Vec2) float64 {
	return v.Sub(o).LengthSq()
}

// Line is a line segment, not an infinite line.
type Line struct {
	Begin, End Vec2
}

func Ln(x0, y0, x1, y1 float64) Line {
	return Line{Begin: Vec2{x0, y0}, End: Vec2{x1, y1}}
}

// Vector is the direction from Begin to End, unnormalized.
func (l Line) Vector() Vec2 {
	return l.End.Sub(l.Begin)
}

func (l Line) IsDegenerate() bool {
	return l.Begin == l.End
}

// Rect is an integer rectangle given by its top left corner and its size. W
// and H are never negative.
type Rect struct {
	X, Y, W, H int
}

func Rt(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// F converts the rectangle to floating point.
func (r Rect) F() RectF {
	return RectF{X: float64(r.X), Y: float64(r.Y), W: float64(r.W), H: float64(r.H)}
}

// RectF is the floating point version of Rect.
type RectF struct {
	X, Y, W, H float64
}

func RtF(x, y, w, h float64) RectF {
	return RectF{X: x, Y: y, W: w, H: h}
}

func (r RectF) TL() Vec2 { return Vec2{r.X, r.Y} }
func (r RectF) TR() Vec2 { return Vec2{r.X + r.W, r.Y} }
func (r RectF) BR() Vec2 { return Vec2{r.X + r.W, r.Y + r.H} }
func (r RectF) BL() Vec2 { return Vec2{r.X, r.Y + r.H} }

func (r RectF) Center() Vec2 {
	return Vec2{r.X + r.W*0.5, r.Y + r.H*0.5}
}

// Circle is a closed disk.
type Circle struct {
	Center Vec2
	R      float64
}

func Circ(x, y, r float64) Circle {
	return Circle{Center: Vec2{x, y}, R: r}
}

// Ellipse is an axis-aligned ellipse with semi-axes A (horizontal) and B
// (vertical).
type Ellipse struct {
	Center Vec2
	A, B   float64
}

// IsDegenerate reports whether one of the semi-axes is zero or negative.
// Degenerate ellipses have no area and never intersect anything.
func (e Ellipse) IsDegenerate() bool {
	return e.A <= 0 || e.B <= 0
}

// Triangle has no winding requirement.
type Triangle struct {
	P0, P1, P2 Vec2
}

// P returns the i-th vertex, wrapping modulo 3.
func (t Triangle) P(i int) Vec2 {
	switch CircularIndex(i, 3) {
	case 0:
		return t.P0
	case 1:
		return t.P1
	}
	return t.P2
}

func (t Triangle) Centroid() Vec2 {
	return Vec2{(t.P0.X + t.P1.X + t.P2.X) / 3, (t.P0.Y + t.P1.Y + t.P2.Y) / 3}
}

// Quad is a quadrilateral. Algorithms that need triangles split it along the
// p0-p2 diagonal or the p1-p3 diagonal as documented on each of them, so a
// concave quad is only handled correctly when the split diagonal is inside
// it.
type Quad struct {
	P0, P1, P2, P3 Vec2
}

// P returns the i-th vertex, wrapping modulo 4.
func (q Quad) P(i int) Vec2 {
	switch CircularIndex(i, 4) {
	case 0:
		return q.P0
	case 1:
		return q.P1
	case 2:
		return q.P2
	}
	return q.P3
}

// RoundRect is a rectangle with circular corners of radius R. The effective
// radius is clamped to half the shorter side.
type RoundRect struct {
	Rect RectF
	R    float64
}

// Polygon is a simple polygon with optional holes. Rings are implicitly
// closed and may wind either way; containment uses the even-odd rule.
type Polygon struct {
	Outer []Vec2
	Holes [][]Vec2
}

// LineString is an open polyline.
type LineString struct {
	Points []Vec2
}

// CircularIndex treats a slice of length n as a circular buffer. Unlike the
// raw modulo operator, it never gives negative values.
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}
