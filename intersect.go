// Overlap tests for 2D shapes.
//
// This package answers one question for any pair of points, segments,
// rectangles, circles, ellipses, triangles, quads, rounded rectangles,
// polygons and line strings: do they intersect? The tests are pure, never
// fail, and are safe to call concurrently.
//
// Two boundary conventions coexist on purpose. Points are contained by
// rectangles half-open, like pixels on a grid, while rectangles overlap only
// when their interiors do. See the geometry package for the details of each
// pair.
package intersect

import "github.com/osuushi/intersect/geometry"

type Shape = geometry.Shape
type Kind = geometry.Kind

type Point = geometry.Point
type Vec2 = geometry.Vec2
type Line = geometry.Line
type Rect = geometry.Rect
type RectF = geometry.RectF
type Circle = geometry.Circle
type Ellipse = geometry.Ellipse
type Triangle = geometry.Triangle
type Quad = geometry.Quad
type RoundRect = geometry.RoundRect
type Polygon = geometry.Polygon
type LineString = geometry.LineString

// Intersect reports whether a and b overlap. The result does not depend on
// the order of the arguments.
func Intersect(a, b Shape) bool {
	return geometry.Intersect(a, b)
}

// Any reports whether a overlaps any of bs.
func Any(a Shape, bs ...Shape) bool {
	return geometry.Any(a, bs...)
}

// ErrUnsupportedPair is wrapped by IntersectAt errors.
var ErrUnsupportedPair = geometry.ErrUnsupportedPair

// IntersectAt reports where the boundaries of a and b cross, and whether they
// intersect at all.
func IntersectAt(a, b Shape) ([]Vec2, bool, error) {
	return geometry.IntersectAt(a, b)
}
