package geometry

import "fmt"

// Intersect reports whether a and b overlap. It is defined for every pair of
// shapes and is symmetric in its arguments. Pointers to shapes are followed,
// and a nil shape or nil pointer intersects nothing.
//
// Integer points and rectangles are widened to their float versions, except
// when both sides are of the same integer kind. The shape with the lower Kind
// is then always passed first to the pair's test, so that only one ordering of
// each pair needs an implementation.
func Intersect(a, b Shape) bool {
	a, b = Deref(a), Deref(b)
	if a == nil || b == nil {
		return false
	}

	switch a := a.(type) {
	case Point:
		if b, ok := b.(Point); ok {
			return pointPoint(a, b)
		}
	case Rect:
		if b, ok := b.(Rect); ok {
			return rectRect(a, b)
		}
	}

	a, b = widen(a), widen(b)
	if a.Kind() > b.Kind() {
		a, b = b, a
	}

	switch a := a.(type) {
	case Vec2:
		return vec2Intersects(a, b)
	case Line:
		return lineIntersects(a, b)
	case RectF:
		return rectFIntersects(a, b)
	case Circle:
		return circleIntersects(a, b)
	case Ellipse:
		return ellipseIntersects(a, b)
	case Triangle:
		return triangleIntersects(a, b)
	case Quad:
		return quadIntersects(a, b)
	case RoundRect:
		return roundRectIntersects(a, b)
	case Polygon:
		return polygonIntersects(a, b)
	case LineString:
		return lineStringLineString(a, b.(LineString))
	}
	panic(fmt.Sprintf("geometry: unsupported shape %T", a))
}

// Any reports whether a intersects at least one of bs.
func Any(a Shape, bs ...Shape) bool {
	for _, b := range bs {
		if Intersect(a, b) {
			return true
		}
	}
	return false
}

// Deref follows pointers to shapes, which satisfy Shape through the value
// methods. A nil pointer gives a nil Shape. Anything else is returned as is.
func Deref(s Shape) Shape {
	switch s := s.(type) {
	case *Point:
		return derefOf(s)
	case *Vec2:
		return derefOf(s)
	case *Line:
		return derefOf(s)
	case *Rect:
		return derefOf(s)
	case *RectF:
		return derefOf(s)
	case *Circle:
		return derefOf(s)
	case *Ellipse:
		return derefOf(s)
	case *Triangle:
		return derefOf(s)
	case *Quad:
		return derefOf(s)
	case *RoundRect:
		return derefOf(s)
	case *Polygon:
		return derefOf(s)
	case *LineString:
		return derefOf(s)
	}
	return s
}

func derefOf[T Shape](p *T) Shape {
	if p == nil {
		return nil
	}
	return *p
}

func widen(s Shape) Shape {
	switch s := s.(type) {
	case Point:
		return s.F()
	case Rect:
		return s.F()
	}
	return s
}

// Each of the following handles b of a kind no lower than a's.

func vec2Intersects(a Vec2, b Shape) bool {
	switch b := b.(type) {
	case Vec2:
		return vec2Vec2(a, b)
	case Line:
		return vec2Line(a, b)
	case RectF:
		return vec2RectF(a, b)
	case Circle:
		return vec2Circle(a, b)
	case Ellipse:
		return vec2Ellipse(a, b)
	case Triangle:
		return vec2Triangle(a, b)
	case Quad:
		return vec2Quad(a, b)
	case RoundRect:
		return vec2RoundRect(a, b)
	case Polygon:
		return vec2Polygon(a, b)
	case LineString:
		return lineStringAny(b, func(l Line) bool { return vec2Line(a, l) })
	}
	panic(unordered(a, b))
}

func lineIntersects(a Line, b Shape) bool {
	switch b := b.(type) {
	case Line:
		return lineLine(a, b)
	case RectF:
		return lineRectF(a, b)
	case Circle:
		return lineCircle(a, b)
	case Ellipse:
		return lineEllipse(a, b)
	case Triangle:
		return lineTriangle(a, b)
	case Quad:
		return lineQuad(a, b)
	case RoundRect:
		return lineRoundRect(a, b)
	case Polygon:
		return polygonShape(b, a)
	case LineString:
		return lineStringAny(b, func(l Line) bool { return lineLine(a, l) })
	}
	panic(unordered(a, b))
}

func rectFIntersects(a RectF, b Shape) bool {
	switch b := b.(type) {
	case RectF:
		return rectFRectF(a, b)
	case Circle:
		return rectFCircle(a, b)
	case Ellipse:
		return rectFEllipse(a, b)
	case Triangle:
		return rectFTriangle(a, b)
	case Quad:
		return rectFQuad(a, b)
	case RoundRect:
		return rectFRoundRect(a, b)
	case Polygon:
		return polygonShape(b, a)
	case LineString:
		return lineStringAny(b, func(l Line) bool { return lineRectF(l, a) })
	}
	panic(unordered(a, b))
}

func circleIntersects(a Circle, b Shape) bool {
	switch b := b.(type) {
	case Circle:
		return circleCircle(a, b)
	case Ellipse:
		return circleEllipse(a, b)
	case Triangle:
		return circleTriangle(a, b)
	case Quad:
		return circleQuad(a, b)
	case RoundRect:
		return circleRoundRect(a, b)
	case Polygon:
		return polygonShape(b, a)
	case LineString:
		return lineStringAny(b, func(l Line) bool { return lineCircle(l, a) })
	}
	panic(unordered(a, b))
}

func ellipseIntersects(a Ellipse, b Shape) bool {
	switch b := b.(type) {
	case Ellipse:
		return ellipseEllipse(a, b)
	case Triangle:
		return ellipseTriangle(a, b)
	case Quad:
		return ellipseQuad(a, b)
	case RoundRect:
		return ellipseRoundRect(a, b)
	case Polygon:
		return polygonShape(b, a)
	case LineString:
		return lineStringAny(b, func(l Line) bool { return lineEllipse(l, a) })
	}
	panic(unordered(a, b))
}

func triangleIntersects(a Triangle, b Shape) bool {
	switch b := b.(type) {
	case Triangle:
		return triangleTriangle(a, b)
	case Quad:
		return triangleQuad(a, b)
	case RoundRect:
		return triangleRoundRect(a, b)
	case Polygon:
		return polygonShape(b, a)
	case LineString:
		return lineStringAny(b, func(l Line) bool { return lineTriangle(l, a) })
	}
	panic(unordered(a, b))
}

func quadIntersects(a Quad, b Shape) bool {
	switch b := b.(type) {
	case Quad:
		return quadQuad(a, b)
	case RoundRect:
		return quadRoundRect(a, b)
	case Polygon:
		return polygonShape(b, a)
	case LineString:
		return lineStringAny(b, func(l Line) bool { return lineQuad(l, a) })
	}
	panic(unordered(a, b))
}

func roundRectIntersects(a RoundRect, b Shape) bool {
	switch b := b.(type) {
	case RoundRect:
		return roundRectRoundRect(a, b)
	case Polygon:
		return polygonShape(b, a)
	case LineString:
		return lineStringAny(b, func(l Line) bool { return lineRoundRect(l, a) })
	}
	panic(unordered(a, b))
}

func polygonIntersects(a Polygon, b Shape) bool {
	switch b.(type) {
	case Polygon, LineString:
		return polygonShape(a, b)
	}
	panic(unordered(a, b))
}

// The vs* helpers take a concrete shape and any other shape, with no ordering
// requirement, so that composite tests can call them without boxing their
// parts. s must already be dereferenced.

func vsRectF(r RectF, s Shape) bool {
	switch s := s.(type) {
	case nil:
		return false
	case Point:
		return vec2RectF(s.F(), r)
	case Vec2:
		return vec2RectF(s, r)
	case Line:
		return lineRectF(s, r)
	case Rect:
		return rectFRectF(r, s.F())
	}
	return rectFIntersects(r, s)
}

func vsCircle(c Circle, s Shape) bool {
	switch s := s.(type) {
	case nil:
		return false
	case Point:
		return vec2Circle(s.F(), c)
	case Vec2:
		return vec2Circle(s, c)
	case Line:
		return lineCircle(s, c)
	case Rect:
		return rectFCircle(s.F(), c)
	case RectF:
		return rectFCircle(s, c)
	}
	return circleIntersects(c, s)
}

func vsTriangle(t Triangle, s Shape) bool {
	switch s := s.(type) {
	case nil:
		return false
	case Point:
		return vec2Triangle(s.F(), t)
	case Vec2:
		return vec2Triangle(s, t)
	case Line:
		return lineTriangle(s, t)
	case Rect:
		return rectFTriangle(s.F(), t)
	case RectF:
		return rectFTriangle(s, t)
	case Circle:
		return circleTriangle(s, t)
	case Ellipse:
		return ellipseTriangle(s, t)
	}
	return triangleIntersects(t, s)
}

// Only reachable if the canonical ordering is broken
func unordered(a, b Shape) string {
	return fmt.Sprintf("geometry: %s is dispatched before %s", a.Kind(), b.Kind())
}
