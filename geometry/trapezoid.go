package geometry

import (
	"cmp"
	"math"
	"slices"
)

// A trapezoid of a polygon's interior. Left and Right are polygon edges that
// both span [Top, Bottom], each pointing down, and the interior lies between
// them. Top and Bottom may coincide with the edges' endpoints or cut through
// them.
type trapezoid struct {
	Left, Right Line
	Top, Bottom float64
}

// Corners in clockwise order on screen, starting at the top left.
func (t trapezoid) corners() (tl, tr, br, bl Vec2) {
	tl = Vec2{solveForX(t.Left, t.Top), t.Top}
	tr = Vec2{solveForX(t.Right, t.Top), t.Top}
	br = Vec2{solveForX(t.Right, t.Bottom), t.Bottom}
	bl = Vec2{solveForX(t.Left, t.Bottom), t.Bottom}
	return
}

// x of the edge's line at height y. The edge must not be horizontal. Endpoint
// heights give back the endpoints exactly, so trapezoids stacked on a vertex
// share it.
func solveForX(e Line, y float64) float64 {
	switch y {
	case e.Begin.Y:
		return e.Begin.X
	case e.End.Y:
		return e.End.X
	}
	return e.Begin.X + (y-e.Begin.Y)*(e.End.X-e.Begin.X)/(e.End.Y-e.Begin.Y)
}

// Triangles decomposes the polygon's interior, under the even-odd rule, into
// triangles with positive area. The polygon is cut into horizontal slabs at
// every vertex and at every point where two edges cross, and each slab into
// trapezoids between consecutive edges. Each trapezoid gives one or two
// triangles.
//
// The triangles are computed on every call. An empty or zero area polygon has
// none.
func (poly Polygon) Triangles() []Triangle {
	var triangles []Triangle
	for _, t := range poly.trapezoids() {
		tl, tr, br, bl := t.corners()
		for _, tri := range [2]Triangle{{tl, tr, br}, {tl, br, bl}} {
			if tri.signedArea() > 0 {
				triangles = append(triangles, tri)
			}
		}
	}
	return triangles
}

func (poly Polygon) trapezoids() []trapezoid {
	if poly.IsEmpty() {
		return nil
	}

	var edges []Line
	var ys []float64
	for edge := range poly.Edges() {
		ys = append(ys, edge.Begin.Y)
		if edge.Begin.Y == edge.End.Y {
			// Horizontal edges only ever bound a slab
			continue
		}
		if edge.Begin.Y > edge.End.Y {
			edge = Line{edge.End, edge.Begin}
		}
		edges = append(edges, edge)
	}
	for i, a := range edges {
		for _, b := range edges[i+1:] {
			if y, ok := crossingY(a, b); ok {
				ys = append(ys, y)
			}
		}
	}
	slices.Sort(ys)
	ys = slices.Compact(ys)

	var traps []trapezoid
	var spanning []Line
	for i := 0; i+1 < len(ys); i++ {
		top, bottom := ys[i], ys[i+1]
		spanning = spanning[:0]
		for _, e := range edges {
			if e.Begin.Y <= top && bottom <= e.End.Y {
				spanning = append(spanning, e)
			}
		}

		// No two edges cross inside a slab, so the order in the middle holds
		// for the whole slab.
		mid := (top + bottom) * 0.5
		slices.SortFunc(spanning, func(a, b Line) int {
			return cmp.Compare(solveForX(a, mid), solveForX(b, mid))
		})

		// Crossing an edge toggles between outside and inside
		for j := 0; j+1 < len(spanning); j += 2 {
			traps = append(traps, trapezoid{
				Left:   spanning[j],
				Right:  spanning[j+1],
				Top:    top,
				Bottom: bottom,
			})
		}
	}
	return traps
}

// Height at which two edges cross strictly inside both of them. Edges that only
// touch, or that are parallel, have no crossing.
func crossingY(a, b Line) (float64, bool) {
	r := a.Vector()
	s := b.Vector()
	rxs := r.Cross(s)
	if IsZero(rxs) {
		return 0, false
	}
	qp := b.Begin.Sub(a.Begin)
	t := qp.Cross(s) / rxs
	u := qp.Cross(r) / rxs
	if t <= 0 || 1 <= t || u <= 0 || 1 <= u {
		return 0, false
	}
	y := a.Begin.Y + t*r.Y
	if y <= a.Begin.Y || a.End.Y <= y {
		return 0, false
	}
	return y, true
}

// Positive when the vertices run clockwise on screen, with y growing downward.
func (t Triangle) signedArea() float64 {
	return t.P1.Sub(t.P0).Cross(t.P2.Sub(t.P0)) * 0.5
}

// Area is the unsigned area of the triangle.
func (t Triangle) Area() float64 {
	return math.Abs(t.signedArea())
}

// Area is the area of the outer ring minus the areas of the holes. Holes are
// assumed to lie inside the outer ring and not to overlap.
func (poly Polygon) Area() float64 {
	area := ringArea(poly.Outer)
	for _, hole := range poly.Holes {
		area -= ringArea(hole)
	}
	return area
}

// Shoelace formula
func ringArea(ring []Vec2) float64 {
	var sum float64
	for i, p := range ring {
		sum += p.Cross(ring[CircularIndex(i+1, len(ring))])
	}
	return math.Abs(sum) * 0.5
}
