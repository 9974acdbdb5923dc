package scene

import (
	"io"
	"math"

	"github.com/osuushi/intersect/geometry"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// YAML scenes can hold every kind of shape:
//
//	shapes:
//	  - name: ball
//	    kind: circle
//	    center: [5, 5]
//	    r: 3
//	  - kind: roundrect
//	    rect: [0, 0, 20, 10]
//	    r: 2
//
// Which fields are read depends on the kind. Rect and point are integer kinds,
// and reject fractional coordinates.

type yamlScene struct {
	Shapes []yamlShape `yaml:"shapes"`
}

type yamlShape struct {
	Name   string         `yaml:"name,omitempty"`
	Kind   string         `yaml:"kind"`
	Center *[2]float64    `yaml:"center,omitempty,flow"`
	Points [][2]float64   `yaml:"points,omitempty,flow"`
	Rect   []float64      `yaml:"rect,omitempty,flow"`
	R      float64        `yaml:"r,omitempty"`
	A      float64        `yaml:"a,omitempty"`
	B      float64        `yaml:"b,omitempty"`
	Holes  [][][2]float64 `yaml:"holes,omitempty,flow"`
}

// ParseYAML reads a YAML scene.
func ParseYAML(data []byte) (s *Scene, err error) {
	defer func() {
		recoveredErr := HandleParsePanicRecover(recover())
		if recoveredErr != nil {
			s, err = nil, recoveredErr
		}
	}()

	var doc yamlScene
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "parse yaml")
	}

	b := newBuilder()
	for i, shape := range doc.Shapes {
		b.add(shape.Name, shape.toShape(i))
	}
	return b.scene(), nil
}

// EncodeYAML writes the scene in the format ParseYAML reads.
func (s *Scene) EncodeYAML(w io.Writer) error {
	doc := yamlScene{Shapes: make([]yamlShape, 0, len(s.Shapes))}
	for _, n := range s.Shapes {
		doc.Shapes = append(doc.Shapes, fromShape(n))
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return errors.Wrap(err, "encode yaml")
	}
	return errors.Wrap(enc.Close(), "encode yaml")
}

func (ys yamlShape) toShape(index int) geometry.Shape {
	kind, ok := geometry.ParseKind(ys.Kind)
	if !ok {
		fatalf("shape %d: unknown kind %q", index, ys.Kind)
	}

	switch kind {
	case geometry.KindPoint:
		p := ys.point(index)
		return geometry.Pt(ys.integer(index, p.X), ys.integer(index, p.Y))
	case geometry.KindVec2:
		return ys.point(index)
	case geometry.KindLine:
		points := ys.points(index, 2)
		return geometry.Line{Begin: points[0], End: points[1]}
	case geometry.KindRect:
		r := ys.rect(index)
		return geometry.Rt(ys.integer(index, r.X), ys.integer(index, r.Y), ys.integer(index, r.W), ys.integer(index, r.H))
	case geometry.KindRectF:
		return ys.rect(index)
	case geometry.KindCircle:
		return geometry.Circle{Center: ys.center(index), R: ys.length(index, "r", ys.R)}
	case geometry.KindEllipse:
		return geometry.Ellipse{Center: ys.center(index), A: ys.length(index, "a", ys.A), B: ys.length(index, "b", ys.B)}
	case geometry.KindTriangle:
		p := ys.points(index, 3)
		return geometry.Triangle{P0: p[0], P1: p[1], P2: p[2]}
	case geometry.KindQuad:
		p := ys.points(index, 4)
		return geometry.Quad{P0: p[0], P1: p[1], P2: p[2], P3: p[3]}
	case geometry.KindRoundRect:
		return geometry.RoundRect{Rect: ys.rect(index), R: ys.length(index, "r", ys.R)}
	case geometry.KindPolygon:
		poly := geometry.Polygon{Outer: vecs(ys.Points)}
		for _, hole := range ys.Holes {
			poly.Holes = append(poly.Holes, vecs(hole))
		}
		return poly
	case geometry.KindLineString:
		return geometry.LineString{Points: vecs(ys.Points)}
	}
	fatalf("shape %d: kind %s can't be loaded", index, kind)
	return nil
}

func (ys yamlShape) points(index, n int) []geometry.Vec2 {
	if len(ys.Points) != n {
		fatalf("shape %d: %s needs %d points, got %d", index, ys.Kind, n, len(ys.Points))
	}
	return vecs(ys.Points)
}

func (ys yamlShape) point(index int) geometry.Vec2 {
	return ys.points(index, 1)[0]
}

func (ys yamlShape) center(index int) geometry.Vec2 {
	if ys.Center == nil {
		fatalf("shape %d: %s needs a center", index, ys.Kind)
	}
	return geometry.Vec(ys.Center[0], ys.Center[1])
}

func (ys yamlShape) rect(index int) geometry.RectF {
	if len(ys.Rect) != 4 {
		fatalf("shape %d: rect needs [x, y, w, h], got %v", index, ys.Rect)
	}
	if ys.Rect[2] < 0 || ys.Rect[3] < 0 {
		fatalf("shape %d: negative rect size %v", index, ys.Rect)
	}
	return geometry.RtF(ys.Rect[0], ys.Rect[1], ys.Rect[2], ys.Rect[3])
}

// Radii and semi-axes
func (ys yamlShape) length(index int, field string, x float64) float64 {
	if x < 0 {
		fatalf("shape %d: negative %s %v", index, field, x)
	}
	return x
}

func (ys yamlShape) integer(index int, x float64) int {
	if x != math.Trunc(x) {
		fatalf("shape %d: %s needs integer coordinates, got %v", index, ys.Kind, x)
	}
	return int(x)
}

func vecs(points [][2]float64) []geometry.Vec2 {
	out := make([]geometry.Vec2, 0, len(points))
	for _, p := range points {
		out = append(out, geometry.Vec(p[0], p[1]))
	}
	return out
}

func pairs(points ...geometry.Vec2) [][2]float64 {
	out := make([][2]float64, 0, len(points))
	for _, p := range points {
		out = append(out, [2]float64{p.X, p.Y})
	}
	return out
}

func fromShape(n Named) yamlShape {
	ys := yamlShape{Name: n.Name, Kind: n.Shape.Kind().String()}
	switch s := n.Shape.(type) {
	case geometry.Point:
		ys.Points = pairs(s.F())
	case geometry.Vec2:
		ys.Points = pairs(s)
	case geometry.Line:
		ys.Points = pairs(s.Begin, s.End)
	case geometry.Rect:
		r := s.F()
		ys.Rect = []float64{r.X, r.Y, r.W, r.H}
	case geometry.RectF:
		ys.Rect = []float64{s.X, s.Y, s.W, s.H}
	case geometry.Circle:
		ys.Center = &[2]float64{s.Center.X, s.Center.Y}
		ys.R = s.R
	case geometry.Ellipse:
		ys.Center = &[2]float64{s.Center.X, s.Center.Y}
		ys.A, ys.B = s.A, s.B
	case geometry.Triangle:
		ys.Points = pairs(s.P0, s.P1, s.P2)
	case geometry.Quad:
		ys.Points = pairs(s.P0, s.P1, s.P2, s.P3)
	case geometry.RoundRect:
		ys.Rect = []float64{s.Rect.X, s.Rect.Y, s.Rect.W, s.Rect.H}
		ys.R = s.R
	case geometry.Polygon:
		ys.Points = pairs(s.Outer...)
		for _, hole := range s.Holes {
			ys.Holes = append(ys.Holes, pairs(hole...))
		}
	case geometry.LineString:
		ys.Points = pairs(s.Points...)
	}
	return ys
}
