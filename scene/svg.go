package scene

import (
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/intersect/geometry"
	"github.com/pkg/errors"
)

// This is not a full SVG reader. It understands the basic shape elements with
// plain numeric attributes, ignores transforms and styling, and skips every
// other element. Shapes are named by their id.
//
//   - circle, ellipse, line map directly
//   - rect is a RectF, or a RoundRect if it has rx or ry
//   - polygon is a Triangle with 3 points, a Quad with 4, and a Polygon otherwise
//   - polyline is a LineString

// LoadSVG reads the shapes of an SVG document in document order.
func LoadSVG(r io.Reader) (s *Scene, err error) {
	defer func() {
		recoveredErr := HandleParsePanicRecover(recover())
		if recoveredErr != nil {
			s, err = nil, recoveredErr
		}
	}()

	root, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, errors.Wrap(err, "parse svg")
	}

	b := newBuilder()
	walkSVG(root, func(el *svgparser.Element) {
		if shape := svgShape(el); shape != nil {
			b.add(el.Attributes["id"], shape)
		}
	})
	return b.scene(), nil
}

func walkSVG(el *svgparser.Element, fn func(*svgparser.Element)) {
	fn(el)
	for _, child := range el.Children {
		walkSVG(child, fn)
	}
}

// Returns nil for elements that aren't shapes.
func svgShape(el *svgparser.Element) geometry.Shape {
	attr := func(name string) float64 {
		return svgNumber(el, name)
	}
	length := func(name string) float64 {
		x := attr(name)
		if x < 0 {
			fatalf("negative %s attribute on <%s>", name, el.Name)
		}
		return x
	}

	switch el.Name {
	case "circle":
		return geometry.Circ(attr("cx"), attr("cy"), length("r"))
	case "ellipse":
		return geometry.Ellipse{
			Center: geometry.Vec(attr("cx"), attr("cy")),
			A:      length("rx"),
			B:      length("ry"),
		}
	case "line":
		return geometry.Ln(attr("x1"), attr("y1"), attr("x2"), attr("y2"))
	case "rect":
		rect := geometry.RtF(attr("x"), attr("y"), attr("width"), attr("height"))
		// A lone rx or ry applies to both
		r := attr("rx")
		if r == 0 {
			r = attr("ry")
		}
		if r > 0 {
			return geometry.RoundRect{Rect: rect, R: r}
		}
		return rect
	case "polygon":
		points := parsePoints(el.Attributes["points"])
		switch len(points) {
		case 0, 1, 2:
			fatalf("polygon %q needs at least 3 points, got %d", el.Attributes["id"], len(points))
		case 3:
			return geometry.Triangle{P0: points[0], P1: points[1], P2: points[2]}
		case 4:
			return geometry.Quad{P0: points[0], P1: points[1], P2: points[2], P3: points[3]}
		}
		return geometry.Polygon{Outer: points}
	case "polyline":
		return geometry.LineString{Points: parsePoints(el.Attributes["points"])}
	}
	return nil
}

// Missing attributes are zero, as in SVG. Units other than plain user units
// are not supported.
func svgNumber(el *svgparser.Element, name string) float64 {
	value, ok := el.Attributes[name]
	if !ok {
		return 0
	}
	value = strings.TrimSuffix(strings.TrimSpace(value), "px")
	x, err := strconv.ParseFloat(value, 64)
	if err != nil {
		wrapf(err, "invalid %s attribute on <%s>", name, el.Name)
	}
	return x
}

// Parses an SVG points list. Coordinates may be separated by commas, spaces or
// both.
func parsePoints(s string) []geometry.Vec2 {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields)%2 != 0 {
		fatalf("odd number of coordinates in points %q", s)
	}

	points := make([]geometry.Vec2, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			wrapf(err, "invalid x value %q", fields[i])
		}
		y, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			wrapf(err, "invalid y value %q", fields[i+1])
		}
		points = append(points, geometry.Vec(x, y))
	}
	return points
}
