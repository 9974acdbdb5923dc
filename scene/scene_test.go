package scene

import (
	"bytes"
	"embed"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/osuushi/intersect/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//go:embed testdata
var fixtures embed.FS

func loadFixture(t *testing.T, name string) *Scene {
	t.Helper()
	data, err := fixtures.ReadFile("testdata/" + name)
	require.NoError(t, err)

	var s *Scene
	switch filepath.Ext(name) {
	case ".svg":
		s, err = LoadSVG(bytes.NewReader(data))
	case ".yaml":
		s, err = ParseYAML(data)
	}
	require.NoError(t, err)
	require.NotNil(t, s)
	return s
}

func names(s *Scene) []string {
	var out []string
	for _, n := range s.Shapes {
		out = append(out, n.Name)
	}
	return out
}

func hitNames(s *Scene) [][2]string {
	var out [][2]string
	for _, pair := range s.Hits() {
		out = append(out, [2]string{pair.A.Name, pair.B.Name})
	}
	return out
}

func TestLoadSVG(t *testing.T) {
	s := loadFixture(t, "shapes.svg")

	assert.Equal(t, []string{"ball", "box", "pill", "egg", "wire", "wedge", "kite", "star", "trail"}, names(s))

	kinds := make([]geometry.Kind, 0, len(s.Shapes))
	for _, n := range s.Shapes {
		kinds = append(kinds, n.Shape.Kind())
	}
	assert.Equal(t, []geometry.Kind{
		geometry.KindCircle,
		geometry.KindRectF,
		geometry.KindRoundRect,
		geometry.KindEllipse,
		geometry.KindLine,
		geometry.KindTriangle,
		geometry.KindQuad,
		geometry.KindPolygon,
		geometry.KindLineString,
	}, kinds)

	assert.Equal(t, geometry.Circ(20, 20, 10), s.Shapes[0].Shape)
	assert.Equal(t, geometry.RoundRect{Rect: geometry.RtF(60, 60, 30, 10), R: 5}, s.Shapes[2].Shape)
	assert.Equal(t, geometry.Ellipse{Center: geometry.Vec(80, 20), A: 10, B: 5}, s.Shapes[3].Shape)
	assert.Equal(t, geometry.Triangle{
		P0: geometry.Vec(10, 60),
		P1: geometry.Vec(30, 60),
		P2: geometry.Vec(10, 90),
	}, s.Shapes[5].Shape)
	assert.Len(t, s.Shapes[7].Shape.(geometry.Polygon).Outer, 10)
	assert.Equal(t, geometry.LineString{Points: []geometry.Vec2{{X: 60, Y: 90}, {X: 85, Y: 95}, {X: 85, Y: 65}}}, s.Shapes[8].Shape)

	assert.Equal(t, [][2]string{
		{"ball", "box"},
		{"pill", "trail"},
		{"wire", "kite"},
	}, hitNames(s))
	assert.Equal(t, []bool{true, true, true, false, true, false, true, false, true}, s.Hit())
}

func TestParseYAML(t *testing.T) {
	s := loadFixture(t, "shapes.yaml")

	expected := []Named{
		{"pixel", geometry.Pt(3, 4)},
		{"dot", geometry.Vec(3.5, 4.5)},
		{"stick", geometry.Ln(0, 0, 10, 10)},
		{"tile", geometry.Rt(2, 2, 4, 4)},
		{"plank", geometry.RtF(20, 0, 2.5, 30)},
		{"ball", geometry.Circ(30, 30, 5)},
		{"egg", geometry.Ellipse{Center: geometry.Vec(50, 10), A: 8, B: 3}},
		{"wedge", geometry.Triangle{P0: geometry.Vec(40, 40), P1: geometry.Vec(60, 40), P2: geometry.Vec(40, 60)}},
		{"kite", geometry.Quad{P0: geometry.Vec(70, 0), P1: geometry.Vec(80, 10), P2: geometry.Vec(70, 20), P3: geometry.Vec(60, 10)}},
		{"pill", geometry.RoundRect{Rect: geometry.RtF(70, 40, 20, 10), R: 4}},
		{"frame", geometry.Polygon{
			Outer: []geometry.Vec2{{X: 0, Y: 70}, {X: 30, Y: 70}, {X: 30, Y: 100}, {X: 0, Y: 100}},
			Holes: [][]geometry.Vec2{{{X: 10, Y: 80}, {X: 20, Y: 80}, {X: 20, Y: 90}, {X: 10, Y: 90}}},
		}},
		{"trail", geometry.LineString{Points: []geometry.Vec2{{X: 55, Y: 10}, {X: 65, Y: 10}, {X: 65, Y: 45}}}},
	}
	require.Len(t, s.Shapes, len(expected))
	for i := range expected {
		assert.Equal(t, expected[i], s.Shapes[i])
	}

	assert.Equal(t, [][2]string{
		{"pixel", "dot"},
		{"pixel", "stick"},
		{"pixel", "tile"},
		{"dot", "stick"},
		{"dot", "tile"},
		{"stick", "tile"},
		{"egg", "trail"},
		{"kite", "trail"},
	}, hitNames(s))
}

func TestYAMLRoundTrip(t *testing.T) {
	for _, name := range []string{"shapes.yaml", "shapes.svg"} {
		t.Run(name, func(t *testing.T) {
			s := loadFixture(t, name)

			var buf bytes.Buffer
			require.NoError(t, s.EncodeYAML(&buf))
			reloaded, err := ParseYAML(buf.Bytes())
			require.NoError(t, err)
			assert.Equal(t, s, reloaded)
		})
	}
}

func TestParseYAMLErrors(t *testing.T) {
	cases := []struct {
		name     string
		yaml     string
		expected string
	}{
		{"unknown kind", "shapes: [{kind: hexagon}]", `unknown kind "hexagon"`},
		{"missing points", "shapes: [{kind: line, points: [[0, 0]]}]", "needs 2 points, got 1"},
		{"missing center", "shapes: [{kind: circle, r: 3}]", "needs a center"},
		{"short rect", "shapes: [{kind: rectf, rect: [0, 0, 1]}]", "rect needs [x, y, w, h]"},
		{"negative rect", "shapes: [{kind: rectf, rect: [0, 0, -1, 1]}]", "negative rect size"},
		{"negative radius", "shapes: [{kind: circle, center: [0, 0], r: -1}]", "shape 0: negative r -1"},
		{"negative axis", "shapes: [{kind: ellipse, center: [0, 0], a: 2, b: -1}]", "negative b -1"},
		{"negative corner radius", "shapes: [{kind: roundrect, rect: [0, 0, 4, 4], r: -1}]", "negative r -1"},
		{"fractional point", "shapes: [{kind: point, points: [[0.5, 1]]}]", "needs integer coordinates"},
		{"fractional rect", "shapes: [{kind: rect, rect: [0, 0, 1.5, 1]}]", "needs integer coordinates"},
		{"duplicate name", "shapes: [{name: a, kind: vec2, points: [[0, 0]]}, {name: a, kind: vec2, points: [[1, 1]]}]", `duplicate shape name "a"`},
		{"bad syntax", "shapes: [", "parse yaml"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s, err := ParseYAML([]byte(c.yaml))
			assert.Nil(t, s)
			require.Error(t, err)
			assert.Contains(t, err.Error(), c.expected)
		})
	}
}

func TestLoadSVGErrors(t *testing.T) {
	cases := []struct {
		name     string
		svg      string
		expected string
	}{
		{"bad number", `<svg><circle cx="abc" cy="0" r="1"/></svg>`, "invalid cx attribute on <circle>"},
		{"short polygon", `<svg><polygon id="p" points="0,0 1,1"/></svg>`, `polygon "p" needs at least 3 points`},
		{"odd points", `<svg><polyline points="0,0 1"/></svg>`, "odd number of coordinates"},
		{"bad point", `<svg><polyline points="0,0 1,x"/></svg>`, `invalid y value "x"`},
		{"negative radius", `<svg><circle r="-1"/></svg>`, "negative r attribute on <circle>"},
		{"negative axis", `<svg><ellipse rx="-2" ry="1"/></svg>`, "negative rx attribute on <ellipse>"},
		{"duplicate id", `<svg><circle id="c" r="1"/><circle id="c" r="2"/></svg>`, `duplicate shape name "c"`},
		{"not xml", `<svg><circle></svg>`, "parse svg"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s, err := LoadSVG(strings.NewReader(c.svg))
			assert.Nil(t, s)
			require.Error(t, err)
			assert.Contains(t, err.Error(), c.expected)
		})
	}
}

func TestSVGDefaults(t *testing.T) {
	s, err := LoadSVG(strings.NewReader(`<svg>
		<rect width="10px" height="5" ry="2"/>
		<circle r="3"/>
		<polygon points="0 0, 10 0, 10 10, 5 15, 0 10"/>
	</svg>`))
	require.NoError(t, err)
	require.Len(t, s.Shapes, 3)

	assert.Equal(t, "", s.Shapes[0].Name)
	assert.Equal(t, geometry.RoundRect{Rect: geometry.RtF(0, 0, 10, 5), R: 2}, s.Shapes[0].Shape)
	assert.Equal(t, geometry.Circ(0, 0, 3), s.Shapes[1].Shape)
	assert.Equal(t, geometry.Polygon{Outer: []geometry.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 5, Y: 15}, {X: 0, Y: 10}}}, s.Shapes[2].Shape)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"shapes.svg", "shapes.yaml"} {
		data, err := fixtures.ReadFile("testdata/" + name)
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), data, 0o644))
	}

	fromSVG, err := Load(filepath.Join(dir, "shapes.svg"))
	require.NoError(t, err)
	assert.Len(t, fromSVG.Shapes, 9)

	// Extensions are case insensitive
	require.NoError(t, os.Rename(filepath.Join(dir, "shapes.yaml"), filepath.Join(dir, "shapes.YML")))
	fromYAML, err := Load(filepath.Join(dir, "shapes.YML"))
	require.NoError(t, err)
	assert.Len(t, fromYAML.Shapes, 12)

	_, err = Load(filepath.Join(dir, "missing.svg"))
	assert.Error(t, err)

	_, err = Load(filepath.Join(dir, "shapes.json"))
	assert.EqualError(t, err, `unknown scene format ".json"`)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.yaml"), []byte("shapes: [{kind: nope}]"), 0o644))
	_, err = Load(filepath.Join(dir, "broken.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.yaml")
}

func TestLookup(t *testing.T) {
	s := loadFixture(t, "shapes.svg")

	egg, ok := s.Lookup("egg")
	require.True(t, ok)
	assert.Equal(t, geometry.KindEllipse, egg.Shape.Kind())

	_, ok = s.Lookup("nothing")
	assert.False(t, ok)
	_, ok = s.Lookup("")
	assert.False(t, ok)
}

func TestPairs(t *testing.T) {
	s := loadFixture(t, "shapes.svg")

	count := 0
	for pair := range s.Pairs() {
		assert.Less(t, pair.I, pair.J)
		assert.Equal(t, s.Shapes[pair.I], pair.A)
		assert.Equal(t, s.Shapes[pair.J], pair.B)
		count++
	}
	assert.Equal(t, 9*8/2, count)

	// Stops early
	count = 0
	for range s.Pairs() {
		count++
		if count == 3 {
			break
		}
	}
	assert.Equal(t, 3, count)

	assert.Empty(t, (&Scene{}).Hits())
}

func TestMatrix(t *testing.T) {
	s := loadFixture(t, "shapes.yaml")
	m := s.Matrix()
	require.Len(t, m, len(s.Shapes))

	for i := range m {
		assert.True(t, m[i][i], s.Shapes[i].Name)
		for j := range m {
			assert.Equal(t, m[i][j], m[j][i])
		}
	}
	for _, pair := range s.Hits() {
		assert.True(t, m[pair.I][pair.J])
	}
	assert.False(t, m[4][5], "plank and ball")
}

func TestBounds(t *testing.T) {
	s := loadFixture(t, "shapes.svg")
	assert.Equal(t, geometry.RtF(0, 10, 100, 86), s.Bounds())
	assert.Equal(t, geometry.RectF{}, (&Scene{}).Bounds())
}
