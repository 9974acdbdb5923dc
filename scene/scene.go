// Package scene loads collections of named shapes from SVG or YAML files and
// reports which of them intersect.
package scene

import (
	"iter"
	"os"
	"path/filepath"
	"strings"

	"github.com/osuushi/intersect/geometry"
	"github.com/pkg/errors"
)

// Named is a shape with the name it was given in the scene file. The name may
// be empty.
type Named struct {
	Name  string
	Shape geometry.Shape
}

// Scene is an ordered list of shapes. It is not modified after loading, and
// may be read concurrently.
type Scene struct {
	Shapes []Named
}

// Pair is an unordered pair of distinct shapes in a scene, with I < J.
type Pair struct {
	I, J int
	A, B Named
}

func (p Pair) Intersects() bool {
	return geometry.Intersect(p.A.Shape, p.B.Shape)
}

// Load reads a scene file, choosing the format from its extension.
func Load(path string) (*Scene, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".svg":
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrap(err, "open scene")
		}
		defer f.Close()
		s, err := LoadSVG(f)
		return s, errors.Wrapf(err, "load %s", path)
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(err, "read scene")
		}
		s, err := ParseYAML(data)
		return s, errors.Wrapf(err, "load %s", path)
	}
	return nil, errors.Errorf("unknown scene format %q", filepath.Ext(path))
}

// Lookup finds a shape by name.
func (s *Scene) Lookup(name string) (Named, bool) {
	for _, n := range s.Shapes {
		if n.Name != "" && n.Name == name {
			return n, true
		}
	}
	return Named{}, false
}

// Pairs yields every unordered pair of shapes in scene order.
func (s *Scene) Pairs() iter.Seq[Pair] {
	return func(yield func(Pair) bool) {
		for i := range s.Shapes {
			for j := i + 1; j < len(s.Shapes); j++ {
				if !yield(Pair{I: i, J: j, A: s.Shapes[i], B: s.Shapes[j]}) {
					return
				}
			}
		}
	}
}

// Hits returns the pairs that intersect.
func (s *Scene) Hits() []Pair {
	var hits []Pair
	for pair := range s.Pairs() {
		if pair.Intersects() {
			hits = append(hits, pair)
		}
	}
	return hits
}

// Hit reports, for each shape, whether it intersects any other shape.
func (s *Scene) Hit() []bool {
	hit := make([]bool, len(s.Shapes))
	for _, pair := range s.Hits() {
		hit[pair.I] = true
		hit[pair.J] = true
	}
	return hit
}

// Matrix is the full intersection table. It is symmetric, and the diagonal
// holds whether each shape intersects itself, which is false only for
// degenerate shapes.
func (s *Scene) Matrix() [][]bool {
	n := len(s.Shapes)
	m := make([][]bool, n)
	for i := range m {
		m[i] = make([]bool, n)
		m[i][i] = geometry.Intersect(s.Shapes[i].Shape, s.Shapes[i].Shape)
	}
	for pair := range s.Pairs() {
		hit := pair.Intersects()
		m[pair.I][pair.J] = hit
		m[pair.J][pair.I] = hit
	}
	return m
}

// Bounds is the union of the bounds of every shape.
func (s *Scene) Bounds() geometry.RectF {
	if len(s.Shapes) == 0 {
		return geometry.RectF{}
	}
	bounds := geometry.Bounds(s.Shapes[0].Shape)
	for _, n := range s.Shapes[1:] {
		bounds = bounds.Union(geometry.Bounds(n.Shape))
	}
	return bounds
}

// Collects shapes while loading, and rejects duplicate names.
type builder struct {
	shapes []Named
	names  map[string]bool
}

func newBuilder() *builder {
	return &builder{names: make(map[string]bool)}
}

func (b *builder) add(name string, shape geometry.Shape) {
	if name != "" {
		if b.names[name] {
			fatalf("duplicate shape name %q", name)
		}
		b.names[name] = true
	}
	b.shapes = append(b.shapes, Named{Name: name, Shape: shape})
}

func (b *builder) scene() *Scene {
	return &Scene{Shapes: b.shapes}
}
