package dbg

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/osuushi/intersect/geometry"
	"github.com/osuushi/intersect/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestName(t *testing.T) {
	circle := geometry.Circ(1, 2, 3)
	name := Name(circle)
	assert.NotEmpty(t, name)
	assert.Equal(t, name, Name(geometry.Circ(1, 2, 3)))

	poly := geometry.Polygon{Outer: []geometry.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}}
	assert.Equal(t, Name(poly), Name(geometry.Polygon{Outer: []geometry.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}}))

	assert.Equal(t, "Ø", Name(nil))
	var p *geometry.Circle
	assert.Equal(t, "Ø", Name(p))
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "ball", Label(scene.Named{Name: "ball", Shape: geometry.Circ(0, 0, 1)}))

	unnamed := scene.Named{Shape: geometry.Vec(4, 5)}
	assert.Equal(t, Name(geometry.Vec(4, 5)), Label(unnamed))
}

func TestRender(t *testing.T) {
	shapes := []scene.Named{
		{Name: "a", Shape: geometry.Rt(0, 0, 10, 10)},
		{Name: "b", Shape: geometry.RtF(5, 5, 10, 10)},
		{Name: "c", Shape: geometry.Circ(30, 30, 5)},
	}
	hit := []bool{true, true, false}
	img := Render(shapes, hit, 10)

	// 35 by 35 scene units, plus padding on both sides
	assert.Equal(t, 35*10+drawPadding*2, img.Bounds().Dx())
	assert.Equal(t, 35*10+drawPadding*2, img.Bounds().Dy())

	r, g, b, _ := img.At(0, 0).RGBA()
	assert.Zero(t, r+g+b, "background")

	// Inside a, away from its label
	r, g, _, _ = img.At(drawPadding+10, drawPadding+10).RGBA()
	assert.Greater(t, r, g, "hit shapes are red")

	// Inside c, which hits nothing
	r, g, _, _ = img.At(drawPadding+300, drawPadding+280).RGBA()
	assert.Greater(t, g, r, "other shapes are green")
}

func TestRenderPointer(t *testing.T) {
	shapes := []scene.Named{{Name: "c", Shape: &geometry.Circle{Center: geometry.Vec(10, 10), R: 10}}}
	img := Render(shapes, []bool{true}, 10)
	assert.Equal(t, 20*10+drawPadding*2, img.Bounds().Dx())

	// Filled like the value would be, away from the label
	r, g, _, _ := img.At(drawPadding+100, drawPadding+40).RGBA()
	assert.Greater(t, r, g)
}

func TestRenderEveryKind(t *testing.T) {
	shapes := []scene.Named{
		{Shape: geometry.Pt(1, 1)},
		{Shape: geometry.Vec(2, 2)},
		{Shape: geometry.Ln(0, 0, 10, 5)},
		{Shape: geometry.Ellipse{Center: geometry.Vec(20, 20), A: 5, B: 2}},
		{Shape: geometry.Triangle{P0: geometry.Vec(0, 20), P1: geometry.Vec(5, 20), P2: geometry.Vec(0, 25)}},
		{Shape: geometry.Quad{P0: geometry.Vec(10, 10), P1: geometry.Vec(12, 10), P2: geometry.Vec(12, 12), P3: geometry.Vec(10, 12)}},
		{Shape: geometry.RoundRect{Rect: geometry.RtF(20, 0, 10, 6), R: 2}},
		{Shape: geometry.Polygon{
			Outer: []geometry.Vec2{{X: 0, Y: 30}, {X: 10, Y: 30}, {X: 10, Y: 40}, {X: 0, Y: 40}},
			Holes: [][]geometry.Vec2{{{X: 3, Y: 33}, {X: 7, Y: 33}, {X: 7, Y: 37}, {X: 3, Y: 37}}},
		}},
		{Shape: geometry.LineString{Points: []geometry.Vec2{{X: 20, Y: 30}, {X: 25, Y: 35}, {X: 30, Y: 30}}}},
	}
	img := Render(shapes, nil, 10)
	assert.Equal(t, 30*10+drawPadding*2, img.Bounds().Dx())
	assert.Equal(t, 40*10+drawPadding*2, img.Bounds().Dy())

	// The hole is left empty. The label sits lower, at the polygon's center.
	r, g, b, _ := img.At(drawPadding+50, drawPadding+335).RGBA()
	assert.Zero(t, r+g+b)
}

func TestDraw(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.png")
	shapes := []scene.Named{{Name: "ball", Shape: geometry.Circ(10, 10, 10)}}
	require.NoError(t, Draw(path, shapes, []bool{false}, 4))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 20*4+drawPadding*2, img.Bounds().Dx())

	var out bytes.Buffer
	require.NoError(t, Show(path, &out))
	assert.NotZero(t, out.Len())

	assert.Error(t, Show(filepath.Join(t.TempDir(), "missing.png"), &out))
}
