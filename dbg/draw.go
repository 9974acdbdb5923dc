package dbg

import (
	"image"
	"io"
	"slices"

	"deedles.dev/xiter"
	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/intersect/geometry"
	"github.com/osuushi/intersect/scene"
	"github.com/pkg/errors"
)

// This is for looking at scenes, not for producing anything nice.

// Padding around the scene, in pixels
const drawPadding = 20

const pointRadius = 3

// Render draws shapes scaled by scale, in scene coordinates (y grows
// downward, like SVG). Shapes with hit set are red, the others green. hit may
// be nil, or shorter than shapes.
func Render(shapes []scene.Named, hit []bool, scale float64) image.Image {
	return render(shapes, hit, scale).Image()
}

// Draw renders shapes and saves them as a PNG.
func Draw(path string, shapes []scene.Named, hit []bool, scale float64) error {
	c := render(shapes, hit, scale)
	return errors.Wrap(c.SavePNG(path), "save png")
}

// Show prints a PNG inline. Only iTerm-compatible terminals know what to do
// with it.
func Show(path string, w io.Writer) error {
	return errors.Wrap(imgcat.CatFile(path, w), "imgcat")
}

func render(shapes []scene.Named, hit []bool, scale float64) *gg.Context {
	bounds := (&scene.Scene{Shapes: shapes}).Bounds()
	width := int(scale*bounds.W) + drawPadding*2
	height := int(scale*bounds.H) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()
	c.SetFillRuleEvenOdd()
	c.SetLineWidth(2)

	// Translate for padding
	c.Translate(drawPadding, drawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-bounds.X, -bounds.Y)

	for i, n := range xiter.Enumerate(slices.Values(shapes)) {
		r, g, b := 0.3, 0.9, 0.5
		if i < len(hit) && hit[i] {
			r, g, b = 1, 0.3, 0.3
		}
		if drawShape(c, n.Shape) {
			c.SetRGBA(r, g, b, 0.35)
			c.FillPreserve()
		}
		c.SetRGB(r, g, b)
		c.Stroke()
	}

	// Labels go on last so that no shape covers them. Text is drawn without
	// the transform, so it doesn't scale with the scene.
	c.SetRGB(1, 1, 1)
	for _, n := range shapes {
		center := geometry.Bounds(n.Shape).Center()
		x, y := c.TransformPoint(center.X, center.Y)
		c.Push()
		c.Identity()
		c.DrawStringAnchored(Label(n), x, y, 0.5, 0.5)
		c.Pop()
	}
	return c
}

// Builds the path for s, and reports whether it has an area to fill.
func drawShape(c *gg.Context, s geometry.Shape) bool {
	switch s := geometry.Deref(s).(type) {
	case geometry.Point:
		c.DrawPoint(float64(s.X), float64(s.Y), pointRadius)
		return true
	case geometry.Vec2:
		c.DrawPoint(s.X, s.Y, pointRadius)
		return true
	case geometry.Line:
		c.DrawLine(s.Begin.X, s.Begin.Y, s.End.X, s.End.Y)
	case geometry.Rect:
		c.DrawRectangle(float64(s.X), float64(s.Y), float64(s.W), float64(s.H))
		return true
	case geometry.RectF:
		c.DrawRectangle(s.X, s.Y, s.W, s.H)
		return true
	case geometry.Circle:
		c.DrawCircle(s.Center.X, s.Center.Y, s.R)
		return true
	case geometry.Ellipse:
		c.DrawEllipse(s.Center.X, s.Center.Y, s.A, s.B)
		return true
	case geometry.Triangle:
		drawRing(c, []geometry.Vec2{s.P0, s.P1, s.P2})
		return true
	case geometry.Quad:
		drawRing(c, []geometry.Vec2{s.P0, s.P1, s.P2, s.P3})
		return true
	case geometry.RoundRect:
		c.DrawRoundedRectangle(s.Rect.X, s.Rect.Y, s.Rect.W, s.Rect.H, s.Radius())
		return true
	case geometry.Polygon:
		for ring := range s.Rings() {
			drawRing(c, ring)
		}
		return true
	case geometry.LineString:
		for i, p := range s.Points {
			if i == 0 {
				c.MoveTo(p.X, p.Y)
			} else {
				c.LineTo(p.X, p.Y)
			}
		}
	}
	return false
}

func drawRing(c *gg.Context, ring []geometry.Vec2) {
	if len(ring) == 0 {
		return
	}
	c.NewSubPath()
	c.MoveTo(ring[0].X, ring[0].Y)
	for _, p := range ring[1:] {
		c.LineTo(p.X, p.Y)
	}
	c.ClosePath()
}
