// Package raster implements core.Canvas on top of gg and converts the
// resulting image into terminal cells.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"

	"github.com/vovakirdan/blockbreak/internal/core"
)

// Canvas is an RGBA drawing surface. It is not safe for concurrent use;
// each frame driver owns one.
type Canvas struct {
	img *image.RGBA
	dc  *gg.Context
}

// NewCanvas creates a transparent canvas of w x h pixels.
func NewCanvas(w, h int) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, max(w, 1), max(h, 1)))
	return &Canvas{
		img: img,
		dc:  gg.NewContextForRGBA(img),
	}
}

// Size returns the canvas dimensions in pixels.
func (c *Canvas) Size() (w, h int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

// Clear resets every pixel to transparent.
func (c *Canvas) Clear() {
	c.dc.ClearPath()
	c.dc.SetColor(color.Transparent)
	c.dc.Clear()
}

// FillRoundedRect fills a rounded rectangle and optionally strokes it with a
// one pixel outline.
func (c *Canvas) FillRoundedRect(x, y, w, h, radius float64, fill core.Paint, stroke color.Color) {
	roundedRect(c.dc, x, y, w, h, radius)
	c.dc.SetFillStyle(pattern(fill))

	if stroke == nil {
		c.dc.Fill()
		return
	}
	c.dc.FillPreserve()
	c.dc.SetStrokeStyle(gg.NewSolidPattern(stroke))
	c.dc.SetLineWidth(1)
	c.dc.Stroke()
}

// FillCircle fills a circle centered at (cx, cy).
func (c *Canvas) FillCircle(cx, cy, r float64, fill core.Paint) {
	if r <= 0 {
		return
	}
	c.dc.DrawCircle(cx, cy, r)
	c.dc.SetFillStyle(pattern(fill))
	c.dc.Fill()
}

// Image returns the backing image. It is reused between frames.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// SavePNG writes the current frame to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	if err := c.dc.SavePNG(path); err != nil {
		return fmt.Errorf("raster: save %s: %w", path, err)
	}
	return nil
}

// EncodePNG writes the current frame as PNG to w.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return c.dc.EncodePNG(w)
}

// roundedRect traces a rectangle whose corners are quadratic curves with the
// corner point as control point. The radius is capped at half the shorter side.
func roundedRect(dc *gg.Context, x, y, w, h, radius float64) {
	r := core.Clamp(radius, 0, min(w, h)/2)
	if r < 0 {
		r = 0
	}

	dc.NewSubPath()
	dc.MoveTo(x+r, y)
	dc.LineTo(x+w-r, y)
	dc.QuadraticTo(x+w, y, x+w, y+r)
	dc.LineTo(x+w, y+h-r)
	dc.QuadraticTo(x+w, y+h, x+w-r, y+h)
	dc.LineTo(x+r, y+h)
	dc.QuadraticTo(x, y+h, x, y+h-r)
	dc.LineTo(x, y+r)
	dc.QuadraticTo(x, y, x+r, y)
	dc.ClosePath()
}

// pattern converts a paint description into a gg pattern.
func pattern(p core.Paint) gg.Pattern {
	switch p.Kind {
	case core.PaintLinear:
		g := gg.NewLinearGradient(p.X0, p.Y0, p.X1, p.Y1)
		addStops(g, p.Stops)
		return g
	case core.PaintRadial:
		g := gg.NewRadialGradient(p.X0, p.Y0, p.R0, p.X1, p.Y1, p.R1)
		addStops(g, p.Stops)
		return g
	default:
		if p.Color == nil {
			return gg.NewSolidPattern(color.Transparent)
		}
		return gg.NewSolidPattern(p.Color)
	}
}

func addStops(g gg.Gradient, stops []core.Stop) {
	for _, s := range stops {
		if s.Color == nil {
			continue
		}
		g.AddColorStop(s.Offset, s.Color)
	}
}
