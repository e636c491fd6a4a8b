package raster

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"

	"github.com/vovakirdan/blockbreak/internal/core"
)

// HalfBlock is the upper half block. Its foreground paints the top pixel of
// a cell and its background the bottom pixel.
const HalfBlock = '▀'

// Blitter scales a surface image onto a terminal screen, two pixels per cell.
// The surface keeps its aspect ratio and is centered; the margin is filled
// with the background color. Buffers are reused across frames.
type Blitter struct {
	Background color.RGBA

	buf *image.RGBA
}

// NewBlitter creates a blitter with the given letterbox color.
func NewBlitter(bg color.RGBA) *Blitter {
	return &Blitter{Background: bg}
}

// Viewport returns the pixel rectangle the surface occupies in a screen of
// cols x rows cells (rows*2 pixels tall).
func Viewport(srcW, srcH, cols, rows int) image.Rectangle {
	r := core.Fit(float64(srcW), float64(srcH), float64(cols), float64(rows*2))
	x0 := int(math.Round(r.X))
	y0 := int(math.Round(r.Y))
	return image.Rect(x0, y0, x0+int(math.Round(r.W)), y0+int(math.Round(r.H)))
}

// Blit draws src onto dst.
func (b *Blitter) Blit(src image.Image, dst *core.Screen) {
	cols, rows := dst.Width(), dst.Height()
	if cols == 0 || rows == 0 {
		return
	}

	pw, ph := cols, rows*2
	if b.buf == nil || b.buf.Bounds().Dx() != pw || b.buf.Bounds().Dy() != ph {
		b.buf = image.NewRGBA(image.Rect(0, 0, pw, ph))
	}
	draw.Draw(b.buf, b.buf.Bounds(), image.NewUniform(b.Background), image.Point{}, draw.Src)

	sb := src.Bounds()
	vp := Viewport(sb.Dx(), sb.Dy(), cols, rows)
	if !vp.Empty() {
		draw.ApproxBiLinear.Scale(b.buf, vp, src, sb, draw.Over, nil)
	}

	for y := range rows {
		for x := range cols {
			dst.SetCell(x, y, core.Cell{
				Rune: HalfBlock,
				FG:   b.buf.RGBAAt(x, y*2),
				BG:   b.buf.RGBAAt(x, y*2+1),
			})
		}
	}
}
