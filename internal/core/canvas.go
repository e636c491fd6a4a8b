package core

import "image/color"

// PaintKind selects how a Paint fills a shape.
type PaintKind int

const (
	PaintSolid PaintKind = iota
	PaintLinear
	PaintRadial
)

// Stop is a color stop of a gradient. Offset is in [0, 1].
type Stop struct {
	Offset float64
	Color  color.Color
}

// Paint describes a fill: a flat color or a gradient in surface coordinates.
// Paints are plain values so game code can build them without a canvas.
type Paint struct {
	Kind PaintKind

	Color color.Color // PaintSolid

	// Linear: (X0,Y0) -> (X1,Y1). Radial: center (X0,Y0), radii R0 -> R1.
	X0, Y0, X1, Y1 float64
	R0, R1         float64

	Stops []Stop
}

// Solid returns a flat color paint.
func Solid(c color.Color) Paint {
	return Paint{Kind: PaintSolid, Color: c}
}

// LinearGradient returns a gradient running from (x0, y0) to (x1, y1).
func LinearGradient(x0, y0, x1, y1 float64, stops ...Stop) Paint {
	return Paint{Kind: PaintLinear, X0: x0, Y0: y0, X1: x1, Y1: y1, Stops: stops}
}

// RadialGradient returns a gradient between two concentric circles
// centered at (cx, cy) with radii r0 and r1.
func RadialGradient(cx, cy, r0, r1 float64, stops ...Stop) Paint {
	return Paint{Kind: PaintRadial, X0: cx, Y0: cy, X1: cx, Y1: cy, R0: r0, R1: r1, Stops: stops}
}

// Canvas is the drawing surface games render into.
// Implementations must accept any finite coordinates without failing.
type Canvas interface {
	// Size returns the surface dimensions in surface units.
	Size() (w, h int)

	// Clear resets the whole surface to transparent.
	Clear()

	// FillRoundedRect fills a rectangle with rounded corners.
	// A nil stroke draws no outline.
	FillRoundedRect(x, y, w, h, radius float64, fill Paint, stroke color.Color)

	// FillCircle fills a circle centered at (cx, cy).
	FillCircle(cx, cy, r float64, fill Paint)
}
