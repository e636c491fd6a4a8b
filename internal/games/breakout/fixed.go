package breakout

import "math"

// Fixed-point scale factor: 1 surface unit = 1000.
// Keeps the simulation integer-exact and deterministic across platforms.
const Scale = 1000

// Fixed represents a fixed-point number (scaled by Scale).
type Fixed int64

// ToFixed converts a whole surface unit value to fixed-point.
func ToFixed(units int) Fixed {
	return Fixed(units) * Scale
}

// FromFloat converts a surface unit value to fixed-point, rounding to the nearest step.
func FromFloat(units float64) Fixed {
	return Fixed(math.Round(units * Scale))
}

// Float returns the value in surface units.
func (f Fixed) Float() float64 {
	return float64(f) / Scale
}

// Abs returns absolute value.
func (f Fixed) Abs() Fixed {
	if f < 0 {
		return -f
	}
	return f
}

// Sign returns -1, 0, or 1.
func (f Fixed) Sign() int {
	if f < 0 {
		return -1
	}
	if f > 0 {
		return 1
	}
	return 0
}
