package fp

import "math"

// MM converts millimeter values into mils (1/1000 inch), the base
// coordinate unit of this package. Usage: 2.54 * fp.MM.
const MM = 1.0 / 0.0254

// FromMM returns v millimeters expressed in mils.
func FromMM(v float64) float64 {
	return v * MM
}

// Between performs linear interpolation between two endpoints:
// t=0 returns a, t=1 returns b.
func Between(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Mid returns the value halfway between a and b.
func Mid(a, b float64) float64 {
	return Between(a, b, 0.5)
}

// milToUnit converts mils to pcb's native 1/100-mil unit, rounded to
// the nearest integer.
func milToUnit(mil float64) int {
	return int(math.Round(mil * 100))
}
