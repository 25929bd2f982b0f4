package fp

import "fmt"

// Shape is implemented by every feature a footprint can contain.
type Shape interface {
	// pcbFormat renders the shape as one or more lines in pcb element
	// format, translated by (tx, ty). Coordinates inside a pcb element
	// are relative to its mark, so shapes are laid out in absolute
	// footprint coordinates and translated at serialization time.
	pcbFormat(tx, ty float64) string
}

// Point is a 2D coordinate in mils, used for polyline vertices.
type Point struct {
	X, Y float64
}

// flagBits renders a pcb flag word. The alternate hex form drops its
// prefix when no bits are set, as C's %#x (and pcb itself) does.
func flagBits(v int) string {
	if v == 0 {
		return "0"
	}
	return fmt.Sprintf("%#x", v)
}
