package fp

import (
	"fmt"
	"strconv"
)

// shapeKind identifies which Add* calls an option is valid for.
type shapeKind uint8

const (
	kindPad shapeKind = 1 << iota
	kindPin
	kindLine
	kindPolyline
	kindArc
	// kindArray marks options only meaningful to AddPads/AddPins.
	kindArray
)

// kindLabel names the target of an Add* call for error messages.
func kindLabel(kind shapeKind) string {
	switch kind {
	case kindPad:
		return "pads"
	case kindPin:
		return "pins"
	case kindLine:
		return "lines"
	case kindPolyline:
		return "polylines"
	case kindArc:
		return "arcs"
	case kindPad | kindArray:
		return "pad arrays"
	case kindPin | kindArray:
		return "pin arrays"
	}
	return "shapes"
}

// Option configures a single shape at creation time. Each option
// applies to a documented subset of shape kinds; passing an option to
// a call it does not apply to is an immediate error.
type Option struct {
	name  string
	kinds shapeKind
	apply func(*params)
}

// params collects option values before resolution.
type params struct {
	x, y             *float64
	left, right      *float64
	top, bottom      *float64
	width, height    *float64
	hole, diameter   *float64
	number           *string
	name             *string
	round            *bool
	clearance        *float64
	maskOffset       *float64
	thickness        *float64
	closed           bool
	startAngle       *float64
	deltaAngle       *float64
	xRadius, yRadius *float64
	base             Shape
	baseSet          bool
	dx, dy           []float64
}

func f64(v float64) *float64 { return &v }

func opt(name string, kinds shapeKind, apply func(*params)) Option {
	return Option{name: name, kinds: kinds, apply: apply}
}

// applyOptions folds opts into a fresh params, rejecting options that
// do not apply to the given kind.
func applyOptions(kind shapeKind, opts []Option) (*params, error) {
	p := &params{}
	for _, o := range opts {
		if o.kinds&kind == 0 {
			return nil, fmt.Errorf("fp: option %s does not apply to %s", o.name, kindLabel(kind))
		}
		o.apply(p)
	}
	return p, nil
}

// X sets the shape's center coordinate on the x axis.
func X(v float64) Option {
	return opt("X", kindPad|kindPin, func(p *params) { p.x = f64(v) })
}

// Y sets the shape's center coordinate on the y axis.
func Y(v float64) Option {
	return opt("Y", kindPad|kindPin, func(p *params) { p.y = f64(v) })
}

// Left sets the coordinate of a pad's left edge.
func Left(v float64) Option {
	return opt("Left", kindPad, func(p *params) { p.left = f64(v) })
}

// Right sets the coordinate of a pad's right edge.
func Right(v float64) Option {
	return opt("Right", kindPad, func(p *params) { p.right = f64(v) })
}

// Top sets the coordinate of a pad's top edge.
func Top(v float64) Option {
	return opt("Top", kindPad, func(p *params) { p.top = f64(v) })
}

// Bottom sets the coordinate of a pad's bottom edge.
func Bottom(v float64) Option {
	return opt("Bottom", kindPad, func(p *params) { p.bottom = f64(v) })
}

// Width sets a pad's extent on the x axis.
func Width(v float64) Option {
	return opt("Width", kindPad, func(p *params) { p.width = f64(v) })
}

// Height sets a pad's extent on the y axis.
func Height(v float64) Option {
	return opt("Height", kindPad, func(p *params) { p.height = f64(v) })
}

// Hole sets a pin's drill diameter.
func Hole(v float64) Option {
	return opt("Hole", kindPin, func(p *params) { p.hole = f64(v) })
}

// Diameter sets the outer diameter of a pin's copper annulus, or the
// diameter of an arc.
func Diameter(v float64) Option {
	return opt("Diameter", kindPin|kindArc, func(p *params) { p.diameter = f64(v) })
}

// Number assigns a numeric pin/pad number. Without it (and without a
// base) the footprint's running counter is used.
func Number(n int) Option {
	return opt("Number", kindPad|kindPin, func(p *params) {
		s := strconv.Itoa(n)
		p.number = &s
	})
}

// NumberStr assigns an arbitrary pin/pad number string. Mounting holes
// conventionally use the empty string.
func NumberStr(s string) Option {
	return opt("NumberStr", kindPad|kindPin, func(p *params) { p.number = &s })
}

// Name assigns a pin/pad name.
func Name(s string) Option {
	return opt("Name", kindPad|kindPin, func(p *params) { p.name = &s })
}

// Round gives a pad rounded ends, or a pin a round copper annulus.
// Pins are round by default; pads are square.
func Round() Option {
	t := true
	return opt("Round", kindPad|kindPin, func(p *params) { p.round = &t })
}

// Square gives a pad square ends, or a pin a square copper annulus.
func Square() Option {
	f := false
	return opt("Square", kindPad|kindPin, func(p *params) { p.round = &f })
}

// Clearance overrides the default copper clearance width.
func Clearance(v float64) Option {
	return opt("Clearance", kindPad|kindPin, func(p *params) { p.clearance = f64(v) })
}

// MaskOffset overrides a pin's default solder mask offset from the
// outer edge of the annular ring.
func MaskOffset(v float64) Option {
	return opt("MaskOffset", kindPin, func(p *params) { p.maskOffset = f64(v) })
}

// Base names a previously created shape to inherit unset values from.
// The inherited values are copied once, at creation time; mutating the
// base afterwards does not affect the new shape.
func Base(s Shape) Option {
	return opt("Base", kindPad|kindPin, func(p *params) {
		p.base = s
		p.baseSet = true
	})
}

// Thickness overrides the default silkscreen line thickness.
func Thickness(v float64) Option {
	return opt("Thickness", kindLine|kindPolyline|kindArc, func(p *params) { p.thickness = f64(v) })
}

// Closed adds a segment connecting a polyline's last point back to its
// first.
func Closed() Option {
	return opt("Closed", kindPolyline, func(p *params) { p.closed = true })
}

// StartAngle sets an arc's start angle in degrees, measured
// counterclockwise from the negative x axis.
func StartAngle(v float64) Option {
	return opt("StartAngle", kindArc, func(p *params) { p.startAngle = f64(v) })
}

// DeltaAngle sets an arc's sweep in degrees; positive values rotate
// counterclockwise. The default sweep is a full circle.
func DeltaAngle(v float64) Option {
	return opt("DeltaAngle", kindArc, func(p *params) { p.deltaAngle = f64(v) })
}

// Radius sets an arc's radius on both axes.
func Radius(v float64) Option {
	return opt("Radius", kindArc, func(p *params) {
		p.xRadius = f64(v)
		p.yRadius = f64(v)
	})
}

// XRadius sets an arc's radius on the x axis.
func XRadius(v float64) Option {
	return opt("XRadius", kindArc, func(p *params) { p.xRadius = f64(v) })
}

// YRadius sets an arc's radius on the y axis.
func YRadius(v float64) Option {
	return opt("YRadius", kindArc, func(p *params) { p.yRadius = f64(v) })
}

// DX sets the x step taken after placing each shape of an array. With
// more than one value, the step after shape i is steps[i%len(steps)],
// so two values produce staggered columns.
func DX(steps ...float64) Option {
	return opt("DX", kindArray, func(p *params) { p.dx = steps })
}

// DY sets the y step taken after placing each shape of an array. With
// more than one value, the step after shape i is steps[i%len(steps)],
// so two values produce staggered rows.
func DY(steps ...float64) Option {
	return opt("DY", kindArray, func(p *params) { p.dy = steps })
}
