// Package fp generates footprint definitions for the gEDA pcb printed
// circuit board editor.
//
// A footprint collects pads, pins and silkscreen shapes added by
// sequential calls and serializes them to pcb's textual element format,
// conventionally written to a file named after the footprint with the
// .fp extension.
//
// # Overview
//
// The package provides:
//   - Footprint: an ordered accumulator of shapes with a running
//     pin/pad number counter
//   - Pad, Pin, SilkLine, SilkPolyline, SilkArc: the supported shapes
//   - Functional options (X, Y, Width, Base, ...) naming the geometry
//     of each shape at creation time
//   - Generate, GenerateIn, Library: scoped build-then-write helpers
//     that only produce a file when construction succeeds
//
// # Usage
//
// The most concise way to create a footprint and write it to disk is
// through Generate:
//
//	err := fp.Generate("KPT-1101NE", func(f *fp.Footprint) error {
//		p1, err := f.AddPad(fp.X(0), fp.Y(0),
//			fp.Width(1.1*fp.MM), fp.Height(1.6*fp.MM), fp.Number(1))
//		if err != nil {
//			return err
//		}
//		_, err = f.AddPad(fp.Base(p1), fp.Left(p1.Right()+6.2*fp.MM), fp.Number(2))
//		return err
//	})
//
// This defines a footprint for a surface-mount SPST tactile switch and
// writes it to KPT-1101NE.fp.
//
// The coordinate system uses mils (1/1000 inch); values in millimeters
// are specified by multiplying them by the constant MM.
//
// Pad and pin locations can be specified by centers, corners or edges,
// and relative to previously created shapes: the Base option names a
// pad or pin to inherit unset values from. Inheritance is a one-time
// copy of the base's already-resolved values. There is no solver or
// constraint system; if shape B is created relative to shape A and A is
// mutated afterwards, B keeps the values it was created with.
//
// Arrays of pins or pads, inline or staggered, come from AddPins and
// AddPads. This call creates the hole pattern for a 9-pin D-sub
// connector:
//
//	f.AddPins(9, fp.X(0), fp.Y(0), fp.DX(54), fp.DY(112, -112),
//		fp.Hole(30), fp.Diameter(66))
//
// # Limitations
//
// Not all pcb shape types and attributes are supported. The package
// emits only the Pad, Pin, ElementLine and ElementArc statements;
// polygons, attributes and the older parenthesized element syntax are
// not covered.
package fp
