// Package catalog generates footprints for common package families on
// top of the fp builder: through-hole DIPs, pin headers and D-sub
// connectors, and surface-mount SOIC and QFP packages. Each family has
// a config struct with validated defaults and a generator that fills an
// existing footprint, plus a Write helper that produces the .fp file in
// one call.
//
// All dimensions are in mils unless a field says otherwise.
package catalog

import (
	"fmt"

	"github.com/OpenTraceLab/OpenTraceFP/pkg/fp"
)

// outline draws a closed silkscreen rectangle.
func outline(f *fp.Footprint, left, top, right, bottom float64) error {
	_, err := f.AddPolyline([]fp.Point{
		{X: left, Y: top},
		{X: right, Y: top},
		{X: right, Y: bottom},
		{X: left, Y: bottom},
	}, fp.Closed())
	return err
}

// pin1Tick draws a short silkscreen tick next to pad 1 of a
// surface-mount package.
func pin1Tick(f *fp.Footprint, x, y, length float64) error {
	_, err := f.AddLine(x, y, x-length, y)
	return err
}

func evenPins(pins int) error {
	if pins < 2 || pins%2 != 0 {
		return fmt.Errorf("catalog: pin count must be even and at least 2, got %d", pins)
	}
	return nil
}
