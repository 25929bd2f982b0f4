package fp

import "fmt"

// axisSpec carries the explicit constraints given for one axis of a
// pad: the low edge (left/top), high edge (right/bottom), center (x/y)
// and extent (width/height).
type axisSpec struct {
	low, high, center, extent *float64
}

func (s axisSpec) count() int {
	n := 0
	for _, v := range []*float64{s.low, s.high, s.center, s.extent} {
		if v != nil {
			n++
		}
	}
	return n
}

// resolveAxis turns the constraints for one pad axis into a resolved
// (low edge, extent) pair.
//
// Without a base, exactly two constraints must be given and the pair
// must be one of: low+extent, high+extent, center+extent, low+high.
// With a base the axis starts from the inherited values: no constraints
// keep them, a single position re-derives the low edge against the
// inherited extent (a single extent keeps the inherited low edge), and
// two constraints replace the axis entirely.
func resolveAxis(axis string, spec axisSpec, inherited bool, baseLow, baseExtent float64) (float64, float64, error) {
	switch n := spec.count(); {
	case n > 2:
		return 0, 0, fmt.Errorf("fp: %s axis over-constrained: give at most two of edge, center and extent", axis)

	case n == 2:
		switch {
		case spec.low != nil && spec.extent != nil:
			return *spec.low, *spec.extent, nil
		case spec.high != nil && spec.extent != nil:
			return *spec.high - *spec.extent, *spec.extent, nil
		case spec.center != nil && spec.extent != nil:
			return *spec.center - *spec.extent/2, *spec.extent, nil
		case spec.low != nil && spec.high != nil:
			return *spec.low, *spec.high - *spec.low, nil
		}
		return 0, 0, fmt.Errorf("fp: unsupported %s axis constraint pair: pair a center or single edge with an extent, or give both edges", axis)

	case n == 1 && inherited:
		switch {
		case spec.extent != nil:
			return baseLow, *spec.extent, nil
		case spec.low != nil:
			return *spec.low, baseExtent, nil
		case spec.high != nil:
			return *spec.high - baseExtent, baseExtent, nil
		}
		return *spec.center - baseExtent/2, baseExtent, nil

	case n == 0 && inherited:
		return baseLow, baseExtent, nil
	}

	return 0, 0, fmt.Errorf("fp: %s axis underconstrained: give two of edge, center and extent, or a base to inherit from", axis)
}
