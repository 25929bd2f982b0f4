package catalog

import (
	"fmt"

	"github.com/OpenTraceLab/OpenTraceFP/pkg/fp"
)

// DIPConfig describes a dual in-line package. The two pin columns run
// top to bottom on the left and bottom to top on the right, the usual
// counterclockwise DIP numbering.
type DIPConfig struct {
	Pitch    float64 // pin spacing within a column
	RowSpan  float64 // distance between the two columns
	Hole     float64 // drill diameter
	Diameter float64 // copper annulus diameter
	Silk     bool    // draw the body outline with a pin-1 notch
}

// DefaultDIPConfig is a standard 300 mil wide, 100 mil pitch DIP.
func DefaultDIPConfig() DIPConfig {
	return DIPConfig{
		Pitch:    100,
		RowSpan:  300,
		Hole:     32,
		Diameter: 62,
		Silk:     true,
	}
}

func (c DIPConfig) Validate() error {
	if c.Pitch <= 0 {
		return fmt.Errorf("catalog: dip pitch must be positive, got %v", c.Pitch)
	}
	if c.RowSpan <= c.Diameter {
		return fmt.Errorf("catalog: dip row span %v does not clear the pin diameter %v", c.RowSpan, c.Diameter)
	}
	if c.Hole <= 0 || c.Diameter <= c.Hole {
		return fmt.Errorf("catalog: dip needs 0 < hole < diameter, got hole %v diameter %v", c.Hole, c.Diameter)
	}
	return nil
}

// DIP fills f with a dual in-line package. Pin 1 sits at the origin
// and is drawn square; the footprint mark is placed on it.
func DIP(f *fp.Footprint, pins int, cfg DIPConfig) error {
	if err := evenPins(pins); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	rows := pins / 2
	colHeight := float64(rows-1) * cfg.Pitch

	pinOpts := []fp.Option{fp.Hole(cfg.Hole), fp.Diameter(cfg.Diameter)}

	left, err := f.AddPins(rows, append([]fp.Option{
		fp.X(0), fp.Y(0), fp.DY(cfg.Pitch),
	}, pinOpts...)...)
	if err != nil {
		return err
	}
	if _, err := f.AddPins(rows, append([]fp.Option{
		fp.X(cfg.RowSpan), fp.Y(colHeight), fp.DY(-cfg.Pitch),
	}, pinOpts...)...); err != nil {
		return err
	}

	left[0].SetRound(false)
	if err := f.Mark(left[0]); err != nil {
		return err
	}

	if cfg.Silk {
		margin := cfg.Diameter/2 + fp.DefaultSilkThickness
		if err := outline(f, -margin, -margin, cfg.RowSpan+margin, colHeight+margin); err != nil {
			return err
		}
		// pin-1 notch at the top edge
		if _, err := f.AddArc(cfg.RowSpan/2, -margin,
			fp.Radius(cfg.Pitch/4), fp.StartAngle(180), fp.DeltaAngle(180)); err != nil {
			return err
		}
	}
	return nil
}

// WriteDIP generates DIP<pins>.fp in dir.
func WriteDIP(dir string, pins int, cfg DIPConfig) error {
	return fp.GenerateIn(dir, fmt.Sprintf("DIP%d", pins), func(f *fp.Footprint) error {
		f.Description = fmt.Sprintf("%d-pin dual in-line package, %v mil spacing", pins, cfg.RowSpan)
		return DIP(f, pins, cfg)
	})
}
