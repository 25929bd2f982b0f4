package catalog

import (
	"fmt"

	"github.com/OpenTraceLab/OpenTraceFP/pkg/fp"
)

// HeaderConfig describes a rectangular pin header grid. Pins are
// numbered column-major: column 1 top to bottom, then column 2, as on
// shrouded box headers.
type HeaderConfig struct {
	Pitch    float64 // grid spacing, both axes
	Hole     float64 // drill diameter
	Diameter float64 // copper annulus diameter
	Silk     bool    // draw the outline
}

// DefaultHeaderConfig is a 100 mil header for 025 square posts.
func DefaultHeaderConfig() HeaderConfig {
	return HeaderConfig{
		Pitch:    100,
		Hole:     40,
		Diameter: 66,
		Silk:     true,
	}
}

func (c HeaderConfig) Validate() error {
	if c.Pitch <= 0 {
		return fmt.Errorf("catalog: header pitch must be positive, got %v", c.Pitch)
	}
	if c.Hole <= 0 || c.Diameter <= c.Hole {
		return fmt.Errorf("catalog: header needs 0 < hole < diameter, got hole %v diameter %v", c.Hole, c.Diameter)
	}
	return nil
}

// Header fills f with a rows x cols pin grid. Pin 1 sits at the origin
// and is drawn square.
func Header(f *fp.Footprint, rows, cols int, cfg HeaderConfig) error {
	if rows < 1 || cols < 1 {
		return fmt.Errorf("catalog: header needs at least one row and column, got %dx%d", rows, cols)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	for c := 0; c < cols; c++ {
		column, err := f.AddPins(rows,
			fp.X(float64(c)*cfg.Pitch), fp.Y(0), fp.DY(cfg.Pitch),
			fp.Hole(cfg.Hole), fp.Diameter(cfg.Diameter))
		if err != nil {
			return err
		}
		if c == 0 {
			column[0].SetRound(false)
			if err := f.Mark(column[0]); err != nil {
				return err
			}
		}
	}

	if cfg.Silk {
		margin := cfg.Pitch / 2
		return outline(f, -margin, -margin,
			float64(cols-1)*cfg.Pitch+margin, float64(rows-1)*cfg.Pitch+margin)
	}
	return nil
}

// WriteHeader generates HDR<rows>x<cols>.fp in dir.
func WriteHeader(dir string, rows, cols int, cfg HeaderConfig) error {
	return fp.GenerateIn(dir, fmt.Sprintf("HDR%dx%d", rows, cols), func(f *fp.Footprint) error {
		f.Description = fmt.Sprintf("%dx%d pin header, %v mil pitch", rows, cols, cfg.Pitch)
		return Header(f, rows, cols, cfg)
	})
}
