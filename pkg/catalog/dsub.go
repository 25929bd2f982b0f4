package catalog

import (
	"fmt"

	"github.com/OpenTraceLab/OpenTraceFP/pkg/fp"
)

// DSubConfig describes the staggered two-row pin field of a D-sub
// connector. Pins run left to right with the y coordinate alternating
// between the two rows, which is the order the contacts are numbered
// in the shell.
type DSubConfig struct {
	PitchX    float64 // horizontal advance per pin
	RowOffset float64 // vertical distance between the rows
	Hole      float64
	Diameter  float64
}

// DefaultDSubConfig matches the standard density D-sub contact field.
func DefaultDSubConfig() DSubConfig {
	return DSubConfig{
		PitchX:    54,
		RowOffset: 112,
		Hole:      30,
		Diameter:  66,
	}
}

func (c DSubConfig) Validate() error {
	if c.PitchX <= 0 {
		return fmt.Errorf("catalog: d-sub pitch must be positive, got %v", c.PitchX)
	}
	if c.RowOffset <= 0 {
		return fmt.Errorf("catalog: d-sub row offset must be positive, got %v", c.RowOffset)
	}
	if c.Hole <= 0 || c.Diameter <= c.Hole {
		return fmt.Errorf("catalog: d-sub needs 0 < hole < diameter, got hole %v diameter %v", c.Hole, c.Diameter)
	}
	return nil
}

// DSub fills f with a staggered D-sub pin field. Pin 1 sits at the
// origin in the upper row, pin 2 below and to the right, and so on.
func DSub(f *fp.Footprint, pins int, cfg DSubConfig) error {
	if pins < 2 {
		return fmt.Errorf("catalog: d-sub needs at least 2 pins, got %d", pins)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	placed, err := f.AddPins(pins,
		fp.X(0), fp.Y(0),
		fp.DX(cfg.PitchX), fp.DY(cfg.RowOffset, -cfg.RowOffset),
		fp.Hole(cfg.Hole), fp.Diameter(cfg.Diameter))
	if err != nil {
		return err
	}
	placed[0].SetRound(false)
	return f.Mark(placed[0])
}

// WriteDSub generates DSUB<pins>.fp in dir.
func WriteDSub(dir string, pins int, cfg DSubConfig) error {
	return fp.GenerateIn(dir, fmt.Sprintf("DSUB%d", pins), func(f *fp.Footprint) error {
		f.Description = fmt.Sprintf("%d-pin D-subminiature contact field", pins)
		return DSub(f, pins, cfg)
	})
}
