package catalog

import (
	"fmt"

	"github.com/OpenTraceLab/OpenTraceFP/pkg/fp"
)

// SOICConfig describes a small-outline surface-mount package with two
// pad rows. Numbering is counterclockwise: left column top to bottom,
// right column bottom to top.
type SOICConfig struct {
	Pitch     float64 // pad spacing within a column
	RowSpan   float64 // pad center to pad center across the body
	PadWidth  float64 // pad extent on the x axis, toward the body
	PadHeight float64 // pad extent along the column, under Pitch
	Silk      bool
}

// DefaultSOICConfig is a JEDEC narrow-body SOIC on a 50 mil pitch.
func DefaultSOICConfig() SOICConfig {
	return SOICConfig{
		Pitch:     50,
		RowSpan:   5.4 * fp.MM,
		PadWidth:  1.55 * fp.MM,
		PadHeight: 0.6 * fp.MM,
		Silk:      true,
	}
}

func (c SOICConfig) Validate() error {
	if c.Pitch <= 0 {
		return fmt.Errorf("catalog: soic pitch must be positive, got %v", c.Pitch)
	}
	if c.PadWidth <= 0 || c.PadHeight <= 0 {
		return fmt.Errorf("catalog: soic pad size must be positive, got %v x %v", c.PadWidth, c.PadHeight)
	}
	if c.Pitch <= c.PadHeight {
		return fmt.Errorf("catalog: soic pitch %v does not clear the pad height %v", c.Pitch, c.PadHeight)
	}
	if c.RowSpan <= c.PadWidth {
		return fmt.Errorf("catalog: soic row span %v does not clear the pad width %v", c.RowSpan, c.PadWidth)
	}
	return nil
}

// SOIC fills f with a small-outline package centered on the origin.
func SOIC(f *fp.Footprint, pins int, cfg SOICConfig) error {
	if err := evenPins(pins); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	rows := pins / 2
	colHalf := float64(rows-1) * cfg.Pitch / 2
	rowHalf := cfg.RowSpan / 2

	padOpts := []fp.Option{fp.Width(cfg.PadWidth), fp.Height(cfg.PadHeight)}

	left, err := f.AddPads(rows, append([]fp.Option{
		fp.X(-rowHalf), fp.Y(-colHalf), fp.DY(cfg.Pitch),
	}, padOpts...)...)
	if err != nil {
		return err
	}
	if _, err := f.AddPads(rows, append([]fp.Option{
		fp.X(rowHalf), fp.Y(colHalf), fp.DY(-cfg.Pitch),
	}, padOpts...)...); err != nil {
		return err
	}
	if err := f.Mark(left[0]); err != nil {
		return err
	}

	if cfg.Silk {
		inset := rowHalf - cfg.PadWidth/2 - fp.DefaultSilkThickness
		top := colHalf + cfg.Pitch/2
		if err := outline(f, -inset, -top, inset, top); err != nil {
			return err
		}
		return pin1Tick(f, -rowHalf-cfg.PadWidth, left[0].Y(), cfg.Pitch/2)
	}
	return nil
}

// WriteSOIC generates SOIC<pins>.fp in dir.
func WriteSOIC(dir string, pins int, cfg SOICConfig) error {
	return fp.GenerateIn(dir, fmt.Sprintf("SOIC%d", pins), func(f *fp.Footprint) error {
		f.Description = fmt.Sprintf("%d-pin small-outline package, %v mil pitch", pins, cfg.Pitch)
		return SOIC(f, pins, cfg)
	})
}
