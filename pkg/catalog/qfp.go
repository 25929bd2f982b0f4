package catalog

import (
	"fmt"

	"github.com/OpenTraceLab/OpenTraceFP/pkg/fp"
)

// QFPConfig describes a quad flat package centered on the origin.
// Numbering is counterclockwise from the top of the left side: left
// top to bottom, bottom left to right, right bottom to top, top right
// to left.
type QFPConfig struct {
	Pitch    float64 // pad spacing within a side
	Span     float64 // pad center to pad center across the body
	PadLong  float64 // pad dimension pointing away from the body
	PadShort float64 // pad dimension along the side
	Silk     bool
}

// DefaultQFPConfig is a 0.8 mm pitch LQFP.
func DefaultQFPConfig() QFPConfig {
	return QFPConfig{
		Pitch:    0.8 * fp.MM,
		Span:     13.9 * fp.MM,
		PadLong:  1.5 * fp.MM,
		PadShort: 0.45 * fp.MM,
		Silk:     true,
	}
}

func (c QFPConfig) Validate() error {
	if c.Pitch <= 0 {
		return fmt.Errorf("catalog: qfp pitch must be positive, got %v", c.Pitch)
	}
	if c.PadLong <= 0 || c.PadShort <= 0 {
		return fmt.Errorf("catalog: qfp pad size must be positive, got %v x %v", c.PadLong, c.PadShort)
	}
	if c.Span <= c.PadLong {
		return fmt.Errorf("catalog: qfp span %v does not clear the pad length %v", c.Span, c.PadLong)
	}
	return nil
}

// QFP fills f with a quad flat package. The pin count must be a
// multiple of 4.
func QFP(f *fp.Footprint, pins int, cfg QFPConfig) error {
	if pins < 4 || pins%4 != 0 {
		return fmt.Errorf("catalog: qfp pin count must be a multiple of 4, got %d", pins)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	perSide := pins / 4
	offset := float64(perSide-1) * cfg.Pitch / 2
	half := cfg.Span / 2

	// pads on the left and right sides lie on their sides
	flat := []fp.Option{fp.Width(cfg.PadLong), fp.Height(cfg.PadShort)}
	tall := []fp.Option{fp.Width(cfg.PadShort), fp.Height(cfg.PadLong)}

	left, err := f.AddPads(perSide, append([]fp.Option{
		fp.X(-half), fp.Y(-offset), fp.DY(cfg.Pitch),
	}, flat...)...)
	if err != nil {
		return err
	}
	if _, err := f.AddPads(perSide, append([]fp.Option{
		fp.X(-offset), fp.Y(half), fp.DX(cfg.Pitch),
	}, tall...)...); err != nil {
		return err
	}
	if _, err := f.AddPads(perSide, append([]fp.Option{
		fp.X(half), fp.Y(offset), fp.DY(-cfg.Pitch),
	}, flat...)...); err != nil {
		return err
	}
	if _, err := f.AddPads(perSide, append([]fp.Option{
		fp.X(offset), fp.Y(-half), fp.DX(-cfg.Pitch),
	}, tall...)...); err != nil {
		return err
	}
	if err := f.Mark(left[0]); err != nil {
		return err
	}

	if cfg.Silk {
		inset := half - cfg.PadLong/2 - fp.DefaultSilkThickness
		if err := outline(f, -inset, -inset, inset, inset); err != nil {
			return err
		}
		return pin1Tick(f, -half-cfg.PadLong, left[0].Y(), cfg.Pitch)
	}
	return nil
}

// WriteQFP generates QFP<pins>.fp in dir.
func WriteQFP(dir string, pins int, cfg QFPConfig) error {
	return fp.GenerateIn(dir, fmt.Sprintf("QFP%d", pins), func(f *fp.Footprint) error {
		f.Description = fmt.Sprintf("%d-pin quad flat package", pins)
		return QFP(f, pins, cfg)
	})
}
