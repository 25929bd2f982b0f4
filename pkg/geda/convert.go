package geda

import (
	"fmt"

	"github.com/OpenTraceLab/OpenTraceFP/pkg/fp"
)

// ToFootprint rebuilds an fp.Footprint from a parsed file, undoing the
// wire encoding: centimil integers become mils, pad line segments
// become rectangles, and pin thickness and mask revert to copper
// diameter and mask offset. File coordinates are relative to the
// element mark; the rebuilt shapes carry absolute coordinates again.
func (f *File) ToFootprint() (*fp.Footprint, error) {
	el := f.Element
	out, err := fp.New(el.Name)
	if err != nil {
		return nil, err
	}
	out.Description = el.Description
	mx, my := centimil(el.MarkX), centimil(el.MarkY)
	out.SetMark(mx, my)
	out.TextX, out.TextY = centimil(el.TextX), centimil(el.TextY)
	out.TextDirection = el.TextDir
	out.TextScale = el.TextScale

	for i, s := range el.Shapes {
		if err := addShape(out, s, mx, my); err != nil {
			return nil, fmt.Errorf("geda: shape %d: %w", i, err)
		}
	}
	return out, nil
}

// centimil converts a file-native 1/100-mil integer to mils.
func centimil(v int) float64 {
	return float64(v) / 100
}

func addShape(out *fp.Footprint, s *Statement, mx, my float64) error {
	switch {
	case s.Pad != nil:
		return addPad(out, s.Pad, mx, my)
	case s.Pin != nil:
		return addPin(out, s.Pin, mx, my)
	case s.Line != nil:
		_, err := out.AddLine(
			centimil(s.Line.X1)+mx, centimil(s.Line.Y1)+my,
			centimil(s.Line.X2)+mx, centimil(s.Line.Y2)+my,
			fp.Thickness(centimil(s.Line.Thickness)))
		return err
	case s.Arc != nil:
		_, err := out.AddArc(centimil(s.Arc.X)+mx, centimil(s.Arc.Y)+my,
			fp.XRadius(centimil(s.Arc.XRadius)),
			fp.YRadius(centimil(s.Arc.YRadius)),
			fp.StartAngle(float64(s.Arc.StartAngle)),
			fp.DeltaAngle(float64(s.Arc.DeltaAngle)),
			fp.Thickness(centimil(s.Arc.Thickness)))
		return err
	}
	return fmt.Errorf("empty statement")
}

// addPad reverses the segment encoding: the segment runs along the
// pad's longer axis with the shorter dimension as its thickness. A
// square pad degenerates to a point segment and decodes through the
// vertical branch.
func addPad(out *fp.Footprint, p *PadStmt, mx, my float64) error {
	t := centimil(p.Thickness)
	x1, y1 := centimil(p.X1)+mx, centimil(p.Y1)+my
	x2, y2 := centimil(p.X2)+mx, centimil(p.Y2)+my

	var left, top, width, height float64
	if y1 == y2 && x1 != x2 {
		left = x1 - t/2
		width = (x2 + t/2) - left
		top = y1 - t/2
		height = t
	} else {
		top = y1 - t/2
		height = (y2 + t/2) - top
		left = x1 - t/2
		width = t
	}

	opts := []fp.Option{
		fp.Left(left), fp.Width(width),
		fp.Top(top), fp.Height(height),
		fp.NumberStr(p.Number), fp.Name(p.Name),
		fp.Clearance(centimil(p.Clearance)),
	}
	if p.Flags.Square() {
		opts = append(opts, fp.Square())
	} else {
		opts = append(opts, fp.Round())
	}
	_, err := out.AddPad(opts...)
	return err
}

func addPin(out *fp.Footprint, p *PinStmt, mx, my float64) error {
	opts := []fp.Option{
		fp.X(centimil(p.X) + mx), fp.Y(centimil(p.Y) + my),
		fp.Hole(centimil(p.Drill)),
		fp.Diameter(centimil(p.Thickness)),
		fp.NumberStr(p.Number), fp.Name(p.Name),
		fp.Clearance(centimil(p.Clearance)),
		fp.MaskOffset(centimil(p.Mask - p.Thickness)),
	}
	if p.Flags.Square() {
		opts = append(opts, fp.Square())
	} else {
		opts = append(opts, fp.Round())
	}
	_, err := out.AddPin(opts...)
	return err
}
