package fp

import "fmt"

// DefaultPadClearance is the copper clearance width, in mils, given to
// pads that do not specify one.
const DefaultPadClearance = 1

// Pad is a surface-mount pad. Its geometry is stored fully resolved:
// left edge, top edge, width and height in mils, fixed at creation
// time.
type Pad struct {
	left, top     float64
	width, height float64
	number, name  string
	round         bool
	clearance     float64
}

// newPad resolves pad geometry from collected options. Each axis needs
// two constraints, or a base to inherit the remainder from.
func newPad(p *params) (*Pad, error) {
	pad := &Pad{clearance: DefaultPadClearance}
	inherited := false
	if p.baseSet {
		bp, ok := p.base.(*Pad)
		if !ok || bp == nil {
			return nil, fmt.Errorf("fp: pad base must be an existing pad")
		}
		*pad = *bp
		inherited = true
	}

	left, width, err := resolveAxis("x",
		axisSpec{low: p.left, high: p.right, center: p.x, extent: p.width},
		inherited, pad.left, pad.width)
	if err != nil {
		return nil, err
	}
	top, height, err := resolveAxis("y",
		axisSpec{low: p.top, high: p.bottom, center: p.y, extent: p.height},
		inherited, pad.top, pad.height)
	if err != nil {
		return nil, err
	}
	pad.left, pad.width = left, width
	pad.top, pad.height = top, height

	if p.number != nil {
		pad.number = *p.number
	}
	if p.name != nil {
		pad.name = *p.name
	}
	if p.round != nil {
		pad.round = *p.round
	}
	if p.clearance != nil {
		pad.clearance = *p.clearance
	}
	return pad, nil
}

// Left returns the x coordinate of the pad's left edge.
func (p *Pad) Left() float64 { return p.left }

// Right returns the x coordinate of the pad's right edge.
func (p *Pad) Right() float64 { return p.left + p.width }

// Top returns the y coordinate of the pad's top edge.
func (p *Pad) Top() float64 { return p.top }

// Bottom returns the y coordinate of the pad's bottom edge.
func (p *Pad) Bottom() float64 { return p.top + p.height }

// X returns the coordinate of the pad's center on the x axis.
func (p *Pad) X() float64 { return Mid(p.Left(), p.Right()) }

// Y returns the coordinate of the pad's center on the y axis.
func (p *Pad) Y() float64 { return Mid(p.Top(), p.Bottom()) }

// Width returns the pad's extent on the x axis.
func (p *Pad) Width() float64 { return p.width }

// Height returns the pad's extent on the y axis.
func (p *Pad) Height() float64 { return p.height }

// Number returns the pad's pin number.
func (p *Pad) Number() string { return p.number }

// Name returns the pad's pin name.
func (p *Pad) Name() string { return p.name }

// Round reports whether the pad's ends are rounded.
func (p *Pad) Round() bool { return p.round }

// Clearance returns the pad's copper clearance width.
func (p *Pad) Clearance() float64 { return p.clearance }

// SetLeft moves the pad so its left edge sits at v, keeping its width.
func (p *Pad) SetLeft(v float64) { p.left = v }

// SetRight moves the pad so its right edge sits at v, keeping its width.
func (p *Pad) SetRight(v float64) { p.left = v - p.width }

// SetX recenters the pad at v on the x axis.
func (p *Pad) SetX(v float64) { p.left = v - p.width/2 }

// SetWidth resizes the pad, keeping its left edge.
func (p *Pad) SetWidth(v float64) { p.width = v }

// SetTop moves the pad so its top edge sits at v, keeping its height.
func (p *Pad) SetTop(v float64) { p.top = v }

// SetBottom moves the pad so its bottom edge sits at v, keeping its height.
func (p *Pad) SetBottom(v float64) { p.top = v - p.height }

// SetY recenters the pad at v on the y axis.
func (p *Pad) SetY(v float64) { p.top = v - p.height/2 }

// SetHeight resizes the pad, keeping its top edge.
func (p *Pad) SetHeight(v float64) { p.height = v }

// SetRound switches the pad between rounded and square ends.
func (p *Pad) SetRound(round bool) { p.round = round }

// pcbFormat renders the pad as a pcb Pad statement. pcb represents
// pads as line segments: the segment runs along the pad's longer axis
// and the segment thickness is the shorter dimension.
func (p *Pad) pcbFormat(tx, ty float64) string {
	var x1, y1, x2, y2, thickness float64
	if p.width > p.height {
		thickness = p.height
		x1 = p.Left() + thickness/2
		y1 = p.Y()
		x2 = p.Right() - thickness/2
		y2 = p.Y()
	} else {
		thickness = p.width
		x1 = p.X()
		y1 = p.Top() + thickness/2
		x2 = p.X()
		y2 = p.Bottom() - thickness/2
	}
	mask := thickness + p.clearance
	flags := 0x100
	if p.round {
		flags = 0
	}
	return fmt.Sprintf("Pad[%d %d %d %d %d %d %d %q %q %s]",
		milToUnit(x1+tx), milToUnit(y1+ty),
		milToUnit(x2+tx), milToUnit(y2+ty),
		milToUnit(thickness), milToUnit(p.clearance), milToUnit(mask),
		p.name, p.number, flagBits(flags))
}
