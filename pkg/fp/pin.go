package fp

import "fmt"

const (
	// DefaultPinClearance is the copper clearance width, in mils, given
	// to pins that do not specify one.
	DefaultPinClearance = 2

	// DefaultPinMaskOffset is the solder mask offset, in mils, from the
	// outer edge of the annular ring.
	DefaultPinMaskOffset = 1
)

// Pin is a plated through-hole: a drill hole surrounded by a copper
// annulus. Its geometry is fixed at creation time.
type Pin struct {
	x, y       float64
	hole       float64
	diameter   float64
	number     string
	name       string
	round      bool
	clearance  float64
	maskOffset float64
}

// newPin resolves pin geometry from collected options. The center
// coordinates, drill diameter and copper diameter are required unless a
// base supplies them; explicit values override inherited ones.
func newPin(p *params) (*Pin, error) {
	pin := &Pin{
		round:      true,
		clearance:  DefaultPinClearance,
		maskOffset: DefaultPinMaskOffset,
	}
	inherited := false
	if p.baseSet {
		bp, ok := p.base.(*Pin)
		if !ok || bp == nil {
			return nil, fmt.Errorf("fp: pin base must be an existing pin")
		}
		*pin = *bp
		inherited = true
	}
	if !inherited {
		switch {
		case p.x == nil:
			return nil, fmt.Errorf("fp: pin x coordinate not given")
		case p.y == nil:
			return nil, fmt.Errorf("fp: pin y coordinate not given")
		case p.hole == nil:
			return nil, fmt.Errorf("fp: pin hole diameter not given")
		case p.diameter == nil:
			return nil, fmt.Errorf("fp: pin copper diameter not given")
		}
	}

	if p.x != nil {
		pin.x = *p.x
	}
	if p.y != nil {
		pin.y = *p.y
	}
	if p.hole != nil {
		pin.hole = *p.hole
	}
	if p.diameter != nil {
		pin.diameter = *p.diameter
	}
	if p.number != nil {
		pin.number = *p.number
	}
	if p.name != nil {
		pin.name = *p.name
	}
	if p.round != nil {
		pin.round = *p.round
	}
	if p.clearance != nil {
		pin.clearance = *p.clearance
	}
	if p.maskOffset != nil {
		pin.maskOffset = *p.maskOffset
	}
	return pin, nil
}

// X returns the x coordinate of the hole's center.
func (p *Pin) X() float64 { return p.x }

// Y returns the y coordinate of the hole's center.
func (p *Pin) Y() float64 { return p.y }

// Hole returns the drill diameter.
func (p *Pin) Hole() float64 { return p.hole }

// Diameter returns the outer diameter of the copper annulus.
func (p *Pin) Diameter() float64 { return p.diameter }

// Number returns the pin's number.
func (p *Pin) Number() string { return p.number }

// Name returns the pin's name.
func (p *Pin) Name() string { return p.name }

// Round reports whether the copper annulus is round.
func (p *Pin) Round() bool { return p.round }

// Clearance returns the pin's copper clearance width.
func (p *Pin) Clearance() float64 { return p.clearance }

// MaskOffset returns the solder mask offset from the annular ring.
func (p *Pin) MaskOffset() float64 { return p.maskOffset }

// Left returns the x coordinate of the annulus' outer left edge.
func (p *Pin) Left() float64 { return p.x - p.diameter/2 }

// Right returns the x coordinate of the annulus' outer right edge.
func (p *Pin) Right() float64 { return p.x + p.diameter/2 }

// Top returns the y coordinate of the annulus' outer top edge.
func (p *Pin) Top() float64 { return p.y - p.diameter/2 }

// Bottom returns the y coordinate of the annulus' outer bottom edge.
func (p *Pin) Bottom() float64 { return p.y + p.diameter/2 }

// SetX moves the hole center to v on the x axis.
func (p *Pin) SetX(v float64) { p.x = v }

// SetY moves the hole center to v on the y axis.
func (p *Pin) SetY(v float64) { p.y = v }

// SetLeft moves the pin so the annulus' left edge sits at v.
func (p *Pin) SetLeft(v float64) { p.x = v + p.diameter/2 }

// SetRight moves the pin so the annulus' right edge sits at v.
func (p *Pin) SetRight(v float64) { p.x = v - p.diameter/2 }

// SetTop moves the pin so the annulus' top edge sits at v.
func (p *Pin) SetTop(v float64) { p.y = v + p.diameter/2 }

// SetBottom moves the pin so the annulus' bottom edge sits at v.
func (p *Pin) SetBottom(v float64) { p.y = v - p.diameter/2 }

// SetHole resizes the drill hole.
func (p *Pin) SetHole(v float64) { p.hole = v }

// SetDiameter resizes the copper annulus.
func (p *Pin) SetDiameter(v float64) { p.diameter = v }

// SetRound switches the copper annulus between round and square.
func (p *Pin) SetRound(round bool) { p.round = round }

// pcbFormat renders the pin as a pcb Pin statement. The 0x1 flag bit
// marks the statement as a pin; 0x100 requests a square annulus.
func (p *Pin) pcbFormat(tx, ty float64) string {
	flags := 0x1
	if !p.round {
		flags |= 0x100
	}
	return fmt.Sprintf("Pin[%d %d %d %d %d %d %q %q %s]",
		milToUnit(p.x+tx), milToUnit(p.y+ty),
		milToUnit(p.diameter), milToUnit(p.clearance),
		milToUnit(p.diameter+p.maskOffset), milToUnit(p.hole),
		p.name, p.number, flagBits(flags))
}
