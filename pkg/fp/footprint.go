package fp

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Footprint accumulates shapes for one pcb element and serializes them
// on demand. Create one with New, add shapes, then write it with
// WriteFile or through Generate.
type Footprint struct {
	name string

	// Description is the element's text description.
	Description string

	// TextX and TextY place the top-left corner of the element's
	// reference text, in mils.
	TextX, TextY float64

	// TextDirection rotates the reference text: 0 = normal, 1 = 90
	// degrees left, 2 = upside down, 3 = 270 degrees left.
	TextDirection int

	// TextScale is the reference text size in percent. New sets it to
	// 100.
	TextScale int

	markX, markY float64
	shapes       []Shape
	counter      int // next auto-assigned pin/pad number
}

// New starts a footprint with the given name. The name becomes the
// output filename (with the .fp extension appended), so it must be
// non-empty and free of path separators.
func New(name string) (*Footprint, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	return &Footprint{name: name, TextScale: 100, counter: 1}, nil
}

func validateName(name string) error {
	if name == "" {
		return fmt.Errorf("fp: footprint name is empty")
	}
	if strings.ContainsAny(name, `/\`) || strings.ContainsRune(name, 0) {
		return fmt.Errorf("fp: footprint name %q is not usable as a filename", name)
	}
	return nil
}

// Name returns the footprint's name.
func (f *Footprint) Name() string { return f.name }

// AddPad adds a surface-mount pad and returns it so later shapes can
// reference it as a base. When neither Base nor a number option is
// given, the running pin/pad counter supplies the number; the counter
// advances on every added pad or pin either way.
func (f *Footprint) AddPad(opts ...Option) (*Pad, error) {
	p, err := applyOptions(kindPad, opts)
	if err != nil {
		return nil, err
	}
	return f.addPad(p)
}

func (f *Footprint) addPad(p *params) (*Pad, error) {
	f.autoNumber(p)
	pad, err := newPad(p)
	if err != nil {
		return nil, err
	}
	f.shapes = append(f.shapes, pad)
	return pad, nil
}

// AddPin adds a plated through-hole and returns it so later shapes can
// reference it as a base. Numbering follows the same rules as AddPad.
func (f *Footprint) AddPin(opts ...Option) (*Pin, error) {
	p, err := applyOptions(kindPin, opts)
	if err != nil {
		return nil, err
	}
	return f.addPin(p)
}

func (f *Footprint) addPin(p *params) (*Pin, error) {
	f.autoNumber(p)
	pin, err := newPin(p)
	if err != nil {
		return nil, err
	}
	f.shapes = append(f.shapes, pin)
	return pin, nil
}

// autoNumber assigns the running pin/pad counter when neither a base
// nor an explicit number was given, then advances the counter.
func (f *Footprint) autoNumber(p *params) {
	if !p.baseSet && p.number == nil {
		n := strconv.Itoa(f.counter)
		p.number = &n
	}
	f.counter++
}

// AddPads places count pads at fixed intervals: the first at (X, Y),
// each following pad advanced by the DX and DY steps. Numbers are
// assigned sequentially starting from the Number option or the running
// counter. Equivalent to count sequential AddPad calls.
func (f *Footprint) AddPads(count int, opts ...Option) ([]*Pad, error) {
	p, err := applyOptions(kindPad|kindArray, opts)
	if err != nil {
		return nil, err
	}
	pads := make([]*Pad, 0, count)
	err = f.placeArray(count, p, func(q *params) error {
		pad, err := f.addPad(q)
		if err != nil {
			return err
		}
		pads = append(pads, pad)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return pads, nil
}

// AddPins places count pins at fixed intervals, following the same
// placement and numbering rules as AddPads.
func (f *Footprint) AddPins(count int, opts ...Option) ([]*Pin, error) {
	p, err := applyOptions(kindPin|kindArray, opts)
	if err != nil {
		return nil, err
	}
	pins := make([]*Pin, 0, count)
	err = f.placeArray(count, p, func(q *params) error {
		pin, err := f.addPin(q)
		if err != nil {
			return err
		}
		pins = append(pins, pin)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return pins, nil
}

// placeArray runs count placements of a copy of p, advancing the x and
// y coordinates by the configured steps and the number by one after
// each shape. With k step values the step taken after shape i is
// step[i%k], which with two values produces staggered rows.
func (f *Footprint) placeArray(count int, p *params, add func(*params) error) error {
	if count <= 0 {
		return fmt.Errorf("fp: shape count must be positive, got %d", count)
	}
	if p.x == nil || p.y == nil {
		return fmt.Errorf("fp: placing a shape array needs X and Y for the first shape")
	}
	number := f.counter
	if p.number != nil {
		n, err := strconv.Atoi(*p.number)
		if err != nil {
			return fmt.Errorf("fp: shape arrays need a numeric starting number, got %q", *p.number)
		}
		number = n
	}
	x, y := *p.x, *p.y
	for i := 0; i < count; i++ {
		q := *p
		q.x, q.y = f64(x), f64(y)
		num := strconv.Itoa(number + i)
		q.number = &num
		if err := add(&q); err != nil {
			return err
		}
		x += step(p.dx, i)
		y += step(p.dy, i)
	}
	return nil
}

// step returns the advance to take after placing shape i.
func step(steps []float64, i int) float64 {
	if len(steps) == 0 {
		return 0
	}
	return steps[i%len(steps)]
}

// AddLine adds a line to the silkscreen layer.
func (f *Footprint) AddLine(x1, y1, x2, y2 float64, opts ...Option) (*SilkLine, error) {
	p, err := applyOptions(kindLine, opts)
	if err != nil {
		return nil, err
	}
	line := newSilkLine(x1, y1, x2, y2, p)
	f.shapes = append(f.shapes, line)
	return line, nil
}

// AddPolyline adds a series of connected silkscreen segments through
// the given points. The Closed option joins the last point back to the
// first.
func (f *Footprint) AddPolyline(points []Point, opts ...Option) (*SilkPolyline, error) {
	p, err := applyOptions(kindPolyline, opts)
	if err != nil {
		return nil, err
	}
	pl, err := newSilkPolyline(points, p)
	if err != nil {
		return nil, err
	}
	f.shapes = append(f.shapes, pl)
	return pl, nil
}

// AddArc adds an arc to the silkscreen layer, centered at (x, y). A
// radius must be supplied through the Radius, XRadius/YRadius or
// Diameter options.
func (f *Footprint) AddArc(x, y float64, opts ...Option) (*SilkArc, error) {
	p, err := applyOptions(kindArc, opts)
	if err != nil {
		return nil, err
	}
	arc, err := newSilkArc(x, y, p)
	if err != nil {
		return nil, err
	}
	f.shapes = append(f.shapes, arc)
	return arc, nil
}

// Mark centers the element's diamond marker on the given pad or pin.
// The mark defaults to the origin.
func (f *Footprint) Mark(s Shape) error {
	switch v := s.(type) {
	case *Pad:
		f.markX, f.markY = v.X(), v.Y()
	case *Pin:
		f.markX, f.markY = v.X(), v.Y()
	default:
		return fmt.Errorf("fp: mark must reference a pad or pin")
	}
	return nil
}

// SetMark places the element marker at an explicit coordinate.
func (f *Footprint) SetMark(x, y float64) {
	f.markX, f.markY = x, y
}

// MarkX returns the x coordinate of the element marker.
func (f *Footprint) MarkX() float64 { return f.markX }

// MarkY returns the y coordinate of the element marker.
func (f *Footprint) MarkY() float64 { return f.markY }

// ByNumber returns the first pad or pin carrying the given number, or
// nil when no shape matches. Insertion order, not numbering, decides
// which shape wins when numbers repeat.
func (f *Footprint) ByNumber(number string) Shape {
	for _, s := range f.shapes {
		switch v := s.(type) {
		case *Pad:
			if v.number == number {
				return v
			}
		case *Pin:
			if v.number == number {
				return v
			}
		}
	}
	return nil
}

// Shapes returns the footprint's shapes in the order they were added.
func (f *Footprint) Shapes() []Shape {
	out := make([]Shape, len(f.shapes))
	copy(out, f.shapes)
	return out
}

// String renders the footprint in pcb element format. Shape coordinates
// are emitted relative to the element mark.
func (f *Footprint) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Element[%q %q %q %q %d %d %d %d %d %d %q] (\n",
		"", f.Description, "", f.name,
		milToUnit(f.markX), milToUnit(f.markY),
		milToUnit(f.TextX), milToUnit(f.TextY),
		f.TextDirection, f.TextScale, "")
	lines := make([]string, len(f.shapes))
	for i, s := range f.shapes {
		lines[i] = s.pcbFormat(-f.markX, -f.markY)
	}
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("\n)\n")
	return b.String()
}

// WriteTo writes the serialized footprint to w.
func (f *Footprint) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, f.String())
	return int64(n), err
}

// WriteFile writes the serialized footprint to the given path in one
// pass. A failed write surfaces to the caller; no cleanup of a partial
// file is attempted.
func (f *Footprint) WriteFile(path string) error {
	if err := os.WriteFile(path, []byte(f.String()), 0o644); err != nil {
		return fmt.Errorf("fp: writing %s: %w", path, err)
	}
	return nil
}
