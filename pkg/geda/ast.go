package geda

import "strconv"

// File represents one parsed .fp file: a single element definition.
type File struct {
	Element *Element `parser:"@@"`
}

// Element mirrors the Element[...] header this project writes: symbol
// flags, description, reference designator and element name strings,
// mark and text-origin coordinates in centimils, text direction and
// scale, and trailing text flags.
type Element struct {
	SymFlags    string       `parser:"KwElement LBracket @String"`
	Description string       `parser:"@String"`
	Refdes      string       `parser:"@String"`
	Name        string       `parser:"@String"`
	MarkX       int          `parser:"@Int"`
	MarkY       int          `parser:"@Int"`
	TextX       int          `parser:"@Int"`
	TextY       int          `parser:"@Int"`
	TextDir     int          `parser:"@Int"`
	TextScale   int          `parser:"@Int"`
	TextFlags   string       `parser:"@String RBracket"`
	Shapes      []*Statement `parser:"LParen @@* RParen"`
}

// Statement is one body line inside the element.
type Statement struct {
	Pad  *PadStmt  `parser:"  @@"`
	Pin  *PinStmt  `parser:"| @@"`
	Line *LineStmt `parser:"| @@"`
	Arc  *ArcStmt  `parser:"| @@"`
}

// PadStmt is a Pad[...] statement: a line segment with thickness,
// clearance and mask in centimils, then name, number and flags.
type PadStmt struct {
	X1        int    `parser:"KwPad LBracket @Int"`
	Y1        int    `parser:"@Int"`
	X2        int    `parser:"@Int"`
	Y2        int    `parser:"@Int"`
	Thickness int    `parser:"@Int"`
	Clearance int    `parser:"@Int"`
	Mask      int    `parser:"@Int"`
	Name      string `parser:"@String"`
	Number    string `parser:"@String"`
	Flags     Flags  `parser:"@( Hex | Int ) RBracket"`
}

// PinStmt is a Pin[...] statement: hole center, copper thickness,
// clearance, mask and drill in centimils, then name, number and flags.
type PinStmt struct {
	X         int    `parser:"KwPin LBracket @Int"`
	Y         int    `parser:"@Int"`
	Thickness int    `parser:"@Int"`
	Clearance int    `parser:"@Int"`
	Mask      int    `parser:"@Int"`
	Drill     int    `parser:"@Int"`
	Name      string `parser:"@String"`
	Number    string `parser:"@String"`
	Flags     Flags  `parser:"@( Hex | Int ) RBracket"`
}

// LineStmt is an ElementLine[...] statement on the silkscreen layer.
type LineStmt struct {
	X1        int `parser:"KwElementLine LBracket @Int"`
	Y1        int `parser:"@Int"`
	X2        int `parser:"@Int"`
	Y2        int `parser:"@Int"`
	Thickness int `parser:"@Int RBracket"`
}

// ArcStmt is an ElementArc[...] statement. Angles are plain degrees,
// not centimils.
type ArcStmt struct {
	X          int `parser:"KwElementArc LBracket @Int"`
	Y          int `parser:"@Int"`
	XRadius    int `parser:"@Int"`
	YRadius    int `parser:"@Int"`
	StartAngle int `parser:"@Int"`
	DeltaAngle int `parser:"@Int"`
	Thickness  int `parser:"@Int RBracket"`
}

// Flags is a pcb flag bitmask, written in decimal or 0x-prefixed hex.
type Flags uint32

// Capture implements participle's capture interface, accepting both
// encodings.
func (f *Flags) Capture(values []string) error {
	v, err := strconv.ParseUint(values[0], 0, 32)
	if err != nil {
		return err
	}
	*f = Flags(v)
	return nil
}

const (
	// FlagPin marks a Pin statement (always set by this project).
	FlagPin Flags = 0x1
	// FlagSquare requests square pad ends or a square pin annulus.
	FlagSquare Flags = 0x100
)

// Square reports whether the square flag bit is set.
func (f Flags) Square() bool { return f&FlagSquare != 0 }
