package fp

import (
	"fmt"
	"math"
	"strings"
)

// DefaultSilkThickness is the line thickness, in mils, used by
// silkscreen shapes that do not specify one.
const DefaultSilkThickness = 10

// SilkLine is a line segment on the silkscreen layer.
type SilkLine struct {
	x1, y1, x2, y2 float64
	thickness      float64
}

func newSilkLine(x1, y1, x2, y2 float64, p *params) *SilkLine {
	l := &SilkLine{x1: x1, y1: y1, x2: x2, y2: y2, thickness: DefaultSilkThickness}
	if p.thickness != nil {
		l.thickness = *p.thickness
	}
	return l
}

// X1 returns the x coordinate of the first endpoint.
func (l *SilkLine) X1() float64 { return l.x1 }

// Y1 returns the y coordinate of the first endpoint.
func (l *SilkLine) Y1() float64 { return l.y1 }

// X2 returns the x coordinate of the second endpoint.
func (l *SilkLine) X2() float64 { return l.x2 }

// Y2 returns the y coordinate of the second endpoint.
func (l *SilkLine) Y2() float64 { return l.y2 }

// Thickness returns the line thickness.
func (l *SilkLine) Thickness() float64 { return l.thickness }

func (l *SilkLine) pcbFormat(tx, ty float64) string {
	return fmt.Sprintf("ElementLine[%d %d %d %d %d]",
		milToUnit(l.x1+tx), milToUnit(l.y1+ty),
		milToUnit(l.x2+tx), milToUnit(l.y2+ty),
		milToUnit(l.thickness))
}

// SilkPolyline is a series of connected line segments on the
// silkscreen layer. It is expanded into SilkLine segments at creation
// time.
type SilkPolyline struct {
	segments []*SilkLine
}

func newSilkPolyline(points []Point, p *params) (*SilkPolyline, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("fp: polyline needs at least two points, got %d", len(points))
	}
	pl := &SilkPolyline{}
	for i := 1; i < len(points); i++ {
		pl.segments = append(pl.segments,
			newSilkLine(points[i-1].X, points[i-1].Y, points[i].X, points[i].Y, p))
	}
	if p.closed {
		last := points[len(points)-1]
		pl.segments = append(pl.segments,
			newSilkLine(last.X, last.Y, points[0].X, points[0].Y, p))
	}
	return pl, nil
}

// Segments returns the polyline's line segments in drawing order.
func (pl *SilkPolyline) Segments() []*SilkLine {
	out := make([]*SilkLine, len(pl.segments))
	copy(out, pl.segments)
	return out
}

func (pl *SilkPolyline) pcbFormat(tx, ty float64) string {
	lines := make([]string, len(pl.segments))
	for i, s := range pl.segments {
		lines[i] = s.pcbFormat(tx, ty)
	}
	return strings.Join(lines, "\n")
}

// SilkArc is an arc on the silkscreen layer. The start angle is
// measured in degrees counterclockwise from the negative x axis; the
// default sweep is a full circle.
type SilkArc struct {
	x, y             float64
	xRadius, yRadius float64
	startAngle       float64
	deltaAngle       float64
	thickness        float64
}

func newSilkArc(x, y float64, p *params) (*SilkArc, error) {
	a := &SilkArc{x: x, y: y, deltaAngle: 360, thickness: DefaultSilkThickness}
	if p.xRadius != nil {
		a.xRadius = *p.xRadius
	}
	if p.yRadius != nil {
		a.yRadius = *p.yRadius
	}
	if p.diameter != nil {
		a.xRadius = *p.diameter / 2
		a.yRadius = *p.diameter / 2
	}
	switch {
	case p.diameter != nil:
	case p.xRadius == nil && p.yRadius == nil:
		return nil, fmt.Errorf("fp: arc radius not given")
	case p.xRadius == nil || p.yRadius == nil:
		return nil, fmt.Errorf("fp: arc needs both x and y radii")
	}
	if p.startAngle != nil {
		a.startAngle = *p.startAngle
	}
	if p.deltaAngle != nil {
		a.deltaAngle = *p.deltaAngle
	}
	if p.thickness != nil {
		a.thickness = *p.thickness
	}
	return a, nil
}

// X returns the x coordinate of the arc center.
func (a *SilkArc) X() float64 { return a.x }

// Y returns the y coordinate of the arc center.
func (a *SilkArc) Y() float64 { return a.y }

// XRadius returns the arc radius on the x axis.
func (a *SilkArc) XRadius() float64 { return a.xRadius }

// YRadius returns the arc radius on the y axis.
func (a *SilkArc) YRadius() float64 { return a.yRadius }

// Radius returns the arc radius. If the x and y radii differ, their
// average is returned.
func (a *SilkArc) Radius() float64 { return Mid(a.xRadius, a.yRadius) }

// Diameter returns twice the arc radius.
func (a *SilkArc) Diameter() float64 { return a.Radius() * 2 }

// StartAngle returns the arc's start angle in degrees.
func (a *SilkArc) StartAngle() float64 { return a.startAngle }

// DeltaAngle returns the arc's sweep in degrees.
func (a *SilkArc) DeltaAngle() float64 { return a.deltaAngle }

// Thickness returns the arc's line thickness.
func (a *SilkArc) Thickness() float64 { return a.thickness }

// SetRadius sets the arc radius on both axes.
func (a *SilkArc) SetRadius(v float64) {
	a.xRadius = v
	a.yRadius = v
}

// SetDiameter sets the arc diameter on both axes.
func (a *SilkArc) SetDiameter(v float64) { a.SetRadius(v / 2) }

func (a *SilkArc) pcbFormat(tx, ty float64) string {
	return fmt.Sprintf("ElementArc[%d %d %d %d %d %d %d]",
		milToUnit(a.x+tx), milToUnit(a.y+ty),
		milToUnit(a.xRadius), milToUnit(a.yRadius),
		int(math.Round(a.startAngle)), int(math.Round(a.deltaAngle)),
		milToUnit(a.thickness))
}
