// Package kicad imports KiCad footprint files (.kicad_mod) into fp
// footprints. It covers the pad, line and circle subset that maps onto
// the pcb element model: smd and connect pads become fp pads, thru_hole
// pads become fp pins, fp_line and fp_circle become silkscreen shapes.
// KiCad coordinates are millimeters and convert through fp.MM; both
// formats grow y downward, so no axis flip is needed. Source nodes with
// no pcb equivalent are skipped and counted rather than failing the
// import.
package kicad

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/OpenTraceLab/OpenTraceFP/pkg/fp"
	"github.com/OpenTraceLab/OpenTraceFP/pkg/kicad/kicadsexp"
)

// Result is an imported footprint plus a tally of source nodes that
// have no pcb element equivalent.
type Result struct {
	Footprint *fp.Footprint

	// Skipped counts unmapped geometry nodes by kind, e.g.
	// "pad/np_thru_hole" or "fp_text".
	Skipped map[string]int
}

// metadataKeys are footprint-level nodes carrying no geometry; they are
// ignored without being reported as skipped.
var metadataKeys = map[string]bool{
	"version":           true,
	"generator":         true,
	"generator_version": true,
	"layer":             true,
	"tedit":             true,
	"tags":              true,
	"attr":              true,
	"property":          true,
	"embedded_fonts":    true,
}

// Parse imports one footprint from a reader.
func Parse(r io.Reader) (*Result, error) {
	sexps, err := kicadsexp.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("kicad: parse error: %w", err)
	}
	return convert(sexps)
}

// ParseString imports one footprint from a string.
func ParseString(input string) (*Result, error) {
	return Parse(strings.NewReader(input))
}

// ParseFile imports one footprint from a .kicad_mod file.
func ParseFile(filename string) (*Result, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("kicad: failed to open file: %w", err)
	}
	defer file.Close()

	return Parse(file)
}

func convert(sexps []kicadsexp.Sexp) (*Result, error) {
	var root *kicadsexp.List
	for _, s := range sexps {
		if list, ok := s.(*kicadsexp.List); ok {
			// "module" is the pre-v6 spelling of "footprint"
			if key := list.Key(); key == "footprint" || key == "module" {
				root = list
				break
			}
		}
	}
	if root == nil {
		return nil, fmt.Errorf("kicad: no footprint or module expression found")
	}

	name, err := getString(root, 1)
	if err != nil {
		return nil, fmt.Errorf("kicad: footprint name: %w", err)
	}
	// Strip a "Library:Name" prefix if present
	if _, short, found := strings.Cut(name, ":"); found {
		name = short
	}

	f, err := fp.New(name)
	if err != nil {
		return nil, err
	}
	res := &Result{Footprint: f, Skipped: map[string]int{}}

	for _, item := range root.Items()[1:] {
		node, ok := item.(*kicadsexp.List)
		if !ok {
			continue
		}
		key := node.Key()
		switch {
		case key == "descr":
			if desc, err := getString(node, 1); err == nil {
				f.Description = desc
			}
		case key == "pad":
			if err := importPad(res, node); err != nil {
				return nil, fmt.Errorf("kicad: pad: %w", err)
			}
		case key == "fp_line":
			if err := importLine(f, node); err != nil {
				return nil, fmt.Errorf("kicad: fp_line: %w", err)
			}
		case key == "fp_circle":
			if err := importCircle(f, node); err != nil {
				return nil, fmt.Errorf("kicad: fp_circle: %w", err)
			}
		case metadataKeys[key]:
		default:
			res.Skipped[key]++
		}
	}
	return res, nil
}

// importPad maps one (pad ...) node. smd and connect pads become fp
// pads, thru_hole pads become fp pins, everything else is counted as
// skipped.
func importPad(res *Result, node *kicadsexp.List) error {
	number, err := getString(node, 1)
	if err != nil {
		return fmt.Errorf("number: %w", err)
	}
	padType, err := getString(node, 2)
	if err != nil {
		return fmt.Errorf("type: %w", err)
	}
	shape, err := getString(node, 3)
	if err != nil {
		return fmt.Errorf("shape: %w", err)
	}

	switch padType {
	case "smd", "connect", "thru_hole":
	default:
		res.Skipped["pad/"+padType]++
		return nil
	}

	x, y, angle, err := padPosition(node)
	if err != nil {
		return fmt.Errorf("pad %q: %w", number, err)
	}
	w, h, err := padSize(node)
	if err != nil {
		return fmt.Errorf("pad %q: %w", number, err)
	}
	// A 90 or 270 degree rotation swaps the axes; other angles are not
	// representable and are treated as unrotated.
	if swapped(angle) {
		w, h = h, w
	}

	round := shape == "circle" || shape == "oval" || shape == "roundrect"
	f := res.Footprint

	if padType == "thru_hole" {
		drillNode, found := findNode(node, "drill")
		if !found {
			return fmt.Errorf("thru_hole pad %q has no drill", number)
		}
		drill, err := getFloat(drillNode, 1)
		if err != nil {
			return fmt.Errorf("pad %q drill: %w", number, err)
		}
		opts := []fp.Option{
			fp.X(x * fp.MM), fp.Y(y * fp.MM),
			fp.Hole(drill * fp.MM), fp.Diameter(w * fp.MM),
			fp.NumberStr(number),
		}
		if !round {
			opts = append(opts, fp.Square())
		}
		_, err = f.AddPin(opts...)
		return err
	}

	opts := []fp.Option{
		fp.X(x * fp.MM), fp.Y(y * fp.MM),
		fp.Width(w * fp.MM), fp.Height(h * fp.MM),
		fp.NumberStr(number),
	}
	if round {
		opts = append(opts, fp.Round())
	}
	_, err = f.AddPad(opts...)
	return err
}

func padPosition(node *kicadsexp.List) (x, y, angle float64, err error) {
	atNode, found := findNode(node, "at")
	if !found {
		return 0, 0, 0, fmt.Errorf("missing required 'at' position")
	}
	if x, err = getFloat(atNode, 1); err != nil {
		return 0, 0, 0, fmt.Errorf("x position: %w", err)
	}
	if y, err = getFloat(atNode, 2); err != nil {
		return 0, 0, 0, fmt.Errorf("y position: %w", err)
	}
	// Angle is optional
	if atNode.Len() > 3 {
		if angle, err = getFloat(atNode, 3); err != nil {
			return 0, 0, 0, fmt.Errorf("angle: %w", err)
		}
	}
	return x, y, angle, nil
}

func padSize(node *kicadsexp.List) (w, h float64, err error) {
	sizeNode, found := findNode(node, "size")
	if !found {
		return 0, 0, fmt.Errorf("missing required 'size' field")
	}
	if w, err = getFloat(sizeNode, 1); err != nil {
		return 0, 0, fmt.Errorf("width: %w", err)
	}
	if h, err = getFloat(sizeNode, 2); err != nil {
		return 0, 0, fmt.Errorf("height: %w", err)
	}
	return w, h, nil
}

// swapped reports whether the rotation angle swaps the pad's axes.
func swapped(angle float64) bool {
	a := math.Mod(angle, 360)
	if a < 0 {
		a += 360
	}
	return a == 90 || a == 270
}

func importLine(f *fp.Footprint, node *kicadsexp.List) error {
	start, found := findNode(node, "start")
	if !found {
		return fmt.Errorf("missing 'start' point")
	}
	end, found := findNode(node, "end")
	if !found {
		return fmt.Errorf("missing 'end' point")
	}
	x1, err := getFloat(start, 1)
	if err != nil {
		return err
	}
	y1, err := getFloat(start, 2)
	if err != nil {
		return err
	}
	x2, err := getFloat(end, 1)
	if err != nil {
		return err
	}
	y2, err := getFloat(end, 2)
	if err != nil {
		return err
	}
	_, err = f.AddLine(x1*fp.MM, y1*fp.MM, x2*fp.MM, y2*fp.MM, strokeOpts(node)...)
	return err
}

func importCircle(f *fp.Footprint, node *kicadsexp.List) error {
	center, found := findNode(node, "center")
	if !found {
		return fmt.Errorf("missing 'center' point")
	}
	end, found := findNode(node, "end")
	if !found {
		return fmt.Errorf("missing 'end' point")
	}
	cx, err := getFloat(center, 1)
	if err != nil {
		return err
	}
	cy, err := getFloat(center, 2)
	if err != nil {
		return err
	}
	ex, err := getFloat(end, 1)
	if err != nil {
		return err
	}
	ey, err := getFloat(end, 2)
	if err != nil {
		return err
	}
	radius := math.Hypot(ex-cx, ey-cy)
	opts := append([]fp.Option{fp.Radius(radius * fp.MM)}, strokeOpts(node)...)
	_, err = f.AddArc(cx*fp.MM, cy*fp.MM, opts...)
	return err
}

// strokeOpts extracts the line width from a graphics node, handling
// both the v6+ (stroke (width w)) form and the legacy (width w) form.
// Without a usable width the fp default thickness applies.
func strokeOpts(node *kicadsexp.List) []fp.Option {
	widthNode, found := findNode(node, "width")
	if !found {
		if stroke, ok := findNode(node, "stroke"); ok {
			widthNode, found = findNode(stroke, "width")
		}
	}
	if !found {
		return nil
	}
	w, err := getFloat(widthNode, 1)
	if err != nil || w <= 0 {
		return nil
	}
	return []fp.Option{fp.Thickness(w * fp.MM)}
}
