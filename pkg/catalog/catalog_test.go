package catalog

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/OpenTraceLab/OpenTraceFP/pkg/fp"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func newFootprint(t *testing.T, name string) *fp.Footprint {
	t.Helper()
	f, err := fp.New(name)
	if err != nil {
		t.Fatalf("New(%q) failed: %v", name, err)
	}
	return f
}

func pinAt(t *testing.T, f *fp.Footprint, number string) *fp.Pin {
	t.Helper()
	pin, ok := f.ByNumber(number).(*fp.Pin)
	if !ok {
		t.Fatalf("expected pin %q, got %T", number, f.ByNumber(number))
	}
	return pin
}

func padAt(t *testing.T, f *fp.Footprint, number string) *fp.Pad {
	t.Helper()
	pad, ok := f.ByNumber(number).(*fp.Pad)
	if !ok {
		t.Fatalf("expected pad %q, got %T", number, f.ByNumber(number))
	}
	return pad
}

func TestDIPGeometry(t *testing.T) {
	f := newFootprint(t, "DIP8")
	if err := DIP(f, 8, DefaultDIPConfig()); err != nil {
		t.Fatalf("DIP failed: %v", err)
	}

	cases := []struct {
		number string
		x, y   float64
	}{
		{"1", 0, 0},
		{"4", 0, 300},
		{"5", 300, 300}, // right column runs bottom to top
		{"8", 300, 0},
	}
	for _, tc := range cases {
		pin := pinAt(t, f, tc.number)
		if !almostEqual(pin.X(), tc.x) || !almostEqual(pin.Y(), tc.y) {
			t.Errorf("pin %s: expected (%v, %v), got (%v, %v)",
				tc.number, tc.x, tc.y, pin.X(), pin.Y())
		}
	}

	if pinAt(t, f, "1").Round() {
		t.Error("pin 1 should be square")
	}
	if !pinAt(t, f, "2").Round() {
		t.Error("pin 2 should be round")
	}
	if f.MarkX() != 0 || f.MarkY() != 0 {
		t.Errorf("mark should sit on pin 1, got (%v, %v)", f.MarkX(), f.MarkY())
	}
}

func TestDIPRejectsOddPinCount(t *testing.T) {
	f := newFootprint(t, "DIP7")
	if err := DIP(f, 7, DefaultDIPConfig()); err == nil {
		t.Fatal("expected an error for an odd pin count")
	}
}

func TestDIPConfigValidate(t *testing.T) {
	cfg := DefaultDIPConfig()
	cfg.Hole = cfg.Diameter + 1
	f := newFootprint(t, "DIP8")
	if err := DIP(f, 8, cfg); err == nil {
		t.Fatal("expected an error when the hole exceeds the diameter")
	}
}

func TestHeaderColumnMajorNumbering(t *testing.T) {
	f := newFootprint(t, "HDR2x5")
	if err := Header(f, 2, 5, DefaultHeaderConfig()); err != nil {
		t.Fatalf("Header failed: %v", err)
	}

	// column 1 is pins 1-2, column 2 is pins 3-4, ...
	cases := []struct {
		number string
		x, y   float64
	}{
		{"1", 0, 0},
		{"2", 0, 100},
		{"3", 100, 0},
		{"10", 400, 100},
	}
	for _, tc := range cases {
		pin := pinAt(t, f, tc.number)
		if !almostEqual(pin.X(), tc.x) || !almostEqual(pin.Y(), tc.y) {
			t.Errorf("pin %s: expected (%v, %v), got (%v, %v)",
				tc.number, tc.x, tc.y, pin.X(), pin.Y())
		}
	}
}

func TestSOICGeometry(t *testing.T) {
	cfg := DefaultSOICConfig()
	f := newFootprint(t, "SOIC8")
	if err := SOIC(f, 8, cfg); err != nil {
		t.Fatalf("SOIC failed: %v", err)
	}

	pad1 := padAt(t, f, "1")
	pad2 := padAt(t, f, "2")
	if pitch := pad2.Y() - pad1.Y(); !almostEqual(pitch, 50) {
		t.Errorf("expected 50 mil pitch, got %v", pitch)
	}
	if !almostEqual(pad1.X(), -cfg.RowSpan/2) {
		t.Errorf("pad 1 x: expected %v, got %v", -cfg.RowSpan/2, pad1.X())
	}

	// pad 5 is directly across from pad 4
	pad4, pad5 := padAt(t, f, "4"), padAt(t, f, "5")
	if !almostEqual(pad4.Y(), pad5.Y()) {
		t.Errorf("pads 4 and 5 should share a y coordinate, got %v and %v", pad4.Y(), pad5.Y())
	}
	if !almostEqual(pad5.X()-pad4.X(), cfg.RowSpan) {
		t.Errorf("expected row span %v, got %v", cfg.RowSpan, pad5.X()-pad4.X())
	}
}

func TestSOICPadsDoNotOverlap(t *testing.T) {
	cfg := DefaultSOICConfig()
	f := newFootprint(t, "SOIC8")
	if err := SOIC(f, 8, cfg); err != nil {
		t.Fatalf("SOIC failed: %v", err)
	}

	// The long pad dimension points toward the body; along the column
	// adjacent pads must leave a copper gap.
	pad1, pad2 := padAt(t, f, "1"), padAt(t, f, "2")
	if pad1.Bottom() >= pad2.Top() {
		t.Errorf("adjacent pads overlap: pad 1 bottom %v, pad 2 top %v", pad1.Bottom(), pad2.Top())
	}
	if !(pad1.Width() > pad1.Height()) {
		t.Errorf("pad should be wider than tall, got %v x %v", pad1.Width(), pad1.Height())
	}
}

func TestSOICConfigRejectsTallPads(t *testing.T) {
	cfg := DefaultSOICConfig()
	cfg.PadHeight = cfg.Pitch
	f := newFootprint(t, "SOIC8")
	if err := SOIC(f, 8, cfg); err == nil {
		t.Fatal("expected an error when the pad height reaches the pitch")
	}
}

func TestQFPNumbering(t *testing.T) {
	cfg := DefaultQFPConfig()
	f := newFootprint(t, "QFP16")
	if err := QFP(f, 16, cfg); err != nil {
		t.Fatalf("QFP failed: %v", err)
	}

	half := cfg.Span / 2
	offset := 1.5 * cfg.Pitch // (perSide-1)*pitch/2 for 4 per side

	cases := []struct {
		number string
		x, y   float64
	}{
		{"1", -half, -offset},  // left side, top
		{"4", -half, offset},   // left side, bottom
		{"5", -offset, half},   // bottom side, left
		{"8", offset, half},    // bottom side, right
		{"9", half, offset},    // right side, bottom
		{"12", half, -offset},  // right side, top
		{"13", offset, -half},  // top side, right
		{"16", -offset, -half}, // top side, left
	}
	for _, tc := range cases {
		pad := padAt(t, f, tc.number)
		if !almostEqual(pad.X(), tc.x) || !almostEqual(pad.Y(), tc.y) {
			t.Errorf("pad %s: expected (%v, %v), got (%v, %v)",
				tc.number, tc.x, tc.y, pad.X(), pad.Y())
		}
	}

	// side pads lie on their sides, top and bottom pads stand upright
	if pad := padAt(t, f, "1"); !almostEqual(pad.Width(), cfg.PadLong) {
		t.Errorf("left pad width: expected %v, got %v", cfg.PadLong, pad.Width())
	}
	if pad := padAt(t, f, "5"); !almostEqual(pad.Height(), cfg.PadLong) {
		t.Errorf("bottom pad height: expected %v, got %v", cfg.PadLong, pad.Height())
	}
}

func TestQFPRejectsNonQuadCount(t *testing.T) {
	f := newFootprint(t, "QFP14")
	if err := QFP(f, 14, DefaultQFPConfig()); err == nil {
		t.Fatal("expected an error for a pin count not divisible by 4")
	}
}

func TestDSubStagger(t *testing.T) {
	f := newFootprint(t, "DSUB9")
	if err := DSub(f, 9, DefaultDSubConfig()); err != nil {
		t.Fatalf("DSub failed: %v", err)
	}

	for i := 0; i < 9; i++ {
		number := string(rune('1' + i))
		pin := pinAt(t, f, number)
		wantX := float64(i) * 54
		wantY := 0.0
		if i%2 == 1 {
			wantY = 112
		}
		if !almostEqual(pin.X(), wantX) || !almostEqual(pin.Y(), wantY) {
			t.Errorf("pin %s: expected (%v, %v), got (%v, %v)",
				number, wantX, wantY, pin.X(), pin.Y())
		}
	}
	if pinAt(t, f, "1").Round() {
		t.Error("pin 1 should be square")
	}
}

func TestWriteHelpers(t *testing.T) {
	dir := t.TempDir()

	if err := WriteDIP(dir, 14, DefaultDIPConfig()); err != nil {
		t.Fatalf("WriteDIP failed: %v", err)
	}
	if err := WriteDSub(dir, 9, DefaultDSubConfig()); err != nil {
		t.Fatalf("WriteDSub failed: %v", err)
	}

	for _, name := range []string{"DIP14.fp", "DSUB9.fp"} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("reading %s: %v", name, err)
		}
		if !strings.HasPrefix(string(data), "Element[") {
			t.Errorf("%s does not start with an element header", name)
		}
	}
}

func TestWriteHelperDiscardsOnError(t *testing.T) {
	dir := t.TempDir()
	if err := WriteDIP(dir, 7, DefaultDIPConfig()); err == nil {
		t.Fatal("expected an error for an odd pin count")
	}
	if _, err := os.Stat(filepath.Join(dir, "DIP7.fp")); !os.IsNotExist(err) {
		t.Error("no file should be written when generation fails")
	}
}
