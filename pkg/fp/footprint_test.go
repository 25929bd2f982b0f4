package fp

import (
	"strings"
	"testing"
)

func TestNewRejectsBadNames(t *testing.T) {
	for _, name := range []string{"", "a/b", `a\b`, "x\x00y"} {
		if _, err := New(name); err == nil {
			t.Errorf("Expected name %q to be rejected", name)
		}
	}
	if _, err := New("KPT-1101NE"); err != nil {
		t.Errorf("Expected a plain name to be accepted, got: %v", err)
	}
}

func TestAutoNumbering(t *testing.T) {
	f := newTestFootprint(t)

	p1, _ := f.AddPad(X(0), Y(0), Width(10), Height(10))
	p2, _ := f.AddPin(X(50), Y(0), Hole(5), Diameter(10))
	if p1.Number() != "1" || p2.Number() != "2" {
		t.Errorf("Expected auto numbers 1 and 2, got %q/%q", p1.Number(), p2.Number())
	}

	// An explicit number still advances the counter.
	p3, _ := f.AddPad(X(100), Y(0), Width(10), Height(10), Number(9))
	p4, _ := f.AddPad(X(150), Y(0), Width(10), Height(10))
	if p3.Number() != "9" {
		t.Errorf("Expected explicit number 9, got %q", p3.Number())
	}
	if p4.Number() != "4" {
		t.Errorf("Expected the counter to keep running, got %q", p4.Number())
	}
}

func TestByNumber(t *testing.T) {
	f := newTestFootprint(t)

	f.AddPad(X(0), Y(0), Width(10), Height(10), Number(1))
	pin, _ := f.AddPin(X(50), Y(0), Hole(5), Diameter(10), Number(2))

	got := f.ByNumber("2")
	if got != Shape(pin) {
		t.Errorf("Expected ByNumber to find the pin, got %v", got)
	}
	if f.ByNumber("99") != nil {
		t.Error("Expected a missing number to return nil")
	}
}

func TestTactileSwitchScenario(t *testing.T) {
	f, err := New("KPT-1101NE")
	if err != nil {
		t.Fatalf("Failed to create footprint: %v", err)
	}

	p1, err := f.AddPad(X(0), Y(0), Width(1.1*MM), Height(1.6*MM), Number(1))
	if err != nil {
		t.Fatalf("Failed to add first pad: %v", err)
	}
	p2, err := f.AddPad(Base(p1), Left(p1.Right()+6.2*MM), Number(2))
	if err != nil {
		t.Fatalf("Failed to add second pad: %v", err)
	}

	if !almostEqual(p2.Left()-p1.Right(), 6.2*MM) {
		t.Errorf("Expected a gap of exactly 6.2mm, got %v mils", p2.Left()-p1.Right())
	}

	out := f.String()
	if n := strings.Count(out, "Pad["); n != 2 {
		t.Fatalf("Expected 2 Pad statements, got %d:\n%s", n, out)
	}
	if !strings.Contains(out, `"KPT-1101NE"`) {
		t.Errorf("Expected the element header to carry the name:\n%s", out)
	}
}

func TestAddPinsStaggered(t *testing.T) {
	f := newTestFootprint(t)

	pins, err := f.AddPins(9, X(0), Y(0), DX(54), DY(112, -112), Hole(30), Diameter(66))
	if err != nil {
		t.Fatalf("Failed to add pins: %v", err)
	}
	if len(pins) != 9 {
		t.Fatalf("Expected 9 pins, got %d", len(pins))
	}

	for i, pin := range pins {
		wantX := float64(54 * i)
		wantY := 0.0
		if i%2 == 1 {
			wantY = 112
		}
		if pin.X() != wantX || pin.Y() != wantY {
			t.Errorf("Pin %d: expected (%v, %v), got (%v, %v)", i, wantX, wantY, pin.X(), pin.Y())
		}
		wantNum := string(rune('1' + i))
		if pin.Number() != wantNum {
			t.Errorf("Pin %d: expected number %q, got %q", i, wantNum, pin.Number())
		}
	}
}

func TestAddPadsRow(t *testing.T) {
	f := newTestFootprint(t)

	pads, err := f.AddPads(5, X(0), Y(0), DX(0.65*MM), Width(0.4*MM), Height(1.5*MM))
	if err != nil {
		t.Fatalf("Failed to add pads: %v", err)
	}
	if len(pads) != 5 {
		t.Fatalf("Expected 5 pads, got %d", len(pads))
	}
	for i, pad := range pads {
		if !almostEqual(pad.X(), float64(i)*0.65*MM) {
			t.Errorf("Pad %d: expected x %v, got %v", i, float64(i)*0.65*MM, pad.X())
		}
	}
	if pads[4].Number() != "5" {
		t.Errorf("Expected the last pad to be number 5, got %q", pads[4].Number())
	}

	// The counter advanced past the array.
	next, _ := f.AddPad(X(0), Y(100), Width(10), Height(10))
	if next.Number() != "6" {
		t.Errorf("Expected the next pad to be number 6, got %q", next.Number())
	}
}

func TestAddPinsRequiresPosition(t *testing.T) {
	f := newTestFootprint(t)

	if _, err := f.AddPins(3, DX(54), Hole(30), Diameter(66)); err == nil {
		t.Fatal("Expected a pin array without X and Y to fail")
	}
	if _, err := f.AddPins(0, X(0), Y(0), Hole(30), Diameter(66)); err == nil {
		t.Fatal("Expected a zero-count array to fail")
	}
}

func TestEmptyFootprintSerialization(t *testing.T) {
	f, err := New("EMPTY")
	if err != nil {
		t.Fatalf("Failed to create footprint: %v", err)
	}

	want := `Element["" "" "" "EMPTY" 0 0 0 0 0 100 ""] (` + "\n\n)\n"
	if got := f.String(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestMarkTranslation(t *testing.T) {
	f := newTestFootprint(t)

	pad, err := f.AddPad(X(100), Y(200), Width(50), Height(20), Number(1))
	if err != nil {
		t.Fatalf("Failed to add pad: %v", err)
	}
	if err := f.Mark(pad); err != nil {
		t.Fatalf("Failed to set mark: %v", err)
	}

	out := f.String()
	// The mark carries the absolute position; the pad is re-centered on it.
	if !strings.Contains(out, `"TEST" 10000 20000`) {
		t.Errorf("Expected the header mark at (10000, 20000):\n%s", out)
	}
	if !strings.Contains(out, "Pad[-1500 0 1500 0 2000") {
		t.Errorf("Expected the pad centered on the mark:\n%s", out)
	}
}

func TestMarkRejectsSilk(t *testing.T) {
	f := newTestFootprint(t)

	line, err := f.AddLine(0, 0, 100, 0)
	if err != nil {
		t.Fatalf("Failed to add line: %v", err)
	}
	if err := f.Mark(line); err == nil {
		t.Fatal("Expected marking a silk line to fail")
	}
}
