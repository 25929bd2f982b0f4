package fp

import (
	"strings"
	"testing"
)

func TestPinExplicitGeometry(t *testing.T) {
	f := newTestFootprint(t)

	pin, err := f.AddPin(X(100), Y(-50), Hole(30), Diameter(66), Number(3), Name("GND"))
	if err != nil {
		t.Fatalf("Failed to add pin: %v", err)
	}

	if pin.X() != 100 || pin.Y() != -50 {
		t.Errorf("Expected center (100, -50), got (%v, %v)", pin.X(), pin.Y())
	}
	if pin.Hole() != 30 || pin.Diameter() != 66 {
		t.Errorf("Expected hole 30 diameter 66, got %v/%v", pin.Hole(), pin.Diameter())
	}
	if pin.Number() != "3" || pin.Name() != "GND" {
		t.Errorf("Expected number '3' name 'GND', got %q/%q", pin.Number(), pin.Name())
	}
	if !pin.Round() {
		t.Error("Expected pins to default to a round annulus")
	}
	if pin.Left() != 67 || pin.Right() != 133 {
		t.Errorf("Expected annulus edges 67/133, got %v/%v", pin.Left(), pin.Right())
	}
	if pin.Top() != -83 || pin.Bottom() != -17 {
		t.Errorf("Expected annulus edges -83/-17, got %v/%v", pin.Top(), pin.Bottom())
	}
}

func TestPinMissingGeometry(t *testing.T) {
	f := newTestFootprint(t)

	cases := []struct {
		opts []Option
		want string
	}{
		{[]Option{Y(0), Hole(30), Diameter(66)}, "x coordinate"},
		{[]Option{X(0), Hole(30), Diameter(66)}, "y coordinate"},
		{[]Option{X(0), Y(0), Diameter(66)}, "hole diameter"},
		{[]Option{X(0), Y(0), Hole(30)}, "copper diameter"},
	}
	for _, c := range cases {
		_, err := f.AddPin(c.opts...)
		if err == nil {
			t.Errorf("Expected missing %s to fail", c.want)
			continue
		}
		if !strings.Contains(err.Error(), c.want) {
			t.Errorf("Expected error naming %q, got: %v", c.want, err)
		}
	}
}

func TestPinInheritAndOverride(t *testing.T) {
	f := newTestFootprint(t)

	s1, err := f.AddPin(X(-100), Y(50), Hole(53.15), Diameter(76.77), NumberStr(""))
	if err != nil {
		t.Fatalf("Failed to add base pin: %v", err)
	}
	s2, err := f.AddPin(Base(s1), X(100))
	if err != nil {
		t.Fatalf("Failed to add dependent pin: %v", err)
	}

	if s2.X() != 100 {
		t.Errorf("Expected explicit x 100, got %v", s2.X())
	}
	if s2.Y() != 50 || s2.Hole() != 53.15 || s2.Diameter() != 76.77 {
		t.Error("Expected y, hole and diameter to be inherited")
	}
	if s2.Number() != "" {
		t.Errorf("Expected inherited empty number, got %q", s2.Number())
	}

	// The inherited values were copied, not linked.
	s1.SetDiameter(200)
	if s2.Diameter() != 76.77 {
		t.Errorf("Expected the dependent pin to keep diameter 76.77, got %v", s2.Diameter())
	}
}

func TestPinRejectsEdgeOptions(t *testing.T) {
	f := newTestFootprint(t)

	_, err := f.AddPin(Left(0), Y(0), Hole(30), Diameter(66))
	if err == nil {
		t.Fatal("Expected the Left option on a pin to fail")
	}
	if !strings.Contains(err.Error(), "Left") {
		t.Errorf("Expected the error to name the option, got: %v", err)
	}
}

func TestPinEdgeSetters(t *testing.T) {
	f := newTestFootprint(t)

	pin, err := f.AddPin(X(0), Y(0), Hole(30), Diameter(60))
	if err != nil {
		t.Fatalf("Failed to add pin: %v", err)
	}

	pin.SetLeft(100)
	if pin.X() != 130 {
		t.Errorf("Expected SetLeft(100) to move the center to 130, got %v", pin.X())
	}
	pin.SetBottom(0)
	if pin.Y() != -30 {
		t.Errorf("Expected SetBottom(0) to move the center to -30, got %v", pin.Y())
	}
}

func TestPinFormat(t *testing.T) {
	f := newTestFootprint(t)

	pin, err := f.AddPin(X(0), Y(0), Hole(30), Diameter(66), Number(1))
	if err != nil {
		t.Fatalf("Failed to add pin: %v", err)
	}
	want := `Pin[0 0 6600 200 6700 3000 "" "1" 0x1]`
	if got := pin.pcbFormat(0, 0); got != want {
		t.Errorf("Expected %s\ngot      %s", want, got)
	}

	square, err := f.AddPin(X(100), Y(0), Hole(30), Diameter(66), Number(2), Square())
	if err != nil {
		t.Fatalf("Failed to add pin: %v", err)
	}
	want = `Pin[10000 0 6600 200 6700 3000 "" "2" 0x101]`
	if got := square.pcbFormat(0, 0); got != want {
		t.Errorf("Expected %s\ngot      %s", want, got)
	}
}
