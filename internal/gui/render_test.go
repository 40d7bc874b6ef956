package gui

import (
	"math"
	"strings"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestToVector3(t *testing.T) {
	v := toVector3(r3.Vec{X: 1.5, Y: -2, Z: 3})
	if v.X != 1.5 || v.Y != -2 || v.Z != 3 {
		t.Errorf("unexpected vector %+v", v)
	}
}

func TestToColorClamps(t *testing.T) {
	c := toColor(colorful.Color{R: 2, G: 0.5, B: -1})
	if c.R != 255 || c.B != 0 || c.A != 255 {
		t.Errorf("unexpected colour %+v", c)
	}
	if c.G < 127 || c.G > 128 {
		t.Errorf("expected mid green, got %d", c.G)
	}
}

func TestHelpColorPulse(t *testing.T) {
	for ts := 0.0; ts < 30; ts += 0.1 {
		c := helpColor(ts)
		if c.R != c.G || c.G != c.B || c.A != 255 {
			t.Fatalf("expected opaque grey at t=%f, got %+v", ts, c)
		}
		if c.R < 163 || c.R > 204 {
			t.Fatalf("grey %d outside 0.8*[0.8, 1.0] at t=%f", c.R, ts)
		}
	}
	if c := helpColor(0); c.R != 184 {
		t.Errorf("expected 0.8*0.9 grey (184) at t=0, got %d", c.R)
	}
	if c := helpColor(math.Pi); c.R != 204 {
		t.Errorf("expected full 0.8 grey (204) at the pulse peak, got %d", c.R)
	}
}

func TestHelpTextListsControls(t *testing.T) {
	for _, line := range []string{
		"W/S - Move camera closer/farther",
		"A/D - Rotate camera left/right",
		"Q/E - Move camera up/down",
		"SPACE - Toggle auto-rotation",
		"ESC - Exit",
	} {
		if !strings.Contains(HelpText, line) {
			t.Errorf("help text missing %q", line)
		}
	}
}

func TestTelemetryStrip(t *testing.T) {
	pts := telemetryStrip([]float64{0, 1, 2}, 10, 100, 300, 60)
	if len(pts) != 3 {
		t.Fatalf("expected 3 points, got %d", len(pts))
	}
	if pts[0].Y != 160 || pts[2].Y != 100 {
		t.Errorf("expected min at bottom and max at top, got %v", pts)
	}
}
