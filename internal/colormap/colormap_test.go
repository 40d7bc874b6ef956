package colormap

import (
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func TestTemperatureClamping(t *testing.T) {
	low := Temperature(MinTemperature)
	for _, temp := range []float64{-50, 0, 10, 999.9, MinTemperature} {
		if got := Temperature(temp); got != low {
			t.Errorf("Temperature(%v) = %v, want %v", temp, got, low)
		}
	}

	high := Temperature(MaxTemperature)
	for _, temp := range []float64{MaxTemperature, 50001, 1e6, math.Inf(1)} {
		if got := Temperature(temp); got != high {
			t.Errorf("Temperature(%v) = %v, want %v", temp, got, high)
		}
	}
}

func TestTemperatureBands(t *testing.T) {
	tests := []struct {
		name string
		temp float64
		want colorful.Color
	}{
		{"red hot", 1000, colorful.Color{R: 1, G: 0.1, B: 0}},
		{"orange start", 3000, colorful.Color{R: 1, G: 0.4, B: 0}},
		{"yellow start", 5000, colorful.Color{R: 1, G: 0.8, B: 0.2}},
		{"white start", 10000, colorful.Color{R: 1, G: 0.9, B: 1}},
		{"blue white", 50000, colorful.Color{R: 0.8, G: 0.8, B: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Temperature(tt.temp)
			if math.Abs(got.R-tt.want.R) > 1e-9 || math.Abs(got.G-tt.want.G) > 1e-9 || math.Abs(got.B-tt.want.B) > 1e-9 {
				t.Errorf("Temperature(%v) = %v, want %v", tt.temp, got, tt.want)
			}
		})
	}
}

func TestTemperatureComponentsInRange(t *testing.T) {
	for temp := 0.0; temp <= 60000; temp += 250 {
		c := Temperature(temp)
		for _, v := range []float64{c.R, c.G, c.B} {
			if v < 0 || v > 1 {
				t.Fatalf("Temperature(%v) component %v out of [0,1]", temp, v)
			}
		}
	}
}

func TestEmissiveScalesLinearLight(t *testing.T) {
	c := colorful.Color{R: 1, G: 0.5, B: 0}
	e := Emissive(c, 2)

	r, g, b := c.LinearRgb()
	if math.Abs(e.R-2*r) > 1e-12 || math.Abs(e.G-2*g) > 1e-12 || math.Abs(e.B-2*b) > 1e-12 {
		t.Errorf("Emissive = %v, want double of linear (%v, %v, %v)", e, r, g, b)
	}
}

func TestDisplayClamps(t *testing.T) {
	d := Display(colorful.Color{R: 4, G: -1, B: 0.5})
	if d.R != 1 {
		t.Errorf("expected red saturated at 1, got %v", d.R)
	}
	if d.G != 0 {
		t.Errorf("expected green clamped to 0, got %v", d.G)
	}
	if d.B <= 0.5 || d.B >= 1 {
		t.Errorf("expected sRGB-encoded blue above linear 0.5, got %v", d.B)
	}
}

func TestLuminanceOfWhite(t *testing.T) {
	if l := Luminance(colorful.Color{R: 1, G: 1, B: 1}); math.Abs(l-1) > 1e-9 {
		t.Errorf("expected luminance 1, got %v", l)
	}
}
