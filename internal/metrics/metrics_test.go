package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/blackhole/internal/sim"
)

func TestMeanLuminosity(t *testing.T) {
	m := NewMeanLuminosity()
	if m.Value() != 0 {
		t.Error("expected zero before any frame")
	}

	m.Observe(sim.FrameStats{Luminosity: 2})
	m.Observe(sim.FrameStats{Luminosity: 4})
	if math.Abs(m.Value()-3) > 1e-12 {
		t.Errorf("expected mean 3, got %f", m.Value())
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("expected zero after reset")
	}
}

func TestVariability(t *testing.T) {
	v := NewVariability()
	for i := 0; i < 10; i++ {
		v.Observe(sim.FrameStats{Luminosity: 5})
	}
	if v.Value() != 0 {
		t.Errorf("expected zero variability for a flat curve, got %f", v.Value())
	}

	v.Reset()
	v.Observe(sim.FrameStats{Luminosity: 1})
	v.Observe(sim.FrameStats{Luminosity: 3})
	// mean 2, sample std sqrt(2)
	want := math.Sqrt(2) / 2
	if math.Abs(v.Value()-want) > 1e-12 {
		t.Errorf("expected %f, got %f", want, v.Value())
	}
}

func TestRespawnRate(t *testing.T) {
	r := NewRespawnRate()
	r.Observe(sim.FrameStats{Time: 1, Respawns: 0})
	r.Observe(sim.FrameStats{Time: 2, Respawns: 3})
	r.Observe(sim.FrameStats{Time: 3, Respawns: 1})

	if math.Abs(r.Value()-2) > 1e-12 {
		t.Errorf("expected 2 respawns per unit time, got %f", r.Value())
	}
}

func TestPeakAndInnerEdge(t *testing.T) {
	p := NewPeakTemperature()
	e := NewInnerEdge()
	frames := []sim.FrameStats{
		{MaxTemperature: 12000, MinRadius: 3.2},
		{MaxTemperature: 30000, MinRadius: 3.05},
		{MaxTemperature: 15000, MinRadius: 3.1},
	}
	for _, f := range frames {
		p.Observe(f)
		e.Observe(f)
	}

	if p.Value() != 30000 {
		t.Errorf("expected peak 30000, got %f", p.Value())
	}
	if e.Value() != 3.05 {
		t.Errorf("expected inner edge 3.05, got %f", e.Value())
	}
}

func TestDefaultNamesUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, m := range Default() {
		if seen[m.Name()] {
			t.Errorf("duplicate metric name %q", m.Name())
		}
		seen[m.Name()] = true
	}
}
