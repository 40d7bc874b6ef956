package metrics

import (
	"math"

	"github.com/san-kum/blackhole/internal/sim"
)

// RespawnRate is recycled particles per unit of simulated time.
type RespawnRate struct {
	name     string
	respawns int
	start    float64
	last     float64
	samples  int
}

func NewRespawnRate() *RespawnRate {
	return &RespawnRate{name: "respawn_rate"}
}

func (r *RespawnRate) Name() string { return r.name }

func (r *RespawnRate) Observe(f sim.FrameStats) {
	if r.samples == 0 {
		r.start = f.Time
	}
	r.respawns += f.Respawns
	r.last = f.Time
	r.samples++
}

func (r *RespawnRate) Value() float64 {
	span := r.last - r.start
	if r.samples < 2 || span <= 0 {
		return 0
	}
	return float64(r.respawns) / span
}

func (r *RespawnRate) Reset() {
	r.respawns = 0
	r.start = 0
	r.last = 0
	r.samples = 0
}

type PeakTemperature struct {
	name string
	peak float64
}

func NewPeakTemperature() *PeakTemperature {
	return &PeakTemperature{name: "peak_temperature"}
}

func (p *PeakTemperature) Name() string { return p.name }

func (p *PeakTemperature) Observe(f sim.FrameStats) {
	p.peak = math.Max(p.peak, f.MaxTemperature)
}

func (p *PeakTemperature) Value() float64 { return p.peak }

func (p *PeakTemperature) Reset() { p.peak = 0 }

// InnerEdge tracks the smallest orbital radius seen over the run.
type InnerEdge struct {
	name string
	min  float64
	seen bool
}

func NewInnerEdge() *InnerEdge {
	return &InnerEdge{name: "inner_edge"}
}

func (e *InnerEdge) Name() string { return e.name }

func (e *InnerEdge) Observe(f sim.FrameStats) {
	if !e.seen || f.MinRadius < e.min {
		e.min = f.MinRadius
		e.seen = true
	}
}

func (e *InnerEdge) Value() float64 { return e.min }

func (e *InnerEdge) Reset() {
	e.min = 0
	e.seen = false
}

// Default is the set attached to every headless run.
func Default() []sim.Metric {
	return []sim.Metric{
		NewMeanLuminosity(),
		NewVariability(),
		NewRespawnRate(),
		NewPeakTemperature(),
		NewInnerEdge(),
	}
}
