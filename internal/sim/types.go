package sim

import (
	"math"

	"github.com/san-kum/blackhole/internal/camera"
	"github.com/san-kum/blackhole/internal/physics"
)

// Setup is everything needed to build a Simulation.
type Setup struct {
	BlackHole   physics.BlackHole
	Disk        physics.DiskConfig
	Stars       physics.StarConfig
	Orbit       physics.OrbitConfig
	Shading     physics.ShadingConfig
	GridSize    int
	GridSpacing float64
	// Camera is nil for a simulation without an observer; shading is then
	// skipped every frame.
	Camera *camera.Config
	Seed   int64
}

func DefaultSetup() Setup {
	cam := camera.DefaultConfig()
	return Setup{
		BlackHole:   physics.NewBlackHole(10, 1, 0.7),
		Disk:        physics.DefaultDiskConfig(),
		Stars:       physics.DefaultStarConfig(),
		Orbit:       physics.DefaultOrbitConfig(),
		Shading:     physics.DefaultShadingConfig(),
		GridSize:    30,
		GridSpacing: 1.0,
		Camera:      &cam,
		Seed:        1,
	}
}

// FrameStats summarises the disk after one frame.
type FrameStats struct {
	Frame           int
	Time            float64
	MeanRadius      float64
	MinRadius       float64
	MeanTemperature float64
	MaxTemperature  float64
	Luminosity      float64
	Respawns        int
	Azimuth         float64
}

// FrameColumns names the values returned by FrameStats.Values.
var FrameColumns = []string{
	"mean_radius", "min_radius", "mean_temperature", "max_temperature",
	"luminosity", "respawns", "azimuth",
}

func (f FrameStats) Values() []float64 {
	return []float64{
		f.MeanRadius, f.MinRadius, f.MeanTemperature, f.MaxTemperature,
		f.Luminosity, float64(f.Respawns), f.Azimuth,
	}
}

func (f FrameStats) IsValid() bool {
	for _, v := range f.Values() {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

type Metric interface {
	Name() string
	Observe(f FrameStats)
	Value() float64
	Reset()
}

type Observer interface {
	OnFrame(s *Simulation, f FrameStats)
}

type RunConfig struct {
	Dt            float64
	Duration      float64
	ValidateState bool
}

type Result struct {
	Times         []float64
	Frames        []FrameStats
	Metrics       map[string]float64
	StepsTaken    int
	TotalRespawns int
	Errors        []error
}

// Series extracts one FrameColumns entry across all frames.
func (r *Result) Series(column string) []float64 {
	idx := -1
	for i, c := range FrameColumns {
		if c == column {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}
	out := make([]float64, len(r.Frames))
	for i, f := range r.Frames {
		out[i] = f.Values()[idx]
	}
	return out
}
