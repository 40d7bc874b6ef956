package sim

import (
	"math"
	"math/rand"

	"github.com/san-kum/blackhole/internal/camera"
	"github.com/san-kum/blackhole/internal/colormap"
	"github.com/san-kum/blackhole/internal/mesh"
	"github.com/san-kum/blackhole/internal/physics"
)

// Simulation is the shared context every frame pass reads and mutates.
// It is not safe for concurrent use.
type Simulation struct {
	BlackHole physics.BlackHole
	Particles []physics.Particle
	Stars     []physics.Star
	Grid      *mesh.LineGrid
	Camera    *camera.Controller

	Elapsed float64
	Frame   int

	setup     Setup
	rng       *rand.Rand
	metrics   []Metric
	observers []Observer
}

func New(setup Setup) *Simulation {
	s := &Simulation{setup: setup}
	s.Reset()
	return s
}

func (s *Simulation) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulation) AddObserver(o Observer) { s.observers = append(s.observers, o) }

func (s *Simulation) Setup() Setup { return s.setup }

// Reset reseeds the disk, stars, grid and camera from the setup it was built with.
func (s *Simulation) Reset() {
	setup := s.setup
	s.rng = rand.New(rand.NewSource(setup.Seed))

	s.BlackHole = setup.BlackHole
	s.Particles = physics.SeedDisk(setup.BlackHole, setup.Disk, s.rng)
	s.Stars = physics.SeedStars(setup.Stars, s.rng)
	s.Grid = mesh.NewLineGrid(setup.GridSize, setup.GridSpacing)
	physics.WarpGrid(s.BlackHole, s.Grid)

	s.Camera = nil
	if setup.Camera != nil {
		s.Camera = camera.New(*setup.Camera)
	}

	s.Elapsed = 0
	s.Frame = 0
	for _, m := range s.metrics {
		m.Reset()
	}
	for _, o := range s.observers {
		if c, ok := o.(interface{ Clear() }); ok {
			c.Clear()
		}
	}
}

// Step runs one frame: orbits, grid, temperatures, shading, camera.
func (s *Simulation) Step(dt float64, in camera.Input) FrameStats {
	s.Elapsed += dt
	s.Frame++

	respawns := physics.AdvanceOrbits(s.BlackHole, s.Particles, s.setup.Orbit, s.Elapsed, dt, s.rng)
	physics.WarpGrid(s.BlackHole, s.Grid)
	physics.UpdateTemperatures(s.BlackHole, s.Particles)

	if s.Camera != nil {
		physics.ApplyShading(s.setup.Shading, s.Particles, s.Camera.Position)
		s.Camera.Update(in, dt)
	}

	stats := s.stats(respawns)
	for _, m := range s.metrics {
		m.Observe(stats)
	}
	for _, o := range s.observers {
		o.OnFrame(s, stats)
	}
	return stats
}

func (s *Simulation) stats(respawns int) FrameStats {
	f := FrameStats{
		Frame:    s.Frame,
		Time:     s.Elapsed,
		Respawns: respawns,
	}
	if s.Camera != nil {
		f.Azimuth = s.Camera.Azimuth
	}
	if len(s.Particles) == 0 {
		return f
	}

	f.MinRadius = math.Inf(1)
	for _, p := range s.Particles {
		f.MeanRadius += p.OrbitalRadius
		f.MeanTemperature += p.Temperature
		f.MinRadius = math.Min(f.MinRadius, p.OrbitalRadius)
		f.MaxTemperature = math.Max(f.MaxTemperature, p.Temperature)
		f.Luminosity += colormap.Luminance(p.Emissive)
	}
	n := float64(len(s.Particles))
	f.MeanRadius /= n
	f.MeanTemperature /= n
	return f
}
