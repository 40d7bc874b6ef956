package physics

import (
	"math"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/san-kum/blackhole/internal/colormap"
	"gonum.org/v1/gonum/spatial/r3"
)

// Particle is one accretion-disk element. Records live in a fixed-length
// slice for the lifetime of a simulation; respawn resets fields in place.
type Particle struct {
	OrbitalRadius   float64
	AngularVelocity float64
	Phase           float64
	Temperature     float64
	Velocity        r3.Vec
	LastStableOrbit float64

	Position r3.Vec
	Size     float64
	// Emissive is linear RGB and may exceed 1 under beaming.
	Emissive colorful.Color
}

// Star is a decorative background point outside the disk.
type Star struct {
	Position r3.Vec
	Radius   float64
}

type DiskConfig struct {
	Count           int
	LastStableOrbit float64
	OuterRadius     float64
	PhaseSpread     float64
}

func DefaultDiskConfig() DiskConfig {
	return DiskConfig{
		Count:           500,
		LastStableOrbit: 3.0,
		OuterRadius:     50.0,
		PhaseSpread:     0.1257,
	}
}

type StarConfig struct {
	Count         int
	MinDistance   float64
	DistanceRange float64
	Radius        float64
}

func DefaultStarConfig() StarConfig {
	return StarConfig{
		Count:         200,
		MinDistance:   100,
		DistanceRange: 200,
		Radius:        0.1,
	}
}

// SeedDisk places cfg.Count particles between the last stable orbit and the
// outer radius on a cubic ease-in, so most of them crowd the inner edge.
func SeedDisk(bh BlackHole, cfg DiskConfig, rng *rand.Rand) []Particle {
	particles := make([]Particle, cfg.Count)
	lso := cfg.LastStableOrbit

	for i := range particles {
		progress := 0.0
		if cfg.Count > 1 {
			progress = float64(i) / float64(cfg.Count-1)
		}
		r := lso + (cfg.OuterRadius-lso)*progress*progress*progress
		phase := float64(i) * cfg.PhaseSpread

		v := bh.CircularSpeed(r)
		temp := BaseTemperature(bh.Mass, r) * (0.5 + 0.5*rng.Float64())

		particles[i] = Particle{
			OrbitalRadius:   r,
			AngularVelocity: v / r,
			Phase:           phase,
			Temperature:     temp,
			Velocity:        tangent(v, phase),
			LastStableOrbit: lso,
			Position:        r3.Vec{X: r * math.Cos(phase), Y: 0, Z: r * math.Sin(phase)},
			Size:            0.01 * math.Min(math.Sqrt(r/lso), 3),
			Emissive:        colormap.Emissive(colormap.Temperature(temp), 1),
		}
	}

	return particles
}

// SeedStars scatters background stars on a spherical shell.
func SeedStars(cfg StarConfig, rng *rand.Rand) []Star {
	stars := make([]Star, cfg.Count)
	for i := range stars {
		d := cfg.MinDistance + rng.Float64()*cfg.DistanceRange
		theta := rng.Float64() * 2 * math.Pi
		phi := rng.Float64() * math.Pi

		stars[i] = Star{
			Position: r3.Vec{
				X: d * math.Sin(phi) * math.Cos(theta),
				Y: d * math.Cos(phi),
				Z: d * math.Sin(phi) * math.Sin(theta),
			},
			Radius: cfg.Radius,
		}
	}
	return stars
}

// tangent is the prograde circular-orbit velocity at the given phase.
func tangent(speed, phase float64) r3.Vec {
	return r3.Vec{X: -speed * math.Sin(phase), Y: 0, Z: speed * math.Cos(phase)}
}
