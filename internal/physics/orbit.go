package physics

import (
	"math"
	"math/rand"
)

type OrbitConfig struct {
	// RespawnJitter bounds the uniform offset added to the last stable
	// orbit when a particle is recycled.
	RespawnJitter float64
	// CoRotating re-derives each particle's velocity from its current phase
	// every step instead of keeping the seeded vector.
	CoRotating bool
}

func DefaultOrbitConfig() OrbitConfig {
	return OrbitConfig{RespawnJitter: 20}
}

// AdvanceOrbits moves every particle one frame along its decaying orbit.
// elapsed is the simulation time including this frame. It returns the
// number of particles recycled during the step.
func AdvanceOrbits(bh BlackHole, particles []Particle, cfg OrbitConfig, elapsed, dt float64, rng *rand.Rand) int {
	rs := bh.SchwarzschildRadius
	respawned := 0

	for i := range particles {
		p := &particles[i]
		r := p.OrbitalRadius
		dilation := bh.TimeDilation(r)

		p.Phase += p.AngularVelocity * dilation * dt

		precession := bh.Spin * 0.05 * elapsed * dilation / r
		p.Position.X = r * math.Cos(p.Phase)
		p.Position.Y = 0.05 * math.Sin(p.Phase*5+precession) * (rs / r)
		p.Position.Z = r * math.Sin(p.Phase)

		if r > rs*RespawnThreshold {
			p.OrbitalRadius -= 0.01 * dt * dilation * math.Pow(rs/r, 2)
		}

		if p.OrbitalRadius < rs*RespawnThreshold {
			respawn(bh, p, cfg.RespawnJitter, rng)
			respawned++
		} else if cfg.CoRotating {
			p.Velocity = tangent(bh.CircularSpeed(p.OrbitalRadius), p.Phase)
		}
	}

	return respawned
}

// respawn recycles p just outside its last stable orbit. The slot, and
// whatever render handle the caller ties to it, is kept.
func respawn(bh BlackHole, p *Particle, jitter float64, rng *rand.Rand) {
	rs := bh.SchwarzschildRadius

	p.OrbitalRadius = p.LastStableOrbit + rng.Float64()*jitter
	p.AngularVelocity *= math.Sqrt(1 - rs/p.OrbitalRadius)
	p.Phase = rng.Float64() * 2 * math.Pi
	p.Velocity = tangent(bh.CircularSpeed(p.OrbitalRadius), p.Phase)
}
