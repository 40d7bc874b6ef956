package physics

import (
	"math"

	"github.com/san-kum/blackhole/internal/colormap"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	SpeedOfLight = 2.998e8
	// MaxBeta keeps the Doppler denominator away from zero.
	MaxBeta = 0.9999
)

// ShadingConfig sets the fictional light-speed scale used for beaming.
// With the defaults, disk speeds give β of order 1e-8; lowering LightSpeed
// exaggerates the effect.
type ShadingConfig struct {
	LightSpeed      float64
	LightSpeedScale float64
}

func DefaultShadingConfig() ShadingConfig {
	return ShadingConfig{LightSpeed: SpeedOfLight, LightSpeedScale: 0.1}
}

// Beta is the clamped speed fraction for a speed v.
func (c ShadingConfig) Beta(v float64) float64 {
	beta := (v / c.LightSpeed) / c.LightSpeedScale
	return math.Max(0, math.Min(beta, MaxBeta))
}

// Doppler returns the Doppler factor, the shifted temperature and the
// beamed intensity for a particle seen from observer.
func Doppler(cfg ShadingConfig, position, velocity, observer r3.Vec, temperature float64) (factor, shifted, intensity float64) {
	observerDir := unit(r3.Sub(observer, position))
	velocityDir := unit(velocity)

	cosTheta := r3.Dot(velocityDir, observerDir)
	beta := cfg.Beta(r3.Norm(velocity))

	gamma := math.Sqrt(1 - beta*beta)
	factor = gamma / (1 - beta*cosTheta)

	shifted = temperature * factor
	beaming := math.Pow(factor, 3)
	intensity = 0.5 + math.Max(0.1, math.Min(beaming, 5.0))
	return factor, shifted, intensity
}

// ApplyShading overwrites every particle's emissive colour as seen from
// observer.
func ApplyShading(cfg ShadingConfig, particles []Particle, observer r3.Vec) {
	for i := range particles {
		p := &particles[i]
		_, shifted, intensity := Doppler(cfg, p.Position, p.Velocity, observer, p.Temperature)
		p.Emissive = colormap.Emissive(colormap.Temperature(shifted), intensity)
	}
}

// unit normalises v, mapping the zero vector to itself.
func unit(v r3.Vec) r3.Vec {
	n := r3.Norm(v)
	if n == 0 {
		return r3.Vec{}
	}
	return r3.Scale(1/n, v)
}
