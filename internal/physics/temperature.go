package physics

import "math"

// BaseTemperature is the gravitational-potential term 10000·(M/r)^¼.
func BaseTemperature(mass, r float64) float64 {
	return 10000 * math.Pow(mass/r, 0.25)
}

// DiskTemperature adds magnetic-reconnection and tidal heating to the
// potential term.
func DiskTemperature(bh BlackHole, r float64) float64 {
	rs := bh.SchwarzschildRadius
	magnetic := 5000 * math.Pow(rs/r, 0.5)
	tidal := 2000 * math.Pow(rs/r, 1.5)
	return BaseTemperature(bh.Mass, r) + magnetic + tidal
}

// UpdateTemperatures overwrites each particle's temperature. No smoothing.
func UpdateTemperatures(bh BlackHole, particles []Particle) {
	for i := range particles {
		particles[i].Temperature = DiskTemperature(bh, particles[i].OrbitalRadius)
	}
}
