package physics

import "math"

const (
	// DilationFloor is used for radii inside 1.1·rs, where sqrt(1 − rs/r)
	// would collapse towards zero.
	DilationFloor = 0.1

	// RespawnThreshold is the fraction of rs below which a particle is recycled.
	RespawnThreshold = 1.01
)

// BlackHole is the immutable parameter set of the central mass.
type BlackHole struct {
	Mass                float64
	SchwarzschildRadius float64
	Spin                float64
}

func NewBlackHole(mass, rs, spin float64) BlackHole {
	return BlackHole{Mass: mass, SchwarzschildRadius: rs, Spin: spin}
}

// TimeDilation returns sqrt(1 − rs/r) outside 1.1·rs and DilationFloor inside.
func (bh BlackHole) TimeDilation(r float64) float64 {
	rs := bh.SchwarzschildRadius
	if r > rs*1.1 {
		return math.Sqrt(1 - rs/r)
	}
	return DilationFloor
}

// CircularSpeed is the Keplerian speed sqrt(M/r) at radius r.
func (bh BlackHole) CircularSpeed(r float64) float64 {
	return math.Sqrt(bh.Mass / r)
}
