package analysis

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

type Spectrum struct {
	Freqs []float64
	Power []float64
}

// PowerSpectrum returns the one-sided power of samples taken every dt,
// with the mean removed first so the DC bin does not swamp the rest.
func PowerSpectrum(samples []float64, dt float64) Spectrum {
	n := len(samples)
	if n < 2 || dt <= 0 {
		return Spectrum{}
	}

	centred := Detrend(samples)
	coeffs := fft.FFTReal(centred)

	bins := n/2 + 1
	spec := Spectrum{
		Freqs: make([]float64, bins),
		Power: make([]float64, bins),
	}
	for k := 0; k < bins; k++ {
		spec.Freqs[k] = float64(k) / (float64(n) * dt)
		a := cmplx.Abs(coeffs[k])
		spec.Power[k] = a * a / float64(n)
	}
	return spec
}

// Dominant is the frequency of the strongest non-DC bin, or 0 if the
// curve is flat.
func (s Spectrum) Dominant() float64 {
	best, bestPower := 0, 0.0
	for k := 1; k < len(s.Power); k++ {
		if s.Power[k] > bestPower {
			best, bestPower = k, s.Power[k]
		}
	}
	if best == 0 {
		return 0
	}
	return s.Freqs[best]
}

// Period is 1/Dominant, or +Inf for a flat curve.
func (s Spectrum) Period() float64 {
	f := s.Dominant()
	if f == 0 {
		return math.Inf(1)
	}
	return 1 / f
}

func Detrend(samples []float64) []float64 {
	mean := 0.0
	for _, v := range samples {
		mean += v
	}
	if len(samples) > 0 {
		mean /= float64(len(samples))
	}

	out := make([]float64, len(samples))
	for i, v := range samples {
		out[i] = v - mean
	}
	return out
}
