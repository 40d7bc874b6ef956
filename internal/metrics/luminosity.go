package metrics

import (
	"math"

	"github.com/san-kum/blackhole/internal/sim"
)

type MeanLuminosity struct {
	name    string
	sum     float64
	samples int
}

func NewMeanLuminosity() *MeanLuminosity {
	return &MeanLuminosity{name: "mean_luminosity"}
}

func (m *MeanLuminosity) Name() string { return m.name }

func (m *MeanLuminosity) Observe(f sim.FrameStats) {
	m.sum += f.Luminosity
	m.samples++
}

func (m *MeanLuminosity) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.sum / float64(m.samples)
}

func (m *MeanLuminosity) Reset() {
	m.sum = 0
	m.samples = 0
}

// Variability is the coefficient of variation of the light curve,
// accumulated with Welford's update.
type Variability struct {
	name    string
	mean    float64
	m2      float64
	samples int
}

func NewVariability() *Variability {
	return &Variability{name: "variability"}
}

func (v *Variability) Name() string { return v.name }

func (v *Variability) Observe(f sim.FrameStats) {
	v.samples++
	delta := f.Luminosity - v.mean
	v.mean += delta / float64(v.samples)
	v.m2 += delta * (f.Luminosity - v.mean)
}

func (v *Variability) Value() float64 {
	if v.samples < 2 || v.mean == 0 {
		return 0
	}
	std := math.Sqrt(v.m2 / float64(v.samples-1))
	return std / math.Abs(v.mean)
}

func (v *Variability) Reset() {
	v.mean = 0
	v.m2 = 0
	v.samples = 0
}
