package sim

// History is an Observer that keeps the most recent frames' light curve
// and respawn counts for the live front-ends.
type History struct {
	Capacity   int
	Luminosity []float64
	Respawns   []float64
}

func NewHistory(capacity int) *History {
	return &History{
		Capacity:   capacity,
		Luminosity: make([]float64, 0, capacity),
		Respawns:   make([]float64, 0, capacity),
	}
}

func (h *History) OnFrame(_ *Simulation, f FrameStats) {
	h.Luminosity = h.push(h.Luminosity, f.Luminosity)
	h.Respawns = h.push(h.Respawns, float64(f.Respawns))
}

func (h *History) push(xs []float64, v float64) []float64 {
	xs = append(xs, v)
	if len(xs) > h.Capacity {
		xs = xs[len(xs)-h.Capacity:]
	}
	return xs
}

func (h *History) Clear() {
	h.Luminosity = h.Luminosity[:0]
	h.Respawns = h.Respawns[:0]
}
