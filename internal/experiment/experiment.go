package experiment

import (
	"context"
	"fmt"

	"github.com/san-kum/blackhole/internal/config"
	"github.com/san-kum/blackhole/internal/metrics"
	"github.com/san-kum/blackhole/internal/sim"
	"github.com/san-kum/blackhole/internal/storage"
)

// Experiment is one headless run of a named configuration with the
// default metric set attached.
type Experiment struct {
	name string
	cfg  *config.Config
	sim  *sim.Simulation
}

func New(name string, cfg *config.Config) *Experiment {
	return &Experiment{name: name, cfg: cfg}
}

func (e *Experiment) Setup() error {
	if err := e.cfg.Validate(); err != nil {
		return fmt.Errorf("experiment %s: %w", e.name, err)
	}
	e.sim = sim.New(e.cfg.ToSetup())
	for _, m := range metrics.Default() {
		e.sim.AddMetric(m)
	}
	return nil
}

func (e *Experiment) Run(ctx context.Context) (*sim.Result, error) {
	if e.sim == nil {
		if err := e.Setup(); err != nil {
			return nil, err
		}
	}
	return e.sim.Run(ctx, e.cfg.RunConfig())
}

// Params describes the run for storage.
func (e *Experiment) Params() storage.RunParams {
	return storage.RunParams{
		Preset:    e.name,
		Seed:      e.cfg.Seed,
		Dt:        e.cfg.Dt,
		Duration:  e.cfg.Duration,
		Particles: e.cfg.Disk.Particles,
		Mass:      e.cfg.BlackHole.Mass,
		Spin:      e.cfg.BlackHole.Spin,
	}
}

// Simulation returns the underlying simulation, nil before Setup. After
// Run it holds the final frame's state.
func (e *Experiment) Simulation() *sim.Simulation {
	return e.sim
}
