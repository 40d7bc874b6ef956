package sim

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Ensemble runs independent copies of one setup with consecutive seeds.
// Each run owns its Simulation; nothing is shared between goroutines.
type Ensemble struct {
	setup     Setup
	numRuns   int
	seedStart int64
	metrics   func() []Metric
}

func NewEnsemble(setup Setup, numRuns int, seedStart int64, metrics func() []Metric) *Ensemble {
	return &Ensemble{setup: setup, numRuns: numRuns, seedStart: seedStart, metrics: metrics}
}

func (e *Ensemble) Run(ctx context.Context, cfg RunConfig) ([]*Result, error) {
	results := make([]*Result, e.numRuns)

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < e.numRuns; i++ {
		idx := i
		g.Go(func() error {
			setup := e.setup
			setup.Seed = e.seedStart + int64(idx)

			s := New(setup)
			if e.metrics != nil {
				for _, m := range e.metrics() {
					s.AddMetric(m)
				}
			}

			res, err := s.Run(ctx, cfg)
			if err != nil {
				return err
			}
			results[idx] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
