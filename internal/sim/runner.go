package sim

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/san-kum/blackhole/internal/camera"
)

// Run drives the simulation headless for cfg.Duration with no user input;
// the camera only moves if auto-rotate is on.
func (s *Simulation) Run(ctx context.Context, cfg RunConfig) (*Result, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	steps := stepCount(cfg)
	result := &Result{
		Times:   make([]float64, 0, steps),
		Frames:  make([]FrameStats, 0, steps),
		Metrics: make(map[string]float64),
		Errors:  make([]error, 0),
	}

	err := s.RunWithCallback(ctx, cfg, func(f FrameStats) bool {
		result.StepsTaken++
		result.TotalRespawns += f.Respawns
		result.Times = append(result.Times, f.Time)
		result.Frames = append(result.Frames, f)
		return true
	})

	var simErr *SimulationError
	switch {
	case errors.As(err, &simErr):
		result.Errors = append(result.Errors, simErr)
	case err != nil:
		return result, err
	}

	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

// RunWithCallback steps stepCount(cfg) frames, stopping early when callback
// returns false. A frame that fails validation is not passed to callback.
func (s *Simulation) RunWithCallback(ctx context.Context, cfg RunConfig, callback func(FrameStats) bool) error {
	if err := validateConfig(cfg); err != nil {
		return err
	}

	steps := stepCount(cfg)
	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		f := s.Step(cfg.Dt, camera.Input{})
		if cfg.ValidateState && !f.IsValid() {
			return &SimulationError{Frame: f.Frame, Time: f.Time, Wrapped: ErrInvalidState}
		}
		if !callback(f) {
			return nil
		}
	}

	return nil
}

// stepCount is the number of frames a run of cfg takes, rounded so that
// durations which are whole multiples of dt are not cut short by float error.
func stepCount(cfg RunConfig) int {
	if cfg.Dt <= 0 {
		return 0
	}
	return int(math.Round(cfg.Duration / cfg.Dt))
}

func validateConfig(cfg RunConfig) error {
	if cfg.Dt <= 0 {
		return fmt.Errorf("%w: dt must be positive, got %f", ErrInvalidConfig, cfg.Dt)
	}
	if cfg.Duration <= 0 {
		return fmt.Errorf("%w: duration must be positive, got %f", ErrInvalidConfig, cfg.Duration)
	}
	return nil
}
