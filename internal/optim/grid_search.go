package optim

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"sort"

	"github.com/san-kum/blackhole/internal/config"
	"github.com/san-kum/blackhole/internal/experiment"
	"golang.org/x/sync/errgroup"
)

// GridSearch evaluates every combination of parameter values on copies of
// a base config and ranks them by one metric.
type GridSearch struct {
	paramNames []string
	ranges     [][]float64
	Maximize   bool
	Workers    int
}

type Trial struct {
	Params map[string]float64
	Value  float64
}

func NewGridSearch(params []string, ranges [][]float64) *GridSearch {
	return &GridSearch{paramNames: params, ranges: ranges, Workers: runtime.NumCPU()}
}

// Combinations enumerates the grid in row-major order.
func (g *GridSearch) Combinations() []map[string]float64 {
	combos := []map[string]float64{{}}
	for i, name := range g.paramNames {
		next := make([]map[string]float64, 0, len(combos)*len(g.ranges[i]))
		for _, c := range combos {
			for _, v := range g.ranges[i] {
				m := make(map[string]float64, len(c)+1)
				for k, x := range c {
					m[k] = x
				}
				m[name] = v
				next = append(next, m)
			}
		}
		combos = next
	}
	return combos
}

// Search runs all trials and returns them sorted best first.
func (g *GridSearch) Search(ctx context.Context, base *config.Config, metricName string) ([]Trial, error) {
	if len(g.paramNames) != len(g.ranges) {
		return nil, fmt.Errorf("optim: %d params but %d ranges", len(g.paramNames), len(g.ranges))
	}

	combos := g.Combinations()
	trials := make([]Trial, len(combos))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(max(1, g.Workers))
	for i, params := range combos {
		eg.Go(func() error {
			cfg := *base
			if err := experiment.ApplyParams(&cfg, params); err != nil {
				return err
			}
			res, err := experiment.New("sweep", &cfg).Run(ctx)
			if err != nil {
				return fmt.Errorf("trial %v: %w", params, err)
			}
			val, ok := res.Metrics[metricName]
			if !ok {
				return fmt.Errorf("optim: unknown metric %q", metricName)
			}
			trials[i] = Trial{Params: params, Value: val}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(trials, func(i, j int) bool {
		a, b := trials[i].Value, trials[j].Value
		if math.IsNaN(b) {
			return !math.IsNaN(a)
		}
		if g.Maximize {
			return a > b
		}
		return a < b
	})
	return trials, nil
}
