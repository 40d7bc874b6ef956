package optim

import (
	"context"
	"testing"

	"github.com/san-kum/blackhole/internal/config"
)

func TestCombinations(t *testing.T) {
	g := NewGridSearch([]string{"mass", "spin"}, [][]float64{{5, 10, 20}, {0, 0.5}})
	combos := g.Combinations()
	if len(combos) != 6 {
		t.Fatalf("expected 6 combinations, got %d", len(combos))
	}
	if combos[0]["mass"] != 5 || combos[0]["spin"] != 0 {
		t.Errorf("unexpected first combination %v", combos[0])
	}
	if combos[5]["mass"] != 20 || combos[5]["spin"] != 0.5 {
		t.Errorf("unexpected last combination %v", combos[5])
	}
}

func smallBase() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Disk.Particles = 40
	cfg.Stars.Count = 0
	cfg.Grid.Size = 4
	cfg.Dt = 0.1
	cfg.Duration = 0.5
	return cfg
}

func TestSearchRanksByMetric(t *testing.T) {
	g := NewGridSearch([]string{"mass"}, [][]float64{{5, 40, 10}})
	g.Maximize = true

	trials, err := g.Search(context.Background(), smallBase(), "peak_temperature")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(trials) != 3 {
		t.Fatalf("expected 3 trials, got %d", len(trials))
	}
	// disk temperature grows with mass
	if trials[0].Params["mass"] != 40 || trials[2].Params["mass"] != 5 {
		t.Errorf("unexpected ranking %+v", trials)
	}
}

func TestSearchErrors(t *testing.T) {
	g := NewGridSearch([]string{"mass"}, nil)
	if _, err := g.Search(context.Background(), smallBase(), "peak_temperature"); err == nil {
		t.Error("expected mismatch error")
	}

	g = NewGridSearch([]string{"mass"}, [][]float64{{10}})
	if _, err := g.Search(context.Background(), smallBase(), "nope"); err == nil {
		t.Error("expected unknown metric error")
	}

	g = NewGridSearch([]string{"bogus"}, [][]float64{{1}})
	if _, err := g.Search(context.Background(), smallBase(), "peak_temperature"); err == nil {
		t.Error("expected unknown param error")
	}
}
