package main

import (
	"math"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func TestParseSweepSpec(t *testing.T) {
	name, vals, err := parseSweepSpec("mass=5, 10,20")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if name != "mass" || len(vals) != 3 || vals[1] != 10 {
		t.Errorf("unexpected parse %s %v", name, vals)
	}

	for _, bad := range []string{"mass", "=1,2", "mass=", "mass=a,b"} {
		if _, _, err := parseSweepSpec(bad); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}

func TestSummarize(t *testing.T) {
	mean, std, lo, hi := summarize([]float64{1, 2, 3})
	if mean != 2 || lo != 1 || hi != 3 {
		t.Errorf("unexpected summary %f %f %f", mean, lo, hi)
	}
	if math.Abs(std-1) > 1e-12 {
		t.Errorf("expected std 1, got %f", std)
	}
}

func TestSnapshotRejectsTinySize(t *testing.T) {
	defer func(old int) { svgSize = old }(svgSize)
	svgSize = 10

	err := snapshot(&cobra.Command{}, nil)
	if err == nil || !strings.Contains(err.Error(), "--size") {
		t.Errorf("expected --size error, got %v", err)
	}
}

func TestLiveRejectsUnknownTheme(t *testing.T) {
	defer func(old string) { themeName = old }(themeName)
	themeName = "sepia"

	err := runLive(&cobra.Command{}, nil)
	if err == nil || !strings.Contains(err.Error(), "void") {
		t.Errorf("expected unknown theme error listing themes, got %v", err)
	}
}
