package storage

import (
	"bytes"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/blackhole/internal/sim"
)

func testResult() *sim.Result {
	return &sim.Result{
		Frames: []sim.FrameStats{
			{Frame: 1, Time: 0.1, MeanRadius: 20, MinRadius: 3, MeanTemperature: 9000, MaxTemperature: 31000, Luminosity: 12.5, Respawns: 0, Azimuth: 0.02},
			{Frame: 2, Time: 0.2, MeanRadius: 19.9, MinRadius: 3, MeanTemperature: 9010, MaxTemperature: 31010, Luminosity: 12.25, Respawns: 2, Azimuth: 0.04},
		},
		Times:         []float64{0.1, 0.2},
		Metrics:       map[string]float64{"mean_luminosity": 12.375},
		StepsTaken:    2,
		TotalRespawns: 2,
	}
}

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runID, err := st.Save(RunParams{Preset: "default", Seed: 42, Dt: 0.1, Duration: 0.2, Particles: 500}, testResult())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if !strings.HasPrefix(runID, "default_") {
		t.Errorf("unexpected run id %q", runID)
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.Seed != 42 || meta.Preset != "default" || meta.Steps != 2 || meta.Respawns != 2 {
		t.Errorf("unexpected metadata %+v", meta)
	}
	if meta.Metrics["mean_luminosity"] != 12.375 {
		t.Errorf("expected mean_luminosity 12.375, got %f", meta.Metrics["mean_luminosity"])
	}

	frames, err := st.LoadFrames(runID)
	if err != nil {
		t.Fatalf("load frames failed: %v", err)
	}
	if len(frames) != 2 {
		t.Fatalf("expected 2 frames, got %d", len(frames))
	}
	if frames[1] != testResult().Frames[1] {
		t.Errorf("frame mismatch: %+v", frames[1])
	}
}

func TestStoreList(t *testing.T) {
	st := New(t.TempDir())

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected 0 runs, got %d", len(runs))
	}

	if err := st.Init(); err != nil {
		t.Fatal(err)
	}
	if _, err := st.Save(RunParams{Preset: "calm"}, testResult()); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if _, err := st.Save(RunParams{Preset: "dense"}, testResult()); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].Preset != "calm" {
		t.Errorf("expected runs in save order, got %s first", runs[0].Preset)
	}
}

func TestStoreFileStructure(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	runID, err := st.Save(RunParams{Preset: "default"}, testResult())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	for _, name := range []string{"metadata.json", "frames.csv"} {
		if _, err := os.Stat(filepath.Join(tmpDir, runID, name)); os.IsNotExist(err) {
			t.Errorf("%s not created", name)
		}
	}
	if st.FramesPath(runID) != filepath.Join(tmpDir, runID, "frames.csv") {
		t.Error("unexpected frames path")
	}
}

func TestExportJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := ExportJSON(&buf, RunParams{Preset: "beaming", Seed: 7}, testResult()); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	var data ExportData
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if data.Preset != "beaming" || data.Seed != 7 || data.Steps != 2 || len(data.Frames) != 2 {
		t.Errorf("unexpected export %+v", data)
	}
}

func TestWriteFramesHeader(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteFrames(&buf, nil); err != nil {
		t.Fatal(err)
	}
	want := "frame,time," + strings.Join(sim.FrameColumns, ",") + "\n"
	if buf.String() != want {
		t.Errorf("header = %q, want %q", buf.String(), want)
	}
}

func TestStoreSaveFailureLeavesNoRun(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	res := testResult()
	res.Metrics = map[string]float64{"variability": math.NaN()}
	if _, err := st.Save(RunParams{Preset: "default"}, res); err == nil {
		t.Fatal("expected NaN metric to fail the metadata write")
	}

	entries, err := os.ReadDir(tmpDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("expected partial run removed, found %d entries", len(entries))
	}
}

func TestExportJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.json")
	if err := ExportJSONFile(path, RunParams{Preset: "calm"}, testResult()); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var data ExportData
	if err := json.Unmarshal(raw, &data); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if data.Preset != "calm" || len(data.Frames) != 2 {
		t.Errorf("unexpected export %+v", data)
	}

	missing := filepath.Join(t.TempDir(), "no", "such", "dir", "run.json")
	if err := ExportJSONFile(missing, RunParams{}, testResult()); err == nil {
		t.Error("expected error for unwritable path")
	}
}
