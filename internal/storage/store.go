package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/blackhole/internal/sim"
)

const (
	metadataFile = "metadata.json"
	framesFile   = "frames.csv"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// RunParams describes how a stored run was produced.
type RunParams struct {
	Preset    string  `json:"preset"`
	Seed      int64   `json:"seed"`
	Dt        float64 `json:"dt"`
	Duration  float64 `json:"duration"`
	Particles int     `json:"particles"`
	Mass      float64 `json:"mass"`
	Spin      float64 `json:"spin"`
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Timestamp time.Time          `json:"timestamp"`
	Steps     int                `json:"steps"`
	Respawns  int                `json:"respawns"`
	Metrics   map[string]float64 `json:"metrics"`
	RunParams
}

// Save writes the run's metadata and frames under a fresh run directory.
// On failure the partial directory is removed.
func (s *Store) Save(params RunParams, result *sim.Result) (_ string, err error) {
	now := time.Now()
	runID := fmt.Sprintf("%s_%d", params.Preset, now.UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}
	defer func() {
		if err != nil {
			os.RemoveAll(runDir)
		}
	}()

	meta := RunMetadata{
		ID:        runID,
		Timestamp: now,
		Steps:     result.StepsTaken,
		Respawns:  result.TotalRespawns,
		Metrics:   result.Metrics,
		RunParams: params,
	}

	err = writeFile(filepath.Join(runDir, metadataFile), func(w io.Writer) error {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(meta)
	})
	if err != nil {
		return "", fmt.Errorf("write metadata: %w", err)
	}

	err = writeFile(filepath.Join(runDir, framesFile), func(w io.Writer) error {
		return WriteFrames(w, result.Frames)
	})
	if err != nil {
		return "", fmt.Errorf("write frames: %w", err)
	}

	return runID, nil
}

// writeFile creates path and fills it with write. The close error is
// returned when write itself succeeded.
func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadFrames reads back the per-frame diagnostics of a run.
func (s *Store) LoadFrames(runID string) ([]sim.FrameStats, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, framesFile))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(records) < 2 {
		return []sim.FrameStats{}, nil
	}

	frames := make([]sim.FrameStats, 0, len(records)-1)
	for _, record := range records[1:] {
		f, err := parseFrame(record)
		if err != nil {
			return nil, fmt.Errorf("run %s: %w", runID, err)
		}
		frames = append(frames, f)
	}

	return frames, nil
}

// FramesPath is where a run's CSV lives, for callers that copy it out.
func (s *Store) FramesPath(runID string) string {
	return filepath.Join(s.baseDir, runID, framesFile)
}

func parseFrame(record []string) (sim.FrameStats, error) {
	if len(record) != 2+len(sim.FrameColumns) {
		return sim.FrameStats{}, fmt.Errorf("expected %d fields, got %d", 2+len(sim.FrameColumns), len(record))
	}

	vals := make([]float64, len(record))
	for i, field := range record {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return sim.FrameStats{}, err
		}
		vals[i] = v
	}

	return sim.FrameStats{
		Frame:           int(vals[0]),
		Time:            vals[1],
		MeanRadius:      vals[2],
		MinRadius:       vals[3],
		MeanTemperature: vals[4],
		MaxTemperature:  vals[5],
		Luminosity:      vals[6],
		Respawns:        int(vals[7]),
		Azimuth:         vals[8],
	}, nil
}
