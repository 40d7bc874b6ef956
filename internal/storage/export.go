package storage

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/san-kum/blackhole/internal/sim"
)

type ExportData struct {
	RunParams
	Steps    int                `json:"steps"`
	Respawns int                `json:"respawns"`
	Times    []float64          `json:"times"`
	Frames   []sim.FrameStats   `json:"frames"`
	Metrics  map[string]float64 `json:"metrics"`
}

// WriteFrames writes frame diagnostics as CSV with a header row.
func WriteFrames(out io.Writer, frames []sim.FrameStats) error {
	w := csv.NewWriter(out)

	header := append([]string{"frame", "time"}, sim.FrameColumns...)
	if err := w.Write(header); err != nil {
		return err
	}

	for _, f := range frames {
		row := []string{strconv.Itoa(f.Frame), strconv.FormatFloat(f.Time, 'f', 6, 64)}
		for _, v := range f.Values() {
			row = append(row, strconv.FormatFloat(v, 'g', -1, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func ExportJSON(out io.Writer, params RunParams, result *sim.Result) error {
	data := ExportData{
		RunParams: params,
		Steps:     result.StepsTaken,
		Respawns:  result.TotalRespawns,
		Times:     result.Times,
		Frames:    result.Frames,
		Metrics:   result.Metrics,
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

func ExportJSONFile(path string, params RunParams, result *sim.Result) error {
	return writeFile(path, func(w io.Writer) error {
		return ExportJSON(w, params, result)
	})
}
