package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/blackhole/internal/analysis"
	"github.com/san-kum/blackhole/internal/automation"
	"github.com/san-kum/blackhole/internal/config"
	"github.com/san-kum/blackhole/internal/experiment"
	"github.com/san-kum/blackhole/internal/export"
	"github.com/san-kum/blackhole/internal/gui"
	"github.com/san-kum/blackhole/internal/metrics"
	"github.com/san-kum/blackhole/internal/optim"
	"github.com/san-kum/blackhole/internal/sim"
	"github.com/san-kum/blackhole/internal/storage"
	"github.com/san-kum/blackhole/internal/viz"
	"github.com/spf13/cobra"
)

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	gui.Run(sim.New(cfg.ToSetup()), gui.Window{
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		Title:  cfg.Window.Title,
	})
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	if !viz.SetTheme(themeName) {
		return fmt.Errorf("unknown theme: %s (available: %v)", themeName, viz.ThemeNames())
	}
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	return viz.Run(sim.New(cfg.ToSetup()), cfg.Dt, preset)
}

func runMenu(cmd *cobra.Command, args []string) error {
	return viz.RunInteractive()
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	exp := experiment.New(preset, cfg)
	fmt.Printf("running %s for %.1fs (%d particles)...\n", preset, cfg.Duration, cfg.Disk.Particles)
	start := time.Now()

	result, err := exp.Run(context.Background())
	if err != nil {
		return err
	}
	for _, e := range result.Errors {
		fmt.Printf("warning: %v\n", e)
	}

	runID, err := st.Save(exp.Params(), result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", time.Since(start))
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("steps: %d  respawns: %d\n", result.StepsTaken, result.TotalRespawns)
	printMetrics(result.Metrics)
	return nil
}

func printMetrics(m map[string]float64) {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Println("\nmetrics:")
	for _, name := range names {
		fmt.Printf("  %s: %.6f\n", name, m[name])
	}
}

func listRuns(cmd *cobra.Command, args []string) error {
	runs, err := storage.New(dataDir).List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPRESET\tTIME\tDURATION\tDT\tPARTICLES\tRESPAWNS")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2fs\t%.4fs\t%d\t%d\n",
			run.ID,
			run.Preset,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Duration,
			run.Dt,
			run.Particles,
			run.Respawns,
		)
	}
	return w.Flush()
}

func loadRun(runID string) (*storage.RunMetadata, *sim.Result, error) {
	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return nil, nil, err
	}
	frames, err := st.LoadFrames(runID)
	if err != nil {
		return nil, nil, err
	}
	if len(frames) == 0 {
		return nil, nil, fmt.Errorf("run %s has no frames", runID)
	}

	result := &sim.Result{
		Frames:        frames,
		Times:         make([]float64, len(frames)),
		Metrics:       meta.Metrics,
		StepsTaken:    meta.Steps,
		TotalRespawns: meta.Respawns,
	}
	for i, f := range frames {
		result.Times[i] = f.Time
	}
	return meta, result, nil
}

var plotCaptions = map[string]string{
	"mean_radius":      "mean orbital radius",
	"min_radius":       "inner edge radius",
	"mean_temperature": "mean temperature (K)",
	"max_temperature":  "peak temperature (K)",
	"luminosity":       "luminosity",
	"respawns":         "respawns per frame",
}

func plotRun(cmd *cobra.Command, args []string) error {
	meta, result, err := loadRun(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("preset: %s\n", meta.Preset)
	fmt.Printf("samples: %d\n\n", len(result.Frames))

	for _, col := range sim.FrameColumns {
		caption, ok := plotCaptions[col]
		if !ok {
			continue
		}
		graph := asciigraph.Plot(result.Series(col),
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(caption),
		)
		fmt.Println(graph)
		fmt.Println()
	}
	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	meta, result, err := loadRun(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("frequency analysis: %s\n", meta.ID)
	fmt.Printf("preset: %s\n\n", meta.Preset)

	spec := analysis.PowerSpectrum(result.Series("luminosity"), meta.Dt)
	if len(spec.Power) < 2 {
		return fmt.Errorf("not enough samples")
	}

	plotData := spec.Power[1:max(len(spec.Power)/4+1, 2)]
	graph := asciigraph.Plot(plotData,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption("light curve power spectrum"),
	)
	fmt.Println(graph)
	fmt.Println()

	freq := spec.Dominant()
	fmt.Printf("dominant frequency: %.4f hz\n", freq)
	if freq > 0 {
		fmt.Printf("period: %.3f s\n", spec.Period())
	}
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	_, result, err := loadRun(args[0])
	if err != nil {
		return err
	}
	return storage.WriteFrames(os.Stdout, result.Frames)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	meta, result, err := loadRun(args[0])
	if err != nil {
		return err
	}
	if jsonOut != "" {
		return storage.ExportJSONFile(jsonOut, meta.RunParams, result)
	}
	return storage.ExportJSON(os.Stdout, meta.RunParams, result)
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tMASS\tSPIN\tPARTICLES\tLIGHT SPEED")
	for _, name := range config.ListPresets() {
		c := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%g\t%g\t%d\t%g\n", name, c.BlackHole.Mass, c.BlackHole.Spin, c.Disk.Particles, c.Shading.LightSpeed)
	}
	return w.Flush()
}

const minSnapshotSize = 64

func snapshot(cmd *cobra.Command, args []string) error {
	if svgSize < minSnapshotSize {
		return fmt.Errorf("--size must be at least %d, got %d", minSnapshotSize, svgSize)
	}
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	exp := experiment.New(preset, cfg)
	if _, err := exp.Run(context.Background()); err != nil {
		return err
	}
	s := exp.Simulation()

	var out string
	if viewMode {
		canvas := viz.NewCanvas(svgSize/8, svgSize/16)
		viz.DrawScene(canvas, s, viz.DefaultProjector())
		out = export.CanvasToSVG(canvas, 4)
	} else {
		out = export.SnapshotSVG(s, svgSize)
	}

	if err := os.WriteFile(outPath, []byte(out), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s (t=%.2fs)\n", outPath, s.Elapsed)
	return nil
}

func runEnsemble(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if numRuns < 1 {
		return fmt.Errorf("runs must be at least 1")
	}

	ens := sim.NewEnsemble(cfg.ToSetup(), numRuns, cfg.Seed, metrics.Default)
	fmt.Printf("running %d seeds from %d...\n", numRuns, cfg.Seed)
	results, err := ens.Run(context.Background(), cfg.RunConfig())
	if err != nil {
		return err
	}

	names := make([]string, 0)
	for name := range results[0].Metrics {
		names = append(names, name)
	}
	sort.Strings(names)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METRIC\tMEAN\tSTD\tMIN\tMAX")
	for _, name := range names {
		vals := make([]float64, len(results))
		for i, r := range results {
			vals[i] = r.Metrics[name]
		}
		mean, std, lo, hi := summarize(vals)
		fmt.Fprintf(w, "%s\t%.6g\t%.3g\t%.6g\t%.6g\n", name, mean, std, lo, hi)
	}
	return w.Flush()
}

func summarize(vals []float64) (mean, std, lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range vals {
		mean += v
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	mean /= float64(len(vals))
	for _, v := range vals {
		std += (v - mean) * (v - mean)
	}
	if len(vals) > 1 {
		std = math.Sqrt(std / float64(len(vals)-1))
	}
	return mean, std, lo, hi
}

// parseSweepSpec parses "name=v1,v2,...".
func parseSweepSpec(spec string) (string, []float64, error) {
	name, list, ok := strings.Cut(spec, "=")
	if !ok || name == "" || list == "" {
		return "", nil, fmt.Errorf("bad --param %q, want name=v1,v2", spec)
	}
	var vals []float64
	for _, field := range strings.Split(list, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return "", nil, fmt.Errorf("bad value in --param %q: %w", spec, err)
		}
		vals = append(vals, v)
	}
	return name, vals, nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if len(sweepSpecs) == 0 {
		return fmt.Errorf("at least one --param is required (known: %s)", strings.Join(experiment.ParamNames(), ", "))
	}

	names := make([]string, 0, len(sweepSpecs))
	ranges := make([][]float64, 0, len(sweepSpecs))
	for _, spec := range sweepSpecs {
		name, vals, err := parseSweepSpec(spec)
		if err != nil {
			return err
		}
		names = append(names, name)
		ranges = append(ranges, vals)
	}

	g := optim.NewGridSearch(names, ranges)
	g.Maximize = maximize
	trials, err := g.Search(context.Background(), cfg, metricName)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "RANK\t%s\t%s\n", strings.ToUpper(strings.Join(names, "\t")), strings.ToUpper(metricName))
	for i, t := range trials {
		row := make([]string, len(names))
		for j, n := range names {
			row[j] = strconv.FormatFloat(t.Params[n], 'g', -1, 64)
		}
		fmt.Fprintf(w, "%d\t%s\t%.6g\n", i+1, strings.Join(row, "\t"), t.Value)
	}
	return w.Flush()
}

func runScenario(cmd *cobra.Command, args []string) error {
	sc, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}

	var st *storage.Store
	if saveRuns {
		st = storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
	}

	results, err := automation.RunScenario(context.Background(), sc, st)
	if err != nil {
		return err
	}

	for i, r := range results {
		fmt.Printf("step %d: %d frames, %d respawns, mean luminosity %.4f\n",
			i+1, r.StepsTaken, r.TotalRespawns, r.Metrics["mean_luminosity"])
	}
	return nil
}

func initConfig(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if err := config.Save(args[0], cfg); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", args[0])
	return nil
}
