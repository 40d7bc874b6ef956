package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	dataDir    string
	configFile string
	preset     string
	seed       int64
	dt         float64
	duration   float64
	particles  int

	// command-local
	outPath    string
	jsonOut    string
	themeName  string
	svgSize    int
	viewMode   bool
	numRuns    int
	sweepSpecs []string
	metricName string
	maximize   bool
	saveRuns   bool
)

// main registers the commands and opens the desktop window when no
// subcommand is given.
func main() {
	rootCmd := &cobra.Command{
		Use:          "blackhole",
		Short:        "black hole accretion disk simulator",
		SilenceUsage: true,
		RunE:         runGUI,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&dataDir, "data", ".blackhole", "data directory")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "default", "preset configuration")
	pf.Int64Var(&seed, "seed", 1, "random seed")
	pf.Float64Var(&dt, "dt", 0, "timestep (default from config)")
	pf.Float64Var(&duration, "time", 0, "duration in seconds (default from config)")
	pf.IntVar(&particles, "particles", 0, "disk particle count (default from config)")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "open the desktop window",
		RunE:  runGUI,
	}

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run with live terminal visualization",
		RunE:  runLive,
	}
	liveCmd.Flags().StringVar(&themeName, "theme", "void", "colour theme")

	menuCmd := &cobra.Command{
		Use:   "menu",
		Short: "pick and tune a preset in the terminal",
		RunE:  runMenu,
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run headless and store the frames",
		RunE:  runSimulation,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot run diagnostics",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "light curve frequency analysis",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run frames to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().StringVarP(&jsonOut, "out", "o", "", "write to file instead of stdout")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE:  listPresets,
	}

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "simulate, then write an SVG of the disk",
		RunE:  snapshot,
	}
	snapshotCmd.Flags().StringVarP(&outPath, "out", "o", "snapshot.svg", "output file")
	snapshotCmd.Flags().IntVar(&svgSize, "size", 800, "image size in pixels")
	snapshotCmd.Flags().BoolVar(&viewMode, "view", false, "render the camera view instead of the top-down map")

	ensembleCmd := &cobra.Command{
		Use:   "ensemble",
		Short: "run several seeds in parallel and summarise metrics",
		RunE:  runEnsemble,
	}
	ensembleCmd.Flags().IntVarP(&numRuns, "runs", "n", 8, "number of seeds")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "grid search over parameters",
		RunE:  runSweep,
	}
	sweepCmd.Flags().StringArrayVar(&sweepSpecs, "param", nil, "name=v1,v2,... (repeatable)")
	sweepCmd.Flags().StringVar(&metricName, "metric", "mean_luminosity", "metric to rank by")
	sweepCmd.Flags().BoolVar(&maximize, "max", false, "rank highest first")

	scenarioCmd := &cobra.Command{
		Use:   "scenario [file]",
		Short: "run a scripted scenario",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}
	scenarioCmd.Flags().BoolVar(&saveRuns, "save", true, "store steps marked save")

	initConfigCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write the resolved configuration to a yaml file",
		Args:  cobra.ExactArgs(1),
		RunE:  initConfig,
	}

	rootCmd.AddCommand(guiCmd, liveCmd, menuCmd, runCmd, listCmd, plotCmd, analyzeCmd,
		exportCSVCmd, exportJSONCmd, presetsCmd, snapshotCmd, ensembleCmd, sweepCmd,
		scenarioCmd, initConfigCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
