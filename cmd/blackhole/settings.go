package main

import (
	"fmt"

	"github.com/san-kum/blackhole/internal/config"
	"github.com/spf13/cobra"
)

// resolveConfig builds the effective config: preset, then config file,
// then any flag the user set explicitly.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.GetPreset(preset)
	if cfg == nil {
		return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
	}

	if configFile != "" {
		if err := config.Overlay(configFile, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("dt") {
		cfg.Dt = dt
	}
	if flags.Changed("time") {
		cfg.Duration = duration
	}
	if flags.Changed("particles") {
		cfg.Disk.Particles = particles
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
