package config

import "sort"

// Presets are edits applied on top of DefaultConfig.
var Presets = map[string]func(c *Config){
	"default": func(c *Config) {},
	"supermassive": func(c *Config) {
		c.BlackHole.Mass = 40
		c.BlackHole.SchwarzschildRadius = 2
		c.Disk.LastStableOrbit = 6
		c.Disk.OuterRadius = 60
		c.Grid.Size = 40
		c.Camera.Distance = 30
	},
	// light speed lowered until disk speeds give visible beaming
	"beaming": func(c *Config) {
		c.Shading.LightSpeed = 5
		c.Disk.CoRotating = true
	},
	"dense": func(c *Config) {
		c.Disk.Particles = 2000
		c.Disk.PhaseSpread = 0.0314
		c.Stars.Count = 400
	},
	"calm": func(c *Config) {
		c.BlackHole.Spin = 0
		c.Camera.AutoRotate = false
		c.Disk.RespawnJitter = 5
	},
}

// GetPreset returns a fresh config for the named preset, or nil.
func GetPreset(name string) *Config {
	apply, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	apply(cfg)
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
