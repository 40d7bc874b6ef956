package experiment

import (
	"fmt"
	"sort"

	"github.com/san-kum/blackhole/internal/config"
)

// params maps flat parameter names, as used by sweeps and scenario files,
// onto config fields.
var params = map[string]func(c *config.Config, v float64){
	"mass":              func(c *config.Config, v float64) { c.BlackHole.Mass = v },
	"schwarzschild":     func(c *config.Config, v float64) { c.BlackHole.SchwarzschildRadius = v },
	"spin":              func(c *config.Config, v float64) { c.BlackHole.Spin = v },
	"particles":         func(c *config.Config, v float64) { c.Disk.Particles = int(v) },
	"last_stable_orbit": func(c *config.Config, v float64) { c.Disk.LastStableOrbit = v },
	"outer_radius":      func(c *config.Config, v float64) { c.Disk.OuterRadius = v },
	"respawn_jitter":    func(c *config.Config, v float64) { c.Disk.RespawnJitter = v },
	"light_speed":       func(c *config.Config, v float64) { c.Shading.LightSpeed = v },
	"light_speed_scale": func(c *config.Config, v float64) { c.Shading.LightSpeedScale = v },
	"camera_distance":   func(c *config.Config, v float64) { c.Camera.Distance = v },
	"camera_elevation":  func(c *config.Config, v float64) { c.Camera.Elevation = v },
	"seed":              func(c *config.Config, v float64) { c.Seed = int64(v) },
}

func SetParam(c *config.Config, name string, value float64) error {
	set, ok := params[name]
	if !ok {
		return fmt.Errorf("unknown param: %s", name)
	}
	set(c, value)
	return nil
}

func ApplyParams(c *config.Config, values map[string]float64) error {
	for name, v := range values {
		if err := SetParam(c, name, v); err != nil {
			return err
		}
	}
	return nil
}

func ParamNames() []string {
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
