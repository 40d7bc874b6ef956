package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/san-kum/blackhole/internal/camera"
	"github.com/san-kum/blackhole/internal/physics"
	"github.com/san-kum/blackhole/internal/sim"
	"gopkg.in/yaml.v3"
)

const (
	DefaultDt       = 1.0 / 60
	DefaultDuration = 30.0
	DefaultWidth    = 1280
	DefaultHeight   = 720
	DefaultTitle    = "Black Hole Simulation"
)

var ErrInvalid = errors.New("invalid config")

type Config struct {
	BlackHole BlackHoleConfig `yaml:"black_hole"`
	Disk      DiskConfig      `yaml:"disk"`
	Stars     StarsConfig     `yaml:"stars"`
	Grid      GridConfig      `yaml:"grid"`
	Camera    CameraConfig    `yaml:"camera"`
	Shading   ShadingConfig   `yaml:"shading"`
	Window    WindowConfig    `yaml:"window"`
	Seed      int64           `yaml:"seed"`
	Dt        float64         `yaml:"dt"`
	Duration  float64         `yaml:"duration"`
}

type BlackHoleConfig struct {
	Mass                float64 `yaml:"mass"`
	SchwarzschildRadius float64 `yaml:"schwarzschild_radius"`
	Spin                float64 `yaml:"spin"`
}

type DiskConfig struct {
	Particles       int     `yaml:"particles"`
	LastStableOrbit float64 `yaml:"last_stable_orbit"`
	OuterRadius     float64 `yaml:"outer_radius"`
	PhaseSpread     float64 `yaml:"phase_spread"`
	RespawnJitter   float64 `yaml:"respawn_jitter"`
	CoRotating      bool    `yaml:"co_rotating"`
}

type StarsConfig struct {
	Count         int     `yaml:"count"`
	MinDistance   float64 `yaml:"min_distance"`
	DistanceRange float64 `yaml:"distance_range"`
	Radius        float64 `yaml:"radius"`
}

type GridConfig struct {
	Size    int     `yaml:"size"`
	Spacing float64 `yaml:"spacing"`
}

type CameraConfig struct {
	Distance   float64 `yaml:"distance"`
	Azimuth    float64 `yaml:"azimuth"`
	Elevation  float64 `yaml:"elevation"`
	AutoRotate bool    `yaml:"auto_rotate"`
	ZoomRate   float64 `yaml:"zoom_rate"`
	OrbitRate  float64 `yaml:"orbit_rate"`
	AutoRate   float64 `yaml:"auto_rate"`
}

type ShadingConfig struct {
	LightSpeed      float64 `yaml:"light_speed"`
	LightSpeedScale float64 `yaml:"light_speed_scale"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

func DefaultConfig() *Config {
	disk := physics.DefaultDiskConfig()
	stars := physics.DefaultStarConfig()
	cam := camera.DefaultConfig()
	shading := physics.DefaultShadingConfig()

	return &Config{
		BlackHole: BlackHoleConfig{Mass: 10, SchwarzschildRadius: 1, Spin: 0.7},
		Disk: DiskConfig{
			Particles:       disk.Count,
			LastStableOrbit: disk.LastStableOrbit,
			OuterRadius:     disk.OuterRadius,
			PhaseSpread:     disk.PhaseSpread,
			RespawnJitter:   physics.DefaultOrbitConfig().RespawnJitter,
		},
		Stars: StarsConfig{
			Count:         stars.Count,
			MinDistance:   stars.MinDistance,
			DistanceRange: stars.DistanceRange,
			Radius:        stars.Radius,
		},
		Grid: GridConfig{Size: 30, Spacing: 1},
		Camera: CameraConfig{
			Distance:   cam.Distance,
			Azimuth:    cam.Azimuth,
			Elevation:  cam.Elevation,
			AutoRotate: cam.AutoRotate,
			ZoomRate:   cam.ZoomRate,
			OrbitRate:  cam.OrbitRate,
			AutoRate:   cam.AutoRate,
		},
		Shading: ShadingConfig{
			LightSpeed:      shading.LightSpeed,
			LightSpeedScale: shading.LightSpeedScale,
		},
		Window:   WindowConfig{Width: DefaultWidth, Height: DefaultHeight, Title: DefaultTitle},
		Seed:     1,
		Dt:       DefaultDt,
		Duration: DefaultDuration,
	}
}

func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := Overlay(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Overlay reads path on top of cfg; keys missing from the file keep
// their current values.
func Overlay(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

var camLimits = camera.DefaultConfig()

func (c *Config) Validate() error {
	switch {
	case c.BlackHole.Mass <= 0:
		return fmt.Errorf("%w: black_hole.mass must be positive, got %g", ErrInvalid, c.BlackHole.Mass)
	case c.BlackHole.SchwarzschildRadius <= 0:
		return fmt.Errorf("%w: black_hole.schwarzschild_radius must be positive, got %g", ErrInvalid, c.BlackHole.SchwarzschildRadius)
	case c.Disk.Particles < 0:
		return fmt.Errorf("%w: disk.particles must not be negative, got %d", ErrInvalid, c.Disk.Particles)
	case c.Disk.LastStableOrbit <= c.BlackHole.SchwarzschildRadius*physics.RespawnThreshold:
		return fmt.Errorf("%w: disk.last_stable_orbit %g must lie outside the horizon", ErrInvalid, c.Disk.LastStableOrbit)
	case c.Disk.OuterRadius < c.Disk.LastStableOrbit:
		return fmt.Errorf("%w: disk.outer_radius %g is inside last_stable_orbit %g", ErrInvalid, c.Disk.OuterRadius, c.Disk.LastStableOrbit)
	case c.Disk.RespawnJitter < 0:
		return fmt.Errorf("%w: disk.respawn_jitter must not be negative", ErrInvalid)
	case c.Stars.Count < 0:
		return fmt.Errorf("%w: stars.count must not be negative", ErrInvalid)
	case c.Grid.Size < 0 || c.Grid.Spacing <= 0:
		return fmt.Errorf("%w: grid needs size >= 0 and positive spacing", ErrInvalid)
	case c.Camera.Distance < camLimits.MinDistance:
		return fmt.Errorf("%w: camera.distance must be at least %g, got %g", ErrInvalid, camLimits.MinDistance, c.Camera.Distance)
	case math.Abs(c.Camera.Elevation) > camLimits.MaxElevation:
		return fmt.Errorf("%w: camera.elevation must lie in [-%g, %g], got %g", ErrInvalid, camLimits.MaxElevation, camLimits.MaxElevation, c.Camera.Elevation)
	case c.Shading.LightSpeed <= 0 || c.Shading.LightSpeedScale <= 0:
		return fmt.Errorf("%w: shading light speed and scale must be positive", ErrInvalid)
	case c.Dt <= 0:
		return fmt.Errorf("%w: dt must be positive, got %g", ErrInvalid, c.Dt)
	case c.Duration <= 0:
		return fmt.Errorf("%w: duration must be positive, got %g", ErrInvalid, c.Duration)
	}
	return nil
}

// ToSetup converts the file layout into simulation parameters.
func (c *Config) ToSetup() sim.Setup {
	cam := camera.DefaultConfig()
	cam.Distance = c.Camera.Distance
	cam.Azimuth = c.Camera.Azimuth
	cam.Elevation = c.Camera.Elevation
	cam.AutoRotate = c.Camera.AutoRotate
	cam.ZoomRate = c.Camera.ZoomRate
	cam.OrbitRate = c.Camera.OrbitRate
	cam.AutoRate = c.Camera.AutoRate

	return sim.Setup{
		BlackHole: physics.NewBlackHole(c.BlackHole.Mass, c.BlackHole.SchwarzschildRadius, c.BlackHole.Spin),
		Disk: physics.DiskConfig{
			Count:           c.Disk.Particles,
			LastStableOrbit: c.Disk.LastStableOrbit,
			OuterRadius:     c.Disk.OuterRadius,
			PhaseSpread:     c.Disk.PhaseSpread,
		},
		Stars: physics.StarConfig{
			Count:         c.Stars.Count,
			MinDistance:   c.Stars.MinDistance,
			DistanceRange: c.Stars.DistanceRange,
			Radius:        c.Stars.Radius,
		},
		Orbit: physics.OrbitConfig{
			RespawnJitter: c.Disk.RespawnJitter,
			CoRotating:    c.Disk.CoRotating,
		},
		Shading: physics.ShadingConfig{
			LightSpeed:      c.Shading.LightSpeed,
			LightSpeedScale: c.Shading.LightSpeedScale,
		},
		GridSize:    c.Grid.Size,
		GridSpacing: c.Grid.Spacing,
		Camera:      &cam,
		Seed:        c.Seed,
	}
}

func (c *Config) RunConfig() sim.RunConfig {
	return sim.RunConfig{Dt: c.Dt, Duration: c.Duration, ValidateState: true}
}
