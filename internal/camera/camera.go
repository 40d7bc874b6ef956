package camera

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Input is the set of directional controls held during one frame.
// Toggle is edge-triggered: true only on the frame the key went down.
type Input struct {
	Closer, Farther bool
	Left, Right     bool
	Down, Up        bool
	Toggle          bool
}

type Config struct {
	Distance     float64
	Azimuth      float64
	Elevation    float64
	Target       r3.Vec
	AutoRotate   bool
	ZoomRate     float64
	OrbitRate    float64
	AutoRate     float64
	MinDistance  float64
	MaxElevation float64
}

func DefaultConfig() Config {
	return Config{
		Distance:     15,
		Azimuth:      0,
		Elevation:    0.3,
		AutoRotate:   true,
		ZoomRate:     5,
		OrbitRate:    1,
		AutoRate:     0.2,
		MinDistance:  2,
		MaxElevation: 1.5,
	}
}

var worldUp = r3.Vec{X: 0, Y: 1, Z: 0}

// Controller is a free-orbit camera on spherical coordinates around Target.
// Position and the look-at basis are derived state, refreshed only on
// frames where distance, azimuth or elevation moved.
type Controller struct {
	Distance   float64
	Azimuth    float64
	Elevation  float64
	Target     r3.Vec
	AutoRotate bool

	Position r3.Vec
	Forward  r3.Vec
	Right    r3.Vec
	Up       r3.Vec

	cfg Config
}

// New starts the controller at cfg's pose, pulled inside the distance and
// elevation limits.
func New(cfg Config) *Controller {
	c := &Controller{
		Distance:   math.Max(cfg.Distance, cfg.MinDistance),
		Azimuth:    cfg.Azimuth,
		Elevation:  clamp(cfg.Elevation, -cfg.MaxElevation, cfg.MaxElevation),
		Target:     cfg.Target,
		AutoRotate: cfg.AutoRotate,
		cfg:        cfg,
	}
	// resting pose until the first recompute
	c.lookAt(r3.Add(cfg.Target, r3.Vec{X: 0, Y: 8, Z: 12}))
	return c
}

// Update applies one frame of input and reports whether the pose was
// recomputed.
func (c *Controller) Update(in Input, dt float64) bool {
	dist, az, el := c.Distance, c.Azimuth, c.Elevation

	if in.Closer {
		c.Distance = math.Max(c.Distance-c.cfg.ZoomRate*dt, c.cfg.MinDistance)
	}
	if in.Farther {
		c.Distance += c.cfg.ZoomRate * dt
	}
	if in.Left {
		c.Azimuth -= c.cfg.OrbitRate * dt
	}
	if in.Right {
		c.Azimuth += c.cfg.OrbitRate * dt
	}
	if in.Down {
		c.Elevation = math.Max(c.Elevation-c.cfg.OrbitRate*dt, -c.cfg.MaxElevation)
	}
	if in.Up {
		c.Elevation = math.Min(c.Elevation+c.cfg.OrbitRate*dt, c.cfg.MaxElevation)
	}

	if in.Toggle {
		c.AutoRotate = !c.AutoRotate
	}
	if c.AutoRotate {
		c.Azimuth += c.cfg.AutoRate * dt
	}

	if c.Distance == dist && c.Azimuth == az && c.Elevation == el {
		return false
	}

	c.lookAt(r3.Add(c.Target, c.Offset()))
	return true
}

// Offset is the camera position relative to Target for the current
// spherical coordinates.
func (c *Controller) Offset() r3.Vec {
	cosEl := math.Cos(c.Elevation)
	return r3.Vec{
		X: c.Distance * cosEl * math.Cos(c.Azimuth),
		Y: c.Distance * math.Sin(c.Elevation),
		Z: c.Distance * cosEl * math.Sin(c.Azimuth),
	}
}

// View maps a world point into camera space: X right, Y up, Z depth
// along the view direction.
func (c *Controller) View(p r3.Vec) r3.Vec {
	d := r3.Sub(p, c.Position)
	return r3.Vec{X: r3.Dot(d, c.Right), Y: r3.Dot(d, c.Up), Z: r3.Dot(d, c.Forward)}
}

func (c *Controller) lookAt(pos r3.Vec) {
	c.Position = pos
	c.Forward = r3.Unit(r3.Sub(c.Target, pos))

	right := r3.Cross(c.Forward, worldUp)
	if r3.Norm(right) < 1e-9 {
		// looking straight down the up axis
		right = r3.Vec{X: 1}
	}
	c.Right = r3.Unit(right)
	c.Up = r3.Cross(c.Right, c.Forward)
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
