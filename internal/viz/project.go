package viz

import (
	"math"

	"github.com/san-kum/blackhole/internal/camera"
	"github.com/san-kum/blackhole/internal/colormap"
	"github.com/san-kum/blackhole/internal/sim"
	"gonum.org/v1/gonum/spatial/r3"
)

// Projector is a pinhole projection onto a canvas measured in dots.
type Projector struct {
	FOV  float64
	Near float64
}

func DefaultProjector() Projector {
	return Projector{FOV: math.Pi / 4, Near: 0.1}
}

func (p Projector) focal(sh int) float64 {
	return float64(sh) / 2 / math.Tan(p.FOV/2)
}

// Project maps a world point to dot coordinates. visible is false for
// points behind the near plane or off the canvas.
func (p Projector) Project(cam *camera.Controller, pt r3.Vec, sw, sh int) (x, y int, depth float64, visible bool) {
	v := cam.View(pt)
	if v.Z < p.Near {
		return 0, 0, v.Z, false
	}
	f := p.focal(sh)
	x = int(math.Round(float64(sw)/2 + v.X/v.Z*f))
	y = int(math.Round(float64(sh)/2 - v.Y/v.Z*f))
	return x, y, v.Z, x >= 0 && x < sw && y >= 0 && y < sh
}

// DrawScene paints grid, stars, horizon and disk onto c.
func DrawScene(c *Canvas, s *sim.Simulation, proj Projector) {
	c.Clear()
	cam := s.Camera
	if cam == nil {
		return
	}
	sw, sh := c.SubWidth(), c.SubHeight()
	theme := CurrentTheme

	for e := 0; e < s.Grid.EdgeCount(); e++ {
		a, b := s.Grid.Edge(e)
		x0, y0, _, v0 := proj.Project(cam, a, sw, sh)
		x1, y1, _, v1 := proj.Project(cam, b, sw, sh)
		if v0 && v1 {
			c.DrawLineColor(x0, y0, x1, y1, theme.Grid, 0.01)
		}
	}

	for _, st := range s.Stars {
		if x, y, _, ok := proj.Project(cam, st.Position, sw, sh); ok {
			c.SetColor(x, y, theme.Star, 0.05)
		}
	}

	hx, hy, hDepth, hVisible := proj.Project(cam, r3.Vec{}, sw, sh)
	hr := 0.0
	if hDepth > proj.Near {
		hr = s.BlackHole.SchwarzschildRadius / hDepth * proj.focal(sh)
		eraseDisc(c, hx, hy, hr)
		drawRim(c, hx, hy, hr, theme)
	}

	for _, p := range s.Particles {
		x, y, depth, ok := proj.Project(cam, p.Position, sw, sh)
		if !ok {
			continue
		}
		if hVisible && depth > hDepth && math.Hypot(float64(x-hx), float64(y-hy)) < hr {
			continue
		}
		c.SetColor(x, y, colormap.Display(p.Emissive), 1+colormap.Luminance(p.Emissive))
	}
}

func eraseDisc(c *Canvas, cx, cy int, r float64) {
	ir := int(math.Ceil(r))
	for dy := -ir; dy <= ir; dy++ {
		for dx := -ir; dx <= ir; dx++ {
			if float64(dx*dx+dy*dy) <= r*r {
				c.Unset(cx+dx, cy+dy)
			}
		}
	}
}

// drawRim outlines the horizon's shadow so it reads against an empty sky.
func drawRim(c *Canvas, cx, cy int, r float64, theme Theme) {
	if r < 1 {
		return
	}
	n := max(16, int(2*math.Pi*r))
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		x := cx + int(math.Round(r*math.Cos(a)))
		y := cy + int(math.Round(r*math.Sin(a)))
		c.SetColor(x, y, theme.Horizon, 0.02)
	}
}
