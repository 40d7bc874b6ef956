package gui

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/san-kum/blackhole/internal/colormap"
	"gonum.org/v1/gonum/spatial/r3"
)

const HelpText = "REALISTIC BLACK HOLE SIMULATION\n" +
	"Controls:\n" +
	"W/S - Move camera closer/farther\n" +
	"A/D - Rotate camera left/right\n" +
	"Q/E - Move camera up/down\n" +
	"SPACE - Toggle auto-rotation\n" +
	"P - Pause  R - Reset\n" +
	"ESC - Exit"

func (a *App) drawScene() {
	s := a.Sim

	g := s.Grid
	for e := 0; e < g.EdgeCount(); e++ {
		p0, p1 := g.Edge(e)
		rl.DrawLine3D(toVector3(p0), toVector3(p1), ColGrid)
	}

	rl.DrawSphere(rl.NewVector3(0, 0, 0), float32(s.BlackHole.SchwarzschildRadius), ColHorizon)

	for _, p := range s.Particles {
		col := toColor(colormap.Display(p.Emissive))
		rl.DrawSphereEx(toVector3(p.Position), float32(p.Size), 4, 6, col)
	}

	for _, st := range s.Stars {
		rl.DrawSphereEx(toVector3(st.Position), float32(st.Radius), 3, 4, ColStar)
	}
}

func toVector3(v r3.Vec) rl.Vector3 {
	return rl.NewVector3(float32(v.X), float32(v.Y), float32(v.Z))
}

func toColor(c colorful.Color) rl.Color {
	r, g, b := c.Clamped().RGB255()
	return rl.NewColor(r, g, b, 255)
}

// helpColor is the help overlay grey at wall time t, pulsing between
// 0.8·0.8 and 0.8·1.0.
func helpColor(t float64) rl.Color {
	pulse := 0.9 + 0.1*math.Sin(t*0.5)
	v := uint8(math.Round(204 * pulse))
	return rl.NewColor(v, v, v, 255)
}

func telemetryStrip(values []float64, x, y, w, h float32) []rl.Vector2 {
	minVal, maxVal := values[0], values[0]
	for _, v := range values {
		minVal = math.Min(minVal, v)
		maxVal = math.Max(maxVal, v)
	}
	if maxVal == minVal {
		maxVal = minVal + 1
	}

	points := make([]rl.Vector2, len(values))
	for i, val := range values {
		px := x + float32(i)/float32(len(values))*w
		norm := (val - minVal) / (maxVal - minVal)
		py := y + h - float32(norm)*h
		points[i] = rl.NewVector2(px, py)
	}
	return points
}
