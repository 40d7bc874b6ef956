package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/blackhole/internal/colormap"
	"github.com/san-kum/blackhole/internal/sim"
	"github.com/san-kum/blackhole/internal/viz"
)

const svgHeader = `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`

// CanvasToSVG converts a Braille canvas to SVG format, keeping cell colours.
func CanvasToSVG(canvas *viz.Canvas, scale float64) string {
	if canvas == nil {
		return ""
	}

	width := int(float64(canvas.SubWidth()) * scale)
	height := int(float64(canvas.SubHeight()) * scale)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(svgHeader, width, height, width, height))

	// Braille dot-to-bit mapping
	pixelMap := [4][2]int{
		{0x01, 0x08},
		{0x02, 0x10},
		{0x04, 0x20},
		{0x40, 0x80},
	}
	dotRadius := scale * 0.4

	for row := 0; row < canvas.Height; row++ {
		for col := 0; col < canvas.Width; col++ {
			r := canvas.Grid[row][col]
			if r <= 0x2800 {
				continue
			}
			pattern := int(r - 0x2800)
			fill := "#00ff00"
			if c := canvas.Colors[row][col]; c.R+c.G+c.B > 0 {
				fill = c.Clamped().Hex()
			}

			baseX := float64(col) * scale * 2
			baseY := float64(row) * scale * 4
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&pixelMap[dy][dx] != 0 {
						cx := baseX + float64(dx)*scale + scale/2
						cy := baseY + float64(dy)*scale + scale/2
						sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>
`, cx, cy, dotRadius, fill))
					}
				}
			}
		}
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// SnapshotSVG draws the disk seen from above: grid lines coloured by well
// depth, the horizon as a black disc, and particles in their shaded colour.
func SnapshotSVG(s *sim.Simulation, size int) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(svgHeader, size, size, size, size))

	extent := s.Setup().Disk.OuterRadius * 1.1
	if g := s.Grid; g != nil {
		extent = math.Max(extent, float64(g.Size)*g.Spacing/2)
	}
	scale := float64(size) / (2 * extent)
	toPx := func(x, z float64) (float64, float64) {
		return float64(size)/2 + x*scale, float64(size)/2 + z*scale
	}

	sb.WriteString(`<g stroke-width="0.5">` + "\n")
	for e := 0; e < s.Grid.EdgeCount(); e++ {
		a, b := s.Grid.Edge(e)
		x0, y0 := toPx(a.X, a.Z)
		x1, y1 := toPx(b.X, b.Z)
		// deeper wells are drawn brighter
		depth := math.Min(1, -(a.Y+b.Y)/2/10)
		shade := int(60 + 140*depth)
		sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#%02x%02x%02x"/>
`, x0, y0, x1, y1, shade, shade, shade))
	}
	sb.WriteString("</g>\n")

	cx, cy := toPx(0, 0)
	sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.2f" fill="#000000" stroke="#333333"/>
`, cx, cy, s.BlackHole.SchwarzschildRadius*scale))

	for _, p := range s.Particles {
		x, y := toPx(p.Position.X, p.Position.Z)
		r := math.Max(0.8, p.Size*scale*10)
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.2f" fill="%s"/>
`, x, y, r, colormap.Display(p.Emissive).Hex()))
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// LightCurveSVG plots values against times as a single polyline.
func LightCurveSVG(times, values []float64, width, height int, strokeColor string) string {
	n := min(len(times), len(values))
	if n < 2 {
		return ""
	}

	minX, maxX := times[0], times[0]
	minY, maxY := values[0], values[0]
	for i := 0; i < n; i++ {
		minX, maxX = math.Min(minX, times[i]), math.Max(maxX, times[i])
		minY, maxY = math.Min(minY, values[i]), math.Max(maxY, values[i])
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minY -= rangeY * 0.1
	rangeY *= 1.2

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(svgHeader, width, height, width, height))
	sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M`, strokeColor))

	for i := 0; i < n; i++ {
		x := (times[i] - minX) / rangeX * float64(width)
		y := float64(height) - (values[i]-minY)/rangeY*float64(height)

		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
