package physics

import (
	"math"

	"github.com/san-kum/blackhole/internal/mesh"
)

const (
	// WellCore is the planar radius inside which the well is flattened.
	WellCore = 0.1
	// WellBottom is the height used inside WellCore.
	WellBottom = -10.0
)

// WellDepth is the displayed height of the space-time sheet at planar
// distance r from the hole.
func WellDepth(rs, r float64) float64 {
	if r > WellCore {
		return -(rs / r) * math.Exp(1+rs/(4*r)) * 2
	}
	return WellBottom
}

// WarpGrid rewrites the height of every grid vertex. Nothing is carried
// over from the previous frame.
func WarpGrid(bh BlackHole, g *mesh.LineGrid) {
	if g == nil {
		return
	}
	for i := range g.Positions {
		g.Positions[i].Y = WellDepth(bh.SchwarzschildRadius, g.Radius(i))
	}
}
