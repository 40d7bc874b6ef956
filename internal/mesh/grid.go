package mesh

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// LineGrid is a flat (Size+1)×(Size+1) lattice on the XZ plane with a
// line-list index buffer joining each vertex to its row and column
// neighbours. Topology is fixed; callers only rewrite Positions[i].Y.
type LineGrid struct {
	Size      int
	Spacing   float64
	Positions []r3.Vec
	Normals   []r3.Vec
	Indices   []uint32
}

// NewLineGrid builds the lattice centred on the origin.
func NewLineGrid(size int, spacing float64) *LineGrid {
	if size < 0 {
		size = 0
	}
	side := size + 1
	half := float64(size) / 2

	g := &LineGrid{
		Size:      size,
		Spacing:   spacing,
		Positions: make([]r3.Vec, 0, side*side),
		Normals:   make([]r3.Vec, side*side),
		Indices:   make([]uint32, 0, 4*size*side),
	}

	for i := 0; i <= size; i++ {
		for j := 0; j <= size; j++ {
			x := (float64(i) - half) * spacing
			z := (float64(j) - half) * spacing
			g.Positions = append(g.Positions, r3.Vec{X: x, Y: 0, Z: z})
		}
	}

	// along j
	for i := 0; i <= size; i++ {
		for j := 0; j < size; j++ {
			cur := i*side + j
			g.Indices = append(g.Indices, uint32(cur), uint32(cur+1))
		}
	}
	// along i
	for i := 0; i < size; i++ {
		for j := 0; j <= size; j++ {
			cur := i*side + j
			g.Indices = append(g.Indices, uint32(cur), uint32(cur+side))
		}
	}

	for i := range g.Normals {
		g.Normals[i] = r3.Vec{X: 0, Y: 1, Z: 0}
	}

	return g
}

func (g *LineGrid) VertexCount() int { return len(g.Positions) }
func (g *LineGrid) EdgeCount() int   { return len(g.Indices) / 2 }

// Edge returns the endpoints of edge e.
func (g *LineGrid) Edge(e int) (r3.Vec, r3.Vec) {
	return g.Positions[g.Indices[2*e]], g.Positions[g.Indices[2*e+1]]
}

// Radius is the planar distance of vertex i from the grid centre.
func (g *LineGrid) Radius(i int) float64 {
	p := g.Positions[i]
	return math.Hypot(p.X, p.Z)
}
