package mesh

import (
	"math"
	"testing"
)

func TestLineGridCounts(t *testing.T) {
	tests := []struct {
		size     int
		vertices int
		edges    int
	}{
		{0, 1, 0},
		{1, 4, 4},
		{2, 9, 12},
		{30, 961, 1860},
	}

	for _, tt := range tests {
		g := NewLineGrid(tt.size, 1.0)
		if g.VertexCount() != tt.vertices {
			t.Errorf("size %d: expected %d vertices, got %d", tt.size, tt.vertices, g.VertexCount())
		}
		if g.EdgeCount() != tt.edges {
			t.Errorf("size %d: expected %d edges, got %d", tt.size, tt.edges, g.EdgeCount())
		}
		if len(g.Normals) != tt.vertices {
			t.Errorf("size %d: expected %d normals, got %d", tt.size, tt.vertices, len(g.Normals))
		}
	}
}

func TestLineGridNoDiagonals(t *testing.T) {
	g := NewLineGrid(6, 0.5)
	for e := 0; e < g.EdgeCount(); e++ {
		a, b := g.Edge(e)
		dx := math.Abs(a.X - b.X)
		dz := math.Abs(a.Z - b.Z)
		if dx > 1e-9 && dz > 1e-9 {
			t.Fatalf("edge %d is diagonal: %v -> %v", e, a, b)
		}
		if math.Abs(dx+dz-g.Spacing) > 1e-9 {
			t.Fatalf("edge %d joins non-neighbours: %v -> %v", e, a, b)
		}
	}
}

func TestLineGridCentred(t *testing.T) {
	g := NewLineGrid(4, 2.0)

	first := g.Positions[0]
	last := g.Positions[len(g.Positions)-1]
	if first.X != -4 || first.Z != -4 {
		t.Errorf("expected first vertex at (-4, -4), got %v", first)
	}
	if last.X != 4 || last.Z != 4 {
		t.Errorf("expected last vertex at (4, 4), got %v", last)
	}

	centre := g.Positions[2*5+2]
	if g.Radius(2*5+2) != 0 {
		t.Errorf("expected centre vertex at origin, got %v", centre)
	}
}

func TestLineGridNormalsUp(t *testing.T) {
	g := NewLineGrid(3, 1.0)
	for i, n := range g.Normals {
		if n.X != 0 || n.Y != 1 || n.Z != 0 {
			t.Fatalf("normal %d = %v, want up", i, n)
		}
	}
}
