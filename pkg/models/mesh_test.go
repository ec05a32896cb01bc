package models

import (
	"math"
	"testing"

	"github.com/taigrr/minmatrix/pkg/math3d"
)

func TestTriangle(t *testing.T) {
	m := Triangle()

	if m.VertexCount() != 3 || m.TriangleCount() != 1 {
		t.Fatalf("got %d vertices, %d triangles", m.VertexCount(), m.TriangleCount())
	}
	if m.BoundsMin != math3d.V3(-1, 0, 0) || m.BoundsMax != math3d.V3(1, 1, 0) {
		t.Errorf("bounds = %v..%v, want (-1,0,0)..(1,1,0)", m.BoundsMin, m.BoundsMax)
	}
	if pos, c := m.GetVertex(0); pos != math3d.V3(0, 1, 0) || c != red {
		t.Errorf("vertex 0 = %v %v, want apex in red", pos, c)
	}
}

func TestQuad(t *testing.T) {
	m := Quad()

	if m.VertexCount() != 4 || m.TriangleCount() != 2 {
		t.Fatalf("got %d vertices, %d triangles", m.VertexCount(), m.TriangleCount())
	}
	// Vertices 1 and 2 are shared by both triangles.
	want := []uint16{0, 1, 2, 1, 2, 3}
	for i, idx := range m.Indices() {
		if idx != want[i] {
			t.Errorf("index %d = %d, want %d", i, idx, want[i])
		}
	}
	if s := m.Size(); s != math3d.V3(2, 2, 0) {
		t.Errorf("size = %v, want (2, 2, 0)", s)
	}
}

func TestCalculateBoundsEmpty(t *testing.T) {
	m := NewMesh("empty")
	m.CalculateBounds()
	if m.BoundsMin != math3d.Zero3() || m.BoundsMax != math3d.Zero3() {
		t.Errorf("empty bounds = %v..%v, want zero", m.BoundsMin, m.BoundsMax)
	}
}

func TestTransform(t *testing.T) {
	m := Triangle()
	mat := math3d.Identity()
	mat.Translate(&mat, math3d.V3(0, 0, -5))
	m.Transform(&mat)

	if m.BoundsMin.Z != -5 || m.BoundsMax.Z != -5 {
		t.Errorf("z bounds = %v..%v, want -5", m.BoundsMin.Z, m.BoundsMax.Z)
	}
}

func TestNormalize(t *testing.T) {
	m := NewMesh("box")
	m.Vertices = []MeshVertex{
		{Position: math3d.V3(10, 10, 10)},
		{Position: math3d.V3(14, 12, 11)},
		{Position: math3d.V3(12, 11, 10)},
	}
	m.Elements = []uint16{0, 1, 2}
	m.CalculateBounds()

	mat := m.Normalize()

	if c := m.Center(); c.Len() > 1e-9 {
		t.Errorf("center = %v, want origin", c)
	}
	s := m.Size()
	if math.Abs(s.X-2) > 1e-9 || math.Abs(s.Y-1) > 1e-9 || math.Abs(s.Z-0.5) > 1e-9 {
		t.Errorf("size = %v, want (2, 1, 0.5)", s)
	}

	// The returned matrix maps the old centre to the origin.
	if p := mat.MulVec3(math3d.V3(12, 11, 10.5)); p.Len() > 1e-9 {
		t.Errorf("old centre maps to %v, want origin", p)
	}
}

func TestNormalizeFlat(t *testing.T) {
	m := NewMesh("point")
	m.Vertices = []MeshVertex{{Position: math3d.V3(3, 3, 3)}}
	m.CalculateBounds()
	m.Normalize()

	if p, _ := m.GetVertex(0); p != math3d.Zero3() {
		t.Errorf("single point = %v, want origin", p)
	}
}

func TestClone(t *testing.T) {
	m := Quad()
	c := m.Clone()
	c.Vertices[0].Position = math3d.V3(9, 9, 9)
	c.Elements[0] = 3
	c.Recolor(white)

	if m.Vertices[0].Position != math3d.V3(0, 1, 0) || m.Elements[0] != 0 {
		t.Error("Clone shares storage with the original")
	}
	if m.Vertices[0].Color != red {
		t.Error("Recolor on the clone changed the original")
	}
	if c.Vertices[1].Color != white {
		t.Errorf("clone colour = %v, want white", c.Vertices[1].Color)
	}
}
