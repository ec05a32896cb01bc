// Package models provides the coloured, indexed meshes drawn by the demo
// scenes: the built-in shapes and geometry loaded from GLB files.
package models

import (
	"image/color"

	"github.com/taigrr/minmatrix/pkg/math3d"
)

// Mesh is an indexed triangle list with per-vertex colour, the shape of
// data a WebGL program uploads as position/colour VBOs plus an IBO.
type Mesh struct {
	Name     string
	Vertices []MeshVertex
	Elements []uint16 // Triangle list, three indices per face

	// Bounding box (calculated on load)
	BoundsMin math3d.Vec3
	BoundsMax math3d.Vec3
}

// MeshVertex holds all vertex attributes.
type MeshVertex struct {
	Position math3d.Vec3
	Color    color.RGBA
}

// NewMesh creates an empty mesh.
func NewMesh(name string) *Mesh {
	return &Mesh{Name: name}
}

// CalculateBounds computes the axis-aligned bounding box.
func (m *Mesh) CalculateBounds() {
	if len(m.Vertices) == 0 {
		m.BoundsMin, m.BoundsMax = math3d.Zero3(), math3d.Zero3()
		return
	}

	m.BoundsMin = m.Vertices[0].Position
	m.BoundsMax = m.Vertices[0].Position

	for _, v := range m.Vertices[1:] {
		m.BoundsMin = m.BoundsMin.Min(v.Position)
		m.BoundsMax = m.BoundsMax.Max(v.Position)
	}
}

// Center returns the center of the bounding box.
func (m *Mesh) Center() math3d.Vec3 {
	return m.BoundsMin.Add(m.BoundsMax).Scale(0.5)
}

// Size returns the dimensions of the bounding box.
func (m *Mesh) Size() math3d.Vec3 {
	return m.BoundsMax.Sub(m.BoundsMin)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Elements) / 3
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// Transform applies a transformation matrix to all vertex positions.
func (m *Mesh) Transform(mat *math3d.Mat4) {
	for i := range m.Vertices {
		m.Vertices[i].Position = mat.MulVec3(m.Vertices[i].Position)
	}
	m.CalculateBounds()
}

// Normalize recentres the mesh on the origin and scales it uniformly so
// its largest dimension spans two units, the extent of the built-in shapes.
// It returns the matrix that was applied.
func (m *Mesh) Normalize() math3d.Mat4 {
	size := m.Size()
	largest := max(size.X, size.Y, size.Z)
	s := 1.0
	if largest > 0 {
		s = 2 / largest
	}

	mat := math3d.Identity()
	mat.Scale(&mat, math3d.V3(s, s, s))
	mat.Translate(&mat, m.Center().Negate())
	m.Transform(&mat)
	return mat
}

// Clone creates a deep copy of the mesh.
func (m *Mesh) Clone() *Mesh {
	clone := &Mesh{
		Name:      m.Name,
		Vertices:  make([]MeshVertex, len(m.Vertices)),
		Elements:  make([]uint16, len(m.Elements)),
		BoundsMin: m.BoundsMin,
		BoundsMax: m.BoundsMax,
	}
	copy(clone.Vertices, m.Vertices)
	copy(clone.Elements, m.Elements)
	return clone
}

// GetVertex returns the position and colour of vertex i.
// Implements render.MeshRenderer interface.
func (m *Mesh) GetVertex(i int) (math3d.Vec3, color.RGBA) {
	v := m.Vertices[i]
	return v.Position, v.Color
}

// Indices returns the triangle list.
// Implements render.MeshRenderer interface.
func (m *Mesh) Indices() []uint16 {
	return m.Elements
}

// GetBounds returns the axis-aligned bounding box.
// Implements render.MeshRenderer interface.
func (m *Mesh) GetBounds() (min, max math3d.Vec3) {
	return m.BoundsMin, m.BoundsMax
}
