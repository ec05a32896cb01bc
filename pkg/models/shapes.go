package models

import (
	"image/color"

	"github.com/taigrr/minmatrix/pkg/math3d"
)

var (
	red   = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	green = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	blue  = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// Triangle returns the tutorial triangle: apex at (0, 1, 0), base from
// (1, 0, 0) to (-1, 0, 0), with red, green and blue corners.
func Triangle() *Mesh {
	m := &Mesh{
		Name: "triangle",
		Vertices: []MeshVertex{
			{math3d.V3(0, 1, 0), red},
			{math3d.V3(1, 0, 0), green},
			{math3d.V3(-1, 0, 0), blue},
		},
		Elements: []uint16{0, 1, 2},
	}
	m.CalculateBounds()
	return m
}

// Quad returns four vertices shared by two indexed triangles, the
// diamond drawn with gl.drawElements.
func Quad() *Mesh {
	m := &Mesh{
		Name: "quad",
		Vertices: []MeshVertex{
			{math3d.V3(0, 1, 0), red},
			{math3d.V3(1, 0, 0), green},
			{math3d.V3(-1, 0, 0), blue},
			{math3d.V3(0, -1, 0), white},
		},
		Elements: []uint16{
			0, 1, 2,
			1, 2, 3,
		},
	}
	m.CalculateBounds()
	return m
}

// Recolor sets every vertex to c.
func (m *Mesh) Recolor(c color.RGBA) {
	for i := range m.Vertices {
		m.Vertices[i].Color = c
	}
}
