package render

import (
	"math"

	"github.com/taigrr/minmatrix/pkg/math3d"
)

// DrawLines draws verts as a line list (gl.LINES): each consecutive pair is
// one segment. Segments share the depth buffer with triangles.
func (r *Rasterizer) DrawLines(mvp *math3d.Mat4, verts []Vertex) {
	for i := 0; i+1 < len(verts); i += 2 {
		r.drawLine(mvp, &verts[i], &verts[i+1])
	}
}

// DrawAxes draws the coordinate axes of the space mvp maps from.
func (r *Rasterizer) DrawAxes(mvp *math3d.Mat4, length float64) {
	origin := math3d.Zero3()
	r.DrawLines(mvp, []Vertex{
		{origin, ColorRed}, {math3d.V3(length, 0, 0), ColorRed}, // X axis
		{origin, ColorGreen}, {math3d.V3(0, length, 0), ColorGreen}, // Y axis
		{origin, ColorBlue}, {math3d.V3(0, 0, length), ColorBlue}, // Z axis
	})
}

// DrawGrid draws a grid on the XZ plane at y=0.
func (r *Rasterizer) DrawGrid(mvp *math3d.Mat4, size, step float64, c Color) {
	if step <= 0 {
		return
	}
	half := size / 2
	var verts []Vertex
	for x := -half; x <= half; x += step {
		verts = append(verts, Vertex{math3d.V3(x, 0, -half), c}, Vertex{math3d.V3(x, 0, half), c})
	}
	for z := -half; z <= half; z += step {
		verts = append(verts, Vertex{math3d.V3(-half, 0, z), c}, Vertex{math3d.V3(half, 0, z), c})
	}
	r.DrawLines(mvp, verts)
}

func (r *Rasterizer) drawLine(mvp *math3d.Mat4, v0, v1 *Vertex) {
	var sv [2]screenVertex
	for i, v := range [2]*Vertex{v0, v1} {
		clipPos := mvp.MulVec4(math3d.V4FromV3(v.Position, 1))
		// Simple clipping: a segment with an endpoint behind the eye is dropped
		if clipPos.W <= 0 {
			r.Stats.Rejected++
			return
		}
		ndc := clipPos.PerspectiveDivide()
		sv[i] = screenVertex{
			X:     (ndc.X + 1) * 0.5 * float64(r.Width()),
			Y:     (1 - ndc.Y) * 0.5 * float64(r.Height()),
			Z:     ndc.Z,
			Color: v.Color,
		}
	}

	dx, dy := sv[1].X-sv[0].X, sv[1].Y-sv[0].Y
	steps := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy))))
	if steps == 0 {
		steps = 1
	}
	// Cap the walk so a nearly-degenerate projection cannot stall the frame.
	steps = min(steps, 4*(r.Width()+r.Height()))

	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := int(math.Floor(sv[0].X + dx*t))
		y := int(math.Floor(sv[0].Y + dy*t))
		if x < 0 || y < 0 || x >= r.Width() || y >= r.Height() {
			continue
		}
		z := sv[0].Z + (sv[1].Z-sv[0].Z)*t
		if z < -1 || z > 1 {
			continue
		}
		idx := y*r.Width() + x
		if z > r.zbuffer[idx] {
			continue
		}
		r.zbuffer[idx] = z
		r.fb.SetPixel(x, y, lerpColor(sv[0].Color, sv[1].Color, t))
	}
}

// lerpColor linearly interpolates between two colors.
func lerpColor(a, b Color, t float64) Color {
	return Color{
		R: uint8(float64(a.R) + (float64(b.R)-float64(a.R))*t + 0.5),
		G: uint8(float64(a.G) + (float64(b.G)-float64(a.G))*t + 0.5),
		B: uint8(float64(a.B) + (float64(b.B)-float64(a.B))*t + 0.5),
		A: uint8(float64(a.A) + (float64(b.A)-float64(a.A))*t + 0.5),
	}
}
