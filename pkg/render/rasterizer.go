package render

import (
	"math"

	"github.com/taigrr/minmatrix/pkg/math3d"
)

// Vertex is one entry of a vertex buffer: a model-space position and its
// colour attribute.
type Vertex struct {
	Position math3d.Vec3
	Color    Color
}

// MeshRenderer is an indexed triangle mesh the rasterizer can draw.
type MeshRenderer interface {
	VertexCount() int
	GetVertex(i int) (pos math3d.Vec3, c Color)
	Indices() []uint16
	GetBounds() (min, max math3d.Vec3)
}

// Stats counts the work done since the last ResetStats.
type Stats struct {
	Triangles    int // Triangles submitted
	Rejected     int // Triangles dropped for crossing behind the eye or being degenerate
	MeshesDrawn  int
	MeshesCulled int // Meshes whose bounds lay outside the frustum
}

// Rasterizer fills triangles into a framebuffer with a depth test, the way
// gl.drawArrays / gl.drawElements do with a position+colour shader that
// computes gl_Position = mvpMatrix * position.
type Rasterizer struct {
	fb      *Framebuffer
	zbuffer []float64 // Depth buffer (row-major)
	scratch []Vertex
	Stats   Stats
}

// NewRasterizer creates a rasterizer drawing into fb.
func NewRasterizer(fb *Framebuffer) *Rasterizer {
	r := &Rasterizer{fb: fb}
	r.Resize()
	return r
}

// Resize resizes the depth buffer to match the framebuffer.
func (r *Rasterizer) Resize() {
	if r.fb == nil {
		r.zbuffer = nil
		return
	}
	r.zbuffer = make([]float64, r.fb.Width*r.fb.Height)
	r.ClearDepth()
}

// Width returns the framebuffer width.
func (r *Rasterizer) Width() int {
	if r.fb == nil {
		return 0
	}
	return r.fb.Width
}

// Height returns the framebuffer height.
func (r *Rasterizer) Height() int {
	if r.fb == nil {
		return 0
	}
	return r.fb.Height
}

// ClearDepth resets the depth buffer (call before each frame).
func (r *Rasterizer) ClearDepth() {
	// Use copy-doubling for faster clearing
	n := len(r.zbuffer)
	if n == 0 {
		return
	}
	r.zbuffer[0] = math.MaxFloat64
	for i := 1; i < n; i *= 2 {
		copy(r.zbuffer[i:], r.zbuffer[:i])
	}
}

// ResetStats zeroes the counters (call once per frame).
func (r *Rasterizer) ResetStats() {
	r.Stats = Stats{}
}

// DrawArrays draws verts as a triangle list.
func (r *Rasterizer) DrawArrays(mvp *math3d.Mat4, verts []Vertex) {
	for i := 0; i+2 < len(verts); i += 3 {
		r.drawTriangle(mvp, &verts[i], &verts[i+1], &verts[i+2])
	}
}

// DrawElements draws the triangle list described by indices into verts.
// Out-of-range indices skip their triangle.
func (r *Rasterizer) DrawElements(mvp *math3d.Mat4, verts []Vertex, indices []uint16) {
	n := len(verts)
	for i := 0; i+2 < len(indices); i += 3 {
		i0, i1, i2 := int(indices[i]), int(indices[i+1]), int(indices[i+2])
		if i0 >= n || i1 >= n || i2 >= n {
			r.Stats.Rejected++
			continue
		}
		r.drawTriangle(mvp, &verts[i0], &verts[i1], &verts[i2])
	}
}

// DrawMesh draws an indexed mesh unless its bounds fall outside the
// frustum of mvp. Reports whether anything was submitted.
func (r *Rasterizer) DrawMesh(mvp *math3d.Mat4, mesh MeshRenderer) bool {
	minB, maxB := mesh.GetBounds()
	if !NewFrustumFromMatrix(mvp).IntersectAABB(NewAABB(minB, maxB)) {
		r.Stats.MeshesCulled++
		Logger().Debug("mesh culled", "min", minB, "max", maxB)
		return false
	}

	r.scratch = r.scratch[:0]
	for i := range mesh.VertexCount() {
		pos, c := mesh.GetVertex(i)
		r.scratch = append(r.scratch, Vertex{Position: pos, Color: c})
	}
	r.DrawElements(mvp, r.scratch, mesh.Indices())
	r.Stats.MeshesDrawn++
	return true
}

// screenVertex holds a vertex transformed to screen space.
type screenVertex struct {
	X, Y  float64 // Screen coordinates
	Z     float64 // NDC depth
	Color Color
}

func (r *Rasterizer) drawTriangle(mvp *math3d.Mat4, v0, v1, v2 *Vertex) {
	r.Stats.Triangles++

	var sv [3]screenVertex
	for i, v := range [3]*Vertex{v0, v1, v2} {
		clipPos := mvp.MulVec4(math3d.V4FromV3(v.Position, 1))

		// No near-plane clipping: a vertex at or behind the eye drops the
		// whole triangle.
		if clipPos.W <= 0 {
			r.Stats.Rejected++
			return
		}

		ndc := clipPos.PerspectiveDivide()
		sv[i] = screenVertex{
			X:     (ndc.X + 1) * 0.5 * float64(r.Width()),
			Y:     (1 - ndc.Y) * 0.5 * float64(r.Height()), // Y flipped
			Z:     ndc.Z,
			Color: v.Color,
		}
	}

	area := (sv[1].X-sv[0].X)*(sv[2].Y-sv[0].Y) - (sv[1].Y-sv[0].Y)*(sv[2].X-sv[0].X)
	if area == 0 || math.IsNaN(area) {
		r.Stats.Rejected++
		return
	}

	// Bounding box clamped to the viewport
	minX := int(math.Max(0, math.Floor(min3(sv[0].X, sv[1].X, sv[2].X))))
	maxX := int(math.Min(float64(r.Width()-1), math.Ceil(max3(sv[0].X, sv[1].X, sv[2].X))))
	minY := int(math.Max(0, math.Floor(min3(sv[0].Y, sv[1].Y, sv[2].Y))))
	maxY := int(math.Min(float64(r.Height()-1), math.Ceil(max3(sv[0].Y, sv[1].Y, sv[2].Y))))

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			px, py := float64(x)+0.5, float64(y)+0.5

			bc := barycentric(
				sv[0].X, sv[0].Y,
				sv[1].X, sv[1].Y,
				sv[2].X, sv[2].Y,
				px, py,
			)
			if bc.X < 0 || bc.Y < 0 || bc.Z < 0 {
				continue
			}

			z := bc.X*sv[0].Z + bc.Y*sv[1].Z + bc.Z*sv[2].Z
			if z < -1 || z > 1 {
				continue // Outside the near/far planes
			}

			idx := y*r.Width() + x
			if z >= r.zbuffer[idx] {
				continue
			}
			r.zbuffer[idx] = z
			r.fb.SetPixel(x, y, interpolateColor3(sv[0].Color, sv[1].Color, sv[2].Color, bc))
		}
	}
}

// barycentric calculates barycentric coordinates for point (px, py) in triangle.
func barycentric(x0, y0, x1, y1, x2, y2, px, py float64) math3d.Vec3 {
	v0x, v0y := x2-x0, y2-y0
	v1x, v1y := x1-x0, y1-y0
	v2x, v2y := px-x0, py-y0

	dot00 := v0x*v0x + v0y*v0y
	dot01 := v0x*v1x + v0y*v1y
	dot02 := v0x*v2x + v0y*v2y
	dot11 := v1x*v1x + v1y*v1y
	dot12 := v1x*v2x + v1y*v2y

	invDenom := 1.0 / (dot00*dot11 - dot01*dot01)
	u := (dot11*dot02 - dot01*dot12) * invDenom
	v := (dot00*dot12 - dot01*dot02) * invDenom

	return math3d.V3(1-u-v, v, u)
}

// interpolateColor3 interpolates between 3 colors using barycentric coords.
func interpolateColor3(c0, c1, c2 Color, bc math3d.Vec3) Color {
	mix := func(a, b, c uint8) uint8 {
		return uint8(math.Min(255, float64(a)*bc.X+float64(b)*bc.Y+float64(c)*bc.Z+0.5))
	}
	return Color{
		R: mix(c0.R, c1.R, c2.R),
		G: mix(c0.G, c1.G, c2.G),
		B: mix(c0.B, c1.B, c2.B),
		A: mix(c0.A, c1.A, c2.A),
	}
}

func min3(a, b, c float64) float64 {
	return math.Min(a, math.Min(b, c))
}

func max3(a, b, c float64) float64 {
	return math.Max(a, math.Max(b, c))
}
