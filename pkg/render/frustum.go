package render

import (
	"github.com/taigrr/minmatrix/pkg/math3d"
)

// Plane represents a plane in 3D space using the equation: Ax + By + Cz + D = 0
// where (A, B, C) is the normal and D is the distance from origin.
type Plane struct {
	Normal math3d.Vec3
	D      float64
}

// Normalize scales the plane equation so the normal has unit length.
func (p *Plane) Normalize() {
	l := p.Normal.Len()
	if l == 0 {
		return
	}
	p.Normal = p.Normal.Scale(1.0 / l)
	p.D /= l
}

// DistanceToPoint returns the signed distance from the plane to a point.
// Positive = in front (same side as normal), negative = behind.
func (p Plane) DistanceToPoint(point math3d.Vec3) float64 {
	return p.Normal.Dot(point) + p.D
}

// Frustum holds the 6 clip planes of a projection, normals pointing inward.
// Planes are ordered: Left, Right, Bottom, Top, Near, Far.
type Frustum struct {
	Planes [6]Plane
}

// FrustumPlane indices.
const (
	FrustumLeft = iota
	FrustumRight
	FrustumBottom
	FrustumTop
	FrustumNear
	FrustumFar
)

// NewFrustumFromMatrix extracts the clip planes of m (Gribb/Hartmann).
// The planes live in whatever space m maps from: pass an MVP matrix to get
// model-space planes.
func NewFrustumFromMatrix(m *math3d.Mat4) Frustum {
	// Row i of a column-major matrix is m[i], m[i+4], m[i+8], m[i+12].
	row := func(i int) (math3d.Vec3, float64) {
		return math3d.V3(m[i], m[i+4], m[i+8]), m[i+12]
	}
	w, wd := row(3)

	var f Frustum
	for axis := range 3 {
		n, d := row(axis)
		f.Planes[axis*2] = Plane{Normal: w.Add(n), D: wd + d}
		f.Planes[axis*2+1] = Plane{Normal: w.Sub(n), D: wd - d}
	}
	for i := range f.Planes {
		f.Planes[i].Normalize()
	}
	return f
}

// AABB represents an axis-aligned bounding box.
type AABB struct {
	Min math3d.Vec3
	Max math3d.Vec3
}

// NewAABB creates an AABB from min and max points.
func NewAABB(min, max math3d.Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// Center returns the center of the AABB.
func (b AABB) Center() math3d.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Size returns the dimensions of the AABB.
func (b AABB) Size() math3d.Vec3 {
	return b.Max.Sub(b.Min)
}

// HalfSize returns half the dimensions of the AABB.
func (b AABB) HalfSize() math3d.Vec3 {
	return b.Size().Scale(0.5)
}

// ContainsPoint tests if a point is inside the AABB (bounds inclusive).
func (b AABB) ContainsPoint(p math3d.Vec3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// IntersectAABB reports whether any part of box may be inside the frustum.
// Uses the "positive vertex" test: the corner furthest along each plane
// normal must be in front of that plane.
func (f Frustum) IntersectAABB(box AABB) bool {
	for _, plane := range f.Planes {
		p := math3d.V3(
			selectComponent(plane.Normal.X >= 0, box.Max.X, box.Min.X),
			selectComponent(plane.Normal.Y >= 0, box.Max.Y, box.Min.Y),
			selectComponent(plane.Normal.Z >= 0, box.Max.Z, box.Min.Z),
		)
		if plane.DistanceToPoint(p) < 0 {
			return false
		}
	}
	return true
}

// ContainsPoint tests if a point is inside the frustum.
func (f Frustum) ContainsPoint(p math3d.Vec3) bool {
	for i := range f.Planes {
		if f.Planes[i].DistanceToPoint(p) < 0 {
			return false
		}
	}
	return true
}

func selectComponent(cond bool, a, b float64) float64 {
	if cond {
		return a
	}
	return b
}
