package render

import (
	"github.com/taigrr/minmatrix/pkg/math3d"
)

// Camera is a look-at camera with a perspective projection.
type Camera struct {
	Eye    math3d.Vec3 // Position in world space
	Center math3d.Vec3 // Point the camera looks at
	Up     math3d.Vec3 // Approximate up direction

	// Projection parameters
	FOV         float64 // Vertical field of view in degrees
	AspectRatio float64 // Width / Height
	Near        float64 // Near clipping plane
	Far         float64 // Far clipping plane

	// Cached matrices (computed on demand)
	viewMatrix     math3d.Mat4
	projMatrix     math3d.Mat4
	viewProjMatrix math3d.Mat4
	viewDirty      bool
	projDirty      bool
	viewProjDirty  bool
}

// NewCamera creates a camera at (0, 0, 2) looking at the origin with a 90°
// field of view over a 500x300 canvas.
func NewCamera() *Camera {
	return &Camera{
		Eye:           math3d.V3(0, 0, 2),
		Center:        math3d.Zero3(),
		Up:            math3d.Up(),
		FOV:           90,
		AspectRatio:   500.0 / 300.0,
		Near:          0.1,
		Far:           100,
		viewDirty:     true,
		projDirty:     true,
		viewProjDirty: true,
	}
}

// SetEye sets the camera position.
func (c *Camera) SetEye(eye math3d.Vec3) {
	c.Eye = eye
	c.invalidateView()
}

// LookAt sets the point the camera looks at.
func (c *Camera) LookAt(center math3d.Vec3) {
	c.Center = center
	c.invalidateView()
}

// SetFOV sets the vertical field of view (in degrees).
func (c *Camera) SetFOV(fov float64) {
	c.FOV = fov
	c.invalidateProjection()
}

// SetAspectRatio sets the aspect ratio.
func (c *Camera) SetAspectRatio(aspect float64) {
	c.AspectRatio = aspect
	c.invalidateProjection()
}

func (c *Camera) invalidateView() {
	c.viewDirty = true
	c.viewProjDirty = true
}

func (c *Camera) invalidateProjection() {
	c.projDirty = true
	c.viewProjDirty = true
}

// ViewMatrix returns the view matrix.
func (c *Camera) ViewMatrix() math3d.Mat4 {
	if c.viewDirty {
		c.viewMatrix.LookAt(c.Eye, c.Center, c.Up)
		c.viewDirty = false
	}
	return c.viewMatrix
}

// ProjectionMatrix returns the projection matrix.
func (c *Camera) ProjectionMatrix() math3d.Mat4 {
	if c.projDirty {
		c.projMatrix.Perspective(c.FOV, c.AspectRatio, c.Near, c.Far)
		c.projDirty = false
	}
	return c.projMatrix
}

// ViewProjectionMatrix returns projection * view, the base every model
// matrix is multiplied onto.
func (c *Camera) ViewProjectionMatrix() math3d.Mat4 {
	if c.viewProjDirty {
		view := c.ViewMatrix()
		proj := c.ProjectionMatrix()
		c.viewProjMatrix.Mul(&proj, &view)
		c.viewProjDirty = false
	}
	return c.viewProjMatrix
}
