package scenes

import (
	"github.com/taigrr/minmatrix/pkg/math3d"
	"github.com/taigrr/minmatrix/pkg/models"
	"github.com/taigrr/minmatrix/pkg/render"
)

// Spinner turns an indexed quad about the Y axis, one degree per frame.
type Spinner struct {
	mesh  *models.Mesh
	model math3d.Mat4
	mvp   math3d.Mat4
}

// NewSpinner creates the scene. mesh may be nil.
func NewSpinner(mesh *models.Mesh) *Spinner {
	if mesh == nil {
		mesh = models.Quad()
	}
	s := &Spinner{mesh: mesh}
	s.Update(0)
	return s
}

func (s *Spinner) Name() string     { return "spinner" }
func (s *Spinner) Eye() math3d.Vec3 { return math3d.V3(0, 0, 2) }

func (s *Spinner) Update(frame int) {
	s.model.SetIdentity()
	if _, err := s.model.Rotate(&s.model, frameAngle(frame), math3d.Up()); err != nil {
		render.Logger().Warn("spinner rotation skipped", "err", err)
	}
}

// Model returns the model matrix of the current frame.
func (s *Spinner) Model() math3d.Mat4 {
	return s.model
}

func (s *Spinner) Draw(r *render.Rasterizer, base *math3d.Mat4) {
	s.mvp.Mul(base, &s.model)
	r.DrawMesh(&s.mvp, s.mesh)
}
