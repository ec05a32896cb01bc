package scenes

import (
	"github.com/taigrr/minmatrix/pkg/math3d"
	"github.com/taigrr/minmatrix/pkg/models"
	"github.com/taigrr/minmatrix/pkg/render"
)

// Static draws one white triangle with an identity model matrix, seen
// from slightly above.
type Static struct {
	geo   geometry
	model math3d.Mat4
}

// NewStatic creates the scene. mesh may be nil.
func NewStatic(mesh *models.Mesh) *Static {
	tri := models.Triangle()
	tri.Recolor(render.ColorWhite)
	return &Static{
		geo:   newGeometry(tri, mesh),
		model: math3d.Identity(),
	}
}

func (s *Static) Name() string     { return "static" }
func (s *Static) Eye() math3d.Vec3 { return math3d.V3(0, 1, 3) }
func (s *Static) Update(int)       {}

func (s *Static) Draw(r *render.Rasterizer, base *math3d.Mat4) {
	s.geo.draw(r, base, &s.model)
}
