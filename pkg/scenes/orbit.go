package scenes

import (
	"math"

	"github.com/taigrr/minmatrix/pkg/math3d"
	"github.com/taigrr/minmatrix/pkg/models"
	"github.com/taigrr/minmatrix/pkg/render"
)

// Orbit draws the same triangle three times per frame with different
// model matrices: one circling around (0, 1, 0), one spinning about Y at
// (1, -1, 0), and one pulsing in scale at (-1, -1, 0).
type Orbit struct {
	geo    geometry
	angle  float64
	models [3]math3d.Mat4
}

// NewOrbit creates the scene. mesh may be nil.
func NewOrbit(mesh *models.Mesh) *Orbit {
	o := &Orbit{geo: newGeometry(models.Triangle(), mesh)}
	o.Update(0)
	return o
}

func (o *Orbit) Name() string     { return "orbit" }
func (o *Orbit) Eye() math3d.Vec3 { return math3d.V3(0, 0, 2) }

// Update recomputes the three model matrices for frame.
func (o *Orbit) Update(frame int) {
	o.angle = frameAngle(frame)
	s, c := math.Sincos(o.angle)

	circling := &o.models[0]
	circling.SetIdentity()
	circling.Translate(circling, math3d.V3(c, s+1, 0))

	spinning := &o.models[1]
	spinning.SetIdentity()
	spinning.Translate(spinning, math3d.V3(1, -1, 0))
	if _, err := spinning.Rotate(spinning, o.angle, math3d.Up()); err != nil {
		render.Logger().Warn("orbit rotation skipped", "err", err)
	}

	pulse := s + 1
	pulsing := &o.models[2]
	pulsing.SetIdentity()
	pulsing.Translate(pulsing, math3d.V3(-1, -1, 0))
	pulsing.Scale(pulsing, math3d.V3(pulse, pulse, 0))
}

// Models returns the model matrices of the current frame.
func (o *Orbit) Models() [3]math3d.Mat4 {
	return o.models
}

func (o *Orbit) Draw(r *render.Rasterizer, base *math3d.Mat4) {
	for i := range o.models {
		o.geo.draw(r, base, &o.models[i])
	}
}
