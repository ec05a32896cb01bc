package scenes

import (
	"github.com/taigrr/minmatrix/pkg/math3d"
	"github.com/taigrr/minmatrix/pkg/render"
)

// GridColor is the colour of the ground grid overlay.
var GridColor = render.RGB(64, 64, 64)

// Player steps a scene frame by frame into a rasterizer. It owns the
// camera and the user spin, so the terminal loop and headless snapshots
// render identical frames.
type Player struct {
	Scene      Scene
	Camera     *render.Camera
	Spin       *Spin
	Background render.Color
	Axes       bool // Overlay the world axes
	Grid       bool // Overlay the XZ ground grid

	frame int
	base  math3d.Mat4
}

// NewPlayer creates a player for s with the camera at s.Eye().
func NewPlayer(s Scene, fps int) *Player {
	camera := render.NewCamera()
	camera.SetEye(s.Eye())
	return &Player{
		Scene:      s,
		Camera:     camera,
		Spin:       NewSpin(fps),
		Background: render.ColorBlack,
	}
}

// Frame returns the number of frames rendered so far.
func (p *Player) Frame() int {
	return p.frame
}

// Resize matches the projection to a new framebuffer size.
func (p *Player) Resize(width, height int) {
	if width > 0 && height > 0 {
		p.Camera.SetAspectRatio(float64(width) / float64(height))
	}
}

// Step clears the framebuffer behind r, advances the animation and draws
// one frame.
func (p *Player) Step(fb *render.Framebuffer, r *render.Rasterizer) {
	p.frame++
	p.Scene.Update(p.frame)
	p.Spin.Update()

	fb.Clear(p.Background)
	r.ClearDepth()
	r.ResetStats()

	viewProj := p.Camera.ViewProjectionMatrix()
	if _, err := p.Spin.Apply(&p.base, &viewProj); err != nil {
		render.Logger().Warn("spin skipped", "err", err)
		p.base = viewProj
	}

	p.Scene.Draw(r, &p.base)
	if p.Grid {
		r.DrawGrid(&p.base, 4, 0.5, GridColor)
	}
	if p.Axes {
		r.DrawAxes(&p.base, 1)
	}

	render.Logger().Debug("frame",
		"scene", p.Scene.Name(),
		"frame", p.frame,
		"triangles", r.Stats.Triangles,
		"rejected", r.Stats.Rejected,
		"culled", r.Stats.MeshesCulled,
	)
}
