// Package scenes holds the animated demos: each one composes model
// matrices with math3d every frame and hands them to the rasterizer.
package scenes

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/taigrr/minmatrix/pkg/math3d"
	"github.com/taigrr/minmatrix/pkg/models"
	"github.com/taigrr/minmatrix/pkg/render"
)

// ErrUnknownScene is returned by ByName for names not in the registry.
var ErrUnknownScene = errors.New("scenes: unknown scene")

// Scene is one demo.
type Scene interface {
	Name() string

	// Eye is where the camera sits. It looks at the origin with +Y up.
	Eye() math3d.Vec3

	// Update advances the animation to the given frame.
	Update(frame int)

	// Draw issues the frame's draw calls. base is projection * view.
	Draw(r *render.Rasterizer, base *math3d.Mat4)
}

var registry = map[string]func(mesh *models.Mesh) Scene{
	"static":  func(mesh *models.Mesh) Scene { return NewStatic(mesh) },
	"orbit":   func(mesh *models.Mesh) Scene { return NewOrbit(mesh) },
	"spinner": func(mesh *models.Mesh) Scene { return NewSpinner(mesh) },
}

// Names returns the registered scene names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// ByName builds the named scene. A non-nil mesh replaces the scene's
// built-in geometry.
func ByName(name string, mesh *models.Mesh) (Scene, error) {
	ctor, ok := registry[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w %q (have %s)", ErrUnknownScene, name, strings.Join(Names(), ", "))
	}
	return ctor(mesh), nil
}

// frameAngle converts a frame counter into radians, one degree per frame.
func frameAngle(frame int) float64 {
	deg := frame % 360
	if deg < 0 {
		deg += 360
	}
	return float64(deg) * math.Pi / 180
}

// vertexBuffer flattens a mesh into a non-indexed triangle list for
// DrawArrays.
func vertexBuffer(m *models.Mesh) []render.Vertex {
	verts := make([]render.Vertex, 0, len(m.Elements))
	for _, idx := range m.Elements {
		pos, c := m.GetVertex(int(idx))
		verts = append(verts, render.Vertex{Position: pos, Color: c})
	}
	return verts
}

// geometry is what a scene draws for each model matrix: the tutorial's
// vertex buffer, or a loaded mesh when one was given.
type geometry struct {
	verts []render.Vertex
	mesh  *models.Mesh
	mvp   math3d.Mat4
}

func newGeometry(builtin, mesh *models.Mesh) geometry {
	if mesh != nil {
		return geometry{mesh: mesh}
	}
	return geometry{verts: vertexBuffer(builtin)}
}

// draw sets mvp = base * model and issues the draw call.
func (g *geometry) draw(r *render.Rasterizer, base, model *math3d.Mat4) {
	g.mvp.Mul(base, model)
	if g.mesh != nil {
		r.DrawMesh(&g.mvp, g.mesh)
		return
	}
	r.DrawArrays(&g.mvp, g.verts)
}
