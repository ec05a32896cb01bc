package scenes

import (
	"github.com/charmbracelet/harmonica"
	"github.com/taigrr/minmatrix/pkg/math3d"
)

// SpinAxis is one rotation axis whose angular velocity springs back to
// zero after an impulse.
type SpinAxis struct {
	Position  float64 // Accumulated angle in radians
	Velocity  float64 // Radians per frame
	velSpring harmonica.Spring
	velAccel  float64 // internal spring velocity (for animating Velocity toward 0)
}

// NewSpinAxis creates an axis at rest.
func NewSpinAxis(fps int) SpinAxis {
	return SpinAxis{
		velSpring: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0),
	}
}

// Update advances the axis by one frame.
func (a *SpinAxis) Update() {
	a.Position += a.Velocity
	a.Velocity, a.velAccel = a.velSpring.Update(a.Velocity, a.velAccel, 0)
}

// Spin is a user-driven yaw/pitch applied on top of every scene.
type Spin struct {
	Yaw, Pitch SpinAxis
	fps        int
}

// NewSpin creates a spin at rest, stepped fps times per second.
func NewSpin(fps int) *Spin {
	if fps <= 0 {
		fps = 30
	}
	return &Spin{
		Yaw:   NewSpinAxis(fps),
		Pitch: NewSpinAxis(fps),
		fps:   fps,
	}
}

// Update advances both axes by one frame.
func (s *Spin) Update() {
	s.Yaw.Update()
	s.Pitch.Update()
}

// Impulse adds angular velocity in radians per frame.
func (s *Spin) Impulse(yaw, pitch float64) {
	s.Yaw.Velocity += yaw
	s.Pitch.Velocity += pitch
}

// Reset stops the spin and returns to the starting orientation.
func (s *Spin) Reset() {
	s.Yaw = NewSpinAxis(s.fps)
	s.Pitch = NewSpinAxis(s.fps)
}

// Apply sets m to base * Ry(yaw) * Rx(pitch).
func (s *Spin) Apply(m, base *math3d.Mat4) (*math3d.Mat4, error) {
	if _, err := m.Rotate(base, s.Yaw.Position, math3d.Up()); err != nil {
		return nil, err
	}
	return m.Rotate(m, s.Pitch.Position, math3d.V3(1, 0, 0))
}
