package scenes

import (
	"math"
	"testing"

	"github.com/taigrr/minmatrix/pkg/math3d"
)

func TestSpinDecays(t *testing.T) {
	s := NewSpin(30)
	s.Impulse(0.2, -0.1)

	s.Update()
	if s.Yaw.Position <= 0 || s.Pitch.Position >= 0 {
		t.Fatalf("after one update yaw=%v pitch=%v, want moving with the impulse", s.Yaw.Position, s.Pitch.Position)
	}

	for range 300 {
		s.Update()
	}
	if math.Abs(s.Yaw.Velocity) > 1e-3 || math.Abs(s.Pitch.Velocity) > 1e-3 {
		t.Errorf("velocity after 10s = (%v, %v), want ~0", s.Yaw.Velocity, s.Pitch.Velocity)
	}
	settled := s.Yaw.Position
	s.Update()
	if math.Abs(s.Yaw.Position-settled) > 1e-3 {
		t.Errorf("yaw still moving: %v -> %v", settled, s.Yaw.Position)
	}
}

func TestSpinReset(t *testing.T) {
	s := NewSpin(0) // Falls back to a default rate
	s.Impulse(1, 1)
	s.Update()
	s.Reset()

	if s.Yaw.Position != 0 || s.Yaw.Velocity != 0 || s.Pitch.Position != 0 || s.Pitch.Velocity != 0 {
		t.Errorf("after reset: %+v %+v", s.Yaw, s.Pitch)
	}
}

func TestSpinApply(t *testing.T) {
	var base math3d.Mat4
	base.Perspective(90, 1, 0.1, 100)

	t.Run("at rest", func(t *testing.T) {
		var m math3d.Mat4
		if _, err := NewSpin(30).Apply(&m, &base); err != nil {
			t.Fatal(err)
		}
		if m != base {
			t.Errorf("resting spin changed the base: %v", m)
		}
	})

	t.Run("quarter yaw", func(t *testing.T) {
		s := NewSpin(30)
		s.Yaw.Position = math.Pi / 2
		id := math3d.Identity()
		var m math3d.Mat4
		if _, err := s.Apply(&m, &id); err != nil {
			t.Fatal(err)
		}
		if got := m.MulVec3Dir(math3d.V3(0, 0, 1)); !vecNear(got, math3d.V3(1, 0, 0)) {
			t.Errorf("+Z yawed to %v, want (1, 0, 0)", got)
		}
	})

	t.Run("in place", func(t *testing.T) {
		s := NewSpin(30)
		s.Yaw.Position, s.Pitch.Position = 0.3, -0.7
		var fresh math3d.Mat4
		if _, err := s.Apply(&fresh, &base); err != nil {
			t.Fatal(err)
		}
		inPlace := base
		if _, err := s.Apply(&inPlace, &inPlace); err != nil {
			t.Fatal(err)
		}
		if inPlace != fresh {
			t.Errorf("in-place Apply = %v, want %v", inPlace, fresh)
		}
	})
}
