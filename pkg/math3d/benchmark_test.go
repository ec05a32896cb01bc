package math3d

import (
	"testing"
)

func benchTRS() Mat4 {
	m := Identity()
	m.Translate(&m, V3(1, 2, 3))
	if _, err := m.Rotate(&m, 0.5, Up()); err != nil {
		panic(err)
	}
	m.Scale(&m, V3(2, 2, 2))
	return m
}

func BenchmarkMat4Mul(b *testing.B) {
	m1 := benchTRS()
	m2 := Identity()
	var dest Mat4

	for b.Loop() {
		dest.Mul(&m1, &m2)
	}
}

func BenchmarkMat4MulInPlace(b *testing.B) {
	m1 := benchTRS()
	dest := Identity()

	for b.Loop() {
		dest.Mul(&m1, &dest)
	}
}

func BenchmarkMat4Rotate(b *testing.B) {
	m := Identity()
	axis := V3(1, 2, 3)

	for b.Loop() {
		_, _ = m.Rotate(&m, 0.01, axis)
	}
}

func BenchmarkMat4MulVec4(b *testing.B) {
	m := benchTRS()
	v := V4(1, 2, 3, 1)

	for b.Loop() {
		_ = m.MulVec4(v)
	}
}

func BenchmarkMat4Inverse(b *testing.B) {
	m := benchTRS()
	var dest Mat4

	for b.Loop() {
		dest.Inverse(&m)
	}
}

func BenchmarkVec3Normalize(b *testing.B) {
	v := V3(1, 2, 3)

	for b.Loop() {
		_ = v.Normalize()
	}
}

func BenchmarkPerspective(b *testing.B) {
	var m Mat4
	for b.Loop() {
		m.Perspective(60.0, 1.333, 0.1, 100.0)
	}
}

func BenchmarkLookAt(b *testing.B) {
	eye := V3(0, 0, 10)
	target := V3(0, 0, 0)
	up := V3(0, 1, 0)
	var m Mat4

	for b.Loop() {
		m.LookAt(eye, target, up)
	}
}

func BenchmarkViewProjection(b *testing.B) {
	// Build the per-frame base matrix the way the scenes do.
	var view, proj, vp Mat4
	view.LookAt(V3(0, 0, 10), V3(0, 0, 0), V3(0, 1, 0))
	proj.Perspective(90, 500.0/300.0, 0.1, 100.0)

	for b.Loop() {
		vp.Mul(&proj, &view)
	}
}
