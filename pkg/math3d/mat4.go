package math3d

import (
	"errors"
	"math"
)

var (
	// ErrZeroAxis is returned by Rotate when the rotation axis has zero length.
	ErrZeroAxis = errors.New("math3d: rotation axis has zero length")

	// ErrSingular is returned by InverseStrict when the matrix has no inverse.
	ErrSingular = errors.New("math3d: matrix is singular")
)

// Mat4 is a 4x4 matrix stored in column-major order.
// This matches the layout WebGL expects for uniformMatrix4fv.
//
// Memory layout (indices):
// | 0  4  8  12 |
// | 1  5  9  13 |
// | 2  6  10 14 |
// | 3  7  11 15 |
//
// For a transform matrix:
// | Xx Yx Zx Tx |   X,Y,Z = basis vectors (rotation/scale)
// | Xy Yy Zy Ty |   T = translation
// | Xz Yz Zz Tz |
// | 0  0  0  1  |
//
// Methods that produce a matrix write into their receiver and return it,
// in the style of math/big. Sources are copied before the receiver is
// written, so the receiver may be any of the operands.
type Mat4 [16]float64

// New returns a zeroed matrix. It is not the identity; call SetIdentity
// before composing transforms into it.
func New() *Mat4 {
	return new(Mat4)
}

// Identity returns the identity matrix.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// SetIdentity overwrites m with the identity matrix.
func (m *Mat4) SetIdentity() *Mat4 {
	*m = Identity()
	return m
}

// Mul sets m to left * right.
// Transforming a vector by the result applies right first, then left.
func (m *Mat4) Mul(left, right *Mat4) *Mat4 {
	a, b := *left, *right
	for col := range 4 {
		for row := range 4 {
			var sum float64
			for k := range 4 {
				sum += a[row+k*4] * b[k+col*4]
			}
			m[row+col*4] = sum
		}
	}
	return m
}

// Scale sets m to a with its basis columns scaled by v.X, v.Y and v.Z.
// The translation column is copied unchanged.
func (m *Mat4) Scale(a *Mat4, v Vec3) *Mat4 {
	src := *a
	for row := range 4 {
		m[row] = src[row] * v.X
		m[row+4] = src[row+4] * v.Y
		m[row+8] = src[row+8] * v.Z
		m[row+12] = src[row+12]
	}
	return m
}

// Translate sets m to a * T(v): the linear part of a is kept and v, mapped
// through a, is added to the translation column.
func (m *Mat4) Translate(a *Mat4, v Vec3) *Mat4 {
	src := *a
	*m = src
	for row := range 4 {
		m[row+12] = src[row]*v.X + src[row+4]*v.Y + src[row+8]*v.Z + src[row+12]
	}
	return m
}

// Rotate sets m to a * R, where R rotates by angle radians about axis
// (right-handed). The axis does not need to be unit length.
//
// A zero-length axis returns ErrZeroAxis and leaves m untouched.
// When m and a are distinct the translation column is copied from a;
// when they are the same matrix it is already in place.
func (m *Mat4) Rotate(a *Mat4, angle float64, axis Vec3) (*Mat4, error) {
	l := axis.Len()
	if l == 0 {
		return nil, ErrZeroAxis
	}
	if l != 1 {
		axis = axis.Scale(1 / l)
	}

	x, y, z := axis.X, axis.Y, axis.Z
	s, c := math.Sincos(angle)
	t := 1 - c

	// Columns of R.
	r := [9]float64{
		x*x*t + c, y*x*t + z*s, z*x*t - y*s,
		x*y*t - z*s, y*y*t + c, z*y*t + x*s,
		x*z*t + y*s, y*z*t - x*s, z*z*t + c,
	}

	src := *a
	if m != a {
		m[12], m[13], m[14], m[15] = src[12], src[13], src[14], src[15]
	}
	for col := range 3 {
		r0, r1, r2 := r[col*3], r[col*3+1], r[col*3+2]
		for row := range 4 {
			m[row+col*4] = src[row]*r0 + src[row+4]*r1 + src[row+8]*r2
		}
	}
	return m, nil
}

// LookAt sets m to a view matrix for a camera at eye looking at center.
//
// If eye equals center, m becomes the identity. If up is parallel to the
// view direction the degenerate basis vectors are zeroed and the result is
// not invertible.
func (m *Mat4) LookAt(eye, center, up Vec3) *Mat4 {
	if eye == center {
		return m.SetIdentity()
	}

	z := eye.Sub(center).Normalize() // Backward (camera looks down -Z)
	x := up.Cross(z).Normalize()     // Right
	y := z.Cross(x).Normalize()      // Up (recomputed)

	*m = Mat4{
		x.X, y.X, z.X, 0,
		x.Y, y.Y, z.Y, 0,
		x.Z, y.Z, z.Z, 0,
		-x.Dot(eye), -y.Dot(eye), -z.Dot(eye), 1,
	}
	return m
}

// Perspective sets m to a symmetric perspective projection.
// fovy is the vertical field of view in degrees.
// aspect is width/height.
// near and far are clipping distances; near == far is not guarded.
func (m *Mat4) Perspective(fovy, aspect, near, far float64) *Mat4 {
	top := near * math.Tan(fovy*math.Pi/360)
	right := top * aspect
	depth := far - near

	*m = Mat4{
		near * 2 / (right * 2), 0, 0, 0,
		0, near * 2 / (top * 2), 0, 0,
		0, 0, -(far + near) / depth, -1,
		0, 0, -(far * near * 2) / depth, 0,
	}
	return m
}

// Transpose sets m to the transpose of a.
func (m *Mat4) Transpose(a *Mat4) *Mat4 {
	src := *a
	*m = Mat4{
		src[0], src[4], src[8], src[12],
		src[1], src[5], src[9], src[13],
		src[2], src[6], src[10], src[14],
		src[3], src[7], src[11], src[15],
	}
	return m
}

// Inverse sets m to the inverse of a.
// A singular a is not detected: m receives Inf/NaN components.
// Use InverseStrict when the caller needs to know.
func (m *Mat4) Inverse(a *Mat4) *Mat4 {
	adj, det := adjugate(a)
	inv := 1 / det
	for i := range adj {
		m[i] = adj[i] * inv
	}
	return m
}

// InverseStrict is like Inverse but returns ErrSingular, leaving m
// untouched, when a has a zero or non-finite determinant.
func (m *Mat4) InverseStrict(a *Mat4) (*Mat4, error) {
	adj, det := adjugate(a)
	if det == 0 || math.IsNaN(det) || math.IsInf(det, 0) {
		return nil, ErrSingular
	}
	inv := 1 / det
	for i := range adj {
		m[i] = adj[i] * inv
	}
	return m, nil
}

// Determinant returns the determinant of m.
func (m *Mat4) Determinant() float64 {
	_, det := adjugate(m)
	return det
}

// adjugate returns the transposed cofactor matrix of a and its determinant,
// built from the twelve 2x2 sub-determinants of the top and bottom row pairs.
// aCR is column C, row R.
func adjugate(a *Mat4) (adj Mat4, det float64) {
	a00, a01, a02, a03 := a[0], a[1], a[2], a[3]
	a10, a11, a12, a13 := a[4], a[5], a[6], a[7]
	a20, a21, a22, a23 := a[8], a[9], a[10], a[11]
	a30, a31, a32, a33 := a[12], a[13], a[14], a[15]

	b00 := a00*a11 - a01*a10
	b01 := a00*a12 - a02*a10
	b02 := a00*a13 - a03*a10
	b03 := a01*a12 - a02*a11
	b04 := a01*a13 - a03*a11
	b05 := a02*a13 - a03*a12
	b06 := a20*a31 - a21*a30
	b07 := a20*a32 - a22*a30
	b08 := a20*a33 - a23*a30
	b09 := a21*a32 - a22*a31
	b10 := a21*a33 - a23*a31
	b11 := a22*a33 - a23*a32

	det = b00*b11 - b01*b10 + b02*b09 + b03*b08 - b04*b07 + b05*b06

	adj = Mat4{
		a11*b11 - a12*b10 + a13*b09,
		-a01*b11 + a02*b10 - a03*b09,
		a31*b05 - a32*b04 + a33*b03,
		-a21*b05 + a22*b04 - a23*b03,

		-a10*b11 + a12*b08 - a13*b07,
		a00*b11 - a02*b08 + a03*b07,
		-a30*b05 + a32*b02 - a33*b01,
		a20*b05 - a22*b02 + a23*b01,

		a10*b10 - a11*b08 + a13*b06,
		-a00*b10 + a01*b08 - a03*b06,
		a30*b04 - a31*b02 + a33*b00,
		-a20*b04 + a21*b02 - a23*b00,

		-a10*b09 + a11*b07 - a12*b06,
		a00*b09 - a01*b07 + a02*b06,
		-a30*b03 + a31*b01 - a32*b00,
		a20*b03 - a21*b01 + a22*b00,
	}
	return adj, det
}

// MulVec3 transforms a Vec3 as a point (w=1).
func (m *Mat4) MulVec3(v Vec3) Vec3 {
	w := m[3]*v.X + m[7]*v.Y + m[11]*v.Z + m[15]
	if w == 0 {
		w = 1
	}
	return Vec3{
		(m[0]*v.X + m[4]*v.Y + m[8]*v.Z + m[12]) / w,
		(m[1]*v.X + m[5]*v.Y + m[9]*v.Z + m[13]) / w,
		(m[2]*v.X + m[6]*v.Y + m[10]*v.Z + m[14]) / w,
	}
}

// MulVec3Dir transforms a Vec3 as a direction (w=0, no translation).
func (m *Mat4) MulVec3Dir(v Vec3) Vec3 {
	return Vec3{
		m[0]*v.X + m[4]*v.Y + m[8]*v.Z,
		m[1]*v.X + m[5]*v.Y + m[9]*v.Z,
		m[2]*v.X + m[6]*v.Y + m[10]*v.Z,
	}
}

// MulVec4 transforms a Vec4.
func (m *Mat4) MulVec4(v Vec4) Vec4 {
	return Vec4{
		m[0]*v.X + m[4]*v.Y + m[8]*v.Z + m[12]*v.W,
		m[1]*v.X + m[5]*v.Y + m[9]*v.Z + m[13]*v.W,
		m[2]*v.X + m[6]*v.Y + m[10]*v.Z + m[14]*v.W,
		m[3]*v.X + m[7]*v.Y + m[11]*v.Z + m[15]*v.W,
	}
}

// Float32 returns m as float32 in the same column-major order, ready to be
// uploaded as a mat4 uniform.
func (m *Mat4) Float32() [16]float32 {
	var out [16]float32
	for i, v := range m {
		out[i] = float32(v)
	}
	return out
}

// ApproxEqual reports whether every component of m is within eps of b.
func (m *Mat4) ApproxEqual(b *Mat4, eps float64) bool {
	for i := range m {
		if math.Abs(m[i]-b[i]) > eps {
			return false
		}
	}
	return true
}

// IsFinite reports whether no component of m is NaN or infinite.
func (m *Mat4) IsFinite() bool {
	for _, v := range m {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Get returns the element at (row, col).
func (m *Mat4) Get(row, col int) float64 {
	return m[row+col*4]
}

// Set sets the element at (row, col).
func (m *Mat4) Set(row, col int, val float64) {
	m[row+col*4] = val
}

// Translation extracts the translation component.
func (m *Mat4) Translation() Vec3 {
	return Vec3{m[12], m[13], m[14]}
}
