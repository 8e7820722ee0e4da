// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lina/vector"
)

const (
	mat4N    = 4
	mat4Name = "Mat4"
)

// Mat4 is a 4×4 float32 matrix in row-major order: cell (r, c) is m[r*4+c].
// The zero value is the zero matrix; use NewMat4 for the identity.
type Mat4 [16]float32

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = Mat4{}

// NewMat4 returns the 4×4 identity.
func NewMat4() Mat4 {
	return Mat4Identity()
}

// Mat4Identity returns the 4×4 identity.
func Mat4Identity() Mat4 {
	var m Mat4
	identityInto(m[:], mat4N)

	return m
}

// Mat4Zeroed returns the all-zero 4×4 matrix (same as the zero value).
func Mat4Zeroed() Mat4 {
	return Mat4{}
}

// Mat4Of builds a matrix from 16 cells given row by row.
func Mat4Of(
	m00, m01, m02, m03,
	m10, m11, m12, m13,
	m20, m21, m22, m23,
	m30, m31, m32, m33 float32,
) Mat4 {
	return Mat4{
		m00, m01, m02, m03,
		m10, m11, m12, m13,
		m20, m21, m22, m23,
		m30, m31, m32, m33,
	}
}

// Mat4Translation returns the matrix translating by t (last column).
func Mat4Translation(t vector.Vec3) Mat4 {
	return Mat4{
		1, 0, 0, t.X,
		0, 1, 0, t.Y,
		0, 0, 1, t.Z,
		0, 0, 0, 1,
	}
}

// Mat4Scalation returns the diagonal scale matrix diag(s.X, s.Y, s.Z, s.W).
func Mat4Scalation(s vector.Vec4) Mat4 {
	return Mat4{
		s.X, 0, 0, 0,
		0, s.Y, 0, 0,
		0, 0, s.Z, 0,
		0, 0, 0, s.W,
	}
}

// Mat4RotationX returns a rotation of rad radians about the X axis.
func Mat4RotationX(rad float32) Mat4 {
	c, s := sincos(rad)

	return Mat4{
		1, 0, 0, 0,
		0, c, -s, 0,
		0, s, c, 0,
		0, 0, 0, 1,
	}
}

// Mat4RotationY returns a rotation of rad radians about the Y axis.
func Mat4RotationY(rad float32) Mat4 {
	c, s := sincos(rad)

	return Mat4{
		c, 0, s, 0,
		0, 1, 0, 0,
		-s, 0, c, 0,
		0, 0, 0, 1,
	}
}

// Mat4RotationZ returns a rotation of rad radians about the Z axis.
func Mat4RotationZ(rad float32) Mat4 {
	c, s := sincos(rad)

	return Mat4{
		c, -s, 0, 0,
		s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mat4Rotation returns RotationX(v.X) · RotationY(v.Y) · RotationZ(v.Z).
// Components are radians.
func Mat4Rotation(v vector.Vec3) Mat4 {
	return Mat4RotationX(v.X).Mul(Mat4RotationY(v.Y)).Mul(Mat4RotationZ(v.Z))
}

// sincos returns (cos, sin) of rad evaluated in float64.
func sincos(rad float32) (float32, float32) {
	s, c := math.Sincos(float64(rad))

	return float32(c), float32(s)
}

// Translate post-multiplies m by Mat4Translation(t).
func (m *Mat4) Translate(t vector.Vec3) { m.MulAssign(Mat4Translation(t)) }

// Scale post-multiplies m by Mat4Scalation(s).
func (m *Mat4) Scale(s vector.Vec4) { m.MulAssign(Mat4Scalation(s)) }

// RotateX post-multiplies m by Mat4RotationX(rad).
func (m *Mat4) RotateX(rad float32) { m.MulAssign(Mat4RotationX(rad)) }

// RotateY post-multiplies m by Mat4RotationY(rad).
func (m *Mat4) RotateY(rad float32) { m.MulAssign(Mat4RotationY(rad)) }

// RotateZ post-multiplies m by Mat4RotationZ(rad).
func (m *Mat4) RotateZ(rad float32) { m.MulAssign(Mat4RotationZ(rad)) }

// Rotate post-multiplies m by Mat4Rotation(v).
func (m *Mat4) Rotate(v vector.Vec3) { m.MulAssign(Mat4Rotation(v)) }

// Mul returns the matrix product m · o.
// Complexity: O(4³).
func (m Mat4) Mul(o Mat4) Mat4 {
	var out Mat4
	mulInto(out[:], m[:], o[:], mat4N)

	return out
}

// MulAssign sets m = m · o. Every cell is computed from a snapshot of the
// original receiver, so the result equals m.Mul(o).
func (m *Mat4) MulAssign(o Mat4) {
	snap := *m
	mulInto(m[:], snap[:], o[:], mat4N)
}

// MulVec returns the product m · v, treating v as a column vector.
func (m Mat4) MulVec(v vector.Vec4) vector.Vec4 {
	return vector.Vec4{
		X: m[0]*v.X + m[1]*v.Y + m[2]*v.Z + m[3]*v.W,
		Y: m[4]*v.X + m[5]*v.Y + m[6]*v.Z + m[7]*v.W,
		Z: m[8]*v.X + m[9]*v.Y + m[10]*v.Z + m[11]*v.W,
		W: m[12]*v.X + m[13]*v.Y + m[14]*v.Z + m[15]*v.W,
	}
}

// Add returns the cell-wise sum m + o.
func (m Mat4) Add(o Mat4) Mat4 {
	addInto(m[:], o[:], 1)

	return m
}

// Sub returns the cell-wise difference m - o.
func (m Mat4) Sub(o Mat4) Mat4 {
	addInto(m[:], o[:], -1)

	return m
}

// AddAssign sets m = m + o.
func (m *Mat4) AddAssign(o Mat4) { addInto(m[:], o[:], 1) }

// SubAssign sets m = m - o.
func (m *Mat4) SubAssign(o Mat4) { addInto(m[:], o[:], -1) }

// AddVec returns m with v added to column 0: cell (r,0) + v[r].
func (m Mat4) AddVec(v vector.Vec4) Mat4 {
	m.AddVecAssign(v)

	return m
}

// SubVec returns m with v subtracted from column 0: cell (r,0) - v[r].
func (m Mat4) SubVec(v vector.Vec4) Mat4 {
	m.SubVecAssign(v)

	return m
}

// AddVecAssign adds v to column 0 in place.
func (m *Mat4) AddVecAssign(v vector.Vec4) {
	col := [mat4N]float32{v.X, v.Y, v.Z, v.W}
	addCol0(m[:], col[:], mat4N, 1)
}

// SubVecAssign subtracts v from column 0 in place.
func (m *Mat4) SubVecAssign(v vector.Vec4) {
	col := [mat4N]float32{v.X, v.Y, v.Z, v.W}
	addCol0(m[:], col[:], mat4N, -1)
}

// Transposed returns mᵀ.
func (m Mat4) Transposed() Mat4 {
	var out Mat4
	transposeInto(out[:], m[:], mat4N)

	return out
}

// Transpose replaces m with mᵀ.
func (m *Mat4) Transpose() { *m = m.Transposed() }

// Equal reports exact cell-wise equality (same as ==).
func (m Mat4) Equal(o Mat4) bool { return m == o }

// IsIdentity reports whether m is exactly the identity.
func (m Mat4) IsIdentity() bool { return isIdentity(m[:], mat4N) }

// IsZeroed reports whether every cell is exactly zero.
func (m Mat4) IsZeroed() bool { return isZeroed(m[:]) }

// IsTranslation reports whether m only translates: identity 3×3 block,
// bottom row (0,0,0,1), any values in column 3 of rows 0..2.
func (m Mat4) IsTranslation() bool { return isTranslation(m[:], mat4N) }

// Mat4AllClose reports whether |a-b| ≤ atol + rtol·|b| holds for every cell.
func Mat4AllClose(a, b Mat4, rtol, atol float64) bool {
	return allClose(a[:], b[:], rtol, atol)
}

// String implements fmt.Stringer, one bracketed row per line.
func (m Mat4) String() string { return formatRows(m[:], mat4N) }
