// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lina/vector"
)

const (
	mat3N    = 3
	mat3Name = "Mat3"
)

// Mat3 is a 3×3 float32 matrix in row-major order: cell (r, c) is m[r*3+c].
// It serves 2D homogeneous transforms and 3D rotations. The zero value is
// the zero matrix; use NewMat3 for the identity.
type Mat3 [9]float32

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = Mat3{}

// NewMat3 returns the 3×3 identity.
func NewMat3() Mat3 {
	return Mat3Identity()
}

// Mat3Identity returns the 3×3 identity.
func Mat3Identity() Mat3 {
	var m Mat3
	identityInto(m[:], mat3N)

	return m
}

// Mat3Zeroed returns the all-zero 3×3 matrix.
func Mat3Zeroed() Mat3 {
	return Mat3{}
}

// Mat3Of builds a matrix from 9 cells given row by row.
func Mat3Of(
	m00, m01, m02,
	m10, m11, m12,
	m20, m21, m22 float32,
) Mat3 {
	return Mat3{
		m00, m01, m02,
		m10, m11, m12,
		m20, m21, m22,
	}
}

// Mat3Translation returns the 2D homogeneous translation by t.
func Mat3Translation(t vector.Vec2) Mat3 {
	return Mat3{
		1, 0, t.X,
		0, 1, t.Y,
		0, 0, 1,
	}
}

// Mat3Scalation returns diag(s.X, s.Y, s.Z).
func Mat3Scalation(s vector.Vec3) Mat3 {
	return Mat3{
		s.X, 0, 0,
		0, s.Y, 0,
		0, 0, s.Z,
	}
}

// Mat3RotationX returns a rotation of rad radians about the X axis.
func Mat3RotationX(rad float32) Mat3 {
	c, s := sincos(rad)

	return Mat3{
		1, 0, 0,
		0, c, -s,
		0, s, c,
	}
}

// Mat3RotationY returns a rotation of rad radians about the Y axis.
func Mat3RotationY(rad float32) Mat3 {
	c, s := sincos(rad)

	return Mat3{
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	}
}

// Mat3RotationZ returns a rotation of rad radians about the Z axis.
// This is also the 2D rotation in homogeneous coordinates.
func Mat3RotationZ(rad float32) Mat3 {
	c, s := sincos(rad)

	return Mat3{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	}
}

// Mat3Rotation returns RotationX(v.X) · RotationY(v.Y) · RotationZ(v.Z).
func Mat3Rotation(v vector.Vec3) Mat3 {
	return Mat3RotationX(v.X).Mul(Mat3RotationY(v.Y)).Mul(Mat3RotationZ(v.Z))
}

// Translate post-multiplies m by Mat3Translation(t).
func (m *Mat3) Translate(t vector.Vec2) { m.MulAssign(Mat3Translation(t)) }

// Scale post-multiplies m by Mat3Scalation(s).
func (m *Mat3) Scale(s vector.Vec3) { m.MulAssign(Mat3Scalation(s)) }

// RotateX post-multiplies m by Mat3RotationX(rad).
func (m *Mat3) RotateX(rad float32) { m.MulAssign(Mat3RotationX(rad)) }

// RotateY post-multiplies m by Mat3RotationY(rad).
func (m *Mat3) RotateY(rad float32) { m.MulAssign(Mat3RotationY(rad)) }

// RotateZ post-multiplies m by Mat3RotationZ(rad).
func (m *Mat3) RotateZ(rad float32) { m.MulAssign(Mat3RotationZ(rad)) }

// Rotate post-multiplies m by Mat3Rotation(v).
func (m *Mat3) Rotate(v vector.Vec3) { m.MulAssign(Mat3Rotation(v)) }

// Mul returns the matrix product m · o.
func (m Mat3) Mul(o Mat3) Mat3 {
	var out Mat3
	mulInto(out[:], m[:], o[:], mat3N)

	return out
}

// MulAssign sets m = m · o, reading from a snapshot of m.
func (m *Mat3) MulAssign(o Mat3) {
	snap := *m
	mulInto(m[:], snap[:], o[:], mat3N)
}

// MulVec returns the product m · v, treating v as a column vector.
func (m Mat3) MulVec(v vector.Vec3) vector.Vec3 {
	return vector.Vec3{
		X: m[0]*v.X + m[1]*v.Y + m[2]*v.Z,
		Y: m[3]*v.X + m[4]*v.Y + m[5]*v.Z,
		Z: m[6]*v.X + m[7]*v.Y + m[8]*v.Z,
	}
}

// Add returns the cell-wise sum m + o.
func (m Mat3) Add(o Mat3) Mat3 {
	addInto(m[:], o[:], 1)

	return m
}

// Sub returns the cell-wise difference m - o.
func (m Mat3) Sub(o Mat3) Mat3 {
	addInto(m[:], o[:], -1)

	return m
}

// AddAssign sets m = m + o.
func (m *Mat3) AddAssign(o Mat3) { addInto(m[:], o[:], 1) }

// SubAssign sets m = m - o.
func (m *Mat3) SubAssign(o Mat3) { addInto(m[:], o[:], -1) }

// AddVec returns m with v added to column 0.
func (m Mat3) AddVec(v vector.Vec3) Mat3 {
	m.AddVecAssign(v)

	return m
}

// SubVec returns m with v subtracted from column 0: cell (r,0) - v[r].
func (m Mat3) SubVec(v vector.Vec3) Mat3 {
	m.SubVecAssign(v)

	return m
}

// AddVecAssign adds v to column 0 in place.
func (m *Mat3) AddVecAssign(v vector.Vec3) {
	col := [mat3N]float32{v.X, v.Y, v.Z}
	addCol0(m[:], col[:], mat3N, 1)
}

// SubVecAssign subtracts v from column 0 in place.
func (m *Mat3) SubVecAssign(v vector.Vec3) {
	col := [mat3N]float32{v.X, v.Y, v.Z}
	addCol0(m[:], col[:], mat3N, -1)
}

// Transposed returns mᵀ.
func (m Mat3) Transposed() Mat3 {
	var out Mat3
	transposeInto(out[:], m[:], mat3N)

	return out
}

// Transpose replaces m with mᵀ.
func (m *Mat3) Transpose() { *m = m.Transposed() }

// Equal reports exact cell-wise equality (same as ==).
func (m Mat3) Equal(o Mat3) bool { return m == o }

// IsIdentity reports whether m is exactly the identity.
func (m Mat3) IsIdentity() bool { return isIdentity(m[:], mat3N) }

// IsZeroed reports whether every cell is exactly zero.
func (m Mat3) IsZeroed() bool { return isZeroed(m[:]) }

// IsTranslation reports whether m is a pure 2D translation.
func (m Mat3) IsTranslation() bool { return isTranslation(m[:], mat3N) }

// Mat3AllClose reports whether |a-b| ≤ atol + rtol·|b| holds for every cell.
func Mat3AllClose(a, b Mat3, rtol, atol float64) bool {
	return allClose(a[:], b[:], rtol, atol)
}

// String implements fmt.Stringer.
func (m Mat3) String() string { return formatRows(m[:], mat3N) }
