// SPDX-License-Identifier: MIT

// Package matrix provides fixed-size float32 matrices for 2D/3D transforms.
//
// What & Why:
//
//	Mat2, Mat3 and Mat4 are plain arrays ([4], [9], [16]float32) stored
//	row-major: cell (r, c) lives at index r*N + c. They are values, so
//	assignment copies, == compares every cell exactly, and no method ever
//	allocates. The layout is byte-identical to golang.org/x/image/math/f32
//	Mat3/Mat4, which makes upload to graphics APIs a plain copy.
//
// Construction:
//
//	The zero value is the ZERO matrix. NewMat4() / Mat4Identity() return
//	the identity; Mat4Zeroed() returns zeros; Mat4Of(...) takes all 16
//	cells in row-major order. Factories build translation, scale and axis
//	rotation matrices; rotation angles are radians.
//
// Accessors:
//
//	At/Set are zero-based, M/SetM are one-based (M(1,1) is the top-left).
//	Both compute an index into the same array, so writes through one are
//	visible through the other. Out-of-range indices return ErrOutOfRange
//	wrapped with call context; they never panic.
//
// Conventions:
//
//	Value receivers return a new matrix (Mul, Add, Transposed, ...).
//	Pointer receivers mutate in place (MulAssign, Translate, Transpose, ...).
//	Instance transforms post-multiply: m.Translate(t) is m = m · T(t).
//	MulVec is the canonical row·vector product M·v.
//
// Vector operands (AddVec/SubVec) act on column 0 only: m[r][0] ± v[r].
//
// Complexity:
//
//	Mul: O(N³); everything else O(N²) or O(1). N ≤ 4.
package matrix
