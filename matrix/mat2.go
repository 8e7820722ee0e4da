// SPDX-License-Identifier: MIT

package matrix

import "fmt"

const (
	mat2N    = 2
	mat2Name = "Mat2"
)

// Mat2 is a 2×2 float32 matrix in row-major order. It carries data and
// basic predicates only; there are no factories or arithmetic.
type Mat2 [4]float32

var _ fmt.Stringer = Mat2{}

// NewMat2 returns the 2×2 identity.
func NewMat2() Mat2 { return Mat2Identity() }

// Mat2Identity returns the 2×2 identity.
func Mat2Identity() Mat2 { return Mat2{1, 0, 0, 1} }

// Mat2Zeroed returns the all-zero 2×2 matrix.
func Mat2Zeroed() Mat2 { return Mat2{} }

// Mat2Of builds a matrix from 4 cells given row by row.
func Mat2Of(m00, m01, m10, m11 float32) Mat2 {
	return Mat2{m00, m01, m10, m11}
}

// Equal reports exact cell-wise equality.
func (m Mat2) Equal(o Mat2) bool { return m == o }

// IsIdentity reports whether m is exactly the identity.
func (m Mat2) IsIdentity() bool { return isIdentity(m[:], mat2N) }

func (m Mat2) String() string { return formatRows(m[:], mat2N) }
