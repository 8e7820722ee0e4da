// SPDX-License-Identifier: MIT

// Package matrix - bounds-checked accessors.
//
// At/Set take zero-based (row, col); M/SetM take one-based (i, j), so
// M(i, j) == At(i-1, j-1) always. Both read and write the same cell of the
// same array. Direct indexing m[r*N+c] remains available for hot loops.

package matrix

import "github.com/katalvlaran/lina/vector"

// at reads a[row*n+col] or returns a wrapped ErrOutOfRange.
func at(a []float32, n int, typ, method string, row, col, r0, c0 int) (float32, error) {
	idx, ok := cellIndex(n, r0, c0)
	if !ok {
		return 0, cellErrorf(typ, method, row, col, ErrOutOfRange)
	}

	return a[idx], nil
}

// set writes a[row*n+col] or returns a wrapped ErrOutOfRange.
func set(a []float32, n int, typ, method string, row, col, r0, c0 int, v float32) error {
	idx, ok := cellIndex(n, r0, c0)
	if !ok {
		return cellErrorf(typ, method, row, col, ErrOutOfRange)
	}
	a[idx] = v

	return nil
}

// ---------- Mat4 ----------

// At returns cell (row, col), zero-based.
func (m *Mat4) At(row, col int) (float32, error) {
	return at(m[:], mat4N, mat4Name, ctxAt, row, col, row, col)
}

// Set assigns cell (row, col), zero-based.
func (m *Mat4) Set(row, col int, v float32) error {
	return set(m[:], mat4N, mat4Name, ctxSet, row, col, row, col, v)
}

// M returns cell (i, j), one-based: M(1,1) is the top-left cell.
func (m *Mat4) M(i, j int) (float32, error) {
	return at(m[:], mat4N, mat4Name, ctxM, i, j, i-1, j-1)
}

// SetM assigns cell (i, j), one-based.
func (m *Mat4) SetM(i, j int, v float32) error {
	return set(m[:], mat4N, mat4Name, ctxSetM, i, j, i-1, j-1, v)
}

// Row returns row i (zero-based) as a vector.
func (m Mat4) Row(i int) (vector.Vec4, error) {
	if i < 0 || i >= mat4N {
		return vector.Vec4{}, lineErrorf(mat4Name, ctxRow, i, ErrOutOfRange)
	}
	o := i * mat4N

	return vector.Vec4{X: m[o], Y: m[o+1], Z: m[o+2], W: m[o+3]}, nil
}

// Col returns column j (zero-based) as a vector.
func (m Mat4) Col(j int) (vector.Vec4, error) {
	if j < 0 || j >= mat4N {
		return vector.Vec4{}, lineErrorf(mat4Name, ctxCol, j, ErrOutOfRange)
	}

	return vector.Vec4{X: m[j], Y: m[4+j], Z: m[8+j], W: m[12+j]}, nil
}

// ---------- Mat3 ----------

// At returns cell (row, col), zero-based.
func (m *Mat3) At(row, col int) (float32, error) {
	return at(m[:], mat3N, mat3Name, ctxAt, row, col, row, col)
}

// Set assigns cell (row, col), zero-based.
func (m *Mat3) Set(row, col int, v float32) error {
	return set(m[:], mat3N, mat3Name, ctxSet, row, col, row, col, v)
}

// M returns cell (i, j), one-based.
func (m *Mat3) M(i, j int) (float32, error) {
	return at(m[:], mat3N, mat3Name, ctxM, i, j, i-1, j-1)
}

// SetM assigns cell (i, j), one-based.
func (m *Mat3) SetM(i, j int, v float32) error {
	return set(m[:], mat3N, mat3Name, ctxSetM, i, j, i-1, j-1, v)
}

// Row returns row i (zero-based) as a vector.
func (m Mat3) Row(i int) (vector.Vec3, error) {
	if i < 0 || i >= mat3N {
		return vector.Vec3{}, lineErrorf(mat3Name, ctxRow, i, ErrOutOfRange)
	}
	o := i * mat3N

	return vector.Vec3{X: m[o], Y: m[o+1], Z: m[o+2]}, nil
}

// Col returns column j (zero-based) as a vector.
func (m Mat3) Col(j int) (vector.Vec3, error) {
	if j < 0 || j >= mat3N {
		return vector.Vec3{}, lineErrorf(mat3Name, ctxCol, j, ErrOutOfRange)
	}

	return vector.Vec3{X: m[j], Y: m[3+j], Z: m[6+j]}, nil
}

// ---------- Mat2 ----------

// At returns cell (row, col), zero-based.
func (m *Mat2) At(row, col int) (float32, error) {
	return at(m[:], mat2N, mat2Name, ctxAt, row, col, row, col)
}

// Set assigns cell (row, col), zero-based.
func (m *Mat2) Set(row, col int, v float32) error {
	return set(m[:], mat2N, mat2Name, ctxSet, row, col, row, col, v)
}

// M returns cell (i, j), one-based.
func (m *Mat2) M(i, j int) (float32, error) {
	return at(m[:], mat2N, mat2Name, ctxM, i, j, i-1, j-1)
}

// SetM assigns cell (i, j), one-based.
func (m *Mat2) SetM(i, j int, v float32) error {
	return set(m[:], mat2N, mat2Name, ctxSetM, i, j, i-1, j-1, v)
}
