// SPDX-License-Identifier: MIT

// Package matrix - flat row-major kernels shared by Mat2/Mat3/Mat4.
//
// Every kernel takes the backing array as a slice (m[:]) plus the order n,
// so the three matrix types share one implementation and one rounding
// behavior. Loop orders are fixed; results are deterministic.

package matrix

import (
	"math"
	"strconv"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// cellIndex maps zero-based (row, col) to a flat offset for an n×n matrix.
// ok is false when either index is outside [0, n).
func cellIndex(n, row, col int) (int, bool) {
	if row < 0 || row >= n || col < 0 || col >= n {
		return 0, false
	}

	return row*n + col, true
}

// identityInto writes the n×n identity into dst.
func identityInto(dst []float32, n int) {
	for i := range dst {
		dst[i] = 0
	}
	for i := 0; i < n; i++ {
		dst[i*n+i] = 1
	}
}

// mulInto computes dst = a · b for n×n row-major operands.
// dst must not alias a or b; callers snapshot the receiver first.
//
// Implementation:
//   - Stage 1: zero dst.
//   - Stage 2: i→k→j accumulation, so b and dst are walked by rows.
//
// Complexity: O(n³).
func mulInto(dst, a, b []float32, n int) {
	var (
		i, j, k                        int
		av                             float32
		rowOffsetA, rowOffsetB, rowOff int
	)
	for i = range dst {
		dst[i] = 0
	}
	for i = 0; i < n; i++ {
		rowOffsetA = i * n
		rowOff = i * n
		for k = 0; k < n; k++ {
			av = a[rowOffsetA+k]
			rowOffsetB = k * n
			for j = 0; j < n; j++ {
				dst[rowOff+j] += av * b[rowOffsetB+j]
			}
		}
	}
}

// transposeInto writes srcᵀ into dst. dst must not alias src.
func transposeInto(dst, src []float32, n int) {
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			dst[j*n+i] = src[i*n+j]
		}
	}
}

// addInto computes dst[i] += sign*src[i] over all cells.
func addInto(dst, src []float32, sign float32) {
	for i := range dst {
		dst[i] += sign * src[i]
	}
}

// addCol0 adds sign*v[r] to cell (r, 0) for every row r.
func addCol0(dst, v []float32, n int, sign float32) {
	for r := 0; r < n; r++ {
		dst[r*n] += sign * v[r]
	}
}

// isIdentity reports whether a is exactly the n×n identity.
func isIdentity(a []float32, n int) bool {
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			want := float32(0)
			if r == c {
				want = 1
			}
			if a[r*n+c] != want {
				return false
			}
		}
	}

	return true
}

// isZeroed reports whether every cell is exactly zero.
func isZeroed(a []float32) bool {
	for _, v := range a {
		if v != 0 {
			return false
		}
	}

	return true
}

// isTranslation reports whether a has the translation-only pattern:
// identity upper-left (n-1)×(n-1) block, bottom row (0,…,0,1),
// arbitrary last column above the bottom row.
func isTranslation(a []float32, n int) bool {
	last := n - 1
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if c == last && r < last {
				continue // translation component
			}
			want := float32(0)
			if r == c {
				want = 1
			}
			if a[r*n+c] != want {
				return false
			}
		}
	}

	return true
}

// allClose checks element-wise |a-b| ≤ atol + rtol*|b| in float64.
// Negative tolerances are normalized to their absolute value; a NaN cell
// never compares close.
func allClose(a, b []float32, rtol, atol float64) bool {
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	var diff, absb float64
	for i := range a {
		diff = math.Abs(float64(a[i]) - float64(b[i])) // |a-b|
		absb = math.Abs(float64(b[i]))                 // |b|
		if !(diff <= atol+rtol*absb) {
			return false // early-exit on first violation (or NaN)
		}
	}

	return true
}

// formatRows renders an n×n matrix one bracketed row per line:
//
//	[1, 0]
//	[0, 1]
func formatRows(a []float32, n int) string {
	var sb strings.Builder
	for i := 0; i < n; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < n; j++ {
			sb.WriteString(strconv.FormatFloat(float64(a[i*n+j]), 'g', -1, 32))
			if j < n-1 {
				sb.WriteString(_fmtSep)
			}
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
