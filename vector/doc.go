// SPDX-License-Identifier: MIT

// Package vector provides fixed-size 2, 3 and 4 component vector value types.
//
// What & Why:
//
//	Vector2, Vector3 and Vector4 are small generic structs over any integral
//	or floating-point scalar (see Number). They carry the element-wise
//	arithmetic, length/normalization and dot/cross products needed for
//	real-time transform math, without pulling in a general matrix library.
//
// Conventions:
//   - Value receivers return a new vector; pointer receivers (…Assign,
//     Normalize, Reset) mutate the receiver in place with identical semantics.
//   - Every operator comes in a vector form (component-wise) and a scalar
//     form (scalar broadcast to every component).
//   - Equality is exact; there is no epsilon.
//   - Vector4 is homogeneous: points carry W=1 and directions W=0. The Go
//     zero value is (0,0,0,0); use Origin4, Point4 or Vector4From3 to get the
//     W=1 default.
//
// Numeric policy:
//
//	Nothing is guarded. Dividing by a zero scalar or normalizing a
//	zero-length vector yields ±Inf/NaN for floating types and a runtime
//	divide-by-zero panic for integer types. Zero-length normalization is
//	reported at Debug level through the diag logger when one is installed.
//
// Complexity:
//
//	Every operation is O(1) and allocation-free.
package vector
