// Package converters provides two-way adapters between lina's vector and
// matrix types and the Go ecosystem's 2D/graphics value types:
//   - image.Point / image.Rectangle (integer pixel geometry)
//   - golang.org/x/image/math/fixed Point26_6 / Rectangle26_6 (sub-pixel geometry)
//   - golang.org/x/image/math/f32 Vec2/3/4, Mat3/Mat4 (GPU upload types)
//
// The vector and matrix packages stay free of these imports; only programs
// that import converters pull in golang.org/x/image.
//
// Conversions are plain value copies. Float→int truncates toward zero,
// float→26.6 rounds to the nearest 1/64, and the f32 matrix types share
// lina's row-major layout, so ToF32Mat4 is a bit-for-bit copy.
package converters
