// SPDX-License-Identifier: MIT

package converters

import (
	"github.com/katalvlaran/lina/matrix"
	"github.com/katalvlaran/lina/vector"
	"golang.org/x/image/math/f32"
)

// ToF32Vec2 converts v to f32.Vec2.
func ToF32Vec2(v vector.Vec2) f32.Vec2 { return f32.Vec2{v.X, v.Y} }

// ToF32Vec3 converts v to f32.Vec3.
func ToF32Vec3(v vector.Vec3) f32.Vec3 { return f32.Vec3{v.X, v.Y, v.Z} }

// ToF32Vec4 converts v to f32.Vec4.
func ToF32Vec4(v vector.Vec4) f32.Vec4 { return f32.Vec4{v.X, v.Y, v.Z, v.W} }

// FromF32Vec2 converts v to a vector.
func FromF32Vec2(v f32.Vec2) vector.Vec2 { return vector.NewVector2(v[0], v[1]) }

// FromF32Vec3 converts v to a vector.
func FromF32Vec3(v f32.Vec3) vector.Vec3 { return vector.NewVector3(v[0], v[1], v[2]) }

// FromF32Vec4 converts v to a vector.
func FromF32Vec4(v f32.Vec4) vector.Vec4 { return vector.NewVector4(v[0], v[1], v[2], v[3]) }

// ToF32Mat3 copies m; both types are row-major [9]float32.
func ToF32Mat3(m matrix.Mat3) f32.Mat3 { return f32.Mat3(m) }

// ToF32Mat4 copies m; both types are row-major [16]float32.
func ToF32Mat4(m matrix.Mat4) f32.Mat4 { return f32.Mat4(m) }

// FromF32Mat3 copies m into a Mat3.
func FromF32Mat3(m f32.Mat3) matrix.Mat3 { return matrix.Mat3(m) }

// FromF32Mat4 copies m into a Mat4.
func FromF32Mat4(m f32.Mat4) matrix.Mat4 { return matrix.Mat4(m) }
