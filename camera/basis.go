// SPDX-License-Identifier: MIT

package camera

import (
	"math"

	"github.com/katalvlaran/lina/matrix"
	"github.com/katalvlaran/lina/vector"
)

// Basis is a camera's orientation frame. For a non-vertical forward vector
// the three axes are unit length and mutually orthogonal, with
// Right = Forward × WorldUp and Up = Right × Forward.
type Basis struct {
	Forward vector.Vec3
	Right   vector.Vec3
	Up      vector.Vec3
}

// ForwardVector converts pitch and yaw (RADIANS) to a unit view direction:
//
//	normalize(cos(pitch)·cos(yaw), sin(pitch), cos(pitch)·sin(yaw))
//
// pitch = yaw = 0 looks down +X; yaw = -π/2 looks down -Z.
func ForwardVector(pitch, yaw float32) vector.Vec3 {
	sp, cp := math.Sincos(float64(pitch))
	sy, cy := math.Sincos(float64(yaw))

	return vector.Vec3{
		X: float32(cp * cy),
		Y: float32(sp),
		Z: float32(cp * sy),
	}.Normalized()
}

// RightVector returns normalize(forward × worldUp). worldUp defaults to +Y
// (WithWorldUp overrides it). A forward parallel to worldUp yields a NaN
// vector; the zero-length normalization is reported at debug level.
func RightVector(forward vector.Vec3, opts ...Option) vector.Vec3 {
	o := gatherOptions(opts...)

	return vector.Cross(forward, o.worldUp).Normalized()
}

// UpVector returns normalize(right × forward).
func UpVector(forward, right vector.Vec3) vector.Vec3 {
	return vector.Cross(right, forward).Normalized()
}

// NewBasis derives the full frame from pitch and yaw (radians).
func NewBasis(pitch, yaw float32, opts ...Option) Basis {
	f := ForwardVector(pitch, yaw)
	r := RightVector(f, opts...)

	return Basis{Forward: f, Right: r, Up: UpVector(f, r)}
}

// View returns the view matrix for a camera at position using this basis.
func (b Basis) View(layout Layout, position vector.Vec3) matrix.Mat4 {
	return View(layout, position, b.Right, b.Up, b.Forward)
}
