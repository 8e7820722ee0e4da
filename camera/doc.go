// SPDX-License-Identifier: MIT

// Package camera builds the matrices a rasterizer needs to place a camera:
// view, perspective projection and model transforms, plus the
// forward/right/up basis derived from pitch and yaw.
//
// What & Why:
//
//	Every builder is a pure function of plain vectors and scalars returning
//	a matrix.Mat4 by value. Each comes in two layouts: ...RM (row-major,
//	translation in the last column) and ...CM (column-major, the exact
//	transpose). View/Perspective/Model dispatch on a Layout value.
//
// Units:
//
//	ForwardVector/NewBasis take pitch and yaw in RADIANS.
//	Perspective takes the field of view in DEGREES.
//	Model takes rotation in RADIANS, applied X, then Y, then Z.
//	Config (YAML) uses degrees for pitch, yaw and fov.
//
// Handedness:
//
//	Right = Forward × WorldUp, Up = Right × Forward. The view matrix maps
//	Forward to -Z, so the camera looks down the negative Z axis.
//
// Options:
//
//	WithOffset (perspective camera offset), WithScale (model scale) and
//	WithWorldUp (basis reference) follow the functional-options pattern.
//	Option constructors panic on nonsensical input (NaN, zero world-up).
//
// Errors:
//
//	Builders never fail; degenerate input yields IEEE Inf/NaN cells.
//	Config validation reports sentinel errors (ErrInvalidFOV, ...).
package camera
