// SPDX-License-Identifier: MIT

package camera

import (
	"github.com/katalvlaran/lina/matrix"
	"github.com/katalvlaran/lina/vector"
)

// ModelRM builds the row-major model matrix
//
//	T(position) · Rx(rotation.X) · Ry(rotation.Y) · Rz(rotation.Z) · S(scale)
//
// so a vertex is scaled first, then rotated about Z, Y and X, then
// translated. Rotation components are radians. Scale defaults to
// (1,1,1,1); override it with WithScale.
func ModelRM(position, rotation vector.Vec3, opts ...Option) matrix.Mat4 {
	o := gatherOptions(opts...)

	m := matrix.Mat4Translation(position)
	m.RotateX(rotation.X)
	m.RotateY(rotation.Y)
	m.RotateZ(rotation.Z)
	m.Scale(o.scale)

	return m
}

// ModelCM builds the column-major model matrix, the transpose of ModelRM.
func ModelCM(position, rotation vector.Vec3, opts ...Option) matrix.Mat4 {
	return ModelRM(position, rotation, opts...).Transposed()
}

// Model dispatches on layout.
func Model(layout Layout, position, rotation vector.Vec3, opts ...Option) matrix.Mat4 {
	if layout == ColumnMajor {
		return ModelCM(position, rotation, opts...)
	}

	return ModelRM(position, rotation, opts...)
}
