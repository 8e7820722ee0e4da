// SPDX-License-Identifier: MIT

package camera

import (
	"github.com/katalvlaran/lina/matrix"
	"github.com/katalvlaran/lina/vector"
)

// ViewRM builds the row-major view matrix for a camera at position with the
// given orthonormal basis:
//
//	[ right.x     right.y     right.z     -right·p  ]
//	[ up.x        up.y        up.z        -up·p     ]
//	[ -forward.x  -forward.y  -forward.z  forward·p ]
//	[ 0           0           0           1         ]
//
// The camera looks down -Z in view space. The basis is used as given; it is
// not re-orthonormalized.
func ViewRM(position, right, up, forward vector.Vec3) matrix.Mat4 {
	return matrix.Mat4Of(
		right.X, right.Y, right.Z, -vector.Dot3(right, position),
		up.X, up.Y, up.Z, -vector.Dot3(up, position),
		-forward.X, -forward.Y, -forward.Z, vector.Dot3(forward, position),
		0, 0, 0, 1,
	)
}

// ViewCM builds the column-major view matrix, the transpose of ViewRM.
func ViewCM(position, right, up, forward vector.Vec3) matrix.Mat4 {
	return ViewRM(position, right, up, forward).Transposed()
}

// View dispatches to ViewCM for ColumnMajor and to ViewRM otherwise.
func View(layout Layout, position, right, up, forward vector.Vec3) matrix.Mat4 {
	if layout == ColumnMajor {
		return ViewCM(position, right, up, forward)
	}

	return ViewRM(position, right, up, forward)
}
