// SPDX-License-Identifier: MIT

package camera

import (
	"math"

	"github.com/katalvlaran/lina/matrix"
	"github.com/katalvlaran/lina/vector"
)

// PerspectiveRM builds the row-major perspective projection.
//
// With c = cot(fov/2), fov in DEGREES, and (ox, oy, oz) the camera offset
// (WithOffset, default (0,0,1)):
//
//	[ c·h/w  0  0                     ox  ]
//	[ 0      c  0                     oy  ]
//	[ 0      0  far/(near-far)        -oz ]
//	[ 0      0  -far·near/(far-near)  0   ]
//
// where (w, h) = screen.
//
// Inputs are not validated: a zero width, fov outside (0,180) or
// near == far produce IEEE Inf/NaN cells. Config.Validate guards the
// configuration path.
//
// Complexity: O(1).
func PerspectiveRM(screen vector.IVec2, fovDeg, near, far float32, opts ...Option) matrix.Mat4 {
	o := gatherOptions(opts...)
	scaleX, focal, depth, depthShift := perspectiveTerms(screen, fovDeg, near, far)

	return matrix.Mat4Of(
		scaleX, 0, 0, o.offset.X,
		0, focal, 0, o.offset.Y,
		0, 0, depth, -o.offset.Z,
		0, 0, depthShift, 0,
	)
}

// PerspectiveCM builds the column-major perspective projection, the
// transpose of PerspectiveRM: the depth shift moves to cell (2,3) and the
// offset to the bottom row.
func PerspectiveCM(screen vector.IVec2, fovDeg, near, far float32, opts ...Option) matrix.Mat4 {
	return PerspectiveRM(screen, fovDeg, near, far, opts...).Transposed()
}

// Perspective dispatches on layout.
func Perspective(layout Layout, screen vector.IVec2, fovDeg, near, far float32, opts ...Option) matrix.Mat4 {
	if layout == ColumnMajor {
		return PerspectiveCM(screen, fovDeg, near, far, opts...)
	}

	return PerspectiveRM(screen, fovDeg, near, far, opts...)
}

// perspectiveTerms evaluates the projection scalars in float64 and rounds
// once to float32.
func perspectiveTerms(screen vector.IVec2, fovDeg, near, far float32) (scaleX, focal, depth, depthShift float32) {
	rad := float64(fovDeg) * math.Pi / 180
	c := 1 / math.Tan(0.5*rad)
	n, f := float64(near), float64(far)

	scaleX = float32(c * float64(screen.Y) / float64(screen.X))
	focal = float32(c)
	depth = float32(f / (n - f))
	depthShift = float32(-(f * n) / (f - n))

	return scaleX, focal, depth, depthShift
}
