// SPDX-License-Identifier: MIT

package vector

import (
	"github.com/katalvlaran/lina/diag"
	"go.uber.org/zap"
)

// Signed is a constraint for signed integer scalars.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is a constraint for unsigned integer scalars.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Float is a constraint for floating-point scalars.
type Float interface {
	~float32 | ~float64
}

// Number is the scalar constraint shared by every vector type.
type Number interface {
	Signed | Unsigned | Float
}

// Shorthand instantiations.
type (
	Vec2 = Vector2[float32]
	Vec3 = Vector3[float32]
	Vec4 = Vector4[float32]

	IVec2 = Vector2[int]
	IVec3 = Vector3[int]
	IVec4 = Vector4[int]

	UVec2 = Vector2[uint]
	UVec3 = Vector3[uint]
	UVec4 = Vector4[uint]
)

const msgZeroLength = "vector: normalizing a zero-length vector"

// debugZeroLength reports a zero-length normalization. It never alters the
// arithmetic that follows.
func debugZeroLength(op string) {
	if ce := diag.Logger().Check(zap.DebugLevel, msgZeroLength); ce != nil {
		ce.Write(zap.String("op", op))
	}
}
