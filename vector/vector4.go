// SPDX-License-Identifier: MIT

package vector

import "math"

// Vector4 is a 4-component homogeneous vector.
//
// W distinguishes points (W=1) from directions (W=0) under affine
// transforms. The zero value is (0,0,0,0); the constructors below make the
// homogeneous default explicit:
//
//	Origin4()            -> (0, 0, 0, 1)
//	Point4(x, y, z)      -> (x, y, z, 1)
//	Direction4(x, y, z)  -> (x, y, z, 0)
//	Vector4From3(v)      -> (v.X, v.Y, v.Z, 1)
//	Vector4From3W(v, w)  -> (v.X, v.Y, v.Z, w)
type Vector4[T Number] struct {
	X, Y, Z, W T
}

// NewVector4 returns (x, y, z, w).
func NewVector4[T Number](x, y, z, w T) Vector4[T] {
	return Vector4[T]{X: x, Y: y, Z: z, W: w}
}

// Origin4 returns the homogeneous origin (0, 0, 0, 1).
func Origin4[T Number]() Vector4[T] {
	return Vector4[T]{W: 1}
}

// Point4 returns (x, y, z, 1).
func Point4[T Number](x, y, z T) Vector4[T] {
	return Vector4[T]{X: x, Y: y, Z: z, W: 1}
}

// Direction4 returns (x, y, z, 0).
func Direction4[T Number](x, y, z T) Vector4[T] {
	return Vector4[T]{X: x, Y: y, Z: z}
}

// Vector4From3 extends v with W=1.
func Vector4From3[T Number](v Vector3[T]) Vector4[T] {
	return Vector4From3W(v, 1)
}

// Vector4From3W extends v with the given w.
func Vector4From3W[T Number](v Vector3[T], w T) Vector4[T] {
	return Vector4[T]{X: v.X, Y: v.Y, Z: v.Z, W: w}
}

// XYZ drops the W component.
func (v Vector4[T]) XYZ() Vector3[T] {
	return Vector3[T]{X: v.X, Y: v.Y, Z: v.Z}
}

// Reset sets every component, W included, to zero.
func (v *Vector4[T]) Reset() { *v = Vector4[T]{} }

// Neg returns -v (W is negated too).
func (v Vector4[T]) Neg() Vector4[T] {
	return Vector4[T]{-v.X, -v.Y, -v.Z, -v.W}
}

// Add returns v + o.
func (v Vector4[T]) Add(o Vector4[T]) Vector4[T] {
	return Vector4[T]{v.X + o.X, v.Y + o.Y, v.Z + o.Z, v.W + o.W}
}

// AddScalar returns v + (s, s, s, s).
func (v Vector4[T]) AddScalar(s T) Vector4[T] {
	return Vector4[T]{v.X + s, v.Y + s, v.Z + s, v.W + s}
}

// Sub returns v - o.
func (v Vector4[T]) Sub(o Vector4[T]) Vector4[T] {
	return Vector4[T]{v.X - o.X, v.Y - o.Y, v.Z - o.Z, v.W - o.W}
}

// SubScalar returns v - (s, s, s, s).
func (v Vector4[T]) SubScalar(s T) Vector4[T] {
	return Vector4[T]{v.X - s, v.Y - s, v.Z - s, v.W - s}
}

// Mul returns the component-wise product of v and o.
func (v Vector4[T]) Mul(o Vector4[T]) Vector4[T] {
	return Vector4[T]{v.X * o.X, v.Y * o.Y, v.Z * o.Z, v.W * o.W}
}

// MulScalar returns v scaled by s.
func (v Vector4[T]) MulScalar(s T) Vector4[T] {
	return Vector4[T]{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

// Div returns the component-wise quotient of v and o.
func (v Vector4[T]) Div(o Vector4[T]) Vector4[T] {
	return Vector4[T]{v.X / o.X, v.Y / o.Y, v.Z / o.Z, v.W / o.W}
}

// DivScalar returns v with every component divided by s.
func (v Vector4[T]) DivScalar(s T) Vector4[T] {
	return Vector4[T]{v.X / s, v.Y / s, v.Z / s, v.W / s}
}

// AddAssign sets v to v + o.
func (v *Vector4[T]) AddAssign(o Vector4[T]) {
	v.X += o.X
	v.Y += o.Y
	v.Z += o.Z
	v.W += o.W
}

// AddScalarAssign adds s to every component of v.
func (v *Vector4[T]) AddScalarAssign(s T) {
	v.X += s
	v.Y += s
	v.Z += s
	v.W += s
}

// SubAssign sets v to v - o.
func (v *Vector4[T]) SubAssign(o Vector4[T]) {
	v.X -= o.X
	v.Y -= o.Y
	v.Z -= o.Z
	v.W -= o.W
}

// SubScalarAssign subtracts s from every component of v.
func (v *Vector4[T]) SubScalarAssign(s T) {
	v.X -= s
	v.Y -= s
	v.Z -= s
	v.W -= s
}

// MulAssign multiplies v by o component-wise.
func (v *Vector4[T]) MulAssign(o Vector4[T]) {
	v.X *= o.X
	v.Y *= o.Y
	v.Z *= o.Z
	v.W *= o.W
}

// MulScalarAssign scales v by s.
func (v *Vector4[T]) MulScalarAssign(s T) {
	v.X *= s
	v.Y *= s
	v.Z *= s
	v.W *= s
}

// DivAssign divides v by o component-wise.
func (v *Vector4[T]) DivAssign(o Vector4[T]) {
	v.X /= o.X
	v.Y /= o.Y
	v.Z /= o.Z
	v.W /= o.W
}

// DivScalarAssign divides every component of v by s.
func (v *Vector4[T]) DivScalarAssign(s T) {
	v.X /= s
	v.Y /= s
	v.Z /= s
	v.W /= s
}

// Equal reports whether all four components match exactly.
func (v Vector4[T]) Equal(o Vector4[T]) bool {
	return v.X == o.X && v.Y == o.Y && v.Z == o.Z && v.W == o.W
}

// Length returns the Euclidean norm of v over all four components.
func (v Vector4[T]) Length() float64 {
	x, y, z, w := float64(v.X), float64(v.Y), float64(v.Z), float64(v.W)
	return math.Sqrt(x*x + y*y + z*z + w*w)
}

// Normalize divides v by its own length in place.
func (v *Vector4[T]) Normalize() {
	l := v.Length()
	if l == 0 {
		debugZeroLength("Vector4.Normalize")
	}
	v.DivScalarAssign(T(l))
}

// Normalized returns v divided by its length; v is left untouched.
func (v Vector4[T]) Normalized() Vector4[T] {
	v.Normalize()
	return v
}

// Dot returns v · o.
func (v Vector4[T]) Dot(o Vector4[T]) T {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z + v.W*o.W
}

// Dot4 returns a · b.
func Dot4[T Number](a, b Vector4[T]) T {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z + a.W*b.W
}
