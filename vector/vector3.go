// SPDX-License-Identifier: MIT

package vector

import "math"

// Vector3 is a 3-component vector.
type Vector3[T Number] struct {
	X, Y, Z T
}

// NewVector3 returns (x, y, z).
func NewVector3[T Number](x, y, z T) Vector3[T] {
	return Vector3[T]{X: x, Y: y, Z: z}
}

// Reset sets every component to zero.
func (v *Vector3[T]) Reset() { *v = Vector3[T]{} }

// Neg returns -v.
func (v Vector3[T]) Neg() Vector3[T] {
	return Vector3[T]{-v.X, -v.Y, -v.Z}
}

// Add returns v + o.
func (v Vector3[T]) Add(o Vector3[T]) Vector3[T] {
	return Vector3[T]{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// AddScalar returns v + (s, s, s).
func (v Vector3[T]) AddScalar(s T) Vector3[T] {
	return Vector3[T]{v.X + s, v.Y + s, v.Z + s}
}

// Sub returns v - o.
func (v Vector3[T]) Sub(o Vector3[T]) Vector3[T] {
	return Vector3[T]{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// SubScalar returns v - (s, s, s).
func (v Vector3[T]) SubScalar(s T) Vector3[T] {
	return Vector3[T]{v.X - s, v.Y - s, v.Z - s}
}

// Mul returns the component-wise product of v and o.
func (v Vector3[T]) Mul(o Vector3[T]) Vector3[T] {
	return Vector3[T]{v.X * o.X, v.Y * o.Y, v.Z * o.Z}
}

// MulScalar returns v scaled by s.
func (v Vector3[T]) MulScalar(s T) Vector3[T] {
	return Vector3[T]{v.X * s, v.Y * s, v.Z * s}
}

// Div returns the component-wise quotient of v and o.
func (v Vector3[T]) Div(o Vector3[T]) Vector3[T] {
	return Vector3[T]{v.X / o.X, v.Y / o.Y, v.Z / o.Z}
}

// DivScalar returns v with every component divided by s.
func (v Vector3[T]) DivScalar(s T) Vector3[T] {
	return Vector3[T]{v.X / s, v.Y / s, v.Z / s}
}

// AddAssign sets v to v + o.
func (v *Vector3[T]) AddAssign(o Vector3[T]) {
	v.X += o.X
	v.Y += o.Y
	v.Z += o.Z
}

// AddScalarAssign adds s to every component of v.
func (v *Vector3[T]) AddScalarAssign(s T) {
	v.X += s
	v.Y += s
	v.Z += s
}

// SubAssign sets v to v - o.
func (v *Vector3[T]) SubAssign(o Vector3[T]) {
	v.X -= o.X
	v.Y -= o.Y
	v.Z -= o.Z
}

// SubScalarAssign subtracts s from every component of v.
func (v *Vector3[T]) SubScalarAssign(s T) {
	v.X -= s
	v.Y -= s
	v.Z -= s
}

// MulAssign multiplies v by o component-wise.
func (v *Vector3[T]) MulAssign(o Vector3[T]) {
	v.X *= o.X
	v.Y *= o.Y
	v.Z *= o.Z
}

// MulScalarAssign scales v by s.
func (v *Vector3[T]) MulScalarAssign(s T) {
	v.X *= s
	v.Y *= s
	v.Z *= s
}

// DivAssign divides v by o component-wise.
func (v *Vector3[T]) DivAssign(o Vector3[T]) {
	v.X /= o.X
	v.Y /= o.Y
	v.Z /= o.Z
}

// DivScalarAssign divides every component of v by s.
func (v *Vector3[T]) DivScalarAssign(s T) {
	v.X /= s
	v.Y /= s
	v.Z /= s
}

// Equal reports whether all components match exactly.
func (v Vector3[T]) Equal(o Vector3[T]) bool {
	return v.X == o.X && v.Y == o.Y && v.Z == o.Z
}

// Length returns the Euclidean norm of v.
func (v Vector3[T]) Length() float64 {
	x, y, z := float64(v.X), float64(v.Y), float64(v.Z)
	return math.Sqrt(x*x + y*y + z*z)
}

// Normalize divides v by its own length in place.
func (v *Vector3[T]) Normalize() {
	l := v.Length()
	if l == 0 {
		debugZeroLength("Vector3.Normalize")
	}
	v.DivScalarAssign(T(l))
}

// Normalized returns v divided by its length; v is left untouched.
func (v Vector3[T]) Normalized() Vector3[T] {
	v.Normalize()
	return v
}

// Dot returns v · o.
func (v Vector3[T]) Dot(o Vector3[T]) T {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns v × o.
func (v Vector3[T]) Cross(o Vector3[T]) Vector3[T] {
	return Cross(v, o)
}

// Dot3 returns a · b.
func Dot3[T Number](a, b Vector3[T]) T {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns the right-handed cross product a × b.
func Cross[T Number](a, b Vector3[T]) Vector3[T] {
	return Vector3[T]{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}
