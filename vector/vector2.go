// SPDX-License-Identifier: MIT

package vector

import "math"

// Vector2 is a 2-component vector.
type Vector2[T Number] struct {
	X, Y T
}

// NewVector2 returns (x, y).
func NewVector2[T Number](x, y T) Vector2[T] {
	return Vector2[T]{X: x, Y: y}
}

// Reset sets both components to zero.
func (v *Vector2[T]) Reset() { *v = Vector2[T]{} }

// Neg returns -v.
func (v Vector2[T]) Neg() Vector2[T] { return Vector2[T]{-v.X, -v.Y} }

// Add returns v + o.
func (v Vector2[T]) Add(o Vector2[T]) Vector2[T] { return Vector2[T]{v.X + o.X, v.Y + o.Y} }

// AddScalar returns v + (s, s).
func (v Vector2[T]) AddScalar(s T) Vector2[T] { return Vector2[T]{v.X + s, v.Y + s} }

// Sub returns v - o.
func (v Vector2[T]) Sub(o Vector2[T]) Vector2[T] { return Vector2[T]{v.X - o.X, v.Y - o.Y} }

// SubScalar returns v - (s, s).
func (v Vector2[T]) SubScalar(s T) Vector2[T] { return Vector2[T]{v.X - s, v.Y - s} }

// Mul returns the component-wise product of v and o.
func (v Vector2[T]) Mul(o Vector2[T]) Vector2[T] { return Vector2[T]{v.X * o.X, v.Y * o.Y} }

// MulScalar returns v scaled by s.
func (v Vector2[T]) MulScalar(s T) Vector2[T] { return Vector2[T]{v.X * s, v.Y * s} }

// Div returns the component-wise quotient of v and o.
func (v Vector2[T]) Div(o Vector2[T]) Vector2[T] { return Vector2[T]{v.X / o.X, v.Y / o.Y} }

// DivScalar returns v with both components divided by s.
func (v Vector2[T]) DivScalar(s T) Vector2[T] { return Vector2[T]{v.X / s, v.Y / s} }

// AddAssign sets v to v + o.
func (v *Vector2[T]) AddAssign(o Vector2[T]) {
	v.X += o.X
	v.Y += o.Y
}

// AddScalarAssign adds s to both components of v.
func (v *Vector2[T]) AddScalarAssign(s T) {
	v.X += s
	v.Y += s
}

// SubAssign sets v to v - o.
func (v *Vector2[T]) SubAssign(o Vector2[T]) {
	v.X -= o.X
	v.Y -= o.Y
}

// SubScalarAssign subtracts s from both components of v.
func (v *Vector2[T]) SubScalarAssign(s T) {
	v.X -= s
	v.Y -= s
}

// MulAssign multiplies v by o component-wise.
func (v *Vector2[T]) MulAssign(o Vector2[T]) {
	v.X *= o.X
	v.Y *= o.Y
}

// MulScalarAssign scales v by s.
func (v *Vector2[T]) MulScalarAssign(s T) {
	v.X *= s
	v.Y *= s
}

// DivAssign divides v by o component-wise.
func (v *Vector2[T]) DivAssign(o Vector2[T]) {
	v.X /= o.X
	v.Y /= o.Y
}

// DivScalarAssign divides both components of v by s.
func (v *Vector2[T]) DivScalarAssign(s T) {
	v.X /= s
	v.Y /= s
}

// Equal reports whether both components match exactly.
func (v Vector2[T]) Equal(o Vector2[T]) bool { return v.X == o.X && v.Y == o.Y }

// Length returns the Euclidean norm of v.
func (v Vector2[T]) Length() float64 {
	x, y := float64(v.X), float64(v.Y)
	return math.Sqrt(x*x + y*y)
}

// Normalize divides v by its own length in place.
func (v *Vector2[T]) Normalize() {
	l := v.Length()
	if l == 0 {
		debugZeroLength("Vector2.Normalize")
	}
	v.DivScalarAssign(T(l))
}

// Normalized returns v divided by its length; v is left untouched.
func (v Vector2[T]) Normalized() Vector2[T] {
	v.Normalize()
	return v
}

// Dot returns v · o.
func (v Vector2[T]) Dot(o Vector2[T]) T { return v.X*o.X + v.Y*o.Y }

// Dot2 returns a · b.
func Dot2[T Number](a, b Vector2[T]) T {
	return a.X*b.X + a.Y*b.Y
}
