// SPDX-License-Identifier: MIT

package vector

// Rect is an axis-aligned rectangle given by its origin (X, Y) and size (W, H).
type Rect[T Number] struct {
	X, Y, W, H T
}

// NewRect returns the rectangle at (x, y) with size w×h.
func NewRect[T Number](x, y, w, h T) Rect[T] {
	return Rect[T]{X: x, Y: y, W: w, H: h}
}

// Origin returns (X, Y).
func (r Rect[T]) Origin() Vector2[T] { return Vector2[T]{X: r.X, Y: r.Y} }

// Size returns (W, H).
func (r Rect[T]) Size() Vector2[T] { return Vector2[T]{X: r.W, Y: r.H} }

// Equal reports whether origin and size match exactly.
func (r Rect[T]) Equal(o Rect[T]) bool {
	return r.X == o.X && r.Y == o.Y && r.W == o.W && r.H == o.H
}
