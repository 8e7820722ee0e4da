// SPDX-License-Identifier: MIT

package converters

import (
	"image"

	"github.com/katalvlaran/lina/vector"
)

// ToPoint converts v to an image.Point, truncating float components.
func ToPoint[T vector.Number](v vector.Vector2[T]) image.Point {
	return image.Point{X: int(v.X), Y: int(v.Y)}
}

// FromPoint converts p to an integer vector.
func FromPoint(p image.Point) vector.IVec2 {
	return vector.NewVector2(p.X, p.Y)
}

// ToRectangle converts an origin+size rectangle to image.Rectangle with
// Min = (x, y) and Max = (x+w, y+h). Each field is converted to int before
// the addition, matching a per-field cast. A negative size yields a
// rectangle for which Empty reports true; it is not canonicalized.
func ToRectangle[T vector.Number](r vector.Rect[T]) image.Rectangle {
	x, y := int(r.X), int(r.Y)

	return image.Rectangle{
		Min: image.Point{X: x, Y: y},
		Max: image.Point{X: x + int(r.W), Y: y + int(r.H)},
	}
}

// FromRectangle converts r to an origin+size rectangle.
func FromRectangle(r image.Rectangle) vector.Rect[int] {
	return vector.NewRect(r.Min.X, r.Min.Y, r.Dx(), r.Dy())
}
