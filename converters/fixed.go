// SPDX-License-Identifier: MIT

package converters

import (
	"math"

	"github.com/katalvlaran/lina/vector"
	"golang.org/x/image/math/fixed"
)

// 26.6 fixed point has 6 fractional bits.
const fixedOne = 1 << 6

// toInt26_6 rounds f to the nearest 1/64. Values outside the int32 range
// wrap; callers are expected to stay within ±2^25 pixels.
func toInt26_6(f float32) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(float64(f) * fixedOne))
}

func fromInt26_6(x fixed.Int26_6) float32 {
	return float32(x) / fixedOne
}

// ToPoint26_6 converts v to a sub-pixel point.
func ToPoint26_6(v vector.Vec2) fixed.Point26_6 {
	return fixed.Point26_6{X: toInt26_6(v.X), Y: toInt26_6(v.Y)}
}

// FromPoint26_6 converts p back to float32 pixels.
func FromPoint26_6(p fixed.Point26_6) vector.Vec2 {
	return vector.NewVector2(fromInt26_6(p.X), fromInt26_6(p.Y))
}

// ToRectangle26_6 converts an origin+size rectangle to a sub-pixel
// rectangle with Min = (x, y) and Max = (x+w, y+h).
func ToRectangle26_6(r vector.Rect[float32]) fixed.Rectangle26_6 {
	return fixed.Rectangle26_6{
		Min: ToPoint26_6(r.Origin()),
		Max: ToPoint26_6(r.Origin().Add(r.Size())),
	}
}

// FromRectangle26_6 converts r to an origin+size rectangle.
func FromRectangle26_6(r fixed.Rectangle26_6) vector.Rect[float32] {
	return vector.NewRect(
		fromInt26_6(r.Min.X),
		fromInt26_6(r.Min.Y),
		fromInt26_6(r.Max.X-r.Min.X),
		fromInt26_6(r.Max.Y-r.Min.Y),
	)
}
