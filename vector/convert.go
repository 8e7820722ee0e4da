// SPDX-License-Identifier: MIT

package vector

// Scalar-type conversions. Each component goes through Go's ordinary numeric
// conversion, so float→int truncates toward zero and out-of-range values
// follow the usual implementation-defined wrapping.
//
//	iv := vector.Convert3[int](vector.Vec3{1.9, -2.7, 3})  // {1 -2 3}

// Convert2 converts v to scalar type U.
func Convert2[U, T Number](v Vector2[T]) Vector2[U] {
	return Vector2[U]{X: U(v.X), Y: U(v.Y)}
}

// Convert3 converts v to scalar type U.
func Convert3[U, T Number](v Vector3[T]) Vector3[U] {
	return Vector3[U]{X: U(v.X), Y: U(v.Y), Z: U(v.Z)}
}

// Convert4 converts v to scalar type U.
func Convert4[U, T Number](v Vector4[T]) Vector4[U] {
	return Vector4[U]{X: U(v.X), Y: U(v.Y), Z: U(v.Z), W: U(v.W)}
}

// ConvertRect converts r to scalar type U.
func ConvertRect[U, T Number](r Rect[T]) Rect[U] {
	return Rect[U]{X: U(r.X), Y: U(r.Y), W: U(r.W), H: U(r.H)}
}
