// Package lina is a small linear-algebra toolkit for real-time graphics:
// fixed-size vectors and matrices plus the camera transforms built on them.
//
// What is in the box?
//
//	• Vectors: generic Vector2/3/4 over any integer or float type, with
//	  component-wise arithmetic, length, normalization, dot and cross
//	• Matrices: float32 Mat2/Mat3/Mat4 stored row-major, with translation,
//	  scale and rotation factories, composition, transposition and predicates
//	• Camera: view, perspective and model builders in row-major and
//	  column-major conventions, forward/right/up derivation from pitch/yaw,
//	  and a YAML rig loader
//	• Converters: adapters to image.Point/Rectangle and to
//	  golang.org/x/image/math/{f32,fixed}
//
// Everything is a value type. Value receivers return new values and pointer
// receivers mutate in place, so nothing allocates on the arithmetic paths.
//
// Packages:
//
//	vector/      Vector2/3/4, Rect and scalar conversion
//	matrix/      Mat2, Mat3, Mat4 and their shared kernels
//	camera/      View/Perspective/Model builders, Basis, Config and Rig
//	converters/  image, f32 and fixed adapters
//	diag/        zap logger used by debug assertions and the CLI
//	cmd/linacam/ prints the matrices of a YAML camera rig
//
// Quick example:
//
//	eye := vector.NewVector3[float32](0, 0, 5)
//	b := camera.NewBasis(0, -math.Pi/2)
//	view := b.View(camera.RowMajor, eye)
//	p := view.MulVec(vector.Point4[float32](0, 0, 0)) // ≈ {0 0 -5 1}
//
//	go get github.com/katalvlaran/lina
package lina
