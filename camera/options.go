// SPDX-License-Identifier: MIT

// Package camera: functional options for the matrix and basis builders.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults,
//   - WithX constructors that panic on nonsensical values,
//   - gatherOptions, which resolves a user option list.
//
// Options never change a formula, only its inputs: the perspective camera
// offset, the model scale and the world-up reference of RightVector.

package camera

import (
	"math"

	"github.com/katalvlaran/lina/vector"
)

// ---------- Defaults (single source of truth) ----------

var (
	// DefaultOffset is the camera-space offset written into the perspective
	// translation terms as (x, y, -z).
	DefaultOffset = vector.NewVector3[float32](0, 0, 1)

	// DefaultScale is the model scale (no scaling).
	DefaultScale = vector.NewVector4[float32](1, 1, 1, 1)

	// DefaultWorldUp is the world-up reference for RightVector (+Y).
	DefaultWorldUp = vector.NewVector3[float32](0, 1, 0)
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicOffsetInvalid  = "camera: WithOffset: components must not be NaN"
	panicScaleInvalid   = "camera: WithScale: components must not be NaN"
	panicWorldUpInvalid = "camera: WithWorldUp: vector must be non-zero and not NaN"
)

// ---------- Public option type (functional) ----------

// Option mutates builder options. Applying the same Option twice is harmless;
// when several Options touch one field, the last one wins.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; builders resolve them via gatherOptions.
type Options struct {
	offset  vector.Vec3 // DefaultOffset
	scale   vector.Vec4 // DefaultScale
	worldUp vector.Vec3 // DefaultWorldUp
}

// WithOffset overrides the perspective camera offset (default (0,0,1)).
// Panics if any component is NaN.
func WithOffset(v vector.Vec3) Option {
	if hasNaN3(v) {
		panic(panicOffsetInvalid)
	}

	return func(o *Options) { o.offset = v }
}

// WithScale overrides the model scale (default (1,1,1,1)).
// Panics if any component is NaN.
func WithScale(s vector.Vec4) Option {
	if hasNaN3(s.XYZ()) || isNaN32(s.W) {
		panic(panicScaleInvalid)
	}

	return func(o *Options) { o.scale = s }
}

// WithWorldUp overrides the world-up reference used by RightVector
// (default +Y). The vector need not be unit length: the cross product is
// normalized afterwards. Panics on a zero or NaN vector.
func WithWorldUp(v vector.Vec3) Option {
	if hasNaN3(v) || v == (vector.Vec3{}) {
		panic(panicWorldUpInvalid)
	}

	return func(o *Options) { o.worldUp = v }
}

// gatherOptions applies user options over the defaults, in order.
func gatherOptions(user ...Option) Options {
	o := Options{
		offset:  DefaultOffset,
		scale:   DefaultScale,
		worldUp: DefaultWorldUp,
	}
	for _, set := range user {
		if set != nil {
			set(&o) // last-writer-wins
		}
	}

	return o
}

func isNaN32(f float32) bool { return math.IsNaN(float64(f)) }

func hasNaN3(v vector.Vec3) bool {
	return isNaN32(v.X) || isNaN32(v.Y) || isNaN32(v.Z)
}
