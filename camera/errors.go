// SPDX-License-Identifier: MIT
// Package camera: sentinel error set.
// The matrix builders never fail; only rig configuration (Config.Validate,
// LoadConfig, Build) returns errors. Each sentinel is wrapped with the
// offending field path, e.g. "projection.fov: camera: field of view ...",
// and callers match it via errors.Is.

package camera

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLayout indicates a layout name other than "row" or "column".
	ErrInvalidLayout = errors.New("camera: invalid matrix layout")

	// ErrInvalidVector indicates a vector field with the wrong number of
	// components, a NaN component, or a zero world-up reference.
	ErrInvalidVector = errors.New("camera: invalid vector")

	// ErrInvalidScreen indicates a non-positive screen width or height.
	ErrInvalidScreen = errors.New("camera: screen size must be positive")

	// ErrInvalidFOV indicates a field of view outside (0, 180) degrees.
	ErrInvalidFOV = errors.New("camera: field of view must be in (0, 180) degrees")

	// ErrInvalidClipRange indicates clip planes violating far > near > 0.
	ErrInvalidClipRange = errors.New("camera: clip range must satisfy far > near > 0")
)

// fieldErrorf attaches the config field path to a sentinel.
func fieldErrorf(field string, err error) error {
	return fmt.Errorf("%s: %w", field, err)
}
