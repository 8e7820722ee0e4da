// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Arithmetic never fails; only the indexed accessors (At/Set/M/SetM/Row/Col)
// report errors. Callers match them via errors.Is.

package matrix

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "matrix: ..." for grep-ability. Accessors
// wrap the sentinel with the type, method and coordinates, e.g.
// "Mat4.At(4,0): matrix: index out of range".
var (
	// ErrOutOfRange indicates that a row or column index is outside the matrix.
	// Public indexers MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")
)

// method tags used in error wrappers
const (
	ctxAt   = "At"
	ctxSet  = "Set"
	ctxM    = "M"
	ctxSetM = "SetM"
	ctxRow  = "Row"
	ctxCol  = "Col"
)

// cellErrorf wraps err with the receiver type, method and call-site indices.
// Indices are reported as the caller passed them (zero- or one-based).
func cellErrorf(typ, method string, row, col int, err error) error {
	return fmt.Errorf("%s.%s(%d,%d): %w", typ, method, row, col, err)
}

// lineErrorf is cellErrorf for single-index accessors (Row/Col).
func lineErrorf(typ, method string, i int, err error) error {
	return fmt.Errorf("%s.%s(%d): %w", typ, method, i, err)
}
