// SPDX-License-Identifier: MIT

package camera

import (
	"fmt"
	"strings"
)

// Layout selects the matrix convention a builder emits.
//
//	RowMajor:    translation in the last column, vectors multiply on the right.
//	ColumnMajor: the transpose, translation in the bottom row. This is the
//	             memory order column-major graphics APIs expect.
type Layout int

const (
	// RowMajor is the zero value and the default.
	RowMajor Layout = iota
	// ColumnMajor emits the transpose of RowMajor.
	ColumnMajor
)

const (
	layoutRow    = "row"
	layoutColumn = "column"
)

// ParseLayout maps "row" / "column" (case-insensitive, surrounding spaces
// ignored) to a Layout. The empty string selects RowMajor.
func ParseLayout(s string) (Layout, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", layoutRow:
		return RowMajor, nil
	case layoutColumn:
		return ColumnMajor, nil
	default:
		return RowMajor, fmt.Errorf("%q: %w", s, ErrInvalidLayout)
	}
}

// String returns "row" or "column".
func (l Layout) String() string {
	switch l {
	case RowMajor:
		return layoutRow
	case ColumnMajor:
		return layoutColumn
	default:
		return fmt.Sprintf("Layout(%d)", int(l))
	}
}
