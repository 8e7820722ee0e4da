// SPDX-License-Identifier: MIT
package camera

import (
	"math"
	"testing"

	"github.com/katalvlaran/lina/vector"
	"github.com/stretchr/testify/require"
)

// TestGatherOptionsDefaults verifies the documented defaults.
func TestGatherOptionsDefaults(t *testing.T) {
	o := gatherOptions()
	require.Equal(t, DefaultOffset, o.offset)
	require.Equal(t, DefaultScale, o.scale)
	require.Equal(t, DefaultWorldUp, o.worldUp)

	o = gatherOptions(nil) // nil options are skipped
	require.Equal(t, DefaultOffset, o.offset)
}

// TestGatherOptionsLastWins ensures each Option touches only its field and the last one wins.
func TestGatherOptionsLastWins(t *testing.T) {
	a := vector.NewVector3[float32](1, 2, 3)
	b := vector.NewVector3[float32](4, 5, 6)

	o := gatherOptions(WithOffset(a), WithOffset(b))
	require.Equal(t, b, o.offset)
	require.Equal(t, DefaultScale, o.scale)
	require.Equal(t, DefaultWorldUp, o.worldUp)

	s := vector.NewVector4[float32](2, 2, 2, 1)
	o = gatherOptions(WithScale(s), WithWorldUp(a))
	require.Equal(t, s, o.scale)
	require.Equal(t, a, o.worldUp)
	require.Equal(t, DefaultOffset, o.offset)
}

// TestOptionPanics ensures constructors reject nonsensical values with stable messages.
func TestOptionPanics(t *testing.T) {
	nan := float32(math.NaN())

	require.PanicsWithValue(t, panicOffsetInvalid, func() {
		WithOffset(vector.NewVector3(nan, 0, 0))
	})
	require.PanicsWithValue(t, panicScaleInvalid, func() {
		WithScale(vector.NewVector4(1, 1, 1, nan))
	})
	require.PanicsWithValue(t, panicWorldUpInvalid, func() {
		WithWorldUp(vector.Vec3{})
	})
	require.PanicsWithValue(t, panicWorldUpInvalid, func() {
		WithWorldUp(vector.NewVector3(0, nan, 0))
	})

	require.NotPanics(t, func() {
		WithWorldUp(vector.NewVector3[float32](0, 0, 5)) // non-unit is fine
	})
}
