// Package matrix_test contains unit tests for the Mat4 value type:
// construction, factories, composition and predicates.
package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lina/matrix"
	"github.com/katalvlaran/lina/vector"
	"github.com/stretchr/testify/require"
)

// randMat4 fills a Mat4 with deterministic values in [-10, 10).
func randMat4(r *rand.Rand) matrix.Mat4 {
	var m matrix.Mat4
	for i := range m {
		m[i] = r.Float32()*20 - 10
	}
	return m
}

// TestMat4Construction covers identity, zero value and the row-major constructor.
func TestMat4Construction(t *testing.T) {
	// Default construction is identity; the zero value is the zero matrix.
	require.True(t, matrix.NewMat4().IsIdentity())
	require.Equal(t, matrix.NewMat4(), matrix.Mat4Identity())
	require.True(t, matrix.Mat4Zeroed().IsZeroed())
	require.Equal(t, matrix.Mat4{}, matrix.Mat4Zeroed())
	require.False(t, matrix.Mat4{}.IsIdentity())

	m := matrix.Mat4Of(
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	)
	v, err := m.At(2, 1)
	require.NoError(t, err)
	require.Equal(t, float32(10), v) // row 2, col 1 → index 9
	require.Equal(t, float32(10), m[2*4+1])
}

// TestMat4IdentityNeutral verifies I·M == M == M·I.
func TestMat4IdentityNeutral(t *testing.T) {
	r := rand.New(rand.NewSource(1337))
	id := matrix.Mat4Identity()
	for i := 0; i < 50; i++ {
		m := randMat4(r)
		require.Equal(t, m, id.Mul(m))
		require.Equal(t, m, m.Mul(id))
	}
}

// TestMat4TransposeInvolution verifies (Mᵀ)ᵀ == M and the in-place form.
func TestMat4TransposeInvolution(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		m := randMat4(r)
		require.Equal(t, m, m.Transposed().Transposed())

		inPlace := m
		inPlace.Transpose()
		require.Equal(t, m.Transposed(), inPlace)
	}

	m := matrix.Mat4Translation(vector.NewVector3[float32](1, 2, 3)).Transposed()
	require.Equal(t, float32(1), m[3*4+0]) // translation moved to the bottom row
	require.Equal(t, float32(2), m[3*4+1])
	require.Equal(t, float32(3), m[3*4+2])
}

// TestMat4RotationOrder verifies Rotation(v) == RX(v.X)·RY(v.Y)·RZ(v.Z) exactly.
func TestMat4RotationOrder(t *testing.T) {
	v := vector.NewVector3[float32](0.3, -1.1, 2.4)
	want := matrix.Mat4RotationX(v.X).Mul(matrix.Mat4RotationY(v.Y)).Mul(matrix.Mat4RotationZ(v.Z))
	require.Equal(t, want, matrix.Mat4Rotation(v))

	m := matrix.NewMat4()
	m.Rotate(v)
	require.Equal(t, want, m) // identity · R == R

	// Rotation order matters: X·Z differs from Z·X for non-trivial angles.
	xz := matrix.Mat4RotationX(0.5).Mul(matrix.Mat4RotationZ(0.5))
	zx := matrix.Mat4RotationZ(0.5).Mul(matrix.Mat4RotationX(0.5))
	require.NotEqual(t, xz, zx)
}

// TestMat4RotationAxes checks quarter turns about each axis (radians).
func TestMat4RotationAxes(t *testing.T) {
	const quarter = float32(math.Pi / 2)
	const eps = 1e-6

	cases := []struct {
		name string
		m    matrix.Mat4
		in   vector.Vec4
		want vector.Vec4
	}{
		{"X: y→z", matrix.Mat4RotationX(quarter), vector.Direction4[float32](0, 1, 0), vector.Direction4[float32](0, 0, 1)},
		{"Y: z→x", matrix.Mat4RotationY(quarter), vector.Direction4[float32](0, 0, 1), vector.Direction4[float32](1, 0, 0)},
		{"Z: x→y", matrix.Mat4RotationZ(quarter), vector.Direction4[float32](1, 0, 0), vector.Direction4[float32](0, 1, 0)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.m.MulVec(tc.in)
			require.InDelta(t, tc.want.X, got.X, eps)
			require.InDelta(t, tc.want.Y, got.Y, eps)
			require.InDelta(t, tc.want.Z, got.Z, eps)
			require.Equal(t, float32(0), got.W)
		})
	}
}

// TestMat4TranslationPattern checks the cell layout of a translation matrix.
func TestMat4TranslationPattern(t *testing.T) {
	m := matrix.Mat4Translation(vector.NewVector3[float32](1, 2, 3))
	want := matrix.Mat4Of(
		1, 0, 0, 1,
		0, 1, 0, 2,
		0, 0, 1, 3,
		0, 0, 0, 1,
	)
	require.Equal(t, want, m)
	require.True(t, m.IsTranslation())
	require.False(t, m.IsIdentity())
}

// TestMat4IsTranslation covers the translation-only predicate.
func TestMat4IsTranslation(t *testing.T) {
	require.True(t, matrix.NewMat4().IsTranslation()) // translation by zero

	s := matrix.Mat4Scalation(vector.NewVector4[float32](2, 1, 1, 1))
	require.False(t, s.IsTranslation())

	m := matrix.Mat4Translation(vector.NewVector3[float32](4, 5, 6))
	m[3*4+0] = 1 // bottom row must stay (0,0,0,1)
	require.False(t, m.IsTranslation())

	require.False(t, matrix.Mat4Zeroed().IsTranslation())
}

// TestMat4ScalationPattern checks the diagonal layout.
func TestMat4ScalationPattern(t *testing.T) {
	m := matrix.Mat4Scalation(vector.NewVector4[float32](2, 3, 4, 5))
	require.Equal(t, matrix.Mat4Of(
		2, 0, 0, 0,
		0, 3, 0, 0,
		0, 0, 4, 0,
		0, 0, 0, 5,
	), m)
}

// TestMat4MulAssignSnapshot verifies MulAssign matches Mul for non-commuting operands.
func TestMat4MulAssignSnapshot(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 50; i++ {
		a, b := randMat4(r), randMat4(r)
		want := a.Mul(b)
		got := a
		got.MulAssign(b)
		require.Equal(t, want, got)
	}

	// Integer-valued sanity check against a hand computed product.
	a := matrix.Mat4Of(
		1, 2, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	)
	b := matrix.Mat4Of(
		1, 0, 0, 0,
		3, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	)
	ab := a
	ab.MulAssign(b)
	require.Equal(t, matrix.Mat4Of(
		7, 2, 0, 0,
		3, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	), ab)
	require.NotEqual(t, a.Mul(b), b.Mul(a))
}

// TestMat4InstanceTransforms verifies instance mutators post-multiply.
func TestMat4InstanceTransforms(t *testing.T) {
	m := matrix.NewMat4()
	m.Translate(vector.NewVector3[float32](1, 2, 3))
	m.Translate(vector.NewVector3[float32](1, 1, 1))
	require.Equal(t, matrix.Mat4Translation(vector.NewVector3[float32](2, 3, 4)), m)

	// S·T: the translation is scaled because T is applied first.
	s := matrix.Mat4Scalation(vector.NewVector4[float32](2, 2, 2, 1))
	s.Translate(vector.NewVector3[float32](1, 2, 3))
	c, err := s.Col(3)
	require.NoError(t, err)
	require.Equal(t, vector.NewVector4[float32](2, 4, 6, 1), c)

	sc := matrix.NewMat4()
	sc.Scale(vector.NewVector4[float32](2, 3, 4, 1))
	require.Equal(t, matrix.Mat4Scalation(vector.NewVector4[float32](2, 3, 4, 1)), sc)

	rx := matrix.NewMat4()
	rx.RotateX(0.25)
	require.Equal(t, matrix.Mat4RotationX(0.25), rx)
	ry := matrix.NewMat4()
	ry.RotateY(0.25)
	require.Equal(t, matrix.Mat4RotationY(0.25), ry)
	rz := matrix.NewMat4()
	rz.RotateZ(0.25)
	require.Equal(t, matrix.Mat4RotationZ(0.25), rz)
}

// TestMat4MulVec verifies the canonical row·vector product.
func TestMat4MulVec(t *testing.T) {
	tr := matrix.Mat4Translation(vector.NewVector3[float32](1, 2, 3))

	// Points (w=1) move, directions (w=0) don't.
	require.Equal(t, vector.Point4[float32](5, 7, 9), tr.MulVec(vector.Point4[float32](4, 5, 6)))
	require.Equal(t, vector.Direction4[float32](4, 5, 6), tr.MulVec(vector.Direction4[float32](4, 5, 6)))

	m := matrix.Mat4Of(
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	)
	got := m.MulVec(vector.NewVector4[float32](1, 0, 0, 0))
	require.Equal(t, vector.NewVector4[float32](1, 5, 9, 13), got) // first column

	got = m.MulVec(vector.NewVector4[float32](1, 1, 1, 1))
	require.Equal(t, vector.NewVector4[float32](10, 26, 42, 58), got) // row sums
}

// TestMat4AddSub covers matrix-matrix element-wise operators.
func TestMat4AddSub(t *testing.T) {
	a := matrix.NewMat4()
	require.True(t, a.IsIdentity())

	b := matrix.Mat4Of(
		0, 1, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
	)
	a.AddAssign(b)
	require.False(t, a.IsIdentity()) // no longer identity after a non-zero add

	a.SubAssign(b)
	require.True(t, a.IsIdentity())

	sum := matrix.NewMat4().Add(matrix.NewMat4())
	require.Equal(t, matrix.Mat4Scalation(vector.NewVector4[float32](2, 2, 2, 2)), sum)
	require.True(t, sum.Sub(sum).IsZeroed())
}

// TestMat4AddSubVec verifies vectors act on column 0.
func TestMat4AddSubVec(t *testing.T) {
	v := vector.NewVector4[float32](1, 2, 3, 4)

	got := matrix.NewMat4().AddVec(v)
	require.Equal(t, matrix.Mat4Of(
		2, 0, 0, 0,
		2, 1, 0, 0,
		3, 0, 1, 0,
		4, 0, 0, 1,
	), got)

	got = matrix.NewMat4().SubVec(v)
	require.Equal(t, matrix.Mat4Of(
		0, 0, 0, 0,
		-2, 1, 0, 0,
		-3, 0, 1, 0,
		-4, 0, 0, 1,
	), got)

	m := matrix.NewMat4()
	m.AddVecAssign(v)
	m.SubVecAssign(v)
	require.True(t, m.IsIdentity())
}

// TestMat4AllClose covers the tolerance comparison.
func TestMat4AllClose(t *testing.T) {
	full := matrix.Mat4RotationZ(2 * math.Pi)
	require.NotEqual(t, matrix.Mat4Identity(), full) // float rounding
	require.True(t, matrix.Mat4AllClose(full, matrix.Mat4Identity(), 0, 1e-6))
	require.False(t, matrix.Mat4AllClose(matrix.Mat4Zeroed(), matrix.Mat4Identity(), 1e-3, 1e-3))

	// Negative tolerances are normalized.
	require.True(t, matrix.Mat4AllClose(full, matrix.Mat4Identity(), -1e-9, -1e-6))

	nan := matrix.NewMat4()
	nan[0] = float32(math.NaN())
	require.False(t, matrix.Mat4AllClose(nan, nan, 1, 1))
}

// TestMat4String checks the row dump format.
func TestMat4String(t *testing.T) {
	m := matrix.Mat4Translation(vector.NewVector3[float32](0.5, -2, 3))
	want := "[1, 0, 0, 0.5]\n" +
		"[0, 1, 0, -2]\n" +
		"[0, 0, 1, 3]\n" +
		"[0, 0, 0, 1]\n"
	require.Equal(t, want, m.String())
}
