package vector_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linsolve/vector"
)

func TestMagnitudeAndNormalized(t *testing.T) {
	t.Parallel()

	AssertNear(t, "7.440282924728065", MustVector(t, "-0.221", "7.437").Magnitude(), 1e-12)
	AssertNear(t, "10.884187567292289", MustVector(t, "8.813", "-1.331", "-6.247").Magnitude(), 1e-12)
	AssertNear(t, 5, MustVector(t, 3, 4).Magnitude(), 1e-28)

	u, err := MustVector(t, 3, 4).Normalized()
	require.NoError(t, err)
	assert.True(t, u.Equal(MustVector(t, "0.6", "0.8")), "got %s", u)

	_, err = MustVector(t, 0, 0).Normalized()
	require.ErrorIs(t, err, vector.ErrZeroVector)
}

// TestNormalizedHasUnitLength checks ‖v/‖v‖‖ = 1 within 1e-9.
func TestNormalizedHasUnitLength(t *testing.T) {
	t.Parallel()

	for _, v := range []vector.Vector{
		MustVector(t, "5.581", "-2.136"),
		MustVector(t, "1.996", "3.108", "-4.554"),
		MustVector(t, 1, 1),
		MustVector(t, "0.000001", "0", "0.000002"),
		MustVector(t, 1, 2, 3, 4, 5, 6, 7),
	} {
		u, err := v.Normalized()
		require.NoError(t, err)
		AssertNear(t, 1, u.Magnitude(), 1e-9)
	}
}

// TestHugeCoordinates: squared magnitudes beyond float64 range still work.
func TestHugeCoordinates(t *testing.T) {
	t.Parallel()

	v := MustVector(t, "1e200", "1e200")
	w := MustVector(t, "2e200", "2e200")

	var m decimal.Decimal
	require.NotPanics(t, func() { m = v.Magnitude() })
	AssertNear(t, "1.41421356237309504880168872421e200", m, 1e171)

	u, err := v.Normalized()
	require.NoError(t, err)
	AssertVectorNear(t, []any{"0.707106781186547524400844362105", "0.707106781186547524400844362105"}, u, 1e-25)

	r, err := v.Relation(w)
	require.NoError(t, err)
	assert.Equal(t, vector.Parallel, r)
}

func TestDot(t *testing.T) {
	got, err := MustVector(t, "7.887", "4.138").Dot(MustVector(t, "-8.802", "6.776"))
	require.NoError(t, err)
	AssertNear(t, "-41.382286", got, 1e-20)
}

func TestAngleWith(t *testing.T) {
	t.Parallel()

	rad, err := MustVector(t, "3.183", "-7.627").AngleWith(MustVector(t, "-2.668", "5.319"), false)
	require.NoError(t, err)
	AssertNear(t, "3.0720263098372476", rad, 1e-9)

	deg, err := MustVector(t, "7.35", "0.221", "5.188").AngleWith(MustVector(t, "2.751", "8.259", "3.985"), true)
	require.NoError(t, err)
	AssertNear(t, "60.27581120523091", deg, 1e-9)

	// Same direction: clamped cos avoids NaN from rounding past 1.
	zero, err := MustVector(t, 1, 1).AngleWith(MustVector(t, 2, 2), true)
	require.NoError(t, err)
	AssertNear(t, 0, zero, 1e-6)
}

func TestAngleWithZeroVector(t *testing.T) {
	_, err := MustVector(t, 1, 2).AngleWith(MustVector(t, 0, 0), false)
	require.ErrorIs(t, err, vector.ErrZeroVectorAngle)
	assert.False(t, errors.Is(err, vector.ErrZeroVector), "low-level error must not leak: %v", err)

	_, err = MustVector(t, 0, 0).AngleWith(MustVector(t, 1, 2), true)
	require.ErrorIs(t, err, vector.ErrZeroVectorAngle)
}

func TestRelation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		v, w vector.Vector
		want vector.Relation
	}{
		{"parallel", MustVector(t, "-7.579", "-7.88"), MustVector(t, "22.737", "23.64"), vector.Parallel},
		{"neither", MustVector(t, "-2.029", "9.97", "4.172"), MustVector(t, "-9.231", "-6.639", "-7.245"), vector.Neither},
		{"orthogonal", MustVector(t, "-2.328", "-7.284", "-1.214"), MustVector(t, "-1.821", "1.072", "-2.94"), vector.Orthogonal},
		{"zero right", MustVector(t, "2.118", "4.827"), MustVector(t, 0, 0), vector.ParallelAndOrthogonal},
		{"zero left", MustVector(t, 0, 0), MustVector(t, "2.118", "4.827"), vector.ParallelAndOrthogonal},
		{"anti-parallel", MustVector(t, 1, 2, 3), MustVector(t, -2, -4, -6), vector.Parallel},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.v.Relation(tc.w)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got, "got %s", got)
		})
	}
}

// TestRelationWithSelf checks that every non-zero vector is parallel to itself.
func TestRelationWithSelf(t *testing.T) {
	t.Parallel()

	for _, v := range []vector.Vector{
		MustVector(t, "5.581", "-2.136"),
		MustVector(t, "1e-5", "3"),
		MustVector(t, "-9.88", "-3.264", "-8.159"),
	} {
		got, err := v.Relation(v)
		require.NoError(t, err)
		assert.Equal(t, vector.Parallel, got)
		assert.True(t, v.IsParallelTo(v))
		assert.False(t, v.IsOrthogonalTo(v))
	}

	zero := MustVector(t, 0, 0)
	assert.True(t, zero.IsParallelTo(MustVector(t, 1, 0)))
	assert.True(t, zero.IsOrthogonalTo(MustVector(t, 1, 0)))
}

func TestComponents(t *testing.T) {
	t.Parallel()

	p, err := MustVector(t, "3.039", "1.879").ComponentParallelTo(MustVector(t, "0.825", "2.036"))
	require.NoError(t, err)
	AssertVectorNear(t, []any{"1.0826069624844668", "2.671742758325302"}, p, 1e-9)

	o, err := MustVector(t, "-9.88", "-3.264", "-8.159").ComponentOrthogonalTo(MustVector(t, "-2.155", "-9.353", "-9.473"))
	require.NoError(t, err)
	AssertVectorNear(t, []any{"-8.350081043195763", "3.376061254287722", "-1.4337460427811841"}, o, 1e-9)

	// parallel + orthogonal reconstructs v
	v := MustVector(t, "3.009", "-6.172", "3.692", "-2.51")
	b := MustVector(t, "6.404", "-9.144", "2.759", "8.718")
	p, err = v.ComponentParallelTo(b)
	require.NoError(t, err)
	o, err = v.ComponentOrthogonalTo(b)
	require.NoError(t, err)
	sum, err := p.Plus(o)
	require.NoError(t, err)
	AssertVectorNear(t, []any{"3.009", "-6.172", "3.692", "-2.51"}, sum, 1e-20)
	assert.True(t, o.IsOrthogonalTo(b))
}

func TestComponentsOfZeroVector(t *testing.T) {
	v := MustVector(t, 1, 2)
	zero := MustVector(t, 0, 0)

	_, err := v.ComponentParallelTo(zero)
	require.ErrorIs(t, err, vector.ErrNoUniqueComponent)
	assert.False(t, errors.Is(err, vector.ErrZeroVector))

	_, err = v.ComponentOrthogonalTo(zero)
	require.ErrorIs(t, err, vector.ErrNoUniqueComponent)
	assert.False(t, errors.Is(err, vector.ErrZeroVector))
}

func TestCross(t *testing.T) {
	t.Parallel()

	got, err := MustVector(t, "8.462", "7.893", "-8.187").Cross(MustVector(t, "6.984", "-5.975", "4.778"))
	require.NoError(t, err)
	assert.True(t, got.Equal(MustVector(t, "-11.204571", "-97.609444", "-105.685162")), "got %s", got)

	// 2D inputs lie in the z=0 plane.
	got, err = MustVector(t, 1, 2).Cross(MustVector(t, 3, 4))
	require.NoError(t, err)
	assert.True(t, got.Equal(MustVector(t, 0, 0, -2)), "got %s", got)

	_, err = MustVector(t, 1, 2, 3, 4).Cross(MustVector(t, 1, 2, 3, 4))
	require.ErrorIs(t, err, vector.ErrUnsupportedDimension)
}

func TestAreas(t *testing.T) {
	t.Parallel()

	a, err := MustVector(t, "-8.987", "-9.838", "5.031").AreaOfParallelogram(MustVector(t, "-4.268", "-1.861", "-8.866"))
	require.NoError(t, err)
	AssertNear(t, "142.12222140184633", a, 1e-9)

	a, err = MustVector(t, "1.5", "9.547", "3.691").AreaOfTriangle(MustVector(t, "-6.007", "0.124", "5.772"))
	require.NoError(t, err)
	AssertNear(t, "42.56493739941894", a, 1e-9)

	_, err = MustVector(t, 1).AreaOfTriangle(MustVector(t, 2))
	require.ErrorIs(t, err, vector.ErrUnsupportedDimension)
}

func TestRelationString(t *testing.T) {
	assert.Equal(t, "parallel", vector.Parallel.String())
	assert.Equal(t, "orthogonal", vector.Orthogonal.String())
	assert.Equal(t, "both parallel and orthogonal", vector.ParallelAndOrthogonal.String())
	assert.Equal(t, "neither parallel nor orthogonal", vector.Neither.String())
}
