package vector_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/katalvlaran/linsolve/scalar"
	"github.com/katalvlaran/linsolve/vector"
)

// MustVector builds a vector from literals or fails the test.
func MustVector(t testing.TB, coords ...any) vector.Vector {
	t.Helper()
	v, err := vector.New(coords...)
	if err != nil {
		t.Fatalf("vector.New(%v): %v", coords, err)
	}

	return v
}

// AssertNear fails unless |got − want| < tol.
func AssertNear(t *testing.T, want any, got decimal.Decimal, tol float64) {
	t.Helper()
	w := scalar.Must(want)
	if !scalar.IsNearZeroWithin(got.Sub(w), tol) {
		t.Fatalf("want %s ± %g, got %s", w, tol, got)
	}
}

// AssertVectorNear compares coordinate-wise within tol.
func AssertVectorNear(t *testing.T, want []any, got vector.Vector, tol float64) {
	t.Helper()
	if got.Dimension() != len(want) {
		t.Fatalf("dimension: want %d, got %d (%s)", len(want), got.Dimension(), got)
	}
	for i, c := range got.Coordinates() {
		w := scalar.Must(want[i])
		if !scalar.IsNearZeroWithin(c.Sub(w), tol) {
			t.Fatalf("coordinate %d: want %s ± %g, got %s (%s)", i, w, tol, c, got)
		}
	}
}
