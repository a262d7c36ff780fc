package linsys_test

import (
	"testing"

	"github.com/katalvlaran/linsolve/hyperplane"
	"github.com/katalvlaran/linsolve/linsys"
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

// MustHyperplane builds normal·x = k or fails the test.
func MustHyperplane(t testing.TB, k any, normal ...any) hyperplane.Hyperplane {
	t.Helper()
	n := MustVector(t, normal...)
	h, err := hyperplane.New(n.Dimension(),
		hyperplane.WithNormal(n),
		hyperplane.WithConstant(scalar.Must(k)),
	)
	if err != nil {
		t.Fatalf("hyperplane.New: %v", err)
	}

	return h
}

// MustSystem builds a system from rows or fails the test.
func MustSystem(t testing.TB, rows ...hyperplane.Hyperplane) *linsys.System {
	t.Helper()
	s, err := linsys.New(rows)
	if err != nil {
		t.Fatalf("linsys.New: %v", err)
	}

	return s
}

// AssertRowsNear compares every row of s against want, where each want row
// lists the coefficients followed by the constant.
func AssertRowsNear(t *testing.T, want [][]any, s *linsys.System, tol float64) {
	t.Helper()
	if s.Len() != len(want) {
		t.Fatalf("rows: want %d, got %d\n%s", len(want), s.Len(), s)
	}
	for i, r := range s.Rows() {
		got := append(r.Normal().Coordinates(), r.Constant())
		if len(got) != len(want[i]) {
			t.Fatalf("row %d: want %d entries, got %d", i, len(want[i]), len(got))
		}
		for j, c := range got {
			w := scalar.Must(want[i][j])
			if !scalar.IsNearZeroWithin(c.Sub(w), tol) {
				t.Fatalf("row %d entry %d: want %s ± %g, got %s\n%s", i, j, w, tol, c, s)
			}
		}
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

// Named fixtures shared by the reduction and solver tests.

func fourPlanes(t testing.TB) *linsys.System {
	return MustSystem(t,
		MustHyperplane(t, 1, 1, 1, 1),
		MustHyperplane(t, 2, 0, 1, 0),
		MustHyperplane(t, 3, 1, 1, -1),
		MustHyperplane(t, 2, 1, 0, -2),
	)
}

func lineOfPlanes(t testing.TB) *linsys.System {
	return MustSystem(t,
		MustHyperplane(t, "-0.714", "0.786", "0.786", "0.588"),
		MustHyperplane(t, "0.319", "-0.138", "-0.138", "0.244"),
	)
}

func threeDependentPlanes(t testing.TB) *linsys.System {
	return MustSystem(t,
		MustHyperplane(t, "-5.113", "8.631", "5.112", "-1.816"),
		MustHyperplane(t, "-6.775", "4.315", "11.132", "-5.27"),
		MustHyperplane(t, "-0.831", "-2.158", "3.01", "-1.727"),
	)
}

func planeOfPlanes(t testing.TB) *linsys.System {
	return MustSystem(t,
		MustHyperplane(t, "-9.955", "0.935", "1.76", "-9.365"),
		MustHyperplane(t, "-1.991", "0.187", "0.352", "-1.873"),
		MustHyperplane(t, "-3.982", "0.374", "0.704", "-3.746"),
		MustHyperplane(t, "5.973", "-0.561", "-1.056", "5.619"),
	)
}

func inconsistentPlanes(t testing.TB) *linsys.System {
	return MustSystem(t,
		MustHyperplane(t, "-8.15", "5.862", "1.178", "-4.13"),
		MustHyperplane(t, "-4.075", "-2.931", "-0.589", "2.065"),
	)
}

func overdeterminedPlanes(t testing.TB) *linsys.System {
	return MustSystem(t,
		MustHyperplane(t, "-3.441", "5.262", "2.739", "-9.878"),
		MustHyperplane(t, "-2.152", "5.111", "6.358", "7.638"),
		MustHyperplane(t, "-9.278", "2.016", "-9.924", "-1.367"),
		MustHyperplane(t, "-10.567", "2.167", "-13.543", "-18.883"),
	)
}
