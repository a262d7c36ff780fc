package hyperplane_test

import (
	"testing"

	"github.com/katalvlaran/linsolve/hyperplane"
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
