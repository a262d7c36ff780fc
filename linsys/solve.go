// SPDX-License-Identifier: MIT

package linsys

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/katalvlaran/linsolve/scalar"
	"github.com/katalvlaran/linsolve/vector"
)

// Kind is the shape of a system's solution set.
type Kind int

const (
	// NoSolution: the system is inconsistent.
	NoSolution Kind = iota

	// UniqueSolution: exactly one point solves the system.
	UniqueSolution

	// InfiniteSolutions: the solution set is a flat of dimension ≥ 1.
	InfiniteSolutions
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case UniqueSolution:
		return "unique solution"
	case InfiniteSolutions:
		return "infinitely many solutions"
	default:
		return "no solutions"
	}
}

// Parametrization describes an infinite solution set as
// Basepoint + Σ tᵢ·Directions[i], one direction per free variable.
type Parametrization struct {
	Basepoint     vector.Vector
	Directions    []vector.Vector
	FreeVariables []int // column index of the free variable behind each direction
}

// At returns the point of the solution set for parameters t (one per direction).
func (p Parametrization) At(t ...decimal.Decimal) (vector.Vector, error) {
	if len(t) != len(p.Directions) {
		return vector.Vector{}, linsysErrorf(opAt,
			fmt.Errorf("got %d, want %d: %w", len(t), len(p.Directions), ErrParameterCount))
	}

	out := p.Basepoint
	for i, d := range p.Directions {
		next, err := out.Plus(d.Scale(t[i]))
		if err != nil {
			return vector.Vector{}, linsysErrorf(opAt, err)
		}
		out = next
	}

	return out, nil
}

// String renders "Basepoint = Vector: (...); Direction Vectors = [Vector: (...), ...]".
func (p Parametrization) String() string {
	dirs := make([]string, len(p.Directions))
	for i, d := range p.Directions {
		dirs[i] = d.String()
	}

	return fmt.Sprintf("Basepoint = %s; Direction Vectors = [%s]", p.Basepoint, strings.Join(dirs, ", "))
}

// Solution is the outcome of Solve. Point is set for UniqueSolution and
// Parametrization for InfiniteSolutions.
type Solution struct {
	Kind            Kind
	Point           vector.Vector
	Parametrization Parametrization
}

// String implements fmt.Stringer.
func (s Solution) String() string {
	switch s.Kind {
	case UniqueSolution:
		return "Unique solution: " + s.Point.String()
	case InfiniteSolutions:
		return "Infinitely many solutions: " + s.Parametrization.String()
	default:
		return "No solutions"
	}
}

// Solve classifies the system and solves it. The receiver is not modified.
//
// Implementation:
//   - Stage 1: RREF.
//   - Stage 2: a pivotless row (0 = k) with k not near zero → NoSolution.
//     Triangular form sinks such rows to the bottom, so this covers the
//     last-row check and any zero rows stacked above it.
//   - Stage 3: one pivot per variable → UniqueSolution, x[p] = constant of
//     the row pivoting on p.
//   - Stage 4: otherwise → InfiniteSolutions with a parametrization.
func (s *System) Solve() (Solution, error) {
	rref, err := s.RREF()
	if err != nil {
		return Solution{}, linsysErrorf(opSolve, err)
	}

	pivots := rref.PivotIndices()
	count := 0
	for i, p := range pivots {
		if p != NoPivot {
			count++
			continue
		}
		if !rref.isNearZero(rref.rows[i].Constant()) {
			return Solution{Kind: NoSolution}, nil
		}
	}

	if count == s.dim {
		coords := zeros(s.dim)
		for i, p := range pivots {
			if p != NoPivot {
				coords[p] = rref.rows[i].Constant()
			}
		}
		x, err := vector.FromDecimals(coords)
		if err != nil {
			return Solution{}, linsysErrorf(opSolve, err)
		}
		return Solution{Kind: UniqueSolution, Point: x}, nil
	}

	param, err := rref.parametrize(pivots)
	if err != nil {
		return Solution{}, linsysErrorf(opSolve, err)
	}

	return Solution{Kind: InfiniteSolutions, Parametrization: param}, nil
}

// parametrize builds the parametrization of a consistent system in RREF.
//
// For each free column f (ascending): direction[f] = 1 and, for every pivot
// row i with pivot p, direction[p] = −coefficient(i, f). The basepoint holds
// each pivot row's constant at its pivot column and zero elsewhere.
func (s *System) parametrize(pivots []int) (Parametrization, error) {
	isPivot := make([]bool, s.dim)
	for _, p := range pivots {
		if p != NoPivot {
			isPivot[p] = true
		}
	}

	var (
		free []int
		dirs []vector.Vector
	)
	for f := 0; f < s.dim; f++ {
		if isPivot[f] {
			continue
		}
		coords := zeros(s.dim)
		coords[f] = scalar.One
		for i, p := range pivots {
			if p != NoPivot {
				coords[p] = s.coefficient(i, f).Neg()
			}
		}
		d, err := vector.FromDecimals(coords)
		if err != nil {
			return Parametrization{}, err
		}
		free = append(free, f)
		dirs = append(dirs, d)
	}

	base := zeros(s.dim)
	for i, p := range pivots {
		if p != NoPivot {
			base[p] = s.rows[i].Constant()
		}
	}
	bp, err := vector.FromDecimals(base)
	if err != nil {
		return Parametrization{}, err
	}

	return Parametrization{Basepoint: bp, Directions: dirs, FreeVariables: free}, nil
}

func zeros(n int) []decimal.Decimal {
	out := make([]decimal.Decimal, n)
	for i := range out {
		out[i] = decimal.Zero
	}

	return out
}
