// SPDX-License-Identifier: MIT

package linsys

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/katalvlaran/linsolve/hyperplane"
	"github.com/katalvlaran/linsolve/scalar"
	"github.com/katalvlaran/linsolve/vector"
)

// System is an ordered list of equations sharing one dimension.
// It is not safe for concurrent mutation; reductions work on copies.
type System struct {
	rows []hyperplane.Hyperplane
	dim  int
	opts Options
}

// New builds a System from rows. The slice is copied.
//
// Errors:
//   - ErrEmptySystem if rows is empty.
//   - ErrDimensionMismatch if the rows do not share one dimension.
func New(rows []hyperplane.Hyperplane, opts ...Option) (*System, error) {
	if len(rows) == 0 {
		return nil, linsysErrorf(opNew, ErrEmptySystem)
	}

	dim := rows[0].Dimension()
	for i, r := range rows {
		if r.Dimension() != dim {
			return nil, linsysErrorf(opNew,
				fmt.Errorf("row %d has dimension %d, want %d: %w", i, r.Dimension(), dim, ErrDimensionMismatch))
		}
	}

	return &System{
		rows: append([]hyperplane.Hyperplane(nil), rows...),
		dim:  dim,
		opts: gatherOptions(opts...),
	}, nil
}

// Len returns the number of equations.
func (s *System) Len() int { return len(s.rows) }

// Dimension returns the number of variables.
func (s *System) Dimension() int { return s.dim }

// Row returns equation i.
func (s *System) Row(i int) (hyperplane.Hyperplane, error) {
	if err := s.checkRow(i); err != nil {
		return hyperplane.Hyperplane{}, linsysErrorf(opRow, err)
	}

	return s.rows[i], nil
}

// Rows returns a copy of the equations.
func (s *System) Rows() []hyperplane.Hyperplane {
	return append([]hyperplane.Hyperplane(nil), s.rows...)
}

// SetRow replaces equation i.
//
// Errors:
//   - ErrRowOutOfRange for a bad index.
//   - ErrDimensionMismatch if h lives in another dimension.
func (s *System) SetRow(i int, h hyperplane.Hyperplane) error {
	if err := s.checkRow(i); err != nil {
		return linsysErrorf(opSetRow, err)
	}
	if h.Dimension() != s.dim {
		return linsysErrorf(opSetRow,
			fmt.Errorf("dimension %d, want %d: %w", h.Dimension(), s.dim, ErrDimensionMismatch))
	}
	s.rows[i] = h

	return nil
}

// RowBasepoint returns the basepoint of equation i under the system's
// epsilon, so it agrees with PivotIndices: ok is false exactly when row i
// has no pivot.
func (s *System) RowBasepoint(i int) (vector.Vector, bool, error) {
	if err := s.checkRow(i); err != nil {
		return vector.Vector{}, false, linsysErrorf(opRowBasepoint, err)
	}
	bp, ok := s.rows[i].BasepointWithin(s.opts.eps)

	return bp, ok, nil
}

// Clone returns a deep copy. Hyperplanes and vectors are immutable values,
// so copying the row slice is enough.
func (s *System) Clone() *System {
	return &System{
		rows: append([]hyperplane.Hyperplane(nil), s.rows...),
		dim:  s.dim,
		opts: s.opts,
	}
}

// Satisfies reports whether p solves every equation within the system's epsilon.
func (s *System) Satisfies(p vector.Vector) (bool, error) {
	if p.Dimension() != s.dim {
		return false, linsysErrorf(opSatisfies, ErrDimensionMismatch)
	}
	for _, r := range s.rows {
		ok, err := r.Contains(p, s.opts.eps)
		if err != nil {
			return false, linsysErrorf(opSatisfies, err)
		}
		if !ok {
			return false, nil
		}
	}

	return true, nil
}

// String renders the system one equation per line.
func (s *System) String() string {
	var sb strings.Builder
	sb.WriteString("Linear System:")
	for i, r := range s.rows {
		fmt.Fprintf(&sb, "\nEquation %d: %s", i+1, r)
	}

	return sb.String()
}

func (s *System) checkRow(i int) error {
	if i < 0 || i >= len(s.rows) {
		return fmt.Errorf("%d not in [0,%d): %w", i, len(s.rows), ErrRowOutOfRange)
	}

	return nil
}

// coefficient returns the coefficient of variable col in row. Indices are
// trusted: callers iterate within Len × Dimension.
func (s *System) coefficient(row, col int) decimal.Decimal {
	c, _ := s.rows[row].Normal().At(col)
	return c
}

func (s *System) isNearZero(d decimal.Decimal) bool {
	return scalar.IsNearZeroWithin(d, s.opts.eps)
}
