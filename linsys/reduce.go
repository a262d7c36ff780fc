// SPDX-License-Identifier: MIT

package linsys

import (
	"errors"

	"github.com/katalvlaran/linsolve/hyperplane"
	"github.com/katalvlaran/linsolve/scalar"
)

// NoPivot marks a row whose normal vector is entirely near zero.
const NoPivot = -1

// PivotIndices returns, for every row, the column of its first non-near-zero
// coefficient, or NoPivot.
func (s *System) PivotIndices() []int {
	out := make([]int, len(s.rows))
	for i, r := range s.rows {
		p, err := hyperplane.FirstNonzeroIndex(r.Normal().Coordinates(), s.opts.eps)
		if errors.Is(err, hyperplane.ErrNoNonzeroElements) {
			out[i] = NoPivot
			continue
		}
		out[i] = p
	}

	return out
}

// TriangularForm returns an equivalent system in which pivot columns strictly
// increase down the rows. The receiver is not modified.
//
// Implementation:
//   - Stage 1: clone the system.
//   - Stage 2: for row i, scan columns j from 0. A near-zero (i, j) pulls up
//     the first lower row with a usable coefficient in column j and retries
//     j; when no such row exists, j advances.
//   - Stage 3: with a pivot at (i, j), add −(c/pivot)·row i to every lower
//     row r whose column-j coefficient c is not near zero.
//
// Rows whose normal is entirely near zero end up at the bottom as a
// consequence of the scan order; there is no explicit sort.
//
// Complexity:
//   - Time O(rows² · dim), Space O(rows · dim) for the copy.
func (s *System) TriangularForm() (*System, error) {
	t := s.Clone()
	rows, cols := t.Len(), t.dim

	var i, j int
	for i = 0; i < rows; i++ {
		j = 0
		for j < cols {
			if !t.isNearZero(t.coefficient(i, j)) {
				break
			}
			below, ok := t.rowBelowWithNonzero(j, i)
			if !ok {
				j++
				continue
			}
			if err := t.SwapRows(i, below); err != nil {
				return nil, linsysErrorf(opTriangularForm, err)
			}
		}
		if j < cols {
			if err := t.clearBelow(j, i); err != nil {
				return nil, linsysErrorf(opTriangularForm, err)
			}
		}
	}

	return t, nil
}

// RREF returns the reduced row-echelon form: the triangular form with every
// pivot equal to 1 and every pivot column zero in all other pivot rows. The
// receiver is not modified.
//
// Implementation:
//   - Stage 1: TriangularForm.
//   - Stage 2: in row order, divide each pivot row by its pivot (skipped
//     when the pivot is already 1), then add −c·row i to every row above
//     whose entry c in the pivot column is not near zero.
func (s *System) RREF() (*System, error) {
	t, err := s.TriangularForm()
	if err != nil {
		return nil, linsysErrorf(opRREF, err)
	}

	for i, p := range t.PivotIndices() {
		if p == NoPivot {
			continue
		}
		if c := t.coefficient(i, p); !c.Equal(scalar.One) {
			if err = t.normalizeRow(i, c); err != nil {
				return nil, linsysErrorf(opRREF, err)
			}
		}
		if err = t.clearAbove(p, i); err != nil {
			return nil, linsysErrorf(opRREF, err)
		}
	}

	return t, nil
}

// rowBelowWithNonzero finds the first row strictly below row whose
// coefficient in col is not near zero.
func (s *System) rowBelowWithNonzero(col, row int) (int, bool) {
	for r := row + 1; r < len(s.rows); r++ {
		if !s.isNearZero(s.coefficient(r, col)) {
			return r, true
		}
	}

	return 0, false
}

// clearBelow eliminates col from every row below the pivot row.
func (s *System) clearBelow(col, row int) error {
	pivot := s.coefficient(row, col)
	for r := row + 1; r < len(s.rows); r++ {
		c := s.coefficient(r, col)
		if s.isNearZero(c) {
			continue
		}
		if err := s.AddScaledRow(scalar.Div(c, pivot).Neg(), row, r); err != nil {
			return err
		}
	}

	return nil
}

// clearAbove eliminates col from every row above the pivot row, whose pivot is 1.
func (s *System) clearAbove(col, row int) error {
	for r := row - 1; r >= 0; r-- {
		c := s.coefficient(r, col)
		if s.isNearZero(c) {
			continue
		}
		if err := s.AddScaledRow(c.Neg(), row, r); err != nil {
			return err
		}
	}

	return nil
}
