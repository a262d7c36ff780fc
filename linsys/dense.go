// SPDX-License-Identifier: MIT

package linsys

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linsolve/hyperplane"
	"github.com/katalvlaran/linsolve/scalar"
	"github.com/katalvlaran/linsolve/vector"
)

// FromDense builds the system a·x = b from a float64 coefficient matrix.
// Each float is converted through its shortest decimal representation.
//
// Errors:
//   - ErrDimensionMismatch if len(b) differs from the row count of a.
//   - scalar.ErrNotNumeric (wrapped) for NaN or ±Inf entries.
//   - hyperplane.ErrBadDimension (wrapped) for a matrix without columns.
//   - ErrEmptySystem for a matrix without rows.
func FromDense(a mat.Matrix, b []float64, opts ...Option) (*System, error) {
	r, c := a.Dims()
	if len(b) != r {
		return nil, linsysErrorf(opFromDense,
			fmt.Errorf("%d constants for %d rows: %w", len(b), r, ErrDimensionMismatch))
	}

	rows := make([]hyperplane.Hyperplane, r)
	coords := make([]any, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			coords[j] = a.At(i, j)
		}
		var hopts []hyperplane.Option
		if c > 0 {
			n, err := vector.New(coords...)
			if err != nil {
				return nil, linsysErrorf(opFromDense, fmt.Errorf("row %d: %w", i, err))
			}
			hopts = append(hopts, hyperplane.WithNormal(n))
		}
		k, err := scalar.From(b[i])
		if err != nil {
			return nil, linsysErrorf(opFromDense, fmt.Errorf("row %d: %w", i, err))
		}
		h, err := hyperplane.New(c, append(hopts, hyperplane.WithConstant(k))...)
		if err != nil {
			return nil, linsysErrorf(opFromDense, fmt.Errorf("row %d: %w", i, err))
		}
		rows[i] = h
	}

	return New(rows, opts...)
}

// Coefficients exports the coefficient matrix as float64.
func (s *System) Coefficients() *mat.Dense {
	m := mat.NewDense(len(s.rows), s.dim, nil)
	for i := range s.rows {
		for j := 0; j < s.dim; j++ {
			m.Set(i, j, s.coefficient(i, j).InexactFloat64())
		}
	}

	return m
}

// Constants exports the right-hand side as float64.
func (s *System) Constants() *mat.VecDense {
	v := mat.NewVecDense(len(s.rows), nil)
	for i, r := range s.rows {
		v.SetVec(i, r.Constant().InexactFloat64())
	}

	return v
}

// Augmented exports [A | b] as float64.
func (s *System) Augmented() *mat.Dense {
	var m mat.Dense
	m.Augment(s.Coefficients(), s.Constants())

	return &m
}
