// SPDX-License-Identifier: MIT

package linsys

import (
	"github.com/shopspring/decimal"
)

// SwapRows exchanges equations i and j in place.
func (s *System) SwapRows(i, j int) error {
	if err := s.checkRow(i); err != nil {
		return linsysErrorf(opSwapRows, err)
	}
	if err := s.checkRow(j); err != nil {
		return linsysErrorf(opSwapRows, err)
	}
	s.rows[i], s.rows[j] = s.rows[j], s.rows[i]

	return nil
}

// ScaleRow multiplies equation row (normal and constant) by c in place.
//
// Errors:
//   - ErrZeroScale if c is zero; scaling by zero would erase the equation.
//   - ErrRowOutOfRange for a bad index.
func (s *System) ScaleRow(row int, c decimal.Decimal) error {
	if err := s.checkRow(row); err != nil {
		return linsysErrorf(opScaleRow, err)
	}
	if c.IsZero() {
		return linsysErrorf(opScaleRow, ErrZeroScale)
	}
	s.rows[row] = s.rows[row].Scaled(c)

	return nil
}

// AddScaledRow performs rows[dst] += c · rows[src] in place.
// The basepoint of dst is derived from its new coefficients, including the
// case where they cancel to the zero vector.
func (s *System) AddScaledRow(c decimal.Decimal, src, dst int) error {
	if err := s.checkRow(src); err != nil {
		return linsysErrorf(opAddScaledRow, err)
	}
	if err := s.checkRow(dst); err != nil {
		return linsysErrorf(opAddScaledRow, err)
	}

	sum, err := s.rows[dst].Plus(s.rows[src].Scaled(c))
	if err != nil {
		return linsysErrorf(opAddScaledRow, err)
	}
	s.rows[dst] = sum

	return nil
}

// normalizeRow divides equation row by its pivot so the pivot becomes exactly 1.
// pivot is non-zero: it was selected as a non-near-zero coefficient.
func (s *System) normalizeRow(row int, pivot decimal.Decimal) error {
	h, err := s.rows[row].Divided(pivot)
	if err != nil {
		return err
	}
	s.rows[row] = h

	return nil
}
