// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/katalvlaran/linsolve/scalar"
)

// Vector is an immutable ordered tuple of decimals.
// The zero value has dimension 0 and is only produced on error paths.
type Vector struct {
	coords []decimal.Decimal // never mutated after construction
}

// New builds a Vector from numeric literals (see scalar.From for accepted kinds).
//
// Errors:
//   - ErrEmptyCoordinates if no coordinates are given.
//   - scalar.ErrNotNumeric (wrapped) if a coordinate does not convert.
func New(coords ...any) (Vector, error) {
	if len(coords) == 0 {
		return Vector{}, vectorErrorf(opNew, ErrEmptyCoordinates)
	}

	out := make([]decimal.Decimal, len(coords))
	for i, c := range coords {
		d, err := scalar.From(c)
		if err != nil {
			return Vector{}, vectorErrorf(opNew, fmt.Errorf("coordinate %d: %w", i, err))
		}
		out[i] = d
	}

	return Vector{coords: out}, nil
}

// FromDecimals builds a Vector from decimals. The slice is copied.
func FromDecimals(coords []decimal.Decimal) (Vector, error) {
	if len(coords) == 0 {
		return Vector{}, vectorErrorf(opNew, ErrEmptyCoordinates)
	}

	return Vector{coords: append([]decimal.Decimal(nil), coords...)}, nil
}

// Zero returns the zero vector of dimension dim.
func Zero(dim int) (Vector, error) {
	if dim <= 0 {
		return Vector{}, vectorErrorf(opNew, ErrEmptyCoordinates)
	}

	out := make([]decimal.Decimal, dim)
	for i := range out {
		out[i] = decimal.Zero
	}

	return Vector{coords: out}, nil
}

// Dimension returns the number of coordinates.
func (v Vector) Dimension() int { return len(v.coords) }

// At returns the i-th coordinate.
func (v Vector) At(i int) (decimal.Decimal, error) {
	if i < 0 || i >= len(v.coords) {
		return decimal.Zero, vectorErrorf(opAt, fmt.Errorf("%d: %w", i, ErrIndexOutOfRange))
	}

	return v.coords[i], nil
}

// Coordinates returns a copy of the coordinates.
func (v Vector) Coordinates() []decimal.Decimal {
	return append([]decimal.Decimal(nil), v.coords...)
}

// Equal reports whether v and w have the same dimension and identical coordinates.
func (v Vector) Equal(w Vector) bool {
	if len(v.coords) != len(w.coords) {
		return false
	}
	for i := range v.coords {
		if !v.coords[i].Equal(w.coords[i]) {
			return false
		}
	}

	return true
}

// String renders the vector with display rounding, e.g. "Vector: (1, 2.500, -3)".
func (v Vector) String() string {
	parts := make([]string, len(v.coords))
	for i, c := range v.coords {
		parts[i] = scalar.Format(c)
	}

	return "Vector: (" + strings.Join(parts, ", ") + ")"
}

// Plus returns v + w.
func (v Vector) Plus(w Vector) (Vector, error) {
	if err := sameDimension(v, w); err != nil {
		return Vector{}, vectorErrorf(opPlus, err)
	}

	out := make([]decimal.Decimal, len(v.coords))
	for i := range v.coords {
		out[i] = scalar.Round(v.coords[i].Add(w.coords[i]))
	}

	return Vector{coords: out}, nil
}

// Minus returns v − w.
func (v Vector) Minus(w Vector) (Vector, error) {
	if err := sameDimension(v, w); err != nil {
		return Vector{}, vectorErrorf(opMinus, err)
	}

	out := make([]decimal.Decimal, len(v.coords))
	for i := range v.coords {
		out[i] = scalar.Round(v.coords[i].Sub(w.coords[i]))
	}

	return Vector{coords: out}, nil
}

// Scale returns c·v.
func (v Vector) Scale(c decimal.Decimal) Vector {
	out := make([]decimal.Decimal, len(v.coords))
	for i := range v.coords {
		out[i] = scalar.Round(v.coords[i].Mul(c))
	}

	return Vector{coords: out}
}

// Divide returns v / c, dividing every coordinate at working precision.
// Unlike Scale(1/c), a coordinate equal to c becomes exactly 1.
func (v Vector) Divide(c decimal.Decimal) (Vector, error) {
	if c.IsZero() {
		return Vector{}, vectorErrorf(opDivide, ErrZeroDivisor)
	}

	out := make([]decimal.Decimal, len(v.coords))
	for i := range v.coords {
		out[i] = scalar.Div(v.coords[i], c)
	}

	return Vector{coords: out}, nil
}

// sameDimension returns ErrDimensionMismatch (unwrapped) when dimensions differ.
func sameDimension(v, w Vector) error {
	if len(v.coords) != len(w.coords) {
		return fmt.Errorf("%d vs %d: %w", len(v.coords), len(w.coords), ErrDimensionMismatch)
	}

	return nil
}
