// SPDX-License-Identifier: MIT

package hyperplane

import (
	"errors"
	"fmt"
)

var (
	// ErrNoNonzeroElements indicates that every coefficient is near zero, so
	// there is no pivot and no basepoint. Callers treat it as "degenerate row",
	// not as a failure.
	ErrNoNonzeroElements = errors.New("hyperplane: no nonzero elements found")

	// ErrBadDimension indicates a non-positive dimension.
	ErrBadDimension = errors.New("hyperplane: dimension must be > 0")

	// ErrDimensionMismatch indicates a normal vector or operand of another dimension.
	ErrDimensionMismatch = errors.New("hyperplane: dimension mismatch")

	// ErrNotALine is returned by Intersection for hyperplanes that are not 2D.
	ErrNotALine = errors.New("hyperplane: intersection needs two lines")
)

const (
	opNew          = "New"
	opPlus         = "Plus"
	opDivided      = "Divided"
	opResidual     = "Residual"
	opIntersection = "Intersection"
)

func hyperplaneErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
