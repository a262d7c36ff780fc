// SPDX-License-Identifier: MIT

package linsys

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptySystem indicates a system with no equations.
	ErrEmptySystem = errors.New("linsys: system must contain at least one equation")

	// ErrDimensionMismatch indicates equations of different dimensions, or an
	// operand whose dimension differs from the system's.
	ErrDimensionMismatch = errors.New("linsys: all planes in the system should live in the same dimension")

	// ErrRowOutOfRange indicates a row index outside [0, Len).
	ErrRowOutOfRange = errors.New("linsys: row index out of range")

	// ErrZeroScale is returned by ScaleRow for a zero multiplier.
	ErrZeroScale = errors.New("linsys: cannot scale a row by zero")

	// ErrParameterCount indicates a parameter list that does not match the
	// number of free variables.
	ErrParameterCount = errors.New("linsys: parameter count does not match free variables")
)

const (
	opNew            = "New"
	opRow            = "Row"
	opSetRow         = "SetRow"
	opRowBasepoint   = "RowBasepoint"
	opSwapRows       = "SwapRows"
	opScaleRow       = "ScaleRow"
	opAddScaledRow   = "AddScaledRow"
	opTriangularForm = "TriangularForm"
	opRREF           = "RREF"
	opSolve          = "Solve"
	opSatisfies      = "Satisfies"
	opAt             = "At"
	opFromDense      = "FromDense"
)

// linsysErrorf wraps err with an operation tag. err must be non-nil.
func linsysErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
