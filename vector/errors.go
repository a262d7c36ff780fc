// SPDX-License-Identifier: MIT

package vector

import (
	"errors"
	"fmt"
)

// Sentinel errors. Callers match them with errors.Is; operations wrap them
// with an operation tag ("Dot: vector: dimension mismatch").
var (
	// ErrEmptyCoordinates is returned when a vector is built from no coordinates.
	ErrEmptyCoordinates = errors.New("vector: coordinates must not be empty")

	// ErrDimensionMismatch indicates operands of different dimensions.
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")

	// ErrIndexOutOfRange indicates a coordinate index outside [0, Dimension).
	ErrIndexOutOfRange = errors.New("vector: index out of range")

	// ErrZeroVector is returned when the zero vector cannot be normalized.
	ErrZeroVector = errors.New("vector: cannot normalize the zero vector")

	// ErrZeroVectorAngle is returned when an angle involves the zero vector.
	ErrZeroVectorAngle = errors.New("vector: cannot compute an angle with the zero vector")

	// ErrNoUniqueComponent is returned when projecting onto the zero vector.
	ErrNoUniqueComponent = errors.New("vector: no unique component along the zero vector")

	// ErrZeroDivisor is returned by Divide for a zero divisor.
	ErrZeroDivisor = errors.New("vector: division by zero")

	// ErrUnsupportedDimension is returned by Cross for inputs that are not 2D or 3D.
	ErrUnsupportedDimension = errors.New("vector: cross product needs 2D or 3D vectors")
)

// Operation tags for error wrapping.
const (
	opNew                   = "New"
	opAt                    = "At"
	opPlus                  = "Plus"
	opMinus                 = "Minus"
	opDivide                = "Divide"
	opNormalized            = "Normalized"
	opDot                   = "Dot"
	opCross                 = "Cross"
	opAngleWith             = "AngleWith"
	opRelation              = "Relation"
	opComponentParallelTo   = "ComponentParallelTo"
	opComponentOrthogonalTo = "ComponentOrthogonalTo"
)

// vectorErrorf wraps err with an operation tag. err must be non-nil.
func vectorErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
