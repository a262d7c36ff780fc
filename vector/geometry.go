// SPDX-License-Identifier: MIT

package vector

import (
	"errors"
	"math"

	"github.com/shopspring/decimal"

	"github.com/katalvlaran/linsolve/scalar"
)

// Relation classifies a pair of vectors.
type Relation int

const (
	// Neither: the vectors are neither parallel nor orthogonal.
	Neither Relation = iota

	// Parallel: |cos θ| is within scalar.ParallelTolerance of 1.
	Parallel

	// Orthogonal: the dot product is within scalar.Epsilon of 0.
	Orthogonal

	// ParallelAndOrthogonal: at least one vector is zero, so both hold vacuously.
	ParallelAndOrthogonal
)

// String implements fmt.Stringer.
func (r Relation) String() string {
	switch r {
	case Parallel:
		return "parallel"
	case Orthogonal:
		return "orthogonal"
	case ParallelAndOrthogonal:
		return "both parallel and orthogonal"
	default:
		return "neither parallel nor orthogonal"
	}
}

var half = decimal.New(5, -1)

// Magnitude returns the Euclidean norm ‖v‖.
func (v Vector) Magnitude() decimal.Decimal {
	sum := decimal.Zero
	for _, c := range v.coords {
		sum = sum.Add(c.Mul(c))
	}
	// sum ≥ 0, Sqrt cannot fail.
	m, _ := scalar.Sqrt(sum)

	return m
}

// IsZero reports whether ‖v‖ < scalar.Epsilon.
func (v Vector) IsZero() bool { return v.IsZeroWithin(scalar.Epsilon) }

// IsZeroWithin reports whether ‖v‖ < tol.
func (v Vector) IsZeroWithin(tol float64) bool {
	return v.Magnitude().LessThan(decimal.NewFromFloat(tol))
}

// Normalized returns the unit vector v/‖v‖.
//
// Errors:
//   - ErrZeroVector if v is (near) zero.
func (v Vector) Normalized() (Vector, error) {
	if v.IsZero() {
		return Vector{}, vectorErrorf(opNormalized, ErrZeroVector)
	}

	u, err := v.Divide(v.Magnitude())
	if err != nil {
		return Vector{}, vectorErrorf(opNormalized, err)
	}

	return u, nil
}

// Dot returns the inner product v·w.
func (v Vector) Dot(w Vector) (decimal.Decimal, error) {
	if err := sameDimension(v, w); err != nil {
		return decimal.Zero, vectorErrorf(opDot, err)
	}

	return dot(v, w), nil
}

func dot(v, w Vector) decimal.Decimal {
	sum := decimal.Zero
	for i := range v.coords {
		sum = sum.Add(v.coords[i].Mul(w.coords[i]))
	}

	return scalar.Round(sum)
}

// Cross returns v × w. Two-dimensional inputs are embedded in 3D with a zero
// z-coordinate, so the result of a 2D cross product is (0, 0, z).
//
// Errors:
//   - ErrDimensionMismatch if dimensions differ.
//   - ErrUnsupportedDimension for dimensions other than 2 and 3.
func (v Vector) Cross(w Vector) (Vector, error) {
	if err := sameDimension(v, w); err != nil {
		return Vector{}, vectorErrorf(opCross, err)
	}
	if d := len(v.coords); d != 2 && d != 3 {
		return Vector{}, vectorErrorf(opCross, ErrUnsupportedDimension)
	}

	a, b := embed3(v.coords), embed3(w.coords)
	out := []decimal.Decimal{
		a[1].Mul(b[2]).Sub(b[1].Mul(a[2])),
		a[0].Mul(b[2]).Sub(b[0].Mul(a[2])).Neg(),
		a[0].Mul(b[1]).Sub(b[0].Mul(a[1])),
	}

	return Vector{coords: out}, nil
}

func embed3(c []decimal.Decimal) [3]decimal.Decimal {
	out := [3]decimal.Decimal{decimal.Zero, decimal.Zero, decimal.Zero}
	copy(out[:], c)

	return out
}

// AreaOfParallelogram returns ‖v × w‖.
func (v Vector) AreaOfParallelogram(w Vector) (decimal.Decimal, error) {
	x, err := v.Cross(w)
	if err != nil {
		return decimal.Zero, err
	}

	return x.Magnitude(), nil
}

// AreaOfTriangle returns ‖v × w‖ / 2.
func (v Vector) AreaOfTriangle(w Vector) (decimal.Decimal, error) {
	a, err := v.AreaOfParallelogram(w)
	if err != nil {
		return decimal.Zero, err
	}

	return a.Mul(half), nil
}

// AngleWith returns the angle between v and w via arccos of the normalized
// dot product, in radians or, when inDegrees is set, in degrees.
//
// Errors:
//   - ErrDimensionMismatch if dimensions differ.
//   - ErrZeroVectorAngle if either vector is zero. The normalization failure
//     is translated by kind and not wrapped.
func (v Vector) AngleWith(w Vector, inDegrees bool) (decimal.Decimal, error) {
	if err := sameDimension(v, w); err != nil {
		return decimal.Zero, vectorErrorf(opAngleWith, err)
	}

	u1, err := v.Normalized()
	if err != nil {
		return decimal.Zero, translateZero(opAngleWith, err, ErrZeroVectorAngle)
	}
	u2, err := w.Normalized()
	if err != nil {
		return decimal.Zero, translateZero(opAngleWith, err, ErrZeroVectorAngle)
	}

	// Rounding may push |cos| a hair past 1; clamp to keep Acos defined.
	cos := math.Max(-1, math.Min(1, dot(u1, u2).InexactFloat64()))
	rad := math.Acos(cos)
	if inDegrees {
		return decimal.NewFromFloat(rad * 180 / math.Pi), nil
	}

	return decimal.NewFromFloat(rad), nil
}

// Relation classifies v against w. The checks run in this order:
//  1. either vector zero      → ParallelAndOrthogonal
//  2. | |cos θ| − 1 | < 1e-6   → Parallel
//  3. |v·w| < 1e-10            → Orthogonal
//  4. otherwise                → Neither
func (v Vector) Relation(w Vector) (Relation, error) {
	if err := sameDimension(v, w); err != nil {
		return Neither, vectorErrorf(opRelation, err)
	}
	if v.IsZero() || w.IsZero() {
		return ParallelAndOrthogonal, nil
	}

	d := dot(v, w)
	cos := scalar.Div(d, v.Magnitude().Mul(w.Magnitude()))
	if scalar.IsNearZeroWithin(cos.Abs().Sub(scalar.One), scalar.ParallelTolerance) {
		return Parallel, nil
	}
	if scalar.IsNearZero(d) {
		return Orthogonal, nil
	}

	return Neither, nil
}

// IsParallelTo reports whether Relation is Parallel or ParallelAndOrthogonal.
// Dimension mismatches report false.
func (v Vector) IsParallelTo(w Vector) bool {
	r, err := v.Relation(w)
	return err == nil && (r == Parallel || r == ParallelAndOrthogonal)
}

// IsOrthogonalTo reports whether Relation is Orthogonal or ParallelAndOrthogonal.
// Dimension mismatches report false.
func (v Vector) IsOrthogonalTo(w Vector) bool {
	r, err := v.Relation(w)
	return err == nil && (r == Orthogonal || r == ParallelAndOrthogonal)
}

// ComponentParallelTo returns the projection of v onto b.
//
// Errors:
//   - ErrDimensionMismatch if dimensions differ.
//   - ErrNoUniqueComponent if b is zero.
func (v Vector) ComponentParallelTo(b Vector) (Vector, error) {
	if err := sameDimension(v, b); err != nil {
		return Vector{}, vectorErrorf(opComponentParallelTo, err)
	}

	unit, err := b.Normalized()
	if err != nil {
		return Vector{}, translateZero(opComponentParallelTo, err, ErrNoUniqueComponent)
	}

	return unit.Scale(dot(v, unit)), nil
}

// ComponentOrthogonalTo returns v minus its projection onto b.
//
// Errors:
//   - ErrDimensionMismatch if dimensions differ.
//   - ErrNoUniqueComponent if b is zero.
func (v Vector) ComponentOrthogonalTo(b Vector) (Vector, error) {
	p, err := v.ComponentParallelTo(b)
	if err != nil {
		if errors.Is(err, ErrNoUniqueComponent) {
			return Vector{}, vectorErrorf(opComponentOrthogonalTo, ErrNoUniqueComponent)
		}
		return Vector{}, vectorErrorf(opComponentOrthogonalTo, err)
	}

	return v.Minus(p)
}

// translateZero maps ErrZeroVector onto the caller's domain error; anything
// else is passed through with the caller's tag.
func translateZero(op string, err, domain error) error {
	if errors.Is(err, ErrZeroVector) {
		return vectorErrorf(op, domain)
	}

	return vectorErrorf(op, err)
}
