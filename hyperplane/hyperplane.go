// SPDX-License-Identifier: MIT

package hyperplane

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/katalvlaran/linsolve/scalar"
	"github.com/katalvlaran/linsolve/vector"
)

// Hyperplane is the set of points x with normal·x = constant.
type Hyperplane struct {
	normal   vector.Vector
	constant decimal.Decimal
}

// New builds a hyperplane of the given dimension.
//
// Defaults: the zero normal vector of dim and a zero constant term.
//
// Errors:
//   - ErrBadDimension if dim <= 0.
//   - ErrDimensionMismatch if WithNormal supplied a vector of another dimension.
func New(dim int, opts ...Option) (Hyperplane, error) {
	if dim <= 0 {
		return Hyperplane{}, hyperplaneErrorf(opNew, ErrBadDimension)
	}

	o := gatherOptions(opts...)

	var n vector.Vector
	if o.normal == nil {
		// dim > 0 was checked above.
		n, _ = vector.Zero(dim)
	} else {
		if o.normal.Dimension() != dim {
			return Hyperplane{}, hyperplaneErrorf(opNew,
				fmt.Errorf("normal has %d coordinates, want %d: %w", o.normal.Dimension(), dim, ErrDimensionMismatch))
		}
		n = *o.normal
	}

	return Hyperplane{normal: n, constant: o.constant}, nil
}

// NewLine builds a hyperplane in 2D.
func NewLine(opts ...Option) (Hyperplane, error) { return New(LineDimension, opts...) }

// NewPlane builds a hyperplane in 3D.
func NewPlane(opts ...Option) (Hyperplane, error) { return New(PlaneDimension, opts...) }

// Dimension returns the dimension of the ambient space.
func (h Hyperplane) Dimension() int { return h.normal.Dimension() }

// Normal returns the normal vector.
func (h Hyperplane) Normal() vector.Vector { return h.normal }

// Constant returns the constant term.
func (h Hyperplane) Constant() decimal.Decimal { return h.constant }

// FirstNonzeroIndex returns the index of the first coordinate with |c| >= eps.
//
// Errors:
//   - ErrNoNonzeroElements if every coordinate is near zero.
func FirstNonzeroIndex(coords []decimal.Decimal, eps float64) (int, error) {
	for i, c := range coords {
		if !scalar.IsNearZeroWithin(c, eps) {
			return i, nil
		}
	}

	return -1, ErrNoNonzeroElements
}

// Basepoint returns one point on the hyperplane: constant/n[i] at the first
// non-zero index i of the normal and zero elsewhere. It is recomputed from
// the current coefficients on every call. ok is false when the normal is
// zero and no basepoint exists.
//
// "Non-zero" means |n[i]| >= scalar.Epsilon; use BasepointWithin to apply
// another tolerance (linsys does, with the system's epsilon).
func (h Hyperplane) Basepoint() (vector.Vector, bool) {
	return h.BasepointWithin(scalar.Epsilon)
}

// BasepointWithin is Basepoint with coefficients below eps treated as zero.
func (h Hyperplane) BasepointWithin(eps float64) (vector.Vector, bool) {
	n := h.normal.Coordinates()
	i, err := FirstNonzeroIndex(n, eps)
	if errors.Is(err, ErrNoNonzeroElements) {
		return vector.Vector{}, false
	}

	coords := make([]decimal.Decimal, len(n))
	for j := range coords {
		coords[j] = decimal.Zero
	}
	coords[i] = scalar.Div(h.constant, n[i])
	bp, _ := vector.FromDecimals(coords)

	return bp, true
}

// Scaled returns c·h: both the normal and the constant are multiplied by c.
func (h Hyperplane) Scaled(c decimal.Decimal) Hyperplane {
	return Hyperplane{normal: h.normal.Scale(c), constant: scalar.Round(h.constant.Mul(c))}
}

// Divided returns h/c. Every coefficient equal to c becomes exactly 1.
func (h Hyperplane) Divided(c decimal.Decimal) (Hyperplane, error) {
	n, err := h.normal.Divide(c)
	if err != nil {
		return Hyperplane{}, hyperplaneErrorf(opDivided, err)
	}

	return Hyperplane{normal: n, constant: scalar.Div(h.constant, c)}, nil
}

// Plus returns the equation h + other (normals and constants added).
func (h Hyperplane) Plus(other Hyperplane) (Hyperplane, error) {
	n, err := h.normal.Plus(other.normal)
	if err != nil {
		return Hyperplane{}, hyperplaneErrorf(opPlus, ErrDimensionMismatch)
	}

	return Hyperplane{normal: n, constant: scalar.Round(h.constant.Add(other.constant))}, nil
}

// Residual returns normal·p − constant; zero when p lies on the hyperplane.
func (h Hyperplane) Residual(p vector.Vector) (decimal.Decimal, error) {
	d, err := h.normal.Dot(p)
	if err != nil {
		return decimal.Zero, hyperplaneErrorf(opResidual, ErrDimensionMismatch)
	}

	return d.Sub(h.constant), nil
}

// Contains reports whether p satisfies the equation within eps.
func (h Hyperplane) Contains(p vector.Vector, eps float64) (bool, error) {
	r, err := h.Residual(p)
	if err != nil {
		return false, err
	}

	return scalar.IsNearZeroWithin(r, eps), nil
}
