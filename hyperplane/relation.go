// SPDX-License-Identifier: MIT

package hyperplane

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/katalvlaran/linsolve/scalar"
	"github.com/katalvlaran/linsolve/vector"
)

// IntersectionKind classifies how two lines meet.
type IntersectionKind int

const (
	// NoIntersection: parallel, distinct lines.
	NoIntersection IntersectionKind = iota

	// SinglePoint: the lines cross once, at Intersection.Point.
	SinglePoint

	// Coincident: the lines are equal; every point is shared.
	Coincident
)

// String implements fmt.Stringer.
func (k IntersectionKind) String() string {
	switch k {
	case SinglePoint:
		return "single point"
	case Coincident:
		return "infinite intersection"
	default:
		return "no intersection"
	}
}

// Intersection is the result of intersecting two lines.
// Point is set only for SinglePoint.
type Intersection struct {
	Kind  IntersectionKind
	Point vector.Vector
}

// IsParallel reports whether the normals are parallel. A zero normal is
// vacuously parallel to everything (vector.ParallelAndOrthogonal).
func (h Hyperplane) IsParallel(other Hyperplane) bool {
	return h.normal.IsParallelTo(other.normal)
}

// Equal reports whether h and other describe the same set of points.
//
// Two zero normals are equal iff their constants are near-equal; a zero and
// a non-zero normal never are. Otherwise the normals must be parallel and the
// vector joining the two basepoints must be orthogonal to both normals.
func (h Hyperplane) Equal(other Hyperplane) bool {
	if h.Dimension() != other.Dimension() {
		return false
	}

	hz, oz := h.normal.IsZero(), other.normal.IsZero()
	switch {
	case hz && oz:
		return scalar.IsNearZero(h.constant.Sub(other.constant))
	case hz || oz:
		return false
	}

	if !h.IsParallel(other) {
		return false
	}

	b1, ok1 := h.Basepoint()
	b2, ok2 := other.Basepoint()
	if !ok1 || !ok2 {
		return false
	}
	// Same dimension checked above.
	d, _ := b1.Minus(b2)

	return d.IsOrthogonalTo(h.normal) && d.IsOrthogonalTo(other.normal)
}

// Intersection intersects two lines.
//
// Implementation:
//   - Stage 1: parallel normals → Coincident when Equal, NoIntersection otherwise.
//   - Stage 2: Cramer's rule on [a b; c d]·(x, y) = (k1, k2).
//
// Errors:
//   - ErrNotALine if either hyperplane is not 2D.
func (h Hyperplane) Intersection(other Hyperplane) (Intersection, error) {
	if h.Dimension() != LineDimension || other.Dimension() != LineDimension {
		return Intersection{}, hyperplaneErrorf(opIntersection,
			fmt.Errorf("dimensions %d and %d: %w", h.Dimension(), other.Dimension(), ErrNotALine))
	}

	if h.IsParallel(other) {
		if h.Equal(other) {
			return Intersection{Kind: Coincident}, nil
		}
		return Intersection{Kind: NoIntersection}, nil
	}

	n1, n2 := h.normal.Coordinates(), other.normal.Coordinates()
	k1, k2 := h.constant, other.constant
	a, b, c, d := n1[0], n1[1], n2[0], n2[1]

	// Non-parallel normals keep the determinant away from zero.
	det := a.Mul(d).Sub(b.Mul(c))
	x := scalar.Div(d.Mul(k1).Sub(b.Mul(k2)), det)
	y := scalar.Div(a.Mul(k2).Sub(c.Mul(k1)), det)
	p, _ := vector.FromDecimals([]decimal.Decimal{x, y})

	return Intersection{Kind: SinglePoint, Point: p}, nil
}
