// Package vector implements the fixed-dimension numeric vector used by
// hyperplanes and linear systems.
//
// A Vector is an immutable, non-empty tuple of decimals. Every operation
// returns a fresh Vector; binary operations require equal dimensions and
// fail with ErrDimensionMismatch otherwise.
//
// ✨ Operations:
//   - Arithmetic:  Plus, Minus, Scale, Divide
//   - Metric:      Magnitude, Normalized, IsZero, Dot
//   - Geometry:    Cross (2D inputs lie in the z=0 plane), AngleWith,
//     AreaOfParallelogram, AreaOfTriangle
//   - Relations:   Relation (parallel / orthogonal / both / neither),
//     ComponentParallelTo, ComponentOrthogonalTo
//
// Zero-vector failures are reported by kind: Normalized returns
// ErrZeroVector, while AngleWith and the component projections translate it
// into ErrZeroVectorAngle and ErrNoUniqueComponent respectively.
//
// Usage:
//
//	v, _ := vector.New("3.039", "1.879")
//	b, _ := vector.New("0.825", "2.036")
//	p, err := v.ComponentParallelTo(b)
package vector
