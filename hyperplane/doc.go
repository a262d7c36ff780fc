// Package hyperplane represents the flat n·x = k: a line in 2D, a plane in
// 3D, and its generalization in any dimension.
//
// A Hyperplane is a value: a normal vector and a constant term. Lines and
// planes share all logic; NewLine and NewPlane only fix the dimension.
//
// 🚀 Highlights:
//   - Basepoint is derived on every call from the current coefficients
//     (constant / first non-zero coefficient, placed at that coefficient's
//     index). There is no cached field that could go stale.
//   - Equal treats two hyperplanes as the same set of points: parallel
//     normals and a basepoint difference orthogonal to both normals.
//   - Intersection solves two lines by Cramer's rule, or reports that they
//     coincide or never meet.
//
// Usage:
//
//	n, _ := vector.New("4.046", "2.836")
//	l, err := hyperplane.NewLine(
//		hyperplane.WithNormal(n),
//		hyperplane.WithConstant(scalar.Must("1.21")),
//	)
//	fmt.Println(l) // 4.046x_1 + 2.836x_2 = 1.210
package hyperplane
