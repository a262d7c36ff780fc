// Package linsys solves systems of linear equations by Gaussian elimination.
//
// A System is an ordered list of same-dimension hyperplanes (one equation per
// row). Solve classifies the system and, where possible, solves it:
//
//	NoSolution          some row reduces to 0 = k with k ≠ 0
//	UniqueSolution      one pivot per variable; Solution.Point holds x
//	InfiniteSolutions   free variables remain; Solution.Parametrization holds
//	                    a basepoint and one direction per free variable
//
// 🚀 Pipeline:
//
//	Solve ─► RREF ─► TriangularForm ─► Clone
//
//	TriangularForm  for each row i, find the first column j that has a usable
//	                pivot at (i, j), swapping in a lower row when (i, j) is near
//	                zero, then eliminate column j from every row below.
//	RREF            divide every pivot row by its pivot, then eliminate the
//	                pivot column from every row above.
//	Solve           inspect the pivot structure of the RREF.
//
// Reductions never modify the receiver: they run on a deep copy. The row
// operations SwapRows, ScaleRow and AddScaledRow mutate in place and are
// exported for callers who drive elimination by hand.
//
// ⚙️ Numeric policy:
//
//	Coefficients are decimals (see package scalar). A coefficient with
//	|c| < ε is treated as zero when searching for pivots and classifying;
//	ε defaults to 1e-10 and is configurable with WithEpsilon.
//
// Interop:
//
//	FromDense builds a System from a gonum coefficient matrix and right-hand
//	side; Coefficients, Constants and Augmented export back to gonum.
//
// Complexity:
//   - TriangularForm / RREF: O(rows² · dim) decimal operations.
//   - Memory: one copy of the system per reduction.
package linsys
