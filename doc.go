// Package linsolve classifies and solves systems of linear equations,
// one hyperplane per equation, using decimal arithmetic throughout.
//
// 🚀 What is linsolve?
//
//	A small library that walks from vectors to full systems:
//		• Vectors: magnitude, normalization, dot/cross products, angles,
//		  parallel/orthogonal tests, projections
//		• Hyperplanes: lines and planes as normal·x = k, basepoints,
//		  equality, line intersection
//		• Systems: row operations, triangular form, RREF, and a solver that
//		  reports no solutions, a unique point, or a parametrization
//
// ✨ Why decimals?
//
//	Every coefficient is a shopspring decimal kept to 30 places, so
//	cancelled coefficients stay at ~1e-30 instead of ~1e-16 and the
//	near-zero tolerance (1e-10) separates real pivots from residue.
//
// Under the hood, everything is organized under four subpackages:
//
//	scalar/      numeric policy: precision, tolerances, parsing, sqrt, display
//	vector/      immutable Vector value type and geometry
//	hyperplane/  Hyperplane value type, lines and planes, intersection
//	linsys/      System, Gaussian elimination, RREF, Solve, gonum interop
//
// Quick example:
//
//	x + y + z = 1
//	    y + z = 2
//
//	solves to the line (-1, 2, 0) + t·(0, -1, 1).
//
//	go get github.com/katalvlaran/linsolve
package linsolve
