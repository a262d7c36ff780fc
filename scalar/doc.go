// Package scalar fixes the numeric policy shared by every other package in
// linsolve: the decimal type, its working precision, the near-zero tolerances
// and the display rounding used when equations are rendered as text.
//
// 🚀 Why decimals?
//
//	Gaussian elimination repeatedly subtracts scaled rows from each other.
//	With float64 the residue of a cancelled coefficient is ~1e-16 and the
//	error compounds row after row. Scalars here are shopspring decimals:
//	addition, subtraction and multiplication are exact, and every division
//	is rounded to Precision decimal places.
//
// ⚙️ Policy:
//
//	Precision         = 30     decimal places kept by divisions and vector arithmetic
//	DisplayPlaces     = 3      places shown by Format
//	Epsilon           = 1e-10  |x| < Epsilon ⇒ x is treated as zero
//	ParallelTolerance = 1e-6   | |cos θ| − 1 | < ParallelTolerance ⇒ parallel
//
// Usage:
//
//	k, err := scalar.From("-0.714")
//	if err != nil { ... }
//	fmt.Println(scalar.Format(k)) // -0.714
package scalar
