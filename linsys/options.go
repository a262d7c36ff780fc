// SPDX-License-Identifier: MIT

// Package linsys: functional configuration and numeric policy for systems.
// This file defines:
//   - Option / Options (functional options with unexported state),
//   - DefaultEpsilon (documented default),
//   - WithEpsilon (panics on nonsensical values),
//   - gatherOptions (internal) that applies defaults before options.
//
// Design goals:
//   - No global state: every System carries its own Options, and Clone and
//     the reductions copy them, so a derived system classifies rows exactly
//     like its source.
//   - Panic only on programmer error: a tolerance that is zero, negative,
//     NaN or infinite can never be meant.
//
// Notes:
//   - One tolerance drives pivot search (PivotIndices, TriangularForm),
//     elimination (entries below eps are skipped), classification in Solve
//     (0 = k with |k| < eps is 0 = 0), Satisfies and RowBasepoint.
//   - hyperplane.Basepoint on its own uses scalar.Epsilon; go through
//     System.RowBasepoint to get the system's tolerance.
//   - Coefficients themselves are never rounded to eps: a near-zero residue
//     stays in the row and is only ignored when compared.
package linsys

import (
	"math"

	"github.com/katalvlaran/linsolve/scalar"
)

// DefaultEpsilon is the near-zero tolerance for pivots and classification.
const DefaultEpsilon = scalar.Epsilon

const panicEpsilonInvalid = "linsys: WithEpsilon: eps must be finite, positive"

// Option configures a System.
type Option func(*Options)

// Options stores the effective configuration. Fields are unexported; use WithX.
type Options struct {
	eps float64 // > 0; DefaultEpsilon
}

// WithEpsilon sets the tolerance below which a coefficient or constant is
// treated as zero during pivot search, elimination and classification.
// Panics when eps is not finite or not positive.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps <= 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

func gatherOptions(opts ...Option) Options {
	o := Options{eps: DefaultEpsilon}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
