// SPDX-License-Identifier: MIT

package hyperplane

import (
	"github.com/shopspring/decimal"

	"github.com/katalvlaran/linsolve/vector"
)

// Dimensions fixed by the named constructors.
const (
	LineDimension  = 2
	PlaneDimension = 3
)

const panicNormalEmpty = "hyperplane: WithNormal: normal vector must be non-empty"

// Option configures a Hyperplane under construction.
type Option func(*Options)

// Options holds the resolved constructor arguments.
// Zero value: no normal (zero vector of the requested dimension), constant 0.
type Options struct {
	normal   *vector.Vector
	constant decimal.Decimal
}

// WithNormal sets the normal vector. Panics on the zero-value Vector, which
// can only come from ignoring a constructor error.
func WithNormal(n vector.Vector) Option {
	if n.Dimension() == 0 {
		panic(panicNormalEmpty)
	}

	return func(o *Options) { o.normal = &n }
}

// WithConstant sets the constant term k of n·x = k.
func WithConstant(k decimal.Decimal) Option {
	return func(o *Options) { o.constant = k }
}

func gatherOptions(opts ...Option) Options {
	o := Options{constant: decimal.Zero}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
