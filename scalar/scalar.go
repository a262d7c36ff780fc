// SPDX-License-Identifier: MIT

package scalar

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// Numeric policy.
const (
	// Precision is the number of decimal places kept by divisions and by
	// rounded vector arithmetic.
	Precision int32 = 30

	// DisplayPlaces is the number of decimal places shown by Format.
	DisplayPlaces int32 = 3

	// Epsilon is the default near-zero tolerance.
	Epsilon = 1e-10

	// ParallelTolerance bounds | |cos θ| − 1 | for two vectors to count as parallel.
	ParallelTolerance = 1e-6
)

// sqrtMaxIter caps Newton refinement. A float64 seed converges in a few
// steps; a power-of-ten seed needs about a dozen for large magnitudes.
const sqrtMaxIter = 16

var (
	// ErrNotNumeric is returned when a value cannot be converted to a decimal.
	ErrNotNumeric = errors.New("scalar: value is not numeric")

	// ErrNegative is returned by Sqrt for negative input.
	ErrNegative = errors.New("scalar: square root of a negative number")
)

// One is the multiplicative identity.
var One = decimal.NewFromInt(1)

var two = decimal.NewFromInt(2)

// From converts a numeric literal into a decimal.
// Accepted kinds: decimal.Decimal, string, int, int32, int64, float32, float64.
// Floats are converted through their shortest exact decimal representation,
// so From(0.1) equals From("0.1"). NaN and ±Inf are rejected.
func From(v any) (decimal.Decimal, error) {
	switch x := v.(type) {
	case decimal.Decimal:
		return x, nil
	case string:
		d, err := decimal.NewFromString(x)
		if err != nil {
			return decimal.Zero, fmt.Errorf("%w: %q", ErrNotNumeric, x)
		}
		return d, nil
	case int:
		return decimal.NewFromInt(int64(x)), nil
	case int32:
		return decimal.NewFromInt32(x), nil
	case int64:
		return decimal.NewFromInt(x), nil
	case float32:
		if isNonFinite(float64(x)) {
			return decimal.Zero, fmt.Errorf("%w: %v", ErrNotNumeric, x)
		}
		return decimal.NewFromFloat32(x), nil
	case float64:
		if isNonFinite(x) {
			return decimal.Zero, fmt.Errorf("%w: %v", ErrNotNumeric, x)
		}
		return decimal.NewFromFloat(x), nil
	default:
		return decimal.Zero, fmt.Errorf("%w: %T", ErrNotNumeric, v)
	}
}

// Must is like From but panics on error. Intended for literals.
func Must(v any) decimal.Decimal {
	d, err := From(v)
	if err != nil {
		panic(err)
	}

	return d
}

// IsNearZero reports whether |d| < Epsilon.
func IsNearZero(d decimal.Decimal) bool {
	return IsNearZeroWithin(d, Epsilon)
}

// IsNearZeroWithin reports whether |d| < eps.
func IsNearZeroWithin(d decimal.Decimal, eps float64) bool {
	return d.Abs().LessThan(decimal.NewFromFloat(eps))
}

// Div returns a / b rounded half away from zero to Precision places.
// b must be non-zero; callers guard their divisors.
func Div(a, b decimal.Decimal) decimal.Decimal {
	return a.DivRound(b, Precision)
}

// Round rounds d half-even to Precision places.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.RoundBank(Precision)
}

// Sqrt returns the non-negative square root of d at working precision.
//
// Implementation:
//   - Stage 1: seed with math.Sqrt of the float64 approximation (≈16 digits),
//     or with a power of ten when d lies outside float64 range.
//   - Stage 2: Newton steps x ← (x + d/x)/2 until x stops changing.
//
// Errors:
//   - ErrNegative for d < 0.
func Sqrt(d decimal.Decimal) (decimal.Decimal, error) {
	if d.IsNegative() {
		return decimal.Zero, ErrNegative
	}
	if d.IsZero() {
		return decimal.Zero, nil
	}

	x := sqrtSeed(d)

	var next decimal.Decimal
	for i := 0; i < sqrtMaxIter; i++ {
		next = x.Add(Div(d, x)).DivRound(two, Precision)
		if next.Equal(x) {
			break
		}
		x = next
	}

	return x, nil
}

// Format renders d rounded half-even to DisplayPlaces. Integer-valued
// results print without a decimal point ("2", not "2.000").
func Format(d decimal.Decimal) string {
	r := d.RoundBank(DisplayPlaces)
	if r.IsInteger() {
		return r.Truncate(0).String()
	}

	return r.StringFixed(DisplayPlaces)
}

// sqrtSeed returns a starting point for Newton refinement of √d, d > 0.
// Outside float64 range the seed is 10^(m/2), m being the decimal exponent
// of d's leading digit plus one, so the seed is within a factor of ten of
// the root.
func sqrtSeed(d decimal.Decimal) decimal.Decimal {
	if f := d.InexactFloat64(); f > 0 && !isNonFinite(f) {
		if s := math.Sqrt(f); s > 0 && !isNonFinite(s) {
			return decimal.NewFromFloat(s)
		}
	}

	m := int32(d.NumDigits()) + d.Exponent()
	if m/2 < -Precision {
		// Roots below working precision settle at the smallest step.
		return decimal.New(1, -Precision)
	}

	return decimal.New(1, m/2)
}

func isNonFinite(f float64) bool {
	return math.IsNaN(f) || math.IsInf(f, 0)
}
