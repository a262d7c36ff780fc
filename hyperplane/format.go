// SPDX-License-Identifier: MIT

package hyperplane

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/katalvlaran/linsolve/scalar"
)

// String renders the equation as "c1x_1 + c2x_2 - x_3 = k".
//
// Coefficients are rounded to scalar.DisplayPlaces; terms that round to zero
// are omitted; unit coefficients are written as a bare sign; the first shown
// term carries no leading "+". A zero normal renders as "0 = k".
func (h Hyperplane) String() string {
	var terms []string
	for i, c := range h.normal.Coordinates() {
		r := c.RoundBank(scalar.DisplayPlaces)
		if r.IsZero() {
			continue
		}
		terms = append(terms, writeCoefficient(r, len(terms) == 0)+fmt.Sprintf("x_%d", i+1))
	}

	lhs := "0"
	if len(terms) > 0 {
		lhs = strings.Join(terms, " ")
	}

	return lhs + " = " + scalar.Format(h.constant)
}

// writeCoefficient renders a non-zero rounded coefficient with its sign.
func writeCoefficient(c decimal.Decimal, initial bool) string {
	var sb strings.Builder
	switch {
	case c.IsNegative():
		sb.WriteString("-")
	case !initial:
		sb.WriteString("+")
	}
	if !initial {
		sb.WriteString(" ")
	}
	if abs := c.Abs(); !abs.Equal(scalar.One) {
		sb.WriteString(scalar.Format(abs))
	}

	return sb.String()
}
