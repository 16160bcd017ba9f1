// Package fxmath converts quote directions of exchange rates.
package fxmath

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Places is the number of fractional digits kept after inversion
const Places = 4

var (
	ErrDivision  = errors.New("rate must be strictly positive")
	ErrUnderflow = errors.New("inverted rate rounds to zero")
)

var one = decimal.NewFromInt(1)

// InvertAndRound turns a "CAD per unit" rate into "units per CAD", i.e. round(1/rate, 4) where
// halves are rounded away from zero. Rounding happens once, on the exact quotient
func InvertAndRound(rate decimal.Decimal) (decimal.Decimal, error) {
	if !rate.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrDivision, rate.String())
	}

	inverted := one.DivRound(rate, Places)
	if !inverted.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: 1/%s", ErrUnderflow, rate.String())
	}

	return inverted, nil
}
