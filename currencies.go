package valetfx

import (
	"context"

	"github.com/robotomize/valetfx/label"
)

// CurrencySource lists the currencies the host considers active
type CurrencySource interface {
	ActiveCurrencies(ctx context.Context) ([]label.Symbol, error)
}

// CurrencySourceFunc adapts a function to CurrencySource
type CurrencySourceFunc func(ctx context.Context) ([]label.Symbol, error)

func (f CurrencySourceFunc) ActiveCurrencies(ctx context.Context) ([]label.Symbol, error) {
	return f(ctx)
}

// StaticCurrencies is a fixed currency list
type StaticCurrencies []label.Symbol

func (s StaticCurrencies) ActiveCurrencies(context.Context) ([]label.Symbol, error) {
	list := make([]label.Symbol, len(s))
	copy(list, s)

	return list, nil
}
