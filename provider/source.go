package provider

import (
	"context"
	"errors"
	"fmt"

	"github.com/robotomize/valetfx/label"
	"github.com/shopspring/decimal"
)

var (
	// ErrFetch reports a network, transport or non-2xx failure while talking to the data provider
	ErrFetch = errors.New("fetch failed")
	// ErrParse reports a malformed response body or a non-numeric rate value
	ErrParse = errors.New("parse failed")
	// ErrNotFound reports that the requested month or series is absent from the response
	ErrNotFound = errors.New("rate not found")
)

// MonthlyQuery identifies exactly one monthly observation of a series quoted against CAD
type MonthlyQuery struct {
	Symbol label.Symbol
	// Year is four digits, e.g. 2024
	Year string
	// Month is zero-padded, 01..12
	Month string
}

func (q MonthlyQuery) String() string {
	return fmt.Sprintf("%s %s-%s", q.Symbol, q.Year, q.Month)
}

// Source is an interface for getting monthly average rates from an external provider. Returned rates
// are quoted as CAD per one unit of the query symbol
//
//go:generate mockgen -source source.go -destination mock_source.go -package provider
type Source interface {
	// FetchMonthly returns the monthly average for the query. Absent data is reported with ErrNotFound
	FetchMonthly(ctx context.Context, q MonthlyQuery) (decimal.Decimal, error)

	// GetExchangeable declares to give a list of currencies the provider publishes
	GetExchangeable() []label.Symbol
}

// LabelSource is implemented by sources able to list human-readable series labels
type LabelSource interface {
	FetchLabels(ctx context.Context) ([]string, error)
}
