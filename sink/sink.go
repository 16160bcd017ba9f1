// Package sink defines the system of record computed rates are forwarded to.
package sink

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/robotomize/valetfx/label"
	"github.com/shopspring/decimal"
)

// Rate is a computed rate quoted as units of Symbol per one CAD
type Rate struct {
	Symbol label.Symbol    `json:"currency"`
	Rate   decimal.Decimal `json:"rate"`
	AsOf   time.Time       `json:"as_of"`
}

// Sink persists one rate. Implementations are keyed by Symbol, so write order does not matter
//
//go:generate mockgen -source sink.go -destination mock_sink.go -package sink
type Sink interface {
	SetExchangeRate(ctx context.Context, rate Rate) error
}

// SinkFunc adapts a function to Sink
type SinkFunc func(ctx context.Context, rate Rate) error

func (f SinkFunc) SetExchangeRate(ctx context.Context, rate Rate) error {
	return f(ctx, rate)
}

// Tee forwards every rate to all sinks. Every sink is tried, failures are aggregated
func Tee(sinks ...Sink) Sink {
	return SinkFunc(func(ctx context.Context, rate Rate) error {
		var merr *multierror.Error
		for i, s := range sinks {
			if err := s.SetExchangeRate(ctx, rate); err != nil {
				merr = multierror.Append(merr, fmt.Errorf("sink %d: %w", i, err))
			}
		}

		return merr.ErrorOrNil()
	})
}
