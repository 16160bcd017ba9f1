// Package valetfx computes monthly-average exchange rates against CAD and forwards them to a sink.
//
//	u := valetfx.New(boc.NewSource(nil), store)
//	report := u.Run(ctx, []label.Symbol{label.USD, label.EUR, label.CAD})
//	if err := report.Err(); err != nil {
//		log.Printf("%d rates updated, failures: %v", report.Count(), err)
//	}
package valetfx

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/robotomize/valetfx/internal/fxmath"
	"github.com/robotomize/valetfx/internal/logging"
	"github.com/robotomize/valetfx/internal/metrics"
	"github.com/robotomize/valetfx/internal/period"
	"github.com/robotomize/valetfx/label"
	"github.com/robotomize/valetfx/provider"
	"github.com/robotomize/valetfx/sink"
	"github.com/sethvargo/go-retry"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	// ErrSink wraps any error returned by the rate sink
	ErrSink = errors.New("sink rejected rate")
	// ErrDivision reports a zero or negative source rate that can not be inverted
	ErrDivision = fxmath.ErrDivision
	// ErrLabelsNotSupported is returned by Labels when the source can not list series labels
	ErrLabelsNotSupported = errors.New("source does not provide labels")
)

const (
	// DefaultRequestTimeout bounds every single source request
	DefaultRequestTimeout = 10 * time.Second
	// DefaultRetryNum is zero, every fetch is attempted once unless WithRetryNum says otherwise
	DefaultRetryNum = 0
	// DefaultRetryDuration constant pause between fetch attempts
	DefaultRetryDuration = 5 * time.Second
)

const (
	// ReasonFetch transport, status or timeout failure talking to the source
	ReasonFetch = "fetch"
	// ReasonParse malformed response body or rate value
	ReasonParse = "parse"
	// ReasonNotFound the month or series is not published yet
	ReasonNotFound = "not_found"
	// ReasonDivision the rate could not be inverted into a positive 4-place value
	ReasonDivision = "division"
	// ReasonSink the sink refused the rate
	ReasonSink = "sink"
	// ReasonUnknown any other error
	ReasonUnknown = "unknown"
)

type Option func(*Updater)

type Options struct {
	RetryNum       uint64
	RetryDuration  time.Duration
	RequestTimeout time.Duration
}

// WithRetryNum set number of repeated requests for transport failures of the source
func WithRetryNum(n uint64) Option {
	return func(u *Updater) {
		u.opts.RetryNum = n
	}
}

// WithRetryDuration constant backoff between retries
func WithRetryDuration(t time.Duration) Option {
	return func(u *Updater) {
		u.opts.RetryDuration = t
	}
}

// WithRequestTimeout set a timeout for every source request
func WithRequestTimeout(t time.Duration) Option {
	return func(u *Updater) {
		u.opts.RequestTimeout = t
	}
}

// WithClock replaces time.Now, the clock decides the queried month and the as-of date of rates
func WithClock(now func() time.Time) Option {
	return func(u *Updater) {
		u.now = now
	}
}

// WithPrometheus registers run metrics in reg
func WithPrometheus(reg prometheus.Registerer) Option {
	return func(u *Updater) {
		u.metrics = metrics.New(reg)
	}
}

// New return updater reading rates from source and writing them to dst
func New(source provider.Source, dst sink.Sink, opts ...Option) *Updater {
	u := &Updater{
		opts: Options{
			RetryNum:       DefaultRetryNum,
			RetryDuration:  DefaultRetryDuration,
			RequestTimeout: DefaultRequestTimeout,
		},
		source: source,
		sink:   dst,
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(u)
	}

	return u
}

// Updater runs the rate pipeline. It keeps no state between runs and can be reused
type Updater struct {
	opts Options

	source  provider.Source
	sink    sink.Sink
	now     func() time.Time
	metrics *metrics.Metrics
}

// Failure is a currency that could not be updated
type Failure struct {
	Symbol label.Symbol
	Err    error
}

func (f Failure) Error() string {
	return fmt.Sprintf("%s: %v", f.Symbol, f.Err)
}

func (f Failure) Unwrap() error {
	return f.Err
}

// Reason classifies the failure for logs and metrics
func (f Failure) Reason() string {
	switch {
	case errors.Is(f.Err, ErrSink):
		return ReasonSink
	case errors.Is(f.Err, provider.ErrNotFound):
		return ReasonNotFound
	case errors.Is(f.Err, fxmath.ErrDivision), errors.Is(f.Err, fxmath.ErrUnderflow):
		return ReasonDivision
	case errors.Is(f.Err, provider.ErrParse):
		return ReasonParse
	case errors.Is(f.Err, provider.ErrFetch), errors.Is(f.Err, context.DeadlineExceeded), errors.Is(f.Err, context.Canceled):
		return ReasonFetch
	default:
		return ReasonUnknown
	}
}

// Report summarises one run
type Report struct {
	RunID string
	// Year and Month of the queried observations
	Year     string
	Month    string
	Expected []label.Symbol
	Updated  []sink.Rate
	Skipped  []label.Symbol
	Failures []Failure
}

// Count returns the number of rates forwarded to the sink
func (r Report) Count() int {
	return len(r.Updated)
}

// Err folds the failures into a *multierror.Error, nil when every currency succeeded or was skipped
func (r Report) Err() error {
	return joinFailures(r.Failures)
}

// Run updates every currency in turn. A failing currency is recorded in the report and the run
// moves on to the next one. USD is skipped, CAD is computed from the USD series
func (u *Updater) Run(ctx context.Context, currencies []label.Symbol) Report {
	asOf := u.now()
	year, month := period.PreviousMonth(asOf)

	report := Report{
		RunID:    uuid.NewString(),
		Year:     year,
		Month:    month,
		Expected: make([]label.Symbol, len(currencies)),
		Updated:  make([]sink.Rate, 0, len(currencies)),
		Skipped:  make([]label.Symbol, 0),
		Failures: make([]Failure, 0),
	}
	copy(report.Expected, currencies)

	logger := logging.FromContext(ctx).With(
		zap.String("run_id", report.RunID),
		zap.String("period", year+"-"+month),
	)
	logger.Info("rate update started", zap.Int("currencies", len(currencies)))

	for _, sym := range currencies {
		log := logger.With(zap.String("currency", sym.String()))

		rate, skipped, err := u.process(ctx, sym, year, month, asOf)
		switch {
		case err != nil:
			f := Failure{Symbol: sym, Err: err}
			report.Failures = append(report.Failures, f)
			u.metrics.Failed(sym.String(), f.Reason())

			if f.Reason() == ReasonNotFound {
				log.Info("rate not published for period", zap.Error(err))
			} else {
				log.Error("rate update failed", zap.String("reason", f.Reason()), zap.Error(err))
			}
		case skipped:
			report.Skipped = append(report.Skipped, sym)
			u.metrics.Skipped(sym.String())
			log.Debug("currency skipped")
		default:
			report.Updated = append(report.Updated, rate)
			f, _ := rate.Rate.Float64()
			u.metrics.Updated(sym.String(), f)
			log.Info("rate updated", zap.String("rate", rate.Rate.String()))
		}
	}

	logger.Info("rate update finished",
		zap.Int("updated", report.Count()),
		zap.Int("skipped", len(report.Skipped)),
		zap.Int("failed", len(report.Failures)),
	)

	return report
}

func (u *Updater) process(
	ctx context.Context, sym label.Symbol, year, month string, asOf time.Time,
) (sink.Rate, bool, error) {
	query := provider.MonthlyQuery{Symbol: sym, Year: year, Month: month}

	switch sym {
	case label.USD:
		return sink.Rate{}, true, nil
	case label.CAD:
		// there is no CAD/CAD series
		query.Symbol = label.USD
	}

	quoted, err := u.fetch(ctx, query)
	if err != nil {
		return sink.Rate{}, false, fmt.Errorf("fetch %s: %w", query, err)
	}

	inverted, err := fxmath.InvertAndRound(quoted)
	if err != nil {
		return sink.Rate{}, false, fmt.Errorf("invert %s: %w", query, err)
	}

	rate := sink.Rate{Symbol: sym, Rate: inverted, AsOf: asOf}
	if err := u.sink.SetExchangeRate(ctx, rate); err != nil {
		return sink.Rate{}, false, fmt.Errorf("%w: %w", ErrSink, err)
	}

	return rate, false, nil
}

func (u *Updater) fetch(ctx context.Context, q provider.MonthlyQuery) (decimal.Decimal, error) {
	var rate decimal.Decimal

	b, err := retry.NewConstant(u.opts.RetryDuration)
	if err != nil {
		return rate, fmt.Errorf("retry backoff: %w", err)
	}

	b = retry.WithMaxRetries(u.opts.RetryNum, b)

	if err := retry.Do(ctx, b, func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, u.opts.RequestTimeout)
		defer cancel()

		started := time.Now()
		r, err := u.source.FetchMonthly(ctx, q)
		u.metrics.ObserveFetch(q.Symbol.String(), started)
		if err != nil {
			if errors.Is(err, provider.ErrFetch) {
				return retry.RetryableError(err)
			}
			return err
		}

		rate = r

		return nil
	}); err != nil {
		return decimal.Zero, err
	}

	return rate, nil
}

// RunFrom lists the active currencies of src and runs them. Only a listing failure is returned,
// per-currency failures stay in the report
func (u *Updater) RunFrom(ctx context.Context, src CurrencySource) (Report, error) {
	currencies, err := src.ActiveCurrencies(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("list active currencies: %w", err)
	}

	return u.Run(ctx, currencies), nil
}

// Labels returns the human-readable series labels of the source
func (u *Updater) Labels(ctx context.Context) ([]string, error) {
	ls, ok := u.source.(provider.LabelSource)
	if !ok {
		return nil, ErrLabelsNotSupported
	}

	ctx, cancel := context.WithTimeout(ctx, u.opts.RequestTimeout)
	defer cancel()

	labels, err := ls.FetchLabels(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch labels: %w", err)
	}

	return labels, nil
}

// GetExchangeable returns the currencies the source publishes
func (u *Updater) GetExchangeable() []label.Symbol {
	return u.source.GetExchangeable()
}
