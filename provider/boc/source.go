// Package boc implements a provider.Source over the Bank of Canada Valet API. Monthly average
// series are named FXM{ISO}CAD and quote CAD per one unit of the foreign currency.
package boc

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"path"

	"github.com/robotomize/valetfx/label"
	"github.com/robotomize/valetfx/provider"
	"github.com/robotomize/valetfx/provider/httputil"
	"github.com/shopspring/decimal"
)

const hostname = "www.bankofcanada.ca"

const (
	basePath         = "/valet"
	observationsPath = "observations"
	groupsPath       = "groups"
	monthlyGroup     = "FX_RATES_MONTHLY"
)

var defaultBaseURL = url.URL{Scheme: "https", Host: hostname, Path: basePath}

var exchangeableSymbols = []label.Symbol{
	label.AUD, label.BRL, label.CNY, label.EUR, label.HKD, label.INR, label.IDR, label.JPY, label.MYR,
	label.MXN, label.NZD, label.NOK, label.PEN, label.RUB, label.SAR, label.SGD, label.ZAR, label.KRW,
	label.SEK, label.CHF, label.TWD, label.THB, label.TRY, label.GBP, label.USD, label.VND,
}

var (
	_ provider.Source      = (*Source)(nil)
	_ provider.LabelSource = (*Source)(nil)
)

type Option func(*Source)

// WithBaseURL points the source at another Valet deployment, e.g. a test server
func WithBaseURL(u url.URL) Option {
	return func(s *Source) {
		s.baseURL = u
	}
}

// NewSource returns a Valet source. A nil client uses the preconfigured source HTTP client
func NewSource(client *http.Client, opts ...Option) *Source {
	httpClient := httputil.DefaultSourceHTTPClient()
	if client != nil {
		httpClient = httputil.NewHTTPClient(client)
	}

	s := &Source{
		baseURL: defaultBaseURL,
		client:  httpClient,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

type Source struct {
	baseURL url.URL
	client  httputil.SourceHTTPClient
}

func (s *Source) GetExchangeable() []label.Symbol {
	return exchangeableSymbols
}

// SeriesURL returns the observations endpoint of the monthly series of sym
func (s *Source) SeriesURL(sym label.Symbol) url.URL {
	u := s.baseURL
	u.Path = path.Join(u.Path, observationsPath, SeriesKey(sym))

	return u
}

func (s *Source) groupURL() url.URL {
	u := s.baseURL
	u.Path = path.Join(u.Path, groupsPath, monthlyGroup)

	return u
}

// Fetch downloads and decodes an observations document. Transport failures are wrapped in
// provider.ErrFetch, malformed bodies in provider.ErrParse
func (s *Source) Fetch(ctx context.Context, u url.URL) (Document, error) {
	b, err := s.client.Get(ctx, u)
	if err != nil {
		return Document{}, fmt.Errorf("%w: %w", provider.ErrFetch, err)
	}

	doc, err := decodeDocument(b)
	if err != nil {
		return Document{}, fmt.Errorf("%s: %w", u.String(), err)
	}

	return doc, nil
}

// FetchMonthly fetches the series of q.Symbol and extracts the q.Year-q.Month observation
func (s *Source) FetchMonthly(ctx context.Context, q provider.MonthlyQuery) (decimal.Decimal, error) {
	doc, err := s.Fetch(ctx, s.SeriesURL(q.Symbol))
	if err != nil {
		return decimal.Zero, fmt.Errorf("fetch %s: %w", SeriesKey(q.Symbol), err)
	}

	rate, ok, err := ExtractRate(doc, q)
	if err != nil {
		return decimal.Zero, fmt.Errorf("extract %s: %w", q, err)
	}

	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %s in %s-%s", provider.ErrNotFound, SeriesKey(q.Symbol), q.Year, q.Month)
	}

	return rate, nil
}

// FetchLabels lists the human-readable names of the monthly FX series, e.g. "EUR" for "EUR/CAD"
func (s *Source) FetchLabels(ctx context.Context) ([]string, error) {
	b, err := s.client.Get(ctx, s.groupURL())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", provider.ErrFetch, err)
	}

	group, err := decodeGroup(b)
	if err != nil {
		return nil, err
	}

	return group.labels(), nil
}
