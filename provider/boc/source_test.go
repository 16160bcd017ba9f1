package boc

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/robotomize/valetfx/label"
	"github.com/robotomize/valetfx/provider"
	"github.com/robotomize/valetfx/provider/httputil"
)

const usdDocument = `{
	"seriesDetail": {"FXMUSDCAD": {"label": "USD/CAD", "description": "US dollar to Canadian dollar monthly average"}},
	"observations": [
		{"d": "2024-04-01", "FXMUSDCAD": {"v": "1.3675"}},
		{"d": "2024-05-01", "FXMUSDCAD": {"v": "1.3500"}}
	]
}`

const groupDocumentBody = `{
	"groupDetails": {
		"name": "FX_RATES_MONTHLY",
		"groupSeries": {
			"FXMUSDCAD": {"label": "USD/CAD"},
			"FXMEURCAD": {"label": "EUR/CAD"}
		}
	}
}`

func newTestSource(t *testing.T, h http.Handler) *Source {
	t.Helper()

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	u, err := url.Parse(srv.URL + "/valet")
	if err != nil {
		t.Fatalf("unable to parse server url: %v", err)
	}

	return NewSource(srv.Client(), WithBaseURL(*u))
}

func TestSource_GetExchangeable(t *testing.T) {
	t.Parallel()

	source := NewSource(nil)

	if diff := cmp.Diff(26, len(source.GetExchangeable())); diff != "" {
		t.Errorf("mismatch (-want, +got):\n%s", diff)
	}

	for _, sym := range source.GetExchangeable() {
		if sym == label.CAD {
			t.Errorf("CAD can not be quoted against itself")
		}
	}
}

func TestSource_SeriesURL(t *testing.T) {
	t.Parallel()

	u := NewSource(nil).SeriesURL(label.EUR)
	if diff := cmp.Diff("https://www.bankofcanada.ca/valet/observations/FXMEURCAD", u.String()); diff != "" {
		t.Errorf("mismatch (-want, +got):\n%s", diff)
	}
}

func TestSource_FetchMonthly(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name           string
		query          provider.MonthlyQuery
		handlerFunc    func() http.Handler
		expected       string
		err            error
		requestTimeout time.Duration
	}{
		{
			name:  "fetch_monthly_usd_may",
			query: provider.MonthlyQuery{Symbol: label.USD, Year: "2024", Month: "05"},
			handlerFunc: func() http.Handler {
				mux := http.NewServeMux()
				mux.HandleFunc("/valet/observations/FXMUSDCAD", func(w http.ResponseWriter, r *http.Request) {
					w.Header().Set("Content-Type", "application/json")
					_, _ = w.Write([]byte(usdDocument))
				})
				return mux
			},
			expected: "1.35",
		},
		{
			name:  "fetch_monthly_month_absent",
			query: provider.MonthlyQuery{Symbol: label.USD, Year: "2024", Month: "06"},
			handlerFunc: func() http.Handler {
				mux := http.NewServeMux()
				mux.HandleFunc("/valet/observations/FXMUSDCAD", func(w http.ResponseWriter, r *http.Request) {
					_, _ = w.Write([]byte(usdDocument))
				})
				return mux
			},
			err: provider.ErrNotFound,
		},
		{
			name:  "fetch_monthly_unknown_series_404",
			query: provider.MonthlyQuery{Symbol: label.Symbol("XAU"), Year: "2024", Month: "05"},
			handlerFunc: func() http.Handler {
				mux := http.NewServeMux()
				mux.HandleFunc("/valet/observations/FXMXAUCAD", func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(http.StatusNotFound)
					_, _ = w.Write([]byte(`{"message": "Series FXMXAUCAD not found."}`))
				})
				return mux
			},
			err: httputil.ErrStatusCode,
		},
		{
			name:  "fetch_monthly_http_not_ok",
			query: provider.MonthlyQuery{Symbol: label.EUR, Year: "2024", Month: "05"},
			handlerFunc: func() http.Handler {
				mux := http.NewServeMux()
				mux.HandleFunc("/valet/observations/FXMEURCAD", func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(http.StatusBadGateway)
				})
				return mux
			},
			err: provider.ErrFetch,
		},
		{
			name:  "fetch_monthly_malformed_body",
			query: provider.MonthlyQuery{Symbol: label.EUR, Year: "2024", Month: "05"},
			handlerFunc: func() http.Handler {
				mux := http.NewServeMux()
				mux.HandleFunc("/valet/observations/FXMEURCAD", func(w http.ResponseWriter, r *http.Request) {
					_, _ = w.Write([]byte(`{"observations": [{"d": "2024-05-01"`))
				})
				return mux
			},
			err: provider.ErrParse,
		},
		{
			name:  "fetch_monthly_series_shape_changed",
			query: provider.MonthlyQuery{Symbol: label.EUR, Year: "2024", Month: "05"},
			handlerFunc: func() http.Handler {
				mux := http.NewServeMux()
				mux.HandleFunc("/valet/observations/FXMEURCAD", func(w http.ResponseWriter, r *http.Request) {
					_, _ = w.Write([]byte(`{"observations": [{"d": "2024-05-01", "FXMEURCAD": "1.4700"}]}`))
				})
				return mux
			},
			err: provider.ErrParse,
		},
		{
			name:  "fetch_monthly_request_timeout",
			query: provider.MonthlyQuery{Symbol: label.EUR, Year: "2024", Month: "05"},
			handlerFunc: func() http.Handler {
				mux := http.NewServeMux()
				mux.HandleFunc("/valet/observations/FXMEURCAD", func(w http.ResponseWriter, r *http.Request) {
					_, _ = w.Write([]byte(usdDocument))
				})
				return mux
			},
			requestTimeout: time.Nanosecond,
			err:            context.DeadlineExceeded,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			source := newTestSource(t, tc.handlerFunc())

			timeout := 10 * time.Second
			if tc.requestTimeout != 0 {
				timeout = tc.requestTimeout
			}

			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()

			rate, err := source.FetchMonthly(ctx, tc.query)
			if tc.err != nil {
				if !errors.Is(err, tc.err) {
					t.Fatalf("expected error %v, got %v", tc.err, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("fetch monthly: %v", err)
			}

			if diff := cmp.Diff(tc.expected, rate.String()); diff != "" {
				t.Errorf("mismatch (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestSource_FetchErrorsAreFetchErrors(t *testing.T) {
	t.Parallel()

	source := newTestSource(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))

	_, err := source.FetchMonthly(context.Background(), provider.MonthlyQuery{Symbol: label.EUR, Year: "2024", Month: "05"})
	if !errors.Is(err, provider.ErrFetch) || !errors.Is(err, httputil.ErrStatusCode) {
		t.Errorf("expected ErrFetch wrapping ErrStatusCode, got %v", err)
	}

	if errors.Is(err, provider.ErrNotFound) {
		t.Errorf("fetch failure must be distinguishable from not found")
	}
}

func TestSource_FetchLabels(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/valet/groups/FX_RATES_MONTHLY", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(groupDocumentBody))
	})

	labels, err := newTestSource(t, mux).FetchLabels(context.Background())
	if err != nil {
		t.Fatalf("fetch labels: %v", err)
	}

	if diff := cmp.Diff([]string{"EUR", "USD"}, labels); diff != "" {
		t.Errorf("mismatch (-want, +got):\n%s", diff)
	}
}

func TestSource_FetchLabelsFailure(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/valet/groups/FX_RATES_MONTHLY", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	if _, err := newTestSource(t, mux).FetchLabels(context.Background()); !errors.Is(err, provider.ErrFetch) {
		t.Errorf("expected ErrFetch, got %v", err)
	}
}
