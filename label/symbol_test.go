package label

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		source   string
		expected Symbol
		err      error
	}{
		{
			name:     "test_parse_upper",
			source:   "EUR",
			expected: EUR,
		},
		{
			name:     "test_parse_lower_spaces",
			source:   "  jpy ",
			expected: JPY,
		},
		{
			name:     "test_parse_not_listed_iso",
			source:   "DKK",
			expected: Symbol("DKK"),
		},
		{
			name:   "test_parse_unknown",
			source: "ZZZ",
			err:    ErrUnknownSymbol,
		},
		{
			name:   "test_parse_empty",
			source: "",
			err:    ErrUnknownSymbol,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := Parse(tc.source)
			if tc.err != nil {
				if !errors.Is(err, tc.err) {
					t.Fatalf("expected error %v, got %v", tc.err, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("parse: %v", err)
			}

			if diff := cmp.Diff(tc.expected, got); diff != "" {
				t.Errorf("mismatch (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestParseList(t *testing.T) {
	t.Parallel()

	got, err := ParseList([]string{"usd", "", "EUR", " cad"})
	if err != nil {
		t.Fatalf("parse list: %v", err)
	}

	if diff := cmp.Diff([]Symbol{USD, EUR, CAD}, got); diff != "" {
		t.Errorf("mismatch (-want, +got):\n%s", diff)
	}

	if _, err := ParseList([]string{"USD", "nope"}); !errors.Is(err, ErrUnknownSymbol) {
		t.Errorf("expected ErrUnknownSymbol, got %v", err)
	}
}

func TestCurrencies(t *testing.T) {
	t.Parallel()

	for sym, ccy := range Currencies {
		if sym != ccy.Symbol {
			t.Errorf("currency %s registered under %s", ccy.Symbol, sym)
		}

		if _, err := Parse(sym.String()); err != nil {
			t.Errorf("registered currency %s is not ISO: %v", sym, err)
		}
	}
}
