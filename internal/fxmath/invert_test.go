package fxmath

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
)

func TestInvertAndRound(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		rate     string
		expected string
		err      error
	}{
		{
			name:     "test_invert_usd_monthly",
			rate:     "1.3500",
			expected: "0.7407",
		},
		{
			name:     "test_invert_below_one",
			rate:     "0.7",
			expected: "1.4286",
		},
		{
			name:     "test_invert_eur_monthly",
			rate:     "1.5000",
			expected: "0.6667",
		},
		{
			name:     "test_invert_exact_quotient",
			rate:     "1.6",
			expected: "0.6250",
		},
		{
			name:     "test_invert_exact_half_at_fifth_digit",
			rate:     "32",
			expected: "0.0313",
		},
		{
			name:     "test_invert_small_rate",
			rate:     "0.000085",
			expected: "11764.7059",
		},
		{
			name: "test_invert_zero",
			rate: "0",
			err:  ErrDivision,
		},
		{
			name: "test_invert_negative",
			rate: "-1.35",
			err:  ErrDivision,
		},
		{
			name: "test_invert_underflow",
			rate: "50000",
			err:  ErrUnderflow,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := InvertAndRound(decimal.RequireFromString(tc.rate))
			if tc.err != nil {
				if !errors.Is(err, tc.err) {
					t.Fatalf("expected error %v, got %v", tc.err, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("invert and round: %v", err)
			}

			if diff := cmp.Diff(tc.expected, got.StringFixed(Places)); diff != "" {
				t.Errorf("mismatch (-want, +got):\n%s", diff)
			}
		})
	}
}
