package boc

import (
	"fmt"

	"github.com/robotomize/valetfx/label"
	"github.com/robotomize/valetfx/provider"
	"github.com/shopspring/decimal"
)

const (
	seriesPrefix = "FXM"
	seriesSuffix = "CAD"
)

const (
	// maxMagnitude bounds the decimal exponent of a published rate, 1e-12 < |v| < 1e12
	maxMagnitude = 12
	maxDigits    = 32
)

// SeriesKey returns the monthly series name of a symbol quoted in CAD, e.g. FXMEURCAD
func SeriesKey(sym label.Symbol) string {
	return seriesPrefix + sym.String() + seriesSuffix
}

// inMonth reports whether the YYYY-MM-DD date of obs falls in year-month
func inMonth(obs Observation, year, month string) (bool, error) {
	if len(obs.Date) < 7 {
		return false, fmt.Errorf("%w: observation date %q", provider.ErrParse, obs.Date)
	}

	return obs.Date[0:4] == year && obs.Date[5:7] == month, nil
}

// ObservationsForMonth returns every observation dated in year-month, in document order
func ObservationsForMonth(doc Document, year, month string) ([]Observation, error) {
	list := make([]Observation, 0)
	for _, obs := range doc.Observations {
		ok, err := inMonth(obs, year, month)
		if err != nil {
			return nil, err
		}

		if ok {
			list = append(list, obs)
		}
	}

	return list, nil
}

// ExtractRate finds the observation dated in the query month and reads its series value.
// The first observation of the month wins and the scan stops there, even when it lacks the series.
// ok is false when the month or the value is absent
func ExtractRate(doc Document, q provider.MonthlyQuery) (rate decimal.Decimal, ok bool, err error) {
	key := SeriesKey(q.Symbol)

	for _, obs := range doc.Observations {
		match, err := inMonth(obs, q.Year, q.Month)
		if err != nil {
			return decimal.Zero, false, err
		}

		if !match {
			continue
		}

		text, found, err := obs.Value(key)
		if err != nil || !found {
			return decimal.Zero, false, err
		}

		v, err := parseRate(text)
		if err != nil {
			return decimal.Zero, false, fmt.Errorf("%s: %w", key, err)
		}

		return v, true, nil
	}

	return decimal.Zero, false, nil
}

func parseRate(text string) (decimal.Decimal, error) {
	v, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: value %q: %w", provider.ErrParse, text, err)
	}

	if v.IsZero() {
		return v, nil
	}

	magnitude := int64(v.Exponent()) + int64(v.NumDigits())
	if v.NumDigits() > maxDigits || magnitude < -maxMagnitude || magnitude > maxMagnitude {
		return decimal.Zero, fmt.Errorf("%w: value %q is out of range", provider.ErrParse, text)
	}

	return v, nil
}
