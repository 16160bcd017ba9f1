// Package label holds the currency vocabulary shared by sources, sinks and the updater.
package label

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/currency"
)

var ErrUnknownSymbol = errors.New("currency symbol is not an ISO 4217 code")

// Symbol is an ISO 4217 currency code, e.g. EUR
type Symbol string

func (s Symbol) String() string {
	return string(s)
}

const (
	AUD Symbol = "AUD"
	BRL Symbol = "BRL"
	CAD Symbol = "CAD"
	CHF Symbol = "CHF"
	CNY Symbol = "CNY"
	EUR Symbol = "EUR"
	GBP Symbol = "GBP"
	HKD Symbol = "HKD"
	IDR Symbol = "IDR"
	INR Symbol = "INR"
	JPY Symbol = "JPY"
	KRW Symbol = "KRW"
	MXN Symbol = "MXN"
	MYR Symbol = "MYR"
	NOK Symbol = "NOK"
	NZD Symbol = "NZD"
	PEN Symbol = "PEN"
	RUB Symbol = "RUB"
	SAR Symbol = "SAR"
	SEK Symbol = "SEK"
	SGD Symbol = "SGD"
	THB Symbol = "THB"
	TRY Symbol = "TRY"
	TWD Symbol = "TWD"
	USD Symbol = "USD"
	VND Symbol = "VND"
	ZAR Symbol = "ZAR"
)

// Currency describes a symbol with a human-readable name
type Currency struct {
	Symbol Symbol
	Name   string
}

// Currencies contains the currencies published in the Bank of Canada monthly FX series
var Currencies = map[Symbol]Currency{
	AUD: {Symbol: AUD, Name: "Australian dollar"},
	BRL: {Symbol: BRL, Name: "Brazilian real"},
	CAD: {Symbol: CAD, Name: "Canadian dollar"},
	CHF: {Symbol: CHF, Name: "Swiss franc"},
	CNY: {Symbol: CNY, Name: "Chinese renminbi"},
	EUR: {Symbol: EUR, Name: "Euro"},
	GBP: {Symbol: GBP, Name: "UK pound sterling"},
	HKD: {Symbol: HKD, Name: "Hong Kong dollar"},
	IDR: {Symbol: IDR, Name: "Indonesian rupiah"},
	INR: {Symbol: INR, Name: "Indian rupee"},
	JPY: {Symbol: JPY, Name: "Japanese yen"},
	KRW: {Symbol: KRW, Name: "South Korean won"},
	MXN: {Symbol: MXN, Name: "Mexican peso"},
	MYR: {Symbol: MYR, Name: "Malaysian ringgit"},
	NOK: {Symbol: NOK, Name: "Norwegian krone"},
	NZD: {Symbol: NZD, Name: "New Zealand dollar"},
	PEN: {Symbol: PEN, Name: "Peruvian new sol"},
	RUB: {Symbol: RUB, Name: "Russian ruble"},
	SAR: {Symbol: SAR, Name: "Saudi riyal"},
	SEK: {Symbol: SEK, Name: "Swedish krona"},
	SGD: {Symbol: SGD, Name: "Singapore dollar"},
	THB: {Symbol: THB, Name: "Thai baht"},
	TRY: {Symbol: TRY, Name: "Turkish lira"},
	TWD: {Symbol: TWD, Name: "Taiwanese dollar"},
	USD: {Symbol: USD, Name: "US dollar"},
	VND: {Symbol: VND, Name: "Vietnamese dong"},
	ZAR: {Symbol: ZAR, Name: "South African rand"},
}

// Parse normalizes s and checks it against the ISO 4217 registry. Codes outside of Currencies are
// accepted as long as they are valid ISO codes, the host decides which currencies are active
func Parse(s string) (Symbol, error) {
	code := strings.ToUpper(strings.TrimSpace(s))
	unit, err := currency.ParseISO(code)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnknownSymbol, s)
	}

	return Symbol(unit.String()), nil
}

// ParseList parses every code in list, failing on the first invalid one
func ParseList(list []string) ([]Symbol, error) {
	symbols := make([]Symbol, 0, len(list))
	for _, s := range list {
		if strings.TrimSpace(s) == "" {
			continue
		}

		sym, err := Parse(s)
		if err != nil {
			return nil, err
		}

		symbols = append(symbols, sym)
	}

	return symbols, nil
}
