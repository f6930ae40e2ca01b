package holdings

import (
	"errors"
	"fmt"
	"iter"
	"maps"
	"regexp"
	"slices"

	"github.com/shopspring/decimal"
)

var (
	// ErrUnknownCurrency is returned when a currency code is not in the rate table.
	ErrUnknownCurrency = errors.New("unknown currency")
	// ErrInvalidRates is returned when a rate table breaks its invariants.
	ErrInvalidRates = errors.New("invalid rate table")
)

// currencyCodeRegex checks for the format: 3 uppercase letters.
var currencyCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// Rates is an immutable table of exchange rates, all expressed against a single
// base currency: a rate is the amount of that currency for one unit of the base.
//
// The base currency is implicit, it is the only one with a rate of 1.
// A Rates is safe for concurrent use; refreshing rates means building a new table.
type Rates struct {
	rates map[string]decimal.Decimal
	base  string
}

// NewRates validates and copies rates into a new table.
func NewRates(rates map[string]decimal.Decimal) (*Rates, error) {
	r := &Rates{rates: make(map[string]decimal.Decimal, len(rates))}
	var bases []string
	for code, rate := range rates {
		if !currencyCodeRegex.MatchString(code) {
			return nil, fmt.Errorf("%w: invalid currency code %q: must be 3 uppercase letters", ErrInvalidRates, code)
		}
		if !rate.IsPositive() {
			return nil, fmt.Errorf("%w: rate for %s must be strictly positive, got %s", ErrInvalidRates, code, rate)
		}
		if rate.Equal(decimal.NewFromInt(1)) {
			bases = append(bases, code)
		}
		r.rates[code] = rate
	}
	switch len(bases) {
	case 0:
		return nil, fmt.Errorf("%w: no base currency (a currency with rate 1)", ErrInvalidRates)
	case 1:
		r.base = bases[0]
	default:
		slices.Sort(bases)
		return nil, fmt.Errorf("%w: several currencies with rate 1: %v", ErrInvalidRates, bases)
	}
	return r, nil
}

// Base returns the base currency code.
func (r *Rates) Base() string { return r.base }

// Has reports whether code is in the table.
func (r *Rates) Has(code string) bool {
	_, ok := r.rates[code]
	return ok
}

// Rate returns the rate of code against the base currency.
func (r *Rates) Rate(code string) (decimal.Decimal, error) {
	rate, ok := r.rates[code]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w %q", ErrUnknownCurrency, code)
	}
	return rate, nil
}

// Currencies iterates over the currency codes in alphabetical order.
func (r *Rates) Currencies() iter.Seq[string] {
	return slices.Values(slices.Sorted(maps.Keys(r.rates)))
}

// Convert converts amount from one currency into another, through the base currency.
//
// Converting into the same currency returns amount unchanged.
func (r *Rates) Convert(amount decimal.Decimal, from, to string) (decimal.Decimal, error) {
	fromRate, err := r.Rate(from)
	if err != nil {
		return decimal.Zero, err
	}
	toRate, err := r.Rate(to)
	if err != nil {
		return decimal.Zero, err
	}
	if from == to {
		return amount, nil
	}
	base := amount.Div(fromRate)
	return base.Mul(toRate), nil
}

// ConvertMoney converts m into the currency to.
func (r *Rates) ConvertMoney(m Money, to string) (Money, error) {
	v, err := r.Convert(m.value, m.cur, to)
	if err != nil {
		return Money{}, err
	}
	return Money{value: v, cur: to}, nil
}
