package holdings

import (
	"fmt"
	"slices"

	"github.com/shopspring/decimal"
)

// Totals are the portfolio-level figures of a set of holdings in one currency.
type Totals struct {
	Currency string
	// Quantity is the raw sum of units across holdings, whatever the instrument.
	Quantity Quantity

	TotalPurchase Money
	CurrentValue  Money
	Dividend      Money
	TotalProfit   Money
	DailyProfit   Money

	// Ratios of the summed amounts, never the average of per-holding ratios.
	DividendYield  Percent
	TotalProfitPct Percent
	DailyProfitPct Percent
}

func newTotals(currency string) Totals {
	zero := M(0, currency)
	return Totals{
		Currency:      currency,
		Quantity:      Q(0),
		TotalPurchase: zero,
		CurrentValue:  zero,
		Dividend:      zero,
		TotalProfit:   zero,
		DailyProfit:   zero,
	}
}

// add folds one holding, whose amounts are already expressed in t.Currency.
func (t *Totals) add(q Quantity, purchase, current, dividend, totalProfit, dailyProfit Money) {
	t.Quantity = t.Quantity.Add(q)
	t.TotalPurchase = t.TotalPurchase.Add(purchase)
	t.CurrentValue = t.CurrentValue.Add(current)
	t.Dividend = t.Dividend.Add(dividend)
	t.TotalProfit = t.TotalProfit.Add(totalProfit)
	t.DailyProfit = t.DailyProfit.Add(dailyProfit)
}

// ratios computes the percentages from the summed amounts.
func (t *Totals) ratios() {
	t.DividendYield = t.Dividend.PercentOf(t.TotalPurchase)
	t.TotalProfitPct = t.TotalProfit.PercentOf(t.TotalPurchase)
	t.DailyProfitPct = t.DailyProfit.PercentOf(t.TotalPurchase)
}

// RowError reports a holding excluded from a computation.
type RowError struct {
	ID  string
	Err error
}

func (e RowError) Error() string { return fmt.Sprintf("holding %q: %v", e.ID, e.Err) }
func (e RowError) Unwrap() error { return e.Err }

// Aggregate holds the totals of a set of holdings in both display modes.
type Aggregate struct {
	Target string
	// Unified totals are always computable.
	Unified Totals
	// Native totals are not representable when holdings use several currencies.
	Native Maybe[Totals]
	// Currencies lists the distinct purchase currencies, sorted.
	Currencies []string
	// Rejected lists the holdings excluded from both totals.
	Rejected []RowError
}

// Totals returns the totals displayed in mode.
func (a Aggregate) Totals(mode DisplayMode) Maybe[Totals] {
	if mode == Native {
		return a.Native
	}
	return Some(a.Unified)
}

// Mixed reports whether the holdings span more than one currency.
func (a Aggregate) Mixed() bool { return len(a.Currencies) > 1 }

// Aggregate folds holdings into their portfolio totals. The result does not
// depend on the order of holdings.
//
// A holding with an unknown currency is excluded from both totals and reported
// in Rejected. An unknown target currency fails the whole call.
func (e *Engine) Aggregate(list []Holding, target string) (Aggregate, error) {
	if !e.rates.Has(target) {
		return Aggregate{}, fmt.Errorf("display currency: %w %q", ErrUnknownCurrency, target)
	}

	agg := Aggregate{Target: target, Unified: newTotals(target)}
	accepted := make([]Holding, 0, len(list))
	for _, h := range list {
		if !e.rates.Has(h.Currency) {
			agg.Rejected = append(agg.Rejected, RowError{ID: h.ID, Err: fmt.Errorf("%w %q", ErrUnknownCurrency, h.Currency)})
			continue
		}
		accepted = append(accepted, h)
	}

	for _, h := range accepted {
		conv := func(v decimal.Decimal) Money {
			// both currencies were checked above.
			c, _ := e.rates.Convert(v, h.Currency, target)
			return M(c, target)
		}
		agg.Unified.add(h.Quantity,
			conv(h.TotalPurchase),
			conv(h.CurrentValue),
			conv(h.Dividend),
			conv(h.TotalProfit),
			conv(h.DailyProfit),
		)
	}
	agg.Unified.ratios()

	agg.Currencies = Currencies(accepted)
	slices.Sort(agg.Currencies)

	switch len(agg.Currencies) {
	case 0:
		agg.Native = Some(newTotals(""))
	case 1:
		native := newTotals(agg.Currencies[0])
		for _, h := range accepted {
			native.add(h.Quantity,
				h.TotalPurchaseMoney(),
				h.CurrentValueMoney(),
				h.DividendMoney(),
				h.TotalProfitMoney(),
				h.DailyProfitMoney(),
			)
		}
		native.ratios()
		agg.Native = Some(native)
	default:
		agg.Native = NotRepresentable[Totals]()
	}
	return agg, nil
}
