package holdings

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// NotApplicable is the text displayed in place of a figure that is not representable.
const NotApplicable = "---"

// Row holds the displayed figures of one holding.
//
// Monetary figures are in Currency: the holding's own currency in Native mode,
// the target currency in Unified mode. Percentages do not depend on the mode.
type Row struct {
	ID       string
	Mode     DisplayMode
	Currency string
	Quantity Quantity

	PurchasePrice       Money
	TotalPurchase       Money
	CurrentValue        Money
	CurrentValuePerUnit Maybe[Money]
	Dividend            Money
	DividendPerUnit     Maybe[Money]
	TotalProfit         Money
	DailyProfit         Money

	DividendYield  Percent
	TotalProfitPct Percent
	DailyProfitPct Percent

	Text RowText
}

// RowText holds the formatted figures of a Row.
type RowText struct {
	Quantity            string
	PurchasePrice       string
	TotalPurchase       string
	CurrentValue        string
	CurrentValuePerUnit string
	Dividend            string
	DividendPerUnit     string
	DividendYield       string
	TotalProfit         string // signed
	TotalProfitPct      string
	DailyProfit         string // signed
	DailyProfitPct      string
}

// DisplayRow computes the figures of h displayed in mode. target is the
// display currency of the Unified mode; it is ignored in Native mode.
//
// An unknown currency returns an error wrapping ErrUnknownCurrency and a zero Row.
// A zero quantity returns the complete row, with per-unit figures not
// representable, together with an error wrapping ErrInvalidQuantity.
func (e *Engine) DisplayRow(h Holding, mode DisplayMode, target string) (Row, error) {
	if !e.rates.Has(h.Currency) {
		return Row{}, fmt.Errorf("holding %q: %w %q", h.ID, ErrUnknownCurrency, h.Currency)
	}

	display := h.Currency
	convert := func(v decimal.Decimal) (Money, error) { return h.money(v), nil }
	if mode == Unified {
		if !e.rates.Has(target) {
			return Row{}, fmt.Errorf("display currency: %w %q", ErrUnknownCurrency, target)
		}
		display = target
		convert = func(v decimal.Decimal) (Money, error) {
			return e.rates.ConvertMoney(h.money(v), target)
		}
	}

	r := Row{
		ID:       h.ID,
		Mode:     mode,
		Currency: display,
		Quantity: h.Quantity,
	}
	figures := []struct {
		dst *Money
		src decimal.Decimal
	}{
		{&r.PurchasePrice, h.PurchasePrice},
		{&r.TotalPurchase, h.TotalPurchase},
		{&r.CurrentValue, h.CurrentValue},
		{&r.Dividend, h.Dividend},
		{&r.TotalProfit, h.TotalProfit},
		{&r.DailyProfit, h.DailyProfit},
	}
	for _, f := range figures {
		m, err := convert(f.src)
		if err != nil {
			return Row{}, fmt.Errorf("holding %q: %w", h.ID, err)
		}
		*f.dst = m
	}

	// Ratios are computed on native amounts: a conversion scales both terms alike.
	purchase := h.TotalPurchaseMoney()
	r.DividendYield = h.DividendMoney().PercentOf(purchase)
	r.TotalProfitPct = h.TotalProfitMoney().PercentOf(purchase)
	r.DailyProfitPct = h.DailyProfitMoney().PercentOf(purchase)

	var err error
	if h.Quantity.IsZero() {
		r.CurrentValuePerUnit = NotRepresentable[Money]()
		r.DividendPerUnit = NotRepresentable[Money]()
		err = fmt.Errorf("holding %q: %w: zero units", h.ID, ErrInvalidQuantity)
	} else {
		r.CurrentValuePerUnit = Some(r.CurrentValue.Div(h.Quantity))
		r.DividendPerUnit = Some(r.Dividend.Div(h.Quantity))
		if h.Quantity.IsNegative() {
			err = fmt.Errorf("holding %q: %w: must be positive, got %s", h.ID, ErrInvalidQuantity, h.Quantity)
		}
	}

	r.Text = e.rowText(r)
	return r, err
}

func (e *Engine) rowText(r Row) RowText {
	s := e.symbols
	perUnit := func(m Maybe[Money]) string {
		if v, ok := m.Get(); ok {
			return s.FormatMoney(v)
		}
		return NotApplicable
	}
	return RowText{
		Quantity:            r.Quantity.String(),
		PurchasePrice:       s.FormatMoney(r.PurchasePrice),
		TotalPurchase:       s.FormatMoney(r.TotalPurchase),
		CurrentValue:        s.FormatMoney(r.CurrentValue),
		CurrentValuePerUnit: perUnit(r.CurrentValuePerUnit),
		Dividend:            s.FormatMoney(r.Dividend),
		DividendPerUnit:     perUnit(r.DividendPerUnit),
		DividendYield:       r.DividendYield.String(),
		TotalProfit:         s.SignedMoney(r.TotalProfit),
		TotalProfitPct:      r.TotalProfitPct.String(),
		DailyProfit:         s.SignedMoney(r.DailyProfit),
		DailyProfitPct:      r.DailyProfitPct.String(),
	}
}
