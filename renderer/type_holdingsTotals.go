package renderer

import "github.com/etnz/holdings"

// HoldingsTotals holds the portfolio totals in both display modes.
type HoldingsTotals struct {
	Target     string        `json:"target"`
	Currencies []string      `json:"currencies"`
	Unified    HoldingsTotal `json:"unified"`
	// Native is nil when holdings do not share a single currency.
	Native *HoldingsTotal `json:"native,omitempty"`
	// Rejected lists the holdings excluded from the totals.
	Rejected []string `json:"rejected,omitempty"`
}

// NewHoldingsTotals creates a new HoldingsTotals from a computed table. The
// table's own mode does not matter.
func NewHoldingsTotals(t *holdings.Table) *HoldingsTotals {
	ht := &HoldingsTotals{
		Target:     t.Target,
		Currencies: append([]string{}, t.Aggregate.Currencies...),
		Unified:    newHoldingsTotal(t.FooterOf(holdings.Unified)),
	}
	if t.Aggregate.Native.OK() && len(ht.Currencies) == 1 {
		native := newHoldingsTotal(t.FooterOf(holdings.Native))
		ht.Native = &native
	}
	for _, r := range t.Aggregate.Rejected {
		ht.Rejected = append(ht.Rejected, r.Error())
	}
	return ht
}

func newHoldingsTotal(f holdings.Footer) HoldingsTotal {
	return HoldingsTotal{
		Currency:       f.Currency,
		Quantity:       f.Quantity,
		TotalPurchase:  f.TotalPurchase,
		CurrentValue:   f.CurrentValue,
		Dividend:       f.Dividend,
		DividendYield:  f.DividendYield,
		TotalProfit:    f.TotalProfit,
		TotalProfitPct: f.TotalProfitPct,
		DailyProfit:    f.DailyProfit,
		DailyProfitPct: f.DailyProfitPct,
	}
}
