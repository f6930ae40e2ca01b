package renderer

import (
	"strings"

	"github.com/etnz/holdings"
)

// HoldingsTable is the holdings table in json.
// Every figure is already formatted, so that templates only lay it out.
type HoldingsTable struct {
	// Mode is "native" or "unified".
	Mode string `json:"mode"`
	// Target is the display currency of the unified mode.
	Target string `json:"target"`
	// Currencies lists the distinct currencies of the displayed holdings.
	Currencies []string `json:"currencies"`
	// Mixed is true when holdings use more than one currency.
	Mixed bool `json:"mixed,omitempty"`

	Rows  []HoldingsRow `json:"rows"`
	Total HoldingsTotal `json:"total"`
	// Errors lists the holdings that could not be fully displayed.
	Errors []string `json:"errors,omitempty"`
}

// HoldingsRow is one displayed holding.
type HoldingsRow struct {
	ID                  string `json:"id"`
	Asset               string `json:"asset"`
	Currency            string `json:"currency"`
	Quantity            string `json:"quantity"`
	PurchasePrice       string `json:"purchasePrice"`
	TotalPurchase       string `json:"totalPurchase"`
	CurrentValue        string `json:"currentValue"`
	CurrentValuePerUnit string `json:"currentValuePerUnit"`
	Dividend            string `json:"dividend"`
	DividendPerUnit     string `json:"dividendPerUnit"`
	DividendYield       string `json:"dividendYield"`
	TotalProfit         string `json:"totalProfit"`
	TotalProfitPct      string `json:"totalProfitPct"`
	DailyProfit         string `json:"dailyProfit"`
	DailyProfitPct      string `json:"dailyProfitPct"`
}

// HoldingsTotal is the totals line.
type HoldingsTotal struct {
	Currency       string `json:"currency,omitempty"`
	Quantity       string `json:"quantity"`
	TotalPurchase  string `json:"totalPurchase"`
	CurrentValue   string `json:"currentValue"`
	Dividend       string `json:"dividend"`
	DividendYield  string `json:"dividendYield"`
	TotalProfit    string `json:"totalProfit"`
	TotalProfitPct string `json:"totalProfitPct"`
	DailyProfit    string `json:"dailyProfit"`
	DailyProfitPct string `json:"dailyProfitPct"`
}

// NewHoldingsTable creates a new HoldingsTable from a computed table.
func NewHoldingsTable(t *holdings.Table) *HoldingsTable {
	ht := &HoldingsTable{
		Mode:       t.Mode.String(),
		Target:     t.Target,
		Currencies: append([]string{}, t.Aggregate.Currencies...),
		Mixed:      t.Aggregate.Mixed(),
		Rows:       make([]HoldingsRow, 0, len(t.Rows)),
	}

	for _, r := range t.Rows {
		ht.Rows = append(ht.Rows, newHoldingsRow(r))
	}
	for _, err := range t.Errors() {
		ht.Errors = append(ht.Errors, err.Error())
	}

	ht.Total = newHoldingsTotal(t.Footer())
	return ht
}

func newHoldingsRow(r holdings.TableRow) HoldingsRow {
	h := r.Holding
	txt := r.Row.Text
	row := HoldingsRow{
		ID:                  h.ID,
		Asset:               asset(h),
		Currency:            r.Row.Currency,
		Quantity:            txt.Quantity,
		PurchasePrice:       txt.PurchasePrice,
		TotalPurchase:       txt.TotalPurchase,
		CurrentValue:        txt.CurrentValue,
		CurrentValuePerUnit: txt.CurrentValuePerUnit,
		Dividend:            txt.Dividend,
		DividendPerUnit:     txt.DividendPerUnit,
		DividendYield:       txt.DividendYield,
		TotalProfit:         txt.TotalProfit,
		TotalProfitPct:      txt.TotalProfitPct,
		DailyProfit:         txt.DailyProfit,
		DailyProfitPct:      txt.DailyProfitPct,
	}
	if r.Err != nil && txt.TotalPurchase == "" {
		// the row could not be computed at all.
		na := holdings.NotApplicable
		row.Currency = h.Currency
		row.Quantity = h.Quantity.String()
		for _, s := range []*string{
			&row.PurchasePrice, &row.TotalPurchase,
			&row.CurrentValue, &row.CurrentValuePerUnit,
			&row.Dividend, &row.DividendPerUnit, &row.DividendYield,
			&row.TotalProfit, &row.TotalProfitPct,
			&row.DailyProfit, &row.DailyProfitPct,
		} {
			*s = na
		}
	}
	return row
}

// asset returns the label of the holding: its name and ticker.
func asset(h holdings.Holding) string {
	label := h.Name
	switch {
	case label == "" && h.Symbol == "":
		label = h.ID
	case label == "":
		label = h.Symbol
	case h.Symbol != "":
		label += " (" + h.Symbol + ")"
	}
	// a pipe would break the markdown table.
	return strings.ReplaceAll(label, "|", `\|`)
}
