package holdings

// TableRow is one line of a Table. Err is set when the holding could not be
// fully displayed; Row is then partial or zero.
type TableRow struct {
	Holding Holding
	Row     Row
	Err     error
}

// Table is the holdings table for one display mode: a row per holding, in
// input order, and the portfolio totals.
type Table struct {
	Mode      DisplayMode
	Target    string
	Rows      []TableRow
	Aggregate Aggregate

	symbols Symbols
}

// Table computes the holdings table displayed in mode. A holding that cannot be
// displayed is kept in its row with its error, the rest of the table is computed.
// An unknown target currency fails the whole call.
func (e *Engine) Table(list []Holding, mode DisplayMode, target string) (*Table, error) {
	agg, err := e.Aggregate(list, target)
	if err != nil {
		return nil, err
	}
	t := &Table{
		Mode:      mode,
		Target:    target,
		Rows:      make([]TableRow, 0, len(list)),
		Aggregate: agg,
		symbols:   e.symbols,
	}
	for _, h := range list {
		row, err := e.DisplayRow(h, mode, target)
		t.Rows = append(t.Rows, TableRow{Holding: h, Row: row, Err: err})
	}
	return t, nil
}

// Errors returns the row errors, in row order.
func (t *Table) Errors() []error {
	var errs []error
	for _, r := range t.Rows {
		if r.Err != nil {
			errs = append(errs, r.Err)
		}
	}
	return errs
}

// Footer holds the formatted totals line of a Table.
type Footer struct {
	Currency       string // "" when not representable
	Quantity       string
	TotalPurchase  string
	CurrentValue   string
	Dividend       string
	DividendYield  string
	TotalProfit    string
	TotalProfitPct string
	DailyProfit    string
	DailyProfitPct string
}

// Footer formats the totals of the table's mode.
func (t *Table) Footer() Footer { return t.FooterOf(t.Mode) }

// FooterOf formats the totals displayed in mode. Monetary totals that are not
// representable are rendered as NotApplicable.
//
// Yield and profit percentages come from the unified totals in every mode: they
// are ratios and do not depend on the currency.
func (t *Table) FooterOf(mode DisplayMode) Footer {
	u := t.Aggregate.Unified
	f := Footer{
		Quantity:       u.Quantity.String(),
		DividendYield:  u.DividendYield.String(),
		TotalProfitPct: u.TotalProfitPct.String(),
		DailyProfitPct: u.DailyProfitPct.String(),
	}
	totals, ok := t.Aggregate.Totals(mode).Get()
	if !ok {
		f.TotalPurchase = NotApplicable
		f.CurrentValue = NotApplicable
		f.Dividend = NotApplicable
		f.TotalProfit = NotApplicable
		f.DailyProfit = NotApplicable
		return f
	}
	s := t.symbols
	f.Currency = totals.Currency
	f.TotalPurchase = s.FormatMoney(totals.TotalPurchase)
	f.CurrentValue = s.FormatMoney(totals.CurrentValue)
	f.Dividend = s.FormatMoney(totals.Dividend)
	f.TotalProfit = s.SignedMoney(totals.TotalProfit)
	f.DailyProfit = s.SignedMoney(totals.DailyProfit)
	return f
}
