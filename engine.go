package holdings

// Engine computes displayed rows and totals for a set of holdings.
//
// It holds one snapshot of the rate table and the symbols, and no other state:
// an Engine is safe for concurrent use. To refresh rates, build a new Engine.
type Engine struct {
	rates   *Rates
	symbols Symbols
}

// NewEngine returns an engine converting with rates and formatting with symbols.
func NewEngine(rates *Rates, symbols Symbols) *Engine {
	return &Engine{rates: rates, symbols: symbols}
}

func (e *Engine) Rates() *Rates     { return e.rates }
func (e *Engine) Symbols() Symbols { return e.symbols }

// Convert converts m into the currency to.
func (e *Engine) Convert(m Money, to string) (Money, error) { return e.rates.ConvertMoney(m, to) }

// Format renders m with its currency symbol.
func (e *Engine) Format(m Money) string { return e.symbols.FormatMoney(m) }
