package holdings

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Money represents a monetary value.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

func M[T number](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// String returns a plain, symbol-free representation of the money value, for
// logs and test messages. Use Symbols.Format for display.
func (m Money) String() string {
	if m.cur == "" {
		return m.value.StringFixed(2)
	}
	return m.value.StringFixed(2) + " " + m.cur
}

func (m Money) Currency() string         { return m.cur }
func (m Money) Decimal() decimal.Decimal { return m.value }
func (m Money) Equal(n Money) bool       { return m.value.Equal(n.value) && m.cur == n.cur }

// Div divides m by a quantity. The caller guards against a zero quantity.
func (m Money) Div(n Quantity) Money { return Money{value: m.value.Div(n.value), cur: m.cur} }

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }

// PercentOf returns m as a percentage of base. A zero base yields 0.
func (m Money) PercentOf(base Money) Percent {
	_ = cur(m, base) // panics on a currency mismatch
	if base.value.IsZero() {
		return 0
	}
	return Percent(m.value.Div(base.value).Mul(hundred).InexactFloat64())
}

// makes the "" currency totally weak.
func cur(A, B Money) string {
	if A.cur == "" {
		return B.cur
	}
	if B.cur == "" {
		return A.cur
	}
	if A.cur != B.cur {
		panic("currency mismatch " + A.cur + "!=" + B.cur)
	}
	return A.cur
}
