package holdings

import (
	"math"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Symbols maps a currency code to its display symbol.
//
// A nil Symbols is valid and formats every amount without symbol.
type Symbols map[string]string

// DefaultSymbols returns the symbols of the currencies supported out of the box.
func DefaultSymbols() Symbols {
	return Symbols{
		"USD": "$",
		"KRW": "₩",
		"EUR": "€",
		"GBP": "£",
		"JPY": "¥",
		"CAD": "C$",
		"AUD": "A$",
		"CNY": "¥",
		"CHF": "CHF",
		"INR": "₹",
		"SGD": "S$",
	}
}

// Symbol returns the symbol for code, or "" if it is unknown.
func (s Symbols) Symbol(code string) string { return s[code] }

// isoGrapheme returns the ISO 4217 grapheme known for code, or "".
func isoGrapheme(code string) string {
	if c := money.GetCurrency(code); c != nil {
		return c.Grapheme
	}
	return ""
}

// maxMinorUnits is the largest amount, in cents, go-money can format.
var maxMinorUnits = decimal.NewFromInt(math.MaxInt64)

// Format renders amount with the symbol of code, two decimals and thousands
// separators: "$1,234.50" or "-€0.10".
//
// An unknown code is rendered without symbol. Format never fails.
func (s Symbols) Format(amount decimal.Decimal, code string) string {
	symbol := s.Symbol(code)
	minor := amount.Abs().Round(2).Shift(2)
	var txt string
	if minor.LessThanOrEqual(maxMinorUnits) {
		txt = money.NewFormatter(2, ".", ",", symbol, "$1").Format(minor.IntPart())
	} else {
		// go-money counts minor units in an int64.
		txt = symbol + groupThousands(amount.Abs().StringFixed(2))
	}
	if amount.IsNegative() {
		return "-" + txt
	}
	return txt
}

// groupThousands inserts "," between the thousands of a fixed point number
// without sign: "1234567.80" becomes "1,234,567.80".
func groupThousands(fixed string) string {
	digits, fraction, _ := strings.Cut(fixed, ".")
	var b strings.Builder
	for i, c := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	b.WriteString(".")
	b.WriteString(fraction)
	return b.String()
}

// Signed is like Format, with an explicit "+" for amounts greater or equal to zero.
// It is meant for profit figures only.
func (s Symbols) Signed(amount decimal.Decimal, code string) string {
	if amount.IsNegative() {
		return s.Format(amount, code)
	}
	return "+" + s.Format(amount, code)
}

// FormatMoney renders m in its own currency.
func (s Symbols) FormatMoney(m Money) string { return s.Format(m.value, m.cur) }

// SignedMoney renders m in its own currency with an explicit sign.
func (s Symbols) SignedMoney(m Money) string { return s.Signed(m.value, m.cur) }
