package holdings

import (
	"testing"

	"github.com/shopspring/decimal"
)

// EUR is a helper for test to create euro money from const
func EUR(v float64) Money { return M(v, "EUR") }

// USD is a helper for test to create usd money from const
func USD(v float64) Money { return M(v, "USD") }

// D is a helper for test to create a decimal from const
func D(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

// testRates returns the built-in rate table.
func testRates(t *testing.T) *Rates {
	t.Helper()
	r, err := DefaultConfig().Rates()
	if err != nil {
		t.Fatalf("DefaultConfig().Rates() error = %v", err)
	}
	return r
}

func testEngine(t *testing.T) *Engine {
	t.Helper()
	return NewEngine(testRates(t), DefaultSymbols())
}

// apple and tesla are sample holdings in USD and EUR.
func apple() Holding {
	return Holding{
		ID: "1", Name: "Apple Inc", Symbol: "AAPL",
		Quantity: Q(10), Currency: "USD",
		PurchasePrice: D(243.04), TotalPurchase: D(2430.40), CurrentValue: D(2428.40),
		Dividend: D(10), TotalProfit: D(-2), DailyProfit: D(-2),
	}
}

func tesla() Holding {
	return Holding{
		ID: "2", Name: "Tesla, Inc", Symbol: "TSLA",
		Quantity: Q(10), Currency: "EUR",
		PurchasePrice: D(350), TotalPurchase: D(3500), CurrentValue: D(3892.20),
		Dividend: D(0), TotalProfit: D(392.2), DailyProfit: D(197.3),
	}
}

// near reports whether a and b differ by less than tol.
func near(a, b decimal.Decimal, tol float64) bool {
	return a.Sub(b).Abs().LessThan(decimal.NewFromFloat(tol))
}
