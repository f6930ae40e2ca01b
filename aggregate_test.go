package holdings

import (
	"errors"
	"slices"
	"testing"
)

func TestEngine_Aggregate_MixedCurrencies(t *testing.T) {
	e := testEngine(t)
	agg, err := e.Aggregate([]Holding{apple(), tesla()}, "USD")
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}

	u := agg.Unified
	if u.Currency != "USD" {
		t.Errorf("Unified.Currency = %q, want USD", u.Currency)
	}
	checks := []struct {
		name string
		got  Money
		want float64
	}{
		{"TotalPurchase", u.TotalPurchase, 6234.747826},
		{"CurrentValue", u.CurrentValue, 6659.052174},
		{"Dividend", u.Dividend, 10},
		{"TotalProfit", u.TotalProfit, 424.304348},
		{"DailyProfit", u.DailyProfit, 212.456522},
	}
	for _, c := range checks {
		if c.got.Currency() != "USD" || !near(c.got.Decimal(), D(c.want), 1e-5) {
			t.Errorf("Unified.%s = %v, want %v USD", c.name, c.got, c.want)
		}
	}
	if !u.Quantity.Equal(Q(20)) {
		t.Errorf("Unified.Quantity = %v, want 20", u.Quantity)
	}
	if !u.DividendYield.Equal(0.160391) {
		t.Errorf("Unified.DividendYield = %v, want 0.160391", u.DividendYield)
	}
	if !u.TotalProfitPct.Equal(6.805477) {
		t.Errorf("Unified.TotalProfitPct = %v, want 6.805477", u.TotalProfitPct)
	}
	if !u.DailyProfitPct.Equal(3.407620) {
		t.Errorf("Unified.DailyProfitPct = %v, want 3.407620", u.DailyProfitPct)
	}

	if agg.Native.OK() {
		t.Errorf("Native totals should not be representable for USD and EUR holdings")
	}
	if !agg.Mixed() {
		t.Errorf("Mixed() = false, want true")
	}
	if want := []string{"EUR", "USD"}; !slices.Equal(agg.Currencies, want) {
		t.Errorf("Currencies = %v, want %v", agg.Currencies, want)
	}
	if agg.Totals(Native).OK() {
		t.Errorf("Totals(Native) should not be representable")
	}
	if tot, ok := agg.Totals(Unified).Get(); !ok || !tot.TotalPurchase.Equal(u.TotalPurchase) {
		t.Errorf("Totals(Unified) = %v, %v, want unified totals", tot, ok)
	}
}

func TestEngine_Aggregate_SingleCurrency(t *testing.T) {
	e := testEngine(t)
	second := apple()
	second.ID = "3"
	second.TotalPurchase = D(1000)
	second.CurrentValue = D(1100.55)
	second.Dividend = D(25)
	second.TotalProfit = D(100.55)
	second.DailyProfit = D(-3.1)
	list := []Holding{apple(), second}

	agg, err := e.Aggregate(list, "EUR")
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}
	native, ok := agg.Native.Get()
	if !ok {
		t.Fatalf("Native totals should be representable for a single currency")
	}
	if native.Currency != "USD" {
		t.Errorf("Native.Currency = %q, want USD", native.Currency)
	}
	checks := []struct {
		name      string
		got, want Money
	}{
		{"TotalPurchase", native.TotalPurchase, USD(3430.40)},
		{"CurrentValue", native.CurrentValue, USD(3528.95)},
		{"Dividend", native.Dividend, USD(35)},
		{"TotalProfit", native.TotalProfit, USD(98.55)},
		{"DailyProfit", native.DailyProfit, USD(-5.1)},
	}
	for _, c := range checks {
		if !c.got.Equal(c.want) {
			t.Errorf("Native.%s = %v, want %v", c.name, c.got, c.want)
		}
	}
	if !native.DividendYield.Equal(1.020289) {
		t.Errorf("Native.DividendYield = %v, want 1.020289", native.DividendYield)
	}
	// ratios do not depend on the currency.
	if !native.DividendYield.Equal(agg.Unified.DividendYield) {
		t.Errorf("Native.DividendYield = %v, Unified.DividendYield = %v", native.DividendYield, agg.Unified.DividendYield)
	}
	if agg.Mixed() {
		t.Errorf("Mixed() = true, want false")
	}
}

func TestEngine_Aggregate_YieldFromSums(t *testing.T) {
	e := testEngine(t)
	small := Holding{ID: "small", Quantity: Q(1), Currency: "USD", TotalPurchase: D(1000), Dividend: D(100)}
	large := Holding{ID: "large", Quantity: Q(1), Currency: "EUR", TotalPurchase: D(8280), Dividend: D(82.8)}
	// small yields 10%, large yields 1%: their mean is 5.5%.
	// In USD, large is 9000 with a dividend of 90: the portfolio yields 190/10000.

	agg, err := e.Aggregate([]Holding{small, large}, "USD")
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}
	if got := agg.Unified.DividendYield; !got.Equal(1.9) {
		t.Errorf("DividendYield = %v, want 1.9 (sum of dividends over sum of purchases)", got)
	}

	var mean Percent
	for _, h := range []Holding{small, large} {
		row, err := e.DisplayRow(h, Unified, "USD")
		if err != nil {
			t.Fatal(err)
		}
		mean += row.DividendYield / 2
	}
	if !mean.Equal(5.5) {
		t.Fatalf("mean of row yields = %v, want 5.5", mean)
	}
	if agg.Unified.DividendYield.Equal(mean) {
		t.Errorf("DividendYield must not be the mean of row yields")
	}
}

func TestEngine_Aggregate_OrderIndependent(t *testing.T) {
	e := testEngine(t)
	krw := Holding{ID: "3", Quantity: Q(3), Currency: "KRW", TotalPurchase: D(1500000), CurrentValue: D(1612345), Dividend: D(12000), TotalProfit: D(112345), DailyProfit: D(-4500)}
	jpy := Holding{ID: "4", Quantity: Q(7.5), Currency: "JPY", TotalPurchase: D(98765), CurrentValue: D(91234), Dividend: D(321), TotalProfit: D(-7531), DailyProfit: D(77)}
	list := []Holding{apple(), tesla(), krw, jpy}

	ref, err := e.Aggregate(list, "GBP")
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}

	permutations := [][]int{
		{3, 2, 1, 0},
		{1, 0, 3, 2},
		{2, 0, 3, 1},
		{0, 3, 1, 2},
	}
	for _, p := range permutations {
		permuted := make([]Holding, len(p))
		for i, j := range p {
			permuted[i] = list[j]
		}
		got, err := e.Aggregate(permuted, "GBP")
		if err != nil {
			t.Fatalf("Aggregate(%v) error = %v", p, err)
		}
		u, r := got.Unified, ref.Unified
		if !u.Quantity.Equal(r.Quantity) ||
			!u.TotalPurchase.Equal(r.TotalPurchase) ||
			!u.CurrentValue.Equal(r.CurrentValue) ||
			!u.Dividend.Equal(r.Dividend) ||
			!u.TotalProfit.Equal(r.TotalProfit) ||
			!u.DailyProfit.Equal(r.DailyProfit) ||
			u.DividendYield != r.DividendYield {
			t.Errorf("Aggregate(%v) = %+v, want %+v", p, u, r)
		}
		if !slices.Equal(got.Currencies, ref.Currencies) {
			t.Errorf("Aggregate(%v).Currencies = %v, want %v", p, got.Currencies, ref.Currencies)
		}
	}
}

func TestEngine_Aggregate_ZeroPurchase(t *testing.T) {
	e := testEngine(t)
	h := Holding{ID: "gift", Quantity: Q(1), Currency: "EUR", CurrentValue: D(50), Dividend: D(2), TotalProfit: D(50), DailyProfit: D(1)}
	agg, err := e.Aggregate([]Holding{h}, "USD")
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}
	native, ok := agg.Native.Get()
	if !ok {
		t.Fatal("Native totals of a single currency should be representable")
	}
	for _, tot := range []Totals{agg.Unified, native} {
		if tot.DividendYield != 0 || tot.TotalProfitPct != 0 || tot.DailyProfitPct != 0 {
			t.Errorf("%s ratios = %v/%v/%v, want 0", tot.Currency, tot.DividendYield, tot.TotalProfitPct, tot.DailyProfitPct)
		}
	}
}

func TestEngine_Aggregate_Empty(t *testing.T) {
	e := testEngine(t)
	agg, err := e.Aggregate(nil, "USD")
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}
	if !agg.Unified.TotalPurchase.Equal(USD(0)) || !agg.Unified.Quantity.IsZero() {
		t.Errorf("Unified = %+v, want zero USD totals", agg.Unified)
	}
	native, ok := agg.Native.Get()
	if !ok {
		t.Fatalf("Native totals of no holding should be representable")
	}
	if !native.TotalPurchase.Decimal().IsZero() || native.Currency != "" {
		t.Errorf("Native = %+v, want zero totals without currency", native)
	}
}

func TestEngine_Aggregate_Rejected(t *testing.T) {
	e := testEngine(t)
	bad := apple()
	bad.ID = "bad"
	bad.Currency = "XXX"

	with, err := e.Aggregate([]Holding{apple(), bad, tesla()}, "USD")
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}
	without, err := e.Aggregate([]Holding{apple(), tesla()}, "USD")
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}
	if len(with.Rejected) != 1 || with.Rejected[0].ID != "bad" || !errors.Is(with.Rejected[0], ErrUnknownCurrency) {
		t.Errorf("Rejected = %v, want the bad holding with ErrUnknownCurrency", with.Rejected)
	}
	if !with.Unified.TotalPurchase.Equal(without.Unified.TotalPurchase) {
		t.Errorf("TotalPurchase = %v, want %v", with.Unified.TotalPurchase, without.Unified.TotalPurchase)
	}
	if !slices.Equal(with.Currencies, without.Currencies) {
		t.Errorf("Currencies = %v, want %v", with.Currencies, without.Currencies)
	}
}

func TestEngine_Aggregate_UnknownTarget(t *testing.T) {
	e := testEngine(t)
	if _, err := e.Aggregate([]Holding{apple()}, "XXX"); !errors.Is(err, ErrUnknownCurrency) {
		t.Errorf("Aggregate(unknown target) error = %v, want ErrUnknownCurrency", err)
	}
}
