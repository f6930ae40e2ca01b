package holdings

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidQuantity is returned for a holding without a positive quantity.
	ErrInvalidQuantity = errors.New("invalid quantity")
	// ErrDuplicateID is returned when two holdings share the same ID.
	ErrDuplicateID = errors.New("duplicate holding id")
)

// Holding is one line of the portfolio.
//
// All monetary fields are denominated in Currency. TotalPurchase is
// authoritative: it is never recomputed from PurchasePrice and Quantity.
type Holding struct {
	ID     string
	Name   string
	Symbol string // ticker

	Quantity      Quantity
	Currency      string
	PurchasePrice decimal.Decimal // per unit
	TotalPurchase decimal.Decimal
	CurrentValue  decimal.Decimal
	Dividend      decimal.Decimal
	TotalProfit   decimal.Decimal
	DailyProfit   decimal.Decimal
}

// money wraps v in the holding's currency.
func (h Holding) money(v decimal.Decimal) Money { return Money{value: v, cur: h.Currency} }

func (h Holding) PurchasePriceMoney() Money { return h.money(h.PurchasePrice) }
func (h Holding) TotalPurchaseMoney() Money { return h.money(h.TotalPurchase) }
func (h Holding) CurrentValueMoney() Money  { return h.money(h.CurrentValue) }
func (h Holding) DividendMoney() Money      { return h.money(h.Dividend) }
func (h Holding) TotalProfitMoney() Money   { return h.money(h.TotalProfit) }
func (h Holding) DailyProfitMoney() Money   { return h.money(h.DailyProfit) }

// Validate checks the holding against the rate table.
func (h Holding) Validate(rates *Rates) error {
	if h.ID == "" {
		return errors.New("missing holding id")
	}
	if !rates.Has(h.Currency) {
		return fmt.Errorf("holding %q: %w %q", h.ID, ErrUnknownCurrency, h.Currency)
	}
	if !h.Quantity.IsPositive() {
		return fmt.Errorf("holding %q: %w: must be positive, got %s", h.ID, ErrInvalidQuantity, h.Quantity)
	}
	return nil
}

// Currencies returns the distinct currencies used by list, in order of first appearance.
func Currencies(list []Holding) []string {
	seen := make(map[string]struct{})
	var currencies []string
	for _, h := range list {
		if _, ok := seen[h.Currency]; ok {
			continue
		}
		seen[h.Currency] = struct{}{}
		currencies = append(currencies, h.Currency)
	}
	return currencies
}
