package holdings

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shopspring/decimal"
)

// Holdings are persisted as JSONL, one holding per line, so that the file stays
// human-readable and git-friendly:
//
//	{"id":1,"name":"Apple Inc","symbol":"AAPL","quantity":10,"currency":"USD","purchasePrice":243.04,...}
//
// Amounts are JSON numbers or strings, both are decoded without loss of precision.

// jholding is the object read from a holdings file.
type jholding struct {
	ID            json.RawMessage `json:"id"`
	Name          string          `json:"name"`
	Symbol        string          `json:"symbol"`
	Quantity      decimal.Decimal `json:"quantity"`
	Currency      string          `json:"currency"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	TotalPurchase decimal.Decimal `json:"totalPurchase"`
	CurrentValue  decimal.Decimal `json:"currentValue"`
	Dividend      decimal.Decimal `json:"dividend"`
	TotalProfit   decimal.Decimal `json:"totalProfit"`
	DailyProfit   decimal.Decimal `json:"dailyProfit"`
}

// decodeID accepts a JSON string or an integer.
func decodeID(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" {
		return "", fmt.Errorf("missing property %q", "id")
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", err
		}
		if s == "" {
			return "", fmt.Errorf("property %q cannot be empty", "id")
		}
		return s, nil
	}
	d, err := decimal.NewFromString(string(raw))
	if err != nil || !d.IsInteger() {
		return "", fmt.Errorf("property %q must be a string or an integer, got %s", "id", raw)
	}
	return d.String(), nil
}

// DecodeHoldings reads holdings from a JSONL stream. Empty lines are ignored.
// Two holdings with the same id are rejected.
func DecodeHoldings(r io.Reader) ([]Holding, error) {
	var list []Holding
	seen := make(map[string]int)
	scanner := bufio.NewScanner(r)
	i := 0
	for scanner.Scan() {
		i++
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}

		var jh jholding
		if err := json.Unmarshal(line, &jh); err != nil {
			return nil, fmt.Errorf("parse error on line %d: not a correct holding: %w", i, err)
		}
		id, err := decodeID(jh.ID)
		if err != nil {
			return nil, fmt.Errorf("parse error on line %d: %w", i, err)
		}
		if first, ok := seen[id]; ok {
			return nil, fmt.Errorf("parse error on line %d: %w %q, first defined on line %d", i, ErrDuplicateID, id, first)
		}
		seen[id] = i
		if jh.Currency == "" {
			return nil, fmt.Errorf("parse error on line %d: missing property %q", i, "currency")
		}

		list = append(list, Holding{
			ID:            id,
			Name:          jh.Name,
			Symbol:        jh.Symbol,
			Quantity:      Quantity{value: jh.Quantity},
			Currency:      jh.Currency,
			PurchasePrice: jh.PurchasePrice,
			TotalPurchase: jh.TotalPurchase,
			CurrentValue:  jh.CurrentValue,
			Dividend:      jh.Dividend,
			TotalProfit:   jh.TotalProfit,
			DailyProfit:   jh.DailyProfit,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read holdings: %w", err)
	}
	return list, nil
}

// DecodeHoldingsFile reads holdings from a JSONL file.
func DecodeHoldingsFile(filename string) ([]Holding, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("cannot open %q for reading: %w", filename, err)
	}
	defer f.Close()
	list, err := DecodeHoldings(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return list, nil
}

// MarshalJSON writes the holding with a stable field order.
func (h Holding) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	// integer ids are written back as numbers.
	if d, err := decimal.NewFromString(h.ID); err == nil && d.IsInteger() && d.String() == h.ID {
		w.Append("id", json.Number(h.ID))
	} else {
		w.Append("id", h.ID)
	}
	w.Optional("name", h.Name)
	w.Optional("symbol", h.Symbol)
	w.Append("quantity", h.Quantity)
	w.Append("currency", h.Currency)
	w.Append("purchasePrice", json.Number(h.PurchasePrice.String()))
	w.Append("totalPurchase", json.Number(h.TotalPurchase.String()))
	w.Append("currentValue", json.Number(h.CurrentValue.String()))
	w.Append("dividend", json.Number(h.Dividend.String()))
	w.Append("totalProfit", json.Number(h.TotalProfit.String()))
	w.Append("dailyProfit", json.Number(h.DailyProfit.String()))
	return w.MarshalJSON()
}

// EncodeHoldings writes holdings as JSONL, one per line, in list order.
func EncodeHoldings(w io.Writer, list []Holding) error {
	for _, h := range list {
		b, err := json.Marshal(h)
		if err != nil {
			return fmt.Errorf("cannot encode holding %q: %w", h.ID, err)
		}
		b = append(b, '\n')
		if _, err := w.Write(b); err != nil {
			return err
		}
	}
	return nil
}
