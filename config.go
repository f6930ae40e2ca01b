package holdings

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/pelletier/go-toml/v2"
	"github.com/shopspring/decimal"
)

// Config is the currency configuration: supported currencies with their rate
// and symbol, and the default display settings.
//
//	base = "USD"
//	target = "EUR"
//	mode = "unified"
//
//	[currencies.EUR]
//	rate = 0.92
//	symbol = "€"
type Config struct {
	// Base is optional. When set, it must be the currency with rate 1.
	Base string `toml:"base"`
	// Target is the default display currency. It defaults to the base currency.
	Target string `toml:"target"`
	// Mode is the default display mode, "unified" when empty.
	Mode       string                    `toml:"mode"`
	Currencies map[string]CurrencyConfig `toml:"currencies"`
}

// CurrencyConfig is one supported currency.
type CurrencyConfig struct {
	Rate float64 `toml:"rate"`
	// Symbol defaults to the ISO 4217 grapheme of the currency.
	Symbol string `toml:"symbol"`
}

// DefaultConfig returns the built-in currency configuration, based on USD.
func DefaultConfig() *Config {
	rates := map[string]float64{
		"USD": 1,
		"KRW": 1344.5,
		"EUR": 0.92,
		"GBP": 0.79,
		"JPY": 151.62,
		"CAD": 1.35,
		"AUD": 1.52,
		"CNY": 7.24,
		"CHF": 0.89,
		"INR": 83.35,
		"SGD": 1.34,
	}
	symbols := DefaultSymbols()
	c := &Config{Base: "USD", Target: "USD", Mode: Unified.String(), Currencies: make(map[string]CurrencyConfig)}
	for code, rate := range rates {
		c.Currencies[code] = CurrencyConfig{Rate: rate, Symbol: symbols[code]}
	}
	return c
}

// LoadConfig decodes and validates a TOML currency configuration.
func LoadConfig(r io.Reader) (*Config, error) {
	var c Config
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("cannot decode currency configuration: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// LoadConfigFile reads a TOML currency configuration file.
func LoadConfigFile(filename string) (*Config, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("cannot open %q for reading: %w", filename, err)
	}
	defer f.Close()
	c, err := LoadConfig(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return c, nil
}

// Validate checks the configuration is consistent.
func (c *Config) Validate() error {
	rates, err := c.Rates()
	if err != nil {
		return err
	}
	if c.Base != "" && c.Base != rates.Base() {
		return fmt.Errorf("%w: base is %q but the currency with rate 1 is %q", ErrInvalidRates, c.Base, rates.Base())
	}
	if c.Target != "" && !rates.Has(c.Target) {
		return fmt.Errorf("target: %w %q", ErrUnknownCurrency, c.Target)
	}
	if c.Mode != "" {
		if _, err := ParseDisplayMode(c.Mode); err != nil {
			return err
		}
	}
	return nil
}

// Rates builds the rate table.
func (c *Config) Rates() (*Rates, error) {
	rates := make(map[string]decimal.Decimal, len(c.Currencies))
	for code, cc := range c.Currencies {
		rates[code] = decimal.NewFromFloat(cc.Rate)
	}
	return NewRates(rates)
}

// Symbols builds the symbol table.
func (c *Config) Symbols() Symbols {
	s := make(Symbols, len(c.Currencies))
	for code, cc := range c.Currencies {
		if cc.Symbol != "" {
			s[code] = cc.Symbol
			continue
		}
		s[code] = isoGrapheme(code)
	}
	return s
}

// DefaultTarget returns the configured display currency, or the base currency.
func (c *Config) DefaultTarget() (string, error) {
	if c.Target != "" {
		return c.Target, nil
	}
	rates, err := c.Rates()
	if err != nil {
		return "", err
	}
	return rates.Base(), nil
}

// DefaultMode returns the configured display mode.
func (c *Config) DefaultMode() (DisplayMode, error) {
	if c.Mode == "" {
		return Unified, nil
	}
	return ParseDisplayMode(c.Mode)
}

// Engine builds an engine from the configuration.
func (c *Config) Engine() (*Engine, error) {
	rates, err := c.Rates()
	if err != nil {
		return nil, err
	}
	return NewEngine(rates, c.Symbols()), nil
}

// DecodeRatesJSON reads a rate table from a JSON document, such as a saved
// exchange-rate API response. path is a JSONPath expression selecting the object
// that maps currency codes to rates; "" selects the whole document.
//
//	{"base":"USD","rates":{"USD":1,"EUR":0.92}}   with path "$.rates"
func DecodeRatesJSON(r io.Reader, path string) (*Rates, error) {
	var jobj any
	dec := json.NewDecoder(r)
	dec.UseNumber()
	if err := dec.Decode(&jobj); err != nil {
		return nil, fmt.Errorf("cannot decode rates document: %w", err)
	}
	if path == "" {
		path = "$"
	}
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", path, err)
	}
	// jsonpath is never clear about whether it returns a list of 1 answer, or a single answer:
	// keep the first one if any.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	jrates, ok := jval.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%q does not select an object of rates, got %T", path, jval)
	}

	rates := make(map[string]decimal.Decimal, len(jrates))
	for code, v := range jrates {
		var txt string
		switch x := v.(type) {
		case json.Number:
			txt = x.String()
		case string:
			txt = x
		default:
			return nil, fmt.Errorf("rate for %q is not a number: %v", code, v)
		}
		d, err := decimal.NewFromString(txt)
		if err != nil {
			return nil, fmt.Errorf("rate for %q is not a number: %w", code, err)
		}
		rates[code] = d
	}
	return NewRates(rates)
}

// Config returns a configuration holding r, with symbols taken from symbols.
// It is used to persist an imported rate table.
func (r *Rates) Config(symbols Symbols) *Config {
	c := &Config{Base: r.base, Target: r.base, Mode: Unified.String(), Currencies: make(map[string]CurrencyConfig, len(r.rates))}
	for code, rate := range r.rates {
		c.Currencies[code] = CurrencyConfig{Rate: rate.InexactFloat64(), Symbol: symbols.Symbol(code)}
	}
	return c
}

// Encode writes the configuration as TOML.
func (c *Config) Encode(w io.Writer) error {
	enc := toml.NewEncoder(w)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("cannot encode currency configuration: %w", err)
	}
	return nil
}
