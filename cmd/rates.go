package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/holdings"
	"github.com/google/subcommands"
)

type ratesCmd struct {
	jsonFile string
	path     string
	save     string
}

func (*ratesCmd) Name() string     { return "rates" }
func (*ratesCmd) Synopsis() string { return "display or import the exchange rate table" }
func (*ratesCmd) Usage() string {
	return `hv rates [-json <file> [-path <jsonpath>]] [-save <file>]

  Displays the configured exchange rates, or the rates read from a JSON
  document such as a saved exchange rate API response.

  With -save, the rate table is written as a currency configuration file.
`
}

func (c *ratesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.jsonFile, "json", "", "JSON document to import rates from")
	f.StringVar(&c.path, "path", "$.rates", "JSONPath of the object mapping currency codes to rates in the JSON document")
	f.StringVar(&c.save, "save", "", "write the rate table as a TOML configuration file")
}

func (c *ratesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	config, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading currency configuration: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.jsonFile != "" {
		imported, err := importRates(c.jsonFile, c.path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error importing rates: %v\n", err)
			return subcommands.ExitFailure
		}
		// keep the configured symbols, the document only brings rates.
		config = imported.Config(config.Symbols())
	}

	if c.save != "" {
		if err := saveConfig(c.save, config); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving rates: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	rates, err := config.Rates()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building rate table: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(ratesMarkdown(rates, config.Symbols()))
	return subcommands.ExitSuccess
}

func importRates(filename, path string) (*holdings.Rates, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("cannot open %q for reading: %w", filename, err)
	}
	defer f.Close()
	return holdings.DecodeRatesJSON(f, path)
}

func saveConfig(filename string, config *holdings.Config) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("cannot open %q for writing: %w", filename, err)
	}
	if err := config.Encode(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ratesMarkdown renders the rate table, one currency per line.
func ratesMarkdown(rates *holdings.Rates, symbols holdings.Symbols) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Rates\n\n")
	fmt.Fprintf(&b, "Amounts of each currency for 1 %s.\n\n", rates.Base())
	fmt.Fprintln(&b, "| Currency | Symbol | Rate |")
	fmt.Fprintln(&b, "|:---|:---|---:|")
	for code := range rates.Currencies() {
		rate, _ := rates.Rate(code)
		fmt.Fprintf(&b, "| %s | %s | %s |\n", code, symbols.Symbol(code), rate)
	}
	return b.String()
}
