package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/etnz/holdings"
	"github.com/etnz/holdings/renderer"
	"github.com/google/subcommands"
)

// tableCmd holds the flags for the 'table' subcommand.
type tableCmd struct {
	currency string
	mode     string
	html     bool
	json     bool
}

func (*tableCmd) Name() string     { return "table" }
func (*tableCmd) Synopsis() string { return "display the holdings table with its totals" }
func (*tableCmd) Usage() string {
	return `hv table [-c <currency>] [-m native|unified] [-html|-json]

  Displays every holding of the holdings file, and the portfolio totals.

  In unified mode all amounts are converted into the display currency. In
  native mode each holding keeps its own currency, and monetary totals are
  only shown when all holdings share one currency.
`
}

func (c *tableCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "c", "", "Display currency of the unified mode")
	f.StringVar(&c.mode, "m", "", "Display mode: 'native' or 'unified'")
	f.BoolVar(&c.html, "html", false, "print the table as HTML")
	f.BoolVar(&c.json, "json", false, "print the formatted table as JSON")
}

func (c *tableCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	table, status := computeTable(c.currency, c.mode)
	if table == nil {
		return status
	}
	for _, err := range table.Errors() {
		log.Printf("warning: %v", err)
	}

	ht := renderer.NewHoldingsTable(table)
	switch {
	case c.json:
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(ht); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding table: %v\n", err)
			return subcommands.ExitFailure
		}
	case c.html:
		html, err := renderer.ToHTML(renderer.RenderHoldingsTable(ht))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error rendering table: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Fprint(stdout, html)
	default:
		printMarkdown(renderer.RenderHoldingsTable(ht))
	}
	return subcommands.ExitSuccess
}

// computeTable loads the configuration and the holdings file, and computes the
// holdings table. On failure it reports the error and returns a nil table.
func computeTable(currency, mode string) (*holdings.Table, subcommands.ExitStatus) {
	config, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading currency configuration: %v\n", err)
		return nil, subcommands.ExitFailure
	}
	target, err := Target(config, currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error resolving display currency: %v\n", err)
		return nil, subcommands.ExitFailure
	}
	m, err := Mode(config, mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing display mode: %v\n", err)
		return nil, subcommands.ExitUsageError
	}
	engine, err := config.Engine()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building rate table: %v\n", err)
		return nil, subcommands.ExitFailure
	}

	list, err := DecodeHoldings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading holdings: %v\n", err)
		return nil, subcommands.ExitFailure
	}

	table, err := engine.Table(list, m, target)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing holdings table: %v\n", err)
		return nil, subcommands.ExitFailure
	}
	return table, subcommands.ExitSuccess
}
