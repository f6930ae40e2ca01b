package cmd

import (
	"context"
	"flag"

	"github.com/etnz/holdings/renderer"
	"github.com/google/subcommands"
)

type totalsCmd struct {
	currency string
}

func (*totalsCmd) Name() string     { return "totals" }
func (*totalsCmd) Synopsis() string { return "display the portfolio totals in both display modes" }
func (*totalsCmd) Usage() string {
	return `hv totals [-c <currency>]

  Displays the portfolio totals converted into the display currency, and in
  the holdings' own currency when they all share one.
`
}

func (c *totalsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "c", "", "Display currency of the unified totals")
}

func (c *totalsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	// the mode does not matter, both totals are displayed.
	table, status := computeTable(c.currency, "unified")
	if table == nil {
		return status
	}
	printMarkdown(renderer.RenderHoldingsTotals(renderer.NewHoldingsTotals(table)))
	return subcommands.ExitSuccess
}
