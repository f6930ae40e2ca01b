package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/holdings"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type convertCmd struct {
	from string
	to   string
}

func (*convertCmd) Name() string     { return "convert" }
func (*convertCmd) Synopsis() string { return "convert an amount between two currencies" }
func (*convertCmd) Usage() string {
	return `hv convert -from <currency> [-to <currency>] <amount>...

  Converts each amount with the configured rate table, and prints it formatted
  in both currencies.
`
}

func (c *convertCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "Currency of the amounts")
	f.StringVar(&c.to, "to", "", "Currency to convert into. Defaults to the display currency")
}

func (c *convertCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.from == "" || f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: -from and at least one amount are required")
		return subcommands.ExitUsageError
	}

	config, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading currency configuration: %v\n", err)
		return subcommands.ExitFailure
	}
	to, err := Target(config, c.to)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error resolving display currency: %v\n", err)
		return subcommands.ExitFailure
	}
	engine, err := config.Engine()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building rate table: %v\n", err)
		return subcommands.ExitFailure
	}

	for _, arg := range f.Args() {
		amount, err := decimal.NewFromString(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing amount %q: %v\n", arg, err)
			return subcommands.ExitUsageError
		}
		m := holdings.M(amount, c.from)
		converted, err := engine.Convert(m, to)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error converting %s: %v\n", m, err)
			return subcommands.ExitFailure
		}
		fmt.Fprintf(stdout, "%s = %s\n", engine.Format(m), engine.Format(converted))
	}
	return subcommands.ExitSuccess
}
