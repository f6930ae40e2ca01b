package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/etnz/holdings"
	"github.com/google/subcommands"
)

type fmtCmd struct {
	output string
}

func (*fmtCmd) Name() string     { return "fmt" }
func (*fmtCmd) Synopsis() string { return "validates and formats the holdings file into a canonical form" }
func (*fmtCmd) Usage() string {
	return `hv fmt [-o <file>]

  Rewrites the holdings file with one holding per line, with a stable field
  order. The file is checked on the way: duplicate ids are rejected, and
  holdings that cannot be displayed (unknown currency, quantity not positive)
  are reported as warnings.
`
}

func (c *fmtCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "write to this file instead of the holdings file")
}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	list, err := DecodeHoldings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding holdings: %v\n", err)
		return subcommands.ExitFailure
	}

	config, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading currency configuration: %v\n", err)
		return subcommands.ExitFailure
	}
	rates, err := config.Rates()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building rate table: %v\n", err)
		return subcommands.ExitFailure
	}
	for _, h := range list {
		if err := h.Validate(rates); err != nil {
			log.Printf("warning: %v", err)
		}
	}

	output := c.output
	if output == "" {
		output = HoldingsFile()
	}
	if err := EncodeHoldings(output, list); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding holdings: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Fprintf(stdout, "Holdings file '%s' has been formatted.\n", output)
	return subcommands.ExitSuccess
}

// EncodeHoldings writes holdings to filename, replacing its content.
func EncodeHoldings(filename string, list []holdings.Holding) error {
	f, err := os.OpenFile(filename, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("error opening holdings file %q for writing: %w", filename, err)
	}
	if err := holdings.EncodeHoldings(f, list); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
