// Package cmd implements the hv command line tool: it displays a holdings file
// in one currency or in each holding's own currency.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"strconv"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/holdings"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var holdingsFile = flag.String("holdings-file", "", "Path to the holdings file (JSONL format). Defaults to $"+EnvHoldingsFile+" or holdings.jsonl")
var configFile = flag.String("config-file", "", "Path to the currency configuration (TOML format). Defaults to $"+EnvConfigFile+" or the built-in rates")
var defaultCurrency = flag.String("default-currency", "", "Default display currency. Defaults to $"+EnvDefaultCurrency+" or the configuration target")
var defaultMode = flag.String("default-mode", "", "Default display mode, 'native' or 'unified'. Defaults to $"+EnvDefaultMode+" or the configuration mode")
var envFile = flag.String("env-file", ".env", "Path to a dotenv file holding default settings")
var Verbose = flag.Bool("v", false, "verbose logging")

// stdout receives the commands output.
var stdout io.Writer = os.Stdout

type command struct {
	cmd   subcommands.Command
	group string
}

var commands = []command{
	{&tableCmd{}, "holdings"},
	{&totalsCmd{}, "holdings"},
	{&fmtCmd{}, "holdings"},
	{&convertCmd{}, "currencies"},
	{&ratesCmd{}, "currencies"},
	{&topicCmd{}, "help"},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, x := range commands {
		c.Register(x.cmd, x.group)
	}
}

// IsCommand reports whether name is a built-in subcommand.
func IsCommand(name string) bool {
	for _, x := range commands {
		if x.cmd.Name() == name {
			return true
		}
	}
	return false
}

// LoadEnv loads default settings from the dotenv file. Variables already set in
// the environment take precedence. A missing file is not an error.
func LoadEnv() error {
	err := godotenv.Load(*envFile)
	if errors.Is(err, fs.ErrNotExist) {
		if *Verbose {
			log.Printf("no %s file, using the environment only", *envFile)
		}
		err = nil
	}
	if err != nil {
		return fmt.Errorf("cannot load %q: %w", *envFile, err)
	}
	if v, err := strconv.ParseBool(os.Getenv(EnvVerbose)); err == nil && v {
		*Verbose = true
	}
	return nil
}

// setting returns the first non empty value of a flag, an environment variable, and a default.
func setting(flagValue, env, def string) string {
	if flagValue != "" {
		return flagValue
	}
	if v := os.Getenv(env); v != "" {
		return v
	}
	return def
}

// HoldingsFile returns the path of the holdings file.
func HoldingsFile() string { return setting(*holdingsFile, EnvHoldingsFile, "holdings.jsonl") }

// DecodeHoldings decodes the app holdings file.
func DecodeHoldings() ([]holdings.Holding, error) {
	return holdings.DecodeHoldingsFile(HoldingsFile())
}

// LoadConfig loads the currency configuration, or the built-in one when no
// file is configured.
func LoadConfig() (*holdings.Config, error) {
	name := setting(*configFile, EnvConfigFile, "")
	if name == "" {
		return holdings.DefaultConfig(), nil
	}
	if *Verbose {
		log.Printf("loading currency configuration from %s", name)
	}
	return holdings.LoadConfigFile(name)
}

// Target resolves the display currency: the command flag first, then the
// global default, then the configuration.
func Target(c *holdings.Config, flagValue string) (string, error) {
	if v := setting(flagValue, "", setting(*defaultCurrency, EnvDefaultCurrency, "")); v != "" {
		return v, nil
	}
	return c.DefaultTarget()
}

// Mode resolves the display mode like Target does.
func Mode(c *holdings.Config, flagValue string) (holdings.DisplayMode, error) {
	if v := setting(flagValue, "", setting(*defaultMode, EnvDefaultMode, "")); v != "" {
		return holdings.ParseDisplayMode(v)
	}
	return c.DefaultMode()
}

// printMarkdown renders md for the terminal. When the output is not a
// terminal, or $HV_RAW is set, the markdown is printed as is.
func printMarkdown(md string) {
	if os.Getenv(EnvRaw) != "" || !isTerminal(stdout) {
		fmt.Fprint(stdout, md)
		return
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(120),
	)
	if err != nil {
		log.Printf("cannot create markdown renderer: %v", err)
		fmt.Fprint(stdout, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		log.Printf("cannot render markdown: %v", err)
		fmt.Fprint(stdout, md)
		return
	}
	fmt.Fprint(stdout, out)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fi, err := f.Stat()
	return err == nil && fi.Mode()&os.ModeCharDevice != 0
}
