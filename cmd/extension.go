package cmd

import (
	"fmt"
	"log"
	"os"
	"os/exec"
	"strconv"
	"syscall"
)

const (
	EnvHoldingsFile    = "HV_HOLDINGS"
	EnvConfigFile      = "HV_CONFIG"
	EnvDefaultCurrency = "HV_CURRENCY"
	EnvDefaultMode     = "HV_MODE"
	EnvVerbose         = "HV_VERBOSE"
	EnvRaw             = "HV_RAW"
)

// RunExtension attempts to find and execute an external hv-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found or executed.
//
// Global settings are passed to the extension as environment variables.
func RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := "hv-" + subcommand

	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		if *Verbose {
			log.Printf("External command %q not found in PATH: %v", externalCmdName, err)
		}
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	cmd.Env = os.Environ()
	cmd.Env = append(cmd.Env, EnvHoldingsFile+"="+HoldingsFile())
	cmd.Env = append(cmd.Env, EnvConfigFile+"="+setting(*configFile, EnvConfigFile, ""))
	cmd.Env = append(cmd.Env, EnvDefaultCurrency+"="+setting(*defaultCurrency, EnvDefaultCurrency, ""))
	cmd.Env = append(cmd.Env, EnvDefaultMode+"="+setting(*defaultMode, EnvDefaultMode, ""))
	cmd.Env = append(cmd.Env, EnvVerbose+"="+strconv.FormatBool(*Verbose))

	if err := cmd.Run(); err != nil {
		if exitError, ok := err.(*exec.ExitError); ok {
			if status, ok := exitError.Sys().(syscall.WaitStatus); ok {
				return true, status.ExitStatus()
			}
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", externalCmdName, err)
		return true, 1
	}
	return true, 0
}
