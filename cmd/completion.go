package cmd

import (
	"slices"

	"github.com/etnz/holdings/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion returns the shell completion of hv. Install it with
//
//	COMP_INSTALL=1 hv
func Completion() *complete.Command {
	currencies := complete.PredictFunc(predictCurrencies)
	modes := predict.Set{"native", "unified"}

	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"holdings-file":    predict.Files("*.jsonl"),
			"config-file":      predict.Files("*.toml"),
			"default-currency": currencies,
			"default-mode":     modes,
			"env-file":         predict.Files("*"),
			"v":                predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"table": {
				Flags: map[string]complete.Predictor{
					"c":    currencies,
					"m":    modes,
					"html": predict.Nothing,
					"json": predict.Nothing,
				},
			},
			"totals": {
				Flags: map[string]complete.Predictor{"c": currencies},
			},
			"fmt": {
				Flags: map[string]complete.Predictor{"o": predict.Files("*.jsonl")},
			},
			"convert": {
				Flags: map[string]complete.Predictor{
					"from": currencies,
					"to":   currencies,
				},
				Args: predict.Something,
			},
			"rates": {
				Flags: map[string]complete.Predictor{
					"json": predict.Files("*.json"),
					"path": predict.Something,
					"save": predict.Files("*.toml"),
				},
			},
			"topic": {
				Args: predict.Set(docs.Names()),
			},
		},
	}
}

// predictCurrencies lists the configured currencies.
func predictCurrencies(prefix string) []string {
	config, err := LoadConfig()
	if err != nil {
		return nil
	}
	rates, err := config.Rates()
	if err != nil {
		return nil
	}
	return slices.Collect(rates.Currencies())
}
