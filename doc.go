// Package holdings computes the figures of a portfolio holdings table when
// holdings were bought in different currencies.
//
// Each holding keeps its amounts in its own purchase currency. The engine
// displays them either in that currency (Native mode) or converted into one
// target currency (Unified mode), and computes portfolio totals consistent with
// the displayed rows:
//   - Rate Table: exchange rates against an implicit base currency (Rates).
//   - Converter: conversion between any two currencies through the base (Rates.Convert).
//   - Formatter: signed amounts with currency symbol and two decimals (Symbols.Format).
//   - Row Normalizer: the displayed figures of one holding (Engine.DisplayRow).
//   - Aggregator: portfolio totals in both modes (Engine.Aggregate).
//
// Yields and profit percentages of the portfolio are always computed from
// summed amounts, never by averaging per-holding ratios. Native totals of
// holdings in several currencies are not representable, which is distinct
// from zero.
//
// Everything is computed on demand from its inputs: an Engine has no mutable
// state and is safe for concurrent use.
//
// This package is the foundation of the `hv` command-line tool.
package holdings
