// Command plspec analyzes photoluminescence spectra.
//
// Usage:
//
//	plspec [command] [flags]
//
// Examples:
//
//	plspec analyze sample.csv
//	plspec analyze -m lorentzian --prominence 0.05 a.csv b.xlsx
//	plspec analyze --save -o out -f csv,xlsx,parquet --chart png sample.csv
//	plspec compare before.csv after.csv
//	plspec results list
//	plspec config init plspec.toml
package main

import (
	"os"

	"github.com/cwbudde/algo-spectra/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
