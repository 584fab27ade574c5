// Package export writes analysis results as CSV, Excel workbooks and
// Parquet files.
//
// Exporters consume the engine's value types read-only and do no
// analysis of their own.
package export
