// Package store persists analysis records and spectra in SQLite.
//
// Records and spectra are keyed by an opaque sample identifier. Nested
// values (configuration, peaks, fitting results, statistics and spectrum
// points) are stored as JSON text columns. The schema is created by
// embedded migrations when the store is opened.
//
// The store assumes at most one writer per sample at a time.
package store
