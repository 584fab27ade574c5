// Package ingest reads raw spectra from delimited text files and Excel
// workbooks.
//
// Every row contributes its first two cells as wavelength and intensity.
// Rows whose first cell is not a number (headers, comments, units) are
// skipped, as are rows with fewer than two cells or a non-numeric
// intensity. The result is sorted by wavelength.
package ingest

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-spectra/spectrum"
)

var (
	// ErrNoData is returned when no row holds a numeric wavelength and
	// intensity.
	ErrNoData = errors.New("ingest: no numeric data")
	// ErrUnsupportedFormat is returned by ReadFile for unknown extensions.
	ErrUnsupportedFormat = errors.New("ingest: unsupported file format")
)

// ReadFile reads the spectrum at path, choosing the parser by extension:
// .csv, .tsv, .txt and .dat are delimited text; .xlsx and .xlsm are
// workbooks, read from their first sheet.
func ReadFile(path string) (spectrum.Spectrum, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var s spectrum.Spectrum
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv", ".tsv", ".txt", ".dat":
		s, err = ReadCSV(f)
	case ".xlsx", ".xlsm":
		s, err = ReadXLSX(f, "")
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// FromRows converts table rows into a sorted spectrum.
func FromRows(rows [][]string) (spectrum.Spectrum, error) {
	out := make(spectrum.Spectrum, 0, len(rows))
	for _, row := range rows {
		if len(row) < 2 {
			continue
		}
		x, ok := parseNumber(row[0])
		if !ok {
			continue
		}
		y, ok := parseNumber(row[1])
		if !ok {
			continue
		}
		out = append(out, spectrum.Point{Wavelength: x, Intensity: y})
	}

	if len(out) == 0 {
		return nil, ErrNoData
	}
	return out.Sorted(), nil
}

// parseNumber accepts a finite float with either a decimal point or a
// decimal comma.
func parseNumber(cell string) (float64, bool) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		v, err = strconv.ParseFloat(strings.ReplaceAll(cell, ",", "."), 64)
		if err != nil {
			return 0, false
		}
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
