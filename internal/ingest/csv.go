package ingest

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"io"
	"strings"

	"github.com/cwbudde/algo-spectra/spectrum"
)

// ReadCSV reads a delimited text spectrum. The delimiter is sniffed from the
// first data-like line: tab, then semicolon, then comma; lines without any
// of them are split on whitespace.
func ReadCSV(r io.Reader) (spectrum.Spectrum, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	delim := sniffDelimiter(data)
	if delim == ' ' {
		return FromRows(splitFields(data))
	}

	cr := csv.NewReader(bytes.NewReader(data))
	cr.Comma = delim
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	return FromRows(rows)
}

func sniffDelimiter(data []byte) rune {
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		switch {
		case strings.ContainsRune(line, '\t'):
			return '\t'
		case strings.ContainsRune(line, ';'):
			return ';'
		case strings.ContainsRune(line, ','):
			if isNumericTable(line) {
				return ' '
			}
			return ','
		default:
			if len(strings.Fields(line)) > 1 {
				return ' '
			}
		}
	}
	return ','
}

// isNumericTable reports whether line is a whitespace separated row of
// numbers written with decimal commas.
func isNumericTable(line string) bool {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return false
	}
	for _, f := range fields {
		if _, ok := parseNumber(f); !ok {
			return false
		}
	}
	return true
}

func splitFields(data []byte) [][]string {
	var rows [][]string
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		rows = append(rows, strings.Fields(line))
	}
	return rows
}
