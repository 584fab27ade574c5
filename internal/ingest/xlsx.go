package ingest

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/cwbudde/algo-spectra/spectrum"
)

// ReadXLSX reads a spectrum from the first two columns of sheet. An empty
// sheet name selects the first sheet of the workbook.
func ReadXLSX(r io.Reader, sheet string) (spectrum.Spectrum, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("%w: no sheets in workbook", ErrNoData)
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	return FromRows(rows)
}
