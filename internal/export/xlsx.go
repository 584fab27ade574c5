package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// Workbook sheet names.
const (
	SheetSpectrum   = "Spectrum"
	SheetPeaks      = "Peaks"
	SheetStatistics = "Statistics"
)

// WriteWorkbook writes r as an XLSX workbook with a Spectrum, a Peaks and a
// Statistics sheet.
func WriteWorkbook(w io.Writer, r Report) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetSpectrum); err != nil {
		return err
	}
	for _, name := range []string{SheetPeaks, SheetStatistics} {
		if _, err := f.NewSheet(name); err != nil {
			return err
		}
	}

	if err := writeSpectrumSheet(f, r); err != nil {
		return fmt.Errorf("spectrum sheet: %w", err)
	}
	if err := writePeaksSheet(f, r); err != nil {
		return fmt.Errorf("peaks sheet: %w", err)
	}
	if err := writeStatisticsSheet(f, r); err != nil {
		return fmt.Errorf("statistics sheet: %w", err)
	}

	return f.Write(w)
}

func setRow(f *excelize.File, sheet string, row int, values ...any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

func writeSpectrumSheet(f *excelize.File, r Report) error {
	withFit := len(r.Fitted) == len(r.Processed) && len(r.Fitted) > 0

	header := []any{"Wavelength (nm)", "Intensity"}
	if withFit {
		header = append(header, "Fitted")
	}
	if err := setRow(f, SheetSpectrum, 1, header...); err != nil {
		return err
	}

	for i, p := range r.Processed {
		values := []any{p.Wavelength, p.Intensity}
		if withFit {
			values = append(values, r.Fitted[i].Intensity)
		}
		if err := setRow(f, SheetSpectrum, i+2, values...); err != nil {
			return err
		}
	}
	return nil
}

func writePeaksSheet(f *excelize.File, r Report) error {
	if err := setRow(f, SheetPeaks, 1, "Position (nm)", "Amplitude", "FWHM (nm)", "Area", "Prominence"); err != nil {
		return err
	}
	for i, p := range r.Peaks {
		if err := setRow(f, SheetPeaks, i+2, p.Position, p.Amplitude, p.FWHM, p.Area, p.Prominence); err != nil {
			return err
		}
	}
	return nil
}

func writeStatisticsSheet(f *excelize.File, r Report) error {
	rows := [][]any{
		{"Sample", r.SampleID},
		{"Outcome", r.Outcome},
		{"Points", r.Statistics.Points},
		{"Mean", r.Statistics.Mean},
		{"Std", r.Statistics.Std},
		{"Max", r.Statistics.Max},
		{"Min", r.Statistics.Min},
		{"Total area", r.Statistics.TotalArea},
	}
	if r.Model != "" {
		rows = append(rows,
			[]any{"Model", r.Model},
			[]any{"Profile", r.Profile},
			[]any{"R squared", r.RSquared},
			[]any{"RMSE", r.RMSE},
		)
	}

	for i, row := range rows {
		if err := setRow(f, SheetStatistics, i+1, row...); err != nil {
			return err
		}
	}
	return nil
}
