package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/cwbudde/algo-spectra/dsp/peak"
	"github.com/cwbudde/algo-spectra/spectrum"
)

// WriteSpectrumCSV writes s as "wavelength,intensity" rows with a header.
func WriteSpectrumCSV(w io.Writer, s spectrum.Spectrum) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"wavelength", "intensity"}); err != nil {
		return err
	}
	for _, p := range s {
		if err := cw.Write([]string{formatFloat(p.Wavelength), formatFloat(p.Intensity)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WritePeaksCSV writes one row per peak with a header.
func WritePeaksCSV(w io.Writer, peaks []peak.Peak) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"position", "amplitude", "fwhm", "area", "prominence"}); err != nil {
		return err
	}
	for _, p := range peaks {
		row := []string{
			formatFloat(p.Position),
			formatFloat(p.Amplitude),
			formatFloat(p.FWHM),
			formatFloat(p.Area),
			formatFloat(p.Prominence),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
