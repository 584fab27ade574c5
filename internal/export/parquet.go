package export

import (
	"errors"
	"fmt"
	"io"
	"strings"

	parquet "github.com/parquet-go/parquet-go"

	"github.com/cwbudde/algo-spectra/dsp/peak"
	"github.com/cwbudde/algo-spectra/spectrum"
)

// SpectrumRow is the Parquet schema of a spectrum export.
type SpectrumRow struct {
	SampleID   string  `parquet:"sample_id"`
	Wavelength float64 `parquet:"wavelength"`
	Intensity  float64 `parquet:"intensity"`
}

// PeakRow is the Parquet schema of a peak table export.
type PeakRow struct {
	SampleID   string  `parquet:"sample_id"`
	Position   float64 `parquet:"position"`
	Amplitude  float64 `parquet:"amplitude"`
	FWHM       float64 `parquet:"fwhm"`
	Area       float64 `parquet:"area"`
	Prominence float64 `parquet:"prominence"`
}

// Compression returns the Parquet writer option for name: "zstd", "gzip",
// "none" or, by default, snappy.
func Compression(name string) parquet.WriterOption {
	switch strings.ToLower(name) {
	case "zstd":
		return parquet.Compression(&parquet.Zstd)
	case "gzip", "gz":
		return parquet.Compression(&parquet.Gzip)
	case "none", "uncompressed":
		return parquet.Compression(&parquet.Uncompressed)
	default:
		return parquet.Compression(&parquet.Snappy)
	}
}

// WriteSpectrumParquet writes s as SpectrumRow records tagged with sampleID.
func WriteSpectrumParquet(w io.Writer, sampleID string, s spectrum.Spectrum, opts ...parquet.WriterOption) error {
	rows := make([]SpectrumRow, len(s))
	for i, p := range s {
		rows[i] = SpectrumRow{SampleID: sampleID, Wavelength: p.Wavelength, Intensity: p.Intensity}
	}
	return writeParquet(w, rows, opts...)
}

// WritePeaksParquet writes peaks as PeakRow records tagged with sampleID.
func WritePeaksParquet(w io.Writer, sampleID string, peaks []peak.Peak, opts ...parquet.WriterOption) error {
	rows := make([]PeakRow, len(peaks))
	for i, p := range peaks {
		rows[i] = PeakRow{
			SampleID:   sampleID,
			Position:   p.Position,
			Amplitude:  p.Amplitude,
			FWHM:       p.FWHM,
			Area:       p.Area,
			Prominence: p.Prominence,
		}
	}
	return writeParquet(w, rows, opts...)
}

// ReadSpectrumParquet reads a file written by WriteSpectrumParquet and
// returns its sample id and spectrum.
func ReadSpectrumParquet(r io.ReaderAt) (string, spectrum.Spectrum, error) {
	rows, err := readParquet[SpectrumRow](r)
	if err != nil {
		return "", nil, err
	}

	var sampleID string
	s := make(spectrum.Spectrum, len(rows))
	for i, row := range rows {
		sampleID = row.SampleID
		s[i] = spectrum.Point{Wavelength: row.Wavelength, Intensity: row.Intensity}
	}
	return sampleID, s, nil
}

// ReadPeaksParquet reads the rows of a file written by WritePeaksParquet.
func ReadPeaksParquet(r io.ReaderAt) ([]PeakRow, error) {
	return readParquet[PeakRow](r)
}

func writeParquet[T any](w io.Writer, rows []T, opts ...parquet.WriterOption) error {
	if len(opts) == 0 {
		opts = []parquet.WriterOption{Compression("")}
	}

	pw := parquet.NewGenericWriter[T](w, opts...)
	if _, err := pw.Write(rows); err != nil {
		pw.Close()
		return fmt.Errorf("writing parquet rows: %w", err)
	}
	if err := pw.Close(); err != nil {
		return fmt.Errorf("closing parquet writer: %w", err)
	}
	return nil
}

func readParquet[T any](r io.ReaderAt) ([]T, error) {
	gr := parquet.NewGenericReader[T](r)
	defer gr.Close()

	out := make([]T, 0, gr.NumRows())
	batch := make([]T, 1024)
	for {
		n, err := gr.Read(batch)
		if n > 0 {
			out = append(out, batch[:n]...)
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading parquet rows: %w", err)
		}
	}
	return out, nil
}
