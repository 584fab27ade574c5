package peak

import (
	"github.com/cwbudde/algo-spectra/dsp/kernel"
	"github.com/cwbudde/algo-spectra/spectrum"
)

// Peak describes a detected emission peak.
type Peak struct {
	Index      int     `json:"index"`
	Position   float64 `json:"position"`
	Amplitude  float64 `json:"amplitude"`
	FWHM       float64 `json:"fwhm"`
	Area       float64 `json:"area"`
	Prominence float64 `json:"prominence"`
}

// Params controls which local maxima are reported.
type Params struct {
	// Prominence is the minimum simple prominence of a reported peak.
	Prominence float64 `json:"prominence"`
	// MinHeight is the minimum intensity of a candidate.
	MinHeight float64 `json:"min_height"`
}

// Detect returns the peaks of s in ascending wavelength order.
//
// A point is a candidate when its intensity is strictly greater than both
// neighbors and at least p.MinHeight. The first and last points are never
// candidates, so spectra with fewer than three points yield no peaks.
// Every candidate is fully described before the prominence filter runs.
func Detect(s spectrum.Spectrum, p Params) []Peak {
	if len(s) < 3 {
		return []Peak{}
	}

	candidates := make([]Peak, 0, 8)
	for i := 1; i < len(s)-1; i++ {
		y := s[i].Intensity
		if y <= s[i-1].Intensity || y <= s[i+1].Intensity || y < p.MinHeight {
			continue
		}
		candidates = append(candidates, describe(s, i))
	}

	peaks := candidates[:0]
	for _, c := range candidates {
		if c.Prominence >= p.Prominence {
			peaks = append(peaks, c)
		}
	}
	return peaks
}

func describe(s spectrum.Spectrum, i int) Peak {
	pos := s[i].Wavelength
	amp := s[i].Intensity
	fwhm := FWHM(s, i)

	return Peak{
		Index:      i,
		Position:   pos,
		Amplitude:  amp,
		FWHM:       fwhm,
		Area:       Area(s, pos-fwhm, pos+fwhm),
		Prominence: amp - min(s[i-1].Intensity, s[i+1].Intensity),
	}
}

// FWHM returns the full width at half maximum of the peak at index i.
// Each side stops at the first point at or below half maximum, and that
// boundary point is included in the width.
func FWHM(s spectrum.Spectrum, i int) float64 {
	half := s[i].Intensity / 2

	left := i
	for left > 0 && s[left].Intensity > half {
		left--
	}

	right := i
	for right < len(s)-1 && s[right].Intensity > half {
		right++
	}

	return s[right].Wavelength - s[left].Wavelength
}

// Area integrates the points of s whose wavelength lies in [lo, hi].
func Area(s spectrum.Spectrum, lo, hi float64) float64 {
	var xs, ys []float64
	for _, p := range s {
		if p.Wavelength >= lo && p.Wavelength <= hi {
			xs = append(xs, p.Wavelength)
			ys = append(ys, p.Intensity)
		}
	}
	return kernel.IntegrateXY(xs, ys)
}
