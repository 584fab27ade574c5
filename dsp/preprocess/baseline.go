package preprocess

import (
	"fmt"

	"github.com/cwbudde/algo-spectra/dsp/kernel"
	"github.com/cwbudde/algo-spectra/spectrum"
)

// CorrectBaseline estimates a baseline and subtracts it from s.
//
// The polynomial method fits against the point index rather than the
// wavelength, so high powers of wavelengths in the hundreds of nanometres
// never enter the normal equations. Corrected intensities are clamped to 0.
//
// The als method is a no-op and returns a copy of s.
func CorrectBaseline(s spectrum.Spectrum, cfg BaselineCorrection) (spectrum.Spectrum, error) {
	switch cfg.Method {
	case BaselineALS:
		return s.Clone(), nil
	case BaselinePolynomial:
		return subtractPolynomialBaseline(s, cfg.degree())
	default:
		return nil, fmt.Errorf("%w: unknown baseline method %q", ErrInvalidConfig, cfg.Method)
	}
}

// Baseline returns the fitted polynomial baseline of s evaluated at every
// point index.
func Baseline(s spectrum.Spectrum, degree int) ([]float64, error) {
	xs := make([]float64, len(s))
	for i := range xs {
		xs[i] = float64(i)
	}

	coeffs, err := kernel.FitPolynomial(xs, s.Intensities(), degree)
	if err != nil {
		return nil, err
	}

	base := make([]float64, len(s))
	for i, x := range xs {
		base[i] = kernel.EvaluatePolynomial(coeffs, x)
	}
	return base, nil
}

func subtractPolynomialBaseline(s spectrum.Spectrum, degree int) (spectrum.Spectrum, error) {
	base, err := Baseline(s, degree)
	if err != nil {
		return nil, err
	}

	corrected := make([]float64, len(s))
	for i, p := range s {
		corrected[i] = max(p.Intensity-base[i], 0)
	}
	return s.WithIntensities(corrected), nil
}
