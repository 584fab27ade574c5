package preprocess

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-spectra/dsp/kernel"
	"github.com/cwbudde/algo-spectra/spectrum"
)

// Normalize divides every intensity by the maximum intensity (NormalizeMax)
// or by the trapezoidal area (NormalizeArea). A zero divisor leaves the
// intensities unchanged.
func Normalize(s spectrum.Spectrum, method NormalizationMethod) (spectrum.Spectrum, error) {
	if len(s) == 0 {
		return spectrum.Spectrum{}, nil
	}

	var divisor float64
	switch method {
	case NormalizeMax:
		divisor = floats.Max(s.Intensities())
	case NormalizeArea:
		divisor = kernel.Integrate(s)
	default:
		return nil, fmt.Errorf("%w: unknown normalization method %q", ErrInvalidConfig, method)
	}

	if divisor == 0 {
		return s.Clone(), nil
	}

	scaled := make([]float64, len(s))
	vecmath.ScaleBlock(scaled, s.Intensities(), 1/divisor)
	return s.WithIntensities(scaled), nil
}
