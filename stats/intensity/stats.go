// Package intensity summarizes the intensity column of a spectrum.
package intensity

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-spectra/dsp/kernel"
	"github.com/cwbudde/algo-spectra/spectrum"
)

// Statistics holds summary statistics of a spectrum.
type Statistics struct {
	Points    int     `json:"points"`
	Mean      float64 `json:"mean_intensity"`
	Std       float64 `json:"std_intensity"` // population standard deviation
	Max       float64 `json:"max_intensity"`
	Min       float64 `json:"min_intensity"`
	TotalArea float64 `json:"total_area"` // trapezoidal, over wavelength
}

// Calculate computes the statistics of s. An empty spectrum yields the zero
// Statistics; there is nothing to summarize and no error is reported.
func Calculate(s spectrum.Spectrum) Statistics {
	if len(s) == 0 {
		return Statistics{}
	}

	values := s.Intensities()
	mean, std := MeanStd(values)

	return Statistics{
		Points:    len(s),
		Mean:      mean,
		Std:       std,
		Max:       floats.Max(values),
		Min:       floats.Min(values),
		TotalArea: kernel.Integrate(s),
	}
}

// MeanStd returns the mean and population standard deviation of values.
// Both are 0 for an empty slice.
func MeanStd(values []float64) (mean, std float64) {
	if len(values) == 0 {
		return 0, 0
	}

	mean, variance := stat.PopMeanVariance(values, nil)
	if variance < 0 {
		// Rounding on constant input.
		variance = 0
	}
	return mean, math.Sqrt(variance)
}
