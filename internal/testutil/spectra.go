// Package testutil builds deterministic synthetic spectra for tests.
package testutil

import (
	"math"
	"math/rand"

	"github.com/cwbudde/algo-spectra/spectrum"
)

// Line describes a Gaussian emission line.
type Line struct {
	Center    float64
	Amplitude float64
	FWHM      float64
}

// Grid returns n wavelengths starting at start with the given step.
func Grid(start, step float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = start + step*float64(i)
	}
	return out
}

// Emission returns a spectrum on grid whose intensities are the sum of the
// given Gaussian lines.
func Emission(grid []float64, lines ...Line) spectrum.Spectrum {
	out := make(spectrum.Spectrum, len(grid))
	for i, x := range grid {
		var y float64
		for _, l := range lines {
			sigma := l.FWHM / (2 * math.Sqrt(2*math.Ln2))
			d := x - l.Center
			y += l.Amplitude * math.Exp(-(d*d)/(2*sigma*sigma))
		}
		out[i] = spectrum.Point{Wavelength: x, Intensity: y}
	}
	return out
}

// AddPolynomial returns s with sum coeffs[k]*i^k added at point index i.
func AddPolynomial(s spectrum.Spectrum, coeffs ...float64) spectrum.Spectrum {
	out := s.Clone()
	for i := range out {
		x := float64(i)
		p := 1.0
		for _, c := range coeffs {
			out[i].Intensity += c * p
			p *= x
		}
	}
	return out
}

// AddNoise returns s with uniform noise in [-amplitude, amplitude] drawn from
// a fixed seed.
func AddNoise(s spectrum.Spectrum, seed int64, amplitude float64) spectrum.Spectrum {
	rng := rand.New(rand.NewSource(seed))
	out := s.Clone()
	for i := range out {
		out[i].Intensity += (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Constant returns n points on a unit grid from start, all at value.
func Constant(start float64, n int, value float64) spectrum.Spectrum {
	out := make(spectrum.Spectrum, n)
	for i := range out {
		out[i] = spectrum.Point{Wavelength: start + float64(i), Intensity: value}
	}
	return out
}

// Reference is the five-point emission spectrum used across the package
// tests: a single line at 504 nm.
func Reference() spectrum.Spectrum {
	return spectrum.Spectrum{
		{Wavelength: 500, Intensity: 0.1},
		{Wavelength: 502, Intensity: 0.3},
		{Wavelength: 504, Intensity: 0.9},
		{Wavelength: 506, Intensity: 0.3},
		{Wavelength: 508, Intensity: 0.1},
	}
}
