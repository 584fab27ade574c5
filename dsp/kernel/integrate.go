package kernel

import "github.com/cwbudde/algo-spectra/spectrum"

// Integrate returns the trapezoidal area under s:
//
//	sum over i of (x[i+1]-x[i]) * (y[i]+y[i+1]) / 2
//
// Spectra with fewer than two points have zero area.
func Integrate(s spectrum.Spectrum) float64 {
	if len(s) < 2 {
		return 0
	}

	var area float64
	for i := 1; i < len(s); i++ {
		dx := s[i].Wavelength - s[i-1].Wavelength
		area += dx * (s[i].Intensity + s[i-1].Intensity) / 2
	}
	return area
}

// IntegrateXY is [Integrate] over parallel slices. Only the common prefix of
// xs and ys is used.
func IntegrateXY(xs, ys []float64) float64 {
	n := min(len(xs), len(ys))
	if n < 2 {
		return 0
	}

	var area float64
	for i := 1; i < n; i++ {
		area += (xs[i] - xs[i-1]) * (ys[i] + ys[i-1]) / 2
	}
	return area
}
