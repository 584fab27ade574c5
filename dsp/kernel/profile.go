package kernel

import "math"

// FWHMToSigma converts a Gaussian full width at half maximum to its standard
// deviation: sigma = FWHM / (2*sqrt(2*ln 2)), rounded to the customary 2.355.
const FWHMToSigma = 2.355

// Gaussian evaluates amplitude * exp(-(x-center)^2 / (2*sigma^2)).
// A zero sigma yields 0 everywhere.
func Gaussian(x, amplitude, center, sigma float64) float64 {
	if sigma == 0 {
		return 0
	}
	d := x - center
	return amplitude * math.Exp(-(d*d)/(2*sigma*sigma))
}

// Lorentzian evaluates amplitude / (1 + ((x-center)/halfWidth)^2).
// A zero halfWidth yields 0 everywhere, matching [Gaussian].
func Lorentzian(x, amplitude, center, halfWidth float64) float64 {
	if halfWidth == 0 {
		return 0
	}
	u := (x - center) / halfWidth
	return amplitude / (1 + u*u)
}
