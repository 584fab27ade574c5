// Package spectrum defines the value types shared by the analysis packages.
//
// A [Spectrum] is an ordered sequence of (wavelength, intensity) points,
// sorted ascending by wavelength. Wavelengths need not be unique or uniformly
// spaced. Every processing stage in this module returns a new Spectrum and
// leaves its input untouched, so a Spectrum can be shared freely between
// goroutines as long as nobody writes to it.
package spectrum
