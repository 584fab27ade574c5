package peak_test

import (
	"fmt"

	"github.com/cwbudde/algo-spectra/dsp/peak"
	"github.com/cwbudde/algo-spectra/spectrum"
)

func ExampleDetect() {
	s := spectrum.Spectrum{
		{Wavelength: 500, Intensity: 0.1},
		{Wavelength: 502, Intensity: 0.3},
		{Wavelength: 504, Intensity: 0.9},
		{Wavelength: 506, Intensity: 0.3},
		{Wavelength: 508, Intensity: 0.1},
	}

	for _, p := range peak.Detect(s, peak.Params{Prominence: 0.1, MinHeight: 0.05}) {
		fmt.Printf("%.0f nm amp=%.1f fwhm=%.0f prominence=%.1f\n", p.Position, p.Amplitude, p.FWHM, p.Prominence)
	}

	// Output:
	// 504 nm amp=0.9 fwhm=4 prominence=0.6
}
