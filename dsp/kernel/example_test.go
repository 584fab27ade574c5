package kernel_test

import (
	"fmt"

	"github.com/cwbudde/algo-spectra/dsp/kernel"
	"github.com/cwbudde/algo-spectra/spectrum"
)

func ExampleIntegrate() {
	s := spectrum.Spectrum{
		{Wavelength: 500, Intensity: 0},
		{Wavelength: 502, Intensity: 1},
		{Wavelength: 504, Intensity: 0},
	}
	fmt.Printf("%.1f\n", kernel.Integrate(s))

	// Output:
	// 2.0
}

func ExampleFitPolynomial() {
	xs := []float64{0, 1, 2, 3}
	ys := []float64{1, 3, 5, 7}

	coeffs, err := kernel.FitPolynomial(xs, ys, 1)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%.2f %.2f\n", coeffs[0], coeffs[1])
	fmt.Printf("%.2f\n", kernel.EvaluatePolynomial(coeffs, 10))

	// Output:
	// 1.00 2.00
	// 21.00
}
