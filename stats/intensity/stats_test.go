package intensity

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-spectra/spectrum"
)

const tolerance = 1e-12

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestCalculate_Empty(t *testing.T) {
	got := Calculate(nil)
	if got != (Statistics{}) {
		t.Fatalf("Calculate(nil) = %+v, want zero value", got)
	}

	got = Calculate(spectrum.Spectrum{})
	if got != (Statistics{}) {
		t.Fatalf("Calculate(empty) = %+v, want zero value", got)
	}
}

func TestCalculate_SinglePoint(t *testing.T) {
	got := Calculate(spectrum.Spectrum{{Wavelength: 600, Intensity: 4}})

	want := Statistics{Points: 1, Mean: 4, Std: 0, Max: 4, Min: 4, TotalArea: 0}
	if got != want {
		t.Fatalf("Calculate() = %+v, want %+v", got, want)
	}
}

func TestCalculate_Known(t *testing.T) {
	s := spectrum.Spectrum{
		{Wavelength: 500, Intensity: 0.1},
		{Wavelength: 502, Intensity: 0.3},
		{Wavelength: 504, Intensity: 0.9},
		{Wavelength: 506, Intensity: 0.3},
		{Wavelength: 508, Intensity: 0.1},
	}
	got := Calculate(s)

	if got.Points != 5 {
		t.Errorf("Points: got %d, want 5", got.Points)
	}
	if !almostEqual(got.Mean, 0.34, tolerance) {
		t.Errorf("Mean: got %g, want 0.34", got.Mean)
	}
	// Population variance: (0.0576*2 + 0.0016*2 + 0.3136) / 5 = 0.0864.
	if !almostEqual(got.Std, math.Sqrt(0.0864), 1e-12) {
		t.Errorf("Std: got %g, want %g", got.Std, math.Sqrt(0.0864))
	}
	if got.Max != 0.9 || got.Min != 0.1 {
		t.Errorf("Max/Min: got %g/%g, want 0.9/0.1", got.Max, got.Min)
	}
	// 2 * (0.2 + 0.6 + 0.6 + 0.2) = 3.2.
	if !almostEqual(got.TotalArea, 3.2, 1e-12) {
		t.Errorf("TotalArea: got %g, want 3.2", got.TotalArea)
	}
}

func TestMeanStd(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		wantMean float64
		wantStd  float64
	}{
		{name: "empty", values: nil},
		{name: "constant", values: []float64{2, 2, 2, 2}, wantMean: 2},
		{name: "pair", values: []float64{1, 3}, wantMean: 2, wantStd: 1},
		{name: "population", values: []float64{2, 4, 4, 4, 5, 5, 7, 9}, wantMean: 5, wantStd: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mean, std := MeanStd(tt.values)
			if !almostEqual(mean, tt.wantMean, tolerance) {
				t.Fatalf("mean = %v, want %v", mean, tt.wantMean)
			}
			if !almostEqual(std, tt.wantStd, 1e-9) {
				t.Fatalf("std = %v, want %v", std, tt.wantStd)
			}
		})
	}
}

func TestCalculate_DoesNotMutate(t *testing.T) {
	s := spectrum.Spectrum{{Wavelength: 1, Intensity: 3}, {Wavelength: 2, Intensity: 1}}
	before := s.Clone()

	_ = Calculate(s)

	for i := range s {
		if s[i] != before[i] {
			t.Fatalf("point %d changed: %+v -> %+v", i, before[i], s[i])
		}
	}
}
