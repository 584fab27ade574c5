package testutil

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-spectra/spectrum"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t testing.TB, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if diff := math.Abs(got[i] - want[i]); diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireSameGrid fails t unless got has exactly the wavelengths of want.
func RequireSameGrid(t testing.TB, got, want spectrum.Spectrum) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d points, want %d", len(got), len(want))
	}
	for i := range got {
		if got[i].Wavelength != want[i].Wavelength {
			t.Fatalf("point %d: wavelength %v, want %v", i, got[i].Wavelength, want[i].Wavelength)
		}
	}
}

// RequireFinite fails t if any intensity is NaN or Inf.
func RequireFinite(t testing.TB, s spectrum.Spectrum) {
	t.Helper()
	for i, p := range s {
		if math.IsNaN(p.Intensity) || math.IsInf(p.Intensity, 0) {
			t.Fatalf("point %d: non-finite intensity %v", i, p.Intensity)
		}
	}
}
