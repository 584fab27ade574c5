package interp

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-spectra/internal/testutil"
	"github.com/cwbudde/algo-spectra/spectrum"
)

func TestHermite4IdentityOnLinearRamp(t *testing.T) {
	xm1, x0, x1, x2 := -1.0, 0.0, 1.0, 2.0
	for _, tc := range []struct {
		t float64
		w float64
	}{
		{t: 0, w: 0},
		{t: 0.25, w: 0.25},
		{t: 0.5, w: 0.5},
		{t: 1, w: 1},
	} {
		if got := Hermite4(tc.t, xm1, x0, x1, x2); math.Abs(got-tc.w) > 1e-12 {
			t.Fatalf("t=%v: got=%v want=%v", tc.t, got, tc.w)
		}
	}
}

func TestAt(t *testing.T) {
	s := testutil.Reference()

	tests := []struct {
		name string
		x    float64
		mode Mode
		want float64
	}{
		{name: "below range", x: 490, mode: Linear, want: 0.1},
		{name: "above range", x: 600, mode: Hermite, want: 0.1},
		{name: "on sample", x: 504, mode: Linear, want: 0.9},
		{name: "midpoint", x: 503, mode: Linear, want: 0.6},
		{name: "quarter", x: 500.5, mode: Linear, want: 0.15},
		{name: "hermite edge falls back to linear", x: 501, mode: Hermite, want: 0.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := At(s, tt.x, tt.mode); math.Abs(got-tt.want) > 1e-12 {
				t.Fatalf("At(%v) = %v, want %v", tt.x, got, tt.want)
			}
		})
	}
}

func TestAt_DuplicateWavelength(t *testing.T) {
	s := spectrum.Spectrum{
		{Wavelength: 1, Intensity: 0},
		{Wavelength: 2, Intensity: 1},
		{Wavelength: 2, Intensity: 3},
		{Wavelength: 3, Intensity: 5},
	}
	if got := At(s, 2.5, Linear); math.Abs(got-4) > 1e-12 {
		t.Fatalf("At(2.5) = %v, want 4", got)
	}
}

func TestUniform_LinearRampIsExact(t *testing.T) {
	// Irregular grid sampling y = 2x + 1.
	xs := []float64{0, 0.3, 1.1, 1.2, 2.9, 4}
	s := make(spectrum.Spectrum, len(xs))
	for i, x := range xs {
		s[i] = spectrum.Point{Wavelength: x, Intensity: 2*x + 1}
	}

	out := Uniform(s, 0, 4, 9, Linear)
	if len(out) != 9 {
		t.Fatalf("len = %d, want 9", len(out))
	}
	for k, p := range out {
		if want := 0.5 * float64(k); math.Abs(p.Wavelength-want) > 1e-12 {
			t.Fatalf("wavelength %d = %v, want %v", k, p.Wavelength, want)
		}
		if want := 2*p.Wavelength + 1; math.Abs(p.Intensity-want) > 1e-12 {
			t.Fatalf("intensity at %v = %v, want %v", p.Wavelength, p.Intensity, want)
		}
	}
}

func TestUniform_HermiteTracksSmoothCurve(t *testing.T) {
	coarse := testutil.Emission(testutil.Grid(500, 1, 61), testutil.Line{Center: 530, Amplitude: 1, FWHM: 12})
	fine := testutil.Emission(testutil.Grid(510, 0.25, 81), testutil.Line{Center: 530, Amplitude: 1, FWHM: 12})

	lin := Uniform(coarse, 510, 530, 81, Linear)
	her := Uniform(coarse, 510, 530, 81, Hermite)

	var errLin, errHer float64
	for i := range fine {
		errLin = math.Max(errLin, math.Abs(lin[i].Intensity-fine[i].Intensity))
		errHer = math.Max(errHer, math.Abs(her[i].Intensity-fine[i].Intensity))
	}
	if errHer >= errLin {
		t.Fatalf("hermite error %v not below linear error %v", errHer, errLin)
	}
}

func TestUniform_Degenerate(t *testing.T) {
	if out := Uniform(nil, 0, 1, 4, Linear); len(out) != 0 {
		t.Fatalf("empty input gave %d points", len(out))
	}
	if out := Uniform(testutil.Reference(), 502, 506, 0, Linear); len(out) != 0 {
		t.Fatalf("n=0 gave %d points", len(out))
	}
	out := Uniform(testutil.Reference(), 502, 506, 1, Linear)
	if len(out) != 1 || out[0].Wavelength != 502 || out[0].Intensity != 0.3 {
		t.Fatalf("n=1 gave %+v", out)
	}
}
