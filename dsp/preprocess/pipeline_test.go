package preprocess

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-spectra/internal/testutil"
	"github.com/cwbudde/algo-spectra/spectrum"
)

func TestApply_EmptyConfigReturnsCopy(t *testing.T) {
	s := testutil.Reference()

	out, err := Apply(s, Config{})
	if err != nil {
		t.Fatalf("Apply error: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, out.Intensities(), s.Intensities(), 0)

	out[0].Intensity = 42
	if s[0].Intensity == 42 {
		t.Fatal("Apply must not alias its input")
	}
}

func TestApply_EmptyInput(t *testing.T) {
	_, err := Apply(nil, Config{})
	if !errors.Is(err, spectrum.ErrInvalidInput) {
		t.Fatalf("error = %v, want ErrInvalidInput", err)
	}
}

func TestApply_StageOrder(t *testing.T) {
	s := testutil.AddNoise(testutil.AddPolynomial(
		testutil.Emission(testutil.Grid(500, 1, 100), testutil.Line{Center: 550, Amplitude: 3, FWHM: 12}),
		0.5, 0.001), 9, 0.05)
	s[20].Intensity = 40

	cfg := Config{
		OutlierRemoval:     &OutlierRemoval{Enabled: true},
		NoiseReduction:     &NoiseReduction{WindowLength: 5, PolynomialOrder: 2},
		BaselineCorrection: &BaselineCorrection{Method: BaselinePolynomial, PolynomialDegree: 1},
		Normalization:      &Normalization{Method: NormalizeMax},
	}

	var stages []string
	out, err := ApplyTrace(s, cfg, func(stage string, _ spectrum.Spectrum) {
		stages = append(stages, stage)
	})
	if err != nil {
		t.Fatalf("ApplyTrace error: %v", err)
	}

	want := []string{StageOutlierRemoval, StageNoiseReduction, StageBaselineCorrection, StageNormalization}
	if len(stages) != len(want) {
		t.Fatalf("stages = %v, want %v", stages, want)
	}
	for i := range want {
		if stages[i] != want[i] {
			t.Fatalf("stage %d = %s, want %s", i, stages[i], want[i])
		}
	}

	if len(out) != len(s)-1 {
		t.Fatalf("len = %d, want %d (spike removed)", len(out), len(s)-1)
	}

	// Manual composition must agree with the pipeline.
	manual := RemoveOutliers(s, DefaultOutlierThreshold)
	manual = Smooth(manual, 5)
	manual, err = CorrectBaseline(manual, *cfg.BaselineCorrection)
	if err != nil {
		t.Fatal(err)
	}
	manual, err = Normalize(manual, NormalizeMax)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, out.Intensities(), manual.Intensities(), 0)
}

func TestApply_OutlierRemovalEmptiesSpectrum(t *testing.T) {
	s := spectrum.Spectrum{
		{Wavelength: 500, Intensity: 0},
		{Wavelength: 502, Intensity: 10},
		{Wavelength: 504, Intensity: 0},
		{Wavelength: 506, Intensity: 10},
	}

	var stages []string
	out, err := ApplyTrace(s, Config{
		OutlierRemoval: &OutlierRemoval{Enabled: true, Threshold: 0.5},
		Normalization:  &Normalization{Method: NormalizeMax},
	}, func(stage string, _ spectrum.Spectrum) {
		stages = append(stages, stage)
	})
	if !errors.Is(err, spectrum.ErrInvalidInput) {
		t.Fatalf("error = %v, want ErrInvalidInput", err)
	}
	if out != nil {
		t.Fatalf("out = %v, want nil", out)
	}
	if len(stages) != 1 || stages[0] != StageOutlierRemoval {
		t.Fatalf("stages = %v, want only %s", stages, StageOutlierRemoval)
	}
}

func TestApply_DisabledOutlierRemovalSkipped(t *testing.T) {
	s := testutil.Constant(0, 10, 1)
	s[5].Intensity = 100

	out, err := Apply(s, Config{OutlierRemoval: &OutlierRemoval{Enabled: false, Threshold: 1}})
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != len(s) {
		t.Fatalf("disabled stage removed points: %d of %d", len(out), len(s))
	}
}

func TestApply_PolynomialOrderDoesNotChangeSmoothing(t *testing.T) {
	s := testutil.AddNoise(testutil.Constant(0, 50, 1), 1, 0.3)

	a, err := Apply(s, Config{NoiseReduction: &NoiseReduction{WindowLength: 7, PolynomialOrder: 2}})
	if err != nil {
		t.Fatal(err)
	}
	b, err := Apply(s, Config{NoiseReduction: &NoiseReduction{WindowLength: 7, PolynomialOrder: 5}})
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, a.Intensities(), b.Intensities(), 0)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "empty", cfg: Config{}},
		{name: "full", cfg: Config{
			OutlierRemoval:     &OutlierRemoval{Enabled: true, Threshold: 2.5},
			NoiseReduction:     &NoiseReduction{WindowLength: 5},
			BaselineCorrection: &BaselineCorrection{Method: BaselineALS},
			Normalization:      &Normalization{Method: NormalizeArea},
		}},
		{name: "negative threshold", cfg: Config{OutlierRemoval: &OutlierRemoval{Threshold: -1}}, wantErr: true},
		{name: "short window", cfg: Config{NoiseReduction: &NoiseReduction{WindowLength: 1}}, wantErr: true},
		{name: "negative order", cfg: Config{NoiseReduction: &NoiseReduction{WindowLength: 3, PolynomialOrder: -1}}, wantErr: true},
		{name: "unknown baseline", cfg: Config{BaselineCorrection: &BaselineCorrection{Method: "rolling"}}, wantErr: true},
		{name: "negative degree", cfg: Config{BaselineCorrection: &BaselineCorrection{Method: BaselinePolynomial, PolynomialDegree: -2}}, wantErr: true},
		{name: "unknown normalization", cfg: Config{Normalization: &Normalization{Method: "l2"}}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr && !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("Validate() = %v, want ErrInvalidConfig", err)
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("Validate() = %v, want nil", err)
			}
		})
	}
}
