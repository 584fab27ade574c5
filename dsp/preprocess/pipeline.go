package preprocess

import (
	"fmt"

	"github.com/cwbudde/algo-spectra/spectrum"
)

// Stage names, in execution order.
const (
	StageOutlierRemoval     = "outlier_removal"
	StageNoiseReduction     = "noise_reduction"
	StageBaselineCorrection = "baseline_correction"
	StageNormalization      = "normalization"
)

// Apply runs the enabled stages of cfg over s in fixed order and returns the
// processed spectrum. s must not be empty.
func Apply(s spectrum.Spectrum, cfg Config) (spectrum.Spectrum, error) {
	return ApplyTrace(s, cfg, nil)
}

// ApplyTrace is [Apply] with a callback invoked after every stage that ran,
// receiving the stage name and its output.
func ApplyTrace(s spectrum.Spectrum, cfg Config, trace func(stage string, out spectrum.Spectrum)) (spectrum.Spectrum, error) {
	if len(s) == 0 {
		return nil, fmt.Errorf("%w: empty spectrum", spectrum.ErrInvalidInput)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// done reports a stage result and rejects stages that consumed every
	// point.
	done := func(stage string, out spectrum.Spectrum) error {
		if trace != nil {
			trace(stage, out)
		}
		if len(out) == 0 {
			return fmt.Errorf("%w: %s stage left no points", spectrum.ErrInvalidInput, stage)
		}
		return nil
	}

	out := s.Clone()

	if o := cfg.OutlierRemoval; o != nil && o.Enabled {
		out = RemoveOutliers(out, o.threshold())
		if err := done(StageOutlierRemoval, out); err != nil {
			return nil, err
		}
	}

	if n := cfg.NoiseReduction; n != nil {
		out = Smooth(out, n.WindowLength)
		if err := done(StageNoiseReduction, out); err != nil {
			return nil, err
		}
	}

	if b := cfg.BaselineCorrection; b != nil {
		corrected, err := CorrectBaseline(out, *b)
		if err != nil {
			return nil, fmt.Errorf("baseline correction: %w", err)
		}
		out = corrected
		if err := done(StageBaselineCorrection, out); err != nil {
			return nil, err
		}
	}

	if n := cfg.Normalization; n != nil {
		normalized, err := Normalize(out, n.Method)
		if err != nil {
			return nil, err
		}
		out = normalized
		if err := done(StageNormalization, out); err != nil {
			return nil, err
		}
	}

	return out, nil
}
