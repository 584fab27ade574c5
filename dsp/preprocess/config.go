package preprocess

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned when a preprocessing configuration cannot be
// applied.
var ErrInvalidConfig = errors.New("preprocess: invalid config")

const (
	// SmoothingIsMovingAverage reports that noise reduction is a centered
	// moving average rather than a Savitzky-Golay filter.
	SmoothingIsMovingAverage = true

	// ALSImplemented reports whether the "als" baseline method corrects
	// anything.
	ALSImplemented = false
)

// Defaults applied when the corresponding field is zero.
const (
	DefaultOutlierThreshold = 3.0
	DefaultBaselineDegree   = 2
)

// BaselineMethod selects the baseline estimator.
type BaselineMethod string

const (
	BaselinePolynomial BaselineMethod = "polynomial"
	BaselineALS        BaselineMethod = "als"
)

// NormalizationMethod selects the normalization divisor.
type NormalizationMethod string

const (
	NormalizeMax  NormalizationMethod = "max"
	NormalizeArea NormalizationMethod = "area"
)

// OutlierRemoval configures z-score outlier removal.
type OutlierRemoval struct {
	Enabled   bool    `json:"enabled"`
	Threshold float64 `json:"threshold"` // in standard deviations; 0 means DefaultOutlierThreshold
}

// NoiseReduction configures the moving-average smoother.
type NoiseReduction struct {
	WindowLength int `json:"window_length"` // odd, >= 3; even values are incremented
	// PolynomialOrder is accepted for Savitzky-Golay style configs and ignored.
	PolynomialOrder int `json:"polynomial_order"`
}

// BaselineCorrection configures baseline estimation and subtraction.
type BaselineCorrection struct {
	Method           BaselineMethod `json:"method"`
	PolynomialDegree int            `json:"polynomial_degree"` // 0 means DefaultBaselineDegree
	Lambda           float64        `json:"lambda,omitempty"`  // als only, unused
	P                float64        `json:"p,omitempty"`       // als only, unused
}

// Normalization configures intensity normalization.
type Normalization struct {
	Method NormalizationMethod `json:"method"`
}

// Config enables preprocessing stages. A nil stage is skipped.
type Config struct {
	OutlierRemoval     *OutlierRemoval     `json:"outlier_removal,omitempty"`
	NoiseReduction     *NoiseReduction     `json:"noise_reduction,omitempty"`
	BaselineCorrection *BaselineCorrection `json:"baseline_correction,omitempty"`
	Normalization      *Normalization      `json:"normalization,omitempty"`
}

// Validate reports the first unusable setting in c.
func (c Config) Validate() error {
	if o := c.OutlierRemoval; o != nil && o.Threshold < 0 {
		return fmt.Errorf("%w: outlier threshold must be >= 0: %g", ErrInvalidConfig, o.Threshold)
	}

	if n := c.NoiseReduction; n != nil {
		if n.WindowLength < 3 {
			return fmt.Errorf("%w: window length must be >= 3: %d", ErrInvalidConfig, n.WindowLength)
		}
		if n.PolynomialOrder < 0 {
			return fmt.Errorf("%w: polynomial order must be >= 0: %d", ErrInvalidConfig, n.PolynomialOrder)
		}
	}

	if b := c.BaselineCorrection; b != nil {
		switch b.Method {
		case BaselinePolynomial, BaselineALS:
		default:
			return fmt.Errorf("%w: unknown baseline method %q", ErrInvalidConfig, b.Method)
		}
		if b.PolynomialDegree < 0 {
			return fmt.Errorf("%w: polynomial degree must be >= 0: %d", ErrInvalidConfig, b.PolynomialDegree)
		}
	}

	if n := c.Normalization; n != nil {
		switch n.Method {
		case NormalizeMax, NormalizeArea:
		default:
			return fmt.Errorf("%w: unknown normalization method %q", ErrInvalidConfig, n.Method)
		}
	}

	return nil
}

func (o OutlierRemoval) threshold() float64 {
	if o.Threshold == 0 {
		return DefaultOutlierThreshold
	}
	return o.Threshold
}

func (b BaselineCorrection) degree() int {
	if b.PolynomialDegree == 0 {
		return DefaultBaselineDegree
	}
	return b.PolynomialDegree
}
