package analysis

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/cwbudde/algo-spectra/dsp/fit"
	"github.com/cwbudde/algo-spectra/dsp/peak"
	"github.com/cwbudde/algo-spectra/dsp/preprocess"
	"github.com/cwbudde/algo-spectra/spectrum"
	"github.com/cwbudde/algo-spectra/stats/intensity"
)

// Outcome distinguishes a fitted analysis from one without peaks.
type Outcome string

const (
	OutcomeFitted  Outcome = "fitted"
	OutcomeNoPeaks Outcome = "no_peaks"
)

// Result is the output of one analysis run.
type Result struct {
	Processed  spectrum.Spectrum    `json:"processed"`
	Peaks      []peak.Peak          `json:"peaks"`
	Fitting    *fit.Result          `json:"fitting,omitempty"` // nil unless Outcome is OutcomeFitted
	Statistics intensity.Statistics `json:"statistics"`
	Outcome    Outcome              `json:"outcome"`
}

// Analyzer runs analyses. The zero value is not usable; construct with
// [New].
type Analyzer struct {
	log         *zap.Logger
	concurrency int
}

// Option configures an [Analyzer].
type Option func(*Analyzer)

// WithLogger sets the logger that receives per-stage debug lines.
func WithLogger(log *zap.Logger) Option {
	return func(a *Analyzer) {
		if log != nil {
			a.log = log
		}
	}
}

// WithConcurrency limits how many samples AnalyzeBatch processes at once.
// Values <= 0 start one goroutine per sample.
func WithConcurrency(n int) Option {
	return func(a *Analyzer) {
		a.concurrency = n
	}
}

// New returns an Analyzer with a no-op logger.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{log: zap.NewNop()}
	for _, opt := range opts {
		if opt != nil {
			opt(a)
		}
	}
	return a
}

// Analyze runs a default [Analyzer] on raw.
func Analyze(raw spectrum.Spectrum, cfg Config) (Result, error) {
	return New().Analyze(raw, cfg)
}

// Analyze preprocesses raw, detects peaks on the processed spectrum, fits
// them when there are any and computes statistics of the processed
// spectrum.
func (a *Analyzer) Analyze(raw spectrum.Spectrum, cfg Config) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	if err := raw.Validate(); err != nil {
		return Result{}, err
	}

	start := time.Now()
	log := a.log.With(zap.Int("points", len(raw)))

	processed, err := preprocess.ApplyTrace(raw, cfg.Preprocessing, func(stage string, out spectrum.Spectrum) {
		log.Debug("preprocessing stage done", zap.String("stage", stage), zap.Int("points_out", len(out)))
	})
	if err != nil {
		return Result{}, fmt.Errorf("preprocessing: %w", err)
	}

	peaks := peak.Detect(processed, cfg.Detection)
	log.Debug("peaks detected", zap.Int("count", len(peaks)))

	res := Result{
		Processed: processed,
		Peaks:     peaks,
		Outcome:   OutcomeNoPeaks,
	}

	if len(peaks) > 0 {
		fitted, err := fit.Fit(processed, peaks, cfg.Model)
		if err != nil {
			return Result{}, fmt.Errorf("fitting: %w", err)
		}
		res.Fitting = &fitted
		res.Outcome = OutcomeFitted
		log.Debug("curve fitted",
			zap.Stringer("model", cfg.Model),
			zap.Stringer("profile", fitted.Profile),
			zap.Float64("r_squared", fitted.RSquared),
			zap.Float64("rmse", fitted.RMSE),
		)
	} else {
		log.Debug("fitting skipped, no peaks")
	}

	res.Statistics = intensity.Calculate(processed)

	log.Debug("analysis done", zap.String("outcome", string(res.Outcome)), zap.Duration("elapsed", time.Since(start)))
	return res, nil
}
