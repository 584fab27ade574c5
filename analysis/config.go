package analysis

import (
	"fmt"

	"github.com/cwbudde/algo-spectra/dsp/fit"
	"github.com/cwbudde/algo-spectra/dsp/peak"
	"github.com/cwbudde/algo-spectra/dsp/preprocess"
)

// Config bundles everything an analysis run needs.
type Config struct {
	Preprocessing preprocess.Config `json:"preprocessing"`
	Detection     peak.Params       `json:"detection"`
	Model         fit.Model         `json:"model"`
}

// DefaultConfig returns a Gaussian fit with no preprocessing and the
// detection thresholds used for normalized spectra.
func DefaultConfig() Config {
	return Config{
		Detection: peak.Params{Prominence: 0.1, MinHeight: 0.05},
		Model:     fit.Gaussian,
	}
}

// Validate reports the first invalid setting in c.
func (c Config) Validate() error {
	if err := c.Preprocessing.Validate(); err != nil {
		return err
	}
	if err := c.Model.Validate(); err != nil {
		return err
	}
	if c.Detection.Prominence < 0 {
		return fmt.Errorf("%w: prominence must be >= 0: %g", preprocess.ErrInvalidConfig, c.Detection.Prominence)
	}
	return nil
}
