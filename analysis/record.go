package analysis

import (
	"time"

	"github.com/google/uuid"

	"github.com/cwbudde/algo-spectra/dsp/fit"
	"github.com/cwbudde/algo-spectra/dsp/peak"
	"github.com/cwbudde/algo-spectra/stats/intensity"
)

// Record is the persisted form of an analysis. The processed spectrum is
// stored separately.
type Record struct {
	ID         uuid.UUID            `json:"id"`
	SampleID   string               `json:"sample_id"`
	CreatedAt  time.Time            `json:"created_at"`
	Config     Config               `json:"config"`
	Peaks      []peak.Peak          `json:"peaks"`
	Fitting    *fit.Result          `json:"fitting,omitempty"`
	Statistics intensity.Statistics `json:"statistics"`
	Outcome    Outcome              `json:"outcome"`
}

// NewRecord captures res for sampleID with a fresh id and a UTC timestamp.
func NewRecord(sampleID string, cfg Config, res Result) Record {
	return Record{
		ID:         uuid.New(),
		SampleID:   sampleID,
		CreatedAt:  time.Now().UTC(),
		Config:     cfg,
		Peaks:      res.Peaks,
		Fitting:    res.Fitting,
		Statistics: res.Statistics,
		Outcome:    res.Outcome,
	}
}
