package export

import (
	"github.com/cwbudde/algo-spectra/analysis"
	"github.com/cwbudde/algo-spectra/dsp/peak"
	"github.com/cwbudde/algo-spectra/spectrum"
	"github.com/cwbudde/algo-spectra/stats/intensity"
)

// Report is everything a workbook export needs about one sample.
type Report struct {
	SampleID   string
	Processed  spectrum.Spectrum
	Fitted     spectrum.Spectrum // optional, on the grid of Processed
	Peaks      []peak.Peak
	Statistics intensity.Statistics
	Model      string
	Profile    string
	RSquared   float64
	RMSE       float64
	Outcome    string
}

// NewReport builds a Report from an analysis result.
func NewReport(sampleID string, res analysis.Result) Report {
	r := Report{
		SampleID:   sampleID,
		Processed:  res.Processed,
		Peaks:      res.Peaks,
		Statistics: res.Statistics,
		Outcome:    string(res.Outcome),
	}
	if f := res.Fitting; f != nil {
		r.Fitted = f.Fitted
		r.Model = f.Model.String()
		r.Profile = f.Profile.String()
		r.RSquared = f.RSquared
		r.RMSE = f.RMSE
	}
	return r
}
