package preprocess

import (
	"math"

	"github.com/cwbudde/algo-spectra/spectrum"
	"github.com/cwbudde/algo-spectra/stats/intensity"
)

// RemoveOutliers keeps the points whose intensity lies within threshold
// population standard deviations of the mean. The result is an ordered
// subsequence of s. If all intensities are equal, s is returned as a copy.
func RemoveOutliers(s spectrum.Spectrum, threshold float64) spectrum.Spectrum {
	if len(s) == 0 {
		return spectrum.Spectrum{}
	}

	mean, std := intensity.MeanStd(s.Intensities())
	if std == 0 {
		return s.Clone()
	}

	limit := threshold * std
	out := make(spectrum.Spectrum, 0, len(s))
	for _, p := range s {
		if math.Abs(p.Intensity-mean) <= limit {
			out = append(out, p)
		}
	}
	return out
}
