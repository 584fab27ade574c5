package preprocess

import "github.com/cwbudde/algo-spectra/spectrum"

// Smooth replaces each intensity by the mean of the intensities within
// windowLength/2 points on either side. Windows are truncated at the edges;
// there is no padding or reflection. An even windowLength is incremented.
// Windows shorter than 2 leave the intensities unchanged.
func Smooth(s spectrum.Spectrum, windowLength int) spectrum.Spectrum {
	if windowLength%2 == 0 {
		windowLength++
	}
	half := windowLength / 2

	n := len(s)
	if n == 0 || half <= 0 {
		return s.Clone()
	}

	smoothed := make([]float64, n)
	for i := range smoothed {
		lo := max(0, i-half)
		hi := min(n-1, i+half)

		var sum float64
		for j := lo; j <= hi; j++ {
			sum += s[j].Intensity
		}
		smoothed[i] = sum / float64(hi-lo+1)
	}

	return s.WithIntensities(smoothed)
}
