package compare

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-spectra/dsp/interp"
	"github.com/cwbudde/algo-spectra/dsp/kernel"
	"github.com/cwbudde/algo-spectra/dsp/window"
	"github.com/cwbudde/algo-spectra/spectrum"
)

// Options controls resampling.
type Options struct {
	// Points is the size of the shared grid. Zero selects the next power
	// of two at or above the longer input.
	Points int
	// Interpolation selects how inputs are evaluated on the shared grid.
	Interpolation interp.Mode
	// Taper weights both resampled spectra before cross-correlation.
	// The zero value leaves them unweighted.
	Taper window.Type
	// TaperAlpha is the tapered fraction of a Tukey taper.
	TaperAlpha float64
}

// Result describes the change from before to after.
type Result struct {
	// Overlap is the shared wavelength range [Overlap[0], Overlap[1]].
	Overlap [2]float64 `json:"overlap"`
	// Step is the spacing of the shared grid in nm.
	Step float64 `json:"step"`
	// Shift is the wavelength offset of after relative to before in nm.
	Shift float64 `json:"shift"`
	// Correlation is the Pearson correlation at zero lag.
	Correlation float64 `json:"correlation"`
	// IntensityRatio is max(after) / max(before); 0 when max(before) is 0.
	IntensityRatio float64 `json:"intensity_ratio"`
	// AreaRatio is area(after) / area(before); 0 when area(before) is 0.
	AreaRatio float64 `json:"area_ratio"`
	// CentroidShift is the difference of intensity-weighted mean
	// wavelengths, after minus before.
	CentroidShift float64 `json:"centroid_shift"`
}

// Compare resamples before and after onto a shared grid and measures the
// change between them.
func Compare(before, after spectrum.Spectrum, opts Options) (Result, error) {
	if len(before) < 2 || len(after) < 2 {
		return Result{}, fmt.Errorf("%w: comparison needs at least 2 points per spectrum", spectrum.ErrInvalidInput)
	}
	if err := before.Validate(); err != nil {
		return Result{}, fmt.Errorf("before: %w", err)
	}
	if err := after.Validate(); err != nil {
		return Result{}, fmt.Errorf("after: %w", err)
	}

	bLo, bHi := before.Range()
	aLo, aHi := after.Range()
	lo, hi := max(bLo, aLo), min(bHi, aHi)
	if hi <= lo {
		return Result{}, fmt.Errorf("%w: spectra do not overlap", spectrum.ErrInvalidInput)
	}

	n := opts.Points
	if n <= 0 {
		n = nextPowerOf2(max(len(before), len(after)))
	}
	n = max(n, 2)

	b := interp.Uniform(before, lo, hi, n, opts.Interpolation)
	a := interp.Uniform(after, lo, hi, n, opts.Interpolation)
	step := (hi - lo) / float64(n-1)

	bi, ai := b.Intensities(), a.Intensities()

	lag, err := crossCorrelationLag(ai, bi, opts.Taper, opts.TaperAlpha)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		Overlap:        [2]float64{lo, hi},
		Step:           step,
		Shift:          lag * step,
		Correlation:    pearson(ai, bi),
		IntensityRatio: ratio(floats.Max(ai), floats.Max(bi)),
		AreaRatio:      ratio(kernel.Integrate(a), kernel.Integrate(b)),
		CentroidShift:  centroid(a) - centroid(b),
	}
	return res, nil
}

func pearson(x, y []float64) float64 {
	_, sx := stat.PopMeanStdDev(x, nil)
	_, sy := stat.PopMeanStdDev(y, nil)
	if sx == 0 || sy == 0 {
		return 0
	}
	return stat.Correlation(x, y, nil)
}

func ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}

// centroid returns the intensity-weighted mean wavelength of s, or the
// midpoint of its range when the total intensity is zero.
func centroid(s spectrum.Spectrum) float64 {
	var sw, swx float64
	for _, p := range s {
		sw += p.Intensity
		swx += p.Intensity * p.Wavelength
	}
	if sw == 0 {
		lo, hi := s.Range()
		return (lo + hi) / 2
	}
	return swx / sw
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
