package compare

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-spectra/dsp/window"
)

// crossCorrelationLag returns the lag in samples, with sub-sample
// precision, at which a best matches b. A positive lag means a is b delayed
// towards higher indices. Both inputs must have the same length and are
// tapered with taper after the mean is removed.
func crossCorrelationLag(a, b []float64, taper window.Type, alpha float64) (float64, error) {
	a, b = removeMean(a), removeMean(b)
	window.Apply(taper, a, alpha)
	window.Apply(taper, b, alpha)

	r, err := correlate(a, b)
	if err != nil {
		return 0, err
	}

	m := len(b)
	k := 0
	for i := 1; i < len(r); i++ {
		if r[i] > r[k] {
			k = i
		}
	}

	lag := float64(k - (m - 1))
	if k > 0 && k < len(r)-1 {
		lag += parabolicOffset(r[k-1], r[k], r[k+1])
	}
	return lag, nil
}

// correlate returns the full linear cross-correlation of a and b,
// r[k] = sum_i a[i+k-(len(b)-1)] * b[i] for k in [0, len(a)+len(b)-1).
// The result is scaled by the inverse transform's normalization.
func correlate(a, b []float64) ([]float64, error) {
	n, m := len(a), len(b)
	size := nextPowerOf2(n + m - 1)

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("compare: failed to create FFT plan: %w", err)
	}

	aPadded := make([]complex128, size)
	bPadded := make([]complex128, size)
	for i, v := range a {
		aPadded[i] = complex(v, 0)
	}
	for i, v := range b {
		bPadded[i] = complex(v, 0)
	}

	aFreq := make([]complex128, size)
	bFreq := make([]complex128, size)
	if err := plan.Forward(aFreq, aPadded); err != nil {
		return nil, fmt.Errorf("compare: forward FFT failed: %w", err)
	}
	if err := plan.Forward(bFreq, bPadded); err != nil {
		return nil, fmt.Errorf("compare: forward FFT failed: %w", err)
	}

	for i := range aFreq {
		aFreq[i] *= complex(real(bFreq[i]), -imag(bFreq[i]))
	}

	circular := make([]complex128, size)
	if err := plan.Inverse(circular, aFreq); err != nil {
		return nil, fmt.Errorf("compare: inverse FFT failed: %w", err)
	}

	// Non-negative lags sit at the start of the circular result, negative
	// lags wrap around to the end.
	r := make([]float64, n+m-1)
	for i := 0; i < n; i++ {
		r[m-1+i] = real(circular[i])
	}
	for i := 0; i < m-1; i++ {
		r[i] = real(circular[size-m+1+i])
	}
	return r, nil
}

// parabolicOffset returns the vertex offset in (-0.5, 0.5) of the parabola
// through (-1, ym1), (0, y0), (1, yp1).
func parabolicOffset(ym1, y0, yp1 float64) float64 {
	den := ym1 - 2*y0 + yp1
	if den == 0 {
		return 0
	}
	d := 0.5 * (ym1 - yp1) / den
	if math.IsNaN(d) || math.Abs(d) > 0.5 {
		return 0
	}
	return d
}

func removeMean(x []float64) []float64 {
	out := append([]float64(nil), x...)
	floats.AddConst(-stat.Mean(x, nil), out)
	return out
}
