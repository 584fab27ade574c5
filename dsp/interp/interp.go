package interp

import (
	"fmt"
	"sort"

	"github.com/cwbudde/algo-spectra/spectrum"
)

// Mode selects the interpolation method.
type Mode int

const (
	Linear Mode = iota
	Hermite
)

func (m Mode) String() string {
	switch m {
	case Linear:
		return "linear"
	case Hermite:
		return "hermite"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// At returns the intensity of s at wavelength x. s must be sorted by
// wavelength and non-empty.
func At(s spectrum.Spectrum, x float64, mode Mode) float64 {
	n := len(s)
	if x <= s[0].Wavelength {
		return s[0].Intensity
	}
	if x >= s[n-1].Wavelength {
		return s[n-1].Intensity
	}

	// First index with wavelength > x; 1 <= j <= n-1.
	j := sort.Search(n, func(i int) bool { return s[i].Wavelength > x })
	i := j - 1

	x0, x1 := s[i].Wavelength, s[j].Wavelength
	if x1 == x0 {
		return s[j].Intensity
	}
	t := (x - x0) / (x1 - x0)

	if mode == Hermite && i > 0 && j < n-1 {
		return Hermite4(t, s[i-1].Intensity, s[i].Intensity, s[j].Intensity, s[j+1].Intensity)
	}
	return Linear2(t, s[i].Intensity, s[j].Intensity)
}

// Uniform resamples s onto n evenly spaced wavelengths from lo to hi
// inclusive. n < 2 yields a single point at lo.
func Uniform(s spectrum.Spectrum, lo, hi float64, n int, mode Mode) spectrum.Spectrum {
	if len(s) == 0 || n <= 0 {
		return spectrum.Spectrum{}
	}
	if n == 1 {
		return spectrum.Spectrum{{Wavelength: lo, Intensity: At(s, lo, mode)}}
	}

	step := (hi - lo) / float64(n-1)
	out := make(spectrum.Spectrum, n)
	for k := range out {
		x := lo + step*float64(k)
		if k == n-1 {
			x = hi
		}
		out[k] = spectrum.Point{Wavelength: x, Intensity: At(s, x, mode)}
	}
	return out
}

// Linear2 interpolates from x0 to x1 at fraction t in [0,1].
func Linear2(t, x0, x1 float64) float64 {
	return x0 + t*(x1-x0)
}

// Hermite4 computes cubic 4-point interpolation.
// It interpolates from x0 to x1 using neighbor points xm1 and x2.
func Hermite4(t, xm1, x0, x1, x2 float64) float64 {
	c0 := x0
	c1 := 0.5 * (x1 - xm1)
	c2 := xm1 - 2.5*x0 + 2*x1 - 0.5*x2
	c3 := 0.5*(x2-xm1) + 1.5*(x0-x1)
	return ((c3*t+c2)*t+c1)*t + c0
}
