package spectrum

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// ErrInvalidInput is returned when a spectrum is empty or too short for the
// requested operation.
var ErrInvalidInput = errors.New("spectrum: invalid input")

// Point is a single measurement.
type Point struct {
	Wavelength float64 `json:"wavelength"`
	Intensity  float64 `json:"intensity"`
}

// Spectrum is an ordered sequence of points, ascending by wavelength.
type Spectrum []Point

// FromXY builds a spectrum from parallel wavelength and intensity slices.
func FromXY(wavelengths, intensities []float64) (Spectrum, error) {
	if len(wavelengths) != len(intensities) {
		return nil, fmt.Errorf("%w: %d wavelengths, %d intensities",
			ErrInvalidInput, len(wavelengths), len(intensities))
	}

	out := make(Spectrum, len(wavelengths))
	for i := range wavelengths {
		out[i] = Point{Wavelength: wavelengths[i], Intensity: intensities[i]}
	}

	return out, nil
}

// Len returns the number of points.
func (s Spectrum) Len() int { return len(s) }

// Wavelengths returns a copy of the wavelength column.
func (s Spectrum) Wavelengths() []float64 {
	out := make([]float64, len(s))
	for i, p := range s {
		out[i] = p.Wavelength
	}
	return out
}

// Intensities returns a copy of the intensity column.
func (s Spectrum) Intensities() []float64 {
	out := make([]float64, len(s))
	for i, p := range s {
		out[i] = p.Intensity
	}
	return out
}

// Clone returns an independent copy of s.
func (s Spectrum) Clone() Spectrum {
	if s == nil {
		return nil
	}
	out := make(Spectrum, len(s))
	copy(out, s)
	return out
}

// WithIntensities returns a new spectrum on the wavelength grid of s carrying
// the given intensities. It panics if the lengths differ.
func (s Spectrum) WithIntensities(intensities []float64) Spectrum {
	if len(intensities) != len(s) {
		panic(fmt.Sprintf("spectrum: intensity length %d does not match %d points", len(intensities), len(s)))
	}
	out := make(Spectrum, len(s))
	for i, p := range s {
		out[i] = Point{Wavelength: p.Wavelength, Intensity: intensities[i]}
	}
	return out
}

// Range returns the smallest and largest wavelength. Both are 0 for an
// empty spectrum.
func (s Spectrum) Range() (lo, hi float64) {
	if len(s) == 0 {
		return 0, 0
	}
	lo, hi = s[0].Wavelength, s[0].Wavelength
	for _, p := range s[1:] {
		if p.Wavelength < lo {
			lo = p.Wavelength
		}
		if p.Wavelength > hi {
			hi = p.Wavelength
		}
	}
	return lo, hi
}

// IsSorted reports whether the points are in non-decreasing wavelength order.
func (s Spectrum) IsSorted() bool {
	for i := 1; i < len(s); i++ {
		if s[i].Wavelength < s[i-1].Wavelength {
			return false
		}
	}
	return true
}

// Sorted returns a copy of s in ascending wavelength order. Points with equal
// wavelengths keep their relative order.
func (s Spectrum) Sorted() Spectrum {
	out := s.Clone()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Wavelength < out[j].Wavelength
	})
	return out
}

// Validate checks that s is non-empty, finite and sorted.
func (s Spectrum) Validate() error {
	if len(s) == 0 {
		return fmt.Errorf("%w: empty spectrum", ErrInvalidInput)
	}
	for i, p := range s {
		if math.IsNaN(p.Wavelength) || math.IsInf(p.Wavelength, 0) {
			return fmt.Errorf("%w: point %d has non-finite wavelength", ErrInvalidInput, i)
		}
		if math.IsNaN(p.Intensity) || math.IsInf(p.Intensity, 0) {
			return fmt.Errorf("%w: point %d has non-finite intensity", ErrInvalidInput, i)
		}
	}
	if !s.IsSorted() {
		return fmt.Errorf("%w: wavelengths are not in ascending order", ErrInvalidInput)
	}
	return nil
}
