package fit

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-spectra/dsp/kernel"
	"github.com/cwbudde/algo-spectra/dsp/peak"
	"github.com/cwbudde/algo-spectra/spectrum"
)

// Result holds a synthesized curve and its goodness of fit.
type Result struct {
	// Model is the requested model.
	Model Model `json:"model"`
	// Profile is the model that was evaluated.
	Profile  Model             `json:"profile"`
	Peaks    []peak.Peak       `json:"peaks"`
	RSquared float64           `json:"r_squared"`
	RMSE     float64           `json:"rmse"`
	Fitted   spectrum.Spectrum `json:"fitted"`
}

// Fit synthesizes the model curve for peaks on the grid of s and scores it
// against the intensities of s.
func Fit(s spectrum.Spectrum, peaks []peak.Peak, model Model) (Result, error) {
	if len(s) == 0 {
		return Result{}, fmt.Errorf("%w: cannot fit an empty spectrum", spectrum.ErrInvalidInput)
	}

	fitted, err := Synthesize(s, peaks, model)
	if err != nil {
		return Result{}, err
	}

	observed := s.Intensities()
	predicted := fitted.Intensities()

	r2, err := RSquared(observed, predicted)
	if err != nil {
		return Result{}, err
	}
	rmse, err := RMSE(observed, predicted)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Model:    model,
		Profile:  model.Profile(),
		Peaks:    append([]peak.Peak(nil), peaks...),
		RSquared: r2,
		RMSE:     rmse,
		Fitted:   fitted,
	}, nil
}

// Synthesize returns a spectrum on the wavelength grid of s whose
// intensities are the sum of one model profile per peak.
//
// Gaussian profiles use σ = FWHM/2.355; Lorentzian profiles use a
// half-width of FWHM/2.
func Synthesize(s spectrum.Spectrum, peaks []peak.Peak, model Model) (spectrum.Spectrum, error) {
	if err := model.Validate(); err != nil {
		return nil, err
	}

	xs := s.Wavelengths()
	sum := make([]float64, len(xs))
	contrib := make([]float64, len(xs))

	for _, p := range peaks {
		profile(contrib, xs, p, model.Profile())
		vecmath.AddBlockInPlace(sum, contrib)
	}

	return s.WithIntensities(sum), nil
}

func profile(dst, xs []float64, p peak.Peak, model Model) {
	switch model {
	case Lorentzian:
		hw := p.FWHM / 2
		for i, x := range xs {
			dst[i] = kernel.Lorentzian(x, p.Amplitude, p.Position, hw)
		}
	default:
		sigma := p.FWHM / kernel.FWHMToSigma
		for i, x := range xs {
			dst[i] = kernel.Gaussian(x, p.Amplitude, p.Position, sigma)
		}
	}
}
