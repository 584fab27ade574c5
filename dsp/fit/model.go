package fit

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownModel is returned for a model name other than gaussian,
// lorentzian or voigt.
var ErrUnknownModel = errors.New("fit: unknown model")

// VoigtApproximated reports that [Voigt] is evaluated with the Gaussian
// profile.
const VoigtApproximated = true

// Model names a peak profile.
type Model string

const (
	Gaussian   Model = "gaussian"
	Lorentzian Model = "lorentzian"
	Voigt      Model = "voigt"
)

// ParseModel returns the model named by s, ignoring case and surrounding
// whitespace.
func ParseModel(s string) (Model, error) {
	m := Model(strings.ToLower(strings.TrimSpace(s)))
	if err := m.Validate(); err != nil {
		return "", err
	}
	return m, nil
}

// Validate reports whether m is a known model.
func (m Model) Validate() error {
	switch m {
	case Gaussian, Lorentzian, Voigt:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownModel, string(m))
	}
}

// Profile returns the model that is actually evaluated for m.
func (m Model) Profile() Model {
	if m == Voigt && VoigtApproximated {
		return Gaussian
	}
	return m
}

func (m Model) String() string { return string(m) }
