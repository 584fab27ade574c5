package window

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-vecmath"
)

// ErrUnknownType is returned by [Parse] for unrecognized names.
var ErrUnknownType = errors.New("window: unknown type")

// Type identifies a taper.
type Type int

const (
	TypeRectangular Type = iota
	TypeHann
	TypeBlackman
	TypeTukey
	TypeWelch
)

// DefaultTukeyAlpha is the tapered fraction used when a Tukey window is
// requested with alpha 0.
const DefaultTukeyAlpha = 0.25

var names = map[Type]string{
	TypeRectangular: "rectangular",
	TypeHann:        "hann",
	TypeBlackman:    "blackman",
	TypeTukey:       "tukey",
	TypeWelch:       "welch",
}

var (
	hannCoeffs     = []float64{0.5, -0.5}
	blackmanCoeffs = []float64{0.42, -0.5, 0.08}
)

func (t Type) String() string {
	if n, ok := names[t]; ok {
		return n
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// Parse returns the type named s. The empty string and "none" select
// [TypeRectangular].
func Parse(s string) (Type, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == "none" {
		return TypeRectangular, nil
	}
	for t, n := range names {
		if n == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownType, s)
}

// Generate returns the symmetric coefficients of t with the given length.
// alpha is the tapered fraction of a Tukey window and is ignored otherwise.
func Generate(t Type, length int, alpha float64) []float64 {
	if length <= 0 {
		return nil
	}

	out := make([]float64, length)
	for i := range out {
		out[i] = at(t, position(i, length), alpha)
	}
	return out
}

// Apply multiplies buf in place by t.
func Apply(t Type, buf []float64, alpha float64) {
	if len(buf) == 0 || t == TypeRectangular {
		return
	}
	vecmath.MulBlockInPlace(buf, Generate(t, len(buf), alpha))
}

func at(t Type, x, alpha float64) float64 {
	switch t {
	case TypeHann:
		return cosineSum(x, hannCoeffs)
	case TypeBlackman:
		return cosineSum(x, blackmanCoeffs)
	case TypeTukey:
		if alpha == 0 {
			alpha = DefaultTukeyAlpha
		}
		return tukey(x, alpha)
	case TypeWelch:
		d := x - 0.5
		return 1 - 4*d*d
	default:
		return 1
	}
}

func tukey(x, alpha float64) float64 {
	if alpha >= 1 {
		return cosineSum(x, hannCoeffs)
	}

	a := alpha / 2
	switch {
	case x < a:
		return 0.5 * (1 + math.Cos(math.Pi*(2*x/alpha-1)))
	case x <= 1-a:
		return 1
	default:
		return 0.5 * (1 + math.Cos(math.Pi*(2*x/alpha-2/alpha+1)))
	}
}

func cosineSum(x float64, coeffs []float64) float64 {
	phase := 2 * math.Pi * x

	sum := 0.0
	for k, c := range coeffs {
		sum += c * math.Cos(float64(k)*phase)
	}
	return sum
}

// position maps sample n of size to [0, 1].
func position(n, size int) float64 {
	if size <= 1 {
		return 0.5
	}
	return float64(n) / float64(size-1)
}
