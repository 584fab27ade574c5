package kernel

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-spectra/spectrum"
)

var (
	// ErrSingularMatrix is returned when the normal equations of a
	// polynomial fit have no unique solution.
	ErrSingularMatrix = errors.New("kernel: singular matrix")
	// ErrLengthMismatch is returned when x and y samples differ in length.
	ErrLengthMismatch = errors.New("kernel: x and y length mismatch")
)

// pivotTolerance is relative to the largest magnitude in the pivot column
// of the original normal matrix.
const pivotTolerance = 1e-12

// FitPolynomial returns the least-squares polynomial of the given degree
// through (xs[i], ys[i]). Coefficients are in ascending power order, so the
// result has degree+1 entries and evaluates with [EvaluatePolynomial].
//
// The normal equations A*c = b with
//
//	A[r][c] = sum x^(r+c),  b[r] = sum y*x^r
//
// are solved by Gaussian elimination with partial pivoting. If a pivot
// vanishes relative to its column, or the solution is not finite,
// [ErrSingularMatrix] is returned.
func FitPolynomial(xs, ys []float64, degree int) ([]float64, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(xs), len(ys))
	}
	if len(xs) == 0 {
		return nil, fmt.Errorf("%w: no samples to fit", spectrum.ErrInvalidInput)
	}
	if degree < 0 {
		return nil, fmt.Errorf("%w: polynomial degree must be >= 0: %d", spectrum.ErrInvalidInput, degree)
	}

	a, b := normalEquations(xs, ys, degree)

	coeffs, err := solve(a, b)
	if err != nil {
		return nil, err
	}
	return coeffs, nil
}

// EvaluatePolynomial returns sum coeffs[i] * x^i.
func EvaluatePolynomial(coeffs []float64, x float64) float64 {
	var y float64
	for i := len(coeffs) - 1; i >= 0; i-- {
		y = y*x + coeffs[i]
	}
	return y
}

// normalEquations builds the (degree+1)x(degree+1) moment matrix and the
// right-hand side. Power sums are accumulated once per sample.
func normalEquations(xs, ys []float64, degree int) ([][]float64, []float64) {
	size := degree + 1

	// powerSums[k] = sum x^k for k in [0, 2*degree].
	powerSums := make([]float64, 2*degree+1)
	b := make([]float64, size)

	for i, x := range xs {
		p := 1.0
		for k := range powerSums {
			powerSums[k] += p
			if k < size {
				b[k] += ys[i] * p
			}
			p *= x
		}
	}

	a := make([][]float64, size)
	for r := range a {
		a[r] = make([]float64, size)
		for c := range a[r] {
			a[r][c] = powerSums[r+c]
		}
	}
	return a, b
}

// solve solves a*x = b in place using Gaussian elimination with partial
// pivoting. a and b are overwritten.
func solve(a [][]float64, b []float64) ([]float64, error) {
	n := len(b)

	colScale := make([]float64, n)
	for c := 0; c < n; c++ {
		for r := 0; r < n; r++ {
			colScale[c] = math.Max(colScale[c], math.Abs(a[r][c]))
		}
	}

	for col := 0; col < n; col++ {
		pivot := col
		maxAbs := math.Abs(a[col][col])
		for r := col + 1; r < n; r++ {
			if v := math.Abs(a[r][col]); v > maxAbs {
				maxAbs = v
				pivot = r
			}
		}

		if maxAbs == 0 || maxAbs <= pivotTolerance*colScale[col] {
			return nil, fmt.Errorf("%w: zero pivot in column %d", ErrSingularMatrix, col)
		}

		if pivot != col {
			a[col], a[pivot] = a[pivot], a[col]
			b[col], b[pivot] = b[pivot], b[col]
		}

		for r := col + 1; r < n; r++ {
			factor := a[r][col] / a[col][col]
			if factor == 0 {
				continue
			}
			for c := col; c < n; c++ {
				a[r][c] -= factor * a[col][c]
			}
			b[r] -= factor * b[col]
		}
	}

	x := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		sum := b[i]
		for j := i + 1; j < n; j++ {
			sum -= a[i][j] * x[j]
		}
		x[i] = sum / a[i][i]
		if math.IsNaN(x[i]) || math.IsInf(x[i], 0) {
			return nil, fmt.Errorf("%w: non-finite coefficient %d", ErrSingularMatrix, i)
		}
	}
	return x, nil
}
