package fit

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// ErrDimensionMismatch is returned when observed and predicted values are
// not index-aligned.
var ErrDimensionMismatch = errors.New("fit: dimension mismatch")

// RSquared returns the coefficient of determination 1 - SSres/SStot.
// It is 0 for empty input or when the observed values are constant.
func RSquared(observed, predicted []float64) (float64, error) {
	if len(observed) != len(predicted) {
		return 0, fmt.Errorf("%w: %d observed vs %d predicted", ErrDimensionMismatch, len(observed), len(predicted))
	}
	if len(observed) == 0 {
		return 0, nil
	}

	mean := stat.Mean(observed, nil)

	var ssRes, ssTot float64
	for i, v := range observed {
		r := v - predicted[i]
		d := v - mean
		ssRes += r * r
		ssTot += d * d
	}

	if ssTot == 0 {
		return 0, nil
	}
	return 1 - ssRes/ssTot, nil
}

// RMSE returns the root mean squared error between observed and predicted.
// It is 0 for empty input.
func RMSE(observed, predicted []float64) (float64, error) {
	if len(observed) != len(predicted) {
		return 0, fmt.Errorf("%w: %d observed vs %d predicted", ErrDimensionMismatch, len(observed), len(predicted))
	}
	if len(observed) == 0 {
		return 0, nil
	}

	var sum float64
	for i, v := range observed {
		d := v - predicted[i]
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(observed))), nil
}
