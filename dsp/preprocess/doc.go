// Package preprocess cleans a raw spectrum before peak analysis.
//
// [Apply] runs up to four stages in a fixed order, each enabled by a non-nil
// sub-config of [Config]:
//
//  1. outlier removal: drop points whose intensity z-score exceeds a threshold
//  2. noise reduction: centered moving average over an odd window
//  3. baseline correction: subtract an index-based polynomial, clamped at 0
//  4. normalization: divide by the maximum intensity or the integrated area
//
// Each stage returns a new spectrum; inputs are never modified.
//
// # Known limitations
//
// The noise reduction stage is configured in Savitzky-Golay terms (window
// length and polynomial order) but is a moving average; the polynomial order
// is accepted and ignored. See [SmoothingIsMovingAverage].
//
// The "als" baseline method is accepted but performs no correction. See
// [ALSImplemented].
package preprocess
