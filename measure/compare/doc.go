// Package compare quantifies how a photoluminescence spectrum changed
// between two measurements of the same sample, typically before and after a
// surface modification.
//
// Both spectra are resampled onto a shared uniform grid over their
// overlapping wavelength range. The spectral shift is taken from the peak
// of the FFT cross-correlation of the mean-removed intensities, refined to
// sub-bin precision with a parabola through the three samples around the
// peak. A positive shift means the after spectrum is red-shifted.
package compare
