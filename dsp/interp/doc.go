// Package interp evaluates spectra between their sample points and
// resamples them onto uniform wavelength grids.
//
// Available methods:
//
//   - [Linear]:  2-point linear interpolation
//   - [Hermite]: 4-point cubic Hermite on the local sample spacing
//
// Evaluation outside the sampled range clamps to the first or last
// intensity.
package interp
