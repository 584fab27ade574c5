// Package fit synthesizes model curves from detected peaks and scores them
// against the observed spectrum.
//
// No parameters are optimized. Each peak contributes a profile built from
// its detected position, amplitude and FWHM, and the contributions of all
// peaks are summed on the input wavelength grid. The synthesized curve is
// then scored with R² and RMSE.
//
// The voigt model is accepted but evaluated as a Gaussian; see
// [VoigtApproximated] and [Result.Profile].
package fit
