// Package peak locates emission peaks in a spectrum.
//
// Detection is a single scan for strict interior local maxima. Each
// candidate is described by its position, amplitude, full width at half
// maximum, integrated area and a simple prominence. The prominence is the
// height above the lower of the two adjacent points, not the topographic
// prominence measured against the highest saddle to a taller peak.
//
// FWHM is not interpolated. The half-maximum walk stops at the first point
// whose intensity is at or below half the peak intensity, or at the
// spectrum edge, and the width is the wavelength distance between the two
// stopping points.
package peak
