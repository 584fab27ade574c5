// Package window provides taper functions for finite spectral segments.
//
// A taper weights the ends of a resampled spectrum toward zero before it is
// cross-correlated, so that lines cut off at the edge of the overlapping
// range do not dominate the correlation peak.
package window
