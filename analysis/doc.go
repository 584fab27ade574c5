// Package analysis runs the full photoluminescence pipeline on a raw
// spectrum: preprocessing, peak detection, curve synthesis with goodness of
// fit, and intensity statistics.
//
// Stages run strictly in order, each on the complete output of the one
// before. Fitting is skipped when no peaks are detected, and that case is
// reported as [OutcomeNoPeaks] rather than as an error. A failing stage
// returns an error and no partial result.
//
// [Analyzer.AnalyzeBatch] analyzes independent samples concurrently. A
// single analysis never runs stages in parallel.
package analysis
