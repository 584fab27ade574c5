package analysis

import (
	"sync"

	"go.uber.org/zap"

	"github.com/cwbudde/algo-spectra/spectrum"
)

// Sample is one input of a batch analysis.
type Sample struct {
	ID       string
	Spectrum spectrum.Spectrum
	Config   Config
}

// BatchResult pairs a sample with its analysis result or error.
type BatchResult struct {
	SampleID string
	Result   Result
	Err      error
}

// AnalyzeBatch analyzes every sample concurrently and returns the results in
// input order. A failing sample does not affect the others.
func (a *Analyzer) AnalyzeBatch(samples []Sample) []BatchResult {
	out := make([]BatchResult, len(samples))

	limit := a.concurrency
	if limit <= 0 || limit > len(samples) {
		limit = len(samples)
	}
	sem := make(chan struct{}, max(limit, 1))

	var wg sync.WaitGroup
	for i, s := range samples {
		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()

			res, err := a.Analyze(s.Spectrum, s.Config)
			if err != nil {
				a.log.Warn("sample analysis failed", zap.String("sample", s.ID), zap.Error(err))
			}
			out[i] = BatchResult{SampleID: s.ID, Result: res, Err: err}
		}()
	}
	wg.Wait()

	return out
}
