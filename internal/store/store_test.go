package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-spectra/analysis"
	"github.com/cwbudde/algo-spectra/dsp/preprocess"
	"github.com/cwbudde/algo-spectra/spectrum"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := Open(filepath.Join(t.TempDir(), "data", DefaultFile))
	require.NoError(t, err)
	require.NotNil(t, s)
	t.Cleanup(func() { assert.NoError(t, s.Close()) })
	return s
}

func reference() spectrum.Spectrum {
	return spectrum.Spectrum{
		{Wavelength: 500, Intensity: 0.1},
		{Wavelength: 502, Intensity: 0.3},
		{Wavelength: 504, Intensity: 0.9},
		{Wavelength: 506, Intensity: 0.3},
		{Wavelength: 508, Intensity: 0.1},
	}
}

func analyzedRecord(t *testing.T, sampleID string) analysis.Record {
	t.Helper()

	cfg := analysis.DefaultConfig()
	cfg.Preprocessing.Normalization = &preprocess.Normalization{Method: preprocess.NormalizeMax}

	res, err := analysis.Analyze(reference(), cfg)
	require.NoError(t, err)
	return analysis.NewRecord(sampleID, cfg, res)
}

func TestOpen_AppliesMigrations(t *testing.T) {
	s := setupTestStore(t)

	v, err := s.Version(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	assert.FileExists(t, s.Path())
}

func TestOpen_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFile)
	ctx := context.Background()

	s, err := Open(path)
	require.NoError(t, err)
	rec := analyzedRecord(t, "sample-a")
	require.NoError(t, s.SaveRecord(ctx, rec))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	v, err := s.Version(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	got, err := s.GetRecord(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, "sample-a", got.SampleID)
}

func TestRecordRoundTrip(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	rec := analyzedRecord(t, "sample-a")
	require.NotNil(t, rec.Fitting)
	require.NoError(t, s.SaveRecord(ctx, rec))

	got, err := s.GetRecord(ctx, rec.ID)
	require.NoError(t, err)

	assert.WithinDuration(t, rec.CreatedAt, got.CreatedAt, time.Millisecond)
	got.CreatedAt = rec.CreatedAt
	assert.Equal(t, rec, got)
}

func TestRecordWithoutFitting(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	rec := analysis.Record{
		ID:        uuid.New(),
		SampleID:  "flat",
		CreatedAt: time.Now().UTC(),
		Config:    analysis.DefaultConfig(),
		Peaks:     nil,
		Outcome:   analysis.OutcomeNoPeaks,
	}
	require.NoError(t, s.SaveRecord(ctx, rec))

	got, err := s.GetRecord(ctx, rec.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Fitting)
	assert.Equal(t, analysis.OutcomeNoPeaks, got.Outcome)
	assert.Empty(t, got.Peaks)
}

func TestGetRecord_NotFound(t *testing.T) {
	s := setupTestStore(t)

	_, err := s.GetRecord(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListRecords(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	for i, sample := range []string{"a", "b", "a", "a"} {
		rec := analyzedRecord(t, sample)
		rec.CreatedAt = base.Add(time.Duration(i) * time.Hour)
		require.NoError(t, s.SaveRecord(ctx, rec))
	}

	recs, err := s.ListRecords(ctx, "a")
	require.NoError(t, err)
	require.Len(t, recs, 3)
	assert.True(t, recs[0].CreatedAt.Equal(base.Add(3*time.Hour)), "newest first")
	assert.True(t, recs[2].CreatedAt.Equal(base))

	all, err := s.ListRecords(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 4)

	none, err := s.ListRecords(ctx, "missing")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestDeleteRecord(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	rec := analyzedRecord(t, "a")
	require.NoError(t, s.SaveRecord(ctx, rec))
	require.NoError(t, s.DeleteRecord(ctx, rec.ID))

	_, err := s.GetRecord(ctx, rec.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.DeleteRecord(ctx, rec.ID), ErrNotFound)
}

func TestSpectra(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveSpectrum(ctx, "a", KindRaw, reference()))

	got, err := s.LoadSpectrum(ctx, "a", KindRaw)
	require.NoError(t, err)
	assert.Equal(t, reference(), got)

	_, err = s.LoadSpectrum(ctx, "a", KindProcessed)
	assert.ErrorIs(t, err, ErrNotFound)

	replaced := spectrum.Spectrum{{Wavelength: 1, Intensity: 2}}
	require.NoError(t, s.SaveSpectrum(ctx, "a", KindRaw, replaced))
	got, err = s.LoadSpectrum(ctx, "a", KindRaw)
	require.NoError(t, err)
	assert.Equal(t, replaced, got)
}

func TestSamples(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveSpectrum(ctx, "zinc-oxide", KindRaw, reference()))
	require.NoError(t, s.SaveRecord(ctx, analyzedRecord(t, "cdse")))
	require.NoError(t, s.SaveRecord(ctx, analyzedRecord(t, "zinc-oxide")))

	samples, err := s.Samples(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"cdse", "zinc-oxide"}, samples)
}
