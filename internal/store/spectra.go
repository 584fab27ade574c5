package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/cwbudde/algo-spectra/spectrum"
)

// Spectrum kinds stored per sample.
const (
	KindRaw       = "raw"
	KindProcessed = "processed"
	KindFitted    = "fitted"
)

// SaveSpectrum stores s as the spectrum of the given kind for sampleID,
// replacing any previous one.
func (s *Store) SaveSpectrum(ctx context.Context, sampleID, kind string, sp spectrum.Spectrum) error {
	points, err := json.Marshal(sp)
	if err != nil {
		return fmt.Errorf("marshalling spectrum: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO spectra (sample_id, kind, points, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(sample_id, kind) DO UPDATE SET
			points = excluded.points,
			updated_at = excluded.updated_at
	`, sampleID, kind, string(points), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("saving spectrum: %w", err)
	}
	return nil
}

// LoadSpectrum returns the spectrum of the given kind for sampleID.
func (s *Store) LoadSpectrum(ctx context.Context, sampleID, kind string) (spectrum.Spectrum, error) {
	var points string
	err := s.db.QueryRowContext(ctx,
		"SELECT points FROM spectra WHERE sample_id = ? AND kind = ?", sampleID, kind,
	).Scan(&points)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s spectrum of %q", ErrNotFound, kind, sampleID)
	}
	if err != nil {
		return nil, fmt.Errorf("loading spectrum: %w", err)
	}

	var sp spectrum.Spectrum
	if err := json.Unmarshal([]byte(points), &sp); err != nil {
		return nil, fmt.Errorf("unmarshalling spectrum: %w", err)
	}
	return sp, nil
}

// Samples returns the distinct sample ids that have a record or a spectrum,
// sorted ascending.
func (s *Store) Samples(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT sample_id FROM records
		UNION
		SELECT sample_id FROM spectra
		ORDER BY sample_id
	`)
	if err != nil {
		return nil, fmt.Errorf("querying samples: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning sample: %w", err)
		}
		out = append(out, id)
	}
	return out, rows.Err()
}
