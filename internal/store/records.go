package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/cwbudde/algo-spectra/analysis"
)

// SaveRecord inserts rec, replacing a record with the same id.
func (s *Store) SaveRecord(ctx context.Context, rec analysis.Record) error {
	configJSON, err := json.Marshal(rec.Config)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	peaksJSON, err := json.Marshal(rec.Peaks)
	if err != nil {
		return fmt.Errorf("marshalling peaks: %w", err)
	}
	statsJSON, err := json.Marshal(rec.Statistics)
	if err != nil {
		return fmt.Errorf("marshalling statistics: %w", err)
	}

	var fitting sql.NullString
	if rec.Fitting != nil {
		b, err := json.Marshal(rec.Fitting)
		if err != nil {
			return fmt.Errorf("marshalling fitting: %w", err)
		}
		fitting = sql.NullString{String: string(b), Valid: true}
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO records (id, sample_id, created_at, outcome, config, peaks, fitting, statistics)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			sample_id = excluded.sample_id,
			created_at = excluded.created_at,
			outcome = excluded.outcome,
			config = excluded.config,
			peaks = excluded.peaks,
			fitting = excluded.fitting,
			statistics = excluded.statistics
	`, rec.ID.String(), rec.SampleID, rec.CreatedAt.UTC(), string(rec.Outcome),
		string(configJSON), string(peaksJSON), fitting, string(statsJSON))
	if err != nil {
		return fmt.Errorf("saving record: %w", err)
	}
	return nil
}

// GetRecord returns the record with the given id.
func (s *Store) GetRecord(ctx context.Context, id uuid.UUID) (analysis.Record, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, sample_id, created_at, outcome, config, peaks, fitting, statistics
		FROM records WHERE id = ?
	`, id.String())

	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return analysis.Record{}, fmt.Errorf("%w: record %s", ErrNotFound, id)
	}
	return rec, err
}

// ListRecords returns the records of sampleID, newest first. An empty
// sampleID lists every record.
func (s *Store) ListRecords(ctx context.Context, sampleID string) ([]analysis.Record, error) {
	query := `
		SELECT id, sample_id, created_at, outcome, config, peaks, fitting, statistics
		FROM records`
	var args []any
	if sampleID != "" {
		query += " WHERE sample_id = ?"
		args = append(args, sampleID)
	}
	query += " ORDER BY created_at DESC, id"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying records: %w", err)
	}
	defer rows.Close()

	var out []analysis.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// DeleteRecord removes the record with the given id.
func (s *Store) DeleteRecord(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM records WHERE id = ?", id.String())
	if err != nil {
		return fmt.Errorf("deleting record: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting record: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: record %s", ErrNotFound, id)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(sc scanner) (analysis.Record, error) {
	var (
		rec                              analysis.Record
		id, outcome                      string
		configJSON, peaksJSON, statsJSON string
		fitting                          sql.NullString
	)

	if err := sc.Scan(&id, &rec.SampleID, &rec.CreatedAt, &outcome,
		&configJSON, &peaksJSON, &fitting, &statsJSON); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return rec, err
		}
		return rec, fmt.Errorf("scanning record: %w", err)
	}

	parsed, err := uuid.Parse(id)
	if err != nil {
		return rec, fmt.Errorf("parsing record id: %w", err)
	}
	rec.ID = parsed
	rec.Outcome = analysis.Outcome(outcome)
	rec.CreatedAt = rec.CreatedAt.UTC()

	if err := json.Unmarshal([]byte(configJSON), &rec.Config); err != nil {
		return rec, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := json.Unmarshal([]byte(peaksJSON), &rec.Peaks); err != nil {
		return rec, fmt.Errorf("unmarshalling peaks: %w", err)
	}
	if err := json.Unmarshal([]byte(statsJSON), &rec.Statistics); err != nil {
		return rec, fmt.Errorf("unmarshalling statistics: %w", err)
	}
	if fitting.Valid {
		if err := json.Unmarshal([]byte(fitting.String), &rec.Fitting); err != nil {
			return rec, fmt.Errorf("unmarshalling fitting: %w", err)
		}
	}
	return rec, nil
}
