package vector

import (
	"context"
	"database/sql"
	"fmt"
)

// SQLiteStore implements Store on a SQLite database. Each row holds one
// encoded sample and its label.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a SQLite-backed Store and ensures its schema exists.
func NewSQLiteStore(ctx context.Context, db *sql.DB) (*SQLiteStore, error) {
	if db == nil {
		return nil, fmt.Errorf("vector: db is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if err := EnsureSchema(ctx, db); err != nil {
		return nil, fmt.Errorf("vector: ensure schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// AddSamples inserts samples under label in a single transaction.
func (s *SQLiteStore) AddSamples(ctx context.Context, label int, samples []Sample) (int, error) {
	if len(samples) == 0 {
		return 0, nil
	}
	if ctx == nil {
		ctx = context.Background()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO emg_samples(label, sample) VALUES(?, ?)`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	for _, sample := range samples {
		if _, err := stmt.ExecContext(ctx, label, EncodeSample(sample)); err != nil {
			return 0, err
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return len(samples), nil
}

// Samples returns the samples stored under label ordered by insertion.
func (s *SQLiteStore) Samples(ctx context.Context, label int) ([]Sample, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	rows, err := s.db.QueryContext(ctx, `SELECT sample FROM emg_samples WHERE label = ? ORDER BY id`, label)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Sample
	for rows.Next() {
		var blob []byte
		if err := rows.Scan(&blob); err != nil {
			return nil, err
		}
		sample, err := DecodeSample(blob)
		if err != nil {
			return nil, fmt.Errorf("vector: label %d: %w", label, err)
		}
		out = append(out, sample)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Counts returns the number of stored samples for every label present.
func (s *SQLiteStore) Counts(ctx context.Context) (map[int]int, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	rows, err := s.db.QueryContext(ctx, `SELECT label, COUNT(*) FROM emg_samples GROUP BY label`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[int]int{}
	for rows.Next() {
		var label, n int
		if err := rows.Scan(&label, &n); err != nil {
			return nil, err
		}
		out[label] = n
	}
	return out, rows.Err()
}

// Clear deletes every stored sample.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	_, err := s.db.ExecContext(ctx, `DELETE FROM emg_samples`)
	return err
}

// Ensure SQLiteStore satisfies the Store interface.
var _ Store = (*SQLiteStore)(nil)
