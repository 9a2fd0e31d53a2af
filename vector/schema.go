package vector

import (
	"context"
	"database/sql"
)

const samplesSchema = `
CREATE TABLE IF NOT EXISTS emg_samples (
    id     INTEGER PRIMARY KEY AUTOINCREMENT,
    label  INTEGER NOT NULL,
    sample BLOB NOT NULL
);
CREATE INDEX IF NOT EXISTS emg_samples_label ON emg_samples(label);
`

// EnsureSchema creates the emg_samples table if it does not already exist.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, samplesSchema)
	return err
}
