package engine

import (
	"context"
	"database/sql"
	"strings"

	_ "modernc.org/sqlite" // register pure-Go SQLite driver

	"github.com/viant/gesture-knn/vector"
)

// Open opens a SQLite database using the modernc.org/sqlite driver.
//
// For file-based databases, pass a path like "./db.sqlite". For in-memory
// databases, pass ":memory:"; the pool is then limited to one connection so
// every statement sees the same database.
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if strings.Contains(dsn, ":memory:") {
		db.SetMaxOpenConns(1)
	}
	return db, nil
}

// OpenSampleStore opens dsn and returns a sample store on it. The caller
// closes the returned database.
func OpenSampleStore(ctx context.Context, dsn string) (*sql.DB, *vector.SQLiteStore, error) {
	db, err := Open(dsn)
	if err != nil {
		return nil, nil, err
	}
	store, err := vector.NewSQLiteStore(ctx, db)
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	return db, store, nil
}
