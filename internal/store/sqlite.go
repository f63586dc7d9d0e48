// Package store provides SQLite-backed persistence for completed simulation
// runs.
package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// schemaV1 defines the initial database schema. The eight state columns of
// both tables are ordered by numeric state value.
const schemaV1 = `
CREATE TABLE IF NOT EXISTS runs (
	run_id                  TEXT PRIMARY KEY,
	seed                    INTEGER NOT NULL DEFAULT 0,
	r0                      REAL NOT NULL,
	horizon                 INTEGER NOT NULL,
	steps                   INTEGER NOT NULL DEFAULT 0,
	latent                  INTEGER NOT NULL DEFAULT 0,
	symptoms_non_infectious INTEGER NOT NULL DEFAULT 0,
	latent_infectious       INTEGER NOT NULL DEFAULT 0,
	symptoms                INTEGER NOT NULL DEFAULT 0,
	recovering              INTEGER NOT NULL DEFAULT 0,
	dying                   INTEGER NOT NULL DEFAULT 0,
	recovered               INTEGER NOT NULL DEFAULT 0,
	dead                    INTEGER NOT NULL DEFAULT 0,
	created_at              INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS run_intervals (
	id                      INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id                  TEXT NOT NULL,
	step                    INTEGER NOT NULL,
	latent                  INTEGER NOT NULL DEFAULT 0,
	symptoms_non_infectious INTEGER NOT NULL DEFAULT 0,
	latent_infectious       INTEGER NOT NULL DEFAULT 0,
	symptoms                INTEGER NOT NULL DEFAULT 0,
	recovering              INTEGER NOT NULL DEFAULT 0,
	dying                   INTEGER NOT NULL DEFAULT 0,
	recovered               INTEGER NOT NULL DEFAULT 0,
	dead                    INTEGER NOT NULL DEFAULT 0,
	UNIQUE(run_id, step)
);
CREATE INDEX IF NOT EXISTS idx_intervals_run_step ON run_intervals(run_id, step);
`

// NewDB opens a SQLite database at the given path with recommended pragmas
// and runs the V1 schema migration.
func NewDB(path string) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)&_pragma=foreign_keys(ON)&_pragma=busy_timeout(5000)", path)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Limit connections to 1 for SQLite (WAL allows concurrent reads but single writer).
	db.SetMaxOpenConns(1)

	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	return db, nil
}

func migrate(db *sql.DB) error {
	_, err := db.ExecContext(context.Background(), schemaV1)
	return err
}
