package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/anthropics/outbreak-engine/internal/domain"
)

// RunRecord is the persisted header of one simulation run.
type RunRecord struct {
	RunID     string
	Seed      int64
	R0        float64
	Horizon   int
	Steps     int
	Final     domain.Counts
	CreatedAt int64
}

// RunRepo handles persistence for simulation runs and their interval tallies.
type RunRepo struct{}

// Save persists a run header together with its interval rows in a single
// transaction. When rec.RunID is empty a fresh UUID is assigned; the stored
// ID is returned either way.
func (r *RunRepo) Save(ctx context.Context, db *sql.DB, rec RunRecord, intervals []domain.IntervalCounts) (string, error) {
	if rec.RunID == "" {
		rec.RunID = uuid.NewString()
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	const q = `INSERT INTO runs (run_id, seed, r0, horizon, steps,
	latent, symptoms_non_infectious, latent_infectious, symptoms,
	recovering, dying, recovered, dead, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = tx.ExecContext(ctx, q,
		rec.RunID,
		rec.Seed,
		rec.R0,
		rec.Horizon,
		rec.Steps,
		rec.Final[domain.StateLatent],
		rec.Final[domain.StateSymptomsNonInfectious],
		rec.Final[domain.StateLatentInfectious],
		rec.Final[domain.StateSymptoms],
		rec.Final[domain.StateRecovering],
		rec.Final[domain.StateDying],
		rec.Final[domain.StateRecovered],
		rec.Final[domain.StateDead],
		rec.CreatedAt,
	)
	if err != nil {
		return "", domain.WrapSimError(domain.ErrStoreWrite.Code, "insert run", err)
	}

	const qi = `INSERT INTO run_intervals (run_id, step,
	latent, symptoms_non_infectious, latent_infectious, symptoms,
	recovering, dying, recovered, dead)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	for _, iv := range intervals {
		_, err := tx.ExecContext(ctx, qi,
			rec.RunID,
			iv.Step,
			iv.Counts[domain.StateLatent],
			iv.Counts[domain.StateSymptomsNonInfectious],
			iv.Counts[domain.StateLatentInfectious],
			iv.Counts[domain.StateSymptoms],
			iv.Counts[domain.StateRecovering],
			iv.Counts[domain.StateDying],
			iv.Counts[domain.StateRecovered],
			iv.Counts[domain.StateDead],
		)
		if err != nil {
			return "", domain.WrapSimError(domain.ErrStoreWrite.Code, fmt.Sprintf("insert interval %d", iv.Step), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit run: %w", err)
	}
	return rec.RunID, nil
}

// GetByID retrieves a run header by its ID.
func (r *RunRepo) GetByID(ctx context.Context, db *sql.DB, runID string) (*RunRecord, error) {
	const q = `SELECT run_id, seed, r0, horizon, steps,
	latent, symptoms_non_infectious, latent_infectious, symptoms,
	recovering, dying, recovered, dead, created_at
FROM runs WHERE run_id = ?`

	row := db.QueryRowContext(ctx, q, runID)

	var rec RunRecord
	err := row.Scan(&rec.RunID, &rec.Seed, &rec.R0, &rec.Horizon, &rec.Steps,
		&rec.Final[domain.StateLatent],
		&rec.Final[domain.StateSymptomsNonInfectious],
		&rec.Final[domain.StateLatentInfectious],
		&rec.Final[domain.StateSymptoms],
		&rec.Final[domain.StateRecovering],
		&rec.Final[domain.StateDying],
		&rec.Final[domain.StateRecovered],
		&rec.Final[domain.StateDead],
		&rec.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrRunNotFound
		}
		return nil, domain.WrapSimError(domain.ErrStoreQuery.Code, "get run", err)
	}
	return &rec, nil
}

// Intervals retrieves the interval tallies of a run in step order.
func (r *RunRepo) Intervals(ctx context.Context, db *sql.DB, runID string) ([]domain.IntervalCounts, error) {
	const q = `SELECT step,
	latent, symptoms_non_infectious, latent_infectious, symptoms,
	recovering, dying, recovered, dead
FROM run_intervals WHERE run_id = ? ORDER BY step`

	rows, err := db.QueryContext(ctx, q, runID)
	if err != nil {
		return nil, domain.WrapSimError(domain.ErrStoreQuery.Code, "query intervals", err)
	}
	defer rows.Close()

	var out []domain.IntervalCounts
	for rows.Next() {
		var iv domain.IntervalCounts
		err := rows.Scan(&iv.Step,
			&iv.Counts[domain.StateLatent],
			&iv.Counts[domain.StateSymptomsNonInfectious],
			&iv.Counts[domain.StateLatentInfectious],
			&iv.Counts[domain.StateSymptoms],
			&iv.Counts[domain.StateRecovering],
			&iv.Counts[domain.StateDying],
			&iv.Counts[domain.StateRecovered],
			&iv.Counts[domain.StateDead],
		)
		if err != nil {
			return nil, domain.WrapSimError(domain.ErrStoreQuery.Code, "scan interval", err)
		}
		out = append(out, iv)
	}
	return out, rows.Err()
}

// List retrieves all run headers, newest first.
func (r *RunRepo) List(ctx context.Context, db *sql.DB) ([]RunRecord, error) {
	const q = `SELECT run_id, seed, r0, horizon, steps,
	latent, symptoms_non_infectious, latent_infectious, symptoms,
	recovering, dying, recovered, dead, created_at
FROM runs ORDER BY created_at DESC, run_id`

	rows, err := db.QueryContext(ctx, q)
	if err != nil {
		return nil, domain.WrapSimError(domain.ErrStoreQuery.Code, "query runs", err)
	}
	defer rows.Close()

	var out []RunRecord
	for rows.Next() {
		var rec RunRecord
		err := rows.Scan(&rec.RunID, &rec.Seed, &rec.R0, &rec.Horizon, &rec.Steps,
			&rec.Final[domain.StateLatent],
			&rec.Final[domain.StateSymptomsNonInfectious],
			&rec.Final[domain.StateLatentInfectious],
			&rec.Final[domain.StateSymptoms],
			&rec.Final[domain.StateRecovering],
			&rec.Final[domain.StateDying],
			&rec.Final[domain.StateRecovered],
			&rec.Final[domain.StateDead],
			&rec.CreatedAt,
		)
		if err != nil {
			return nil, domain.WrapSimError(domain.ErrStoreQuery.Code, "scan run", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
