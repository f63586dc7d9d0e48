package store

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/anthropics/outbreak-engine/internal/domain"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := NewDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("NewDB: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func sampleRecord() RunRecord {
	return RunRecord{
		Seed:      2,
		R0:        1.7,
		Horizon:   150,
		Steps:     150,
		Final:     domain.Counts{4, 1, 2, 3, 5, 1, 9, 2},
		CreatedAt: 1700000000,
	}
}

func TestRunRepo_SaveAndGet(t *testing.T) {
	db := newTestDB(t)
	repo := &RunRepo{}
	ctx := context.Background()

	intervals := []domain.IntervalCounts{
		{Step: 7, Counts: domain.Counts{1, 0, 0, 0, 0, 0, 0, 0}},
		{Step: 14, Counts: domain.Counts{2, 1, 0, 1, 0, 0, 0, 0}},
	}

	id, err := repo.Save(ctx, db, sampleRecord(), intervals)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if id == "" {
		t.Fatal("Save returned an empty run ID")
	}

	got, err := repo.GetByID(ctx, db, id)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	want := sampleRecord()
	if got.Seed != want.Seed || got.R0 != want.R0 || got.Horizon != want.Horizon || got.Steps != want.Steps {
		t.Errorf("header = %+v, want %+v", got, want)
	}
	if got.Final != want.Final {
		t.Errorf("Final = %v, want %v", got.Final, want.Final)
	}
	if got.CreatedAt != want.CreatedAt {
		t.Errorf("CreatedAt = %d, want %d", got.CreatedAt, want.CreatedAt)
	}
}

func TestRunRepo_Intervals(t *testing.T) {
	db := newTestDB(t)
	repo := &RunRepo{}
	ctx := context.Background()

	intervals := []domain.IntervalCounts{
		{Step: 7, Counts: domain.Counts{1, 0, 0, 0, 0, 0, 0, 0}},
		{Step: 14, Counts: domain.Counts{2, 1, 0, 1, 0, 0, 0, 0}},
		{Step: 21, Counts: domain.Counts{3, 1, 1, 2, 1, 0, 1, 0}},
	}

	id, err := repo.Save(ctx, db, sampleRecord(), intervals)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := repo.Intervals(ctx, db, id)
	if err != nil {
		t.Fatalf("Intervals: %v", err)
	}
	if len(got) != len(intervals) {
		t.Fatalf("intervals = %d rows, want %d", len(got), len(intervals))
	}
	for i := range intervals {
		if got[i] != intervals[i] {
			t.Errorf("interval %d = %+v, want %+v", i, got[i], intervals[i])
		}
	}
}

func TestRunRepo_GetByID_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := &RunRepo{}

	_, err := repo.GetByID(context.Background(), db, "nonexistent")
	if err != domain.ErrRunNotFound {
		t.Errorf("error = %v, want ErrRunNotFound", err)
	}
}

func TestRunRepo_List(t *testing.T) {
	db := newTestDB(t)
	repo := &RunRepo{}
	ctx := context.Background()

	first := sampleRecord()
	first.CreatedAt = 100
	second := sampleRecord()
	second.CreatedAt = 200

	if _, err := repo.Save(ctx, db, first, nil); err != nil {
		t.Fatalf("Save first: %v", err)
	}
	if _, err := repo.Save(ctx, db, second, nil); err != nil {
		t.Fatalf("Save second: %v", err)
	}

	runs, err := repo.List(ctx, db)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("List = %d runs, want 2", len(runs))
	}
	if runs[0].CreatedAt != 200 || runs[1].CreatedAt != 100 {
		t.Errorf("List order = [%d, %d], want newest first", runs[0].CreatedAt, runs[1].CreatedAt)
	}
}

func TestRunRepo_NoIntervalsSaved(t *testing.T) {
	db := newTestDB(t)
	repo := &RunRepo{}
	ctx := context.Background()

	id, err := repo.Save(ctx, db, sampleRecord(), nil)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := repo.Intervals(ctx, db, id)
	if err != nil {
		t.Fatalf("Intervals: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("intervals = %d rows, want 0", len(got))
	}
}

func TestRunRepo_ExplicitRunID(t *testing.T) {
	db := newTestDB(t)
	repo := &RunRepo{}
	ctx := context.Background()

	rec := sampleRecord()
	rec.RunID = "run-explicit"

	id, err := repo.Save(ctx, db, rec, nil)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if id != "run-explicit" {
		t.Errorf("Save returned %q, want the explicit ID", id)
	}

	if _, err := repo.GetByID(ctx, db, "run-explicit"); err != nil {
		t.Errorf("GetByID: %v", err)
	}
}

func TestRunRepo_DuplicateRunID(t *testing.T) {
	db := newTestDB(t)
	repo := &RunRepo{}
	ctx := context.Background()

	rec := sampleRecord()
	rec.RunID = "run-dup"

	if _, err := repo.Save(ctx, db, rec, nil); err != nil {
		t.Fatalf("first Save: %v", err)
	}
	if _, err := repo.Save(ctx, db, rec, nil); err == nil {
		t.Error("expected error on duplicate run ID, got nil")
	}
}
