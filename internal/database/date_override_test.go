package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helpmeclean/schedule-service/internal/domain/entity"
)

func createTestWorker(t *testing.T, db *DB, companyID int64, name string) *entity.Worker {
	t.Helper()

	worker := &entity.Worker{
		CompanyID: companyID,
		FullName:  name,
		Status:    "ACTIVE",
		IsActive:  true,
	}
	err := newWorkerRepo(db.conn).Create(worker)
	require.NoError(t, err, "Failed to create test worker")
	return worker
}

func TestDateOverrideRepo_Upsert(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	worker := createTestWorker(t, db, 10, "Ana Pop")
	repo := newDateOverrideRepo(db.conn)

	override := &entity.DateOverride{
		WorkerID:    worker.ID,
		Date:        "2025-06-09",
		IsAvailable: true,
		StartTime:   "08:00",
		EndTime:     "17:00",
	}

	err := repo.Upsert(override)
	require.NoError(t, err, "Failed to upsert override")
	assert.NotZero(t, override.ID, "Expected override ID to be set")

	// A second write for the same (worker, date) replaces, never duplicates.
	updated := &entity.DateOverride{
		WorkerID:    worker.ID,
		Date:        "2025-06-09",
		IsAvailable: false,
		StartTime:   "00:00",
		EndTime:     "00:00",
	}
	err = repo.Upsert(updated)
	require.NoError(t, err, "Failed to upsert override second time")
	assert.Equal(t, override.ID, updated.ID, "Upsert must keep the same row")

	found, err := repo.ListForWorkerInRange(worker.ID, "2025-06-09", "2025-06-09")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.False(t, found[0].IsAvailable)
}

func TestDateOverrideRepo_UpsertIdempotent(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	worker := createTestWorker(t, db, 10, "Ana Pop")
	repo := newDateOverrideRepo(db.conn)

	for i := 0; i < 2; i++ {
		err := repo.Upsert(&entity.DateOverride{
			WorkerID:    worker.ID,
			Date:        "2025-06-09",
			IsAvailable: true,
			StartTime:   "09:00",
			EndTime:     "15:00",
		})
		require.NoError(t, err)
	}

	found, err := repo.ListForWorkerInRange(worker.ID, "2025-06-01", "2025-06-30")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "09:00", found[0].StartTime)
	assert.Equal(t, "15:00", found[0].EndTime)
}

func TestDateOverrideRepo_ListForWorkersInRange(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	ana := createTestWorker(t, db, 10, "Ana Pop")
	ion := createTestWorker(t, db, 10, "Ion Radu")
	other := createTestWorker(t, db, 20, "Maria Ionescu")

	repo := newDateOverrideRepo(db.conn)
	seed := []*entity.DateOverride{
		{WorkerID: ana.ID, Date: "2025-06-09", IsAvailable: true, StartTime: "08:00", EndTime: "12:00"},
		{WorkerID: ana.ID, Date: "2025-06-20", IsAvailable: false, StartTime: "00:00", EndTime: "00:00"},
		{WorkerID: ion.ID, Date: "2025-06-10", IsAvailable: true, StartTime: "10:00", EndTime: "14:00"},
		{WorkerID: other.ID, Date: "2025-06-09", IsAvailable: true, StartTime: "08:00", EndTime: "17:00"},
	}
	for _, o := range seed {
		require.NoError(t, repo.Upsert(o))
	}

	// One batched query for the whole roster and week.
	found, err := repo.ListForWorkersInRange([]int64{ana.ID, ion.ID}, "2025-06-09", "2025-06-15")
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, ana.ID, found[0].WorkerID)
	assert.Equal(t, "2025-06-09", found[0].Date)
	assert.Equal(t, ion.ID, found[1].WorkerID)

	// Empty roster short-circuits.
	none, err := repo.ListForWorkersInRange(nil, "2025-06-09", "2025-06-15")
	require.NoError(t, err)
	assert.Empty(t, none)
}
