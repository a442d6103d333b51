package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helpmeclean/schedule-service/internal/domain/entity"
)

func seedAssignment(t *testing.T, db *DB, a *entity.JobAssignment) {
	t.Helper()

	_, err := db.conn.Exec(`
		INSERT INTO job_assignments (worker_id, date, start_time, duration_hours, status, service_name, client_name, reference_code)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		a.WorkerID, a.Date, a.StartTime, a.DurationHours, a.Status, a.ServiceName, a.ClientName, a.ReferenceCode,
	)
	require.NoError(t, err, "Failed to seed assignment")
}

func TestJobAssignmentRepo_ListForWorkerInRange(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	worker := createTestWorker(t, db, 10, "Ana Pop")
	repo := newJobAssignmentRepo(db.conn)

	seedAssignment(t, db, &entity.JobAssignment{
		WorkerID: worker.ID, Date: "2025-06-10", StartTime: "10:00",
		DurationHours: 2, Status: "CONFIRMED", ServiceName: "Curatenie generala",
		ClientName: "Client A", ReferenceCode: "HMC-001",
	})
	seedAssignment(t, db, &entity.JobAssignment{
		WorkerID: worker.ID, Date: "2025-06-10", StartTime: "08:00",
		DurationHours: 1.5, Status: "CONFIRMED", ServiceName: "Curatenie birou",
		ClientName: "Client B", ReferenceCode: "HMC-002",
	})
	seedAssignment(t, db, &entity.JobAssignment{
		WorkerID: worker.ID, Date: "2025-06-20", StartTime: "09:00",
		DurationHours: 3, Status: "CONFIRMED",
	})

	found, err := repo.ListForWorkerInRange(worker.ID, "2025-06-09", "2025-06-15")
	require.NoError(t, err)
	require.Len(t, found, 2)

	// Ordered by date then start time.
	assert.Equal(t, "08:00", found[0].StartTime)
	assert.Equal(t, 1.5, found[0].DurationHours)
	assert.Equal(t, "10:00", found[1].StartTime)
}

func TestJobAssignmentRepo_ListForWorkersInRange(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	ana := createTestWorker(t, db, 10, "Ana Pop")
	ion := createTestWorker(t, db, 10, "Ion Radu")

	repo := newJobAssignmentRepo(db.conn)

	seedAssignment(t, db, &entity.JobAssignment{WorkerID: ana.ID, Date: "2025-06-10", StartTime: "10:00", DurationHours: 2, Status: "CONFIRMED"})
	seedAssignment(t, db, &entity.JobAssignment{WorkerID: ion.ID, Date: "2025-06-11", StartTime: "09:00", DurationHours: 4, Status: "CONFIRMED"})

	found, err := repo.ListForWorkersInRange([]int64{ana.ID, ion.ID}, "2025-06-09", "2025-06-15")
	require.NoError(t, err)
	assert.Len(t, found, 2)

	none, err := repo.ListForWorkersInRange(nil, "2025-06-09", "2025-06-15")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestWorkerRepo_ListByCompany(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newWorkerRepo(db.conn)

	ana := createTestWorker(t, db, 10, "Ana Pop")
	createTestWorker(t, db, 10, "Ion Radu")
	createTestWorker(t, db, 20, "Maria Ionescu")

	workers, err := repo.ListByCompany(10)
	require.NoError(t, err)
	require.Len(t, workers, 2)
	assert.Equal(t, "Ana Pop", workers[0].FullName, "ordered by name")

	found, err := repo.GetByID(ana.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, ana.FullName, found.FullName)

	missing, err := repo.GetByID(9999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}
