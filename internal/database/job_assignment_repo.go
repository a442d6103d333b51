package database

import (
	"fmt"

	"github.com/helpmeclean/schedule-service/internal/domain/contract"
	"github.com/helpmeclean/schedule-service/internal/domain/entity"
)

type jobAssignmentRepo struct {
	db dbConn
}

func newJobAssignmentRepo(db dbConn) contract.JobAssignmentRepo {
	return &jobAssignmentRepo{db: db}
}

func (r *jobAssignmentRepo) ListForWorkerInRange(workerID int64, dateFrom, dateTo string) ([]*entity.JobAssignment, error) {
	query := `
		SELECT id, worker_id, date, start_time, duration_hours, status,
			service_name, client_name, reference_code
		FROM job_assignments
		WHERE worker_id = ? AND date >= ? AND date <= ?
		ORDER BY date ASC, start_time ASC
	`

	rows, err := r.db.Query(query, workerID, dateFrom, dateTo)
	if err != nil {
		return nil, fmt.Errorf("failed to list job assignments: %w", err)
	}
	defer rows.Close()

	return scanAssignments(rows)
}

func (r *jobAssignmentRepo) ListForWorkersInRange(workerIDs []int64, dateFrom, dateTo string) ([]*entity.JobAssignment, error) {
	if len(workerIDs) == 0 {
		return nil, nil
	}

	query := fmt.Sprintf(`
		SELECT id, worker_id, date, start_time, duration_hours, status,
			service_name, client_name, reference_code
		FROM job_assignments
		WHERE worker_id IN (%s) AND date >= ? AND date <= ?
		ORDER BY worker_id ASC, date ASC, start_time ASC
	`, inPlaceholders(len(workerIDs)))

	args := append(int64Args(workerIDs), dateFrom, dateTo)
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list job assignments: %w", err)
	}
	defer rows.Close()

	return scanAssignments(rows)
}

func scanAssignments(rows rowScanner) ([]*entity.JobAssignment, error) {
	var assignments []*entity.JobAssignment
	for rows.Next() {
		a := &entity.JobAssignment{}
		err := rows.Scan(
			&a.ID,
			&a.WorkerID,
			&a.Date,
			&a.StartTime,
			&a.DurationHours,
			&a.Status,
			&a.ServiceName,
			&a.ClientName,
			&a.ReferenceCode,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job assignment: %w", err)
		}
		assignments = append(assignments, a)
	}
	return assignments, nil
}
