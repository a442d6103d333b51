package database

import (
	"fmt"
	"time"

	"github.com/helpmeclean/schedule-service/internal/domain/contract"
	"github.com/helpmeclean/schedule-service/internal/domain/entity"
)

type dateOverrideRepo struct {
	db dbConn
}

func newDateOverrideRepo(db dbConn) contract.DateOverrideRepo {
	return &dateOverrideRepo{db: db}
}

func (r *dateOverrideRepo) ListForWorkerInRange(workerID int64, dateFrom, dateTo string) ([]*entity.DateOverride, error) {
	query := `
		SELECT id, worker_id, date, is_available, start_time, end_time, updated_at
		FROM date_overrides
		WHERE worker_id = ? AND date >= ? AND date <= ?
		ORDER BY date ASC
	`

	rows, err := r.db.Query(query, workerID, dateFrom, dateTo)
	if err != nil {
		return nil, fmt.Errorf("failed to list date overrides: %w", err)
	}
	defer rows.Close()

	return scanOverrides(rows)
}

func (r *dateOverrideRepo) ListForWorkersInRange(workerIDs []int64, dateFrom, dateTo string) ([]*entity.DateOverride, error) {
	if len(workerIDs) == 0 {
		return nil, nil
	}

	query := fmt.Sprintf(`
		SELECT id, worker_id, date, is_available, start_time, end_time, updated_at
		FROM date_overrides
		WHERE worker_id IN (%s) AND date >= ? AND date <= ?
		ORDER BY worker_id ASC, date ASC
	`, inPlaceholders(len(workerIDs)))

	args := append(int64Args(workerIDs), dateFrom, dateTo)
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list date overrides: %w", err)
	}
	defer rows.Close()

	return scanOverrides(rows)
}

// Upsert inserts or replaces the override for (worker, date). Calling it
// twice with identical arguments leaves the same persisted state as calling
// it once.
func (r *dateOverrideRepo) Upsert(override *entity.DateOverride) error {
	query := `
		INSERT INTO date_overrides (worker_id, date, is_available, start_time, end_time, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (worker_id, date) DO UPDATE SET
			is_available = excluded.is_available,
			start_time = excluded.start_time,
			end_time = excluded.end_time,
			updated_at = excluded.updated_at
	`

	now := time.Now().UTC()
	if _, err := r.db.Exec(query,
		override.WorkerID,
		override.Date,
		override.IsAvailable,
		override.StartTime,
		override.EndTime,
		now,
	); err != nil {
		return fmt.Errorf("failed to upsert date override: %w", err)
	}

	override.UpdatedAt = now

	err := r.db.QueryRow(
		`SELECT id FROM date_overrides WHERE worker_id = ? AND date = ?`,
		override.WorkerID, override.Date,
	).Scan(&override.ID)
	if err != nil {
		return fmt.Errorf("failed to read back date override: %w", err)
	}

	return nil
}

func scanOverrides(rows rowScanner) ([]*entity.DateOverride, error) {
	var overrides []*entity.DateOverride
	for rows.Next() {
		o := &entity.DateOverride{}
		err := rows.Scan(
			&o.ID,
			&o.WorkerID,
			&o.Date,
			&o.IsAvailable,
			&o.StartTime,
			&o.EndTime,
			&o.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan date override: %w", err)
		}
		overrides = append(overrides, o)
	}
	return overrides, nil
}
