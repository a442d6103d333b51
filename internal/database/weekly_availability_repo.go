package database

import (
	"fmt"
	"strings"

	"github.com/helpmeclean/schedule-service/internal/domain/contract"
	"github.com/helpmeclean/schedule-service/internal/domain/entity"
)

type weeklyAvailabilityRepo struct {
	db dbConn
}

func newWeeklyAvailabilityRepo(db dbConn) contract.WeeklyAvailabilityRepo {
	return &weeklyAvailabilityRepo{db: db}
}

// inPlaceholders builds the "?, ?, ?" fragment for an IN clause.
func inPlaceholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}

func int64Args(ids []int64) []interface{} {
	args := make([]interface{}, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	return args
}

func (r *weeklyAvailabilityRepo) ListByWorker(workerID int64) ([]*entity.WeeklyAvailabilitySlot, error) {
	query := `
		SELECT id, worker_id, day_of_week, start_time, end_time, is_available
		FROM weekly_availability
		WHERE worker_id = ?
		ORDER BY day_of_week ASC
	`

	rows, err := r.db.Query(query, workerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list weekly availability: %w", err)
	}
	defer rows.Close()

	return scanWeeklySlots(rows)
}

func (r *weeklyAvailabilityRepo) ListByWorkers(workerIDs []int64) ([]*entity.WeeklyAvailabilitySlot, error) {
	if len(workerIDs) == 0 {
		return nil, nil
	}

	query := fmt.Sprintf(`
		SELECT id, worker_id, day_of_week, start_time, end_time, is_available
		FROM weekly_availability
		WHERE worker_id IN (%s)
		ORDER BY worker_id ASC, day_of_week ASC
	`, inPlaceholders(len(workerIDs)))

	rows, err := r.db.Query(query, int64Args(workerIDs)...)
	if err != nil {
		return nil, fmt.Errorf("failed to list weekly availability: %w", err)
	}
	defer rows.Close()

	return scanWeeklySlots(rows)
}

func (r *weeklyAvailabilityRepo) Upsert(slot *entity.WeeklyAvailabilitySlot) error {
	query := `
		INSERT INTO weekly_availability (worker_id, day_of_week, start_time, end_time, is_available)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (worker_id, day_of_week) DO UPDATE SET
			start_time = excluded.start_time,
			end_time = excluded.end_time,
			is_available = excluded.is_available
	`

	if _, err := r.db.Exec(query,
		slot.WorkerID,
		slot.DayOfWeek,
		slot.StartTime,
		slot.EndTime,
		slot.IsAvailable,
	); err != nil {
		return fmt.Errorf("failed to upsert weekly availability: %w", err)
	}

	// Upserts do not report the row id reliably; read it back.
	err := r.db.QueryRow(
		`SELECT id FROM weekly_availability WHERE worker_id = ? AND day_of_week = ?`,
		slot.WorkerID, slot.DayOfWeek,
	).Scan(&slot.ID)
	if err != nil {
		return fmt.Errorf("failed to read back weekly availability: %w", err)
	}

	return nil
}

func scanWeeklySlots(rows rowScanner) ([]*entity.WeeklyAvailabilitySlot, error) {
	var slots []*entity.WeeklyAvailabilitySlot
	for rows.Next() {
		slot := &entity.WeeklyAvailabilitySlot{}
		err := rows.Scan(
			&slot.ID,
			&slot.WorkerID,
			&slot.DayOfWeek,
			&slot.StartTime,
			&slot.EndTime,
			&slot.IsAvailable,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan weekly availability: %w", err)
		}
		slots = append(slots, slot)
	}
	return slots, nil
}
