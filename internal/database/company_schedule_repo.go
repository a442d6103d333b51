package database

import (
	"database/sql"
	"fmt"

	"github.com/helpmeclean/schedule-service/internal/domain/contract"
	"github.com/helpmeclean/schedule-service/internal/domain/entity"
)

type companyScheduleRepo struct {
	db dbConn
}

func newCompanyScheduleRepo(db dbConn) contract.CompanyScheduleRepo {
	return &companyScheduleRepo{db: db}
}

func (r *companyScheduleRepo) ListByCompany(companyID int64) ([]*entity.CompanyScheduleSlot, error) {
	query := `
		SELECT id, company_id, day_of_week, start_time, end_time, is_work_day
		FROM company_schedule
		WHERE company_id = ?
		ORDER BY day_of_week ASC
	`

	rows, err := r.db.Query(query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list company schedule: %w", err)
	}
	defer rows.Close()

	var slots []*entity.CompanyScheduleSlot
	for rows.Next() {
		slot := &entity.CompanyScheduleSlot{}
		err := rows.Scan(
			&slot.ID,
			&slot.CompanyID,
			&slot.DayOfWeek,
			&slot.StartTime,
			&slot.EndTime,
			&slot.IsWorkDay,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan company schedule: %w", err)
		}
		slots = append(slots, slot)
	}

	return slots, nil
}

func (r *companyScheduleRepo) GetByCompanyAndDay(companyID int64, dayOfWeek int) (*entity.CompanyScheduleSlot, error) {
	slot := &entity.CompanyScheduleSlot{}
	query := `
		SELECT id, company_id, day_of_week, start_time, end_time, is_work_day
		FROM company_schedule
		WHERE company_id = ? AND day_of_week = ?
	`

	err := r.db.QueryRow(query, companyID, dayOfWeek).Scan(
		&slot.ID,
		&slot.CompanyID,
		&slot.DayOfWeek,
		&slot.StartTime,
		&slot.EndTime,
		&slot.IsWorkDay,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get company schedule: %w", err)
	}

	return slot, nil
}

func (r *companyScheduleRepo) Upsert(slot *entity.CompanyScheduleSlot) error {
	query := `
		INSERT INTO company_schedule (company_id, day_of_week, start_time, end_time, is_work_day)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (company_id, day_of_week) DO UPDATE SET
			start_time = excluded.start_time,
			end_time = excluded.end_time,
			is_work_day = excluded.is_work_day
	`

	if _, err := r.db.Exec(query,
		slot.CompanyID,
		slot.DayOfWeek,
		slot.StartTime,
		slot.EndTime,
		slot.IsWorkDay,
	); err != nil {
		return fmt.Errorf("failed to upsert company schedule: %w", err)
	}

	err := r.db.QueryRow(
		`SELECT id FROM company_schedule WHERE company_id = ? AND day_of_week = ?`,
		slot.CompanyID, slot.DayOfWeek,
	).Scan(&slot.ID)
	if err != nil {
		return fmt.Errorf("failed to read back company schedule: %w", err)
	}

	return nil
}
