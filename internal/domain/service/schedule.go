package service

import (
	"context"
	"fmt"
	"time"

	"github.com/helpmeclean/schedule-service/internal/domain"
	"github.com/helpmeclean/schedule-service/internal/domain/contract"
	"github.com/helpmeclean/schedule-service/internal/domain/entity"
	"github.com/helpmeclean/schedule-service/internal/domain/schedule"
)

type scheduleService struct {
	dm       contract.DataManager
	notifier *conflictNotifier
}

func newSchedule(dm contract.DataManager, notifier *conflictNotifier) *scheduleService {
	return &scheduleService{
		dm:       dm,
		notifier: notifier,
	}
}

// anchorWeek parses an optional YYYY-MM-DD anchor; empty means today.
func anchorWeek(anchorDate string) (time.Time, error) {
	if anchorDate == "" {
		return time.Now(), nil
	}
	anchor, err := time.Parse(domain.DateLayout, anchorDate)
	if err != nil {
		return time.Time{}, domain.NewValidationError("date", "must be YYYY-MM-DD")
	}
	return anchor, nil
}

// canEdit reports whether the actor may change a worker's schedule: the
// worker themselves, or an administrator of the worker's company.
func canEdit(actor entity.Actor, worker *entity.Worker) bool {
	switch actor.Role {
	case domain.RoleWorker:
		return actor.ID == worker.ID
	case domain.RoleCompanyAdmin:
		return actor.CompanyID == worker.CompanyID
	default:
		return false
	}
}

// validateWindow checks a submitted availability window before clamping.
// Times are only meaningful when the entry marks the worker available.
func validateWindow(isAvailable bool, startTime, endTime string) error {
	if !isAvailable {
		return nil
	}
	if !schedule.ValidClock(startTime) {
		return domain.NewValidationError("startTime", "must be HH:MM")
	}
	if !schedule.ValidClock(endTime) {
		return domain.NewValidationError("endTime", "must be HH:MM")
	}
	if startTime >= endTime {
		return domain.NewValidationError("endTime", "must be after startTime")
	}
	return nil
}

// WeekGrid builds the Monday-first week view for a company roster. Only an
// administrator of that company may read it.
func (s *scheduleService) WeekGrid(ctx context.Context, actor entity.Actor, companyID int64, anchorDate string) (*schedule.Grid, error) {
	if actor.Role != domain.RoleCompanyAdmin || actor.CompanyID != companyID {
		return nil, domain.ErrUnauthorized
	}

	anchor, err := anchorWeek(anchorDate)
	if err != nil {
		return nil, err
	}

	workers, err := s.dm.Worker().ListByCompany(companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load roster: %w", err)
	}

	workerIDs := make([]int64, 0, len(workers))
	for _, w := range workers {
		workerIDs = append(workerIDs, w.ID)
	}

	days := schedule.WeekDates(anchor)
	dateFrom, dateTo := days[0], days[6]

	weekly, err := s.dm.WeeklyAvailability().ListByWorkers(workerIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load weekly availability: %w", err)
	}

	company, err := s.dm.CompanySchedule().ListByCompany(companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load company schedule: %w", err)
	}

	overrides, err := s.dm.DateOverride().ListForWorkersInRange(workerIDs, dateFrom, dateTo)
	if err != nil {
		return nil, fmt.Errorf("failed to load date overrides: %w", err)
	}

	assignments, err := s.dm.JobAssignment().ListForWorkersInRange(workerIDs, dateFrom, dateTo)
	if err != nil {
		return nil, fmt.Errorf("failed to load job assignments: %w", err)
	}

	grid := schedule.BuildGrid(anchor, schedule.GridData{
		Workers:     workers,
		Weekly:      weekly,
		Company:     company,
		Overrides:   overrides,
		Assignments: assignments,
	})

	s.notifier.ObserveGrid(grid)

	return grid, nil
}

// WorkerWeek builds the single-worker week view used by the cleaner
// calendar. Readable by the worker themselves or their company admin.
func (s *scheduleService) WorkerWeek(ctx context.Context, actor entity.Actor, workerID int64, anchorDate string) (*schedule.WorkerWeek, error) {
	worker, err := s.dm.Worker().GetByID(workerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load worker: %w", err)
	}
	if worker == nil {
		return nil, domain.ErrWorkerNotFound
	}
	if !canEdit(actor, worker) {
		return nil, domain.ErrUnauthorized
	}

	anchor, err := anchorWeek(anchorDate)
	if err != nil {
		return nil, err
	}

	days := schedule.WeekDates(anchor)
	dateFrom, dateTo := days[0], days[6]

	weekly, err := s.dm.WeeklyAvailability().ListByWorker(workerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load weekly availability: %w", err)
	}

	company, err := s.dm.CompanySchedule().ListByCompany(worker.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load company schedule: %w", err)
	}

	overrides, err := s.dm.DateOverride().ListForWorkerInRange(workerID, dateFrom, dateTo)
	if err != nil {
		return nil, fmt.Errorf("failed to load date overrides: %w", err)
	}

	assignments, err := s.dm.JobAssignment().ListForWorkerInRange(workerID, dateFrom, dateTo)
	if err != nil {
		return nil, fmt.Errorf("failed to load job assignments: %w", err)
	}

	grid := schedule.BuildGrid(anchor, schedule.GridData{
		Workers:     []*entity.Worker{worker},
		Weekly:      weekly,
		Company:     company,
		Overrides:   overrides,
		Assignments: assignments,
	})

	return &grid.Rows[0], nil
}

// SetDateOverride validates, clamps and upserts a one-off exception for a
// specific date. The stored override is always already clamped to the
// company bounds for that date's weekday, so reads never re-clamp.
//
// The resolver still honors a pre-existing override on a company off-day;
// whether the write path should forbid creating one there is an open
// product decision, so it deliberately does not.
func (s *scheduleService) SetDateOverride(ctx context.Context, actor entity.Actor, workerID int64, date string, isAvailable bool, startTime, endTime string) (*entity.DateOverride, error) {
	day, err := time.Parse(domain.DateLayout, date)
	if err != nil {
		return nil, domain.NewValidationError("date", "must be YYYY-MM-DD")
	}

	worker, err := s.dm.Worker().GetByID(workerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load worker: %w", err)
	}
	if worker == nil {
		return nil, domain.ErrWorkerNotFound
	}
	if !canEdit(actor, worker) {
		return nil, domain.ErrUnauthorized
	}

	if err := validateWindow(isAvailable, startTime, endTime); err != nil {
		return nil, err
	}

	bounds, err := s.dm.CompanySchedule().GetByCompanyAndDay(worker.CompanyID, schedule.DayCode(day))
	if err != nil {
		return nil, fmt.Errorf("failed to load company bounds: %w", err)
	}

	clamped := schedule.ClampOverride(schedule.OverrideCandidate{
		StartTime:   startTime,
		EndTime:     endTime,
		IsAvailable: isAvailable,
	}, bounds)

	override := &entity.DateOverride{
		WorkerID:    workerID,
		Date:        date,
		IsAvailable: clamped.IsAvailable,
		StartTime:   clamped.StartTime,
		EndTime:     clamped.EndTime,
	}

	// Upsert then read back the row id; a transaction keeps the pair atomic
	// under concurrent writes to the same (worker, date).
	err = s.dm.WithTransaction(ctx, func(dm contract.DataManager) error {
		return dm.DateOverride().Upsert(override)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save date override: %w", err)
	}

	return override, nil
}

// SetWeeklySlot upserts a worker's recurring availability for one weekday.
// Weekly slots are not clamped; only date overrides are bounded by the
// company schedule.
func (s *scheduleService) SetWeeklySlot(ctx context.Context, actor entity.Actor, workerID int64, dayOfWeek int, isAvailable bool, startTime, endTime string) (*entity.WeeklyAvailabilitySlot, error) {
	if dayOfWeek < domain.Sunday || dayOfWeek > domain.Saturday {
		return nil, domain.NewValidationError("dayOfWeek", "must be 0 (Sunday) through 6 (Saturday)")
	}

	worker, err := s.dm.Worker().GetByID(workerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load worker: %w", err)
	}
	if worker == nil {
		return nil, domain.ErrWorkerNotFound
	}
	if !canEdit(actor, worker) {
		return nil, domain.ErrUnauthorized
	}

	if err := validateWindow(isAvailable, startTime, endTime); err != nil {
		return nil, err
	}

	slot := &entity.WeeklyAvailabilitySlot{
		WorkerID:    workerID,
		DayOfWeek:   dayOfWeek,
		StartTime:   startTime,
		EndTime:     endTime,
		IsAvailable: isAvailable,
	}

	if err := s.dm.WeeklyAvailability().Upsert(slot); err != nil {
		return nil, fmt.Errorf("failed to save weekly slot: %w", err)
	}

	return slot, nil
}
