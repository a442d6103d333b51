package contract

import (
	"context"

	"github.com/helpmeclean/schedule-service/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Worker() WorkerRepo
	WeeklyAvailability() WeeklyAvailabilityRepo
	CompanySchedule() CompanyScheduleRepo
	DateOverride() DateOverrideRepo
	JobAssignment() JobAssignmentRepo
}

// WorkerRepo defines the contract for the worker roster repository
type WorkerRepo interface {
	Create(worker *entity.Worker) error
	GetByID(id int64) (*entity.Worker, error)
	ListByCompany(companyID int64) ([]*entity.Worker, error)
}

// WeeklyAvailabilityRepo manages workers' recurring weekly patterns.
// At most one slot exists per (worker, day of week).
type WeeklyAvailabilityRepo interface {
	ListByWorker(workerID int64) ([]*entity.WeeklyAvailabilitySlot, error)
	ListByWorkers(workerIDs []int64) ([]*entity.WeeklyAvailabilitySlot, error)
	Upsert(slot *entity.WeeklyAvailabilitySlot) error
}

// CompanyScheduleRepo manages the company-wide per-weekday defaults.
type CompanyScheduleRepo interface {
	ListByCompany(companyID int64) ([]*entity.CompanyScheduleSlot, error)
	GetByCompanyAndDay(companyID int64, dayOfWeek int) (*entity.CompanyScheduleSlot, error)
	Upsert(slot *entity.CompanyScheduleSlot) error
}

// DateOverrideRepo manages per-date exceptions. Writes are upserts keyed by
// (worker, date). Range listings are batched across workers so grid builds
// issue one query regardless of roster size.
type DateOverrideRepo interface {
	ListForWorkerInRange(workerID int64, dateFrom, dateTo string) ([]*entity.DateOverride, error)
	ListForWorkersInRange(workerIDs []int64, dateFrom, dateTo string) ([]*entity.DateOverride, error)
	Upsert(override *entity.DateOverride) error
}

// JobAssignmentRepo reads booking occurrences assigned to workers. This
// service never creates assignments; it only flags their conflicts.
type JobAssignmentRepo interface {
	ListForWorkerInRange(workerID int64, dateFrom, dateTo string) ([]*entity.JobAssignment, error)
	ListForWorkersInRange(workerIDs []int64, dateFrom, dateTo string) ([]*entity.JobAssignment, error)
}
