package contract

import (
	"context"

	"github.com/helpmeclean/schedule-service/internal/domain/entity"
	"github.com/helpmeclean/schedule-service/internal/domain/schedule"
)

// ScheduleService is the engine's integration surface for calendar UIs.
type ScheduleService interface {
	// WeekGrid builds the Monday-first week view for a company roster.
	// anchorDate is any YYYY-MM-DD date inside the wanted week; empty means
	// the current week.
	WeekGrid(ctx context.Context, actor entity.Actor, companyID int64, anchorDate string) (*schedule.Grid, error)

	// WorkerWeek builds the single-worker week view used by the cleaner
	// calendar.
	WorkerWeek(ctx context.Context, actor entity.Actor, workerID int64, anchorDate string) (*schedule.WorkerWeek, error)

	// SetDateOverride validates, clamps and upserts a per-date override.
	// The stored override is always already clamped to the company bounds
	// for that date.
	SetDateOverride(ctx context.Context, actor entity.Actor, workerID int64, date string, isAvailable bool, startTime, endTime string) (*entity.DateOverride, error)

	// SetWeeklySlot upserts a worker's recurring slot for one weekday.
	SetWeeklySlot(ctx context.Context, actor entity.Actor, workerID int64, dayOfWeek int, isAvailable bool, startTime, endTime string) (*entity.WeeklyAvailabilitySlot, error)
}
