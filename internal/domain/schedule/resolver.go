package schedule

import (
	"github.com/helpmeclean/schedule-service/internal/domain"
	"github.com/helpmeclean/schedule-service/internal/domain/entity"
)

// ResolveInput carries the layered schedule data for one (worker, date)
// pair. Weekly and Overrides may contain rows for other days or dates; the
// resolver picks the matching ones.
type ResolveInput struct {
	WorkerID  int64
	Date      string // YYYY-MM-DD
	DayOfWeek int    // Sunday-first code for Date
	Weekly    []*entity.WeeklyAvailabilitySlot
	Company   []*entity.CompanyScheduleSlot
	Overrides []*entity.DateOverride
}

// Resolve computes the effective availability for one worker on one date.
// Precedence is strict, first match wins, and tiers are never merged:
//
//  1. date override for (worker, date)
//  2. worker's weekly slot for the weekday
//  3. company schedule slot for the weekday
//  4. built-in default: 08:00-17:00, available Mon-Fri
//
// An override wins even when it contradicts the company's work-day flag;
// whether overrides should be allowed on company off-days at all is a
// write-path question, not a read-path one.
func Resolve(in ResolveInput) entity.EffectiveAvailability {
	for _, o := range in.Overrides {
		if o.WorkerID == in.WorkerID && o.Date == in.Date {
			return entity.EffectiveAvailability{
				StartTime:   o.StartTime,
				EndTime:     o.EndTime,
				IsAvailable: o.IsAvailable,
				Source:      entity.SourceOverride,
			}
		}
	}

	for _, s := range in.Weekly {
		if s.WorkerID == in.WorkerID && s.DayOfWeek == in.DayOfWeek {
			return entity.EffectiveAvailability{
				StartTime:   s.StartTime,
				EndTime:     s.EndTime,
				IsAvailable: s.IsAvailable,
				Source:      entity.SourceWeekly,
			}
		}
	}

	for _, c := range in.Company {
		if c.DayOfWeek == in.DayOfWeek {
			return entity.EffectiveAvailability{
				StartTime:   c.StartTime,
				EndTime:     c.EndTime,
				IsAvailable: c.IsWorkDay,
				Source:      entity.SourceCompany,
			}
		}
	}

	return entity.EffectiveAvailability{
		StartTime:   domain.DefaultDayStart,
		EndTime:     domain.DefaultDayEnd,
		IsAvailable: in.DayOfWeek >= domain.Monday && in.DayOfWeek <= domain.Friday,
		Source:      entity.SourceDefault,
	}
}
