package schedule

import "github.com/helpmeclean/schedule-service/internal/domain/entity"

// OverrideCandidate is an administrator- or worker-submitted override
// before clamping.
type OverrideCandidate struct {
	StartTime   string
	EndTime     string
	IsAvailable bool
}

// ClampOverride constrains a candidate override to the company's working
// bounds for the target date. It runs at write time, immediately before
// persistence; stored overrides are always already clamped, so the resolver
// never re-clamps on read.
//
// With no company bounds for the weekday, or an "unavailable" candidate
// (times are meaningless then), the candidate passes through unchanged.
// Otherwise the start is raised to the company start and the end lowered to
// the company end. If that collapses the window (start >= end) the
// candidate's times are discarded and the full company bounds substituted,
// so the stored override is always a non-empty valid window.
func ClampOverride(c OverrideCandidate, bounds *entity.CompanyScheduleSlot) OverrideCandidate {
	if bounds == nil || !c.IsAvailable {
		return c
	}

	if c.StartTime < bounds.StartTime {
		c.StartTime = bounds.StartTime
	}
	if c.EndTime > bounds.EndTime {
		c.EndTime = bounds.EndTime
	}

	if c.StartTime >= c.EndTime {
		c.StartTime = bounds.StartTime
		c.EndTime = bounds.EndTime
	}

	return c
}
