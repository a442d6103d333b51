package schedule

import (
	"sort"

	"github.com/helpmeclean/schedule-service/internal/domain/entity"
)

// HasConflict reports whether any two of a worker's assignments for one
// date overlap in time. After sorting by start time only adjacent pairs
// need checking, since the intervals are simple and per-day counts are
// small. Touching intervals (one ends exactly when the next starts) are
// not conflicts.
//
// A conflict is a signal for an admin to review and re-assign; the engine
// never rejects or resolves overlapping assignments itself.
func HasConflict(assignments []*entity.JobAssignment) bool {
	if len(assignments) < 2 {
		return false
	}

	sorted := make([]*entity.JobAssignment, len(assignments))
	copy(sorted, assignments)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].StartTime < sorted[j].StartTime
	})

	for i := 0; i < len(sorted)-1; i++ {
		w := WindowFrom(sorted[i].StartTime, sorted[i].DurationHours)
		next := WindowFrom(sorted[i+1].StartTime, sorted[i+1].DurationHours)
		if w.Overlaps(next) {
			return true
		}
	}
	return false
}
