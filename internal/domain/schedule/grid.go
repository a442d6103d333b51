package schedule

import (
	"fmt"
	"time"

	"github.com/helpmeclean/schedule-service/internal/domain"
	"github.com/helpmeclean/schedule-service/internal/domain/entity"
)

// MondayOf normalizes a date to the preceding (or same) Monday at midnight.
func MondayOf(t time.Time) time.Time {
	t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	diff := domain.Monday - int(t.Weekday())
	if t.Weekday() == time.Sunday {
		diff = -6
	}
	return t.AddDate(0, 0, diff)
}

// WeekDates returns the seven YYYY-MM-DD dates of the Monday-first week
// containing anchor.
func WeekDates(anchor time.Time) [7]string {
	var dates [7]string
	monday := MondayOf(anchor)
	for i := 0; i < 7; i++ {
		dates[i] = monday.AddDate(0, 0, i).Format(domain.DateLayout)
	}
	return dates
}

// Cell is one (worker, date) square of the calendar grid.
type Cell struct {
	Date         string                       `json:"date"`
	Availability entity.EffectiveAvailability `json:"availability"`
	Assignments  []*entity.JobAssignment      `json:"assignments"`
	HasConflict  bool                         `json:"has_conflict"`
}

// WorkerWeek is one worker's row of seven cells.
type WorkerWeek struct {
	Worker *entity.Worker `json:"worker"`
	Cells  [7]Cell        `json:"cells"`
}

// Grid is the full week view for a roster.
type Grid struct {
	WeekStart string       `json:"week_start"`
	Days      [7]string    `json:"days"`
	Rows      []WorkerWeek `json:"rows"`
}

// GridData is everything the builder needs, fetched up front for the whole
// roster and date range. Overrides and assignments are queried in single
// batched calls; there is no cap on roster size.
type GridData struct {
	Workers     []*entity.Worker
	Weekly      []*entity.WeeklyAvailabilitySlot
	Company     []*entity.CompanyScheduleSlot
	Overrides   []*entity.DateOverride
	Assignments []*entity.JobAssignment
}

// cellKey indexes per-(worker, date) collections.
func cellKey(workerID int64, date string) string {
	return fmt.Sprintf("%d_%s", workerID, date)
}

// BuildGrid composes resolution and conflict detection over a Monday-first
// 7-day window and a worker roster. Indices are computed once per build so
// each cell costs O(1) lookups.
func BuildGrid(anchor time.Time, data GridData) *Grid {
	days := WeekDates(anchor)

	weeklyByWorker := make(map[int64][]*entity.WeeklyAvailabilitySlot, len(data.Workers))
	for _, s := range data.Weekly {
		weeklyByWorker[s.WorkerID] = append(weeklyByWorker[s.WorkerID], s)
	}

	overridesByWorker := make(map[int64][]*entity.DateOverride, len(data.Workers))
	for _, o := range data.Overrides {
		overridesByWorker[o.WorkerID] = append(overridesByWorker[o.WorkerID], o)
	}

	assignmentIndex := make(map[string][]*entity.JobAssignment)
	for _, a := range data.Assignments {
		k := cellKey(a.WorkerID, a.Date)
		assignmentIndex[k] = append(assignmentIndex[k], a)
	}

	grid := &Grid{
		WeekStart: days[0],
		Days:      days,
		Rows:      make([]WorkerWeek, 0, len(data.Workers)),
	}

	for _, w := range data.Workers {
		row := WorkerWeek{Worker: w}
		for i := 0; i < 7; i++ {
			assignments := assignmentIndex[cellKey(w.ID, days[i])]
			row.Cells[i] = Cell{
				Date: days[i],
				Availability: Resolve(ResolveInput{
					WorkerID:  w.ID,
					Date:      days[i],
					DayOfWeek: GridIndexToDow(i),
					Weekly:    weeklyByWorker[w.ID],
					Company:   data.Company,
					Overrides: overridesByWorker[w.ID],
				}),
				Assignments: assignments,
				HasConflict: HasConflict(assignments),
			}
		}
		grid.Rows = append(grid.Rows, row)
	}

	return grid
}
