// Package schedule implements the availability resolution, override
// clamping and scheduling-conflict engine behind the calendar views. All
// functions in this package are pure; persistence lives in the repositories
// and orchestration in the service layer.
package schedule

import "time"

// GridIndexToDow converts a Monday-first grid column (0=Mon..6=Sun) to the
// Sunday-first day-of-week code used by stored schedules (0=Sun..6=Sat).
// The two conventions coexist on purpose: calendar layouts start the week
// on Monday while the storage code matches time.Weekday. Keep every
// conversion here.
func GridIndexToDow(idx int) int {
	if idx == 6 {
		return 0
	}
	return idx + 1
}

// DowToGridIndex is the inverse of GridIndexToDow.
func DowToGridIndex(dow int) int {
	if dow == 0 {
		return 6
	}
	return dow - 1
}

// DayCode returns the stored day-of-week code for a date. time.Weekday is
// already Sunday-first, so this is a straight cast.
func DayCode(t time.Time) int {
	return int(t.Weekday())
}
