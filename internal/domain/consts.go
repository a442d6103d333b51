package domain

// Day-of-week codes as stored in the database: Sunday-first, matching
// time.Weekday. Calendar grids are Monday-first; convert with
// schedule.GridIndexToDow instead of inlining the shift.
const (
	Sunday    = 0
	Monday    = 1
	Tuesday   = 2
	Wednesday = 3
	Thursday  = 4
	Friday    = 5
	Saturday  = 6
)

// WeekdayNames maps stored day codes to their English names.
var WeekdayNames = map[int]string{
	Sunday:    "Sunday",
	Monday:    "Monday",
	Tuesday:   "Tuesday",
	Wednesday: "Wednesday",
	Thursday:  "Thursday",
	Friday:    "Friday",
	Saturday:  "Saturday",
}

// Fallback working window used when neither the worker nor the company has
// schedule data for a day.
const (
	DefaultDayStart = "08:00"
	DefaultDayEnd   = "17:00"
)

// DateLayout is the wire and storage format for calendar dates.
const DateLayout = "2006-01-02"

// ClockLayout is the wire and storage format for times of day.
const ClockLayout = "15:04"

// Actor roles accepted on the write path.
const (
	RoleWorker       = "worker"
	RoleCompanyAdmin = "company_admin"
)
