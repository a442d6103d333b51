package entity

import "time"

// Worker is a cleaner employed by a company.
type Worker struct {
	ID        int64     `json:"id" db:"id"`
	CompanyID int64     `json:"company_id" db:"company_id"`
	FullName  string    `json:"full_name" db:"full_name"`
	Status    string    `json:"status" db:"status"`
	IsActive  bool      `json:"is_active" db:"is_active"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// WeeklyAvailabilitySlot is a worker's recurring availability for one
// weekday. At most one slot exists per (worker, day); the absence of a slot
// means "fall through to the company schedule", not "unavailable".
type WeeklyAvailabilitySlot struct {
	ID          int64  `json:"id" db:"id"`
	WorkerID    int64  `json:"worker_id" db:"worker_id"`
	DayOfWeek   int    `json:"day_of_week" db:"day_of_week"` // Sunday-first, 0-6
	StartTime   string `json:"start_time" db:"start_time"`   // HH:MM
	EndTime     string `json:"end_time" db:"end_time"`       // HH:MM
	IsAvailable bool   `json:"is_available" db:"is_available"`
}

// CompanyScheduleSlot is the company-wide default working window for one
// weekday. It is the fallback for workers with no weekly slot and the
// clamping envelope for date overrides.
type CompanyScheduleSlot struct {
	ID        int64  `json:"id" db:"id"`
	CompanyID int64  `json:"company_id" db:"company_id"`
	DayOfWeek int    `json:"day_of_week" db:"day_of_week"` // Sunday-first, 0-6
	StartTime string `json:"start_time" db:"start_time"`
	EndTime   string `json:"end_time" db:"end_time"`
	IsWorkDay bool   `json:"is_work_day" db:"is_work_day"`
}

// DateOverride is a one-off exception for a specific calendar date. At most
// one override exists per (worker, date); writes are upserts. An override
// has no expiry: once set it governs that date until overwritten.
type DateOverride struct {
	ID          int64     `json:"id" db:"id"`
	WorkerID    int64     `json:"worker_id" db:"worker_id"`
	Date        string    `json:"date" db:"date"` // YYYY-MM-DD
	IsAvailable bool      `json:"is_available" db:"is_available"`
	StartTime   string    `json:"start_time" db:"start_time"`
	EndTime     string    `json:"end_time" db:"end_time"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// JobAssignment is a booking occurrence assigned to a worker. Several may
// exist for the same worker and date; overlaps are flagged for human
// review, never auto-rejected.
type JobAssignment struct {
	ID            int64   `json:"id" db:"id"`
	WorkerID      int64   `json:"worker_id" db:"worker_id"`
	Date          string  `json:"date" db:"date"`             // YYYY-MM-DD
	StartTime     string  `json:"start_time" db:"start_time"` // HH:MM
	DurationHours float64 `json:"duration_hours" db:"duration_hours"`
	Status        string  `json:"status" db:"status"`
	ServiceName   string  `json:"service_name" db:"service_name"`
	ClientName    string  `json:"client_name" db:"client_name"`
	ReferenceCode string  `json:"reference_code" db:"reference_code"`
}

// AvailabilitySource identifies which tier produced an effective
// availability.
type AvailabilitySource string

const (
	SourceOverride AvailabilitySource = "override"
	SourceWeekly   AvailabilitySource = "weekly"
	SourceCompany  AvailabilitySource = "company"
	SourceDefault  AvailabilitySource = "default"
)

// EffectiveAvailability is the resolved availability for one (worker, date)
// pair. Derived on every read, never persisted.
type EffectiveAvailability struct {
	StartTime   string             `json:"start_time"`
	EndTime     string             `json:"end_time"`
	IsAvailable bool               `json:"is_available"`
	Source      AvailabilitySource `json:"source"`
}

// Actor is the authenticated caller on the write path, as established by
// the upstream auth layer.
type Actor struct {
	ID        int64
	Role      string // domain.RoleWorker or domain.RoleCompanyAdmin
	CompanyID int64  // set for company admins
}
