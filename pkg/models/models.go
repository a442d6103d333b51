package models

// SetOverrideRequest is the body of the override write endpoint. Times are
// HH:MM and only required when the worker is marked available for the day.
type SetOverrideRequest struct {
	IsAvailable bool   `json:"is_available"`
	StartTime   string `json:"start_time" validate:"required_if=IsAvailable true,omitempty,datetime=15:04"`
	EndTime     string `json:"end_time" validate:"required_if=IsAvailable true,omitempty,datetime=15:04"`
}

// SetWeeklySlotRequest updates one weekday of a worker's recurring
// availability. DayOfWeek uses the storage convention, 0=Sunday..6=Saturday.
type SetWeeklySlotRequest struct {
	DayOfWeek   int    `json:"day_of_week" validate:"min=0,max=6"`
	IsAvailable bool   `json:"is_available"`
	StartTime   string `json:"start_time" validate:"required_if=IsAvailable true,omitempty,datetime=15:04"`
	EndTime     string `json:"end_time" validate:"required_if=IsAvailable true,omitempty,datetime=15:04"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
