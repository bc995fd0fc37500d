package models

import "time"

// DayType selects which schedule entries apply to a date. Holidays are not
// modelled independently; they fold into Sunday/Holiday.
type DayType string

const (
	DayTypeWeekday DayType = "Weekday"
	DayTypeSat     DayType = "Saturday"
	DayTypeSunHol  DayType = "Sunday/Holiday"
)

// DayTypeFor resolves a calendar date to its day type: Sunday maps to
// Sunday/Holiday, Saturday to Saturday, everything else to Weekday.
func DayTypeFor(t time.Time) DayType {
	switch t.Weekday() {
	case time.Sunday:
		return DayTypeSunHol
	case time.Saturday:
		return DayTypeSat
	default:
		return DayTypeWeekday
	}
}

// ScheduleEntry is a published headway for a route on a day type: vehicles
// depart every IntervalMinutes within the optional [StartTime, EndTime]
// window. A route may carry several entries per day type, one per
// time-of-day window.
type ScheduleEntry struct {
	ID              string    `json:"id" db:"id"`
	RouteID         string    `json:"route_id" db:"route_id"`
	UserID          string    `json:"-" db:"user_id"`
	DayType         DayType   `json:"day_type" db:"day_type"`
	IntervalMinutes int       `json:"interval_minutes" db:"interval_minutes"`
	StartTime       string    `json:"start_time,omitempty" db:"start_time"`
	EndTime         string    `json:"end_time,omitempty" db:"end_time"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}

// CreateScheduleRequest is the body for POST /schedules.
type CreateScheduleRequest struct {
	RouteID         string `json:"route_id" validate:"required"`
	DayType         string `json:"day_type" validate:"required,oneof=Weekday Saturday Sunday/Holiday"`
	IntervalMinutes int    `json:"interval_minutes" validate:"required,min=1,max=720"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
}
