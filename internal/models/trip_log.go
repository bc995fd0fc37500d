package models

import "time"

// TripLog is one completed historical trip on a route. All four core
// timestamps are wall-clock "HH:MM:SS" strings; a walking log collapses
// arrived/boarded/departed to the same instant at logging time. Logs are
// immutable after insert and only ever consumed in aggregate.
type TripLog struct {
	ID                     string    `json:"id" db:"id"`
	RouteID                string    `json:"route_id" db:"route_id"`
	UserID                 string    `json:"-" db:"user_id"`
	Date                   string    `json:"date" db:"date"`
	TimestampArrivedPickup string    `json:"timestamp_arrived_pickup" db:"timestamp_arrived_pickup"`
	TimestampBoarded       string    `json:"timestamp_boarded" db:"timestamp_boarded"`
	TimestampDeparted      string    `json:"timestamp_departed" db:"timestamp_departed"`
	TimestampArrivedDrop   string    `json:"timestamp_arrived_dropoff" db:"timestamp_arrived_dropoff"`
	TimestampReachedNext   *string   `json:"timestamp_reached_next,omitempty" db:"timestamp_reached_next"`
	MissedCycles           int       `json:"missed_cycles" db:"missed_cycles"`
	CreatedAt              time.Time `json:"created_at" db:"created_at"`

	// RouteName and RouteMode are joined in for history listings.
	RouteName string `json:"route_name,omitempty" db:"-"`
	RouteMode Mode   `json:"route_mode,omitempty" db:"-"`
}

// TripTimestamps mirrors the logger's timestamp object: the four core marks
// plus the optional reached-next-stop mark.
type TripTimestamps struct {
	Arrived  string `json:"arrived"`
	Boarded  string `json:"boarded"`
	Departed string `json:"departed"`
	Dropped  string `json:"dropped"`
	NextStop string `json:"nextStop,omitempty"`
}

// CreateTripLogRequest is the body for POST /logs.
type CreateTripLogRequest struct {
	RouteID      string         `json:"route_id" validate:"required"`
	Date         string         `json:"date" validate:"required"`
	Timestamps   TripTimestamps `json:"timestamps"`
	MissedCycles int            `json:"missed_cycles" validate:"min=0"`
}

// BenchmarkRow grades how predictable one route's travel time is, based on
// the spread of its logged trips.
type BenchmarkRow struct {
	Route              string `json:"route"`
	Mode               Mode   `json:"mode"`
	TotalTrips         int    `json:"total_trips"`
	AvgMin             int    `json:"avg_min"`
	VolatilityMin      int    `json:"volatility_min"`
	PredictionAccuracy string `json:"prediction_accuracy"`
}

// DayStats is the trips-per-day-of-week distribution, Sunday first.
type DayStats struct {
	Labels []string `json:"labels"`
	Data   []int    `json:"data"`
}
