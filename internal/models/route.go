package models

import "time"

// Route is one reusable commute segment: a named origin/destination pair with
// a transport mode. Routes are immutable once trip logs reference them.
type Route struct {
	ID          string    `json:"id" db:"id"`
	UserID      string    `json:"-" db:"user_id"`
	Name        string    `json:"name" db:"name"`
	Mode        Mode      `json:"mode" db:"mode"`
	Origin      string    `json:"origin" db:"origin"`
	Destination string    `json:"destination" db:"destination"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// CreateRouteRequest is the body for POST /routes.
type CreateRouteRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Mode        string `json:"mode" validate:"required,min=1,max=50"`
	Origin      string `json:"origin" validate:"max=100"`
	Destination string `json:"destination" validate:"max=100"`
}

// RouteAnalytics aggregates a route's logged history for the dashboard.
// Waits are zero-clamped here (display semantics); the prediction engine
// applies its own stricter filtering.
type RouteAnalytics struct {
	RouteID         string `json:"route_id"`
	RouteName       string `json:"route_name"`
	Mode            Mode   `json:"mode"`
	Origin          string `json:"origin"`
	Destination     string `json:"destination"`
	TotalTrips      int    `json:"total_trips"`
	AvgWait         int    `json:"avg_wait"`
	AvgTravel       int    `json:"avg_travel"`
	AvgTotal        int    `json:"avg_total"`
	MinWait         int    `json:"min_wait"`
	MaxWait         int    `json:"max_wait"`
	MinTravel       int    `json:"min_travel"`
	MaxTravel       int    `json:"max_travel"`
	MissedCyclesAvg int    `json:"missed_cycles_avg"`
}
