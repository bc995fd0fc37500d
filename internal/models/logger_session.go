package models

import "time"

// Session status values.
const (
	SessionInProgress = "in_progress"
	SessionCompleted  = "completed"
)

// Timestamp kinds accepted by the single-timestamp ingest endpoint.
const (
	TimestampArrived  = "arrived"
	TimestampBoarded  = "boarded"
	TimestampDeparted = "departed"
	TimestampDropped  = "dropped"
)

// ValidTimestampKind reports whether kind is one of the four core marks.
func ValidTimestampKind(kind string) bool {
	switch kind {
	case TimestampArrived, TimestampBoarded, TimestampDeparted, TimestampDropped:
		return true
	}
	return false
}

// LoggerSession is a trip-in-progress: the timestamps captured so far for a
// trip that has not been saved as a TripLog yet. At most one in-progress
// session exists per user, so a commuter can resume logging from any device.
type LoggerSession struct {
	ID           string            `json:"id" db:"id"`
	UserID       string            `json:"-" db:"user_id"`
	RouteID      string            `json:"route_id" db:"route_id"`
	Timestamps   map[string]string `json:"timestamps" db:"timestamps"`
	MissedCycles int               `json:"missed_cycles" db:"missed_cycles"`
	Status       string            `json:"status" db:"status"`
	CreatedAt    time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at" db:"updated_at"`
}

// UpsertSessionRequest is the body for POST /logger/session: the full
// session state as the client currently holds it.
type UpsertSessionRequest struct {
	RouteID      string            `json:"route_id" validate:"required"`
	Timestamps   map[string]string `json:"timestamps"`
	MissedCycles int               `json:"missed_cycles" validate:"min=0"`
}

// CompleteSessionRequest finalizes the in-progress session into a trip log
// dated to the given calendar day.
type CompleteSessionRequest struct {
	Date string `json:"date" validate:"required"`
}

// TimestampRequest is the body for POST /logger/timestamp, designed for
// one-tap automation clients (Shortcuts, MacroDroid).
type TimestampRequest struct {
	RouteID       string `json:"route_id" validate:"required"`
	TimestampType string `json:"timestamp_type" validate:"required"`
	Time          string `json:"time" validate:"required"`
	MissedCycles  *int   `json:"missed_cycles"`
}
