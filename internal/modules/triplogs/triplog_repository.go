package triplogs

import (
	"context"
	"fmt"

	"commutesync/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RepositoryInterface defines the contract for trip log storage.
type RepositoryInterface interface {
	Create(ctx context.Context, userID string, req models.CreateTripLogRequest) (*models.TripLog, error)
	ListRecent(ctx context.Context, userID string, limit int) ([]models.TripLog, error)
	ListByRoute(ctx context.Context, userID, routeID string) ([]models.TripLog, error)
	ListCompleted(ctx context.Context, userID string) ([]models.TripLog, error)
	ListDates(ctx context.Context, userID string) ([]string, error)
}

// Repository implements RepositoryInterface on Postgres.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new trip log repository.
func NewRepository(db *pgxpool.Pool) RepositoryInterface {
	return &Repository{db: db}
}

// Create inserts a completed trip. Absent timestamps are stored as the
// "00:00:00" placeholder the logger writes, so downstream delta math can
// recognize and discard them.
func (r *Repository) Create(ctx context.Context, userID string, req models.CreateTripLogRequest) (*models.TripLog, error) {
	log := &models.TripLog{
		ID:                     uuid.New().String(),
		RouteID:                req.RouteID,
		UserID:                 userID,
		Date:                   req.Date,
		TimestampArrivedPickup: orPlaceholder(req.Timestamps.Arrived),
		TimestampBoarded:       orPlaceholder(req.Timestamps.Boarded),
		TimestampDeparted:      orPlaceholder(req.Timestamps.Departed),
		TimestampArrivedDrop:   orPlaceholder(req.Timestamps.Dropped),
		MissedCycles:           req.MissedCycles,
	}
	if req.Timestamps.NextStop != "" {
		next := req.Timestamps.NextStop
		log.TimestampReachedNext = &next
	}

	query := `
		INSERT INTO trip_logs (id, route_id, user_id, date,
			timestamp_arrived_pickup, timestamp_boarded, timestamp_departed,
			timestamp_arrived_dropoff, timestamp_reached_next, missed_cycles)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at`

	err := r.db.QueryRow(ctx, query,
		log.ID, log.RouteID, log.UserID, log.Date,
		log.TimestampArrivedPickup, log.TimestampBoarded, log.TimestampDeparted,
		log.TimestampArrivedDrop, log.TimestampReachedNext, log.MissedCycles,
	).Scan(&log.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("repository.CreateTripLog: %w", err)
	}

	return log, nil
}

// ListRecent returns the newest trips with route name and mode joined in.
func (r *Repository) ListRecent(ctx context.Context, userID string, limit int) ([]models.TripLog, error) {
	query := `
		SELECT t.id, t.route_id, t.user_id, t.date,
			t.timestamp_arrived_pickup, t.timestamp_boarded, t.timestamp_departed,
			t.timestamp_arrived_dropoff, t.timestamp_reached_next, t.missed_cycles,
			t.created_at, r.name, r.mode
		FROM trip_logs t
		JOIN routes r ON r.id = t.route_id
		WHERE t.user_id = $1
		ORDER BY t.date DESC, t.created_at DESC
		LIMIT $2`

	return r.queryLogs(ctx, query, true, userID, limit)
}

// ListByRoute returns all of one route's trips, oldest first.
func (r *Repository) ListByRoute(ctx context.Context, userID, routeID string) ([]models.TripLog, error) {
	query := `
		SELECT id, route_id, user_id, date,
			timestamp_arrived_pickup, timestamp_boarded, timestamp_departed,
			timestamp_arrived_dropoff, timestamp_reached_next, missed_cycles, created_at
		FROM trip_logs
		WHERE user_id = $1 AND route_id = $2
		ORDER BY date ASC, created_at ASC`

	return r.queryLogs(ctx, query, false, userID, routeID)
}

// ListCompleted returns every trip that recorded a dropoff, with route
// details joined, for the benchmark report.
func (r *Repository) ListCompleted(ctx context.Context, userID string) ([]models.TripLog, error) {
	query := `
		SELECT t.id, t.route_id, t.user_id, t.date,
			t.timestamp_arrived_pickup, t.timestamp_boarded, t.timestamp_departed,
			t.timestamp_arrived_dropoff, t.timestamp_reached_next, t.missed_cycles,
			t.created_at, r.name, r.mode
		FROM trip_logs t
		JOIN routes r ON r.id = t.route_id
		WHERE t.user_id = $1 AND t.timestamp_arrived_dropoff <> '00:00:00'`

	return r.queryLogs(ctx, query, true, userID)
}

// ListDates returns the calendar dates of all trips for the day-of-week
// distribution.
func (r *Repository) ListDates(ctx context.Context, userID string) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT date FROM trip_logs WHERE user_id = $1`, userID)
	if err != nil {
		return nil, fmt.Errorf("repository.ListDates.Query: %w", err)
	}
	defer rows.Close()

	var dates []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("repository.ListDates.Scan: %w", err)
		}
		dates = append(dates, d)
	}
	return dates, nil
}

func (r *Repository) queryLogs(ctx context.Context, query string, joined bool, args ...interface{}) ([]models.TripLog, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("repository.queryLogs.Query: %w", err)
	}
	defer rows.Close()

	var logs []models.TripLog
	for rows.Next() {
		var log models.TripLog
		dest := []interface{}{
			&log.ID, &log.RouteID, &log.UserID, &log.Date,
			&log.TimestampArrivedPickup, &log.TimestampBoarded, &log.TimestampDeparted,
			&log.TimestampArrivedDrop, &log.TimestampReachedNext, &log.MissedCycles, &log.CreatedAt,
		}
		if joined {
			dest = append(dest, &log.RouteName, &log.RouteMode)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("repository.queryLogs.Scan: %w", err)
		}
		logs = append(logs, log)
	}
	return logs, nil
}

func orPlaceholder(ts string) string {
	if ts == "" {
		return "00:00:00"
	}
	return ts
}
