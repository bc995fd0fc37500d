package schedules

import (
	"context"
	"fmt"

	"commutesync/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RepositoryInterface defines the contract for schedule storage.
type RepositoryInterface interface {
	Create(ctx context.Context, userID string, req models.CreateScheduleRequest) (*models.ScheduleEntry, error)
	ListByRoute(ctx context.Context, userID, routeID string) ([]models.ScheduleEntry, error)
	ListByRouteAndDay(ctx context.Context, userID, routeID string, day models.DayType) ([]models.ScheduleEntry, error)
}

// Repository implements RepositoryInterface on Postgres.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new schedule repository.
func NewRepository(db *pgxpool.Pool) RepositoryInterface {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, userID string, req models.CreateScheduleRequest) (*models.ScheduleEntry, error) {
	entry := &models.ScheduleEntry{
		ID:              uuid.New().String(),
		RouteID:         req.RouteID,
		UserID:          userID,
		DayType:         models.DayType(req.DayType),
		IntervalMinutes: req.IntervalMinutes,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
	}

	query := `
		INSERT INTO route_schedules (id, route_id, user_id, day_type, interval_minutes, start_time, end_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at`

	err := r.db.QueryRow(ctx, query,
		entry.ID, entry.RouteID, entry.UserID, string(entry.DayType),
		entry.IntervalMinutes, entry.StartTime, entry.EndTime,
	).Scan(&entry.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("repository.CreateSchedule: %w", err)
	}

	return entry, nil
}

func (r *Repository) ListByRoute(ctx context.Context, userID, routeID string) ([]models.ScheduleEntry, error) {
	query := `
		SELECT id, route_id, user_id, day_type, interval_minutes, start_time, end_time, created_at
		FROM route_schedules
		WHERE user_id = $1 AND route_id = $2
		ORDER BY day_type, start_time`

	return r.queryEntries(ctx, query, userID, routeID)
}

func (r *Repository) ListByRouteAndDay(ctx context.Context, userID, routeID string, day models.DayType) ([]models.ScheduleEntry, error) {
	query := `
		SELECT id, route_id, user_id, day_type, interval_minutes, start_time, end_time, created_at
		FROM route_schedules
		WHERE user_id = $1 AND route_id = $2 AND day_type = $3
		ORDER BY start_time`

	return r.queryEntries(ctx, query, userID, routeID, string(day))
}

func (r *Repository) queryEntries(ctx context.Context, query string, args ...interface{}) ([]models.ScheduleEntry, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("repository.queryEntries.Query: %w", err)
	}
	defer rows.Close()

	var entries []models.ScheduleEntry
	for rows.Next() {
		var e models.ScheduleEntry
		if err := rows.Scan(
			&e.ID, &e.RouteID, &e.UserID, &e.DayType, &e.IntervalMinutes,
			&e.StartTime, &e.EndTime, &e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("repository.queryEntries.Scan: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
