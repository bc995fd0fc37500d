package logger

import (
	"context"
	"errors"
	"fmt"

	"commutesync/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RepositoryInterface defines the contract for logger session storage.
type RepositoryInterface interface {
	FindInProgress(ctx context.Context, userID string) (*models.LoggerSession, error)
	Create(ctx context.Context, userID, routeID string, timestamps map[string]string, missedCycles int) (*models.LoggerSession, error)
	Update(ctx context.Context, sessionID, routeID string, timestamps map[string]string, missedCycles int) (*models.LoggerSession, error)
	DeleteInProgress(ctx context.Context, userID string) error
	MarkCompleted(ctx context.Context, sessionID string) error
}

// Repository implements RepositoryInterface on Postgres. Timestamps live in
// a jsonb column; pgx maps map[string]string to it directly.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new logger session repository.
func NewRepository(db *pgxpool.Pool) RepositoryInterface {
	return &Repository{db: db}
}

func (r *Repository) FindInProgress(ctx context.Context, userID string) (*models.LoggerSession, error) {
	session := &models.LoggerSession{}
	query := `
		SELECT id, user_id, route_id, timestamps, missed_cycles, status, created_at, updated_at
		FROM logger_sessions
		WHERE user_id = $1 AND status = $2
		ORDER BY created_at DESC
		LIMIT 1`

	err := r.db.QueryRow(ctx, query, userID, models.SessionInProgress).Scan(
		&session.ID, &session.UserID, &session.RouteID, &session.Timestamps,
		&session.MissedCycles, &session.Status, &session.CreatedAt, &session.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("repository.FindInProgress: %w", err)
	}
	return session, nil
}

func (r *Repository) Create(ctx context.Context, userID, routeID string, timestamps map[string]string, missedCycles int) (*models.LoggerSession, error) {
	session := &models.LoggerSession{
		ID:           uuid.New().String(),
		UserID:       userID,
		RouteID:      routeID,
		Timestamps:   timestamps,
		MissedCycles: missedCycles,
		Status:       models.SessionInProgress,
	}

	query := `
		INSERT INTO logger_sessions (id, user_id, route_id, timestamps, missed_cycles, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at`

	err := r.db.QueryRow(ctx, query,
		session.ID, session.UserID, session.RouteID, session.Timestamps,
		session.MissedCycles, session.Status,
	).Scan(&session.CreatedAt, &session.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("repository.CreateSession: %w", err)
	}
	return session, nil
}

func (r *Repository) Update(ctx context.Context, sessionID, routeID string, timestamps map[string]string, missedCycles int) (*models.LoggerSession, error) {
	session := &models.LoggerSession{}
	query := `
		UPDATE logger_sessions
		SET route_id = $1, timestamps = $2, missed_cycles = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING id, user_id, route_id, timestamps, missed_cycles, status, created_at, updated_at`

	err := r.db.QueryRow(ctx, query, routeID, timestamps, missedCycles, sessionID).Scan(
		&session.ID, &session.UserID, &session.RouteID, &session.Timestamps,
		&session.MissedCycles, &session.Status, &session.CreatedAt, &session.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("repository.UpdateSession: %w", err)
	}
	return session, nil
}

func (r *Repository) DeleteInProgress(ctx context.Context, userID string) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM logger_sessions WHERE user_id = $1 AND status = $2`,
		userID, models.SessionInProgress,
	)
	if err != nil {
		return fmt.Errorf("repository.DeleteInProgress: %w", err)
	}
	return nil
}

func (r *Repository) MarkCompleted(ctx context.Context, sessionID string) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE logger_sessions SET status = $1, updated_at = NOW() WHERE id = $2`,
		models.SessionCompleted, sessionID,
	)
	if err != nil {
		return fmt.Errorf("repository.MarkCompleted: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}
