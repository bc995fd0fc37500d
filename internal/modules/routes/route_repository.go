package routes

import (
	"context"
	"errors"
	"fmt"

	"commutesync/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RepositoryInterface defines the contract for route storage.
type RepositoryInterface interface {
	Create(ctx context.Context, userID string, req models.CreateRouteRequest) (*models.Route, error)
	FindByID(ctx context.Context, userID, routeID string) (*models.Route, error)
	ListByUser(ctx context.Context, userID string) ([]models.Route, error)
}

// Repository implements RepositoryInterface on Postgres.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new route repository.
func NewRepository(db *pgxpool.Pool) RepositoryInterface {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, userID string, req models.CreateRouteRequest) (*models.Route, error) {
	route := &models.Route{
		ID:          uuid.New().String(),
		UserID:      userID,
		Name:        req.Name,
		Mode:        models.Mode(req.Mode),
		Origin:      req.Origin,
		Destination: req.Destination,
	}

	query := `
		INSERT INTO routes (id, user_id, name, mode, origin, destination)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at`

	err := r.db.QueryRow(ctx, query,
		route.ID, route.UserID, route.Name, string(route.Mode), route.Origin, route.Destination,
	).Scan(&route.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("repository.CreateRoute: %w", err)
	}

	return route, nil
}

func (r *Repository) FindByID(ctx context.Context, userID, routeID string) (*models.Route, error) {
	route := &models.Route{}
	query := `
		SELECT id, user_id, name, mode, origin, destination, created_at
		FROM routes
		WHERE id = $1 AND user_id = $2`

	err := r.db.QueryRow(ctx, query, routeID, userID).Scan(
		&route.ID, &route.UserID, &route.Name, &route.Mode, &route.Origin, &route.Destination, &route.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("repository.FindRouteByID: %w", err)
	}
	return route, nil
}

func (r *Repository) ListByUser(ctx context.Context, userID string) ([]models.Route, error) {
	query := `
		SELECT id, user_id, name, mode, origin, destination, created_at
		FROM routes
		WHERE user_id = $1
		ORDER BY name ASC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("repository.ListRoutes.Query: %w", err)
	}
	defer rows.Close()

	var result []models.Route
	for rows.Next() {
		var route models.Route
		if err := rows.Scan(
			&route.ID, &route.UserID, &route.Name, &route.Mode, &route.Origin, &route.Destination, &route.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("repository.ListRoutes.Scan: %w", err)
		}
		result = append(result, route)
	}

	return result, nil
}
