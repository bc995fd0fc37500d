package presets

import (
	"context"
	"fmt"

	"commutesync/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RepositoryInterface defines the contract for preset storage.
type RepositoryInterface interface {
	Create(ctx context.Context, userID string, req models.CreatePresetRequest) (*models.Preset, error)
	ListByUser(ctx context.Context, userID string) ([]models.Preset, error)
	Delete(ctx context.Context, userID, presetID string) error
}

// Repository implements RepositoryInterface on Postgres.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new preset repository.
func NewRepository(db *pgxpool.Pool) RepositoryInterface {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, userID string, req models.CreatePresetRequest) (*models.Preset, error) {
	preset := &models.Preset{
		ID:       uuid.New().String(),
		UserID:   userID,
		Name:     req.Name,
		RouteIDs: req.RouteIDs,
	}

	query := `
		INSERT INTO presets (id, user_id, name, route_ids)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at`

	err := r.db.QueryRow(ctx, query, preset.ID, preset.UserID, preset.Name, preset.RouteIDs).Scan(&preset.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("repository.CreatePreset: %w", err)
	}

	return preset, nil
}

func (r *Repository) ListByUser(ctx context.Context, userID string) ([]models.Preset, error) {
	query := `
		SELECT id, user_id, name, route_ids, created_at
		FROM presets
		WHERE user_id = $1
		ORDER BY name ASC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("repository.ListPresets.Query: %w", err)
	}
	defer rows.Close()

	var result []models.Preset
	for rows.Next() {
		var p models.Preset
		if err := rows.Scan(&p.ID, &p.UserID, &p.Name, &p.RouteIDs, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("repository.ListPresets.Scan: %w", err)
		}
		result = append(result, p)
	}
	return result, nil
}

func (r *Repository) Delete(ctx context.Context, userID, presetID string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM presets WHERE id = $1 AND user_id = $2`, presetID, userID)
	if err != nil {
		return fmt.Errorf("repository.DeletePreset: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}
