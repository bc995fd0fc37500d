package presets

import (
	"context"
	"fmt"

	"commutesync/internal/models"
)

// ServiceInterface defines the contract for preset business logic.
type ServiceInterface interface {
	CreatePreset(ctx context.Context, userID string, req models.CreatePresetRequest) (*models.Preset, error)
	ListPresets(ctx context.Context, userID string) ([]models.Preset, error)
	DeletePreset(ctx context.Context, userID, presetID string) error
}

// Service implements the preset service logic.
type Service struct {
	repo RepositoryInterface
}

// NewService creates a new preset service.
func NewService(repo RepositoryInterface) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreatePreset(ctx context.Context, userID string, req models.CreatePresetRequest) (*models.Preset, error) {
	preset, err := s.repo.Create(ctx, userID, req)
	if err != nil {
		return nil, fmt.Errorf("service.CreatePreset: %w", err)
	}
	return preset, nil
}

func (s *Service) ListPresets(ctx context.Context, userID string) ([]models.Preset, error) {
	result, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service.ListPresets: %w", err)
	}
	return result, nil
}

func (s *Service) DeletePreset(ctx context.Context, userID, presetID string) error {
	return s.repo.Delete(ctx, userID, presetID)
}
