package schedules

import (
	"context"
	"fmt"

	"commutesync/internal/models"
	"commutesync/internal/timeutil"
)

// ServiceInterface defines the contract for schedule business logic.
type ServiceInterface interface {
	CreateSchedule(ctx context.Context, userID string, req models.CreateScheduleRequest) (*models.ScheduleEntry, error)
	ListForRoute(ctx context.Context, userID, routeID string) ([]models.ScheduleEntry, error)
}

// Service implements the schedule service logic.
type Service struct {
	repo RepositoryInterface
}

// NewService creates a new schedule service.
func NewService(repo RepositoryInterface) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateSchedule(ctx context.Context, userID string, req models.CreateScheduleRequest) (*models.ScheduleEntry, error) {
	if req.StartTime != "" {
		if _, err := timeutil.ParseClock(req.StartTime); err != nil {
			return nil, fmt.Errorf("%w: %v", models.ErrValidation, err)
		}
	}
	if req.EndTime != "" {
		if _, err := timeutil.ParseClock(req.EndTime); err != nil {
			return nil, fmt.Errorf("%w: %v", models.ErrValidation, err)
		}
	}

	entry, err := s.repo.Create(ctx, userID, req)
	if err != nil {
		return nil, fmt.Errorf("service.CreateSchedule: %w", err)
	}
	return entry, nil
}

func (s *Service) ListForRoute(ctx context.Context, userID, routeID string) ([]models.ScheduleEntry, error) {
	entries, err := s.repo.ListByRoute(ctx, userID, routeID)
	if err != nil {
		return nil, fmt.Errorf("service.ListForRoute: %w", err)
	}
	return entries, nil
}
