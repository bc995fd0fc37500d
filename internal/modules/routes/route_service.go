package routes

import (
	"context"
	"fmt"
	"math"

	"commutesync/internal/models"
	"commutesync/internal/stats"
	"commutesync/internal/timeutil"
)

// TripLogSource is the slice of the trip log store the analytics report
// needs.
type TripLogSource interface {
	ListByRoute(ctx context.Context, userID, routeID string) ([]models.TripLog, error)
}

// ServiceInterface defines the contract for route business logic.
type ServiceInterface interface {
	CreateRoute(ctx context.Context, userID string, req models.CreateRouteRequest) (*models.Route, error)
	ListRoutes(ctx context.Context, userID string) ([]models.Route, error)
	Analytics(ctx context.Context, userID string) ([]models.RouteAnalytics, error)
}

// Service implements the route service logic.
type Service struct {
	repo RepositoryInterface
	logs TripLogSource
}

// NewService creates a new route service.
func NewService(repo RepositoryInterface, logs TripLogSource) *Service {
	return &Service{repo: repo, logs: logs}
}

func (s *Service) CreateRoute(ctx context.Context, userID string, req models.CreateRouteRequest) (*models.Route, error) {
	route, err := s.repo.Create(ctx, userID, req)
	if err != nil {
		return nil, fmt.Errorf("service.CreateRoute: %w", err)
	}
	return route, nil
}

func (s *Service) ListRoutes(ctx context.Context, userID string) ([]models.Route, error) {
	result, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service.ListRoutes: %w", err)
	}
	return result, nil
}

// Analytics builds the per-route history report. Non-positive deltas are
// clamped to zero here: this is a display aggregate over everything the user
// logged, not the estimator's filtered sample.
func (s *Service) Analytics(ctx context.Context, userID string) ([]models.RouteAnalytics, error) {
	userRoutes, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service.Analytics.ListRoutes: %w", err)
	}

	report := make([]models.RouteAnalytics, 0, len(userRoutes))
	for _, route := range userRoutes {
		logs, err := s.logs.ListByRoute(ctx, userID, route.ID)
		if err != nil {
			return nil, fmt.Errorf("service.Analytics.ListLogs: %w", err)
		}

		row := models.RouteAnalytics{
			RouteID:     route.ID,
			RouteName:   route.Name,
			Mode:        route.Mode,
			Origin:      route.Origin,
			Destination: route.Destination,
			TotalTrips:  len(logs),
		}
		if len(logs) == 0 {
			report = append(report, row)
			continue
		}

		waits := make([]float64, 0, len(logs))
		travels := make([]float64, 0, len(logs))
		totals := make([]float64, 0, len(logs))
		missed := make([]float64, 0, len(logs))
		for _, l := range logs {
			w := clampedMinutes(l.TimestampArrivedPickup, l.TimestampBoarded)
			t := clampedMinutes(l.TimestampDeparted, l.TimestampArrivedDrop)
			waits = append(waits, w)
			travels = append(travels, t)
			totals = append(totals, w+t)
			missed = append(missed, float64(l.MissedCycles))
		}

		row.AvgTravel = roundStat(stats.Mean(travels))
		row.AvgTotal = roundStat(stats.Mean(totals))
		row.MinTravel = roundStat(stats.Min(travels))
		row.MaxTravel = roundStat(stats.Max(travels))
		row.MissedCyclesAvg = roundStat(stats.Mean(missed))
		if !route.Mode.DurationOnly() {
			row.AvgWait = roundStat(stats.Mean(waits))
			row.MinWait = roundStat(stats.Min(waits))
			row.MaxWait = roundStat(stats.Max(waits))
		}
		report = append(report, row)
	}

	return report, nil
}

func clampedMinutes(from, to string) float64 {
	a, errA := timeutil.ParseClock(from)
	b, errB := timeutil.ParseClock(to)
	if errA != nil || errB != nil {
		return 0
	}
	d := timeutil.MinutesBetween(a, b)
	if d < 0 {
		return 0
	}
	return d
}

func roundStat(v float64, ok bool) int {
	if !ok {
		return 0
	}
	return int(math.Round(v))
}
