package triplogs

import (
	"context"
	"fmt"
	"math"

	"commutesync/internal/metrics"
	"commutesync/internal/models"
	"commutesync/internal/stats"
	"commutesync/internal/timeutil"
)

const historyLimit = 50

// ServiceInterface defines the contract for trip log business logic.
type ServiceInterface interface {
	CreateLog(ctx context.Context, userID string, req models.CreateTripLogRequest) (*models.TripLog, error)
	History(ctx context.Context, userID string) ([]models.TripLog, error)
	Benchmark(ctx context.Context, userID string) ([]models.BenchmarkRow, error)
	DayStats(ctx context.Context, userID string) (*models.DayStats, error)
}

// Service implements the trip log service logic.
type Service struct {
	repo    RepositoryInterface
	metrics *metrics.Collector
}

// NewService creates a new trip log service.
func NewService(repo RepositoryInterface, collector *metrics.Collector) *Service {
	return &Service{repo: repo, metrics: collector}
}

func (s *Service) CreateLog(ctx context.Context, userID string, req models.CreateTripLogRequest) (*models.TripLog, error) {
	log, err := s.repo.Create(ctx, userID, req)
	if err != nil {
		return nil, fmt.Errorf("service.CreateLog: %w", err)
	}
	s.metrics.TripLogsCreated.Inc()
	return log, nil
}

func (s *Service) History(ctx context.Context, userID string) ([]models.TripLog, error) {
	logs, err := s.repo.ListRecent(ctx, userID, historyLimit)
	if err != nil {
		return nil, fmt.Errorf("service.History: %w", err)
	}
	return logs, nil
}

// Benchmark grades each route's predictability from the spread of its logged
// travel times. Routes whose logs yield no positive travel sample are
// omitted; there is nothing to grade.
func (s *Service) Benchmark(ctx context.Context, userID string) ([]models.BenchmarkRow, error) {
	logs, err := s.repo.ListCompleted(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service.Benchmark: %w", err)
	}

	type routeSamples struct {
		mode    models.Mode
		travels []float64
	}
	byRoute := make(map[string]*routeSamples)
	order := make([]string, 0)

	for _, l := range logs {
		name := l.RouteName
		if name == "" {
			name = "Unknown"
		}
		rs, ok := byRoute[name]
		if !ok {
			rs = &routeSamples{mode: l.RouteMode}
			byRoute[name] = rs
			order = append(order, name)
		}
		travel, err := travelMinutes(l)
		if err == nil && travel > 0 {
			rs.travels = append(rs.travels, travel)
		}
	}

	result := make([]models.BenchmarkRow, 0, len(order))
	for _, name := range order {
		rs := byRoute[name]
		avg, ok := stats.Mean(rs.travels)
		if !ok {
			continue
		}
		sd, _ := stats.StdDev(rs.travels)
		volatility := int(math.Round(sd))

		result = append(result, models.BenchmarkRow{
			Route:              name,
			Mode:               rs.mode,
			TotalTrips:         len(rs.travels),
			AvgMin:             int(math.Round(avg)),
			VolatilityMin:      volatility,
			PredictionAccuracy: fmt.Sprintf("%d%%", accuracyFor(volatility)),
		})
	}

	return result, nil
}

// accuracyFor buckets travel-time volatility into an accuracy grade: the
// steadier the route, the better predictions track reality.
func accuracyFor(volatility int) int {
	switch {
	case volatility <= 2:
		return 95
	case volatility <= 5:
		return 90
	case volatility <= 10:
		return 80
	case volatility <= 15:
		return 70
	default:
		return 60
	}
}

// DayStats counts trips per day of week, Sunday first.
func (s *Service) DayStats(ctx context.Context, userID string) (*models.DayStats, error) {
	dates, err := s.repo.ListDates(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service.DayStats: %w", err)
	}

	result := &models.DayStats{
		Labels: []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
		Data:   make([]int, 7),
	}
	if len(dates) == 0 {
		result.Labels = []string{}
		result.Data = []int{}
		return result, nil
	}

	for _, d := range dates {
		day, err := timeutil.ParseDate(d)
		if err != nil {
			continue
		}
		result.Data[int(day.Weekday())]++
	}

	return result, nil
}

func travelMinutes(l models.TripLog) (float64, error) {
	departed, err := timeutil.ParseClock(l.TimestampDeparted)
	if err != nil {
		return 0, err
	}
	dropped, err := timeutil.ParseClock(l.TimestampArrivedDrop)
	if err != nil {
		return 0, err
	}
	return timeutil.MinutesBetween(departed, dropped), nil
}
