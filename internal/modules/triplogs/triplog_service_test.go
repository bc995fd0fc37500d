package triplogs

import (
	"context"
	"testing"

	"commutesync/internal/metrics"
	"commutesync/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRepository struct {
	completed []models.TripLog
	dates     []string
	created   *models.TripLog
}

func (s *stubRepository) Create(_ context.Context, userID string, req models.CreateTripLogRequest) (*models.TripLog, error) {
	s.created = &models.TripLog{
		ID:      "log-1",
		UserID:  userID,
		RouteID: req.RouteID,
		Date:    req.Date,
	}
	return s.created, nil
}

func (s *stubRepository) ListRecent(_ context.Context, _ string, limit int) ([]models.TripLog, error) {
	if limit < len(s.completed) {
		return s.completed[:limit], nil
	}
	return s.completed, nil
}

func (s *stubRepository) ListByRoute(_ context.Context, _, routeID string) ([]models.TripLog, error) {
	out := []models.TripLog{}
	for _, l := range s.completed {
		if l.RouteID == routeID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (s *stubRepository) ListCompleted(_ context.Context, _ string) ([]models.TripLog, error) {
	return s.completed, nil
}

func (s *stubRepository) ListDates(_ context.Context, _ string) ([]string, error) {
	return s.dates, nil
}

func completedLog(route string, mode models.Mode, departed, dropped string) models.TripLog {
	return models.TripLog{
		RouteName:              route,
		RouteMode:              mode,
		TimestampArrivedPickup: "08:00:00",
		TimestampBoarded:       "08:05:00",
		TimestampDeparted:      departed,
		TimestampArrivedDrop:   dropped,
	}
}

func TestBenchmarkGradesByVolatility(t *testing.T) {
	repo := &stubRepository{completed: []models.TripLog{
		// Steady route: identical 20-minute trips, sd 0 -> 95%.
		completedLog("Steady Jeep", models.ModeJeep, "08:10:00", "08:30:00"),
		completedLog("Steady Jeep", models.ModeJeep, "08:10:00", "08:30:00"),
		// Erratic route: 10 and 50 minute trips, sd 20 -> 60%.
		completedLog("Erratic Bus", models.ModeBus, "08:10:00", "08:20:00"),
		completedLog("Erratic Bus", models.ModeBus, "08:10:00", "09:00:00"),
	}}
	svc := NewService(repo, metrics.NewCollector())

	rows, err := svc.Benchmark(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	steady := rows[0]
	assert.Equal(t, "Steady Jeep", steady.Route)
	assert.Equal(t, 2, steady.TotalTrips)
	assert.Equal(t, 20, steady.AvgMin)
	assert.Equal(t, 0, steady.VolatilityMin)
	assert.Equal(t, "95%", steady.PredictionAccuracy)

	erratic := rows[1]
	assert.Equal(t, "Erratic Bus", erratic.Route)
	assert.Equal(t, 30, erratic.AvgMin)
	assert.Equal(t, 20, erratic.VolatilityMin)
	assert.Equal(t, "60%", erratic.PredictionAccuracy)
}

func TestBenchmarkOmitsRoutesWithoutUsableTravel(t *testing.T) {
	repo := &stubRepository{completed: []models.TripLog{
		// Dropped before departed: the only sample is negative.
		completedLog("Broken", models.ModeBus, "09:00:00", "08:00:00"),
		completedLog("Fine", models.ModeBus, "08:10:00", "08:40:00"),
	}}
	svc := NewService(repo, metrics.NewCollector())

	rows, err := svc.Benchmark(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Fine", rows[0].Route)
}

func TestAccuracyBands(t *testing.T) {
	tests := []struct {
		volatility int
		want       int
	}{
		{0, 95}, {2, 95}, {3, 90}, {5, 90}, {6, 80}, {10, 80}, {11, 70}, {15, 70}, {16, 60},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, accuracyFor(tt.volatility), "volatility %d", tt.volatility)
	}
}

func TestDayStatsCountsSundayFirst(t *testing.T) {
	repo := &stubRepository{dates: []string{
		"2024-01-07", // Sunday
		"2024-01-08", // Monday
		"2024-01-08", // Monday
		"2024-01-13", // Saturday
		"not-a-date", // skipped
	}}
	svc := NewService(repo, metrics.NewCollector())

	result, err := svc.DayStats(context.Background(), "u1")
	require.NoError(t, err)

	assert.Equal(t, []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}, result.Labels)
	assert.Equal(t, []int{1, 2, 0, 0, 0, 0, 1}, result.Data)
}

func TestDayStatsEmptyHistory(t *testing.T) {
	svc := NewService(&stubRepository{}, metrics.NewCollector())

	result, err := svc.DayStats(context.Background(), "u1")
	require.NoError(t, err)

	assert.Empty(t, result.Labels)
	assert.Empty(t, result.Data)
}

func TestCreateLogPersists(t *testing.T) {
	repo := &stubRepository{}
	svc := NewService(repo, metrics.NewCollector())

	log, err := svc.CreateLog(context.Background(), "u1", models.CreateTripLogRequest{
		RouteID: "r1",
		Date:    "2024-01-08",
	})
	require.NoError(t, err)
	assert.Equal(t, "r1", log.RouteID)
	assert.Equal(t, repo.created, log)
}
