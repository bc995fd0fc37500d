package prediction

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"commutesync/internal/clock"
	"commutesync/internal/metrics"
	"commutesync/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRouteSource struct {
	routes map[string]models.Route
	err    error
}

func (s *stubRouteSource) FindByID(_ context.Context, _, routeID string) (*models.Route, error) {
	if s.err != nil {
		return nil, s.err
	}
	route, ok := s.routes[routeID]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &route, nil
}

type stubLogSource struct {
	logs map[string][]models.TripLog
	err  error
}

func (s *stubLogSource) ListByRoute(_ context.Context, _, routeID string) ([]models.TripLog, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.logs[routeID], nil
}

type stubScheduleSource struct {
	mu      sync.Mutex
	entries map[string][]models.ScheduleEntry
	seenDay models.DayType
}

func (s *stubScheduleSource) ListByRouteAndDay(_ context.Context, _, routeID string, day models.DayType) ([]models.ScheduleEntry, error) {
	s.mu.Lock()
	s.seenDay = day
	s.mu.Unlock()
	return s.entries[routeID], nil
}

func newTestService(routes *stubRouteSource, logs *stubLogSource, schedules *stubScheduleSource, now time.Time) *Service {
	if routes == nil {
		routes = &stubRouteSource{routes: map[string]models.Route{}}
	}
	if logs == nil {
		logs = &stubLogSource{}
	}
	if schedules == nil {
		schedules = &stubScheduleSource{}
	}
	return NewService(routes, logs, schedules, clock.NewMockClock(now), metrics.NewCollector())
}

func TestPredictValidation(t *testing.T) {
	svc := newTestService(nil, nil, nil, time.Date(2024, 1, 8, 7, 0, 0, 0, time.UTC))

	tests := []struct {
		name string
		req  models.PredictRequest
	}{
		{"empty route list", models.PredictRequest{StartTime: "08:00"}},
		{"bad start time", models.PredictRequest{RouteIDs: []string{"r1"}, StartTime: "25:99"}},
		{"bad date", models.PredictRequest{RouteIDs: []string{"r1"}, StartTime: "08:00", Date: "01/08/2024"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Predict(context.Background(), "u1", tt.req)
			assert.ErrorIs(t, err, models.ErrValidation)
		})
	}
}

func TestPredictResolvesDayTypeFromRequestDate(t *testing.T) {
	schedules := &stubScheduleSource{}
	routes := &stubRouteSource{routes: map[string]models.Route{
		"r1": {ID: "r1", Name: "Bus", Mode: models.ModeBus},
	}}
	svc := newTestService(routes, nil, schedules, time.Date(2024, 1, 8, 7, 0, 0, 0, time.UTC))

	tests := []struct {
		date string
		want models.DayType
	}{
		{"2024-01-06", models.DayTypeSat},
		{"2024-01-07", models.DayTypeSunHol},
		{"2024-01-08", models.DayTypeWeekday},
	}
	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			_, err := svc.Predict(context.Background(), "u1", models.PredictRequest{
				RouteIDs:  []string{"r1"},
				StartTime: "08:00",
				Date:      tt.date,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, schedules.seenDay)
		})
	}
}

func TestPredictDefaultsDateToClockNow(t *testing.T) {
	schedules := &stubScheduleSource{}
	routes := &stubRouteSource{routes: map[string]models.Route{
		"r1": {ID: "r1", Name: "Bus", Mode: models.ModeBus},
	}}
	// Clock pinned to a Sunday.
	svc := newTestService(routes, nil, schedules, time.Date(2024, 1, 7, 7, 0, 0, 0, time.UTC))

	_, err := svc.Predict(context.Background(), "u1", models.PredictRequest{
		RouteIDs:  []string{"r1"},
		StartTime: "08:00",
	})
	require.NoError(t, err)
	assert.Equal(t, models.DayTypeSunHol, schedules.seenDay)
}

func TestPredictEndToEnd(t *testing.T) {
	routes := &stubRouteSource{routes: map[string]models.Route{
		"r1": {ID: "r1", Name: "Morning Bus", Mode: models.ModeBus, Origin: "Home", Destination: "Station"},
	}}
	logs := &stubLogSource{logs: map[string][]models.TripLog{
		"r1": {
			vehicleLog("08:00:00", "08:04:00", "08:05:00", "08:17:00"),
			vehicleLog("08:00:00", "08:06:00", "08:07:00", "08:21:00"),
			vehicleLog("08:00:00", "08:08:00", "08:09:00", "08:25:00"),
		},
	}}
	svc := newTestService(routes, logs, nil, time.Date(2024, 1, 8, 7, 0, 0, 0, time.UTC))

	resp, err := svc.Predict(context.Background(), "u1", models.PredictRequest{
		RouteIDs:  []string{"r1"},
		StartTime: "08:00",
	})
	require.NoError(t, err)

	assert.Equal(t, "08:12", resp.Arrivals.Best)
	assert.Equal(t, "08:20", resp.Arrivals.Safe)
	assert.Equal(t, "08:24", resp.Arrivals.Worst)
	require.Len(t, resp.Breakdown, 1)
	assert.Equal(t, "Morning Bus", resp.Breakdown[0].Name)
	assert.Equal(t, models.SourceHistorical, resp.Breakdown[0].Source)
}

func TestPredictDegradesUnknownRoute(t *testing.T) {
	svc := newTestService(nil, nil, nil, time.Date(2024, 1, 8, 7, 0, 0, 0, time.UTC))

	resp, err := svc.Predict(context.Background(), "u1", models.PredictRequest{
		RouteIDs:  []string{"missing"},
		StartTime: "08:00",
	})
	require.NoError(t, err)

	require.Len(t, resp.Breakdown, 1)
	leg := resp.Breakdown[0]
	assert.Equal(t, "Unknown", leg.Name)
	assert.Equal(t, models.DefaultMode, leg.Mode)
	assert.Equal(t, models.SourceDefault, leg.Source)
	// Bare vehicle defaults: safe 5+15, worst 15+20 past an 08:00 start.
	assert.Equal(t, "08:20", resp.Arrivals.Safe)
	assert.Equal(t, "08:35", resp.Arrivals.Worst)
}

func TestPredictSurvivesLogSourceFailure(t *testing.T) {
	routes := &stubRouteSource{routes: map[string]models.Route{
		"r1": {ID: "r1", Name: "Bus", Mode: models.ModeBus},
	}}
	logs := &stubLogSource{err: errors.New("connection reset")}
	svc := newTestService(routes, logs, nil, time.Date(2024, 1, 8, 7, 0, 0, 0, time.UTC))

	resp, err := svc.Predict(context.Background(), "u1", models.PredictRequest{
		RouteIDs:  []string{"r1"},
		StartTime: "08:00",
	})
	require.NoError(t, err)
	assert.Equal(t, models.SourceDefault, resp.Breakdown[0].Source)
}

func TestPredictPreservesItineraryOrder(t *testing.T) {
	routes := &stubRouteSource{routes: map[string]models.Route{
		"r1": {ID: "r1", Name: "First", Mode: models.ModeWalking},
		"r2": {ID: "r2", Name: "Second", Mode: models.ModeBus},
		"r3": {ID: "r3", Name: "Third", Mode: models.ModeJeep},
	}}
	svc := newTestService(routes, nil, nil, time.Date(2024, 1, 8, 7, 0, 0, 0, time.UTC))

	resp, err := svc.Predict(context.Background(), "u1", models.PredictRequest{
		RouteIDs:  []string{"r1", "r2", "r3"},
		StartTime: "06:00",
	})
	require.NoError(t, err)

	require.Len(t, resp.Breakdown, 3)
	assert.Equal(t, "First", resp.Breakdown[0].Name)
	assert.Equal(t, "Second", resp.Breakdown[1].Name)
	assert.Equal(t, "Third", resp.Breakdown[2].Name)
}
