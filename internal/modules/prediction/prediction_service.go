package prediction

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"commutesync/internal/clock"
	"commutesync/internal/metrics"
	"commutesync/internal/models"
	"commutesync/internal/timeutil"
)

// RouteSource resolves route metadata. Implemented by the routes repository.
type RouteSource interface {
	FindByID(ctx context.Context, userID, routeID string) (*models.Route, error)
}

// LogSource resolves a route's historical trips. Implemented by the trip log
// repository.
type LogSource interface {
	ListByRoute(ctx context.Context, userID, routeID string) ([]models.TripLog, error)
}

// ScheduleSource resolves a route's schedule entries for a day type.
// Implemented by the schedule repository.
type ScheduleSource interface {
	ListByRouteAndDay(ctx context.Context, userID, routeID string, day models.DayType) ([]models.ScheduleEntry, error)
}

// ServiceInterface defines the contract for the prediction service.
type ServiceInterface interface {
	Predict(ctx context.Context, userID string, req models.PredictRequest) (*models.PredictResponse, error)
}

// Service wires the estimator and chainer to the datastores.
type Service struct {
	routes    RouteSource
	logs      LogSource
	schedules ScheduleSource
	clk       clock.Clock
	collector *metrics.Collector
	estimator Estimator
}

// NewService creates a new prediction service with the standard defaults.
func NewService(routes RouteSource, logs LogSource, schedules ScheduleSource, clk clock.Clock, collector *metrics.Collector) *Service {
	return &Service{
		routes:    routes,
		logs:      logs,
		schedules: schedules,
		clk:       clk,
		collector: collector,
		estimator: Estimator{Defaults: StandardDefaults},
	}
}

// Predict resolves the day type, fetches every leg's data concurrently, then
// chains the legs sequentially. A single leg's fetch failure degrades that
// leg to defaults; it never aborts the prediction.
func (s *Service) Predict(ctx context.Context, userID string, req models.PredictRequest) (*models.PredictResponse, error) {
	started := time.Now()

	if len(req.RouteIDs) == 0 {
		s.collector.PredictionFailures.Inc()
		return nil, fmt.Errorf("%w: route_ids must not be empty", models.ErrValidation)
	}
	start, err := timeutil.ParseClock(req.StartTime)
	if err != nil {
		s.collector.PredictionFailures.Inc()
		return nil, fmt.Errorf("%w: %v", models.ErrValidation, err)
	}

	targetDate := s.clk.Now()
	if req.Date != "" {
		targetDate, err = timeutil.ParseDate(req.Date)
		if err != nil {
			s.collector.PredictionFailures.Inc()
			return nil, fmt.Errorf("%w: %v", models.ErrValidation, err)
		}
	}
	dayType := models.DayTypeFor(targetDate)

	// Fetch ahead of time, apply in order: each leg's data is independent,
	// only the clock threading is sequential.
	legs := make([]LegData, len(req.RouteIDs))
	var wg sync.WaitGroup
	for i, routeID := range req.RouteIDs {
		wg.Add(1)
		go func(i int, routeID string) {
			defer wg.Done()
			legs[i] = s.fetchLeg(ctx, userID, routeID, dayType)
		}(i, routeID)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		s.collector.PredictionFailures.Inc()
		return nil, err
	}

	resp := s.estimator.Chain(start, legs)

	s.collector.PredictionRequests.Inc()
	s.collector.ChainLength.Observe(float64(len(legs)))
	s.collector.PredictionDuration.Observe(time.Since(started).Seconds())
	for _, leg := range resp.Breakdown {
		s.collector.LegSource.WithLabelValues(string(leg.Source)).Inc()
	}

	return &resp, nil
}

// fetchLeg gathers one leg's inputs. Lookup failures degrade: an unknown
// route becomes a generic vehicle leg, missing logs or schedules become
// empty sets, which route into the estimator's default paths.
func (s *Service) fetchLeg(ctx context.Context, userID, routeID string, dayType models.DayType) LegData {
	leg := LegData{}

	route, err := s.routes.FindByID(ctx, userID, routeID)
	if err != nil {
		log.Printf("predict: route %s lookup failed, degrading to defaults: %v", routeID, err)
		leg.Route = models.Route{ID: routeID, Name: "Unknown", Mode: models.DefaultMode}
	} else {
		leg.Route = *route
	}

	leg.Logs, err = s.logs.ListByRoute(ctx, userID, routeID)
	if err != nil {
		log.Printf("predict: logs for route %s unavailable: %v", routeID, err)
		leg.Logs = nil
	}

	leg.Entries, err = s.schedules.ListByRouteAndDay(ctx, userID, routeID, dayType)
	if err != nil {
		log.Printf("predict: schedules for route %s unavailable: %v", routeID, err)
		leg.Entries = nil
	}

	return leg
}
