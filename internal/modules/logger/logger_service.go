package logger

import (
	"context"
	"errors"
	"fmt"
	"log"

	"commutesync/internal/metrics"
	"commutesync/internal/models"
)

// TripLogCreator is the slice of the trip log store the completion sync
// needs. Implemented by the trip log repository.
type TripLogCreator interface {
	Create(ctx context.Context, userID string, req models.CreateTripLogRequest) (*models.TripLog, error)
}

// ServiceInterface defines the contract for logger session logic.
type ServiceInterface interface {
	Current(ctx context.Context, userID string) (*models.LoggerSession, error)
	Save(ctx context.Context, userID string, req models.UpsertSessionRequest) (*models.LoggerSession, bool, error)
	Clear(ctx context.Context, userID string) error
	RecordTimestamp(ctx context.Context, userID string, req models.TimestampRequest) (*models.LoggerSession, error)
	Complete(ctx context.Context, userID string, req models.CompleteSessionRequest) (*models.TripLog, error)
}

// Service holds trip-in-progress state in the session store and syncs
// completed sessions into the trip log store with a retry policy, so a
// flaky connection at the end of a trip does not lose the log.
type Service struct {
	repo       RepositoryInterface
	tripLogs   TripLogCreator
	syncPolicy RetryPolicy
	collector  *metrics.Collector
}

// NewService creates a new logger session service.
func NewService(repo RepositoryInterface, tripLogs TripLogCreator, syncPolicy RetryPolicy, collector *metrics.Collector) *Service {
	return &Service{
		repo:       repo,
		tripLogs:   tripLogs,
		syncPolicy: syncPolicy,
		collector:  collector,
	}
}

// Current returns the user's in-progress session, or ErrNotFound.
func (s *Service) Current(ctx context.Context, userID string) (*models.LoggerSession, error) {
	return s.repo.FindInProgress(ctx, userID)
}

// Save upserts the full session state. The second return value reports
// whether a new session was created.
func (s *Service) Save(ctx context.Context, userID string, req models.UpsertSessionRequest) (*models.LoggerSession, bool, error) {
	timestamps := req.Timestamps
	if timestamps == nil {
		timestamps = map[string]string{}
	}

	existing, err := s.repo.FindInProgress(ctx, userID)
	if err != nil {
		if !errors.Is(err, models.ErrNotFound) {
			return nil, false, fmt.Errorf("service.SaveSession: %w", err)
		}
		session, err := s.repo.Create(ctx, userID, req.RouteID, timestamps, req.MissedCycles)
		if err != nil {
			return nil, false, fmt.Errorf("service.SaveSession: %w", err)
		}
		return session, true, nil
	}

	session, err := s.repo.Update(ctx, existing.ID, req.RouteID, timestamps, req.MissedCycles)
	if err != nil {
		return nil, false, fmt.Errorf("service.SaveSession: %w", err)
	}
	return session, false, nil
}

// Clear removes the in-progress session after a save or manual reset.
func (s *Service) Clear(ctx context.Context, userID string) error {
	return s.repo.DeleteInProgress(ctx, userID)
}

// RecordTimestamp applies a single mark to the in-progress session, opening
// a new one when the mark is "arrived". Anything else without an open
// session is rejected: the trip has to start at the stop.
func (s *Service) RecordTimestamp(ctx context.Context, userID string, req models.TimestampRequest) (*models.LoggerSession, error) {
	if !models.ValidTimestampKind(req.TimestampType) {
		return nil, fmt.Errorf("%w: timestamp_type must be arrived, boarded, departed, or dropped", models.ErrValidation)
	}

	existing, err := s.repo.FindInProgress(ctx, userID)
	if err != nil {
		if !errors.Is(err, models.ErrNotFound) {
			return nil, fmt.Errorf("service.RecordTimestamp: %w", err)
		}
		if req.TimestampType != models.TimestampArrived {
			return nil, models.ErrNoActiveSession
		}
		missed := 0
		if req.MissedCycles != nil {
			missed = *req.MissedCycles
		}
		timestamps := map[string]string{req.TimestampType: req.Time}
		session, err := s.repo.Create(ctx, userID, req.RouteID, timestamps, missed)
		if err != nil {
			return nil, fmt.Errorf("service.RecordTimestamp: %w", err)
		}
		return session, nil
	}

	timestamps := existing.Timestamps
	if timestamps == nil {
		timestamps = map[string]string{}
	}
	timestamps[req.TimestampType] = req.Time

	missed := existing.MissedCycles
	if req.MissedCycles != nil {
		missed = *req.MissedCycles
	}

	session, err := s.repo.Update(ctx, existing.ID, req.RouteID, timestamps, missed)
	if err != nil {
		return nil, fmt.Errorf("service.RecordTimestamp: %w", err)
	}
	return session, nil
}

// Complete converts the in-progress session into an immutable trip log. The
// write goes through the retry policy; only after it lands is the session
// marked completed.
func (s *Service) Complete(ctx context.Context, userID string, req models.CompleteSessionRequest) (*models.TripLog, error) {
	session, err := s.repo.FindInProgress(ctx, userID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrNoActiveSession
		}
		return nil, fmt.Errorf("service.CompleteSession: %w", err)
	}

	logReq := models.CreateTripLogRequest{
		RouteID: session.RouteID,
		Date:    req.Date,
		Timestamps: models.TripTimestamps{
			Arrived:  session.Timestamps[models.TimestampArrived],
			Boarded:  session.Timestamps[models.TimestampBoarded],
			Departed: session.Timestamps[models.TimestampDeparted],
			Dropped:  session.Timestamps[models.TimestampDropped],
			NextStop: session.Timestamps["nextStop"],
		},
		MissedCycles: session.MissedCycles,
	}

	var created *models.TripLog
	err = s.syncPolicy.Do(ctx, func(ctx context.Context) error {
		var opErr error
		created, opErr = s.tripLogs.Create(ctx, userID, logReq)
		return opErr
	})
	if err != nil {
		return nil, fmt.Errorf("service.CompleteSession.sync: %w", err)
	}

	if err := s.repo.MarkCompleted(ctx, session.ID); err != nil {
		// The log is already saved; a dangling session is recoverable.
		log.Printf("logger: session %s completed but not marked: %v", session.ID, err)
	}
	s.collector.SessionsCompleted.Inc()

	return created, nil
}
