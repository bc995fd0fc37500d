package logger

import (
	"context"
	"fmt"
	"time"
)

// RetryPolicy parameterizes the sync-to-remote operation: how many attempts,
// the initial delay, and the backoff multiplier between attempts.
type RetryPolicy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	Multiplier  float64
}

// DefaultSyncPolicy retries a failed sync twice more with doubling delays.
var DefaultSyncPolicy = RetryPolicy{
	MaxAttempts: 3,
	BaseDelay:   500 * time.Millisecond,
	Multiplier:  2,
}

// Do runs op until it succeeds, attempts run out, or the context is
// cancelled. The last error is returned wrapped with the attempt count.
func (p RetryPolicy) Do(ctx context.Context, op func(context.Context) error) error {
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	delay := p.BaseDelay
	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if lastErr = op(ctx); lastErr == nil {
			return nil
		}
		if attempt == attempts {
			break
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
		delay = time.Duration(float64(delay) * p.Multiplier)
	}

	return fmt.Errorf("sync failed after %d attempts: %w", attempts, lastErr)
}
