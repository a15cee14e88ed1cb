package timeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"futureself/internal/generate"
)

// RetryPolicy bounds the attempts for one logical generation request. Both
// the interval and the custom request paths share the same policy engine.
type RetryPolicy struct {
	MaxAttempts int           // total attempts, including the first
	BackoffBase time.Duration // wait is BackoffBase * attemptNumber
}

// DefaultRetryPolicy matches the service contract: three attempts with
// linear backoff (1s, then 2s before the final attempt).
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: 3,
		BackoffBase: 1 * time.Second,
	}
}

// Backoff returns the wait before the attempt following attemptNumber.
func (p RetryPolicy) Backoff(attemptNumber int) time.Duration {
	return p.BackoffBase * time.Duration(attemptNumber)
}

// ErrAttemptsExhausted indicates every attempt failed.
var ErrAttemptsExhausted = errors.New("all generation attempts failed")

// Run executes the generation call under the policy. Transport errors and
// imageless responses are both transient until the final attempt. Returns the
// result, the number of attempts made, and the terminal error if exhausted.
func (p RetryPolicy) Run(ctx context.Context, log *zap.Logger, gen generate.Generator, req generate.Request) (*generate.Result, int, error) {
	var lastErr error

	for attempt := 1; attempt <= p.MaxAttempts; attempt++ {
		res, err := gen.Generate(ctx, req)
		if err == nil && res != nil && len(res.Image) > 0 {
			if attempt > 1 {
				log.Info("generation succeeded after retry", zap.Int("attempt", attempt))
			}
			return res, attempt, nil
		}
		if err == nil {
			err = generate.ErrNoImage
		}

		lastErr = err
		log.Warn("generation attempt failed",
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", p.MaxAttempts),
			zap.Error(err))

		if attempt == p.MaxAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return nil, attempt, ctx.Err()
		case <-time.After(p.Backoff(attempt)):
		}
	}

	return nil, p.MaxAttempts, fmt.Errorf("%w: %v", ErrAttemptsExhausted, lastErr)
}
