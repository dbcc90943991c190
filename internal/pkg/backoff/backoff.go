// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package backoff provides exponential backoff with jitter for retrying operations.
package backoff

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"
)

// Config controls the retry schedule.
type Config struct {
	// MaxAttempts is the maximum number of calls to f.
	MaxAttempts int
	// InitialDelay is the delay after the first failed attempt.
	InitialDelay time.Duration
	// MaxDelay caps the exponentially growing delay.
	MaxDelay time.Duration
}

// Retryable wraps err to mark it as transient. Retry will try again when f
// returns a retryable error, and give up immediately otherwise.
func Retryable(err error) error {
	if err == nil {
		return nil
	}
	return &retryableError{err: err}
}

// IsRetryable reports whether err is marked as transient.
func IsRetryable(err error) bool {
	var retryableErr *retryableError
	return errors.As(err, &retryableErr)
}

// Retry calls f until it succeeds, returns a non-retryable error, or the
// maximum number of attempts is reached. Between attempts, it waits with
// exponential backoff and jitter.
func Retry[T any](
	ctx context.Context,
	config Config,
	f func(ctx context.Context, attempt int) (T, error),
) (T, error) {
	var zero T
	delay := config.InitialDelay
	for attempt := range config.MaxAttempts {
		result, err := f(ctx, attempt)
		if err == nil {
			return result, nil
		}
		if !IsRetryable(err) {
			return zero, err
		}
		// Don't wait after the last attempt.
		if attempt == config.MaxAttempts-1 {
			return zero, fmt.Errorf("failed after %d attempts: %w", config.MaxAttempts, err)
		}
		// Wait with jitter: random duration between delay/2 and delay.
		jitteredDelay := delay/2 + time.Duration(rand.Int64N(int64(delay/2+1)))
		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(jitteredDelay):
		}
		// Exponential backoff, capped at MaxDelay.
		delay *= 2
		if delay > config.MaxDelay {
			delay = config.MaxDelay
		}
	}
	return zero, fmt.Errorf("failed after %d attempts", config.MaxAttempts)
}

// *** PRIVATE ***

type retryableError struct {
	err error
}

func (r *retryableError) Error() string {
	return r.err.Error()
}

func (r *retryableError) Unwrap() error {
	return r.err
}
