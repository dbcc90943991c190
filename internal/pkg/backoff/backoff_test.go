// Copyright 2026 Peter Edge
//
// All rights reserved.

package backoff

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var testConfig = Config{
	MaxAttempts:  5,
	InitialDelay: time.Millisecond,
	MaxDelay:     5 * time.Millisecond,
}

func TestRetryable(t *testing.T) {
	t.Parallel()
	require.Nil(t, Retryable(nil))

	underlying := errors.New("service busy")
	err := Retryable(underlying)
	require.True(t, IsRetryable(err))
	require.ErrorIs(t, err, underlying)
	require.Equal(t, "service busy", err.Error())

	require.False(t, IsRetryable(underlying))
	require.False(t, IsRetryable(nil))
	// Wrapping preserves retryability.
	require.True(t, IsRetryable(errors.Join(errors.New("outer"), err)))
}

func TestRetrySucceedsImmediately(t *testing.T) {
	t.Parallel()
	calls := 0
	result, err := Retry(context.Background(), testConfig, func(context.Context, int) (string, error) {
		calls++
		return "ok", nil
	})
	require.NoError(t, err)
	require.Equal(t, "ok", result)
	require.Equal(t, 1, calls)
}

func TestRetrySucceedsAfterTransientFailures(t *testing.T) {
	t.Parallel()
	calls := 0
	result, err := Retry(context.Background(), testConfig, func(_ context.Context, attempt int) (int, error) {
		calls++
		require.Equal(t, calls-1, attempt)
		if calls < 3 {
			return 0, Retryable(errors.New("service busy"))
		}
		return 42, nil
	})
	require.NoError(t, err)
	require.Equal(t, 42, result)
	require.Equal(t, 3, calls)
}

func TestRetryStopsOnNonRetryableError(t *testing.T) {
	t.Parallel()
	calls := 0
	fatal := errors.New("bad token")
	_, err := Retry(context.Background(), testConfig, func(context.Context, int) (string, error) {
		calls++
		return "", fatal
	})
	require.ErrorIs(t, err, fatal)
	require.Equal(t, 1, calls)
}

func TestRetryExhaustsAttempts(t *testing.T) {
	t.Parallel()
	calls := 0
	underlying := errors.New("service busy")
	_, err := Retry(context.Background(), testConfig, func(context.Context, int) (string, error) {
		calls++
		return "", Retryable(underlying)
	})
	require.ErrorIs(t, err, underlying)
	require.ErrorContains(t, err, "failed after 5 attempts")
	require.Equal(t, 5, calls)
}

func TestRetryRespectsContextCancellation(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	config := Config{
		MaxAttempts:  3,
		InitialDelay: time.Minute,
		MaxDelay:     time.Minute,
	}
	_, err := Retry(ctx, config, func(context.Context, int) (string, error) {
		cancel()
		return "", Retryable(errors.New("service busy"))
	})
	require.ErrorIs(t, err, context.Canceled)
}
