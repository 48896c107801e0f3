package common

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// ErrMaxRetries indicates that all retry attempts have been exhausted.
var ErrMaxRetries = errors.New("max retries exceeded")

// SleepFunc pauses between retry attempts. Injected so tests can run without
// real delays.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Sleep waits for d or until the context is canceled.
func Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// NoSleep returns immediately unless the context is already canceled.
func NoSleep(ctx context.Context, _ time.Duration) error {
	return ctx.Err()
}

// RetryOptions configures retry behavior for operations.
type RetryOptions struct {
	Sleep       SleepFunc
	MaxAttempts int
	Delay       time.Duration
}

// WithRetry executes an operation with a bounded fixed-delay retry loop.
func WithRetry(ctx context.Context, operation func() error, opts RetryOptions) error {
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = 3
	}
	if opts.Delay <= 0 {
		opts.Delay = 5 * time.Second
	}
	if opts.Sleep == nil {
		opts.Sleep = Sleep
	}

	var lastErr error
	for attempt := 1; attempt <= opts.MaxAttempts; attempt++ {
		lastErr = operation()
		if lastErr == nil {
			return nil
		}

		if !IsRetryable(lastErr) {
			return lastErr
		}

		if attempt == opts.MaxAttempts {
			break
		}

		slog.Warn("Operation failed, retrying",
			"attempt", attempt,
			"max_attempts", opts.MaxAttempts,
			"delay", opts.Delay,
			"error", lastErr)

		if err := opts.Sleep(ctx, opts.Delay); err != nil {
			return err
		}
	}

	return fmt.Errorf("%w after %d attempts: %v", ErrMaxRetries, opts.MaxAttempts, lastErr)
}
