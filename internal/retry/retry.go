// Package retry runs an operation a bounded number of times with a fixed pause.
package retry

import (
	"context"
	"fmt"
	"time"
)

// Do calls fn up to attempts times, sleeping backoff between failures.
// It returns nil on the first success, otherwise the last error.
// A cancelled context stops the loop early and is reported alongside the last error.
func Do(ctx context.Context, attempts int, backoff time.Duration, fn func(ctx context.Context) error) error {
	if attempts < 1 {
		attempts = 1
	}

	var err error
	for i := 0; i < attempts; i++ {
		if err = fn(ctx); err == nil {
			return nil
		}
		if i == attempts-1 {
			break
		}

		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return fmt.Errorf("%w (after attempt %d: %v)", ctx.Err(), i+1, err)
		case <-timer.C:
		}
	}

	return fmt.Errorf("failed after %d attempts: %w", attempts, err)
}

// Value is Do for operations that produce a result
func Value[T any](ctx context.Context, attempts int, backoff time.Duration, fn func(ctx context.Context) (T, error)) (T, error) {
	var result T
	err := Do(ctx, attempts, backoff, func(ctx context.Context) error {
		v, err := fn(ctx)
		if err != nil {
			return err
		}
		result = v
		return nil
	})
	return result, err
}
