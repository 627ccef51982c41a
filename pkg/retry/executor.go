// Package retry provides the retry execution loop
package retry

import (
	"context"

	"github.com/jzx17/godecor/pkg/types"
)

// Operation is the function type to retry
type Operation[T any] func(ctx context.Context) (T, error)

// Execute runs fn under the policy. On success the result is returned
// immediately and the success hook fires with the final attempt count. A
// failure outside the handled set propagates at once, unmodified and
// uncounted, without any hook firing. When attempts are exhausted the
// failure hook fires and the last handled failure reaches the caller
// verbatim.
func Execute[T any](p *Policy, ctx context.Context, fn Operation[T]) (T, error) {
	var zero T
	var lastErr error

	clock := p.clock
	if clock == nil {
		clock = types.ClockFromContext(ctx)
	}

	attempt := 0
	for attempt < p.maxAttempts {
		attempt++

		result, err := fn(ctx)
		if err == nil {
			if p.onSuccess != nil {
				p.onSuccess(attempt)
			}
			return result, nil
		}

		if !p.handles(err) {
			return zero, err
		}
		lastErr = err

		if !p.shouldRetry(attempt, err) {
			break
		}

		if p.onRetry != nil {
			p.onRetry(attempt, err)
		}

		// sleep-time providers index by zero-based retry number
		delay := p.sleepTime(attempt-1, err)
		if delay > 0 {
			select {
			case <-ctx.Done():
				return zero, ctx.Err()
			case <-clock.After(delay):
			}
		}
	}

	if p.onFailure != nil {
		p.onFailure(attempt, lastErr)
	}
	return zero, lastErr
}

// Wrap decorates fn with the retry policy, returning a function with an
// identical signature.
func Wrap[T, R any](p *Policy, fn func(context.Context, T) (R, error)) func(context.Context, T) (R, error) {
	return func(ctx context.Context, input T) (R, error) {
		return Execute(p, ctx, func(ctx context.Context) (R, error) {
			return fn(ctx, input)
		})
	}
}
