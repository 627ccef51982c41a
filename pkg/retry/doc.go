// Package retry implements a configurable retry executor with pluggable hooks.
//
// A Policy is built once with functional options and is immutable afterwards.
// It decides which failures are eligible for another attempt, how many
// attempts are allowed, and how long to wait between them.
//
// Configuration surface:
//
//   - WithHandledErrors: the set of failure kinds eligible for retry,
//     matched via errors.Is (default: every error is handled)
//   - WithHandledMatch: a predicate replacing the set-membership test
//   - WithMaxRetries: retries beyond the first attempt (default 3,
//     i.e. 4 attempts total)
//   - WithBackoffSchedule: wait durations indexed by zero-based retry
//     number (default 0s, 1s, 2s)
//   - WithOnRetry, WithOnSuccess, WithOnFailure: side-effecting hooks
//   - WithShouldRetry: overrides the attempt-count check
//   - WithSleepTime: overrides the schedule lookup
//   - WithClock: clock used for backoff waits (mockable in tests)
//
// Basic usage:
//
//	policy := retry.NewPolicy(
//		retry.WithHandledErrors(io.ErrUnexpectedEOF),
//		retry.WithMaxRetries(5),
//	)
//
//	result, err := retry.Execute(policy, ctx, func(ctx context.Context) (string, error) {
//		return fetch(ctx)
//	})
//
// Decorator form:
//
//	fetch = retry.Wrap(policy, fetch)
//
// Failure semantics:
//
// A failure outside the handled set propagates immediately, unmodified and
// uncounted, with no hook invocations. When attempts are exhausted the last
// handled failure reaches the caller verbatim; the executor never wraps or
// converts errors. Every path either returns a success value or an error.
//
// Waits block the calling goroutine on the configured Clock. A context
// cancelled during a wait aborts the execution with ctx.Err().
package retry
