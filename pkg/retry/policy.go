// Package retry provides retry policy configuration
package retry

import (
	"errors"
	"time"

	"github.com/jzx17/godecor/pkg/types"
)

// Default configuration values
const (
	// DefaultMaxRetries is the number of retries beyond the first attempt
	DefaultMaxRetries = 3
)

// DefaultBackoffSchedule is the default wait schedule, indexed by
// zero-based retry number.
var DefaultBackoffSchedule = []time.Duration{0, 1 * time.Second, 2 * time.Second}

// OnRetryHook is invoked before each wait/retry with the failing attempt
// number (1-based) and the handled failure.
type OnRetryHook func(attempt int, err error)

// OnSuccessHook is invoked once on successful completion with the total
// attempt count.
type OnSuccessHook func(totalAttempts int)

// OnFailureHook is invoked once when retries are exhausted, with the total
// attempt count and the last handled failure.
type OnFailureHook func(totalAttempts int, err error)

// ShouldRetryFunc decides whether to continue after a handled failure.
// It overrides the default attempt-count check.
type ShouldRetryFunc func(attempt int, err error) bool

// SleepTimeFunc computes the wait before the next attempt. retryAttempt is
// the zero-based retry number, i.e. attempt-1. It overrides the default
// schedule lookup.
type SleepTimeFunc func(retryAttempt int, err error) time.Duration

// MatchFunc reports whether a failure belongs to the handled set.
type MatchFunc func(err error) bool

// Policy holds the retry configuration. It is built once by NewPolicy and
// must not be mutated afterwards; a Policy is safe to share across
// goroutines as long as the supplied hooks are.
type Policy struct {
	handled     []error
	match       MatchFunc
	maxAttempts int
	schedule    []time.Duration
	onRetry     OnRetryHook
	onSuccess   OnSuccessHook
	onFailure   OnFailureHook
	shouldRetry ShouldRetryFunc
	sleepTime   SleepTimeFunc
	clock       types.Clock
}

// Option is a configuration option for a Policy
type Option func(*Policy)

// WithHandledErrors sets the failure kinds eligible for retry. Membership
// is tested via errors.Is against each target. With no targets configured
// every failure is handled.
func WithHandledErrors(targets ...error) Option {
	return func(p *Policy) {
		p.handled = targets
	}
}

// WithHandledMatch sets a predicate for the handled set, replacing the
// errors.Is membership test.
func WithHandledMatch(match MatchFunc) Option {
	return func(p *Policy) {
		p.match = match
	}
}

// WithMaxRetries sets the number of retries beyond the first attempt.
// Negative values are treated as zero; the operation is always attempted
// at least once.
func WithMaxRetries(retries int) Option {
	return func(p *Policy) {
		if retries < 0 {
			retries = 0
		}
		p.maxAttempts = retries + 1
	}
}

// WithBackoffSchedule sets the wait durations consulted by zero-based
// retry number. The schedule must cover every retry the policy (or a
// custom should-retry predicate) allows; an out-of-range index is a
// configuration error and panics.
func WithBackoffSchedule(schedule []time.Duration) Option {
	return func(p *Policy) {
		p.schedule = schedule
	}
}

// WithOnRetry sets the retry hook
func WithOnRetry(hook OnRetryHook) Option {
	return func(p *Policy) {
		p.onRetry = hook
	}
}

// WithOnSuccess sets the success hook
func WithOnSuccess(hook OnSuccessHook) Option {
	return func(p *Policy) {
		p.onSuccess = hook
	}
}

// WithOnFailure sets the failure hook
func WithOnFailure(hook OnFailureHook) Option {
	return func(p *Policy) {
		p.onFailure = hook
	}
}

// WithShouldRetry sets the should-retry predicate
func WithShouldRetry(fn ShouldRetryFunc) Option {
	return func(p *Policy) {
		p.shouldRetry = fn
	}
}

// WithSleepTime sets the sleep-time provider
func WithSleepTime(fn SleepTimeFunc) Option {
	return func(p *Policy) {
		p.sleepTime = fn
	}
}

// WithClock sets the clock used for backoff waits
func WithClock(clock types.Clock) Option {
	return func(p *Policy) {
		p.clock = clock
	}
}

// NewPolicy creates a retry policy
func NewPolicy(opts ...Option) *Policy {
	p := &Policy{
		maxAttempts: DefaultMaxRetries + 1,
		schedule:    DefaultBackoffSchedule,
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.shouldRetry == nil {
		p.shouldRetry = func(attempt int, err error) bool {
			return attempt < p.maxAttempts
		}
	}
	if p.sleepTime == nil {
		p.sleepTime = func(retryAttempt int, err error) time.Duration {
			return p.schedule[retryAttempt]
		}
	}

	return p
}

// MaxAttempts returns the maximum number of attempts, always at least 1
func (p *Policy) MaxAttempts() int {
	return p.maxAttempts
}

// handles reports whether err belongs to the handled failure set
func (p *Policy) handles(err error) bool {
	if p.match != nil {
		return p.match(err)
	}
	if len(p.handled) == 0 {
		return true
	}
	for _, target := range p.handled {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
