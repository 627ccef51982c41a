// Package timed measures wall-clock duration of calls and reports it to a
// statistics sink.
//
// The sink requirement is the single-method Sink interface; a nil sink is
// rejected when the Timer is built, not when a call is made. Timing is
// recorded only after the wrapped call returns successfully; a failing
// call propagates its error with nothing recorded.
package timed

import (
	"errors"
	"time"

	"github.com/jzx17/godecor/pkg/types"
)

// ErrNilSink indicates a Timer was built without a statistics sink
var ErrNilSink = errors.New("timed: a statistics sink is required")

// DefaultSampleRate forwards every measurement
const DefaultSampleRate = 1.0

// Sink receives timing measurements. Sample-rate filtering is the sink's
// responsibility; the Timer forwards every successful measurement.
type Sink interface {
	RecordTiming(stat string, elapsed time.Duration, sampleRate float64)
}

// Timer records wall-clock durations of wrapped calls
type Timer struct {
	sink       Sink
	prefix     string
	sampleRate float64
	clock      types.Clock
}

// Option is a configuration option for a Timer
type Option func(*Timer)

// WithPrefix prepends prefix plus a dot to every stat name
func WithPrefix(prefix string) Option {
	return func(t *Timer) {
		t.prefix = prefix + "."
	}
}

// WithSampleRate sets the sample rate reported alongside each measurement
func WithSampleRate(rate float64) Option {
	return func(t *Timer) {
		t.sampleRate = rate
	}
}

// WithClock sets the clock used to measure elapsed time
func WithClock(clock types.Clock) Option {
	return func(t *Timer) {
		t.clock = clock
	}
}

// New creates a Timer reporting to sink. A nil sink fails immediately.
func New(sink Sink, opts ...Option) (*Timer, error) {
	if sink == nil {
		return nil, ErrNilSink
	}

	t := &Timer{
		sink:       sink,
		sampleRate: DefaultSampleRate,
		clock:      types.NewRealClock(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// Time measures fn and reports one sample on success. The result and error
// of fn pass through unchanged.
func Time[T any](t *Timer, name string, fn func() (T, error)) (T, error) {
	start := t.clock.Now()
	result, err := fn()
	if err != nil {
		return result, err
	}
	t.sink.RecordTiming(t.prefix+name, t.clock.Since(start), t.sampleRate)
	return result, nil
}

// Wrap decorates fn with timing, returning a function with an identical
// signature.
func Wrap[T, R any](t *Timer, name string, fn func(T) (R, error)) func(T) (R, error) {
	return func(input T) (R, error) {
		return Time(t, name, func() (R, error) {
			return fn(input)
		})
	}
}
