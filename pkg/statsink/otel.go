// Package statsink provides the OpenTelemetry sink
package statsink

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// OTel exports timing measurements through an OpenTelemetry meter
type OTel struct {
	durations metric.Float64Histogram
	attrs     []attribute.KeyValue
}

// OTelConfig holds OpenTelemetry-specific configuration
type OTelConfig struct {
	// Meter is the meter to create instruments on (required)
	Meter metric.Meter

	// DefaultAttributes are applied to every measurement (optional)
	DefaultAttributes []attribute.KeyValue
}

// NewOTel creates an OpenTelemetry sink
func NewOTel(config *OTelConfig) (*OTel, error) {
	if config == nil || config.Meter == nil {
		return nil, fmt.Errorf("an OpenTelemetry meter is required")
	}

	durations, err := config.Meter.Float64Histogram(
		"timing_milliseconds",
		metric.WithDescription("Wall-clock duration of timed calls in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create timing histogram: %w", err)
	}

	return &OTel{durations: durations, attrs: config.DefaultAttributes}, nil
}

// RecordTiming records the measurement, subject to the sample rate
func (o *OTel) RecordTiming(stat string, elapsed time.Duration, sampleRate float64) {
	if !sampled(sampleRate) {
		return
	}
	attrs := append([]attribute.KeyValue{attribute.String("stat", stat)}, o.attrs...)
	o.durations.Record(context.Background(), float64(elapsed)/float64(time.Millisecond),
		metric.WithAttributes(attrs...))
}
