// Package statsink provides the Prometheus sink
package statsink

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// DefaultDurationBuckets are millisecond histogram buckets
var DefaultDurationBuckets = []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000, 10000}

// Prometheus exports timing measurements as a millisecond histogram
// labelled by stat name.
type Prometheus struct {
	durations *prometheus.HistogramVec
}

// PrometheusConfig holds Prometheus-specific configuration
type PrometheusConfig struct {
	// Registry is the registerer to use (optional, uses default if nil)
	Registry prometheus.Registerer

	// Namespace prefixes the metric name (optional)
	Namespace string

	// Buckets for the duration histogram, in milliseconds (optional)
	Buckets []float64
}

// NewPrometheus creates a Prometheus sink and registers its histogram
func NewPrometheus(config *PrometheusConfig) (*Prometheus, error) {
	if config == nil {
		config = &PrometheusConfig{}
	}

	registry := config.Registry
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}

	buckets := config.Buckets
	if buckets == nil {
		buckets = DefaultDurationBuckets
	}

	durations := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: config.Namespace,
		Name:      "timing_milliseconds",
		Help:      "Wall-clock duration of timed calls in milliseconds",
		Buckets:   buckets,
	}, []string{"stat"})

	if err := registry.Register(durations); err != nil {
		return nil, fmt.Errorf("failed to register timing histogram: %w", err)
	}

	return &Prometheus{durations: durations}, nil
}

// RecordTiming observes the measurement, subject to the sample rate
func (p *Prometheus) RecordTiming(stat string, elapsed time.Duration, sampleRate float64) {
	if sampled(sampleRate) {
		p.durations.WithLabelValues(stat).Observe(float64(elapsed) / float64(time.Millisecond))
	}
}

// sampled reports whether a measurement at the given rate is forwarded
func sampled(rate float64) bool {
	if rate >= 1.0 {
		return true
	}
	if rate <= 0 {
		return false
	}
	return rand.Float64() < rate
}
