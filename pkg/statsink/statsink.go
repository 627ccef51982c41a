// Package statsink provides statistics sink implementations for the timed
// package: a Prometheus histogram sink, an OpenTelemetry sink, an
// in-memory recorder for tests, and a no-op sink.
//
// Sample-rate handling lives here, on the sink side: the exporting sinks
// forward a measurement with probability sampleRate and drop it otherwise.
// The Recorder keeps everything so tests can assert on exact samples.
package statsink

import (
	"sync"
	"time"
)

// Nop discards every measurement
type Nop struct{}

func (Nop) RecordTiming(string, time.Duration, float64) {}

// Sample is one recorded timing measurement
type Sample struct {
	Stat       string
	Elapsed    time.Duration
	SampleRate float64
}

// Recorder is an in-memory sink that keeps every sample, for tests
type Recorder struct {
	mu      sync.Mutex
	samples []Sample
}

// NewRecorder creates an in-memory recorder sink
func NewRecorder() *Recorder {
	return &Recorder{}
}

// RecordTiming stores the measurement
func (r *Recorder) RecordTiming(stat string, elapsed time.Duration, sampleRate float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.samples = append(r.samples, Sample{Stat: stat, Elapsed: elapsed, SampleRate: sampleRate})
}

// Samples returns a copy of the recorded samples
func (r *Recorder) Samples() []Sample {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Sample, len(r.samples))
	copy(out, r.samples)
	return out
}

// Reset drops all recorded samples
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.samples = nil
}
