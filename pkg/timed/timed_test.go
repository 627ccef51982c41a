package timed

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jzx17/godecor/internal/testutils"
	"github.com/jzx17/godecor/pkg/statsink"
)

func TestNew_NilSinkFailsImmediately(t *testing.T) {
	timer, err := New(nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNilSink)
	assert.Nil(t, timer)
}

func TestTime_RecordsOneSampleOnSuccess(t *testing.T) {
	mock := testutils.NewMockClock(t)
	sink := statsink.NewRecorder()
	timer, err := New(sink,
		WithPrefix("svc"),
		WithSampleRate(0.5),
		WithClock(testutils.NewClockWrapper(mock)),
	)
	require.NoError(t, err)

	result, err := Time(timer, "fetch", func() (string, error) {
		mock.Advance(5 * time.Millisecond)
		return "payload", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "payload", result)

	samples := sink.Samples()
	require.Len(t, samples, 1)
	assert.Equal(t, "svc.fetch", samples[0].Stat)
	assert.Equal(t, 5*time.Millisecond, samples[0].Elapsed)
	assert.Equal(t, 0.5, samples[0].SampleRate)
}

func TestTime_DefaultsNoPrefixFullRate(t *testing.T) {
	sink := statsink.NewRecorder()
	timer, err := New(sink)
	require.NoError(t, err)

	_, err = Time(timer, "fetch", func() (int, error) { return 1, nil })
	require.NoError(t, err)

	samples := sink.Samples()
	require.Len(t, samples, 1)
	assert.Equal(t, "fetch", samples[0].Stat)
	assert.Equal(t, DefaultSampleRate, samples[0].SampleRate)
}

func TestTime_FailureRecordsNothing(t *testing.T) {
	sink := statsink.NewRecorder()
	timer, err := New(sink)
	require.NoError(t, err)

	errBoom := errors.New("boom")
	_, err = Time(timer, "fetch", func() (string, error) {
		return "", errBoom
	})

	assert.Equal(t, errBoom, err)
	assert.Empty(t, sink.Samples())
}

func TestWrap(t *testing.T) {
	sink := statsink.NewRecorder()
	timer, err := New(sink, WithPrefix("api"))
	require.NoError(t, err)

	double := Wrap(timer, "double", func(n int) (int, error) {
		return n * 2, nil
	})

	result, err := double(4)
	require.NoError(t, err)
	assert.Equal(t, 8, result)

	samples := sink.Samples()
	require.Len(t, samples, 1)
	assert.Equal(t, "api.double", samples[0].Stat)
}
