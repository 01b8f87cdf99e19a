package devlog

import (
	"errors"
	"regexp"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var reportPattern = regexp.MustCompile(`^(.+) took (\d+\.\d{2})s$`)

// createTestTimer returns a timer reporting into a captured root
func createTestTimer(t *testing.T, label string) (*Timer, *Capture) {
	t.Helper()
	root := createTestRoot(t)
	c, err := root.Capture(LevelDebug)
	require.NoError(t, err)
	t.Cleanup(c.Stop)

	return NewTimer(label).WithLogger(root.Logger("timer")), c
}

// parseReport splits a report line into label and seconds
func parseReport(t *testing.T, msg string) (string, float64) {
	t.Helper()
	m := reportPattern.FindStringSubmatch(msg)
	require.NotNil(t, m, "not a timer report: %q", msg)
	secs, err := strconv.ParseFloat(m[2], 64)
	require.NoError(t, err)
	return m[1], secs
}

func TestNewTimer(t *testing.T) {
	timer := NewTimer("load")

	assert.Equal(t, "load", timer.Label())
	assert.Same(t, Default().Logger("devlog.timer"), timer.Logger())

	root := createTestRoot(t)
	other := timer.WithLogger(root.Logger("x"))
	assert.Equal(t, "load", other.Label())
	assert.Same(t, root.Logger("x"), other.Logger())
	assert.Same(t, Default().Logger("devlog.timer"), timer.Logger())
}

func TestMeasurement(t *testing.T) {
	timer, c := createTestTimer(t, "block")

	m := timer.Start()
	time.Sleep(20 * time.Millisecond)
	assert.False(t, m.Stopped())
	assert.GreaterOrEqual(t, m.Elapsed(), 20*time.Millisecond)

	d := m.Stop()
	assert.GreaterOrEqual(t, d, 20*time.Millisecond)
	assert.True(t, m.Stopped())
	assert.Equal(t, d, m.Elapsed())
	assert.False(t, m.StartTime().IsZero())

	// Only the first stop reports
	assert.Equal(t, d, m.Stop())
	require.Equal(t, 1, c.Len())

	entry := c.Entries()[0]
	assert.Equal(t, "INFO", entry.LevelName)
	assert.Equal(t, "timer", entry.Name)

	label, secs := parseReport(t, entry.Message)
	assert.Equal(t, "block", label)
	assert.InDelta(t, d.Seconds(), secs, 0.005+1e-9)
}

func TestTimeScopedBlock(t *testing.T) {
	t.Run("normal", func(t *testing.T) {
		timer, c := createTestTimer(t, "work")
		ran := false

		timer.Time(func() { ran = true })

		assert.True(t, ran)
		require.Equal(t, 1, c.Len())
		label, _ := parseReport(t, c.Messages()[0])
		assert.Equal(t, "work", label)
	})

	t.Run("panic still reports", func(t *testing.T) {
		timer, c := createTestTimer(t, "work")

		assert.Panics(t, func() {
			timer.Time(func() { panic("region failed") })
		})
		assert.Equal(t, 1, c.Len())
	})

	t.Run("error still reports", func(t *testing.T) {
		timer, c := createTestTimer(t, "work")
		sentinel := errors.New("region failed")

		err := timer.TimeErr(func() error { return sentinel })

		assert.ErrorIs(t, err, sentinel)
		assert.Equal(t, 1, c.Len())
	})

	t.Run("nil error", func(t *testing.T) {
		timer, c := createTestTimer(t, "work")

		assert.NoError(t, timer.TimeErr(func() error { return nil }))
		assert.Equal(t, 1, c.Len())
	})
}

func TestTimerReportFormat(t *testing.T) {
	timer, c := createTestTimer(t, "sleep")

	timer.Time(func() { time.Sleep(50 * time.Millisecond) })

	_, secs := parseReport(t, c.Messages()[0])
	assert.GreaterOrEqual(t, secs, 0.05)
	assert.Less(t, secs, 5.0)
}

func TestTimerOverlappingMeasurements(t *testing.T) {
	timer, c := createTestTimer(t, "shared")

	outer := timer.Start()
	inner := timer.Start()
	time.Sleep(10 * time.Millisecond)
	innerD := inner.Stop()
	time.Sleep(10 * time.Millisecond)
	outerD := outer.Stop()

	assert.Greater(t, outerD, innerD)
	assert.Equal(t, 2, c.Len())
}

func TestTimerConcurrentUse(t *testing.T) {
	timer, c := createTestTimer(t, "parallel")

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			timer.Time(func() { time.Sleep(time.Millisecond) })
		}()
	}
	wg.Wait()

	assert.Equal(t, 20, c.Len())
}

func TestTimerBelowFloorIsSilent(t *testing.T) {
	root := createTestRoot(t)
	h := &recordingHandler{}
	root.AddHandler(h)
	timer := NewTimer("quiet").WithLogger(root.Logger("timer"))

	// Floor is WARNING, reports are INFO
	assert.Greater(t, timer.Start().Stop(), time.Duration(-1))
	assert.Empty(t, h.records)
}
