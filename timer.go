package devlog

import (
	"sync"
	"time"
)

// Timer reports how long a labelled region of work took.
// It holds no timing state, so one Timer can measure any number of overlapping regions;
// each region gets its own Measurement.
//
//	t := devlog.NewTimer("load")
//
//	m := t.Start()
//	defer m.Stop()
//
//	t.Time(func() { ... })
//
//	load, _ := devlog.Decorate(t, loadFile)
//	data, err := load.Fn("config.toml")
//
//	seq, err := devlog.OverSlice(t, items).All()
//	for item := range seq { ... }
type Timer struct {
	label  string
	logger *Logger
}

// NewTimer creates a timer reporting to the "devlog.timer" logger of the process-wide root
func NewTimer(label string) *Timer {
	return &Timer{
		label:  label,
		logger: defaultRoot.Logger(timerLoggerName),
	}
}

// WithLogger returns a copy of the timer that reports to l
func (t *Timer) WithLogger(l *Logger) *Timer {
	return &Timer{
		label:  t.label,
		logger: l,
	}
}

// Label returns the timer label
func (t *Timer) Label() string {
	return t.label
}

// Logger returns the logger reports are written to
func (t *Timer) Logger() *Logger {
	return t.logger
}

// Start begins a measurement
func (t *Timer) Start() *Measurement {
	return &Measurement{
		timer: t,
		start: time.Now(),
	}
}

// Time measures fn. The report is written even if fn panics.
func (t *Timer) Time(fn func()) {
	m := t.Start()
	defer m.Stop()
	fn()
}

// TimeErr measures fn and returns its error unchanged
func (t *Timer) TimeErr(fn func() error) error {
	m := t.Start()
	defer m.Stop()
	return fn()
}

// report writes the completion line
func (t *Timer) report(elapsed time.Duration) {
	t.logger.Info(timerTemplate, t.label, elapsed.Seconds())
}

// Measurement is one timed region
type Measurement struct {
	timer *Timer
	start time.Time

	mu      sync.Mutex
	stopped bool
	elapsed time.Duration
}

// Stop ends the region and reports it. Only the first call reports; all calls return the same duration.
func (m *Measurement) Stop() time.Duration {
	m.mu.Lock()
	if m.stopped {
		defer m.mu.Unlock()
		return m.elapsed
	}
	m.stopped = true
	m.elapsed = time.Since(m.start)
	elapsed := m.elapsed
	m.mu.Unlock()

	m.timer.report(elapsed)
	return elapsed
}

// StartTime returns when the measurement began
func (m *Measurement) StartTime() time.Time {
	return m.start
}

// Elapsed returns the time since start, or the final duration once stopped
func (m *Measurement) Elapsed() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.stopped {
		return m.elapsed
	}
	return time.Since(m.start)
}

// Stopped reports whether Stop has been called
func (m *Measurement) Stopped() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stopped
}
