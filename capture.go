package devlog

import (
	"iter"
	"sync"
	"sync/atomic"
)

// Capture buffers every record that reaches a root's dispatch point while it is active.
// A root carries at most one active capture.
type Capture struct {
	root      *Root
	minLevel  int64
	prevLevel int64 // Floor restored by Stop, guarded by root.initMu
	active    atomic.Bool

	mu      sync.Mutex
	entries []Entry
}

// Capture installs a capture on the root and sets the root's floor to minLevel.
// The handler thresholds of other destinations are left untouched.
// Stop must be called to restore the floor; WithCapture does this on every exit path.
func (r *Root) Capture(minLevel int64) (*Capture, error) {
	c := &Capture{root: r, minLevel: minLevel}

	r.initMu.Lock()
	defer r.initMu.Unlock()

	if !r.capture.CompareAndSwap(nil, c) {
		return nil, ErrCaptureActive
	}

	c.active.Store(true)
	r.AddHandler(c)
	c.prevLevel = r.level.Swap(minLevel)
	return c, nil
}

// WithCapture captures the root at minLevel for the duration of fn.
// The capture is released when fn returns, fails or panics; the returned capture keeps its entries.
func (r *Root) WithCapture(minLevel int64, fn func(c *Capture) error) (*Capture, error) {
	c, err := r.Capture(minLevel)
	if err != nil {
		return nil, err
	}
	defer c.Stop()

	return c, fn(c)
}

// Stop restores the root's previous floor and removes the capture. Calling it again is a no-op.
// A configuration applied during the capture replaces the floor that is restored.
func (c *Capture) Stop() {
	r := c.root

	r.initMu.Lock()
	if !c.active.CompareAndSwap(true, false) {
		r.initMu.Unlock()
		return
	}
	r.level.Store(c.prevLevel)
	r.initMu.Unlock()

	r.RemoveHandler(c)
	r.capture.CompareAndSwap(c, nil)
}

// Active reports whether the capture is still installed
func (c *Capture) Active() bool {
	return c.active.Load()
}

// MinLevel returns the floor the capture was started with
func (c *Capture) MinLevel() int64 {
	return c.minLevel
}

// Enabled implements Handler, records below the capture's minimum are skipped
// even if the floor was lowered further during activation
func (c *Capture) Enabled(level int64) bool {
	return level >= c.minLevel
}

// Handle implements Handler
func (c *Capture) Handle(rec Record) error {
	// In-flight dispatches may still hold the capture after Stop
	if !c.active.Load() {
		return nil
	}
	entry := rec.Entry()

	c.mu.Lock()
	c.entries = append(c.entries, entry)
	c.mu.Unlock()
	return nil
}

// All iterates the captured entries in emission order.
// Iteration works on a snapshot and can be repeated.
func (c *Capture) All() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for _, e := range c.Entries() {
			if !yield(e) {
				return
			}
		}
	}
}

// Entries returns a copy of the captured entries
func (c *Capture) Entries() []Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Entry(nil), c.entries...)
}

// Messages returns the formatted messages of the captured entries
func (c *Capture) Messages() []string {
	entries := c.Entries()
	msgs := make([]string, len(entries))
	for i, e := range entries {
		msgs[i] = e.Message
	}
	return msgs
}

// Len returns the number of captured entries
func (c *Capture) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// String dumps the captured entries, mainly for test failure output
func (c *Capture) String() string {
	return dumper.Sdump(c.Entries())
}
