package devlog

import (
	"sync"
	"sync/atomic"
)

// Root is a logging facility: a severity floor, a registry of handlers and the named loggers bound to it.
// Records below the floor are dropped before any handler sees them; records at or above it are
// offered to every handler, each of which applies its own threshold.
type Root struct {
	currentConfig atomic.Value // stores *Config
	level         atomic.Int64
	initMu        sync.Mutex // Serializes ApplyConfig with capture start and stop

	mu       sync.RWMutex
	handlers []Handler
	console  *ConsoleHandler
	loggers  map[string]*Logger

	capture atomic.Pointer[Capture] // Active capture, at most one
}

// NewRoot creates a root configured with DefaultConfig
func NewRoot() *Root {
	r := &Root{
		loggers: make(map[string]*Logger),
	}
	if err := r.ApplyConfig(DefaultConfig()); err != nil {
		panic(err)
	}
	return r
}

// ApplyConfig validates and applies a configuration, replacing the console handler
func (r *Root) ApplyConfig(cfg *Config) error {
	if cfg == nil {
		return fmtErrorf("configuration cannot be nil")
	}

	if err := cfg.Validate(); err != nil {
		return fmtErrorf("invalid configuration: %w", err)
	}

	r.initMu.Lock()
	defer r.initMu.Unlock()

	cfg = cfg.Clone()
	r.currentConfig.Store(cfg)
	if c := r.capture.Load(); c != nil && c.active.Load() {
		// The capture owns the floor until Stop, which then applies the new level
		c.prevLevel = cfg.Level
	} else {
		r.level.Store(cfg.Level)
	}

	var console *ConsoleHandler
	if cfg.EnableConsole {
		console = newConsoleHandlerFromConfig(cfg)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	replaced := false
	if r.console != nil {
		for i, h := range r.handlers {
			if h != Handler(r.console) {
				continue
			}
			if console != nil {
				handlers := append([]Handler(nil), r.handlers...)
				handlers[i] = console
				r.handlers = handlers
			} else {
				r.handlers = append(r.handlers[:i:i], r.handlers[i+1:]...)
			}
			replaced = true
			break
		}
	}
	if !replaced && console != nil {
		r.handlers = append(r.handlers, console)
	}
	r.console = console

	return nil
}

// GetConfig returns a copy of current configuration
func (r *Root) GetConfig() *Config {
	return r.getConfig().Clone()
}

// getConfig returns the current configuration (thread-safe)
func (r *Root) getConfig() *Config {
	return r.currentConfig.Load().(*Config)
}

// Level returns the severity floor
func (r *Root) Level() int64 {
	return r.level.Load()
}

// SetLevel overwrites the severity floor
func (r *Root) SetLevel(level int64) {
	r.level.Store(level)
}

// Console returns the configured console handler, nil when console output is disabled
func (r *Root) Console() *ConsoleHandler {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.console
}

// AddHandler registers a handler. Adding the same handler twice delivers records to it twice.
func (r *Root) AddHandler(h Handler) {
	if h == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers = append(r.handlers, h)
}

// RemoveHandler removes the first registration of h and reports whether it was found
func (r *Root) RemoveHandler(h Handler) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, registered := range r.handlers {
		if registered == h {
			// Copy so snapshots held by in-flight dispatches stay intact
			r.handlers = append(r.handlers[:i:i], r.handlers[i+1:]...)
			if h == Handler(r.console) {
				r.console = nil
			}
			return true
		}
	}
	return false
}

// Handlers returns a snapshot of the registered handlers in registration order
func (r *Root) Handlers() []Handler {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Handler(nil), r.handlers...)
}

// Logger returns the logger for a category, creating it on first use
func (r *Root) Logger(name string) *Logger {
	if name == "" {
		name = rootName
	}

	r.mu.RLock()
	l, ok := r.loggers[name]
	r.mu.RUnlock()
	if ok {
		return l
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if l, ok = r.loggers[name]; ok {
		return l
	}
	l = &Logger{name: name, root: r}
	r.loggers[name] = l
	return l
}

// dispatch offers a record to the handlers if it passes the floor
func (r *Root) dispatch(rec Record) {
	if rec.Level < r.level.Load() {
		return
	}

	r.mu.RLock()
	handlers := r.handlers
	r.mu.RUnlock()

	for _, h := range handlers {
		if !h.Enabled(rec.Level) {
			continue
		}
		if err := h.Handle(rec); err != nil {
			internalLog(r.getConfig(), "handler %T failed for record from '%s': %v\n", h, rec.Name, err)
		}
	}
}
