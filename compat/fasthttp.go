package compat

import (
	"strings"

	"github.com/lixenwraith/devlog"
	"github.com/valyala/fasthttp"
)

var _ fasthttp.Logger = (*FastHTTPAdapter)(nil)

// FastHTTPAdapter routes fasthttp's Printf logging onto a devlog logger
type FastHTTPAdapter struct {
	logger        *devlog.Logger
	defaultLevel  int64
	levelDetector func(string) int64 // Function to detect log level from message
}

// NewFastHTTPAdapter creates a new fasthttp-compatible logger adapter
func NewFastHTTPAdapter(logger *devlog.Logger, opts ...FastHTTPOption) *FastHTTPAdapter {
	adapter := &FastHTTPAdapter{
		logger:        logger,
		defaultLevel:  devlog.LevelInfo,
		levelDetector: DetectLogLevel,
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// FastHTTPOption allows customizing adapter behavior
type FastHTTPOption func(*FastHTTPAdapter)

// WithDefaultLevel sets the level used when detection finds nothing
func WithDefaultLevel(level int64) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.defaultLevel = level
	}
}

// WithLevelDetector sets a custom function to detect log level from message content.
// Returning devlog.LevelNotSet falls back to the default level.
func WithLevelDetector(detector func(string) int64) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.levelDetector = detector
	}
}

// Printf implements fasthttp's Logger interface
func (a *FastHTTPAdapter) Printf(format string, args ...any) {
	level := a.defaultLevel
	if a.levelDetector != nil {
		msg := devlog.Record{Msg: format, Args: args}.Message()
		if detected := a.levelDetector(msg); detected != devlog.LevelNotSet {
			level = detected
		}
	}

	a.logger.Log(level, format, args...)
}

// DetectLogLevel guesses a level from message content, devlog.LevelNotSet when nothing matches
func DetectLogLevel(msg string) int64 {
	msgLower := strings.ToLower(msg)

	switch {
	case strings.Contains(msgLower, "panic"), strings.Contains(msgLower, "fatal"):
		return devlog.LevelCritical
	case strings.Contains(msgLower, "error"), strings.Contains(msgLower, "failed"):
		return devlog.LevelError
	case strings.Contains(msgLower, "warn"), strings.Contains(msgLower, "deprecated"):
		return devlog.LevelWarning
	case strings.Contains(msgLower, "debug"), strings.Contains(msgLower, "trace"):
		return devlog.LevelDebug
	}
	return devlog.LevelNotSet
}

// TimedHandler decorates a request handler so that each request is reported by t.
// The report is written even if the handler panics.
func TimedHandler(t *devlog.Timer, h fasthttp.RequestHandler) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		m := t.Start()
		defer m.Stop()
		h(ctx)
	}
}
