package compat

import (
	"os"

	"github.com/lixenwraith/devlog"
	"github.com/panjf2000/gnet/v2"
	"github.com/panjf2000/gnet/v2/pkg/logging"
)

var _ logging.Logger = (*GnetAdapter)(nil)

// GnetAdapter routes gnet's internal logging onto a devlog logger
type GnetAdapter struct {
	logger       *devlog.Logger
	fatalHandler func(msg string) // Customizable fatal behavior
}

// NewGnetAdapter creates a new gnet-compatible logger adapter
func NewGnetAdapter(logger *devlog.Logger, opts ...GnetOption) *GnetAdapter {
	adapter := &GnetAdapter{
		logger: logger,
		fatalHandler: func(msg string) {
			os.Exit(1) // Default behavior matches gnet expectations
		},
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// GnetOption allows customizing adapter behavior
type GnetOption func(*GnetAdapter)

// WithFatalHandler sets a custom fatal handler
func WithFatalHandler(handler func(string)) GnetOption {
	return func(a *GnetAdapter) {
		a.fatalHandler = handler
	}
}

// Debugf logs at debug level with printf-style formatting
func (a *GnetAdapter) Debugf(format string, args ...any) {
	a.logger.Debug(format, args...)
}

// Infof logs at info level with printf-style formatting
func (a *GnetAdapter) Infof(format string, args ...any) {
	a.logger.Info(format, args...)
}

// Warnf logs at warning level with printf-style formatting
func (a *GnetAdapter) Warnf(format string, args ...any) {
	a.logger.Warning(format, args...)
}

// Errorf logs at error level with printf-style formatting
func (a *GnetAdapter) Errorf(format string, args ...any) {
	a.logger.Error(format, args...)
}

// Fatalf logs at critical level and triggers the fatal handler
func (a *GnetAdapter) Fatalf(format string, args ...any) {
	a.logger.Critical(format, args...)

	if a.fatalHandler != nil {
		a.fatalHandler(devlog.Record{Msg: format, Args: args}.Message())
	}
}

// TimedEventHandler times every OnTraffic call of the wrapped gnet handler
type TimedEventHandler struct {
	gnet.EventHandler
	timer *devlog.Timer
}

// NewTimedEventHandler wraps h so that traffic handling is reported by t
func NewTimedEventHandler(t *devlog.Timer, h gnet.EventHandler) *TimedEventHandler {
	return &TimedEventHandler{EventHandler: h, timer: t}
}

// OnTraffic implements gnet.EventHandler
func (h *TimedEventHandler) OnTraffic(c gnet.Conn) gnet.Action {
	m := h.timer.Start()
	defer m.Stop()
	return h.EventHandler.OnTraffic(c)
}
