package devlog

import (
	"io"
	"os"
	"sync"
	"sync/atomic"

	"github.com/lixenwraith/devlog/formatter"
	"github.com/lixenwraith/devlog/sanitizer"
	"github.com/mattn/go-isatty"
)

// Handler receives records that passed a root's severity floor.
// Handlers are compared by identity on removal, so implementations should be pointer types.
type Handler interface {
	// Enabled reports whether the handler wants records of the given level
	Enabled(level int64) bool
	// Handle consumes one record
	Handle(rec Record) error
}

// ConsoleHandler writes formatted records to a writer, filtering on its own threshold
type ConsoleHandler struct {
	mu        sync.Mutex
	w         io.Writer
	level     atomic.Int64
	formatter *formatter.Formatter
}

// NewConsoleHandler creates a txt console handler writing to w
func NewConsoleHandler(w io.Writer, level int64) *ConsoleHandler {
	h := &ConsoleHandler{
		w:         w,
		formatter: formatter.New(),
	}
	h.level.Store(level)
	return h
}

// newConsoleHandlerFromConfig builds the console handler a root installs from its configuration
func newConsoleHandlerFromConfig(cfg *Config) *ConsoleHandler {
	var w io.Writer = os.Stderr
	if cfg.ConsoleTarget == "stdout" {
		w = os.Stdout
	}

	h := NewConsoleHandler(w, cfg.ConsoleLevel)
	h.formatter = formatter.New(sanitizer.New(sanitizer.Policy(cfg.Sanitization))).
		Type(cfg.Format).
		TimestampFormat(cfg.TimestampFormat).
		Flags(cfg.formatFlags()).
		Color(cfg.Color && isTerminal(w))
	return h
}

// isTerminal reports whether w is a terminal, colour codes are only written to terminals
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Level returns the handler threshold
func (h *ConsoleHandler) Level() int64 {
	return h.level.Load()
}

// SetLevel changes the handler threshold
func (h *ConsoleHandler) SetLevel(level int64) {
	h.level.Store(level)
}

// Enabled implements Handler
func (h *ConsoleHandler) Enabled(level int64) bool {
	return level >= h.level.Load()
}

// Handle implements Handler
func (h *ConsoleHandler) Handle(rec Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	line := h.formatter.Format(rec.Time, rec.Level, rec.Name, rec.Message())
	_, err := h.w.Write(line)
	return err
}
