package devlog

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/lixenwraith/devlog/formatter"
)

var (
	// ErrNoIterable is returned when iterating a timer sequence with no bound iterable
	ErrNoIterable = errors.New("devlog: cannot iterate a timer with no bound iterable")
	// ErrNotFunc is returned when decorating a value that is not a function
	ErrNotFunc = errors.New("devlog: decorated value must be a non-nil function")
	// ErrCaptureActive is returned when a root already has an active capture
	ErrCaptureActive = errors.New("devlog: a capture is already active on this root")
)

// fmtErrorf wrapper
func fmtErrorf(format string, args ...any) error {
	if !strings.HasPrefix(format, "devlog: ") {
		format = "devlog: " + format
	}
	return fmt.Errorf(format, args...)
}

// combineErrors helper
func combineErrors(err1, err2 error) error {
	if err1 == nil {
		return err2
	}
	if err2 == nil {
		return err1
	}
	return fmt.Errorf("%v; %w", err1, err2)
}

// internalLog writes diagnostics about the logging facility itself to stderr, if enabled
func internalLog(cfg *Config, format string, args ...any) {
	if cfg == nil || !cfg.InternalErrorsToStderr {
		return
	}
	if !strings.HasPrefix(format, "devlog: ") {
		format = "devlog: " + format
	}
	fmt.Fprintf(os.Stderr, format, args...)
}

// parseKeyValue splits a "key=value" string.
func parseKeyValue(arg string) (string, string, error) {
	parts := strings.SplitN(strings.TrimSpace(arg), "=", 2)
	if len(parts) != 2 {
		return "", "", fmtErrorf("invalid format in override string '%s', expected key=value", arg)
	}
	key := strings.TrimSpace(parts[0])
	value := strings.TrimSpace(parts[1])
	if key == "" {
		return "", "", fmtErrorf("key cannot be empty in override string '%s'", arg)
	}
	return key, value, nil
}

// ParseLevel converts a level name or decimal number to its numeric value.
func ParseLevel(levelStr string) (int64, error) {
	s := strings.ToLower(strings.TrimSpace(levelStr))
	switch s {
	case "notset":
		return LevelNotSet, nil
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarning, nil
	case "error":
		return LevelError, nil
	case "critical", "fatal":
		return LevelCritical, nil
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil && n >= 0 {
		return n, nil
	}
	return 0, fmtErrorf("invalid level string: '%s' (use debug, info, warning, error, critical or a number)", levelStr)
}

// LevelName returns the display name of a level
func LevelName(level int64) string {
	return formatter.LevelToString(level)
}
