package devlog

import "time"

// Logger emits records under a category name through its root
type Logger struct {
	name string
	root *Root
}

// Name returns the logger's category
func (l *Logger) Name() string {
	return l.name
}

// Root returns the root the logger dispatches to
func (l *Logger) Root() *Root {
	return l.root
}

// Enabled reports whether a record at level would pass the root's floor
func (l *Logger) Enabled(level int64) bool {
	return level >= l.root.Level()
}

// Log emits a record at an arbitrary level.
// A string msg is a printf-style template when args are given, otherwise it is used literally.
// Other msg values are rendered with args appended, e.g. Info(42, "x") logs "42 x".
func (l *Logger) Log(level int64, msg any, args ...any) {
	if !l.Enabled(level) {
		return
	}
	l.root.dispatch(Record{
		Time:  time.Now(),
		Level: level,
		Name:  l.name,
		Msg:   msg,
		Args:  args,
	})
}

// Debug logs a message at debug level
func (l *Logger) Debug(msg any, args ...any) {
	l.Log(LevelDebug, msg, args...)
}

// Info logs a message at info level
func (l *Logger) Info(msg any, args ...any) {
	l.Log(LevelInfo, msg, args...)
}

// Warning logs a message at warning level
func (l *Logger) Warning(msg any, args ...any) {
	l.Log(LevelWarning, msg, args...)
}

// Error logs a message at error level
func (l *Logger) Error(msg any, args ...any) {
	l.Log(LevelError, msg, args...)
}

// Critical logs a message at critical level
func (l *Logger) Critical(msg any, args ...any) {
	l.Log(LevelCritical, msg, args...)
}
