package devlog

// Log level constants
const (
	LevelNotSet   int64 = 0
	LevelDebug    int64 = 10
	LevelInfo     int64 = 20
	LevelWarning  int64 = 30
	LevelError    int64 = 40
	LevelCritical int64 = 50
)

// Category names
const (
	// Category of loggers requested with an empty name
	rootName = "root"
	// Category used by timers created with NewTimer
	timerLoggerName = "devlog.timer"
)

// Timer report template, args are label and elapsed seconds
const timerTemplate = "%s took %.2fs"

// Sequence states
const (
	StateNotStarted int32 = iota
	StateRunning
	StateExhausted
)
