package devlog

// Global instance for package-level functions
var defaultRoot = NewRoot()

// Default returns the process-wide root
func Default() *Root {
	return defaultRoot
}

// GetLogger returns the named logger of the process-wide root
func GetLogger(name string) *Logger {
	return defaultRoot.Logger(name)
}

// ApplyConfig applies a configuration to the process-wide root
func ApplyConfig(cfg *Config) error {
	return defaultRoot.ApplyConfig(cfg)
}

// ApplyConfigString applies key=value overrides to the process-wide root
func ApplyConfigString(overrides ...string) error {
	return defaultRoot.ApplyConfigString(overrides...)
}

// CaptureLog starts capturing the process-wide root at minLevel
func CaptureLog(minLevel int64) (*Capture, error) {
	return defaultRoot.Capture(minLevel)
}

// WithCapture runs fn while the process-wide root is captured at minLevel
func WithCapture(minLevel int64, fn func(c *Capture) error) (*Capture, error) {
	return defaultRoot.WithCapture(minLevel, fn)
}

// Debug logs a message at debug level on the root category
func Debug(msg any, args ...any) {
	defaultRoot.Logger(rootName).Debug(msg, args...)
}

// Info logs a message at info level on the root category
func Info(msg any, args ...any) {
	defaultRoot.Logger(rootName).Info(msg, args...)
}

// Warning logs a message at warning level on the root category
func Warning(msg any, args ...any) {
	defaultRoot.Logger(rootName).Warning(msg, args...)
}

// Error logs a message at error level on the root category
func Error(msg any, args ...any) {
	defaultRoot.Logger(rootName).Error(msg, args...)
}

// Critical logs a message at critical level on the root category
func Critical(msg any, args ...any) {
	defaultRoot.Logger(rootName).Critical(msg, args...)
}
