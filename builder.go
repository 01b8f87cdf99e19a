package devlog

// Builder provides a fluent API for building root configurations.
// It wraps a Config instance and provides chainable methods for setting values.
type Builder struct {
	cfg *Config
	err error // Accumulate errors for deferred handling
}

// NewBuilder creates a new configuration builder with default values.
func NewBuilder() *Builder {
	return &Builder{
		cfg: DefaultConfig(),
	}
}

// Build creates a new Root with the specified configuration.
func (b *Builder) Build() (*Root, error) {
	if b.err != nil {
		return nil, b.err
	}

	root := NewRoot()
	if err := root.ApplyConfig(b.cfg); err != nil {
		return nil, err
	}

	return root, nil
}

// Level sets the severity floor.
func (b *Builder) Level(level int64) *Builder {
	b.cfg.Level = level
	return b
}

// LevelString sets the severity floor from a level name.
func (b *Builder) LevelString(level string) *Builder {
	if b.err != nil {
		return b
	}
	levelVal, err := ParseLevel(level)
	if err != nil {
		b.err = err
		return b
	}
	b.cfg.Level = levelVal
	return b
}

// Format sets the console output format.
func (b *Builder) Format(format string) *Builder {
	b.cfg.Format = format
	return b
}

// TimestampFormat sets the console timestamp layout.
func (b *Builder) TimestampFormat(layout string) *Builder {
	b.cfg.TimestampFormat = layout
	return b
}

// EnableConsole toggles the console handler.
func (b *Builder) EnableConsole(enable bool) *Builder {
	b.cfg.EnableConsole = enable
	return b
}

// ConsoleTarget selects "stdout" or "stderr".
func (b *Builder) ConsoleTarget(target string) *Builder {
	b.cfg.ConsoleTarget = target
	return b
}

// ConsoleLevel sets the console handler's own threshold.
func (b *Builder) ConsoleLevel(level int64) *Builder {
	b.cfg.ConsoleLevel = level
	return b
}

// Color enables level colouring when the console is a terminal.
func (b *Builder) Color(enable bool) *Builder {
	b.cfg.Color = enable
	return b
}

// Example usage:
// root, err := devlog.NewBuilder().
//
//	LevelString("debug").
//	Format("json").
//	ConsoleTarget("stdout").
//	Build()
//
// if err == nil {
//
//	root.Logger("app").Info("root initialized")
//
// }
