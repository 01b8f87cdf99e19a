package devlog

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createTestRoot creates a root without console output
func createTestRoot(t *testing.T) *Root {
	t.Helper()
	root := NewRoot()
	require.NoError(t, root.ApplyConfigString("enable_console=false"))
	return root
}

// recordingHandler keeps every record it is handed
type recordingHandler struct {
	level   int64
	records []Record
	err     error
}

func (h *recordingHandler) Enabled(level int64) bool { return level >= h.level }

func (h *recordingHandler) Handle(rec Record) error {
	h.records = append(h.records, rec)
	return h.err
}

func (h *recordingHandler) messages() []string {
	var msgs []string
	for _, r := range h.records {
		msgs = append(msgs, r.Message())
	}
	return msgs
}

func TestNewRoot(t *testing.T) {
	root := NewRoot()

	assert.Equal(t, LevelWarning, root.Level())
	require.NotNil(t, root.Console())
	assert.Len(t, root.Handlers(), 1)
}

func TestNewRootInvalidDefaults(t *testing.T) {
	saved := defaultConfig
	t.Cleanup(func() { defaultConfig = saved })

	defaultConfig.Format = "xml"
	assert.Panics(t, func() { NewRoot() })
}

func TestRootFloor(t *testing.T) {
	root := createTestRoot(t)
	h := &recordingHandler{}
	root.AddHandler(h)
	l := root.Logger("svc")

	l.Info("dropped")
	l.Warning("kept")
	root.SetLevel(LevelDebug)
	l.Debug("kept too")

	assert.Equal(t, []string{"kept", "kept too"}, h.messages())
	assert.False(t, root.Logger("x").Enabled(LevelNotSet))
	assert.True(t, l.Enabled(LevelDebug))
}

func TestHandlerThresholds(t *testing.T) {
	root := createTestRoot(t)
	root.SetLevel(LevelDebug)

	all := &recordingHandler{}
	errorsOnly := &recordingHandler{level: LevelError}
	root.AddHandler(all)
	root.AddHandler(errorsOnly)

	l := root.Logger("svc")
	l.Debug("d")
	l.Error("e")
	l.Critical("c")

	assert.Equal(t, []string{"d", "e", "c"}, all.messages())
	assert.Equal(t, []string{"e", "c"}, errorsOnly.messages())
}

func TestHandlerRegistry(t *testing.T) {
	root := createTestRoot(t)
	h1 := &recordingHandler{}
	h2 := &recordingHandler{}

	root.AddHandler(h1)
	root.AddHandler(h2)
	root.AddHandler(nil)
	assert.Equal(t, []Handler{h1, h2}, root.Handlers())

	assert.True(t, root.RemoveHandler(h1))
	assert.False(t, root.RemoveHandler(h1))
	assert.Equal(t, []Handler{h2}, root.Handlers())
}

func TestHandlerErrorDoesNotStopDispatch(t *testing.T) {
	root := createTestRoot(t)
	failing := &recordingHandler{err: errors.New("write failed")}
	after := &recordingHandler{}
	root.AddHandler(failing)
	root.AddHandler(after)

	root.Logger("svc").Error("boom")

	assert.Len(t, failing.records, 1)
	assert.Len(t, after.records, 1)
}

func TestLoggerCache(t *testing.T) {
	root := createTestRoot(t)

	assert.Same(t, root.Logger("a"), root.Logger("a"))
	assert.NotSame(t, root.Logger("a"), root.Logger("b"))
	assert.Equal(t, "root", root.Logger("").Name())
	assert.Same(t, root, root.Logger("a").Root())
}

func TestLoggerLevels(t *testing.T) {
	root := createTestRoot(t)
	root.SetLevel(LevelNotSet)
	h := &recordingHandler{}
	root.AddHandler(h)
	l := root.Logger("svc")

	l.Debug("d")
	l.Info("i")
	l.Warning("w")
	l.Error("e")
	l.Critical("c")
	l.Log(25, "custom")

	var levels []int64
	for _, r := range h.records {
		levels = append(levels, r.Level)
		assert.Equal(t, "svc", r.Name)
		assert.False(t, r.Time.IsZero())
	}
	assert.Equal(t, []int64{10, 20, 30, 40, 50, 25}, levels)
}

func TestApplyConfigConsole(t *testing.T) {
	root := NewRoot()
	extra := &recordingHandler{}
	root.AddHandler(extra)
	first := root.Console()

	// Reapplying replaces the console handler in place
	require.NoError(t, root.ApplyConfigString("format=json"))
	second := root.Console()
	require.NotNil(t, second)
	assert.NotSame(t, first, second)
	assert.Equal(t, []Handler{second, extra}, root.Handlers())

	// Disabling removes it, enabling appends a new one
	require.NoError(t, root.ApplyConfigString("enable_console=false"))
	assert.Nil(t, root.Console())
	assert.Equal(t, []Handler{extra}, root.Handlers())

	require.NoError(t, root.ApplyConfigString("enable_console=true"))
	require.NotNil(t, root.Console())
	assert.Len(t, root.Handlers(), 2)
}

func TestApplyConfigString(t *testing.T) {
	tests := []struct {
		name         string
		configString []string
		verify       func(t *testing.T, cfg *Config)
		wantError    bool
	}{
		{
			name:         "level by number",
			configString: []string{"level=10", "format=json"},
			verify: func(t *testing.T, cfg *Config) {
				assert.Equal(t, LevelDebug, cfg.Level)
				assert.Equal(t, "json", cfg.Format)
			},
		},
		{
			name:         "level by name",
			configString: []string{"level=error", "console_level=warn"},
			verify: func(t *testing.T, cfg *Config) {
				assert.Equal(t, LevelError, cfg.Level)
				assert.Equal(t, LevelWarning, cfg.ConsoleLevel)
			},
		},
		{
			name: "boolean values",
			configString: []string{
				"show_timestamp=false",
				"show_name=false",
				"color=true",
				"internal_errors_to_stderr=true",
			},
			verify: func(t *testing.T, cfg *Config) {
				assert.False(t, cfg.ShowTimestamp)
				assert.False(t, cfg.ShowName)
				assert.True(t, cfg.Color)
				assert.True(t, cfg.InternalErrorsToStderr)
			},
		},
		{
			name:         "invalid format",
			configString: []string{"invalid"},
			wantError:    true,
		},
		{
			name:         "unknown key",
			configString: []string{"unknown_key=value"},
			wantError:    true,
		},
		{
			name:         "invalid boolean",
			configString: []string{"color=maybe"},
			wantError:    true,
		},
		{
			name:         "fails validation",
			configString: []string{"console_target=file"},
			wantError:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := createTestRoot(t)
			err := root.ApplyConfigString(tt.configString...)

			if tt.wantError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.verify(t, root.GetConfig())
		})
	}
}

func TestApplyConfigStringCombinesErrors(t *testing.T) {
	root := createTestRoot(t)
	before := root.GetConfig()

	err := root.ApplyConfigString("nope=1", "color=maybe", "level=info")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "multiple configuration errors")
	assert.Contains(t, err.Error(), "1. unknown configuration key 'nope'")

	// Nothing applied
	assert.Equal(t, before, root.GetConfig())
}

func TestApplyConfigNil(t *testing.T) {
	assert.Error(t, NewRoot().ApplyConfig(nil))
}

func TestGetConfigIsCopy(t *testing.T) {
	root := createTestRoot(t)
	cfg := root.GetConfig()
	cfg.Level = LevelCritical

	assert.NotEqual(t, LevelCritical, root.GetConfig().Level)
}

func TestConsoleHandlerOutput(t *testing.T) {
	root := createTestRoot(t)
	var buf bytes.Buffer
	console := NewConsoleHandler(&buf, LevelWarning)
	root.AddHandler(console)
	root.SetLevel(LevelDebug)

	l := root.Logger("svc")
	l.Info("quiet")
	l.Warning("disk %s", "low")

	assert.Contains(t, buf.String(), " WARNING svc disk low\n")
	assert.NotContains(t, buf.String(), "quiet")

	console.SetLevel(LevelInfo)
	assert.Equal(t, LevelInfo, console.Level())
	l.Info("loud")
	assert.Contains(t, buf.String(), "INFO svc loud\n")
}
