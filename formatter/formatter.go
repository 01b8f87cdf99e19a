package formatter

import (
	"fmt"
	"time"

	"github.com/lixenwraith/devlog/sanitizer"
)

// Format flags for controlling output structure
const (
	FlagShowTimestamp int64 = 0b001
	FlagShowLevel     int64 = 0b010
	FlagShowName      int64 = 0b100
	FlagDefault             = FlagShowTimestamp | FlagShowLevel | FlagShowName
)

// ANSI colours per level, applied to the level column only
const (
	colorReset    = "\033[0m"
	colorDebug    = "\033[90m"
	colorInfo     = "\033[34m"
	colorWarning  = "\033[33m"
	colorError    = "\033[31m"
	colorCritical = "\033[31m\033[1m"
)

// Formatter turns a record into an output line. It reuses an internal buffer and is not safe for concurrent use.
type Formatter struct {
	sanitizer       *sanitizer.Sanitizer
	format          string
	timestampFormat string
	flags           int64
	color           bool
	buf             []byte
}

// New creates a txt formatter with the provided sanitizer
func New(s ...*sanitizer.Sanitizer) *Formatter {
	var san *sanitizer.Sanitizer
	if len(s) > 0 && s[0] != nil {
		san = s[0]
	} else {
		san = sanitizer.New(sanitizer.PolicyTxt)
	}
	return &Formatter{
		sanitizer:       san,
		format:          "txt",
		timestampFormat: time.RFC3339Nano,
		flags:           FlagDefault,
		buf:             make([]byte, 0, 1024),
	}
}

// Type sets the output format ("txt", "json", or "raw")
func (f *Formatter) Type(format string) *Formatter {
	f.format = format
	return f
}

// TimestampFormat sets the timestamp format string
func (f *Formatter) TimestampFormat(format string) *Formatter {
	if format != "" {
		f.timestampFormat = format
	}
	return f
}

// Flags sets which columns are written
func (f *Formatter) Flags(flags int64) *Formatter {
	f.flags = flags
	return f
}

// Color enables ANSI level colouring for txt output
func (f *Formatter) Color(enable bool) *Formatter {
	f.color = enable
	return f
}

// Format renders one record. The returned slice is valid until the next call.
func (f *Formatter) Format(timestamp time.Time, level int64, name, message string) []byte {
	f.buf = f.buf[:0]

	switch f.format {
	case "raw":
		f.buf = append(f.buf, f.sanitizer.Sanitize(message)...)
		return f.buf
	case "json":
		return f.formatJSON(timestamp, level, name, message)
	default:
		return f.formatTxt(timestamp, level, name, message)
	}
}

// LevelToString converts numeric level values to their names
func LevelToString(level int64) string {
	switch level {
	case 0:
		return "NOTSET"
	case 10:
		return "DEBUG"
	case 20:
		return "INFO"
	case 30:
		return "WARNING"
	case 40:
		return "ERROR"
	case 50:
		return "CRITICAL"
	default:
		return fmt.Sprintf("Level %d", level)
	}
}

func levelColor(level int64) string {
	switch {
	case level >= 50:
		return colorCritical
	case level >= 40:
		return colorError
	case level >= 30:
		return colorWarning
	case level >= 20:
		return colorInfo
	default:
		return colorDebug
	}
}

// formatJSON writes a single-line object, the sanitizer is bypassed since JSON escaping covers it
func (f *Formatter) formatJSON(timestamp time.Time, level int64, name, message string) []byte {
	f.buf = append(f.buf, '{')

	if f.flags&FlagShowTimestamp != 0 {
		f.buf = append(f.buf, `"time":"`...)
		f.buf = timestamp.AppendFormat(f.buf, f.timestampFormat)
		f.buf = append(f.buf, `",`...)
	}
	if f.flags&FlagShowLevel != 0 {
		f.buf = append(f.buf, `"level":`...)
		f.buf = sanitizer.AppendJSONString(f.buf, LevelToString(level))
		f.buf = append(f.buf, ',')
	}
	if f.flags&FlagShowName != 0 {
		f.buf = append(f.buf, `"name":`...)
		f.buf = sanitizer.AppendJSONString(f.buf, name)
		f.buf = append(f.buf, ',')
	}

	f.buf = append(f.buf, `"message":`...)
	f.buf = sanitizer.AppendJSONString(f.buf, message)
	f.buf = append(f.buf, '}', '\n')
	return f.buf
}

// formatTxt writes space separated columns followed by the message
func (f *Formatter) formatTxt(timestamp time.Time, level int64, name, message string) []byte {
	if f.flags&FlagShowTimestamp != 0 {
		f.buf = timestamp.AppendFormat(f.buf, f.timestampFormat)
		f.buf = append(f.buf, ' ')
	}

	if f.flags&FlagShowLevel != 0 {
		if f.color {
			f.buf = append(f.buf, levelColor(level)...)
		}
		f.buf = append(f.buf, LevelToString(level)...)
		if f.color {
			f.buf = append(f.buf, colorReset...)
		}
		f.buf = append(f.buf, ' ')
	}

	if f.flags&FlagShowName != 0 && name != "" {
		f.buf = append(f.buf, f.sanitizer.Sanitize(name)...)
		f.buf = append(f.buf, ' ')
	}

	f.buf = append(f.buf, f.sanitizer.Sanitize(message)...)
	f.buf = append(f.buf, '\n')
	return f.buf
}
