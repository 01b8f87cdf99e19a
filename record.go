package devlog

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/davecgh/go-spew/spew"
)

// Record is a single log event as it reaches a root's dispatch point
type Record struct {
	Time  time.Time
	Level int64
	Name  string // Category of the emitting logger
	Msg   any    // Message template, or any value when not a string
	Args  []any  // Positional arguments for the template
}

// Message returns the fully formatted message.
// A string template is interpolated only when arguments were supplied, otherwise it is taken literally.
// Any other message value is rendered and followed by its rendered arguments, space separated.
func (r Record) Message() string {
	if tmpl, ok := r.Msg.(string); ok {
		if len(r.Args) == 0 {
			return tmpl
		}
		return fmt.Sprintf(tmpl, r.Args...)
	}

	if len(r.Args) == 0 {
		return renderValue(r.Msg)
	}
	parts := make([]string, 0, len(r.Args)+1)
	parts = append(parts, renderValue(r.Msg))
	for _, arg := range r.Args {
		parts = append(parts, renderValue(arg))
	}
	return strings.Join(parts, " ")
}

// LevelName returns the name of the record's level
func (r Record) LevelName() string {
	return LevelName(r.Level)
}

// Entry returns the captured form of the record
func (r Record) Entry() Entry {
	return Entry{
		Message:   r.Message(),
		LevelNo:   r.Level,
		LevelName: r.LevelName(),
		Name:      r.Name,
	}
}

// Entry is a captured log record with its message already formatted
type Entry struct {
	Message   string
	LevelNo   int64
	LevelName string
	Name      string
}

// dumper renders composite message values in a compact, stable form
var dumper = &spew.ConfigState{
	Indent:                  " ",
	MaxDepth:                10,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// renderValue converts a non-template message value to a string
func renderValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "nil"
	case string:
		return val
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case uint64:
		return strconv.FormatUint(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	case time.Time:
		return val.Format(time.RFC3339Nano)
	case error:
		return val.Error()
	case fmt.Stringer:
		return val.String()
	case []byte:
		return hex.EncodeToString(val)
	default:
		// Structs, maps, slices and pointers
		var b bytes.Buffer
		dumper.Fdump(&b, val)
		return string(bytes.TrimSpace(b.Bytes()))
	}
}
