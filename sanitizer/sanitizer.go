// Package sanitizer cleans message text before it is written to a console
// or embedded in a structured line.
package sanitizer

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"unicode"
	"unicode/utf8"
)

// Policy selects how unsafe runes are handled
type Policy string

const (
	PolicyRaw   Policy = "raw"   // Passthrough
	PolicyTxt   Policy = "txt"   // Hex-encode non-printable runes as <xx>
	PolicyJSON  Policy = "json"  // Backslash-escape control runes
	PolicyShell Policy = "shell" // Strip shell metacharacters and whitespace
)

// Valid reports whether name is a known policy
func Valid(name string) bool {
	switch Policy(name) {
	case PolicyRaw, PolicyTxt, PolicyJSON, PolicyShell:
		return true
	}
	return false
}

// Sanitizer applies a single policy. It reuses an internal buffer and is not safe for concurrent use.
type Sanitizer struct {
	policy Policy
	buf    []byte
}

// New creates a sanitizer for the given policy, unknown policies pass through
func New(policy Policy) *Sanitizer {
	return &Sanitizer{
		policy: policy,
		buf:    make([]byte, 0, 256),
	}
}

// Policy returns the configured policy
func (s *Sanitizer) Policy() Policy {
	return s.policy
}

// Sanitize applies the policy to data
func (s *Sanitizer) Sanitize(data string) string {
	if s.policy == PolicyRaw || !s.needsWork(data) {
		return data
	}

	s.buf = s.buf[:0]
	for _, r := range data {
		switch s.policy {
		case PolicyTxt:
			if strconv.IsPrint(r) {
				s.buf = utf8.AppendRune(s.buf, r)
				continue
			}
			var rb [utf8.UTFMax]byte
			n := utf8.EncodeRune(rb[:], r)
			s.buf = append(s.buf, '<')
			s.buf = hex.AppendEncode(s.buf, rb[:n])
			s.buf = append(s.buf, '>')

		case PolicyJSON:
			s.buf = appendEscaped(s.buf, r)

		case PolicyShell:
			if isShellSpecial(r) || unicode.IsSpace(r) {
				continue
			}
			s.buf = utf8.AppendRune(s.buf, r)

		default:
			s.buf = utf8.AppendRune(s.buf, r)
		}
	}
	return string(s.buf)
}

// needsWork is a fast path check, most messages are clean
func (s *Sanitizer) needsWork(data string) bool {
	for _, r := range data {
		switch s.policy {
		case PolicyTxt:
			if !strconv.IsPrint(r) {
				return true
			}
		case PolicyJSON:
			if unicode.IsControl(r) {
				return true
			}
		case PolicyShell:
			if isShellSpecial(r) || unicode.IsSpace(r) {
				return true
			}
		}
	}
	return false
}

// AppendJSONString appends str to buf as a quoted JSON string
func AppendJSONString(buf []byte, str string) []byte {
	buf = append(buf, '"')
	for i := 0; i < len(str); {
		c := str[i]
		if c >= ' ' && c != '"' && c != '\\' && c < 0x7f {
			start := i
			for i < len(str) && str[i] >= ' ' && str[i] != '"' && str[i] != '\\' && str[i] < 0x7f {
				i++
			}
			buf = append(buf, str[start:i]...)
			continue
		}
		if c < utf8.RuneSelf {
			buf = appendEscaped(buf, rune(c))
			i++
			continue
		}
		r, size := utf8.DecodeRuneInString(str[i:])
		buf = utf8.AppendRune(buf, r)
		i += size
	}
	return append(buf, '"')
}

// appendEscaped writes r with JSON-style backslash escaping where required
func appendEscaped(buf []byte, r rune) []byte {
	switch r {
	case '\n':
		return append(buf, '\\', 'n')
	case '\r':
		return append(buf, '\\', 'r')
	case '\t':
		return append(buf, '\\', 't')
	case '\b':
		return append(buf, '\\', 'b')
	case '\f':
		return append(buf, '\\', 'f')
	case '"':
		return append(buf, '\\', '"')
	case '\\':
		return append(buf, '\\', '\\')
	}
	if r < 0x20 || r == 0x7f {
		return append(buf, fmt.Sprintf("\\u%04x", r)...)
	}
	return utf8.AppendRune(buf, r)
}

func isShellSpecial(r rune) bool {
	switch r {
	case '`', '$', ';', '|', '&', '>', '<', '(', ')', '#':
		return true
	}
	return false
}
