package sanitizer

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizer(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		policy   Policy
		expected string
	}{
		{
			name:     "raw passes through",
			input:    "hello\x00world\n",
			policy:   PolicyRaw,
			expected: "hello\x00world\n",
		},
		{
			name:     "txt hex encodes null byte",
			input:    "test\x00data",
			policy:   PolicyTxt,
			expected: "test<00>data",
		},
		{
			name:     "txt hex encodes control chars",
			input:    "bell\x07tab\x09",
			policy:   PolicyTxt,
			expected: "bell<07>tab<09>",
		},
		{
			name:     "txt hex encodes multi-byte control",
			input:    "line1\u0085line2",
			policy:   PolicyTxt,
			expected: "line1<c285>line2",
		},
		{
			name:     "txt preserves UTF-8",
			input:    "Hello 世界 ✓",
			policy:   PolicyTxt,
			expected: "Hello 世界 ✓",
		},
		{
			name:     "json escapes newline and tab",
			input:    "a\nb\tc",
			policy:   PolicyJSON,
			expected: `a\nb\tc`,
		},
		{
			name:     "json leaves printable untouched",
			input:    "disk low",
			policy:   PolicyJSON,
			expected: "disk low",
		},
		{
			name:     "shell strips metacharacters and spaces",
			input:    "rm -rf $(pwd); echo",
			policy:   PolicyShell,
			expected: "rm-rfpwdecho",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := New(tc.policy)
			assert.Equal(t, tc.expected, s.Sanitize(tc.input))
			assert.Equal(t, tc.policy, s.Policy())
		})
	}
}

func TestSanitizerBufferReuse(t *testing.T) {
	s := New(PolicyTxt)
	first := s.Sanitize("a\x00")
	second := s.Sanitize("b\x01")

	// Results must not alias the internal buffer
	assert.Equal(t, "a<00>", first)
	assert.Equal(t, "b<01>", second)
}

func TestValid(t *testing.T) {
	for _, p := range []string{"raw", "txt", "json", "shell"} {
		assert.True(t, Valid(p), p)
	}
	assert.False(t, Valid("xml"))
	assert.False(t, Valid(""))
}

func TestAppendJSONString(t *testing.T) {
	inputs := []string{
		"plain",
		`quote " and backslash \`,
		"control\x00\x1f\x7f",
		"multi\nline\r\n",
		"unicode 世界",
		"",
	}

	for _, in := range inputs {
		out := AppendJSONString(nil, in)
		var decoded string
		require.NoError(t, json.Unmarshal(out, &decoded), "output: %s", out)
		assert.Equal(t, in, decoded)
	}
}
