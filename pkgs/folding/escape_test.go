package folding

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEscape(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "no escapes pass through",
			input:    "run --mode=[a b c]",
			expected: "run --mode=[a b c]",
		},
		{
			name:     "escaped opening bracket",
			input:    `a \[b`,
			expected: `a \x5bb`,
		},
		{
			name:     "escaped closing bracket",
			input:    `a \]b`,
			expected: `a \x5db`,
		},
		{
			name:     "escaped colon",
			input:    `\:`,
			expected: `\x3a`,
		},
		{
			name:     "escaped backslash",
			input:    `\\[1:2]`,
			expected: `\x5c[1:2]`,
		},
		{
			name:     "trailing lone backslash kept",
			input:    `tail\`,
			expected: `tail\`,
		},
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.expected, Escape(tt.input)); diff != "" {
				t.Errorf("Escape(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestUnescape(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "hex sequence decodes to bare byte",
			input:    `\x5bliteral\x5d`,
			expected: "[literal]",
		},
		{
			name:     "non-hex sequence passes through",
			input:    `\xzz`,
			expected: `\xzz`,
		},
		{
			name:     "plain text untouched",
			input:    "run --mode=a",
			expected: "run --mode=a",
		},
		{
			name:     "truncated sequence passes through",
			input:    `\x5`,
			expected: `\x5`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.expected, Unescape(tt.input)); diff != "" {
				t.Errorf("Unescape(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestEscapeUnescapeYieldsBareByte(t *testing.T) {
	// Escaping consumes the backslash: \[ encodes to \x5b which decodes to
	// the literal bracket the user meant.
	got := Unescape(Escape(`run \[x\]`))
	if got != "run [x]" {
		t.Errorf("expected %q, got %q", "run [x]", got)
	}
}
