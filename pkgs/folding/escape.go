package folding

import (
	"fmt"
	"strconv"
	"strings"
)

// Escape encodes every backslash-escaped byte as a \x{HH} hex sequence so the
// grammar scanner cannot mistake it for folded syntax. A trailing lone
// backslash is kept as-is. The encoding is reversed per emitted value by
// Unescape.
func Escape(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); i++ {
		if text[i] == '\\' && i+1 < len(text) {
			fmt.Fprintf(&b, `\x%02x`, text[i+1])
			i++
			continue
		}
		b.WriteByte(text[i])
	}
	return b.String()
}

// Unescape decodes \x{HH} hex sequences produced by Escape back into the bare
// byte they stand for. Sequences that are not two hex digits pass through
// untouched.
func Unescape(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); i++ {
		if text[i] == '\\' && i+3 < len(text) && text[i+1] == 'x' && isHexDigit(text[i+2]) && isHexDigit(text[i+3]) {
			v, err := strconv.ParseUint(text[i+2:i+4], 16, 8)
			if err == nil {
				b.WriteByte(byte(v))
				i += 3
				continue
			}
		}
		b.WriteByte(text[i])
	}
	return b.String()
}

func isHexDigit(ch byte) bool {
	return ('0' <= ch && ch <= '9') || ('a' <= ch && ch <= 'f') || ('A' <= ch && ch <= 'F')
}
