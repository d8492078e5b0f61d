// Package naming derives length-bounded labels for a batch, either from one
// concrete command or from the unfolded argument structure.
package naming

import (
	"strings"
	"time"

	"github.com/qdispatch/qdispatch/pkgs/errors"
	"github.com/qdispatch/qdispatch/pkgs/folding"
)

// Options bound the generated name. Zero means unlimited.
type Options struct {
	// MaxArgLength trims each per-token label: positive keeps that many
	// trailing characters, negative keeps that many leading characters.
	MaxArgLength int
	// MaxLength trims the assembled name with the same sign convention.
	MaxLength int
	// Prefix is prepended by FromSegments. When empty, a timestamp prefix is
	// computed at call time.
	Prefix string
}

const timestampLayout = "2006-01-02_15-04-05_"

// Trim bounds a token to n characters: n > 0 keeps the trailing n, n < 0
// keeps the leading -n, n == 0 leaves the token whole.
func Trim(token string, n int) string {
	runes := []rune(token)
	switch {
	case n > 0 && len(runes) > n:
		return string(runes[len(runes)-n:])
	case n < 0 && len(runes) > -n:
		return string(runes[:-n])
	}
	return token
}

// FromCommand builds a name from one command: each whitespace-separated token
// is slugified and trimmed to MaxArgLength, the tokens are joined with
// underscores, and the result is trimmed to MaxLength.
func FromCommand(command string, opts Options) (string, error) {
	tokens := strings.Fields(command)
	if len(tokens) == 0 {
		return "", errors.NewEmptyArgumentList("command has no tokens to name")
	}
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = Trim(Slugify(tok), opts.MaxArgLength)
	}
	return Trim(strings.Join(parts, "_"), opts.MaxLength), nil
}

// FromSegments builds a name from the unfolded structure: every folded
// segment contributes its first value, plus its last value after a dash when
// it holds more than one. Labels join with underscores, the joined part is
// trimmed to MaxLength, and the prefix goes in front untrimmed.
func FromSegments(segments []folding.Segment, opts Options) (string, error) {
	if len(segments) == 0 {
		return "", errors.NewEmptyArgumentList("no segments to name")
	}

	var labels []string
	for _, seg := range segments {
		if !seg.Folded() || len(seg.Values) == 0 {
			continue
		}
		label := Trim(Slugify(seg.Values[0]), opts.MaxArgLength)
		if len(seg.Values) > 1 {
			label += "-" + Trim(Slugify(seg.Values[len(seg.Values)-1]), opts.MaxArgLength)
		}
		labels = append(labels, label)
	}

	prefix := opts.Prefix
	if prefix == "" {
		prefix = time.Now().Format(timestampLayout)
	}
	return prefix + Trim(strings.Join(labels, "_"), opts.MaxLength), nil
}
