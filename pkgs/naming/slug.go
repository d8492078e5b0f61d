package naming

import (
	"regexp"
	"strings"
)

var (
	nonWordChars = regexp.MustCompile(`[^\w\s-]`)
	dashRuns     = regexp.MustCompile(`[-\s]+`)
)

// Slugify maps an arbitrary string to a filesystem-safe token: characters
// outside letters, digits, underscore, whitespace and dash are dropped, then
// runs of whitespace and dashes collapse to a single dash. Deterministic but
// not injective; distinct inputs may share a slug.
func Slugify(value string) string {
	v := nonWordChars.ReplaceAllString(value, "")
	v = strings.TrimSpace(v)
	return dashRuns.ReplaceAllString(v, "-")
}
