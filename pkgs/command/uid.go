package command

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// UIDTag is the literal placeholder a command template may carry anywhere in
// its text. ReplaceUIDTag swaps it for the command's UID.
const UIDTag = "{UID}"

// UID returns the hex sha256 digest of the command text. Identical text
// always yields the identical UID, and the digest never contains UIDTag, so
// one substitution pass is final.
func UID(command string) string {
	sum := sha256.Sum256([]byte(command))
	return hex.EncodeToString(sum[:])
}

// ReplaceUIDTag replaces every UIDTag occurrence in each command with the UID
// of that command's original text. Commands without the tag pass through
// unchanged. Order-preserving and idempotent.
func ReplaceUIDTag(commands []string) []string {
	out := make([]string, len(commands))
	for i, c := range commands {
		if strings.Contains(c, UIDTag) {
			out[i] = strings.ReplaceAll(c, UIDTag, UID(c))
		} else {
			out[i] = c
		}
	}
	return out
}
