// Package command turns unfolded argument segments into the concrete command
// strings of a batch, assigns deterministic UIDs, and reads pre-expanded
// command lists.
package command

import (
	"bufio"
	"io"
	"strings"

	"github.com/qdispatch/qdispatch/pkgs/errors"
	"github.com/qdispatch/qdispatch/pkgs/folding"
)

// FromSegments expands segments into every command in their Cartesian
// product. Each command concatenates one chosen value per segment, in segment
// order, with no separator. The last segment varies fastest. A segment with
// zero values makes the product empty.
func FromSegments(segments []folding.Segment) []string {
	total := 1
	for _, s := range segments {
		total *= len(s.Values)
	}
	if total == 0 {
		return nil
	}

	commands := make([]string, 0, total)
	indices := make([]int, len(segments))
	for {
		var b strings.Builder
		for i, s := range segments {
			b.WriteString(s.Values[indices[i]])
		}
		commands = append(commands, b.String())

		// Odometer increment, rightmost digit first.
		i := len(segments) - 1
		for ; i >= 0; i-- {
			indices[i]++
			if indices[i] < len(segments[i].Values) {
				break
			}
			indices[i] = 0
		}
		if i < 0 {
			break
		}
	}
	return commands
}

// FromReader reads already-unfolded commands, one per line. Lines are
// whitespace-trimmed and blank lines are skipped; no grammar processing
// happens on this path.
func FromReader(r io.Reader) ([]string, error) {
	var commands []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		commands = append(commands, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.NewInputError("reading command list", err)
	}
	return commands, nil
}
