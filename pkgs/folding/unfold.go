package folding

import (
	"strings"

	"github.com/qdispatch/qdispatch/pkgs/errors"
)

// Segment is one contiguous span of the escaped input text. A literal segment
// carries exactly one value; a folded segment carries the alternatives its
// variant unfolded to. Concatenating the spans of a segment sequence in order
// reconstructs the escaped input exactly.
type Segment struct {
	Span    string   // escaped source span this segment covers
	Values  []string // unescaped value alternatives, in order
	Variant string   // variant name, empty for literals
}

// Folded reports whether the segment came from a folded-argument match.
func (s Segment) Folded() bool {
	return s.Variant != ""
}

func literal(span string) Segment {
	return Segment{Span: span, Values: []string{Unescape(span)}}
}

// Unfold joins the raw arguments with single spaces, escapes backslash
// sequences, and scans the result left to right for folded arguments. Each
// match becomes a folded segment; the text around matches becomes literal
// segments, including a trailing literal which is always emitted even when
// empty. Matches never overlap: the leftmost match wins, and ties at the same
// position go to the earlier entry in Variants.
func Unfold(args []string) ([]Segment, error) {
	if len(args) == 0 {
		return nil, errors.NewEmptyArgumentList("no arguments to unfold")
	}
	text := Escape(strings.Join(args, " "))

	var segments []Segment
	pos := 0
	for {
		variant, loc := nextMatch(text, pos)
		if variant == nil {
			break
		}
		segments = append(segments, literal(text[pos:loc[0]]))

		span := text[loc[0]:loc[1]]
		values, err := variant.Unfold(span)
		if err != nil {
			return nil, err
		}
		for i, v := range values {
			values[i] = Unescape(v)
		}
		segments = append(segments, Segment{Span: span, Values: values, Variant: variant.Name})
		pos = loc[1]
	}
	segments = append(segments, literal(text[pos:]))
	return segments, nil
}

// nextMatch finds the earliest variant match at or after pos. Equal start
// positions are resolved by Variants order.
func nextMatch(text string, pos int) (*Variant, []int) {
	var best *Variant
	var bestLoc []int
	for _, v := range Variants {
		loc := v.find(text, pos)
		if loc == nil {
			continue
		}
		if bestLoc == nil || loc[0] < bestLoc[0] {
			best, bestLoc = v, loc
		}
	}
	return best, bestLoc
}
