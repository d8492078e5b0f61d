package folding

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/qdispatch/qdispatch/pkgs/errors"
)

// Variant is one folded-argument syntax: a name, the pattern that recognizes
// it, and the expansion of its captured span into concrete values.
type Variant struct {
	Name    string
	pattern *regexp.Regexp
	unfold  func(span string) ([]string, error)
}

// Unfold expands a full matched span (brackets included) into its ordered
// value alternatives. Values are still escaped; the scanner decodes them.
func (v *Variant) Unfold(span string) ([]string, error) {
	return v.unfold(span)
}

// find returns the [start, end) offsets of the leftmost match of v in
// text[pos:], adjusted to absolute offsets, or nil when v does not occur.
func (v *Variant) find(text string, pos int) []int {
	loc := v.pattern.FindStringIndex(text[pos:])
	if loc == nil {
		return nil
	}
	return []int{loc[0] + pos, loc[1] + pos}
}

var rangePattern = regexp.MustCompile(`\[(-?\d+):(-?\d+)(?::(-?\d+))?\]`)

// RangeVariant recognizes [start:end] and [start:end:step]. The end bound is
// inclusive, step defaults to 1 and may be negative to count down. A range
// whose step moves away from its end unfolds to zero values.
var RangeVariant = &Variant{
	Name:    "range",
	pattern: rangePattern,
	unfold: func(span string) ([]string, error) {
		groups := rangePattern.FindStringSubmatch(span)
		if groups == nil {
			return nil, errors.NewMalformedFoldArgument(span, "not a range")
		}
		start, err := strconv.Atoi(groups[1])
		if err != nil {
			return nil, errors.NewMalformedFoldArgument(span, "start is not a valid integer")
		}
		end, err := strconv.Atoi(groups[2])
		if err != nil {
			return nil, errors.NewMalformedFoldArgument(span, "end is not a valid integer")
		}
		step := 1
		if groups[3] != "" {
			step, err = strconv.Atoi(groups[3])
			if err != nil {
				return nil, errors.NewMalformedFoldArgument(span, "step is not a valid integer")
			}
		}
		if step == 0 {
			return nil, errors.NewMalformedFoldArgument(span, "step must not be zero")
		}

		var values []string
		if step > 0 {
			for v := start; v <= end; v += step {
				values = append(values, strconv.Itoa(v))
			}
		} else {
			for v := start; v >= end; v += step {
				values = append(values, strconv.Itoa(v))
			}
		}
		return values, nil
	},
}

// EnumerationVariant recognizes [item1 item2 ... itemN] with whitespace
// separated items. It would shadow RangeVariant at the same opening bracket,
// so it must come after it in Variants.
var EnumerationVariant = &Variant{
	Name:    "enumeration",
	pattern: regexp.MustCompile(`\[[^\[\]]*\]`),
	unfold: func(span string) ([]string, error) {
		items := strings.Fields(strings.Trim(span, "[]"))
		if len(items) == 0 {
			return nil, errors.NewEmptyEnumeration(span)
		}
		return items, nil
	},
}

// Variants is the grammar: every folded syntax in match-precedence order.
// The scanner tries each variant in this order at every candidate position,
// so earlier entries win ties at the same opening bracket.
var Variants = []*Variant{RangeVariant, EnumerationVariant}
