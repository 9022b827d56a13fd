package lookup

import (
	"math"
	"strconv"
	"strings"

	"github.com/heartmarshall/wordlookup/internal/domain"
)

// SearchInput holds the parameters of a membership query.
// Lang is nil when the caller did not specify a language.
type SearchInput struct {
	Word  string
	Lang  *string
	Shape Shape
}

// Validate checks required fields.
func (i SearchInput) Validate() error {
	if i.Word == "" {
		return domain.NewMissingParameterError("word")
	}
	return nil
}

// PrefixInput holds the parameters of a prefix query.
// Lang and Limit are nil when absent; the service applies defaults.
type PrefixInput struct {
	Prefix string
	Lang   *string
	Limit  *int
	Shape  Shape
}

// Validate checks required fields.
func (i PrefixInput) Validate() error {
	if i.Prefix == "" {
		return domain.NewMissingParameterError("prefix")
	}
	return nil
}

// ParseLight reports whether a "light" flag value asks for the compact
// response. Only "true", "1" and "yes" (any case) count; everything else,
// absence included, selects the full shape.
func ParseLight(raw string) Shape {
	switch strings.ToLower(raw) {
	case "true", "1", "yes":
		return ShapeLight
	default:
		return ShapeFull
	}
}

// ParseLimit parses a "limit" value from its leading integer: an optional
// sign followed by digits, after trimming whitespace. Trailing characters
// are ignored, so "10abc" is 10 and "2e3" is 2. Values beyond the int range
// saturate. It returns nil when no digits lead the value so that the
// default applies.
func ParseLimit(raw string) *int {
	s := strings.TrimSpace(raw)

	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}

	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return nil
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		// Only a range error is possible on a pure digit run.
		n = math.MaxInt
		if neg {
			n = math.MinInt
		}
	} else if neg {
		n = -n
	}
	return &n
}
