package domain

import (
	"strings"
)

// Normalize prepares a word or prefix for storage and comparison:
// leading/trailing whitespace is trimmed and the result is lowercased.
// Inner whitespace, diacritics, hyphens and apostrophes are preserved.
//
// Normalize is idempotent.
func Normalize(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	return strings.ToLower(text)
}
