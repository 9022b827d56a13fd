package domain

import (
	"slices"
	"strings"
)

// Language identifies a dictionary, e.g. "it" or "en".
// The set of supported languages is defined by configuration, not by code.
type Language string

func (l Language) String() string { return string(l) }

// IsValid reports whether l is usable as a language identifier:
// non-empty, lowercase, without whitespace.
func (l Language) IsValid() bool {
	s := string(l)
	if s == "" {
		return false
	}
	if strings.ContainsFunc(s, func(r rune) bool { return r == ' ' || r == '\t' || r == '\n' || r == '\r' }) {
		return false
	}
	return strings.ToLower(s) == s
}

// SortLanguages sorts languages in ascending identifier order, in place.
func SortLanguages(langs []Language) {
	slices.Sort(langs)
}
