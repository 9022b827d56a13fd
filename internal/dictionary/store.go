// Package dictionary holds the per-language word sets and answers
// membership and prefix queries against them.
//
// A Store is built once by Load and never mutated afterwards, so every
// query method is safe for concurrent use without locking.
package dictionary

import (
	"fmt"
	"sort"
	"strings"

	"github.com/heartmarshall/wordlookup/internal/domain"
)

// wordSet is the immutable dictionary of one language.
// index and sorted hold the same normalized words.
type wordSet struct {
	index  map[string]struct{}
	sorted []string
	stats  LoadStats
}

// Store answers queries against the loaded dictionaries.
type Store struct {
	sets map[domain.Language]*wordSet
}

// Supports reports whether lang has a loaded dictionary.
func (s *Store) Supports(lang domain.Language) bool {
	_, ok := s.sets[lang]
	return ok
}

// Languages returns the loaded languages in ascending order.
func (s *Store) Languages() []domain.Language {
	langs := make([]domain.Language, 0, len(s.sets))
	for lang := range s.sets {
		langs = append(langs, lang)
	}
	domain.SortLanguages(langs)
	return langs
}

// Count returns the number of words loaded for lang.
func (s *Store) Count(lang domain.Language) (int, bool) {
	ws, ok := s.sets[lang]
	if !ok {
		return 0, false
	}
	return len(ws.sorted), true
}

// Stats returns the load statistics of lang.
func (s *Store) Stats(lang domain.Language) (LoadStats, bool) {
	ws, ok := s.sets[lang]
	if !ok {
		return LoadStats{}, false
	}
	return ws.stats, true
}

// Exists reports whether the normalized word is in the dictionary of lang.
func (s *Store) Exists(lang domain.Language, word string) (bool, error) {
	ws, err := s.lookup(lang)
	if err != nil {
		return false, err
	}
	_, ok := ws.index[domain.Normalize(word)]
	return ok, nil
}

// PrefixSearch returns at most limit words of lang starting with the
// normalized prefix, in ascending byte order. The smallest matches are
// always the ones kept. An empty prefix matches every word; a limit of
// zero or less yields an empty result.
func (s *Store) PrefixSearch(lang domain.Language, prefix string, limit int) ([]string, error) {
	ws, err := s.lookup(lang)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		return []string{}, nil
	}

	p := domain.Normalize(prefix)
	words := ws.sorted

	// Words sharing a prefix are contiguous in sorted order.
	start := sort.SearchStrings(words, p)
	end := start
	for end < len(words) && end-start < limit && strings.HasPrefix(words[end], p) {
		end++
	}

	out := make([]string, end-start)
	copy(out, words[start:end])
	return out, nil
}

func (s *Store) lookup(lang domain.Language) (*wordSet, error) {
	ws, ok := s.sets[lang]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidLanguage, lang)
	}
	return ws, nil
}
