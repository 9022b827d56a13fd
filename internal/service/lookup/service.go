package lookup

import (
	"fmt"
	"log/slog"

	"github.com/heartmarshall/wordlookup/internal/config"
	"github.com/heartmarshall/wordlookup/internal/domain"
)

type wordStore interface {
	Exists(lang domain.Language, word string) (bool, error)
	PrefixSearch(lang domain.Language, prefix string, limit int) ([]string, error)
	Supports(lang domain.Language) bool
	Languages() []domain.Language
	Count(lang domain.Language) (int, bool)
}

// Service answers word lookups against the loaded dictionaries.
// It resolves defaults, clamps limits and rejects unsupported languages
// before touching the store.
type Service struct {
	log     *slog.Logger
	store   wordStore
	cfg     config.DictionaryConfig
	version string
}

// NewService creates a new lookup service.
func NewService(logger *slog.Logger, store wordStore, cfg config.DictionaryConfig, version string) *Service {
	return &Service{
		log:     logger.With("service", "lookup"),
		store:   store,
		cfg:     cfg,
		version: version,
	}
}

// Search reports whether the word exists in the requested dictionary.
func (s *Service) Search(input SearchInput) (SearchResult, error) {
	if err := input.Validate(); err != nil {
		return SearchResult{}, err
	}

	lang, err := s.resolveLanguage(input.Lang)
	if err != nil {
		return SearchResult{}, err
	}

	word := domain.Normalize(input.Word)
	exists, err := s.store.Exists(lang, word)
	if err != nil {
		return SearchResult{}, fmt.Errorf("exists: %w", err)
	}

	return SearchResult{
		Shape:   input.Shape,
		Word:    word,
		Lang:    lang,
		Exists:  exists,
		Message: s.existsMessage(word, lang, exists),
	}, nil
}

// Prefix lists the words of the requested dictionary that start with the
// prefix. Limit defaults to the configured default and is clamped to
// [1, max_limit].
func (s *Service) Prefix(input PrefixInput) (PrefixResult, error) {
	if err := input.Validate(); err != nil {
		return PrefixResult{}, err
	}

	lang, err := s.resolveLanguage(input.Lang)
	if err != nil {
		return PrefixResult{}, err
	}

	limit := s.clampLimit(input.Limit)
	prefix := domain.Normalize(input.Prefix)

	words, err := s.store.PrefixSearch(lang, prefix, limit)
	if err != nil {
		return PrefixResult{}, fmt.Errorf("prefix search: %w", err)
	}
	if words == nil {
		words = []string{}
	}

	return PrefixResult{
		Shape:   input.Shape,
		Prefix:  prefix,
		Lang:    lang,
		Count:   len(words),
		Limit:   limit,
		Results: words,
	}, nil
}

// resolveLanguage maps an absent language to the default. A present value
// must name a loaded dictionary exactly; the empty string never does.
func (s *Service) resolveLanguage(raw *string) (domain.Language, error) {
	if raw == nil {
		return domain.Language(s.cfg.DefaultLanguage), nil
	}
	lang := domain.Language(*raw)
	if !s.store.Supports(lang) {
		s.log.Debug("unsupported language", slog.String("lang", *raw))
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidLanguage, *raw)
	}
	return lang, nil
}

func (s *Service) clampLimit(requested *int) int {
	limit := s.cfg.DefaultLimit
	if requested != nil {
		limit = *requested
	}
	return max(1, min(limit, s.cfg.MaxLimit))
}

func (s *Service) existsMessage(word string, lang domain.Language, exists bool) string {
	name := s.cfg.DisplayName(lang.String())
	if exists {
		return fmt.Sprintf("The word \"%s\" exists in the %s dictionary", word, name)
	}
	return fmt.Sprintf("The word \"%s\" does not exist in the %s dictionary", word, name)
}
