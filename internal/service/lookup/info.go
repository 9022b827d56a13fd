package lookup

import (
	"fmt"
	"strings"
)

// Info describes the service, its dictionaries and its endpoints.
type Info struct {
	Name        string              `json:"name"`
	Version     string              `json:"version"`
	Description string              `json:"description"`
	Stats       InfoStats           `json:"stats"`
	Languages   []string            `json:"languages"`
	Endpoints   map[string]Endpoint `json:"endpoints"`
}

// InfoStats carries word counts keyed by language.
type InfoStats struct {
	Words map[string]int `json:"words"`
}

// Endpoint documents one query route.
type Endpoint struct {
	Path        string            `json:"path"`
	Description string            `json:"description"`
	Params      map[string]string `json:"params"`
}

// Info reports service metadata and per-language word counts.
func (s *Service) Info() Info {
	langs := s.store.Languages()

	codes := make([]string, 0, len(langs))
	names := make([]string, 0, len(langs))
	words := make(map[string]int, len(langs))
	for _, lang := range langs {
		n, _ := s.store.Count(lang)
		words[lang.String()] = n
		codes = append(codes, lang.String())
		names = append(names, s.cfg.DisplayName(lang.String()))
	}

	langParam := fmt.Sprintf("string - one of %s (default: %q)",
		quoteJoin(codes), s.cfg.DefaultLanguage)
	lightParam := "boolean - compact response when true, 1 or yes (default: false)"

	return Info{
		Name:        "Word API",
		Version:     s.version,
		Description: "Look up words in the " + strings.Join(names, ", ") + " dictionaries",
		Stats:       InfoStats{Words: words},
		Languages:   codes,
		Endpoints: map[string]Endpoint{
			"search": {
				Path:        "GET /search",
				Description: "Check whether a word exists in a dictionary",
				Params: map[string]string{
					"word":  "string (required)",
					"lang":  langParam,
					"light": lightParam,
				},
			},
			"prefix": {
				Path:        "GET /prefix",
				Description: "List the words that start with a prefix, in ascending order",
				Params: map[string]string{
					"prefix": "string (required)",
					"lang":   langParam,
					"limit":  fmt.Sprintf("number - max results, 1 to %d (default: %d)", s.cfg.MaxLimit, s.cfg.DefaultLimit),
					"light":  lightParam,
				},
			},
		},
	}
}

func quoteJoin(items []string) string {
	quoted := make([]string, len(items))
	for i, it := range items {
		quoted[i] = fmt.Sprintf("%q", it)
	}
	return strings.Join(quoted, ", ")
}
