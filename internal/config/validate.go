package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/heartmarshall/wordlookup/internal/domain"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in [1, 65535] (got %d)", c.Server.Port)
	}

	if err := c.Dictionary.validate(); err != nil {
		return fmt.Errorf("dictionary: %w", err)
	}

	if err := c.RateLimit.validate(); err != nil {
		return fmt.Errorf("rate_limit: %w", err)
	}

	return nil
}

func (d *DictionaryConfig) validate() error {
	if len(d.Sources) == 0 {
		return fmt.Errorf("at least one source must be configured")
	}

	for _, lang := range d.Languages() {
		if !domain.Language(lang).IsValid() {
			return fmt.Errorf("sources: invalid language code %q", lang)
		}
		if strings.TrimSpace(d.Sources[lang]) == "" {
			return fmt.Errorf("sources: empty path for %q", lang)
		}
	}

	if !slices.Contains(d.Languages(), d.DefaultLanguage) {
		return fmt.Errorf("default_language %q has no configured source", d.DefaultLanguage)
	}
	if d.MaxLimit < 1 {
		return fmt.Errorf("max_limit must be >= 1 (got %d)", d.MaxLimit)
	}
	if d.DefaultLimit < 1 || d.DefaultLimit > d.MaxLimit {
		return fmt.Errorf("default_limit must be in [1, %d] (got %d)", d.MaxLimit, d.DefaultLimit)
	}

	return nil
}

func (r *RateLimitConfig) validate() error {
	if !r.Enabled {
		return nil
	}
	if r.RequestsPerMinute <= 0 {
		return fmt.Errorf("requests_per_minute must be > 0 (got %d)", r.RequestsPerMinute)
	}
	if r.Burst <= 0 {
		return fmt.Errorf("burst must be > 0 (got %d)", r.Burst)
	}
	if r.CleanupInterval <= 0 {
		return fmt.Errorf("cleanup_interval must be > 0 (got %v)", r.CleanupInterval)
	}
	return nil
}
