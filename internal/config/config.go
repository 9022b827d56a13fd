package config

import (
	"slices"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Dictionary DictionaryConfig `yaml:"dictionary"`
	Log        LogConfig        `yaml:"log"`
	CORS       CORSConfig       `yaml:"cors"`
	RateLimit  RateLimitConfig  `yaml:"rate_limit"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"3000"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DictionaryConfig describes the word lists to load and the query defaults.
//
// Sources and Names are maps keyed by language code. From the environment
// they are written as "it:db/ita.txt,en:db/eng.txt".
type DictionaryConfig struct {
	Sources         map[string]string `yaml:"sources"          env:"DICT_SOURCES"          env-default:"it:db/ita.txt,en:db/eng.txt"`
	Names           map[string]string `yaml:"names"            env:"DICT_NAMES"            env-default:"it:Italian,en:English"`
	DefaultLanguage string            `yaml:"default_language" env:"DICT_DEFAULT_LANGUAGE" env-default:"it"`
	DefaultLimit    int               `yaml:"default_limit"    env:"DICT_DEFAULT_LIMIT"    env-default:"100"`
	MaxLimit        int               `yaml:"max_limit"        env:"DICT_MAX_LIMIT"        env-default:"1000"`
}

// Languages returns the configured language codes in ascending order.
func (c DictionaryConfig) Languages() []string {
	langs := make([]string, 0, len(c.Sources))
	for lang := range c.Sources {
		langs = append(langs, lang)
	}
	slices.Sort(langs)
	return langs
}

// DisplayName returns the human-readable name of lang, falling back to
// the code itself.
func (c DictionaryConfig) DisplayName(lang string) string {
	if name, ok := c.Names[lang]; ok && name != "" {
		return name
	}
	return lang
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig holds per-client request throttling settings.
type RateLimitConfig struct {
	Enabled           bool          `yaml:"enabled"             env:"RATE_LIMIT_ENABLED"             env-default:"true"`
	RequestsPerMinute int           `yaml:"requests_per_minute" env:"RATE_LIMIT_REQUESTS_PER_MINUTE" env-default:"600"`
	Burst             int           `yaml:"burst"               env:"RATE_LIMIT_BURST"               env-default:"50"`
	CleanupInterval   time.Duration `yaml:"cleanup_interval"    env:"RATE_LIMIT_CLEANUP_INTERVAL"    env-default:"5m"`
}
