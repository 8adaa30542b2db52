package config

import (
	"fmt"
	"strings"

	"github.com/npillmayer/cefrlex"
)

// Validate checks the loaded configuration and parses the language list.
// Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Source.validate(); err != nil {
		return fmt.Errorf("source: %w", err)
	}
	if c.Resolve.CacheSize < 0 {
		return fmt.Errorf("resolve.cache_size must be >= 0 (got %d)", c.Resolve.CacheSize)
	}
	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}

	langs, err := ParseLanguages(c.Languages)
	if err != nil {
		return fmt.Errorf("languages: %w", err)
	}
	c.Langs = langs

	return nil
}

func (s *SourceConfig) validate() error {
	s.Kind = strings.ToLower(strings.TrimSpace(s.Kind))
	switch s.Kind {
	case SourceFile:
		if s.Dir == "" {
			return fmt.Errorf("dir must be set for file source")
		}
	case SourceRedis:
		if s.Redis.Addr == "" {
			return fmt.Errorf("redis.addr must be set for redis source")
		}
	case SourcePostgres:
		if s.Postgres.DSN == "" {
			return fmt.Errorf("postgres.dsn must be set for postgres source")
		}
	default:
		return fmt.Errorf("unknown kind %q (want file, redis or postgres)", s.Kind)
	}
	return nil
}

func (l *LogConfig) validate() error {
	switch strings.ToLower(strings.TrimSpace(l.Level)) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown level %q", l.Level)
	}
	switch strings.ToLower(strings.TrimSpace(l.Format)) {
	case "json", "text":
	default:
		return fmt.Errorf("unknown format %q", l.Format)
	}
	return nil
}

// ParseLanguages parses language codes, dropping duplicates. An empty list
// is an error.
func ParseLanguages(codes []string) ([]cefrlex.Language, error) {
	var langs []cefrlex.Language
	seen := make(map[cefrlex.Language]bool)
	for _, code := range codes {
		code = strings.TrimSpace(code)
		if code == "" {
			continue
		}
		lang, err := cefrlex.ParseLanguage(code)
		if err != nil {
			return nil, err
		}
		if !seen[lang] {
			seen[lang] = true
			langs = append(langs, lang)
		}
	}
	if len(langs) == 0 {
		return nil, fmt.Errorf("no languages configured")
	}
	return langs, nil
}
