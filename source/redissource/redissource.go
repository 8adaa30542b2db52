/*
Package redissource reads dictionary payloads from Redis.

Layout, for key prefix "cefrlex" and language "fr":

	cefrlex:fr:entries   string, full dictionary as JSON (see package payload)
	cefrlex:fr:light     hash, form -> comma-separated tiers, e.g. "A1,C1"
*/
package redissource

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"

	"github.com/npillmayer/cefrlex"
	"github.com/npillmayer/cefrlex/payload"
	"github.com/npillmayer/cefrlex/source"
)

// DefaultPrefix is used for keys when no prefix is given.
const DefaultPrefix = "cefrlex"

// Client is the subset of *redis.Client the source needs.
type Client interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	HGetAll(ctx context.Context, key string) *redis.MapStringStringCmd
}

// Source is a source.Fetcher over Redis.
type Source struct {
	client Client
	prefix string
}

var _ source.Fetcher = (*Source)(nil)

// New creates a source using client. An empty prefix selects DefaultPrefix.
func New(client Client, prefix string) *Source {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Source{client: client, prefix: prefix}
}

// NewClient connects to a Redis server.
func NewClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

// EntriesKey is the key holding the full dictionary of lang.
func (s *Source) EntriesKey(lang cefrlex.Language) string {
	return fmt.Sprintf("%s:%s:entries", s.prefix, lang)
}

// LightKey is the key of the light hash of lang.
func (s *Source) LightKey(lang cefrlex.Language) string {
	return fmt.Sprintf("%s:%s:light", s.prefix, lang)
}

// FetchEntries reads and decodes the full dictionary of lang.
func (s *Source) FetchEntries(ctx context.Context, lang cefrlex.Language) ([]cefrlex.RawEntry, error) {
	key := s.EntriesKey(lang)
	data, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%s: %w", key, source.ErrNoPayload)
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}
	entries, err := payload.ReadEntries(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}
	return entries, nil
}

// FetchLight reads the light hash of lang. Fields are returned sorted by
// form; fields without a valid tier list are dropped.
func (s *Source) FetchLight(ctx context.Context, lang cefrlex.Language) ([]cefrlex.RawLightEntry, error) {
	key := s.LightKey(lang)
	fields, err := s.client.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("redis hgetall %s: %w", key, err)
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("%s: %w", key, source.ErrNoPayload)
	}
	forms := make([]string, 0, len(fields))
	for form := range fields {
		forms = append(forms, form)
	}
	sort.Strings(forms)
	entries := make([]cefrlex.RawLightEntry, 0, len(forms))
	for _, form := range forms {
		e, ok := payload.ParseLightLine(form + "\t" + fields[form])
		if !ok {
			continue
		}
		entries = append(entries, e)
	}
	return entries, nil
}
