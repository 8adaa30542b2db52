package cefrlex

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"
)

// Registry caches the indexes of every language for the lifetime of the
// process. Indexes are built lazily from the registry's Provider, exactly
// once per language even under concurrent first use, and are never
// invalidated: payloads added to the provider after a language's index was
// built are not picked up.
//
// Reads of built indexes take no locks.
type Registry struct {
	provider Provider
	full     sync.Map // Language -> *Index
	light    sync.Map // Language -> *LightIndex
	group    singleflight.Group
	cache    *lru.Cache[string, cachedResolve]
}

type cachedResolve struct {
	entry Entry
	ok    bool
}

// Option configures a Registry.
type Option func(*Registry)

// WithResolveCache keeps the results of the last size Resolve calls.
func WithResolveCache(size int) Option {
	return func(r *Registry) {
		cache, err := lru.New[string, cachedResolve](size)
		if err != nil {
			tracer().Errorf("resolve cache of size %d: %v", size, err)
			return
		}
		r.cache = cache
	}
}

// NewRegistry creates a registry drawing payloads from p. p may be nil, in
// which case indexes exist only through BuildIndex and BuildLightIndex.
func NewRegistry(p Provider, opts ...Option) *Registry {
	r := &Registry{provider: p}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Index returns the full index of lang, building it on first use. It returns
// nil if no payload exists for lang.
func (r *Registry) Index(lang Language) *Index {
	return loadOrBuild(r, &r.full, "index/", lang, func() *Index {
		if r.provider == nil {
			return nil
		}
		raw, ok := r.provider.Entries(lang)
		if !ok {
			return nil
		}
		return NewIndex(lang, raw)
	})
}

// LightIndex returns the light index of lang, building it on first use. It
// returns nil if no light payload exists for lang.
func (r *Registry) LightIndex(lang Language) *LightIndex {
	return loadOrBuild(r, &r.light, "light/", lang, func() *LightIndex {
		if r.provider == nil {
			return nil
		}
		raw, ok := r.provider.LightEntries(lang)
		if !ok {
			return nil
		}
		return NewLightIndex(lang, raw)
	})
}

// BuildIndex builds the full index of lang from raw, unless one is cached
// already, in which case raw is ignored and the cached index returned.
func (r *Registry) BuildIndex(lang Language, raw []RawEntry) *Index {
	return loadOrBuild(r, &r.full, "index/", lang, func() *Index {
		return NewIndex(lang, raw)
	})
}

// BuildLightIndex is BuildIndex for light indexes.
func (r *Registry) BuildLightIndex(lang Language, raw []RawLightEntry) *LightIndex {
	return loadOrBuild(r, &r.light, "light/", lang, func() *LightIndex {
		return NewLightIndex(lang, raw)
	})
}

func loadOrBuild[T any](r *Registry, m *sync.Map, prefix string, lang Language, build func() *T) *T {
	if v, ok := m.Load(lang); ok {
		return v.(*T)
	}
	v, _, _ := r.group.Do(prefix+string(lang), func() (any, error) {
		if v, ok := m.Load(lang); ok {
			return v, nil
		}
		t := build()
		if t == nil {
			return (*T)(nil), nil
		}
		m.Store(lang, t)
		return t, nil
	})
	t, _ := v.(*T)
	return t
}

// Tokenize splits text into tokens, see Segment. Chinese and Japanese use
// the dictionary of lang if there is one.
func (r *Registry) Tokenize(lang Language, text string) []string {
	var info *DictInfo
	if lang.IsScriptContinua() {
		info = r.Index(lang).Info()
	}
	return Segment(lang, text, info)
}

// Resolve finds the best dictionary entry for token.
func (r *Registry) Resolve(lang Language, token string) (Entry, bool) {
	idx := r.Index(lang)
	if idx == nil {
		return Entry{}, false
	}
	if r.cache == nil {
		return idx.Resolve(token)
	}
	key := string(lang) + "\x00" + token
	if c, ok := r.cache.Get(key); ok {
		return c.entry, c.ok
	}
	e, ok := idx.Resolve(token)
	r.cache.Add(key, cachedResolve{entry: e, ok: ok})
	return e, ok
}

// Matches lists all scored hits for token, best first.
func (r *Registry) Matches(lang Language, token string) []Match {
	return r.Index(lang).Matches(token)
}

// HasTierAtOrAbove answers the threshold question from the light index of
// lang; without one the answer is false.
func (r *Registry) HasTierAtOrAbove(lang Language, token string, minRank int) bool {
	return r.LightIndex(lang).HasTierAtOrAbove(token, minRank)
}

// Complete lists entries of lang starting with prefix.
func (r *Registry) Complete(lang Language, prefix string, limit int) []Entry {
	return r.Index(lang).Complete(prefix, limit)
}
