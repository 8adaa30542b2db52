package cefrlex

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingProvider struct {
	*Payloads
	full, light atomic.Int32
}

func (p *countingProvider) Entries(lang Language) ([]RawEntry, bool) {
	p.full.Add(1)
	return p.Payloads.Entries(lang)
}

func (p *countingProvider) LightEntries(lang Language) ([]RawLightEntry, bool) {
	p.light.Add(1)
	return p.Payloads.LightEntries(lang)
}

func newCountingProvider() *countingProvider {
	p := &countingProvider{Payloads: NewPayloads()}
	p.Add(French, []RawEntry{{Form: "ami", CEFR: "A1"}, {Form: "étrange", CEFR: "B2"}})
	p.AddLight(French, []RawLightEntry{{Form: "étrange", CEFR: []string{"B2"}}})
	return p
}

func TestRegistryBuildsOncePerLanguage(t *testing.T) {
	p := newCountingProvider()
	r := NewRegistry(p)
	var wg sync.WaitGroup
	for range 64 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			e, ok := r.Resolve(French, "l'ami")
			assert.True(t, ok)
			assert.Equal(t, "ami", e.Form)
			assert.True(t, r.HasTierAtOrAbove(French, "etrange", 4))
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), p.full.Load())
	assert.Equal(t, int32(1), p.light.Load())
	assert.Same(t, r.Index(French), r.Index(French))
}

func TestRegistryAbsentLanguage(t *testing.T) {
	t.Parallel()

	r := NewRegistry(newCountingProvider())
	_, ok := r.Resolve("xx", "word")
	assert.False(t, ok)
	assert.False(t, r.HasTierAtOrAbove("xx", "word", 1))
	assert.Equal(t, []string{"a", "b"}, r.Tokenize("xx", "a b"))
	assert.Nil(t, r.Index("xx"))
	assert.Nil(t, r.Complete("xx", "w", 0))
	assert.Nil(t, r.Matches("xx", "word"))

	// without a Chinese dictionary, Han characters are split one by one
	assert.Equal(t, []string{"中", "国"}, r.Tokenize(Chinese, "中国"))

	bare := NewRegistry(nil)
	_, ok = bare.Resolve(French, "ami")
	assert.False(t, ok)
}

func TestRegistryBuildIndexCaches(t *testing.T) {
	t.Parallel()

	r := NewRegistry(nil)
	first := r.BuildIndex(Italian, []RawEntry{{Form: "anno", CEFR: "A1"}})
	second := r.BuildIndex(Italian, []RawEntry{{Form: "casa", CEFR: "A1"}})
	require.NotNil(t, first)
	assert.Same(t, first, second)
	_, ok := r.Resolve(Italian, "casa")
	assert.False(t, ok)

	light := r.BuildLightIndex(Italian, []RawLightEntry{{Form: "anno", CEFR: []string{"A1"}}})
	assert.Same(t, light, r.LightIndex(Italian))
}

func TestRegistryResolveCache(t *testing.T) {
	t.Parallel()

	r := NewRegistry(newCountingProvider(), WithResolveCache(4))
	require.NotNil(t, r.cache)
	for range 3 {
		e, ok := r.Resolve(French, "Étrange")
		require.True(t, ok)
		assert.Equal(t, B2, e.Tier)
		_, ok = r.Resolve(French, "inconnu")
		assert.False(t, ok)
	}
	assert.Equal(t, 2, r.cache.Len())

	invalid := NewRegistry(nil, WithResolveCache(0))
	assert.Nil(t, invalid.cache)
}

func TestRegistryTokenizeUsesDictionary(t *testing.T) {
	t.Parallel()

	p := NewPayloads()
	p.Add(Japanese, []RawEntry{{Form: "食べ物", CEFR: "A2"}, {Form: "食べる", CEFR: "A1"}})
	r := NewRegistry(p)
	assert.Equal(t, []string{"食べ物", "は"}, r.Tokenize(Japanese, "食べ物は"))
}

func TestAnnotate(t *testing.T) {
	t.Parallel()

	p := NewPayloads()
	p.AddLight(English, []RawLightEntry{
		{Form: "ubiquitous", CEFR: []string{"C1"}},
		{Form: "thing", CEFR: []string{"A1"}},
	})
	r := NewRegistry(p)
	got := r.Annotate(English, "An ubiquitous thing", int(B2))
	assert.Equal(t, []Annotation{
		{Token: "An"},
		{Token: "ubiquitous", AtOrAbove: true},
		{Token: "thing"},
	}, got)
}

func TestPayloadsLanguages(t *testing.T) {
	t.Parallel()

	p := NewPayloads()
	p.AddLight(German, nil)
	p.Add(French, nil)
	p.Add(Chinese, nil)
	assert.Equal(t, []Language{German, French, Chinese}, p.Languages())
}

func TestDefaultRegistry(t *testing.T) {
	Register(Korean, []RawEntry{{Form: "사람", CEFR: "A1"}})
	RegisterLight(Korean, []RawLightEntry{{Form: "사람", CEFR: []string{"A1"}}})
	e, ok := Resolve(Korean, "사람")
	require.True(t, ok)
	assert.Equal(t, A1, e.Tier)
	assert.True(t, HasTierAtOrAbove(Korean, "사람", 1))
	assert.Equal(t, []string{"사람", "있다"}, Tokenize(Korean, "사람 있다"))
	assert.Len(t, Complete(Korean, "사", 0), 1)
	assert.Len(t, Annotate(Korean, "사람", 2), 1)
	assert.Same(t, Default().Index(Korean), Default().Index(Korean))
}
