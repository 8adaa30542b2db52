package cefrlex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveElidedClitic(t *testing.T) {
	t.Parallel()

	idx := NewIndex(French, []RawEntry{{Form: "ami", CEFR: "A1", Definitions: []string{"friend"}}})
	e, ok := idx.Resolve("l’ami")
	require.True(t, ok)
	assert.Equal(t, "ami", e.Form)
	assert.Equal(t, A1, e.Tier)
}

func TestResolveUmlautSpelling(t *testing.T) {
	t.Parallel()

	idx := NewIndex(German, []RawEntry{{Form: "ueber", CEFR: "B1"}})
	e, ok := idx.Resolve("über")
	require.True(t, ok)
	assert.Equal(t, "ueber", e.Form)
	assert.Equal(t, B1, e.Tier)
}

func TestResolveExactBeatsRicherNormalized(t *testing.T) {
	t.Parallel()

	idx := NewIndex(Spanish, []RawEntry{
		{Form: "rún", CEFR: "C2", Definitions: []string{"a", "b", "c"}, Examples: []string{"x", "y"}},
		{Form: "run", CEFR: "A1"},
	})
	e, ok := idx.Resolve("run")
	require.True(t, ok)
	assert.Equal(t, "run", e.Form)
	assert.Equal(t, A1, e.Tier)

	e, ok = idx.Resolve("rún")
	require.True(t, ok)
	assert.Equal(t, "rún", e.Form)
}

func TestResolveNormalizedBeatsLoose(t *testing.T) {
	t.Parallel()

	idx := NewIndex(French, []RawEntry{
		{Form: "école", CEFR: "A1", Definitions: []string{"school", "schooling"}},
		{Form: "l'école", CEFR: "B1"},
	})
	e, ok := idx.Resolve("l'ecole")
	require.True(t, ok)
	assert.Equal(t, "l'école", e.Form)
}

func TestResolveDedupKeepsRicher(t *testing.T) {
	t.Parallel()

	idx := NewIndex(Portuguese, []RawEntry{
		{Form: "casa", CEFR: "A1"},
		{Form: "casa", CEFR: "A1", Definitions: []string{"house"}},
	})
	e, ok := idx.Resolve("casa")
	require.True(t, ok)
	assert.Equal(t, []string{"house"}, e.Definitions)
	assert.Len(t, idx.Matches("casa"), 1)
}

func TestResolvePrefersLowerTier(t *testing.T) {
	t.Parallel()

	idx := NewIndex(English, []RawEntry{
		{Form: "bank", CEFR: "B1"},
		{Form: "bank", CEFR: "A2"},
		{Form: "bank"},
	})
	e, ok := idx.Resolve("Bank")
	require.True(t, ok)
	assert.Equal(t, A2, e.Tier)
}

func TestResolveContentOutweighsTier(t *testing.T) {
	t.Parallel()

	idx := NewIndex(Chinese, []RawEntry{
		{Form: "行", CEFR: "A1"},
		{Form: "行", CEFR: "B2", Romanization: "xíng", AltDefinitions: []string{"to walk"}},
	})
	e, ok := idx.Resolve("行")
	require.True(t, ok)
	assert.Equal(t, B2, e.Tier)
	assert.Equal(t, "xíng", e.Romanization)
}

func TestResolvePortuguese(t *testing.T) {
	t.Parallel()

	idx := NewIndex(Portuguese, []RawEntry{
		{Form: "guarda-chuva", CEFR: "B1"},
		{Form: "chuva", CEFR: "A2"},
		{Form: "disse", CEFR: "A2"},
	})
	e, ok := idx.Resolve("guarda-chuva")
	require.True(t, ok)
	assert.Equal(t, "guarda-chuva", e.Form)

	e, ok = idx.Resolve("disse-lhe")
	require.True(t, ok)
	assert.Equal(t, "disse", e.Form)
}

func TestResolveNotFound(t *testing.T) {
	t.Parallel()

	idx := NewIndex(French, []RawEntry{{Form: "ami", CEFR: "A1"}})
	for _, tok := range []string{"zzz", "", "  ", "amis"} {
		_, ok := idx.Resolve(tok)
		assert.False(t, ok, tok)
	}
	var none *Index
	_, ok := none.Resolve("ami")
	assert.False(t, ok)
	assert.Nil(t, none.Matches("ami"))
}

func TestResolveDeterministic(t *testing.T) {
	t.Parallel()

	idx := NewIndex(Italian, []RawEntry{
		{Form: "anno", CEFR: "A1"},
		{Form: "anno", CEFR: "A2"},
		{Form: "dell'anno", CEFR: "B1"},
	})
	first, ok := idx.Resolve("dell’anno")
	require.True(t, ok)
	for range 20 {
		again, _ := idx.Resolve("dell’anno")
		assert.Equal(t, first, again)
	}
	assert.Equal(t, "dell'anno", first.Form)
}

func TestMatchesOrder(t *testing.T) {
	t.Parallel()

	idx := NewIndex(French, []RawEntry{
		{Form: "ami", CEFR: "A1"},
		{Form: "l'ami", CEFR: "C1"},
		{Form: "l'amí", CEFR: "B2"},
	})
	matches := idx.Matches("l'ami")
	require.Len(t, matches, 3)
	assert.Equal(t, MatchExact, matches[0].Kind)
	assert.Equal(t, "l'ami", matches[0].Entry.Form)
	assert.Equal(t, MatchNormalized, matches[1].Kind)
	assert.Equal(t, MatchLoose, matches[2].Kind)
	assert.Equal(t, "ami", matches[2].Entry.Form)
}

func TestScore(t *testing.T) {
	t.Parallel()

	e := &Entry{Definitions: []string{"a", "b"}, AltDefinitions: []string{"c"}, Examples: []string{"d"}, Romanization: "r", Tier: B1}
	assert.Equal(t, 1000+24+8+3+5+7, score(e, MatchExact))
	assert.Equal(t, 600+24+8+3+5+7, score(e, MatchNormalized))
	assert.Equal(t, 24+8+3+5+7, score(e, MatchLoose))
	assert.Equal(t, 0, score(&Entry{}, MatchLoose))
	assert.Equal(t, 20+8+2+1+2, (&Entry{Definitions: []string{"a", "b"}, AltDefinitions: []string{"c"},
		Examples: []string{"d"}, Inflections: []string{"e"}, Romanization: "r"}).richness())
}

func TestResolveKeepsVoicedKanaApart(t *testing.T) {
	t.Parallel()

	idx := NewIndex(Japanese, []RawEntry{{Form: "がっこう", CEFR: "A1"}})
	_, ok := idx.Resolve("かっこう")
	assert.False(t, ok)

	e, ok := idx.Resolve("がっこう")
	require.True(t, ok)
	assert.Equal(t, "がっこう", e.Form)
}
