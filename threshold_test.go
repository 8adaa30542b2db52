package cefrlex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasTierAtOrAbove(t *testing.T) {
	t.Parallel()

	light := NewLightIndex(Spanish, []RawLightEntry{
		{Form: "perro", CEFR: []string{"A1"}},
		{Form: "café", CEFR: []string{"B2"}},
		{Form: "correr", CEFR: []string{"A1", "C1"}},
		{Form: "nada", CEFR: []string{"Z9"}},
		{Form: "", CEFR: []string{"A1"}},
	})
	assert.Equal(t, 3, light.Len())
	assert.Equal(t, 2, light.Skipped())

	tests := []struct {
		token string
		min   int
		want  bool
	}{
		{"Perro", 2, false},
		{"Perro", 1, true},
		{"cafe", 4, true},
		{"CAFÉ", 5, false},
		{"correr", 5, true},
		{"correr", 6, false},
		{"correr", 0, true},
		{"nada", 1, false},
		{"gato", 1, false},
		{"", 1, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, light.HasTierAtOrAbove(tt.token, tt.min), "%s >= %d", tt.token, tt.min)
	}
}

func TestHasTierAtOrAboveMonotonic(t *testing.T) {
	t.Parallel()

	light := NewLightIndex(French, []RawLightEntry{
		{Form: "étrange", CEFR: []string{"B2"}},
		{Form: "chat", CEFR: []string{"A1", "B1"}},
	})
	for _, tok := range []string{"étrange", "etrange", "chat", "chien"} {
		for k := 1; k < MaxRank; k++ {
			if light.HasTierAtOrAbove(tok, k+1) {
				assert.True(t, light.HasTierAtOrAbove(tok, k), "%s: %d", tok, k)
			}
		}
	}
}

func TestHasTierAtOrAboveIgnoresVariants(t *testing.T) {
	t.Parallel()

	light := NewLightIndex(French, []RawLightEntry{{Form: "ami", CEFR: []string{"A1"}}})
	assert.False(t, light.HasTierAtOrAbove("l'ami", 1))

	var none *LightIndex
	assert.False(t, none.HasTierAtOrAbove("ami", 1))
}

func TestLightIndexTiers(t *testing.T) {
	t.Parallel()

	light := NewLightIndex(German, []RawLightEntry{
		{Form: "Bank", CEFR: []string{"A2"}},
		{Form: "bank", CEFR: []string{"B1", "b1"}},
		{Form: "Mädchen", Norm: "maedchen", CEFR: []string{"A1"}},
	})
	assert.Equal(t, []Tier{A2, B1}, light.Tiers("bank"))
	assert.Equal(t, []Tier{A1}, light.Tiers("maedchen"))
	assert.True(t, light.HasTierAtOrAbove("Mädchen", 1))
	assert.Empty(t, light.Tiers("haus"))
}

func TestHasTierAtOrAboveKeepsVoicedKana(t *testing.T) {
	t.Parallel()

	light := NewLightIndex(Japanese, []RawLightEntry{{Form: "ぎん", CEFR: []string{"C1"}}})
	assert.True(t, light.HasTierAtOrAbove("ぎん", 5))
	assert.False(t, light.HasTierAtOrAbove("きん", 1))
}
