package cefrlex

import "strings"

// Annotation is a token flagged for difficulty.
type Annotation struct {
	Token     string `json:"token"`
	AtOrAbove bool   `json:"at_or_above"`
}

// Annotate tokenizes text and flags every token recorded at tier rank
// minRank or above in the light index of lang. Whitespace and punctuation
// tokens are never flagged.
func (r *Registry) Annotate(lang Language, text string, minRank int) []Annotation {
	tokens := r.Tokenize(lang, text)
	light := r.LightIndex(lang)
	out := make([]Annotation, len(tokens))
	for i, tok := range tokens {
		out[i].Token = tok
		if word := strings.TrimSpace(tok); word != "" {
			out[i].AtOrAbove = light.HasTierAtOrAbove(word, minRank)
		}
	}
	return out
}
