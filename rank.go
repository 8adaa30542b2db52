package cefrlex

import "sort"

// MatchKind says how an entry's form relates to the token it was found for.
type MatchKind uint8

const (
	// MatchExact: the lowercase form equals the raw lowercase token.
	MatchExact MatchKind = iota
	// MatchNormalized: the forms agree once diacritics are stripped.
	MatchNormalized
	// MatchLoose: found through a norm field or a language-specific variant.
	MatchLoose
)

func (k MatchKind) String() string {
	switch k {
	case MatchExact:
		return "exact"
	case MatchNormalized:
		return "normalized"
	case MatchLoose:
		return "loose"
	}
	return "invalid"
}

// Match is a scored dictionary hit.
type Match struct {
	Entry *Entry
	Kind  MatchKind
	Score int
}

func classify(e *Entry, raw, norm string) MatchKind {
	if e.key == raw {
		return MatchExact
	}
	if e.stripped == norm {
		return MatchNormalized
	}
	return MatchLoose
}

// scoreRank treats a missing tier as rank 10, which earns no tier bonus.
func scoreRank(t Tier) int {
	if !t.IsValid() {
		return 10
	}
	return t.Rank()
}

func score(e *Entry, kind MatchKind) int {
	s := 0
	switch kind {
	case MatchExact:
		s = 1000
	case MatchNormalized:
		s = 600
	}
	s += 12*len(e.Definitions) + 8*len(e.AltDefinitions) + 3*len(e.Examples)
	if e.Romanization != "" {
		s += 5
	}
	return s + 10 - min(scoreRank(e.Tier), 10)
}

type formTier struct {
	form string
	tier Tier
}

// dedupe collapses hits sharing form and tier. The richer entry survives at
// the position of the first one; equal richness keeps the first.
func dedupe(hits []*Entry) []*Entry {
	if len(hits) < 2 {
		return hits
	}
	at := make(map[formTier]int, len(hits))
	out := make([]*Entry, 0, len(hits))
	for _, e := range hits {
		k := formTier{e.Form, e.Tier}
		if i, seen := at[k]; seen {
			if e.richness() > out[i].richness() {
				out[i] = e
			}
			continue
		}
		at[k] = len(out)
		out = append(out, e)
	}
	return out
}

// best picks the highest-scoring hit of the first non-empty partition
// (exact, normalized, loose). Ties go to the hit probed first.
func best(hits []*Entry, raw, norm string) (*Entry, bool) {
	var top [3]*Entry
	var topScore [3]int
	for _, e := range hits {
		k := classify(e, raw, norm)
		if s := score(e, k); top[k] == nil || s > topScore[k] {
			top[k], topScore[k] = e, s
		}
	}
	for _, e := range top {
		if e != nil {
			return e, true
		}
	}
	return nil, false
}

// ranked scores all hits, ordered by partition, then score, then probe order.
func ranked(hits []*Entry, raw, norm string) []Match {
	matches := make([]Match, len(hits))
	for i, e := range hits {
		k := classify(e, raw, norm)
		matches[i] = Match{Entry: e, Kind: k, Score: score(e, k)}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Kind != matches[j].Kind {
			return matches[i].Kind < matches[j].Kind
		}
		return matches[i].Score > matches[j].Score
	})
	return matches
}
