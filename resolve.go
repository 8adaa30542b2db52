package cefrlex

// Resolve finds the best entry for token. Every candidate of the token is
// looked up by form and by norm; among all hits, exact matches beat
// diacritic-insensitive matches, which beat everything else. Within a group
// the entry with more content and the lower tier wins.
func (x *Index) Resolve(token string) (Entry, bool) {
	hits, raw, norm := x.probe(token)
	e, ok := best(hits, raw, norm)
	if !ok {
		return Entry{}, false
	}
	return *e, true
}

// Matches returns every hit for token, best first.
func (x *Index) Matches(token string) []Match {
	hits, raw, norm := x.probe(token)
	if len(hits) == 0 {
		return nil
	}
	return ranked(hits, raw, norm)
}

func (x *Index) probe(token string) (hits []*Entry, raw, norm string) {
	if x == nil {
		return nil, "", ""
	}
	cands := Candidates(x.lang, token)
	if len(cands) == 0 {
		return nil, "", ""
	}
	for _, c := range cands {
		hits = append(hits, x.byForm[c]...)
		hits = append(hits, x.byNorm[c]...)
	}
	raw = cands[0]
	return dedupe(hits), raw, StripDiacritics(raw)
}
