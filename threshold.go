package cefrlex

// HasTierAtOrAbove reports whether token is recorded with a tier of rank
// minRank or higher. Only the raw lowercase token and its diacritic-stripped
// form are consulted; clitic and compound handling is left to Resolve.
//
// A minRank below 1 asks for any tier, a minRank above 6 is never satisfied.
func (x *LightIndex) HasTierAtOrAbove(token string, minRank int) bool {
	if x == nil {
		return false
	}
	raw := lowerToken(token)
	if raw == "" {
		return false
	}
	m := x.mask(raw)
	if norm := StripDiacritics(raw); norm != raw {
		m |= x.mask(norm)
	}
	return m.atOrAbove(minRank)
}
