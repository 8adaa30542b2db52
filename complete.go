package cefrlex

import (
	"sort"
)

// Complete lists entries whose form or norm starts with prefix, easiest tier
// first, then alphabetically. A limit <= 0 returns every match.
func (x *Index) Complete(prefix string, limit int) []Entry {
	if x == nil || x.prefix == nil {
		return nil
	}
	p := lowerToken(prefix)
	if p == "" {
		return nil
	}
	keys := x.prefix.PrefixSearch(p)
	if np := StripDiacritics(p); np != p {
		keys = append(keys, x.prefix.PrefixSearch(np)...)
	}
	sort.Strings(keys)
	seen := make(map[*Entry]bool)
	var hits []*Entry
	for _, k := range keys {
		for _, bucket := range [][]*Entry{x.byForm[k], x.byNorm[k]} {
			for _, e := range bucket {
				if !seen[e] {
					seen[e] = true
					hits = append(hits, e)
				}
			}
		}
	}
	sort.SliceStable(hits, func(i, j int) bool {
		ri, rj := scoreRank(hits[i].Tier), scoreRank(hits[j].Tier)
		if ri != rj {
			return ri < rj
		}
		return hits[i].key < hits[j].key
	})
	if limit > 0 && len(hits) > limit {
		hits = hits[:limit]
	}
	out := make([]Entry, len(hits))
	for i, e := range hits {
		out[i] = *e
	}
	return out
}
