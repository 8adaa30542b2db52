package cefrlex

import (
	"strings"
)

// maxExtraCandidates bounds the language-specific variants of one token.
const maxExtraCandidates = 5

// Elided articles, pronouns and prepositions; Portuguese object pronouns.
var (
	frenchClitics = []string{
		"jusqu'", "lorsqu'", "puisqu'", "quoiqu'", "qu'",
		"c'", "d'", "j'", "l'", "m'", "n'", "s'", "t'",
	}
	italianClitics = []string{
		"dell'", "dall'", "nell'", "sull'", "coll'", "all'",
		"quest'", "quell'", "bell'", "sant'", "tutt'",
		"un'", "gl'", "po'",
		"l'", "d'", "c'", "s'", "m'", "t'", "v'",
	}
	portugueseEnclitics = []string{
		"-lhes", "-lhe", "-los", "-las", "-nos", "-vos",
		"-me", "-te", "-se", "-lo", "-la",
	}
)

// candidateSet collects lookup keys in insertion order without duplicates.
type candidateSet struct {
	keys   []string
	extras int
}

func (c *candidateSet) add(key string) {
	if key == "" {
		return
	}
	for _, k := range c.keys {
		if k == key {
			return
		}
	}
	c.keys = append(c.keys, key)
}

// extra adds a language-specific variant while the budget lasts.
func (c *candidateSet) extra(key string) {
	if c.extras >= maxExtraCandidates {
		return
	}
	n := len(c.keys)
	c.add(key)
	if len(c.keys) > n {
		c.extras++
	}
}

// Candidates returns the lookup keys tried for token: the raw lowercase token,
// its diacritic-stripped form, and up to five language-specific variants
// (elided clitics, hyphen segments, enclitics, ASCII umlauts). The result is
// ordered and free of duplicates; it is empty only for blank tokens.
func Candidates(lang Language, token string) []string {
	raw := lowerToken(token)
	if raw == "" {
		return nil
	}
	c := &candidateSet{keys: make([]string, 0, 4)}
	c.add(raw)
	c.add(StripDiacritics(raw))
	switch lang {
	case French:
		c.extra(stripClitic(raw, frenchClitics))
		hyphenSegments(c, raw)
	case Italian:
		c.extra(stripClitic(raw, italianClitics))
		hyphenSegments(c, raw)
	case Portuguese:
		hyphenSegments(c, raw)
		c.extra(stripEnclitic(raw))
	case German:
		c.extra(FoldUmlautsASCII(raw))
	}
	return c.keys
}

// stripClitic returns the remainder after the first leading clitic of
// token, or "" if there is none.
func stripClitic(token string, clitics []string) string {
	for _, cl := range clitics {
		if rest, ok := strings.CutPrefix(token, cl); ok {
			return rest
		}
	}
	return ""
}

func stripEnclitic(token string) string {
	for _, suffix := range portugueseEnclitics {
		if base, ok := strings.CutSuffix(token, suffix); ok {
			return base
		}
	}
	return ""
}

func hyphenSegments(c *candidateSet, token string) {
	if !strings.Contains(token, "-") {
		return
	}
	for _, seg := range strings.Split(token, "-") {
		c.extra(seg)
	}
}
