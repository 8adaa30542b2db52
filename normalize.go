package cefrlex

import (
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var punctuationReplacer = strings.NewReplacer(
	"‘", "'", // left single quotation mark
	"’", "'", // right single quotation mark
	"‛", "'",
	"ʼ", "'", // modifier letter apostrophe
	"′", "'", // prime
	"＇", "'", // fullwidth apostrophe
	"`", "'",
	"´", "'", // acute accent
	"‐", "-",
	"‑", "-", // non-breaking hyphen
	"‒", "-",
	"–", "-", // en dash
	"—", "-", // em dash
	"―", "-",
	"−", "-", // minus sign
	"﹘", "-",
	"﹣", "-",
	"－", "-",
	"¿", "",
	"¡", "",
)

// NormalizePunctuation unifies apostrophe and hyphen variants to ASCII ' and -,
// and removes inverted question and exclamation marks.
func NormalizePunctuation(s string) string {
	return punctuationReplacer.Replace(s)
}

// combiningDiacritics is the Combining Diacritical Marks block. Other
// nonspacing marks, such as kana voicing marks, are kept.
var combiningDiacritics = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0x0300, Hi: 0x036f, Stride: 1}},
}

// transformers carry state, a chain is used by one goroutine at a time
var stripChains = sync.Pool{
	New: func() any {
		return transform.Chain(norm.NFD, runes.Remove(runes.In(combiningDiacritics)), norm.NFC)
	},
}

// StripDiacritics lowercases s and removes combining diacritical marks
// (U+0300–U+036F) after canonical decomposition; ß becomes ss.
// StripDiacritics is idempotent. Kana voicing marks are not diacritics:
// "が" and "か" stay distinct.
func StripDiacritics(s string) string {
	if isASCII(s) {
		return strings.ToLower(s)
	}
	t := stripChains.Get().(transform.Transformer)
	out, _, err := transform.String(t, strings.ToLower(s))
	stripChains.Put(t)
	if err != nil {
		tracer().Debugf("strip diacritics of %q: %v", s, err)
		out = strings.ToLower(s)
	}
	return strings.ReplaceAll(out, "ß", "ss")
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

var umlautReplacer = strings.NewReplacer("ä", "ae", "ö", "oe", "ü", "ue", "ß", "ss")

// FoldUmlautsASCII lowercases s and spells German umlauts and ß in ASCII.
func FoldUmlautsASCII(s string) string {
	return umlautReplacer.Replace(strings.ToLower(s))
}

// lowerToken is the raw lowercase form every lookup starts from.
func lowerToken(token string) string {
	return strings.ToLower(NormalizePunctuation(strings.TrimSpace(token)))
}
