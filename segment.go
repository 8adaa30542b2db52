package cefrlex

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Segment splits text into word tokens for language lang.
//
// Space-delimited languages are split on whitespace after punctuation
// normalization. Chinese and Japanese text is scanned left to right: runs of
// the language's own scripts are segmented by greedy longest match against
// info, falling back to single characters; runs of anything else (Latin
// words, digits, punctuation, whitespace) are kept verbatim as one token.
// Without info every target-script character becomes its own token.
func Segment(lang Language, text string, info *DictInfo) []string {
	text = NormalizePunctuation(text)
	if !lang.IsScriptContinua() {
		return strings.Fields(text)
	}
	rs := []rune(text)
	tokens := make([]string, 0, len(rs)/2+1)
	for i := 0; i < len(rs); {
		target := lang.inTargetScript(rs[i])
		j := i + 1
		for j < len(rs) && lang.inTargetScript(rs[j]) == target {
			j++
		}
		if target {
			tokens = segmentRun(tokens, rs[i:j], info)
		} else {
			tokens = append(tokens, string(rs[i:j]))
		}
		i = j
	}
	return tokens
}

// segmentRun appends the longest-match segmentation of run to tokens.
func segmentRun(tokens []string, run []rune, info *DictInfo) []string {
	for i := 0; i < len(run); {
		n := 1
		if info != nil {
			for l := min(info.MaxLen(), len(run)-i); l > 1; l-- {
				sub := string(run[i : i+l])
				if info.Contains(sub) || hasStrippedForm(sub) && info.Contains(StripDiacritics(sub)) {
					n = l
					break
				}
			}
		}
		tokens = append(tokens, string(run[i:i+n]))
		i += n
	}
	return tokens
}

// hasStrippedForm reports whether StripDiacritics may change a run of Han or
// kana. It cannot for NFC-normal text: such runs carry no combining
// diacritics and no case. Compatibility ideographs are not NFC-normal.
func hasStrippedForm(sub string) bool {
	return !norm.NFC.IsNormalString(sub)
}
