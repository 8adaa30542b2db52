package cefrlex

import (
	"errors"
	"fmt"
	"unicode"

	"golang.org/x/text/language"
)

// ErrUnknownLanguage is returned by ParseLanguage for codes it cannot map.
var ErrUnknownLanguage = errors.New("unknown language")

// Language is a lowercase ISO 639-1 code such as "fr" or "ja".
type Language string

// Languages with dedicated handling. Other codes are accepted by every
// operation and treated as space-delimited without candidate extensions.
const (
	English    Language = "en"
	Spanish    Language = "es"
	French     Language = "fr"
	Italian    Language = "it"
	Portuguese Language = "pt"
	German     Language = "de"
	Russian    Language = "ru"
	Korean     Language = "ko"
	Chinese    Language = "zh"
	Japanese   Language = "ja"
)

var knownLanguages = map[Language]bool{
	English: true, Spanish: true, French: true, Italian: true, Portuguese: true,
	German: true, Russian: true, Korean: true, Chinese: true, Japanese: true,
}

// ParseLanguage maps a BCP 47 tag ("pt-BR", "zh-Hant", "FR") to the
// language it names. Only known languages are accepted.
func ParseLanguage(code string) (Language, error) {
	tag, err := language.Parse(code)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrUnknownLanguage, code, err)
	}
	base, _ := tag.Base()
	lang := Language(base.String())
	if !knownLanguages[lang] {
		return "", fmt.Errorf("%w: %q", ErrUnknownLanguage, code)
	}
	return lang, nil
}

// Known reports whether l gets dedicated handling.
func (l Language) Known() bool { return knownLanguages[l] }

// IsScriptContinua is true for languages written without spaces between words.
func (l Language) IsScriptContinua() bool {
	return l == Chinese || l == Japanese
}

// inTargetScript reports whether r belongs to the scripts segmented by
// dictionary for language l.
func (l Language) inTargetScript(r rune) bool {
	switch l {
	case Chinese:
		return unicode.Is(unicode.Han, r)
	case Japanese:
		return unicode.Is(unicode.Han, r) || unicode.Is(unicode.Hiragana, r) ||
			unicode.Is(unicode.Katakana, r) || r == 'ー'
	}
	return false
}
