package cefrlex

import (
	"strings"
)

// RawEntry is one dictionary record as it arrives from a payload. Every field
// except Form is optional.
type RawEntry struct {
	Form           string   `json:"form"`
	CEFR           string   `json:"CEFR,omitempty"`
	Norm           string   `json:"norm,omitempty"`
	Tags           []string `json:"tags,omitempty"`
	Definitions    []string `json:"definitions,omitempty"`
	AltDefinitions []string `json:"definitions_alt,omitempty"`
	Examples       []string `json:"examples,omitempty"`
	Romanization   string   `json:"romanization,omitempty"`
	Forms          []string `json:"forms,omitempty"`
}

// RawLightEntry maps a form to one or more tier labels.
type RawLightEntry struct {
	Form string   `json:"form"`
	Norm string   `json:"norm,omitempty"`
	CEFR []string `json:"CEFR"`
}

// Entry is a resolved dictionary entry. Entries are shared between callers
// and must be treated as read-only, including their slices.
type Entry struct {
	Form           string   `json:"form"`
	Norm           string   `json:"norm"`
	Tier           Tier     `json:"tier"`
	Tags           []string `json:"tags,omitempty"`
	Definitions    []string `json:"definitions,omitempty"`
	AltDefinitions []string `json:"definitions_alt,omitempty"`
	Examples       []string `json:"examples,omitempty"`
	Romanization   string   `json:"romanization,omitempty"`
	Inflections    []string `json:"forms,omitempty"`

	key      string // lowercase form, punctuation unified
	stripped string // diacritic-stripped form
}

// newEntry converts a raw record. It fails only for records without a form;
// a missing or unparseable tier leaves the entry with TierUnknown.
func newEntry(raw RawEntry) (*Entry, bool) {
	form := strings.TrimSpace(raw.Form)
	if form == "" {
		return nil, false
	}
	e := &Entry{
		Form:           form,
		Tags:           compact(raw.Tags),
		Definitions:    compact(raw.Definitions),
		AltDefinitions: compact(raw.AltDefinitions),
		Examples:       compact(raw.Examples),
		Romanization:   strings.TrimSpace(raw.Romanization),
		Inflections:    compact(raw.Forms),
		key:            strings.ToLower(NormalizePunctuation(form)),
		stripped:       StripDiacritics(NormalizePunctuation(form)),
	}
	if tier, err := ParseTier(raw.CEFR); err == nil {
		e.Tier = tier
	} else if strings.TrimSpace(raw.CEFR) != "" {
		tracer().Debugf("entry %q: %v", form, err)
	}
	e.Norm = e.stripped
	if n := strings.TrimSpace(raw.Norm); n != "" {
		e.Norm = strings.ToLower(n)
	}
	return e, true
}

// richness prefers entries carrying more content when duplicates collapse.
func (e *Entry) richness() int {
	r := 10*len(e.Definitions) + 8*len(e.AltDefinitions) + 2*len(e.Examples) + len(e.Inflections)
	if e.Romanization != "" {
		r += 2
	}
	return r
}

// compact drops blank strings; the result is nil if nothing remains.
func compact(ss []string) []string {
	var out []string
	for _, s := range ss {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
