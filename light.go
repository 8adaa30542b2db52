package cefrlex

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/cefrlex/dat"
)

// LightReader yields light records one-by-one.
// It should return io.EOF when the stream is exhausted.
type LightReader interface {
	Next() (RawLightEntry, error)
}

// LightIndex maps forms and norms to the set of tiers they occur with.
// It is immutable once built; lookups allocate nothing.
type LightIndex struct {
	lang    Language
	byForm  *dat.DAT
	byNorm  *dat.DAT
	entries int
	skipped int
}

// NewLightIndex builds a light index from in-memory records.
func NewLightIndex(lang Language, raw []RawLightEntry) *LightIndex {
	idx, _ := LoadLightIndex(lang, &sliceLightReader{entries: raw})
	return idx
}

// LoadLightIndex builds a light index from a streaming source. Records
// without a form or without any valid tier are skipped.
func LoadLightIndex(lang Language, reader LightReader) (*LightIndex, error) {
	forms, norms := dat.NewBuilder(), dat.NewBuilder()
	idx := &LightIndex{lang: lang}
	for {
		raw, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("load light index %q: %w", lang, err)
		}
		form := strings.TrimSpace(raw.Form)
		var mask tierMask
		for _, label := range raw.CEFR {
			if tier, err := ParseTier(label); err == nil {
				mask = mask.with(tier)
			}
		}
		if form == "" || mask == 0 {
			idx.skipped++
			continue
		}
		normalized := StripDiacritics(NormalizePunctuation(form))
		if n := strings.TrimSpace(raw.Norm); n != "" {
			normalized = strings.ToLower(n)
		}
		forms.Add(strings.ToLower(NormalizePunctuation(form)), uint32(mask))
		norms.Add(normalized, uint32(mask))
		idx.entries++
	}
	idx.byForm, idx.byNorm = forms.Freeze(), norms.Freeze()
	tracer().Infof("light index %q: entries=%d skipped=%d forms=%d norms=%d",
		lang, idx.entries, idx.skipped, idx.byForm.Len(), idx.byNorm.Len())
	return idx, nil
}

// Language returns the language the index was built for.
func (x *LightIndex) Language() Language { return x.lang }

// Len is the number of records indexed.
func (x *LightIndex) Len() int { return x.entries }

// Skipped is the number of records dropped while building.
func (x *LightIndex) Skipped() int { return x.skipped }

// Tiers lists the tiers recorded for key under its form or its norm.
func (x *LightIndex) Tiers(key string) []Tier {
	return x.mask(key).tiers()
}

func (x *LightIndex) mask(key string) tierMask {
	var m uint32
	if bits, ok := x.byForm.Lookup(key); ok {
		m |= bits
	}
	if bits, ok := x.byNorm.Lookup(key); ok {
		m |= bits
	}
	return tierMask(m)
}

type sliceLightReader struct {
	entries []RawLightEntry
	index   int
}

func (r *sliceLightReader) Next() (RawLightEntry, error) {
	if r.index >= len(r.entries) {
		return RawLightEntry{}, io.EOF
	}
	entry := r.entries[r.index]
	r.index++
	return entry, nil
}
