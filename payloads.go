package cefrlex

import (
	"slices"
	"sync"
)

// Provider supplies the raw dictionary payloads of a language. A Registry asks
// its provider at most once per language and index kind, when the index is
// first needed. Providers must not block; fetch payloads up front and serve
// them from memory.
type Provider interface {
	Entries(lang Language) ([]RawEntry, bool)
	LightEntries(lang Language) ([]RawLightEntry, bool)
}

// Payloads is an in-memory Provider, usually filled at startup.
type Payloads struct {
	mu      sync.RWMutex
	entries map[Language][]RawEntry
	light   map[Language][]RawLightEntry
}

// NewPayloads creates an empty payload store.
func NewPayloads() *Payloads {
	return &Payloads{
		entries: make(map[Language][]RawEntry),
		light:   make(map[Language][]RawLightEntry),
	}
}

// Add appends full dictionary records for lang.
func (p *Payloads) Add(lang Language, entries []RawEntry) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.entries[lang] = append(p.entries[lang], entries...)
}

// AddLight appends light records for lang.
func (p *Payloads) AddLight(lang Language, entries []RawLightEntry) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.light[lang] = append(p.light[lang], entries...)
}

// Entries implements Provider.
func (p *Payloads) Entries(lang Language) ([]RawEntry, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	e, ok := p.entries[lang]
	return e, ok
}

// LightEntries implements Provider.
func (p *Payloads) LightEntries(lang Language) ([]RawLightEntry, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	e, ok := p.light[lang]
	return e, ok
}

// Languages lists every language with at least one payload, sorted.
func (p *Payloads) Languages() []Language {
	p.mu.RLock()
	defer p.mu.RUnlock()
	var langs []Language
	for l := range p.entries {
		langs = append(langs, l)
	}
	for l := range p.light {
		if _, dup := p.entries[l]; !dup {
			langs = append(langs, l)
		}
	}
	slices.Sort(langs)
	return langs
}
