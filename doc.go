/*
Package cefrlex resolves words in running text against CEFR-tagged (A1–C2)
proficiency dictionaries.

Text is tokenized per language: space-delimited languages are split on
whitespace, Chinese and Japanese are segmented by a greedy dictionary-driven
longest match. A token can then be resolved to the single best dictionary
entry, tolerating missing diacritics, elided clitics (French, Italian),
hyphenated compounds and enclitics (Portuguese) and ASCII umlaut spellings
(German). For real-time highlighting there is a cheaper threshold check
answering "is this word at tier X or above?" without building entries.

Dictionaries arrive as raw payloads (see package payload and the source
packages), one per language. Indexes are built lazily on first use, exactly
once per language, and stay cached and read-only for the lifetime of the
process:

	payloads := cefrlex.NewPayloads()
	payloads.Add("fr", entries)
	payloads.AddLight("fr", light)
	reg := cefrlex.NewRegistry(payloads)

	for _, tok := range reg.Tokenize("fr", "l’ami est là") {
	    if e, ok := reg.Resolve("fr", tok); ok {
	        fmt.Println(tok, e.Form, e.Tier)
	    }
	}

The package-level functions operate on a process-wide default registry.
*/
package cefrlex

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'cefrlex'
func tracer() tracing.Trace {
	return tracing.Select("cefrlex")
}
