package cefrlex

var (
	defaultPayloads = NewPayloads()
	defaultRegistry = NewRegistry(defaultPayloads)
)

// Default returns the process-wide registry used by the package-level
// functions.
func Default() *Registry { return defaultRegistry }

// Register adds full dictionary records for lang to the process-wide
// registry. Records registered after the index of lang was first used are
// ignored.
func Register(lang Language, entries []RawEntry) { defaultPayloads.Add(lang, entries) }

// RegisterLight adds light records for lang to the process-wide registry.
func RegisterLight(lang Language, entries []RawLightEntry) { defaultPayloads.AddLight(lang, entries) }

// Tokenize splits text with the process-wide registry.
func Tokenize(lang Language, text string) []string { return defaultRegistry.Tokenize(lang, text) }

// Resolve finds the best entry for token with the process-wide registry.
func Resolve(lang Language, token string) (Entry, bool) { return defaultRegistry.Resolve(lang, token) }

// HasTierAtOrAbove runs the threshold check with the process-wide registry.
func HasTierAtOrAbove(lang Language, token string, minRank int) bool {
	return defaultRegistry.HasTierAtOrAbove(lang, token, minRank)
}

// Complete runs prefix completion with the process-wide registry.
func Complete(lang Language, prefix string, limit int) []Entry {
	return defaultRegistry.Complete(lang, prefix, limit)
}

// Annotate flags difficult tokens with the process-wide registry.
func Annotate(lang Language, text string, minRank int) []Annotation {
	return defaultRegistry.Annotate(lang, text, minRank)
}
