package cefrlex

import (
	"fmt"
	"io"

	"github.com/derekparker/trie"
)

// EntryReader yields raw dictionary records one-by-one.
// It should return io.EOF when the stream is exhausted.
type EntryReader interface {
	Next() (RawEntry, error)
}

// Index is the full dictionary of one language. An Index is immutable once
// built and safe for concurrent use without locking.
type Index struct {
	lang    Language
	byForm  map[string][]*Entry // lowercase form -> entries
	byNorm  map[string][]*Entry // normalized form -> entries
	info    *DictInfo
	prefix  *trie.Trie
	entries int
	skipped int
}

// NewIndex builds an index from in-memory records. Malformed records are
// skipped.
func NewIndex(lang Language, raw []RawEntry) *Index {
	idx, _ := LoadIndex(lang, &sliceEntryReader{entries: raw})
	return idx
}

// LoadIndex builds an index from a streaming source. Malformed records are
// skipped; only a failing reader makes loading fail.
func LoadIndex(lang Language, reader EntryReader) (*Index, error) {
	idx := &Index{
		lang:   lang,
		byForm: make(map[string][]*Entry),
		byNorm: make(map[string][]*Entry),
	}
	for {
		raw, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("load index %q: %w", lang, err)
		}
		e, ok := newEntry(raw)
		if !ok {
			idx.skipped++
			continue
		}
		idx.byForm[e.key] = append(idx.byForm[e.key], e)
		idx.byNorm[e.Norm] = append(idx.byNorm[e.Norm], e)
		idx.entries++
	}
	info := newDictInfoBuilder()
	idx.prefix = trie.New()
	for key := range idx.byForm {
		info.add(key)
		idx.prefix.Add(key, nil)
	}
	for key := range idx.byNorm {
		info.add(key)
		if _, dup := idx.byForm[key]; !dup {
			idx.prefix.Add(key, nil)
		}
	}
	idx.info = info.freeze()
	tracer().Infof("index %q: entries=%d skipped=%d keys=%d maxlen=%d",
		lang, idx.entries, idx.skipped, idx.info.Len(), idx.info.MaxLen())
	return idx, nil
}

// Language returns the language the index was built for.
func (x *Index) Language() Language { return x.lang }

// Len is the number of entries.
func (x *Index) Len() int { return x.entries }

// Skipped is the number of malformed records dropped while building.
func (x *Index) Skipped() int { return x.skipped }

// Info returns the key set for segmentation.
func (x *Index) Info() *DictInfo {
	if x == nil {
		return nil
	}
	return x.info
}

// ByForm returns the entries whose lowercase form is key, in payload order.
func (x *Index) ByForm(key string) []*Entry { return x.byForm[key] }

// ByNorm returns the entries whose normalized form is key, in payload order.
func (x *Index) ByNorm(key string) []*Entry { return x.byNorm[key] }

type sliceEntryReader struct {
	entries []RawEntry
	index   int
}

func (r *sliceEntryReader) Next() (RawEntry, error) {
	if r.index >= len(r.entries) {
		return RawEntry{}, io.EOF
	}
	entry := r.entries[r.index]
	r.index++
	return entry, nil
}
