package cefrlex

import (
	"unicode/utf8"

	"github.com/npillmayer/cefrlex/dat"
)

// MaxLenCeiling bounds the segmentation window.
const MaxLenCeiling = 16

// DictInfo is the set of every form and norm of a dictionary, used by the
// segmenter for membership tests.
type DictInfo struct {
	keys   *dat.DAT
	maxLen int
}

type dictInfoBuilder struct {
	keys   *dat.Builder
	maxLen int
}

func newDictInfoBuilder() *dictInfoBuilder {
	return &dictInfoBuilder{keys: dat.NewBuilder()}
}

func (b *dictInfoBuilder) add(key string) {
	if !b.keys.Add(key, 1) {
		return
	}
	b.maxLen = max(b.maxLen, utf8.RuneCountInString(key))
}

func (b *dictInfoBuilder) freeze() *DictInfo {
	return &DictInfo{
		keys:   b.keys.Freeze(),
		maxLen: min(max(b.maxLen, 1), MaxLenCeiling),
	}
}

// Contains reports whether s is a known form or norm.
func (d *DictInfo) Contains(s string) bool {
	if d == nil {
		return false
	}
	return d.keys.Contains(s)
}

// MaxLen is the longest key length in characters, within [1, MaxLenCeiling].
func (d *DictInfo) MaxLen() int {
	if d == nil {
		return 1
	}
	return d.maxLen
}

// Len is the number of distinct keys.
func (d *DictInfo) Len() int {
	if d == nil {
		return 0
	}
	return d.keys.Len()
}
