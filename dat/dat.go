/*
Package dat implements a frozen double-array trie over Unicode keys.

Keys are dictionary forms (any script, BMP and astral planes). Each key carries
a small bit set as its value: a plain membership marker for dictionary key sets,
or a CEFR tier mask for light indexes. A trie is assembled with a Builder and
then frozen into a DAT, which is read-only and safe for concurrent lookups.
*/
package dat

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'cefrlex.dat'
func tracer() tracing.Trace {
	return tracing.Select("cefrlex.dat")
}

// DAT is a frozen double-array trie.
//   - States are indices into Base/Check (0 is unused; Root is 1).
//   - Transition: t := Base[s] + c; valid if Check[t] == s; next state is t.
//   - c is a dense alphabet ID in [1..Sigma]. c==0 means "not in alphabet".
//
// A state is terminal iff its value in Values is non-zero.
type DAT struct {
	Root  uint32
	Sigma uint16 // size of the dense alphabet

	Base  []int32
	Check []int32

	// Values holds the key bits for terminal states, indexed by state.
	Values valueStore

	// MapPaged maps BMP code points to dense IDs, Astral the rest.
	MapPaged PagedMapBMP
	Astral   map[rune]uint16

	keys int
}

// NStates returns number of allocated slots/states in the arrays.
func (d *DAT) NStates() int { return len(d.Base) }

// Len returns the number of distinct keys stored.
func (d *DAT) Len() int {
	if d == nil {
		return 0
	}
	return d.keys
}

// Transition returns (nextState, ok). dense must be in [1..Sigma].
func (d *DAT) Transition(state uint32, dense uint16) (uint32, bool) {
	if int(state) >= len(d.Base) {
		return 0, false
	}
	t := d.Base[state] + int32(dense)
	if t <= 0 || int(t) >= len(d.Check) {
		return 0, false
	}
	if d.Check[t] != int32(state) {
		return 0, false
	}
	return uint32(t), true
}

// Dense maps a code point to a dense alphabet ID.
// Returns 0 if the code point is not in the alphabet.
func (d *DAT) Dense(r rune) uint16 {
	if r < 0 {
		return 0
	}
	if r <= 0xFFFF {
		return d.MapPaged.Dense(uint16(r))
	}
	return d.Astral[r]
}

// Lookup returns the value bits of key. ok is false if key is not stored.
// Lookup does not allocate.
func (d *DAT) Lookup(key string) (bits uint32, ok bool) {
	if d == nil || len(d.Base) == 0 || key == "" {
		return 0, false
	}
	state := d.Root
	for _, r := range key {
		c := d.Dense(r)
		if c == 0 {
			return 0, false
		}
		next, found := d.Transition(state, c)
		if !found {
			return 0, false
		}
		state = next
	}
	bits = d.Values.Get(int(state))
	return bits, bits != 0
}

// Contains reports whether key is stored in the trie.
func (d *DAT) Contains(key string) bool {
	_, ok := d.Lookup(key)
	return ok
}

// Stats reports density metrics for the double array.
type Stats struct {
	Keys       int
	Sigma      int
	UsedSlots  int
	TotalSlots int
	MaxStateID int
}

// FillRatio is the share of used slots in the double array.
func (s Stats) FillRatio() float64 {
	if s.TotalSlots == 0 {
		return 0
	}
	return float64(s.UsedSlots) / float64(s.TotalSlots)
}

// Stats computes density metrics.
func (d *DAT) Stats() Stats {
	stats := Stats{
		Keys:       d.keys,
		Sigma:      int(d.Sigma),
		TotalSlots: d.NStates(),
		MaxStateID: int(d.Root),
	}
	for i := range d.Check {
		if i == int(d.Root) || d.Check[i] != 0 {
			stats.UsedSlots++
			stats.MaxStateID = max(stats.MaxStateID, i)
		}
	}
	return stats
}
