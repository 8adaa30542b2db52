package dat

const initialValueSlots = 2 // slot 0 + root slot

// valueStore keeps key bits directly indexed by trie state.
// A zero value means the state is not terminal.
type valueStore struct {
	bits []uint32 // will grow with demand
}

func newValueStore(slots int) valueStore {
	return valueStore{bits: make([]uint32, max(slots, initialValueSlots))}
}

func (s *valueStore) ensure(state int) {
	if state < len(s.bits) {
		return
	}
	s.bits = append(s.bits, make([]uint32, state+1-len(s.bits))...)
}

// Merge ORs bits into the value of state.
func (s *valueStore) Merge(state int, bits uint32) {
	if state < 0 {
		return
	}
	s.ensure(state)
	s.bits[state] |= bits
}

// Get returns the bits of state, 0 if state carries none.
func (s *valueStore) Get(state int) uint32 {
	if state < 0 || state >= len(s.bits) {
		return 0
	}
	return s.bits[state]
}

// Terminals counts states with non-zero bits.
func (s *valueStore) Terminals() int {
	n := 0
	for _, b := range s.bits {
		if b != 0 {
			n++
		}
	}
	return n
}
