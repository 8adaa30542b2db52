package dat

// PagedMapBMP maps BMP code points (0..65535) to dense alphabet IDs.
// It is a two-level page table: Top[hi] holds a 1-based page index (0 = page
// absent), Pages is a flat array of 256-entry pages.
//
// Dictionaries touch few Unicode blocks (Latin plus accents, or a CJK range
// plus kana), so only a handful of pages get allocated.
type PagedMapBMP struct {
	Top   [256]uint16
	Pages []uint16
}

// Dense returns the dense alphabet ID for a BMP code point, or 0.
func (m *PagedMapBMP) Dense(bmp uint16) uint16 {
	pi := m.Top[bmp>>8]
	if pi == 0 {
		return 0
	}
	return m.Pages[int(pi-1)<<8+int(bmp&0xFF)]
}

// NumPages returns the number of allocated pages.
func (m *PagedMapBMP) NumPages() int { return len(m.Pages) >> 8 }

// Set sets mapping bmp -> dense (dense may be 0 to clear).
func (m *PagedMapBMP) Set(bmp uint16, dense uint16) {
	hi := bmp >> 8
	pi := m.Top[hi]
	if pi == 0 {
		if dense == 0 {
			return
		}
		m.Pages = append(m.Pages, make([]uint16, 256)...)
		pi = uint16(len(m.Pages) >> 8)
		m.Top[hi] = pi
	}
	m.Pages[int(pi-1)<<8+int(bmp&0xFF)] = dense
}

// alphabet assigns dense IDs to code points while a trie is under construction.
type alphabet struct {
	ids  map[rune]uint16
	next uint16
}

func newAlphabet() *alphabet {
	return &alphabet{ids: make(map[rune]uint16)}
}

// dense returns the ID for r, assigning a fresh one on first sight.
// It fails when the alphabet is exhausted.
func (a *alphabet) dense(r rune) (uint16, bool) {
	if id, ok := a.ids[r]; ok {
		return id, true
	}
	if a.next == ^uint16(0) || r < 0 {
		return 0, false
	}
	a.next++
	a.ids[r] = a.next
	return a.next, true
}

// install copies the alphabet into the lookup tables of d.
func (a *alphabet) install(d *DAT) {
	d.Sigma = a.next
	for r, id := range a.ids {
		if r <= 0xFFFF {
			d.MapPaged.Set(uint16(r), id)
			continue
		}
		if d.Astral == nil {
			d.Astral = make(map[rune]uint16)
		}
		d.Astral[r] = id
	}
}
