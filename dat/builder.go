package dat

import (
	"fmt"
	"sort"
)

type buildNode struct {
	state    uint32
	bits     uint32
	children map[uint16]*buildNode
}

func newBuildNode() *buildNode {
	return &buildNode{children: make(map[uint16]*buildNode)}
}

// Builder collects keys for a DAT. A Builder is not safe for concurrent use
// and may be frozen only once.
type Builder struct {
	root   *buildNode
	alpha  *alphabet
	nodes  int
	keys   int
	frozen *DAT
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{
		root:  newBuildNode(),
		alpha: newAlphabet(),
		nodes: 1,
	}
}

// Add ORs bits into the value of key. Empty keys and zero bits are rejected,
// as is every key added after Freeze.
func (b *Builder) Add(key string, bits uint32) bool {
	if b.frozen != nil || key == "" || bits == 0 {
		return false
	}
	n := b.root
	for _, r := range key {
		c, ok := b.alpha.dense(r)
		if !ok {
			tracer().Errorf("dense alphabet exhausted at key %q", key)
			return false
		}
		child := n.children[c]
		if child == nil {
			child = newBuildNode()
			n.children[c] = child
			b.nodes++
		}
		n = child
	}
	if n.bits == 0 {
		b.keys++
	}
	n.bits |= bits
	return true
}

// Len returns the number of distinct keys added so far.
func (b *Builder) Len() int { return b.keys }

// Freeze lays out the collected keys as a double array. Subsequent calls
// return the same DAT.
func (b *Builder) Freeze() *DAT {
	if b.frozen != nil {
		return b.frozen
	}
	d := &DAT{Root: 1, keys: b.keys}
	b.alpha.install(d)
	d.Base = make([]int32, int(d.Root)+1)
	d.Check = make([]int32, int(d.Root)+1)
	d.Values = newValueStore(b.nodes + 1)
	free := int(d.Root) + 1 // lowest slot that might be unoccupied
	b.root.state = d.Root
	queue := []*buildNode{b.root}
	for q := 0; q < len(queue); q++ {
		n := queue[q]
		d.Values.Merge(int(n.state), n.bits)
		if len(n.children) == 0 {
			continue
		}
		for free < len(d.Check) && d.Check[free] != 0 {
			free++
		}
		labels := sortedLabels(n.children)
		base := findBase(d.Check, labels, free)
		ensureIndex(d, base+int(labels[len(labels)-1]))
		d.Base[n.state] = int32(base)
		for _, label := range labels {
			t := base + int(label)
			child := n.children[label]
			child.state = uint32(t)
			d.Check[t] = int32(n.state)
			queue = append(queue, child)
		}
	}
	b.root = nil
	b.alpha = nil
	b.frozen = d
	stats := d.Stats()
	tracer().Debugf("froze trie keys=%d states=%d sigma=%d fill=%.2f",
		stats.Keys, stats.TotalSlots, stats.Sigma, stats.FillRatio())
	return d
}

func (b *Builder) String() string {
	if b.frozen != nil {
		return fmt.Sprintf("DAT(states=%d,sigma=%d,keys=%d,frozen)", b.frozen.NStates(), b.frozen.Sigma, b.keys)
	}
	return fmt.Sprintf("DAT(nodes=%d,keys=%d)", b.nodes, b.keys)
}

func sortedLabels(children map[uint16]*buildNode) []uint16 {
	labels := make([]uint16, 0, len(children))
	for label := range children {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		return labels[i] < labels[j]
	})
	return labels
}

// findBase searches the smallest base placing every label on a free slot.
// Slots below free are known to be occupied.
func findBase(check []int32, labels []uint16, free int) int {
	start := max(1, free-int(labels[0]))
	for base := start; ; base++ {
		ok := true
		for _, label := range labels {
			t := base + int(label)
			if t < len(check) && check[t] != 0 {
				ok = false
				break
			}
		}
		if ok {
			return base
		}
	}
}

func ensureIndex(d *DAT, idx int) {
	if idx < len(d.Base) {
		return
	}
	grow := idx + 1 - len(d.Base)
	d.Base = append(d.Base, make([]int32, grow)...)
	d.Check = append(d.Check, make([]int32, grow)...)
}
