package dat

import (
	"fmt"
	"testing"
)

func TestLookupMixedScripts(t *testing.T) {
	b := NewBuilder()
	keys := []string{"ami", "amie", "über", "ueber", "中国", "中国人", "ありがとう", "𠮷野家"}
	for i, k := range keys {
		if !b.Add(k, uint32(i+1)) {
			t.Fatalf("Add(%q) rejected", k)
		}
	}
	d := b.Freeze()
	for i, k := range keys {
		bits, ok := d.Lookup(k)
		if !ok {
			t.Fatalf("expected %q to be found", k)
		}
		if bits != uint32(i+1) {
			t.Fatalf("bits for %q: got %d, want %d", k, bits, i+1)
		}
	}
	for _, k := range []string{"am", "amies", "中", "国", "𠮷", "xyz", ""} {
		if d.Contains(k) {
			t.Fatalf("did not expect %q to be found", k)
		}
	}
	if d.Len() != len(keys) {
		t.Fatalf("Len: got %d, want %d", d.Len(), len(keys))
	}
}

func TestAddMergesBits(t *testing.T) {
	b := NewBuilder()
	b.Add("run", 1<<0)
	b.Add("run", 1<<3)
	b.Add("run", 1<<0)
	d := b.Freeze()
	bits, ok := d.Lookup("run")
	if !ok || bits != 0b1001 {
		t.Fatalf("expected merged bits 1001, got %b (ok=%v)", bits, ok)
	}
	if d.Len() != 1 {
		t.Fatalf("expected one key, got %d", d.Len())
	}
}

func TestAddRejects(t *testing.T) {
	b := NewBuilder()
	if b.Add("", 1) {
		t.Fatalf("empty key must be rejected")
	}
	if b.Add("x", 0) {
		t.Fatalf("zero bits must be rejected")
	}
	b.Freeze()
	if b.Add("y", 1) {
		t.Fatalf("Add after Freeze must be rejected")
	}
}

func TestFreezeIsIdempotent(t *testing.T) {
	b := NewBuilder()
	b.Add("a", 1)
	if b.Freeze() != b.Freeze() {
		t.Fatalf("Freeze should return the same trie")
	}
}

func TestEmptyTrie(t *testing.T) {
	d := NewBuilder().Freeze()
	if d.Contains("a") {
		t.Fatalf("empty trie should not contain anything")
	}
	var nilTrie *DAT
	if nilTrie.Contains("a") || nilTrie.Len() != 0 {
		t.Fatalf("nil trie should behave as empty")
	}
}

func TestManyKeys(t *testing.T) {
	b := NewBuilder()
	for i := range 2000 {
		b.Add(fmt.Sprintf("w%dx", i), 1)
	}
	d := b.Freeze()
	for i := range 2000 {
		if !d.Contains(fmt.Sprintf("w%dx", i)) {
			t.Fatalf("missing key w%dx", i)
		}
	}
	if d.Contains("w2000x") || d.Contains("w1") {
		t.Fatalf("unexpected key found")
	}
	stats := d.Stats()
	if stats.Keys != 2000 || stats.UsedSlots <= 0 {
		t.Fatalf("unexpected stats %+v", stats)
	}
	if fill := stats.FillRatio(); fill <= 0 || fill > 1 {
		t.Fatalf("expected fill ratio in (0,1], got %f", fill)
	}
}

func TestLookupDoesNotAllocate(t *testing.T) {
	b := NewBuilder()
	b.Add("schön", 1)
	d := b.Freeze()
	allocs := testing.AllocsPerRun(100, func() {
		d.Lookup("schön")
		d.Lookup("schon")
	})
	if allocs != 0 {
		t.Fatalf("Lookup allocated %v times", allocs)
	}
}
