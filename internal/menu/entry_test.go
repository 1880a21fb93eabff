package menu

import "testing"

func TestNewEntrySetSortsByteWise(t *testing.T) {
	set := NewEntrySet([]string{"b.cfg", "a.cfg", "c.cfg"})
	if set.Len() != 3 {
		t.Fatalf("expected 3 entries, got %d", set.Len())
	}
	want := []string{"a.cfg", "b.cfg", "c.cfg"}
	for i, name := range want {
		if set.At(i).Name != name {
			t.Fatalf("unexpected entry at %d: got %s want %s", i, set.At(i).Name, name)
		}
	}
}

func TestNewEntrySetOrdinalOrdering(t *testing.T) {
	// Byte-wise comparison puts uppercase before lowercase.
	set := NewEntrySet([]string{"b.cfg", "A.cfg"})
	if set.At(0).Name != "A.cfg" || set.At(1).Name != "b.cfg" {
		t.Fatalf("expected ordinal order [A.cfg b.cfg], got %v", set.Names())
	}
}

func TestNewEntrySetDeterministic(t *testing.T) {
	names := []string{"win95.cfg", "dos622.cfg", "xp.cfg", "nt4.cfg"}
	first := NewEntrySet(names).Names()
	second := NewEntrySet(names).Names()
	if len(first) != len(second) {
		t.Fatalf("expected identical lengths, got %d and %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("order differs at %d: %s vs %s", i, first[i], second[i])
		}
	}
}

func TestNewEntrySetLeavesInputUntouched(t *testing.T) {
	names := []string{"c.cfg", "a.cfg"}
	NewEntrySet(names)
	if names[0] != "c.cfg" || names[1] != "a.cfg" {
		t.Fatalf("input slice was reordered: %v", names)
	}
}

func TestEntrySetMaxWidth(t *testing.T) {
	set := NewEntrySet([]string{"a.cfg", "longer-name.cfg", "x"})
	if set.MaxWidth() != len("longer-name.cfg") {
		t.Fatalf("expected max width %d, got %d", len("longer-name.cfg"), set.MaxWidth())
	}

	empty := NewEntrySet(nil)
	if !empty.Empty() {
		t.Fatalf("expected empty set")
	}
	if empty.MaxWidth() != 0 {
		t.Fatalf("expected zero max width for empty set, got %d", empty.MaxWidth())
	}
}

func TestEntrySetNamesReturnsCopy(t *testing.T) {
	set := NewEntrySet([]string{"a.cfg", "b.cfg"})
	names := set.Names()
	names[0] = "mutated"
	if set.At(0).Name != "a.cfg" {
		t.Fatalf("entry set mutated through Names copy: %s", set.At(0).Name)
	}
}
