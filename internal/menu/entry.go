package menu

import (
	"sort"

	"github.com/mattn/go-runewidth"
)

// Entry represents one selectable configuration file.
type Entry struct {
	Name string
}

// EntrySet is the sorted, immutable collection of entries backing one
// menu session. Indices are stable for the session's lifetime.
type EntrySet struct {
	entries  []Entry
	maxWidth int
}

// NewEntrySet copies and sorts the supplied names. Ordering is plain
// byte-wise comparison, so the displayed numbering is deterministic for
// identical directory contents.
func NewEntrySet(names []string) EntrySet {
	sorted := make([]string, len(names))
	copy(sorted, names)
	sort.Strings(sorted)

	set := EntrySet{entries: make([]Entry, 0, len(sorted))}
	for _, name := range sorted {
		w := runewidth.StringWidth(name)
		if w > set.maxWidth {
			set.maxWidth = w
		}
		set.entries = append(set.entries, Entry{Name: name})
	}
	return set
}

// Len returns the number of entries.
func (s EntrySet) Len() int {
	return len(s.entries)
}

// Empty reports whether the set holds no entries.
func (s EntrySet) Empty() bool {
	return len(s.entries) == 0
}

// At returns the entry at index i.
func (s EntrySet) At(i int) Entry {
	return s.entries[i]
}

// Names returns a copy of all entry names in display order.
func (s EntrySet) Names() []string {
	names := make([]string, len(s.entries))
	for i, e := range s.entries {
		names[i] = e.Name
	}
	return names
}

// MaxWidth returns the display width of the widest entry name.
func (s EntrySet) MaxWidth() int {
	return s.maxWidth
}
