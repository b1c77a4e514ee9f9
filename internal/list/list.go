// Package list holds the append-only item list at the core of jot.
//
// A List is a value type: Append and Commit return a new List and never
// mutate or alias the receiver's backing storage. Callers that keep an old
// List value can rely on it staying exactly as it was.
package list

import "strings"

// List is an ordered, append-only collection of committed entries.
// The zero value is an empty, ready-to-use list.
type List struct {
	items []string
}

// New returns an empty list.
func New() List {
	return List{}
}

// Append returns a new list with item as its last element. The receiver's
// storage is copied, not shared, so previously held List values are
// unaffected by later appends.
func (l List) Append(item string) List {
	items := make([]string, len(l.items), len(l.items)+1)
	copy(items, l.items)
	return List{items: append(items, item)}
}

// Commit applies the submit rule: if draft is blank after trimming leading
// and trailing whitespace, the list is returned unchanged and ok is false.
// Otherwise the original draft (whitespace intact) is appended. Trimming is
// only an emptiness check, never a transformation of what gets stored.
func (l List) Commit(draft string) (out List, ok bool) {
	if strings.TrimSpace(draft) == "" {
		return l, false
	}
	return l.Append(draft), true
}

// Items returns a copy of the entries in insertion order.
func (l List) Items() []string {
	out := make([]string, len(l.items))
	copy(out, l.items)
	return out
}

// At returns the entry at position i (0-based, insertion order).
func (l List) At(i int) string {
	return l.items[i]
}

// Len returns the number of committed entries.
func (l List) Len() int {
	return len(l.items)
}

// Empty reports whether the list has no entries.
func (l List) Empty() bool {
	return len(l.items) == 0
}
