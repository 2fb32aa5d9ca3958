// Package registry holds the per-type name tables filled while a pakset is
// registered. Tables live as long as the loaded pakset and are replaced as a
// whole when another pakset is loaded.
package registry

import (
	"slices"

	"github.com/woozymasta/simpak/internal/obj"
)

// Doubled records an object registered under a name already in use.
type Doubled struct {
	Type obj.Type `json:"type"`
	Name string   `json:"name"`
}

// Table maps names to descriptors of one type. Registration is last-wins.
type Table[T any] struct {
	typ     obj.Type
	items   map[string]T
	doubled *[]Doubled
}

// NewTable returns an empty table. Replacements are appended to doubled
// when it is not nil.
func NewTable[T any](t obj.Type, doubled *[]Doubled) *Table[T] {
	return &Table[T]{typ: t, items: make(map[string]T), doubled: doubled}
}

// Type returns the record tag of the table.
func (t *Table[T]) Type() obj.Type { return t.typ }

// Put stores v under name and reports whether an earlier entry was replaced.
func (t *Table[T]) Put(name string, v T) (prev T, replaced bool) {
	prev, replaced = t.items[name]
	t.items[name] = v
	if replaced && t.doubled != nil {
		*t.doubled = append(*t.doubled, Doubled{Type: t.typ, Name: name})
	}

	return prev, replaced
}

// Get returns the entry for name.
func (t *Table[T]) Get(name string) (T, bool) {
	v, ok := t.items[name]
	return v, ok
}

// Len returns the number of entries.
func (t *Table[T]) Len() int { return len(t.items) }

// Names returns all names in sorted order.
func (t *Table[T]) Names() []string {
	names := make([]string, 0, len(t.items))
	for n := range t.items {
		names = append(names, n)
	}
	slices.Sort(names)

	return names
}

// All returns the entries in name order.
func (t *Table[T]) All() []T {
	out := make([]T, 0, len(t.items))
	for _, n := range t.Names() {
		out = append(out, t.items[n])
	}

	return out
}
