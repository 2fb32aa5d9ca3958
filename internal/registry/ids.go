package registry

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrTooManyTrees is returned when a pakset defines more tree types than
	// a savegame can address.
	ErrTooManyTrees = errors.New("too many tree types")
	// ErrTooManyGroundObjs is returned when ground object ids overflow.
	ErrTooManyGroundObjs = errors.New("too many ground object types")
)

// IDTable assigns small stable ids to names in sorted order. The ids are
// written to savegames together with Names, so an old id can be mapped back
// to a name and resolved against another pakset.
type IDTable struct {
	names []string
	ids   map[string]int
	limit int
}

// NewIDTable assigns ids in name order. It fails with tooMany when more
// than limit distinct names are given.
func NewIDTable(names []string, limit int, tooMany error) (*IDTable, error) {
	sorted := slices.Clone(names)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	if len(sorted) > limit {
		return nil, fmt.Errorf("%w: %d > %d", tooMany, len(sorted), limit)
	}

	t := &IDTable{names: sorted, ids: make(map[string]int, len(sorted)), limit: limit}
	for i, n := range sorted {
		t.ids[n] = i
	}

	return t, nil
}

// ID returns the id of name.
func (t *IDTable) ID(name string) (int, bool) {
	id, ok := t.ids[name]
	return id, ok
}

// Name returns the name with id.
func (t *IDTable) Name(id int) (string, bool) {
	if id < 0 || id >= len(t.names) {
		return "", false
	}

	return t.names[id], true
}

// Names returns the name table to be stored in a savegame.
func (t *IDTable) Names() []string {
	return slices.Clone(t.names)
}

// Len returns the number of ids.
func (t *IDTable) Len() int { return len(t.names) }

// Translate maps an id from a savegame, whose name table is saved, to the id
// of the same name in t. A name no longer present is reported as not found
// and must be handled as a missing object by the caller.
func (t *IDTable) Translate(saved []string, id int) (int, bool) {
	if id < 0 || id >= len(saved) {
		return 0, false
	}

	return t.ID(saved[id])
}
