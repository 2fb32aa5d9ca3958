// Package xref links descriptors that refer to each other by name. Readers
// publish referable objects with ObjForXref and record placeholder slots with
// XrefToResolve; Resolve rewrites every slot once all files of a load batch
// have been read.
package xref

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/woozymasta/simpak/internal/obj"
)

// Key names a referable object.
type Key struct {
	Type obj.Type `json:"type"`
	Name string   `json:"name"`
}

func (k Key) String() string {
	return fmt.Sprintf("%s/%s", k.Type, k.Name)
}

func compareKeys(a, b Key) int {
	if c := cmp.Compare(a.Type, b.Type); c != 0 {
		return c
	}

	return cmp.Compare(a.Name, b.Name)
}

// UnresolvedError reports a fatal reference whose target was never loaded.
type UnresolvedError struct {
	Type obj.Type
	Name string
}

func (e *UnresolvedError) Error() string {
	return fmt.Sprintf("missing required %s object %q", e.Type, e.Name)
}

// Resolver holds the loaded and unresolved tables of one load session.
// Slots are numbered in the order they are first recorded; the fatal set
// holds slot numbers.
type Resolver struct {
	loaded     map[Key]obj.Handle
	unresolved map[Key][]uint32
	slots      []obj.Slot
	slotIDs    map[obj.Slot]uint32
	listed     *roaring.Bitmap
	fatal      *roaring.Bitmap
}

// New returns an empty resolver.
func New() *Resolver {
	r := &Resolver{}
	r.reset()
	return r
}

func (r *Resolver) reset() {
	r.loaded = make(map[Key]obj.Handle)
	r.unresolved = make(map[Key][]uint32)
	r.slots = nil
	r.slotIDs = make(map[obj.Slot]uint32)
	r.listed = roaring.New()
	r.fatal = roaring.New()
}

// ObjForXref publishes h under (t, name). A previous entry is replaced and
// returned; its node is not released.
func (r *Resolver) ObjForXref(t obj.Type, name string, h obj.Handle) (prev obj.Handle, replaced bool) {
	k := Key{Type: t, Name: name}
	prev, replaced = r.loaded[k]
	r.loaded[k] = h

	return prev, replaced
}

// XrefToResolve records that slot must receive the object named (t, name).
// Recording the same slot again only adds the fatal mark.
func (r *Resolver) XrefToResolve(t obj.Type, name string, slot obj.Slot, fatal bool) {
	id, ok := r.slotIDs[slot]
	if !ok {
		id = uint32(len(r.slots))
		r.slots = append(r.slots, slot)
		r.slotIDs[slot] = id
	}

	if r.listed.CheckedAdd(id) {
		k := Key{Type: t, Name: name}
		r.unresolved[k] = append(r.unresolved[k], id)
	}
	if fatal {
		r.fatal.Add(id)
	}
}

// Lookup returns the object currently published under (t, name).
func (r *Resolver) Lookup(t obj.Type, name string) (obj.Handle, bool) {
	h, ok := r.loaded[Key{Type: t, Name: name}]
	return h, ok
}

// Pending returns the number of slots waiting for Resolve.
func (r *Resolver) Pending() int {
	return int(r.listed.GetCardinality())
}

// Resolve overwrites every recorded slot with its target, or Nil when the
// target is missing and the slot is not fatal. An empty name always resolves
// to Nil. The placeholder nodes are released after all slots are written and
// the tables are cleared. Non-fatal misses are returned in key order.
//
// A missing fatal target aborts with *UnresolvedError; the session must then
// be discarded.
func (r *Resolver) Resolve(a *obj.Arena) ([]Key, error) {
	keys := make([]Key, 0, len(r.unresolved))
	for k := range r.unresolved {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, compareKeys)

	placeholders := roaring.New()
	var missing []Key

	for _, k := range keys {
		target := obj.Nil
		if k.Name != "" {
			if h, ok := r.loaded[k]; ok && a.Get(h) != nil {
				target = h
			}
		}

		for _, id := range r.unresolved[k] {
			if target == obj.Nil && k.Name != "" && r.fatal.Contains(id) {
				return missing, &UnresolvedError{Type: k.Type, Name: k.Name}
			}

			slot := r.slots[id]
			if slot.Parent != obj.Nil && a.Get(slot.Parent) == nil {
				// parent rolled back after a failed read
				continue
			}

			if cur := a.At(slot); a.Type(cur) == obj.Xref {
				placeholders.Add(uint32(cur))
			}
			if err := a.Set(slot, target); err != nil {
				return missing, err
			}
		}

		if target == obj.Nil && k.Name != "" {
			missing = append(missing, k)
		}
	}

	it := placeholders.Iterator()
	for it.HasNext() {
		a.Release(obj.Handle(it.Next()))
	}

	r.reset()

	return missing, nil
}
