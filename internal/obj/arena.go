package obj

import "fmt"

// Handle identifies a node in an Arena. The zero Handle is the null node.
type Handle uint32

// Nil is the null node.
const Nil Handle = 0

// Node is one descriptor: its record tag, its children and the value its
// reader decoded from the payload.
type Node struct {
	Type     Type
	Children []Handle
	Data     any
}

// Slot addresses a place holding a Handle: child Index of Parent, or entry
// Index of the arena's root list when Parent is Nil. Cross references are
// resolved by overwriting slots.
type Slot struct {
	Parent Handle
	Index  int
}

func (s Slot) String() string {
	if s.Parent == Nil {
		return fmt.Sprintf("root[%d]", s.Index)
	}

	return fmt.Sprintf("%d[%d]", s.Parent, s.Index)
}

// Arena owns every node of a load session. Nodes superseded by a duplicate
// registration stay valid until the arena itself is dropped, so handles held
// elsewhere never dangle.
type Arena struct {
	nodes []*Node
	roots []Handle
	live  int
}

// NewArena returns an empty arena.
func NewArena() *Arena {
	return &Arena{nodes: []*Node{nil}}
}

// Alloc stores n and returns its handle.
func (a *Arena) Alloc(n *Node) Handle {
	a.nodes = append(a.nodes, n)
	a.live++
	return Handle(len(a.nodes) - 1)
}

// Get returns the node for h, or nil for Nil and released handles.
func (a *Arena) Get(h Handle) *Node {
	if int(h) >= len(a.nodes) {
		return nil
	}

	return a.nodes[h]
}

// Type returns the record tag of h, or 0 for the null node.
func (a *Arena) Type(h Handle) Type {
	if n := a.Get(h); n != nil {
		return n.Type
	}

	return 0
}

// Child returns child i of h, or Nil when it does not exist.
func (a *Arena) Child(h Handle, i int) Handle {
	n := a.Get(h)
	if n == nil || i < 0 || i >= len(n.Children) {
		return Nil
	}

	return n.Children[i]
}

// Release drops h and, recursively, every child it still owns.
func (a *Arena) Release(h Handle) {
	n := a.Get(h)
	if n == nil {
		return
	}

	a.nodes[h] = nil
	a.live--
	for _, c := range n.Children {
		a.Release(c)
	}
}

// ReleaseNode drops h without touching its children.
func (a *Arena) ReleaseNode(h Handle) {
	if a.Get(h) == nil {
		return
	}

	a.nodes[h] = nil
	a.live--
}

// Live returns the number of nodes not yet released.
func (a *Arena) Live() int { return a.live }

// AddRoot appends h to the root list and returns the slot addressing it.
func (a *Arena) AddRoot(h Handle) Slot {
	a.roots = append(a.roots, h)
	return Slot{Parent: Nil, Index: len(a.roots) - 1}
}

// Roots returns the top-level nodes of every file read so far.
func (a *Arena) Roots() []Handle { return a.roots }

// At returns the handle stored in s.
func (a *Arena) At(s Slot) Handle {
	if s.Parent == Nil {
		if s.Index < 0 || s.Index >= len(a.roots) {
			return Nil
		}
		return a.roots[s.Index]
	}

	return a.Child(s.Parent, s.Index)
}

// Set overwrites the handle stored in s.
func (a *Arena) Set(s Slot, h Handle) error {
	if s.Parent == Nil {
		if s.Index < 0 || s.Index >= len(a.roots) {
			return fmt.Errorf("slot %v out of range", s)
		}
		a.roots[s.Index] = h
		return nil
	}

	n := a.Get(s.Parent)
	if n == nil || s.Index < 0 || s.Index >= len(n.Children) {
		return fmt.Errorf("slot %v out of range", s)
	}
	n.Children[s.Index] = h

	return nil
}

// As returns the decoded value of h when it has type T.
func As[T any](a *Arena, h Handle) (T, bool) {
	var zero T
	n := a.Get(h)
	if n == nil {
		return zero, false
	}

	v, ok := n.Data.(T)
	return v, ok
}
