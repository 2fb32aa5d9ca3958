package xref

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woozymasta/simpak/internal/obj"
)

// parentWithRefs allocates a node whose children are fresh xref placeholders.
func parentWithRefs(a *obj.Arena, n int) obj.Handle {
	p := a.Alloc(&obj.Node{Type: obj.Vehicle, Children: make([]obj.Handle, n)})
	for i := range n {
		a.Get(p).Children[i] = a.Alloc(&obj.Node{Type: obj.Xref})
	}

	return p
}

func TestResolveFound(t *testing.T) {
	t.Parallel()

	a := obj.NewArena()
	r := New()
	coal := a.Alloc(&obj.Node{Type: obj.Good})
	r.ObjForXref(obj.Good, "X", coal)

	p := parentWithRefs(a, 1)
	placeholder := a.Child(p, 0)
	r.XrefToResolve(obj.Good, "X", obj.Slot{Parent: p, Index: 0}, false)
	assert.Equal(t, 1, r.Pending())

	missing, err := r.Resolve(a)
	require.NoError(t, err)
	assert.Empty(t, missing)
	assert.Equal(t, coal, a.Child(p, 0))
	assert.Nil(t, a.Get(placeholder))
	assert.Equal(t, 0, r.Pending())

	_, ok := r.Lookup(obj.Good, "X")
	assert.False(t, ok, "tables cleared after resolve")
}

func TestResolveMissing(t *testing.T) {
	t.Parallel()

	a := obj.NewArena()
	r := New()
	p := parentWithRefs(a, 2)
	r.XrefToResolve(obj.Good, "X", obj.Slot{Parent: p, Index: 0}, false)
	r.XrefToResolve(obj.Good, "", obj.Slot{Parent: p, Index: 1}, true)

	missing, err := r.Resolve(a)
	require.NoError(t, err)
	assert.Equal(t, []Key{{Type: obj.Good, Name: "X"}}, missing)
	assert.Equal(t, obj.Nil, a.Child(p, 0))
	assert.Equal(t, obj.Nil, a.Child(p, 1), "empty name resolves to nothing")
	assert.Equal(t, 1, a.Live())
}

func TestResolveFatal(t *testing.T) {
	t.Parallel()

	a := obj.NewArena()
	r := New()
	p := parentWithRefs(a, 1)
	r.XrefToResolve(obj.Good, "X", obj.Slot{Parent: p, Index: 0}, true)

	_, err := r.Resolve(a)
	require.Error(t, err)

	var ue *UnresolvedError
	require.True(t, errors.As(err, &ue))
	assert.Equal(t, obj.Good, ue.Type)
	assert.Equal(t, "X", ue.Name)
	assert.Contains(t, err.Error(), `"X"`)
}

func TestResolveSharedKeyAndDuplicateSlot(t *testing.T) {
	t.Parallel()

	a := obj.NewArena()
	r := New()
	first := a.Alloc(&obj.Node{Type: obj.Way})
	second := a.Alloc(&obj.Node{Type: obj.Way})
	_, replaced := r.ObjForXref(obj.Way, "road", first)
	assert.False(t, replaced)
	prev, replaced := r.ObjForXref(obj.Way, "road", second)
	assert.True(t, replaced)
	assert.Equal(t, first, prev)

	p := parentWithRefs(a, 2)
	q := parentWithRefs(a, 1)
	s0 := obj.Slot{Parent: p, Index: 0}
	r.XrefToResolve(obj.Way, "road", s0, false)
	r.XrefToResolve(obj.Way, "road", s0, true)
	r.XrefToResolve(obj.Way, "road", obj.Slot{Parent: p, Index: 1}, false)
	r.XrefToResolve(obj.Way, "road", obj.Slot{Parent: q, Index: 0}, false)
	assert.Equal(t, 3, r.Pending())

	live := a.Live()
	_, err := r.Resolve(a)
	require.NoError(t, err)
	assert.Equal(t, second, a.Child(p, 0))
	assert.Equal(t, second, a.Child(p, 1))
	assert.Equal(t, second, a.Child(q, 0))
	assert.Equal(t, live-3, a.Live(), "each placeholder released once")
	assert.NotNil(t, a.Get(first), "superseded object stays alive")
}

func TestResolveRootSlotAndRolledBackParent(t *testing.T) {
	t.Parallel()

	a := obj.NewArena()
	r := New()
	g := a.Alloc(&obj.Node{Type: obj.Good})
	r.ObjForXref(obj.Good, "coal", g)

	root := a.AddRoot(a.Alloc(&obj.Node{Type: obj.Xref}))
	r.XrefToResolve(obj.Good, "coal", root, true)

	p := parentWithRefs(a, 1)
	r.XrefToResolve(obj.Good, "coal", obj.Slot{Parent: p, Index: 0}, true)
	a.Release(p)

	_, err := r.Resolve(a)
	require.NoError(t, err)
	assert.Equal(t, g, a.At(root))
}
