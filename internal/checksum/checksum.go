// Package checksum computes the pakset compatibility checksum: one SHA-1
// digest per registered object, combined in (type, name) order.
package checksum

import (
	"cmp"
	"crypto/sha1"
	"encoding/hex"
	"hash"
	"slices"

	"github.com/woozymasta/simpak/internal/decode"
	"github.com/woozymasta/simpak/internal/obj"
)

// Sum is a SHA-1 digest.
type Sum [sha1.Size]byte

func (s Sum) String() string { return hex.EncodeToString(s[:]) }

// Hash feeds descriptor fields into a SHA-1 digest. Integers are hashed
// little-endian at their on-disk width.
type Hash struct {
	h hash.Hash
	w decode.Writer
}

// New returns an empty Hash.
func New() *Hash {
	return &Hash{h: sha1.New()}
}

func (c *Hash) flush() {
	c.h.Write(c.w.Bytes())
	c.w = decode.Writer{}
}

// U8 hashes a byte.
func (c *Hash) U8(v uint8) *Hash { c.w.U8(v); return c }

// U16 hashes a uint16.
func (c *Hash) U16(v uint16) *Hash { c.w.U16(v); return c }

// U32 hashes a uint32.
func (c *Hash) U32(v uint32) *Hash { c.w.U32(v); return c }

// S8 hashes an int8.
func (c *Hash) S8(v int8) *Hash { c.w.S8(v); return c }

// S16 hashes an int16.
func (c *Hash) S16(v int16) *Hash { c.w.S16(v); return c }

// S32 hashes an int32.
func (c *Hash) S32(v int32) *Hash { c.w.S32(v); return c }

// Bool hashes a flag as one byte.
func (c *Hash) Bool(v bool) *Hash { c.w.Bool(v); return c }

// Text hashes s followed by a NUL byte.
func (c *Hash) Text(s string) *Hash { c.w.CString(s); return c }

// Sum finalizes the digest.
func (c *Hash) Sum() Sum {
	c.flush()

	var s Sum
	copy(s[:], c.h.Sum(nil))
	return s
}

// Checksummer is implemented by descriptors taking part in the pakset checksum.
type Checksummer interface {
	Checksum(c *Hash)
}

// Of returns the digest of one descriptor.
func Of(v Checksummer) Sum {
	c := New()
	v.Checksum(c)
	return c.Sum()
}

// Key identifies an object in a Set.
type Key struct {
	Type obj.Type
	Name string
}

func compareKeys(a, b Key) int {
	if c := cmp.Compare(a.Type, b.Type); c != 0 {
		return c
	}

	return cmp.Compare(a.Name, b.Name)
}

// Set accumulates per-object digests. A later Add for the same key replaces
// the earlier digest, like the registries do.
type Set struct {
	sums map[Key]Sum
}

// NewSet returns an empty set.
func NewSet() *Set {
	return &Set{sums: make(map[Key]Sum)}
}

// Add records the digest of one object.
func (s *Set) Add(t obj.Type, name string, sum Sum) {
	s.sums[Key{Type: t, Name: name}] = sum
}

// Get returns the digest recorded for (t, name).
func (s *Set) Get(t obj.Type, name string) (Sum, bool) {
	sum, ok := s.sums[Key{Type: t, Name: name}]
	return sum, ok
}

// Len returns the number of objects recorded.
func (s *Set) Len() int { return len(s.sums) }

// Keys returns all keys in (type, name) order.
func (s *Set) Keys() []Key {
	keys := make([]Key, 0, len(s.sums))
	for k := range s.sums {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, compareKeys)

	return keys
}

// Sum combines all digests: for each key in order, the type tag, the name
// with a NUL terminator and the object digest.
func (s *Set) Sum() Sum {
	c := New()
	for _, k := range s.Keys() {
		sum := s.sums[k]
		c.U32(uint32(k.Type)).Text(k.Name)
		c.w.Raw(sum[:])
	}

	return c.Sum()
}

// Diff returns, in key order, every key whose digest differs between s and
// other or that only one of them has.
func (s *Set) Diff(other *Set) []Key {
	var out []Key
	for k, a := range s.sums {
		if b, ok := other.sums[k]; !ok || a != b {
			out = append(out, k)
		}
	}
	for k := range other.sums {
		if _, ok := s.sums[k]; !ok {
			out = append(out, k)
		}
	}
	slices.SortFunc(out, compareKeys)

	return out
}
