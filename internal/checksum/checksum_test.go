package checksum

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/woozymasta/simpak/internal/obj"
)

type goods struct {
	value  uint16
	weight uint16
}

func (g goods) Checksum(c *Hash) { c.U16(g.value).U16(g.weight) }

func TestHashIsLittleEndian(t *testing.T) {
	t.Parallel()

	a := New().U16(0x0102).Sum()
	b := New().U8(0x02).U8(0x01).Sum()
	assert.Equal(t, a, b)
	assert.Equal(t, "da39a3ee5e6b4b0d3255bfef95601890afd80709", New().Sum().String())
}

func TestSetSumIgnoresInsertOrder(t *testing.T) {
	t.Parallel()

	coal := Of(goods{value: 10, weight: 1000})
	mail := Of(goods{value: 30, weight: 1})

	s1 := NewSet()
	s1.Add(obj.Good, "coal", coal)
	s1.Add(obj.Good, "mail", mail)

	s2 := NewSet()
	s2.Add(obj.Good, "mail", mail)
	s2.Add(obj.Good, "coal", coal)

	assert.Equal(t, s1.Sum(), s2.Sum())
	assert.Empty(t, s1.Diff(s2))

	s2.Add(obj.Good, "coal", Of(goods{value: 11, weight: 1000}))
	s2.Add(obj.Vehicle, "truck", mail)
	assert.NotEqual(t, s1.Sum(), s2.Sum())
	assert.Equal(t, []Key{{obj.Good, "coal"}, {obj.Vehicle, "truck"}}, s1.Diff(s2))
	assert.Equal(t, 3, s2.Len())
}
