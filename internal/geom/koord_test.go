package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKoordArithmetic(t *testing.T) {
	t.Parallel()

	samples := []Koord{{0, 0}, {1, -1}, {-300, 42}, {32000, -32000}, {7, 7}}
	for _, a := range samples {
		assert.True(t, a.Equal(a))
		assert.Equal(t, a, a.Neg().Neg())
		for _, b := range samples {
			assert.True(t, a.Add(b).Sub(b).Equal(a), "a=%v b=%v", a, b)
			assert.Equal(t, a == b, a.Equal(b))
		}
	}

	assert.Equal(t, Kd(6, -4), Kd(3, -2).Mul(2))
	assert.Equal(t, Kd(1, -2), Kd(3, -7).Div(3))
	assert.Equal(t, Kd(2, 5), Kd(9, 5).ClipMin(Kd(2, 8)))
	assert.Equal(t, Kd(9, 8), Kd(9, 5).ClipMax(Kd(2, 8)))
}

func TestKoord3D(t *testing.T) {
	t.Parallel()

	a := K3(10, 20, -3)
	b := K3(-1, 4, 5)
	assert.True(t, a.Add(b).Sub(b).Equal(a))
	assert.False(t, a.Equal(b))
	assert.Equal(t, a, a.Neg().Neg())
	assert.Equal(t, K3(11, 19, -3), a.AddKoord(Kd(1, -1)))
	assert.Equal(t, Kd(10, 20), a.Koord2D())
}

type fixedRand []uint32

func (f *fixedRand) Uint32N(n uint32) uint32 {
	v := (*f)[0] % n
	*f = (*f)[1:]
	return v
}

func TestRandomKoordDrawOrder(t *testing.T) {
	t.Parallel()

	r := fixedRand{3, 9}
	assert.Equal(t, Kd(3, 9), RandomKoord(&r, 10, 20))

	a := NewRand(42)
	b := NewRand(42)
	for range 100 {
		k := RandomKoord(a, 64, 32)
		assert.Equal(t, k, RandomKoord(b, 64, 32))
		assert.True(t, Rc(0, 0, 64, 32).Contains(k))
	}
}

func TestRandomKoordEmptyRange(t *testing.T) {
	t.Parallel()

	r := fixedRand{7, 9, 5}
	assert.Equal(t, Kd(0, 0), RandomKoord(&r, 0, 1))
	assert.Equal(t, fixedRand{5}, r, "each axis takes one draw")

	a := NewRand(1)
	b := NewRand(1)
	assert.Equal(t, Kd(0, 0), RandomKoord(a, 0, 0))
	RandomKoord(b, 3, 3)
	assert.Equal(t, RandomKoord(b, 64, 64), RandomKoord(a, 64, 64), "draw count does not depend on range")
}
