package geom

import "math/rand/v2"

// Rand is the shared pseudo-random stream. Every peer in a networked game
// draws from an identically seeded stream, so the number and order of draws
// is part of the contract.
type Rand interface {
	Uint32N(n uint32) uint32
}

// NewRand returns the stream used by the loader and builders.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// RandomKoord draws a coordinate in [0,xrange)x[0,yrange). X is drawn first.
// An empty or single-value range yields 0 but still takes its draw.
func RandomKoord(r Rand, xrange, yrange uint16) Koord {
	x := int16(drawN(r, xrange))
	y := int16(drawN(r, yrange))
	return Koord{x, y}
}

func drawN(r Rand, n uint16) uint32 {
	if n <= 1 {
		r.Uint32N(1)
		return 0
	}

	return r.Uint32N(uint32(n))
}
