package geom

// Ribi is a set of the four cardinal directions.
type Ribi uint8

// Direction sets.
const (
	RibiNone           Ribi = 0
	RibiNorth          Ribi = 1
	RibiEast           Ribi = 2
	RibiNorthEast      Ribi = 3
	RibiSouth          Ribi = 4
	RibiNorthSouth     Ribi = 5
	RibiSouthEast      Ribi = 6
	RibiNorthSouthEast Ribi = 7
	RibiWest           Ribi = 8
	RibiNorthWest      Ribi = 9
	RibiEastWest       Ribi = 10
	RibiNorthEastWest  Ribi = 11
	RibiSouthWest      Ribi = 12
	RibiNorthSouthWest Ribi = 13
	RibiSouthEastWest  Ribi = 14
	RibiAll            Ribi = 15
)

// NESW lists the single directions clockwise from north.
var NESW = [4]Ribi{RibiNorth, RibiEast, RibiSouth, RibiWest}

const (
	ribiSingle     = 1
	ribiStraightNS = 2
	ribiStraightEW = 4
	ribiBend       = 8
	ribiTwoway     = 16
	ribiThreeway   = 32
)

var ribiFlags = [16]uint8{
	0,                           // none
	ribiSingle | ribiStraightNS, // north
	ribiSingle | ribiStraightEW, // east
	ribiBend | ribiTwoway,       // north-east
	ribiSingle | ribiStraightNS, // south
	ribiStraightNS | ribiTwoway, // north-south
	ribiBend | ribiTwoway,       // south-east
	ribiThreeway,                // north-south-east
	ribiSingle | ribiStraightEW, // west
	ribiBend | ribiTwoway,       // north-west
	ribiStraightEW | ribiTwoway, // east-west
	ribiThreeway,                // north-east-west
	ribiBend | ribiTwoway,       // south-west
	ribiThreeway,                // north-south-west
	ribiThreeway,                // south-east-west
	ribiThreeway,                // all
}

// For three-way junctions the reverse is the missing direction.
var ribiBackwards = [16]Ribi{
	RibiAll, RibiSouth, RibiWest, RibiSouthWest,
	RibiNorth, RibiNorthSouth, RibiNorthWest, RibiWest,
	RibiEast, RibiSouthEast, RibiEastWest, RibiSouth,
	RibiNorthEast, RibiEast, RibiNorth, RibiNone,
}

var ribiDoubles = [16]Ribi{
	RibiNone, RibiNorthSouth, RibiEastWest, RibiNone,
	RibiNorthSouth, RibiNorthSouth, RibiNone, RibiNone,
	RibiEastWest, RibiNone, RibiEastWest, RibiNone,
	RibiNone, RibiNone, RibiNone, RibiNone,
}

var ribiKoord = [16]Koord{
	{0, 0},   // none
	{0, -1},  // north
	{1, 0},   // east
	{1, -1},  // north-east
	{0, 1},   // south
	{0, 0},   // north-south
	{1, 1},   // south-east
	{1, 0},   // north-south-east
	{-1, 0},  // west
	{-1, -1}, // north-west
	{0, 0},   // east-west
	{0, -1},  // north-east-west
	{-1, 1},  // south-west
	{-1, 0},  // north-south-west
	{0, 1},   // south-east-west
	{0, 0},   // all
}

var ribiSlope = [16]Slope{
	SlopeFlat, SlopeNorth, SlopeEast, SlopeFlat,
	SlopeSouth, SlopeFlat, SlopeFlat, SlopeFlat,
	SlopeWest, SlopeFlat, SlopeFlat, SlopeFlat,
	SlopeFlat, SlopeFlat, SlopeFlat, SlopeFlat,
}

func (r Ribi) flags() uint8 { return ribiFlags[r&RibiAll] }

// IsSingle reports exactly one direction.
func (r Ribi) IsSingle() bool { return r.flags()&ribiSingle != 0 }

// IsStraight reports a single direction or an opposite pair.
func (r Ribi) IsStraight() bool { return r.flags()&(ribiStraightNS|ribiStraightEW) != 0 }

// IsStraightNS reports north, south or north-south.
func (r Ribi) IsStraightNS() bool { return r.flags()&ribiStraightNS != 0 }

// IsStraightEW reports east, west or east-west.
func (r Ribi) IsStraightEW() bool { return r.flags()&ribiStraightEW != 0 }

// IsBend reports two perpendicular directions.
func (r Ribi) IsBend() bool { return r.flags()&ribiBend != 0 }

// IsTwoway reports exactly two directions.
func (r Ribi) IsTwoway() bool { return r.flags()&ribiTwoway != 0 }

// IsThreeway reports three or four directions.
func (r Ribi) IsThreeway() bool { return r.flags()&ribiThreeway != 0 }

// Backward returns the reverse direction set.
func (r Ribi) Backward() Ribi { return ribiBackwards[r&RibiAll] }

// Doubled collapses a straight set to its opposite pair; other sets give none.
func (r Ribi) Doubled() Ribi { return ribiDoubles[r&RibiAll] }

// Koord returns the offset vector for the direction set.
func (r Ribi) Koord() Koord { return ribiKoord[r&RibiAll] }

// Slope returns the single-height slope climbing along a single direction.
func (r Ribi) Slope() Slope { return ribiSlope[r&RibiAll] }

// DoubleSlope returns the double-height slope climbing along a single direction.
func (r Ribi) DoubleSlope() Slope { return ribiSlope[r&RibiAll] * 2 }

// RibiOf returns the direction set pointing along an offset.
func RibiOf(k Koord) Ribi {
	var r Ribi
	switch {
	case k.Y < 0:
		r |= RibiNorth
	case k.Y > 0:
		r |= RibiSouth
	}
	switch {
	case k.X < 0:
		r |= RibiWest
	case k.X > 0:
		r |= RibiEast
	}
	return r
}

// RibiBetween returns the direction set from a to b.
func RibiBetween(from, to Koord) Ribi {
	return RibiOf(to.Sub(from))
}
