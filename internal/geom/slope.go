package geom

// Slope encodes the heights of a tile's four corners. Each corner contributes
// 0, 1 or 2 height steps weighted sw*1 + se*3 + ne*9 + nw*27, giving 81 codes.
type Slope uint8

// Corner weights and named slopes.
const (
	SlopeFlat Slope = 0

	SlopeSW Slope = 1
	SlopeSE Slope = 3
	SlopeNE Slope = 9
	SlopeNW Slope = 27

	SlopeNorth = SlopeSE + SlopeSW
	SlopeWest  = SlopeNE + SlopeSE
	SlopeEast  = SlopeNW + SlopeSW
	SlopeSouth = SlopeNW + SlopeNE

	SlopeAllUpOne = SlopeSW + SlopeSE + SlopeNE + SlopeNW
	SlopeAllUpTwo = 2 * SlopeAllUpOne

	SlopeCount = 81
)

const (
	slopeSingle = 1 << iota
	slopeDouble
	slopeAllUp
	slopeWay
)

// Valid reports whether the code is one of the 81 slopes.
func (s Slope) Valid() bool { return s < SlopeCount }

// Ribi returns the climbing direction of a way slope, or none. The result is
// never more than one direction.
func (s Slope) Ribi() Ribi {
	if !s.Valid() {
		return RibiNone
	}
	return slopeRibi[s]
}

// Allowed returns the directions a way may leave a tile with this slope.
func (s Slope) Allowed() Ribi {
	if !s.Valid() {
		return RibiNone
	}
	return slopeAllowed[s]
}

// IsSingle reports that no corner is raised by two steps.
func (s Slope) IsSingle() bool { return s.Valid() && slopeFlags[s]&slopeSingle != 0 }

// IsDouble reports that at least one corner is raised by two steps.
func (s Slope) IsDouble() bool { return s.Valid() && slopeFlags[s]&slopeDouble != 0 }

// IsAllUp reports a raised flat tile.
func (s Slope) IsAllUp() bool { return s.Valid() && slopeFlags[s]&slopeAllUp != 0 }

// IsWay reports a slope a straight way can climb.
func (s Slope) IsWay() bool { return s.Valid() && slopeFlags[s]&slopeWay != 0 }

// Corners returns the step count of the sw, se, ne and nw corners.
func (s Slope) Corners() (sw, se, ne, nw uint8) {
	v := uint8(s)
	return v % 3, (v / 3) % 3, (v / 9) % 3, (v / 27) % 3
}

// SlopeOf builds a slope from corner step counts.
func SlopeOf(sw, se, ne, nw uint8) Slope {
	return Slope(sw + 3*se + 9*ne + 27*nw)
}

var slopeRibi = [SlopeCount]Ribi{
	RibiNone, RibiNone, RibiNone, RibiNone, RibiNorth, RibiNone, RibiNone, RibiNone, RibiNorth, // 0-8
	RibiNone, RibiNone, RibiNone, RibiWest, RibiNone, RibiNone, RibiNone, RibiNone, RibiNone,   // 9-17
	RibiNone, RibiNone, RibiNone, RibiNone, RibiNone, RibiNone, RibiWest, RibiNone, RibiNone,   // 18-26
	RibiNone, RibiEast, RibiNone, RibiNone, RibiNone, RibiNone, RibiNone, RibiNone, RibiNone,   // 27-35
	RibiSouth, RibiNone, RibiNone, RibiNone, RibiNone, RibiNone, RibiNone, RibiNone, RibiNone,  // 36-44
	RibiNone, RibiNone, RibiNone, RibiNone, RibiNone, RibiNone, RibiNone, RibiNone, RibiNone,   // 45-53
	RibiNone, RibiNone, RibiEast, RibiNone, RibiNone, RibiNone, RibiNone, RibiNone, RibiNone,   // 54-62
	RibiNone, RibiNone, RibiNone, RibiNone, RibiNone, RibiNone, RibiNone, RibiNone, RibiNone,   // 63-71
	RibiSouth, RibiNone, RibiNone, RibiNone, RibiNone, RibiNone, RibiNone, RibiNone, RibiNone,  // 72-80
}

var slopeAllowed = [SlopeCount]Ribi{
	RibiAll, RibiNone, RibiNone, RibiNone, RibiNorthSouth, RibiNone, RibiNone, RibiNone, RibiNorthSouth, // 0-8
	RibiNone, RibiNone, RibiNone, RibiEastWest, RibiNone, RibiNone, RibiNone, RibiNone, RibiNone,        // 9-17
	RibiNone, RibiNone, RibiNone, RibiNone, RibiNone, RibiNone, RibiEastWest, RibiNone, RibiNone,        // 18-26
	RibiNone, RibiEastWest, RibiNone, RibiNone, RibiNone, RibiNone, RibiNone, RibiNone, RibiNone,        // 27-35
	RibiNorthSouth, RibiNone, RibiNone, RibiNone, RibiAll, RibiNone, RibiNone, RibiNone, RibiNone,       // 36-44
	RibiNone, RibiNone, RibiNone, RibiNone, RibiNone, RibiNone, RibiNone, RibiNone, RibiNone,            // 45-53
	RibiNone, RibiNone, RibiEastWest, RibiNone, RibiNone, RibiNone, RibiNone, RibiNone, RibiNone,        // 54-62
	RibiNone, RibiNone, RibiNone, RibiNone, RibiNone, RibiNone, RibiNone, RibiNone, RibiNone,            // 63-71
	RibiNorthSouth, RibiNone, RibiNone, RibiNone, RibiNone, RibiNone, RibiNone, RibiNone, RibiAll,       // 72-80
}

var slopeFlags = [SlopeCount]uint8{
	slopeSingle, slopeSingle, slopeDouble,              // 0-2
	slopeSingle, slopeSingle | slopeWay, slopeDouble,   // 3-5
	slopeDouble, slopeDouble, slopeDouble | slopeWay,   // 6-8
	slopeSingle, slopeSingle, slopeDouble,              // 9-11
	slopeSingle | slopeWay, slopeSingle, slopeDouble,   // 12-14
	slopeDouble, slopeDouble, slopeDouble,              // 15-17
	slopeDouble, slopeDouble, slopeDouble,              // 18-20
	slopeDouble, slopeDouble, slopeDouble,              // 21-23
	slopeDouble | slopeWay, slopeDouble, slopeDouble,   // 24-26
	slopeSingle, slopeSingle | slopeWay, slopeDouble,   // 27-29
	slopeSingle, slopeSingle, slopeDouble,              // 30-32
	slopeDouble, slopeDouble, slopeDouble,              // 33-35
	slopeSingle | slopeWay, slopeSingle, slopeDouble,   // 36-38
	slopeSingle, slopeSingle | slopeAllUp, slopeDouble, // 39-41
	slopeDouble, slopeDouble, slopeDouble,              // 42-44
	slopeDouble, slopeDouble, slopeDouble,              // 45-47
	slopeDouble, slopeDouble, slopeDouble,              // 48-50
	slopeDouble, slopeDouble, slopeDouble,              // 51-53
	slopeDouble, slopeDouble, slopeDouble | slopeWay,   // 54-56
	slopeDouble, slopeDouble, slopeDouble,              // 57-59
	slopeDouble, slopeDouble, slopeDouble,              // 60-62
	slopeDouble, slopeDouble, slopeDouble,              // 63-65
	slopeDouble, slopeDouble, slopeDouble,              // 66-68
	slopeDouble, slopeDouble, slopeDouble,              // 69-71
	slopeDouble | slopeWay, slopeDouble, slopeDouble,   // 72-74
	slopeDouble, slopeDouble, slopeDouble,              // 75-77
	slopeDouble, slopeDouble, slopeDouble | slopeAllUp, // 78-80
}
