// Package obj holds the record type tags and the arena that owns every
// descriptor node read during a load session.
package obj

import "strings"

// Type is a four-character record tag, stored little-endian on disk.
type Type uint32

// C4ID packs four characters into a Type.
func C4ID(a, b, c, d byte) Type {
	return Type(uint32(a) | uint32(b)<<8 | uint32(c)<<16 | uint32(d)<<24)
}

// Record kinds.
var (
	Bridge      = C4ID('B', 'R', 'D', 'G')
	Building    = C4ID('B', 'U', 'I', 'L')
	CityCar     = C4ID('C', 'C', 'A', 'R')
	Crossing    = C4ID('C', 'R', 'S', 'S')
	Cursor      = C4ID('C', 'U', 'R', 'S')
	Factory     = C4ID('F', 'A', 'C', 'T')
	FieldClass  = C4ID('F', 'C', 'L', 'S')
	Fields      = C4ID('F', 'F', 'L', 'D')
	FProduct    = C4ID('F', 'P', 'R', 'O')
	FSmoke      = C4ID('F', 'S', 'M', 'O')
	FSupplier   = C4ID('F', 'S', 'U', 'P')
	Good        = C4ID('G', 'O', 'O', 'D')
	Ground      = C4ID('G', 'R', 'N', 'D')
	GroundObj   = C4ID('G', 'O', 'B', 'J')
	Image       = C4ID('I', 'M', 'G', 0)
	ImageList   = C4ID('I', 'M', 'G', '1')
	ImageList2D = C4ID('I', 'M', 'G', '2')
	ImageList3D = C4ID('I', 'M', 'G', '3')
	Menu        = C4ID('M', 'E', 'N', 'U')
	Misc        = C4ID('M', 'I', 'S', 'C')
	Pedestrian  = C4ID('P', 'A', 'S', 'S')
	RoadSign    = C4ID('S', 'I', 'G', 'N')
	Root        = C4ID('R', 'O', 'O', 'T')
	Smoke       = C4ID('S', 'M', 'O', 'K')
	Sound       = C4ID('S', 'O', 'U', 'N')
	Symbol      = C4ID('S', 'Y', 'M', 'B')
	Text        = C4ID('T', 'E', 'X', 'T')
	Tile        = C4ID('T', 'I', 'L', 'E')
	Tree        = C4ID('T', 'R', 'E', 'E')
	Tunnel      = C4ID('T', 'U', 'N', 'L')
	Vehicle     = C4ID('V', 'H', 'C', 'L')
	Way         = C4ID('W', 'A', 'Y', 0)
	WayObj      = C4ID('W', 'O', 'B', 'J')
	Xref        = C4ID('X', 'R', 'E', 'F')
)

// String renders the tag like %.4s: characters up to the first NUL.
func (t Type) String() string {
	b := []byte{byte(t), byte(t >> 8), byte(t >> 16), byte(t >> 24)}
	s := string(b)
	if i := strings.IndexByte(s, 0); i >= 0 {
		s = s[:i]
	}

	return s
}

// MarshalText renders the tag as text.
func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// ParseType converts a tag name such as "VHCL" or "WAY" back to a Type.
func ParseType(s string) (Type, bool) {
	if len(s) == 0 || len(s) > 4 {
		return 0, false
	}

	var b [4]byte
	copy(b[:], strings.ToUpper(s))

	return C4ID(b[0], b[1], b[2], b[3]), true
}
