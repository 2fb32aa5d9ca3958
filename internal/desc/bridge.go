package desc

import "github.com/woozymasta/simpak/internal/checksum"

// Bridge describes a bridge type.
type Bridge struct {
	Named
	Waytype           Waytype `json:"waytype"`
	TopSpeed          uint16  `json:"topspeed"`
	Price             uint32  `json:"price"`
	Maintenance       uint32  `json:"maintenance"`
	PillarsEvery      uint8   `json:"pillars_every"`
	PillarsAsymmetric bool    `json:"pillars_asymmetric"`
	MaxLength         uint8   `json:"max_length"`
	MaxHeight         uint8   `json:"max_height"`
	MaxWeight         uint32  `json:"max_weight"`
	AxleLoad          uint16  `json:"axle_load"`
	IntroDate         uint16  `json:"intro_date"`
	RetireDate        uint16  `json:"retire_date"`
	Seasons           uint8   `json:"seasons"`
	ClipBelow         bool    `json:"clip_below"`
}

// Checksum hashes the gameplay fields.
func (b *Bridge) Checksum(c *checksum.Hash) {
	c.U8(uint8(b.Waytype)).U16(b.TopSpeed).U32(b.Price).U32(b.Maintenance).
		U8(b.PillarsEvery).Bool(b.PillarsAsymmetric).U8(b.MaxLength).
		U8(b.MaxHeight).U32(b.MaxWeight).U16(b.AxleLoad).
		U16(b.IntroDate).U16(b.RetireDate)
}

// Tunnel child layout: the way reference is the last child when present.
const TunnelWayFromEnd = 1

// Tunnel describes a tunnel type.
type Tunnel struct {
	Named
	Waytype      Waytype `json:"waytype"`
	TopSpeed     uint32  `json:"topspeed"`
	Price        uint32  `json:"price"`
	Maintenance  uint32  `json:"maintenance"`
	AxleLoad     uint16  `json:"axle_load"`
	IntroDate    uint16  `json:"intro_date"`
	RetireDate   uint16  `json:"retire_date"`
	Seasons      uint8   `json:"seasons"`
	HasWay       bool    `json:"has_way"`
	BroadPortals bool    `json:"broad_portals"`

	Way *Way `json:"-"`
}

// Checksum hashes the gameplay fields.
func (t *Tunnel) Checksum(c *checksum.Hash) {
	c.U8(uint8(t.Waytype)).U32(t.TopSpeed).U32(t.Price).U32(t.Maintenance).
		U16(t.AxleLoad).U16(t.IntroDate).U16(t.RetireDate).Bool(t.HasWay)
}
