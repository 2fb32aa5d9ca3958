package desc

import "github.com/woozymasta/simpak/internal/checksum"

// Way describes a road, track, canal, runway or power line.
type Way struct {
	Named
	Waytype     Waytype    `json:"waytype"`
	System      SystemType `json:"system_type"`
	Price       uint32     `json:"price"`
	Maintenance uint32     `json:"maintenance"`
	TopSpeed    uint32     `json:"topspeed"`
	MaxWeight   uint32     `json:"max_weight"`
	AxleLoad    uint16     `json:"axle_load"`
	IntroDate   uint16     `json:"intro_date"`
	RetireDate  uint16     `json:"retire_date"`
	DrawAsObj   bool       `json:"draw_as_obj"`
	Seasons     uint8      `json:"seasons"`
	ClipBelow   bool       `json:"clip_below"`
}

// Checksum hashes the gameplay fields.
func (w *Way) Checksum(c *checksum.Hash) {
	c.U32(w.Price).U32(w.Maintenance).U32(w.TopSpeed).U32(w.MaxWeight).
		U16(w.IntroDate).U16(w.RetireDate).U16(w.AxleLoad).
		U8(uint8(w.Waytype)).U8(uint8(w.System))
}

// WayObj describes an object built along a way, such as overhead lines.
type WayObj struct {
	Named
	Waytype     Waytype `json:"waytype"`
	OwnWaytype  Waytype `json:"own_waytype"`
	Price       uint32  `json:"price"`
	Maintenance uint32  `json:"maintenance"`
	TopSpeed    uint32  `json:"topspeed"`
	IntroDate   uint16  `json:"intro_date"`
	RetireDate  uint16  `json:"retire_date"`
}

// Checksum hashes the gameplay fields.
func (w *WayObj) Checksum(c *checksum.Hash) {
	c.U32(w.Price).U32(w.Maintenance).U32(w.TopSpeed).
		U16(w.IntroDate).U16(w.RetireDate).
		U8(uint8(w.Waytype)).U8(uint8(w.OwnWaytype))
}

// Crossing describes the junction of two waytypes.
type Crossing struct {
	Named
	Waytypes   [2]Waytype `json:"waytypes"`
	TopSpeeds  [2]uint16  `json:"topspeeds"`
	OpenTime   uint32     `json:"open_animation_time"`
	ClosedTime uint32     `json:"closed_animation_time"`
	IntroDate  uint16     `json:"intro_date"`
	RetireDate uint16     `json:"retire_date"`
	Sound      int16      `json:"sound"`
	SoundFile  string     `json:"sound_file,omitempty"`
}

// Checksum hashes both waytypes and speeds.
func (x *Crossing) Checksum(c *checksum.Hash) {
	c.U8(uint8(x.Waytypes[0])).U8(uint8(x.Waytypes[1])).
		U16(x.TopSpeeds[0]).U16(x.TopSpeeds[1]).
		U16(x.IntroDate).U16(x.RetireDate)
}

// Sign flags.
const (
	SignOneWay      uint8 = 1 << 0
	SignChooseSign  uint8 = 1 << 1
	SignPrivateRoad uint8 = 1 << 2
	SignSignal      uint8 = 1 << 3
	SignPreSignal   uint8 = 1 << 4
	SignOnlyBackimg uint8 = 1 << 5
	SignEndOfChoose uint8 = 1 << 7
)

// RoadSign describes a road sign or a signal.
type RoadSign struct {
	Named
	Waytype    Waytype `json:"waytype"`
	MinSpeed   uint16  `json:"min_speed"`
	Price      uint32  `json:"price"`
	Flags      uint8   `json:"flags"`
	OffsetLeft int8    `json:"offset_left"`
	IntroDate  uint16  `json:"intro_date"`
	RetireDate uint16  `json:"retire_date"`
}

// IsSignal reports whether the sign is a signal of any kind.
func (s *RoadSign) IsSignal() bool {
	return s.Flags&(SignSignal|SignPreSignal) != 0
}

// Checksum hashes the gameplay fields.
func (s *RoadSign) Checksum(c *checksum.Hash) {
	c.U16(s.MinSpeed).U32(s.Price).U8(s.Flags).U8(uint8(s.Waytype)).
		U16(s.IntroDate).U16(s.RetireDate)
}
