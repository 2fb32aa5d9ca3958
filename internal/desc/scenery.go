package desc

import "github.com/woozymasta/simpak/internal/checksum"

// CityCar describes a private car driving through towns.
type CityCar struct {
	Named
	Chance     uint16 `json:"chance"`
	TopSpeed   uint16 `json:"topspeed"`
	IntroDate  uint16 `json:"intro_date"`
	RetireDate uint16 `json:"retire_date"`
}

// Checksum hashes chance, speed and dates.
func (v *CityCar) Checksum(c *checksum.Hash) {
	c.U16(v.Chance).U16(v.TopSpeed).U16(v.IntroDate).U16(v.RetireDate)
}

// Pedestrian describes a walking person.
type Pedestrian struct {
	Named
	Chance        uint16 `json:"chance"`
	IntroDate     uint16 `json:"intro_date"`
	RetireDate    uint16 `json:"retire_date"`
	StepsPerFrame uint16 `json:"steps_per_frame"`
	Offset        uint16 `json:"offset"`
}

// Tree describes a tree.
type Tree struct {
	Named
	Climates     uint16 `json:"climates"`
	Distribution uint8  `json:"distribution"`
	Seasons      uint8  `json:"seasons"`
}

// Checksum hashes climates and distribution.
func (t *Tree) Checksum(c *checksum.Hash) {
	c.U16(t.Climates).U8(t.Distribution)
}

// GroundObj describes a decorative object on the ground, possibly moving.
type GroundObj struct {
	Named
	Climates     uint16  `json:"climates"`
	Distribution uint16  `json:"distribution"`
	TreesOnTop   bool    `json:"trees_on_top"`
	Speed        uint16  `json:"speed"`
	Waytype      Waytype `json:"waytype"`
	Price        int32   `json:"price"`
	Seasons      uint8   `json:"seasons"`
}

// Checksum hashes placement and removal cost.
func (g *GroundObj) Checksum(c *checksum.Hash) {
	c.U16(g.Climates).U16(g.Distribution).Bool(g.TreesOnTop).U16(g.Speed).
		U8(uint8(g.Waytype)).S32(g.Price)
}

// OutsideGround is the name of the ground drawn outside the map. Its image
// size defines the tile raster width.
const OutsideGround = "Outside"

// Ground describes a ground texture.
type Ground struct {
	Named
}

// Sound is a named sound effect.
type Sound struct {
	Named
	ID       int16  `json:"id"`
	Filename string `json:"filename,omitempty"`
}

// Skin is a set of images used by the interface: menus, cursors, symbols,
// miscellaneous images and smoke.
type Skin struct {
	Named
}
