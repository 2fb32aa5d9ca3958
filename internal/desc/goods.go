package desc

import "github.com/woozymasta/simpak/internal/checksum"

// Goods describes a kind of freight.
type Goods struct {
	Named
	Value      uint16 `json:"value"`
	Category   uint8  `json:"category"`
	SpeedBonus uint16 `json:"speed_bonus"`
	Weight     uint16 `json:"weight_per_unit"`
	Color      uint8  `json:"color"`
	Classes    uint8  `json:"classes"`
}

// Checksum hashes value, category, speed bonus and weight.
func (g *Goods) Checksum(c *checksum.Hash) {
	c.U16(g.Value).U8(g.Category).U16(g.SpeedBonus).U16(g.Weight)
}
