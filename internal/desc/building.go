package desc

import (
	"strings"

	"github.com/woozymasta/simpak/internal/checksum"
)

// BuildingType classifies a building.
type BuildingType uint8

// Building types.
const (
	UnknownBuilding  BuildingType = 0
	AttractionCity   BuildingType = 1
	AttractionLand   BuildingType = 2
	Monument         BuildingType = 3
	FactoryBuilding  BuildingType = 4
	Townhall         BuildingType = 5
	OtherBuilding    BuildingType = 6
	Headquarters     BuildingType = 7
	Dock             BuildingType = 11
	FlatDock         BuildingType = 12
	Depot            BuildingType = 33
	GenericStop      BuildingType = 34
	GenericExtension BuildingType = 35
	CityRes          BuildingType = 37
	CityCom          BuildingType = 38
	CityInd          BuildingType = 39
)

// IsStop reports whether buildings of type t serve a station.
func (t BuildingType) IsStop() bool {
	switch t {
	case Dock, FlatDock, GenericStop, GenericExtension:
		return true
	}

	return false
}

// Station services.
const (
	EnablesPassengers uint8 = 1 << 0
	EnablesMail       uint8 = 1 << 1
	EnablesFreight    uint8 = 1 << 2

	// EnablesUnset marks buildings from formats without a service mask.
	EnablesUnset uint8 = 0x80
)

// Building flags.
const (
	BuildingNoInfo      uint8 = 1 << 0
	BuildingNoConstruct uint8 = 1 << 1
	BuildingNeedsGround uint8 = 1 << 2
)

// Underground placement.
const (
	AboveGround uint8 = 1
	BelowGround uint8 = 2
	AnyLevel    uint8 = AboveGround | BelowGround
)

// Building child layout: tiles follow name and copyright.
const BuildingTileChild = 2

// Building describes a house, station, depot, factory or monument.
type Building struct {
	Named
	Type             BuildingType `json:"type"`
	Waytype          Waytype      `json:"waytype"`
	Level            uint16       `json:"level"`
	ExtraData        uint32       `json:"extra_data"`
	SizeX            uint16       `json:"size_x"`
	SizeY            uint16       `json:"size_y"`
	Layouts          uint8        `json:"layouts"`
	Flags            uint8        `json:"flags"`
	Chance           uint8        `json:"chance"`
	Climates         uint16       `json:"climates"`
	Enables          uint8        `json:"enables"`
	IntroDate        uint16       `json:"intro_date"`
	RetireDate       uint16       `json:"retire_date"`
	AnimationTime    uint16       `json:"animation_time"`
	AllowUnderground uint8        `json:"allow_underground"`
	Capacity         uint16       `json:"capacity"`
	Maintenance      int32        `json:"maintenance"`
	Price            int32        `json:"price"`
	PreservationDate uint16       `json:"preservation_date"`

	Tiles []*Tile `json:"-"`
}

// stopSuffixes maps the name endings of old station buildings to the goods
// they handle. The first match wins.
var stopSuffixes = []struct {
	suffix  string
	enables uint8
}{
	{"PostOffice", EnablesMail},
	{"Post", EnablesMail},
	{"Mail", EnablesMail},
	{"Freight", EnablesFreight},
	{"Cargo", EnablesFreight},
	{"Goods", EnablesFreight},
	{"Ware", EnablesFreight},
}

// InferEnables fills the service mask of stops from formats that had none,
// using the name suffix. It returns true when the mask was changed.
func (b *Building) InferEnables() bool {
	if b.Enables != EnablesUnset {
		return false
	}

	if !b.Type.IsStop() {
		b.Enables = 0
		return true
	}

	for _, s := range stopSuffixes {
		if strings.HasSuffix(b.Name, s.suffix) {
			b.Enables = s.enables
			return true
		}
	}
	b.Enables = EnablesPassengers | EnablesMail

	return true
}

// Checksum hashes type, size, level and services.
func (b *Building) Checksum(c *checksum.Hash) {
	c.U8(uint8(b.Type)).U8(uint8(b.Waytype)).U16(b.Level).U32(b.ExtraData).
		U16(b.SizeX).U16(b.SizeY).U8(b.Layouts).U8(b.Flags).U8(b.Enables).
		U16(b.IntroDate).U16(b.RetireDate).U16(b.Capacity).
		S32(b.Maintenance).S32(b.Price)
}

// Tile is one tile of a building layout.
type Tile struct {
	Index   uint16 `json:"index"`
	Phases  uint16 `json:"phases"`
	Seasons uint8  `json:"seasons"`
}
