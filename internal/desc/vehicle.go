package desc

import "github.com/woozymasta/simpak/internal/checksum"

// EngineType is the propulsion of a vehicle.
type EngineType uint8

// Engine types.
const (
	Unknown EngineType = iota
	Steam
	Diesel
	Electric
	Bio
	Sail
	Fuel
	Hydrogen
	Battery
)

// Vehicle child layout.
const (
	VehicleFreightChild = 2
	VehicleSmokeChild   = 3
	VehicleChainChild   = 6
)

// AnyVehicleName is the name of the sentinel vehicle matching any neighbour
// in a coupling constraint.
const AnyVehicleName = "any"

// Vehicle describes a vehicle type.
type Vehicle struct {
	Named
	Waytype          Waytype    `json:"waytype"`
	Engine           EngineType `json:"engine"`
	Price            uint32     `json:"price"`
	Capacity         uint16     `json:"capacity"`
	LoadingTime      uint16     `json:"loading_time"`
	TopSpeed         uint16     `json:"topspeed"`
	Weight           uint32     `json:"weight"`
	AxleLoad         uint16     `json:"axle_load"`
	Power            uint32     `json:"power"`
	Gear             uint16     `json:"gear"`
	RunningCost      uint16     `json:"running_cost"`
	FixedCost        uint32     `json:"fixed_cost"`
	IntroDate        uint16     `json:"intro_date"`
	RetireDate       uint16     `json:"retire_date"`
	Sound            int16      `json:"sound"`
	SoundFile        string     `json:"sound_file,omitempty"`
	Len              uint8      `json:"length"`
	LeaderCount      uint8      `json:"leader_count"`
	TrailerCount     uint8      `json:"trailer_count"`
	FreightImageType uint8      `json:"freight_image_type"`

	Freight  *Goods     `json:"-"`
	Leaders  []*Vehicle `json:"-"`
	Trailers []*Vehicle `json:"-"`
}

// IsAny reports whether v is the coupling wildcard.
func (v *Vehicle) IsAny() bool { return v != nil && v.Name == AnyVehicleName }

// CanLead reports whether next may follow v. No trailer list means anything
// may follow, a nil entry allows ending the convoy.
func (v *Vehicle) CanLead(next *Vehicle) bool {
	if len(v.Trailers) == 0 {
		return true
	}
	for _, t := range v.Trailers {
		if t == next || (t.IsAny() && next != nil) {
			return true
		}
	}

	return false
}

// CanFollow reports whether v may be coupled behind prev.
func (v *Vehicle) CanFollow(prev *Vehicle) bool {
	if len(v.Leaders) == 0 {
		return true
	}
	for _, l := range v.Leaders {
		if l == prev || (l.IsAny() && prev != nil) {
			return true
		}
	}

	return false
}

// Checksum hashes the gameplay fields in on-disk order.
func (v *Vehicle) Checksum(c *checksum.Hash) {
	c.U8(uint8(v.Waytype)).U16(v.Capacity).U32(v.Price).U16(v.TopSpeed).
		U16(v.Gear).U32(v.Weight).U16(v.AxleLoad).U32(v.Power).
		U16(v.RunningCost).U32(v.FixedCost).U16(v.IntroDate).U16(v.RetireDate).
		U8(v.Len).U8(uint8(v.Engine)).U8(v.LeaderCount).U8(v.TrailerCount).
		U16(v.LoadingTime)
}
