package reader

import (
	"github.com/woozymasta/simpak/internal/decode"
	"github.com/woozymasta/simpak/internal/desc"
	"github.com/woozymasta/simpak/internal/obj"
	"github.com/woozymasta/simpak/internal/pakfile"
)

const (
	buildingVersion = 10
	tileVersion     = 2

	defaultAnimationTime = 300
)

// oldBuilding is the meaning of a building type code before version 5.
type oldBuilding struct {
	typ     desc.BuildingType
	waytype desc.Waytype
	enables uint8
}

var oldBuildingTypes = map[uint16]oldBuilding{
	1:  {desc.AttractionCity, desc.InvalidWT, 0},
	2:  {desc.AttractionLand, desc.InvalidWT, 0},
	3:  {desc.Monument, desc.InvalidWT, 0},
	4:  {desc.FactoryBuilding, desc.InvalidWT, 0},
	5:  {desc.Townhall, desc.InvalidWT, 0},
	6:  {desc.OtherBuilding, desc.InvalidWT, 0},
	7:  {desc.Headquarters, desc.InvalidWT, 0},
	8:  {desc.GenericStop, desc.TrackWT, desc.EnablesUnset},      // train station
	9:  {desc.GenericStop, desc.RoadWT, desc.EnablesUnset},       // bus stop
	10: {desc.GenericStop, desc.RoadWT, desc.EnablesFreight},     // loading bay
	11: {desc.Dock, desc.WaterWT, desc.EnablesUnset},             // harbour
	12: {desc.GenericStop, desc.AirWT, desc.EnablesUnset},        // airport
	13: {desc.GenericStop, desc.MonorailWT, desc.EnablesUnset},   // monorail stop
	16: {desc.GenericExtension, desc.TrackWT, desc.EnablesUnset}, // station extension
	17: {desc.GenericExtension, desc.RoadWT, desc.EnablesUnset},
	18: {desc.GenericExtension, desc.RoadWT, desc.EnablesFreight},
	19: {desc.GenericExtension, desc.WaterWT, desc.EnablesUnset},
	20: {desc.GenericExtension, desc.AirWT, desc.EnablesUnset},
	21: {desc.GenericExtension, desc.MonorailWT, desc.EnablesUnset},
	33: {desc.Depot, desc.InvalidWT, 0},
	37: {desc.CityRes, desc.InvalidWT, 0},
	38: {desc.CityCom, desc.InvalidWT, 0},
	39: {desc.CityInd, desc.InvalidWT, 0},
}

type buildingReader struct{}

func (buildingReader) Type() obj.Type { return obj.Building }

func (buildingReader) Read(_ pakfile.NodeInfo, b []byte) (any, error) {
	p := openPayload(b)
	d := &desc.Building{}

	var code uint16
	if p.version == 0 {
		code = p.first
		d.Level = p.U16()
		d.ExtraData = p.U32()
		d.SizeX = p.U16()
		d.SizeY = p.U16()
		d.Layouts = uint8(p.U32())
	} else {
		code = uint16(p.U8())
		d.Level = p.U16()
		d.ExtraData = p.U32()
		d.SizeX = p.U16()
		d.SizeY = p.U16()
		d.Layouts = p.U8()
		d.Flags = p.U8()
	}
	if p.version >= 2 {
		d.Chance = p.U8()
	}
	if p.version >= 3 {
		d.Climates = p.U16()
	}
	if p.version >= 4 {
		d.Enables = p.U8()
	}
	if p.version >= 5 {
		d.IntroDate = p.U16()
		d.RetireDate = p.U16()
	}
	if p.version >= 6 {
		d.AnimationTime = p.U16()
	}
	if p.version >= 7 {
		d.AllowUnderground = p.U8()
	}
	if p.version >= 8 {
		d.Waytype = desc.Waytype(p.U8())
	}
	if p.version >= 9 {
		d.Capacity = p.U16()
		d.Maintenance = p.S32()
		d.Price = p.S32()
	}
	if p.version >= 10 {
		d.PreservationDate = p.U16()
	}

	if err := p.done(obj.Building, buildingVersion); err != nil {
		return nil, err
	}
	fixBuilding(d, code, p.version)

	return d, nil
}

// fixBuilding converts old type codes and fills fields missing from old
// layouts.
func fixBuilding(d *desc.Building, code uint16, version int) {
	d.Type = desc.BuildingType(code)
	if version < 5 {
		old, ok := oldBuildingTypes[code]
		if !ok {
			old = oldBuilding{typ: desc.UnknownBuilding, waytype: desc.InvalidWT}
		}
		d.Type = old.typ
		d.Waytype = old.waytype
		d.Enables = old.enables
		d.IntroDate = desc.DefaultIntroDate
		d.RetireDate = desc.DefaultRetireDate
	}

	if version < 2 {
		d.Chance = 100
	}
	if version < 3 {
		d.Climates = desc.AllClimates
	}
	if version < 6 {
		d.AnimationTime = defaultAnimationTime
	}
	if version < 7 {
		if d.Type.IsStop() {
			d.AllowUnderground = desc.AnyLevel
		} else {
			d.AllowUnderground = desc.AboveGround
		}
	}
	if version >= 5 && version < 8 && (d.Type.IsStop() || d.Type == desc.Depot) {
		d.Waytype = desc.Waytype(d.ExtraData)
	}
	if version < 9 {
		d.Capacity = d.Level * 32
		d.Maintenance = desc.CostMagic
		d.Price = desc.CostMagic
	}
}

func (buildingReader) Register(env *Env, h obj.Handle, _ obj.Slot) error {
	d := data[*desc.Building](env, h)
	env.names(h, d)

	if d.InferEnables() {
		env.Log.WithField("name", d.Name).WithField("enables", d.Enables).
			Debug("station services inferred from name")
	}

	d.Tiles = nil
	for i := desc.BuildingTileChild; i < len(env.Arena.Get(h).Children); i++ {
		if t := childData[*desc.Tile](env, h, i); t != nil {
			d.Tiles = append(d.Tiles, t)
		}
	}

	put(env, env.Reg.Buildings, d.Name, d)
	env.sum(obj.Building, d.Name, d)

	return nil
}

func (buildingReader) SuccessfullyLoaded(*Env) error { return nil }

// EncodeBuilding returns the newest building payload.
func EncodeBuilding(d *desc.Building) []byte {
	w := &decode.Writer{}
	return w.Version(buildingVersion).U8(uint8(d.Type)).U16(d.Level).U32(d.ExtraData).
		U16(d.SizeX).U16(d.SizeY).U8(d.Layouts).U8(d.Flags).U8(d.Chance).
		U16(d.Climates).U8(d.Enables).U16(d.IntroDate).U16(d.RetireDate).
		U16(d.AnimationTime).U8(d.AllowUnderground).U8(uint8(d.Waytype)).
		U16(d.Capacity).S32(d.Maintenance).S32(d.Price).U16(d.PreservationDate).Bytes()
}

type tileReader struct{ nop }

func (tileReader) Type() obj.Type { return obj.Tile }

func (tileReader) Read(_ pakfile.NodeInfo, b []byte) (any, error) {
	p := openPayload(b)
	t := &desc.Tile{Phases: 1, Seasons: 1}

	if p.version == 0 {
		t.Index = p.first
	} else {
		t.Phases = p.U16()
		t.Index = p.U16()
		if p.version >= 2 {
			t.Seasons = p.U8()
		}
	}

	if err := p.done(obj.Tile, tileVersion); err != nil {
		return nil, err
	}

	return t, nil
}

// EncodeTile returns the newest tile payload.
func EncodeTile(t *desc.Tile) []byte {
	w := &decode.Writer{}
	return w.Version(tileVersion).U16(t.Phases).U16(t.Index).U8(t.Seasons).Bytes()
}
