package reader

import (
	"github.com/woozymasta/simpak/internal/decode"
	"github.com/woozymasta/simpak/internal/desc"
	"github.com/woozymasta/simpak/internal/obj"
	"github.com/woozymasta/simpak/internal/pakfile"
)

const vehicleVersion = 11

// legacyWaytypes maps the waytype field of unversioned vehicles.
var legacyWaytypes = map[uint16]desc.Waytype{
	1:  desc.TrackWT,
	2:  desc.RoadWT,
	3:  desc.WaterWT,
	4:  desc.OverheadWT, // electrified track, split by the fixups
	16: desc.AirWT,
}

type vehicleReader struct{}

func (vehicleReader) Type() obj.Type { return obj.Vehicle }

func (vehicleReader) Read(_ pakfile.NodeInfo, b []byte) (any, error) {
	v, err := decodeVehicle(b)
	if err != nil {
		return nil, err
	}

	return v, nil
}

// decodeVehicle reads the fields as stored and applies the fixups of old
// versions.
func decodeVehicle(b []byte) (*desc.Vehicle, error) {
	p := openPayload(b)
	v, err := readVehicleFields(&p)
	if err != nil {
		return nil, err
	}
	fixVehicle(v, p.version)

	return v, nil
}

func readVehicleFields(p *payload) (*desc.Vehicle, error) {
	v := &desc.Vehicle{}

	switch {
	case p.version == 0:
		wt, ok := legacyWaytypes[p.first]
		if !ok {
			wt = desc.InvalidWT
		}
		v.Waytype = wt
		v.Capacity = p.U16()
		v.Price = p.U32()
		v.TopSpeed = p.U16()
		v.Weight = uint32(p.U16())
		v.Power = uint32(p.U16())
		v.RunningCost = p.U16()
		v.Sound = p.S16()
		v.LeaderCount = uint8(p.U16())
		v.TrailerCount = uint8(p.U16())
		v.IntroDate = desc.DefaultIntroYear * 16
		v.Gear = 64

	case p.version <= 4:
		v.Price = p.U32()
		v.Capacity = p.U16()
		v.TopSpeed = p.U16()
		v.Weight = uint32(p.U16())
		v.Power = uint32(p.U16())
		v.RunningCost = p.U16()
		v.IntroDate = p.U16()
		if p.version >= 3 {
			v.RetireDate = p.U16()
		}
		v.Gear = uint16(p.U8())
		v.Waytype = desc.Waytype(p.U8())
		v.Sound = int16(p.S8())
		v.LeaderCount = p.U8()
		v.TrailerCount = p.U8()
		if p.version >= 2 {
			v.Engine = desc.EngineType(p.U8())
		}

	case p.version <= vehicleVersion:
		v.Price = p.U32()
		v.Capacity = p.U16()
		v.TopSpeed = p.U16()
		if p.version >= 10 {
			v.Weight = p.U32()
		} else {
			v.Weight = uint32(p.U16())
		}
		v.Power = p.U32()
		v.RunningCost = p.U16()
		v.IntroDate = p.U16()
		v.RetireDate = p.U16()
		if p.version >= 6 {
			v.Gear = p.U16()
		} else {
			v.Gear = uint16(p.U8())
		}
		v.Waytype = desc.Waytype(p.U8())
		v.Sound = int16(p.S8())
		v.LeaderCount = p.U8()
		v.TrailerCount = p.U8()
		v.Engine = desc.EngineType(p.U8())
		if p.version >= 7 {
			v.Len = p.U8()
		}
		if p.version >= 8 {
			v.FreightImageType = p.U8()
		}
		if p.version >= 9 {
			v.FixedCost = p.U32()
		}
		if p.version >= 11 {
			v.LoadingTime = p.U16()
			v.AxleLoad = p.U16()
		}
	}

	if p.version > 0 {
		v.SoundFile = p.soundName(v.Sound)
	}
	if err := p.done(obj.Vehicle, vehicleVersion); err != nil {
		return nil, err
	}

	return v, nil
}

// fixVehicle converts the fields of old layouts to current units.
func fixVehicle(v *desc.Vehicle, version int) {
	if version < 2 {
		if v.Sound == 3 {
			v.Engine = desc.Steam
		} else {
			v.Engine = desc.Diesel
		}
	}
	if version < 3 {
		v.RetireDate = desc.DefaultRetireYear * 16
	}
	if version < 4 && v.Waytype == desc.OverheadWT {
		v.Waytype = desc.TrackWT
		v.Engine = desc.Electric
	}
	if version < 5 {
		v.IntroDate = desc.MonthsFromBase16(v.IntroDate)
		v.RetireDate = desc.MonthsFromBase16(v.RetireDate)
	}
	if version < 7 {
		v.Len = 8
	}
	if version < 8 {
		v.FreightImageType = 0
	}
	if version < 9 {
		v.FixedCost = 0
	}
	if version < 10 {
		v.Weight *= 1000
	}
	if version < 11 {
		v.LoadingTime = 1000
		v.AxleLoad = uint16(v.Weight / 1000)
	}
	if v.TopSpeed < 1 {
		v.TopSpeed = 1
	}
}

func (vehicleReader) Register(env *Env, h obj.Handle, _ obj.Slot) error {
	v := data[*desc.Vehicle](env, h)
	env.names(h, v)

	if v.SoundFile != "" {
		v.Sound = env.Sounds.ID(v.SoundFile)
	}

	env.Xrefs.ObjForXref(obj.Vehicle, v.Name, h)
	put(env, env.Reg.Vehicles, v.Name, v)
	env.sum(obj.Vehicle, v.Name, v)

	env.OnResolved(func() { linkVehicle(env, h, v) })

	return nil
}

// linkVehicle reads the resolved freight and coupling children of h.
func linkVehicle(env *Env, h obj.Handle, v *desc.Vehicle) {
	v.Freight = childData[*desc.Goods](env, h, desc.VehicleFreightChild)

	v.Leaders = make([]*desc.Vehicle, v.LeaderCount)
	for i := range v.Leaders {
		v.Leaders[i] = childData[*desc.Vehicle](env, h, desc.VehicleChainChild+i)
	}

	first := desc.VehicleChainChild + int(v.LeaderCount)
	v.Trailers = make([]*desc.Vehicle, v.TrailerCount)
	for i := range v.Trailers {
		v.Trailers[i] = childData[*desc.Vehicle](env, h, first+i)
	}
}

func (vehicleReader) SuccessfullyLoaded(*Env) error { return nil }

// EncodeVehicle returns the newest vehicle payload.
func EncodeVehicle(v *desc.Vehicle) []byte {
	w := &decode.Writer{}
	w.Version(vehicleVersion).U32(v.Price).U16(v.Capacity).U16(v.TopSpeed).
		U32(v.Weight).U32(v.Power).U16(v.RunningCost).
		U16(v.IntroDate).U16(v.RetireDate).U16(v.Gear).
		U8(uint8(v.Waytype)).S8(int8(v.Sound)).
		U8(v.LeaderCount).U8(v.TrailerCount).U8(uint8(v.Engine)).
		U8(v.Len).U8(v.FreightImageType).U32(v.FixedCost).
		U16(v.LoadingTime).U16(v.AxleLoad)
	if v.Sound == desc.LoadSound {
		w.PString(v.SoundFile)
	}

	return w.Bytes()
}
