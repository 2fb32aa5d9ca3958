package reader

import (
	"github.com/woozymasta/simpak/internal/decode"
	"github.com/woozymasta/simpak/internal/desc"
	"github.com/woozymasta/simpak/internal/obj"
	"github.com/woozymasta/simpak/internal/pakfile"
)

const (
	wayVersion      = 7
	wayObjVersion   = 2
	crossingVersion = 2
	signVersion     = 4

	defaultAxleLoad = 9999
)

type wayReader struct{}

func (wayReader) Type() obj.Type { return obj.Way }

func (wayReader) Read(_ pakfile.NodeInfo, b []byte) (any, error) {
	p := openPayload(b)
	w := &desc.Way{}

	if p.version == 0 {
		w.Waytype = desc.Waytype(p.first)
	}
	w.Price = p.U32()
	w.Maintenance = p.U32()
	w.TopSpeed = p.U32()
	w.MaxWeight = p.U32()

	switch {
	case p.version == 1:
		w.Waytype = desc.Waytype(p.U8())
	case p.version == 2:
		w.Waytype = desc.Waytype(p.U8())
		w.System = desc.SystemType(p.U8())
	case p.version >= 3:
		w.IntroDate = p.U16()
		w.RetireDate = p.U16()
		w.Waytype = desc.Waytype(p.U8())
		w.System = desc.SystemType(p.U8())
		if p.version >= 4 {
			w.DrawAsObj = p.Bool()
		}
		if p.version >= 5 {
			w.Seasons = p.U8()
		}
		if p.version >= 6 {
			w.AxleLoad = p.U16()
		}
		if p.version >= 7 {
			w.ClipBelow = p.Bool()
		}
	}

	if err := p.done(obj.Way, wayVersion); err != nil {
		return nil, err
	}

	if p.version < 3 {
		w.IntroDate = desc.DefaultIntroDate
		w.RetireDate = desc.DefaultRetireDate
	}
	if p.version < 6 {
		w.AxleLoad = defaultAxleLoad
	}
	if p.version < 7 {
		w.ClipBelow = true
	}
	// trams used to be tracks with a street system type
	if w.Waytype == desc.TrackWT && w.System == desc.TramST {
		w.Waytype = desc.TramWT
		w.System = desc.FlatST
	}

	return w, nil
}

func (wayReader) Register(env *Env, h obj.Handle, _ obj.Slot) error {
	w := data[*desc.Way](env, h)
	env.names(h, w)

	env.Xrefs.ObjForXref(obj.Way, w.Name, h)
	put(env, env.Reg.Ways, w.Name, w)
	env.sum(obj.Way, w.Name, w)

	return nil
}

func (wayReader) SuccessfullyLoaded(*Env) error { return nil }

// EncodeWay returns the newest way payload.
func EncodeWay(w *desc.Way) []byte {
	e := &decode.Writer{}
	return e.Version(wayVersion).U32(w.Price).U32(w.Maintenance).U32(w.TopSpeed).
		U32(w.MaxWeight).U16(w.IntroDate).U16(w.RetireDate).
		U8(uint8(w.Waytype)).U8(uint8(w.System)).Bool(w.DrawAsObj).
		U8(w.Seasons).U16(w.AxleLoad).Bool(w.ClipBelow).Bytes()
}

type wayObjReader struct{}

func (wayObjReader) Type() obj.Type { return obj.WayObj }

func (wayObjReader) Read(_ pakfile.NodeInfo, b []byte) (any, error) {
	p := openPayload(b)
	if p.legacy {
		return nil, &UnknownVersionError{Type: obj.WayObj, Version: 0}
	}

	w := &desc.WayObj{}
	w.Price = p.U32()
	w.Maintenance = p.U32()
	if p.version >= 2 {
		w.TopSpeed = p.U32()
	} else {
		w.TopSpeed = uint32(p.U16())
	}
	w.IntroDate = p.U16()
	w.RetireDate = p.U16()
	w.Waytype = desc.Waytype(p.U8())
	w.OwnWaytype = desc.Waytype(p.U8())

	if err := p.done(obj.WayObj, wayObjVersion); err != nil {
		return nil, err
	}

	return w, nil
}

func (wayObjReader) Register(env *Env, h obj.Handle, _ obj.Slot) error {
	w := data[*desc.WayObj](env, h)
	env.names(h, w)

	put(env, env.Reg.WayObjs, w.Name, w)
	env.sum(obj.WayObj, w.Name, w)

	return nil
}

func (wayObjReader) SuccessfullyLoaded(*Env) error { return nil }

type crossingReader struct{}

func (crossingReader) Type() obj.Type { return obj.Crossing }

func (crossingReader) Read(_ pakfile.NodeInfo, b []byte) (any, error) {
	p := openPayload(b)
	x := &desc.Crossing{Sound: desc.NoSound}

	if p.version == 0 {
		x.Waytypes[0] = desc.Waytype(p.first)
		x.Waytypes[1] = desc.Waytype(p.U16())
	} else {
		x.Waytypes[0] = desc.Waytype(p.U8())
		x.Waytypes[1] = desc.Waytype(p.U8())
	}
	x.TopSpeeds[0] = p.U16()
	x.TopSpeeds[1] = p.U16()

	if p.version >= 2 {
		x.OpenTime = p.U32()
		x.ClosedTime = p.U32()
		x.IntroDate = p.U16()
		x.RetireDate = p.U16()
	}
	if p.version >= 1 {
		x.Sound = int16(p.S8())
		x.SoundFile = p.soundName(x.Sound)
	}

	if err := p.done(obj.Crossing, crossingVersion); err != nil {
		return nil, err
	}

	if p.version < 2 {
		x.IntroDate = desc.DefaultIntroDate
		x.RetireDate = desc.DefaultRetireDate
	}

	return x, nil
}

func (crossingReader) Register(env *Env, h obj.Handle, _ obj.Slot) error {
	x := data[*desc.Crossing](env, h)
	env.names(h, x)

	if x.SoundFile != "" {
		x.Sound = env.Sounds.ID(x.SoundFile)
	}
	put(env, env.Reg.Crossings, x.Name, x)
	env.sum(obj.Crossing, x.Name, x)

	return nil
}

func (crossingReader) SuccessfullyLoaded(*Env) error { return nil }

// EncodeCrossing returns the newest crossing payload.
func EncodeCrossing(x *desc.Crossing) []byte {
	w := &decode.Writer{}
	w.Version(crossingVersion).U8(uint8(x.Waytypes[0])).U8(uint8(x.Waytypes[1])).
		U16(x.TopSpeeds[0]).U16(x.TopSpeeds[1]).U32(x.OpenTime).U32(x.ClosedTime).
		U16(x.IntroDate).U16(x.RetireDate).S8(int8(x.Sound))
	if x.Sound == desc.LoadSound {
		w.PString(x.SoundFile)
	}

	return w.Bytes()
}

type roadSignReader struct{}

func (roadSignReader) Type() obj.Type { return obj.RoadSign }

func (roadSignReader) Read(_ pakfile.NodeInfo, b []byte) (any, error) {
	p := openPayload(b)
	s := &desc.RoadSign{}

	if p.version == 0 {
		s.MinSpeed = p.first
		s.Flags = p.U8()
	} else {
		s.MinSpeed = p.U16()
		s.Price = p.U32()
		s.Flags = p.U8()
		if p.version >= 2 {
			s.Waytype = desc.Waytype(p.U8())
		}
		if p.version >= 3 {
			s.IntroDate = p.U16()
			s.RetireDate = p.U16()
		}
		if p.version >= 4 {
			s.OffsetLeft = p.S8()
		}
	}

	if err := p.done(obj.RoadSign, signVersion); err != nil {
		return nil, err
	}

	if p.version < 1 {
		s.Price = 500
	}
	if p.version < 2 {
		s.Waytype = desc.RoadWT
	}
	if p.version < 3 {
		s.IntroDate = desc.DefaultIntroDate
		s.RetireDate = desc.DefaultRetireDate
	}
	if p.version < 4 {
		s.OffsetLeft = 14
	}

	return s, nil
}

func (roadSignReader) Register(env *Env, h obj.Handle, _ obj.Slot) error {
	s := data[*desc.RoadSign](env, h)
	env.names(h, s)

	put(env, env.Reg.Signs, s.Name, s)
	env.sum(obj.RoadSign, s.Name, s)

	return nil
}

func (roadSignReader) SuccessfullyLoaded(*Env) error { return nil }

// EncodeRoadSign returns the newest sign payload.
func EncodeRoadSign(s *desc.RoadSign) []byte {
	w := &decode.Writer{}
	return w.Version(signVersion).U16(s.MinSpeed).U32(s.Price).U8(s.Flags).
		U8(uint8(s.Waytype)).U16(s.IntroDate).U16(s.RetireDate).S8(s.OffsetLeft).Bytes()
}
