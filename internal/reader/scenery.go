package reader

import (
	"github.com/woozymasta/simpak/internal/decode"
	"github.com/woozymasta/simpak/internal/desc"
	"github.com/woozymasta/simpak/internal/obj"
	"github.com/woozymasta/simpak/internal/pakfile"
)

const (
	cityCarVersion    = 2
	pedestrianVersion = 2
	treeVersion       = 2
	groundObjVersion  = 1

	defaultPedestrianOffset = 20
)

type cityCarReader struct{}

func (cityCarReader) Type() obj.Type { return obj.CityCar }

func (cityCarReader) Read(_ pakfile.NodeInfo, b []byte) (any, error) {
	p := openPayload(b)
	c := &desc.CityCar{}

	if p.version == 0 {
		c.Chance = p.first
		c.TopSpeed = p.U16()
	} else {
		c.Chance = p.U16()
		c.TopSpeed = p.U16()
		c.IntroDate = p.U16()
		c.RetireDate = p.U16()
	}

	if err := p.done(obj.CityCar, cityCarVersion); err != nil {
		return nil, err
	}

	switch p.version {
	case 0:
		c.IntroDate = desc.DefaultIntroDate
		c.RetireDate = desc.DefaultRetireDate
	case 1:
		c.IntroDate = desc.MonthsFromBase16(c.IntroDate)
		c.RetireDate = desc.MonthsFromBase16(c.RetireDate)
	}

	return c, nil
}

func (cityCarReader) Register(env *Env, h obj.Handle, _ obj.Slot) error {
	c := data[*desc.CityCar](env, h)
	env.names(h, c)

	put(env, env.Reg.CityCars, c.Name, c)
	env.sum(obj.CityCar, c.Name, c)

	return nil
}

func (cityCarReader) SuccessfullyLoaded(*Env) error { return nil }

// EncodeCityCar returns the newest city car payload.
func EncodeCityCar(c *desc.CityCar) []byte {
	w := &decode.Writer{}
	return w.Version(cityCarVersion).U16(c.Chance).U16(c.TopSpeed).
		U16(c.IntroDate).U16(c.RetireDate).Bytes()
}

type pedestrianReader struct{}

func (pedestrianReader) Type() obj.Type { return obj.Pedestrian }

func (pedestrianReader) Read(_ pakfile.NodeInfo, b []byte) (any, error) {
	p := openPayload(b)
	d := &desc.Pedestrian{}

	if p.version == 0 {
		d.Chance = p.first
	} else {
		d.Chance = p.U16()
	}
	if p.version >= 2 {
		d.IntroDate = p.U16()
		d.RetireDate = p.U16()
		d.StepsPerFrame = p.U16()
		d.Offset = p.U16()
	}

	if err := p.done(obj.Pedestrian, pedestrianVersion); err != nil {
		return nil, err
	}

	if p.version < 2 {
		d.IntroDate = desc.DefaultIntroDate
		d.RetireDate = desc.DefaultRetireDate
		d.Offset = defaultPedestrianOffset
	}

	return d, nil
}

func (pedestrianReader) Register(env *Env, h obj.Handle, _ obj.Slot) error {
	d := data[*desc.Pedestrian](env, h)
	env.names(h, d)
	put(env, env.Reg.Pedestrians, d.Name, d)

	return nil
}

func (pedestrianReader) SuccessfullyLoaded(*Env) error { return nil }

type treeReader struct{}

func (treeReader) Type() obj.Type { return obj.Tree }

func (treeReader) Read(_ pakfile.NodeInfo, b []byte) (any, error) {
	p := openPayload(b)
	t := &desc.Tree{Climates: desc.AllClimates, Seasons: 1}

	if p.version == 0 {
		t.Distribution = uint8(p.first)
	} else {
		t.Climates = p.U16()
		t.Distribution = p.U8()
		if p.version >= 2 {
			t.Seasons = p.U8()
		}
	}

	if err := p.done(obj.Tree, treeVersion); err != nil {
		return nil, err
	}

	return t, nil
}

func (treeReader) Register(env *Env, h obj.Handle, _ obj.Slot) error {
	t := data[*desc.Tree](env, h)
	env.names(h, t)

	put(env, env.Reg.Trees, t.Name, t)
	env.sum(obj.Tree, t.Name, t)

	return nil
}

// SuccessfullyLoaded numbers the trees for savegames.
func (treeReader) SuccessfullyLoaded(env *Env) error {
	return env.Reg.AssignTreeIDs()
}

// EncodeTree returns the newest tree payload.
func EncodeTree(t *desc.Tree) []byte {
	w := &decode.Writer{}
	return w.Version(treeVersion).U16(t.Climates).U8(t.Distribution).U8(t.Seasons).Bytes()
}

type groundObjReader struct{}

func (groundObjReader) Type() obj.Type { return obj.GroundObj }

func (groundObjReader) Read(_ pakfile.NodeInfo, b []byte) (any, error) {
	p := openPayload(b)
	if p.legacy {
		return nil, &UnknownVersionError{Type: obj.GroundObj, Version: 0}
	}

	g := &desc.GroundObj{}
	g.Climates = p.U16()
	g.Distribution = p.U16()
	g.TreesOnTop = p.Bool()
	g.Speed = p.U16()
	g.Waytype = desc.Waytype(p.U8())
	g.Price = p.S32()
	g.Seasons = p.U8()

	if err := p.done(obj.GroundObj, groundObjVersion); err != nil {
		return nil, err
	}

	return g, nil
}

func (groundObjReader) Register(env *Env, h obj.Handle, _ obj.Slot) error {
	g := data[*desc.GroundObj](env, h)
	env.names(h, g)

	put(env, env.Reg.GroundObjs, g.Name, g)
	env.sum(obj.GroundObj, g.Name, g)

	return nil
}

// SuccessfullyLoaded numbers the ground objects for savegames.
func (groundObjReader) SuccessfullyLoaded(env *Env) error {
	return env.Reg.AssignGroundObjIDs()
}
