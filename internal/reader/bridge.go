package reader

import (
	"github.com/woozymasta/simpak/internal/decode"
	"github.com/woozymasta/simpak/internal/desc"
	"github.com/woozymasta/simpak/internal/obj"
	"github.com/woozymasta/simpak/internal/pakfile"
)

const (
	bridgeVersion = 9
	tunnelVersion = 5

	defaultBridgeMaintenance = 800
	defaultBridgeMaxWeight   = 999
)

type bridgeReader struct{}

func (bridgeReader) Type() obj.Type { return obj.Bridge }

func (bridgeReader) Read(_ pakfile.NodeInfo, b []byte) (any, error) {
	p := openPayload(b)
	d := &desc.Bridge{}

	if p.version == 0 {
		d.TopSpeed = p.first
		d.Price = p.U32()
		d.Waytype = desc.Waytype(p.U8())
	} else {
		d.TopSpeed = p.U16()
		d.Price = p.U32()
		d.Maintenance = p.U32()
		d.Waytype = desc.Waytype(p.U8())
	}
	if p.version >= 2 {
		d.PillarsEvery = p.U8()
		d.MaxLength = p.U8()
	}
	if p.version >= 3 {
		d.IntroDate = p.U16()
		d.RetireDate = p.U16()
	}
	if p.version >= 4 {
		d.PillarsAsymmetric = p.Bool()
	}
	if p.version >= 5 {
		d.MaxHeight = p.U8()
	}
	if p.version >= 6 {
		d.Seasons = p.U8()
	}
	if p.version >= 7 {
		d.AxleLoad = p.U16()
	}
	if p.version >= 8 {
		d.MaxWeight = p.U32()
	}
	if p.version >= 9 {
		d.ClipBelow = p.Bool()
	}

	if err := p.done(obj.Bridge, bridgeVersion); err != nil {
		return nil, err
	}

	if p.version < 1 {
		d.Maintenance = defaultBridgeMaintenance
	}
	if p.version < 3 {
		d.IntroDate = desc.DefaultIntroDate
		d.RetireDate = desc.DefaultRetireDate
	}
	if p.version < 7 {
		d.AxleLoad = defaultAxleLoad
	}
	if p.version < 8 {
		d.MaxWeight = defaultBridgeMaxWeight
	}
	if p.version < 9 {
		d.ClipBelow = true
	}

	return d, nil
}

func (bridgeReader) Register(env *Env, h obj.Handle, _ obj.Slot) error {
	d := data[*desc.Bridge](env, h)
	env.names(h, d)

	put(env, env.Reg.Bridges, d.Name, d)
	env.sum(obj.Bridge, d.Name, d)

	return nil
}

func (bridgeReader) SuccessfullyLoaded(*Env) error { return nil }

// EncodeBridge returns the newest bridge payload.
func EncodeBridge(d *desc.Bridge) []byte {
	w := &decode.Writer{}
	return w.Version(bridgeVersion).U16(d.TopSpeed).U32(d.Price).U32(d.Maintenance).
		U8(uint8(d.Waytype)).U8(d.PillarsEvery).U8(d.MaxLength).
		U16(d.IntroDate).U16(d.RetireDate).Bool(d.PillarsAsymmetric).
		U8(d.MaxHeight).U8(d.Seasons).U16(d.AxleLoad).U32(d.MaxWeight).
		Bool(d.ClipBelow).Bytes()
}

type tunnelReader struct{}

func (tunnelReader) Type() obj.Type { return obj.Tunnel }

func (tunnelReader) Read(_ pakfile.NodeInfo, b []byte) (any, error) {
	p := openPayload(b)
	d := &desc.Tunnel{}

	if p.version == 0 {
		d.TopSpeed = uint32(p.first)
	} else {
		d.TopSpeed = p.U32()
	}
	d.Price = p.U32()
	d.Maintenance = p.U32()
	d.Waytype = desc.Waytype(p.U8())

	if p.version >= 2 {
		d.IntroDate = p.U16()
		d.RetireDate = p.U16()
	}
	if p.version >= 3 {
		d.Seasons = p.U8()
	}
	if p.version >= 4 {
		d.HasWay = p.Bool()
	}
	if p.version >= 5 {
		d.BroadPortals = p.Bool()
		d.AxleLoad = p.U16()
	}

	if err := p.done(obj.Tunnel, tunnelVersion); err != nil {
		return nil, err
	}

	if p.version < 2 {
		d.IntroDate = desc.DefaultIntroDate
		d.RetireDate = desc.DefaultRetireDate
	}
	if p.version < 5 {
		d.AxleLoad = defaultAxleLoad
	}

	return d, nil
}

func (tunnelReader) Register(env *Env, h obj.Handle, _ obj.Slot) error {
	d := data[*desc.Tunnel](env, h)
	env.names(h, d)

	put(env, env.Reg.Tunnels, d.Name, d)
	env.sum(obj.Tunnel, d.Name, d)

	if d.HasWay {
		last := len(env.Arena.Get(h).Children) - desc.TunnelWayFromEnd
		env.OnResolved(func() { d.Way = childData[*desc.Way](env, h, last) })
	}

	return nil
}

func (tunnelReader) SuccessfullyLoaded(*Env) error { return nil }

// EncodeTunnel returns the newest tunnel payload.
func EncodeTunnel(d *desc.Tunnel) []byte {
	w := &decode.Writer{}
	return w.Version(tunnelVersion).U32(d.TopSpeed).U32(d.Price).U32(d.Maintenance).
		U8(uint8(d.Waytype)).U16(d.IntroDate).U16(d.RetireDate).U8(d.Seasons).
		Bool(d.HasWay).Bool(d.BroadPortals).U16(d.AxleLoad).Bytes()
}
