package reader

import (
	"github.com/woozymasta/simpak/internal/decode"
	"github.com/woozymasta/simpak/internal/desc"
	"github.com/woozymasta/simpak/internal/obj"
	"github.com/woozymasta/simpak/internal/pakfile"
)

const goodsVersion = 4

type goodsReader struct{}

func (goodsReader) Type() obj.Type { return obj.Good }

func (goodsReader) Read(_ pakfile.NodeInfo, b []byte) (any, error) {
	p := openPayload(b)
	g := &desc.Goods{}

	switch p.version {
	case 0:
		g.Value = p.first
		g.Category = uint8(p.U16())
		g.SpeedBonus = p.U16()
	case 1:
		g.Value = p.U16()
		g.Category = uint8(p.U16())
		g.SpeedBonus = p.U16()
	case 2:
		g.Value = p.U16()
		g.Category = uint8(p.U16())
		g.SpeedBonus = p.U16()
		g.Weight = p.U16()
	case 3, 4:
		g.Value = p.U16()
		g.Category = p.U8()
		g.SpeedBonus = p.U16()
		g.Weight = p.U16()
		g.Color = p.U8()
		if p.version >= 4 {
			g.Classes = p.U8()
		}
	}

	if err := p.done(obj.Good, goodsVersion); err != nil {
		return nil, err
	}

	if p.version < 2 {
		g.Weight = 100
	}
	if p.version < 3 {
		g.Color = 255
	}
	if p.version < 4 {
		g.Classes = 1
	}

	return g, nil
}

func (goodsReader) Register(env *Env, h obj.Handle, _ obj.Slot) error {
	g := data[*desc.Goods](env, h)
	env.names(h, g)

	env.Xrefs.ObjForXref(obj.Good, g.Name, h)
	put(env, env.Reg.Goods, g.Name, g)
	env.sum(obj.Good, g.Name, g)

	return nil
}

func (goodsReader) SuccessfullyLoaded(*Env) error { return nil }

// EncodeGoods returns the newest goods payload.
func EncodeGoods(g *desc.Goods) []byte {
	w := &decode.Writer{}
	return w.Version(goodsVersion).U16(g.Value).U8(g.Category).U16(g.SpeedBonus).
		U16(g.Weight).U8(g.Color).U8(g.Classes).Bytes()
}
