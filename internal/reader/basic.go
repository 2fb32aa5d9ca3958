package reader

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/woozymasta/simpak/internal/decode"
	"github.com/woozymasta/simpak/internal/desc"
	"github.com/woozymasta/simpak/internal/obj"
	"github.com/woozymasta/simpak/internal/pakfile"
)

// rootReader handles the node wrapping the objects of a file.
type rootReader struct{ nop }

func (rootReader) Type() obj.Type { return obj.Root }

func (rootReader) Read(pakfile.NodeInfo, []byte) (any, error) { return struct{}{}, nil }

// textReader handles NUL-terminated strings. Old paks store Latin-1.
type textReader struct{ nop }

func (textReader) Type() obj.Type { return obj.Text }

func (textReader) Read(_ pakfile.NodeInfo, b []byte) (any, error) {
	return &desc.Text{Value: DecodeText(b)}, nil
}

// DecodeText returns the string in b, converting Latin-1 to UTF-8 when b is
// not valid UTF-8.
func DecodeText(b []byte) string {
	s := decode.CString(b)
	if utf8.ValidString(s) {
		return s
	}

	out, err := charmap.ISO8859_1.NewDecoder().String(s)
	if err != nil {
		return s
	}

	return out
}

// EncodeText returns the payload of a TEXT node.
func EncodeText(s string) []byte {
	w := &decode.Writer{}
	return w.CString(s).Bytes()
}

// xrefReader handles references by name. A registered xref records its slot
// with the resolver; an empty optional reference is dropped at once.
type xrefReader struct{}

func (xrefReader) Type() obj.Type { return obj.Xref }

func (xrefReader) Read(_ pakfile.NodeInfo, b []byte) (any, error) {
	r := decode.NewReader(b)
	x := &desc.Xref{Type: obj.Type(r.U32()), Fatal: r.Bool()}
	x.Name = DecodeText(r.Rest())
	if err := r.Err(); err != nil {
		return nil, err
	}

	return x, nil
}

func (xrefReader) Register(env *Env, h obj.Handle, slot obj.Slot) error {
	x := data[*desc.Xref](env, h)
	if x == nil {
		return nil
	}

	if x.Name == "" && !x.Fatal {
		env.Arena.Release(h)
		return env.Arena.Set(slot, obj.Nil)
	}
	env.Xrefs.XrefToResolve(x.Type, x.Name, slot, x.Fatal)

	return nil
}

func (xrefReader) SuccessfullyLoaded(*Env) error { return nil }

// EncodeXref returns the payload of an XREF node.
func EncodeXref(x *desc.Xref) []byte {
	w := &decode.Writer{}
	return w.U32(uint32(x.Type)).Bool(x.Fatal).CString(x.Name).Bytes()
}

// imageReader handles sprites. An empty payload is an empty image.
type imageReader struct{ nop }

func (imageReader) Type() obj.Type { return obj.Image }

func (imageReader) Read(_ pakfile.NodeInfo, b []byte) (any, error) {
	if len(b) == 0 {
		return &desc.Image{}, nil
	}

	p := openPayload(b)
	img := &desc.Image{}
	var n int

	switch p.version {
	case 0:
		img.X = int16(p.first & 0xff)
		img.W = int16(p.first >> 8)
		img.Y = int16(p.U8())
		img.H = int16(p.U8())
		n = int(p.U16())
	case 1:
		img.X = p.S16()
		img.Y = p.S16()
		img.W = int16(p.U8())
		img.H = int16(p.U8())
		n = int(p.U16())
	case 2:
		img.X, img.Y, img.W, img.H = p.S16(), p.S16(), p.S16(), p.S16()
		n = int(p.U16())
	case 3:
		img.X, img.Y, img.W, img.H = p.S16(), p.S16(), p.S16(), p.S16()
		n = int(p.U32())
	}
	img.Zoomable = p.Bool()

	if n > p.Len()/2 {
		n = p.Len()/2 + 1 // latch the short read below
	}
	img.Data = make([]uint16, n)
	for i := range img.Data {
		img.Data[i] = p.U16()
	}

	if err := p.done(obj.Image, 3); err != nil {
		return nil, err
	}

	return img, nil
}

// EncodeImage returns a version 3 image payload.
func EncodeImage(img *desc.Image) []byte {
	w := &decode.Writer{}
	w.Version(3).S16(img.X).S16(img.Y).S16(img.W).S16(img.H).
		U32(uint32(len(img.Data))).Bool(img.Zoomable)
	for _, v := range img.Data {
		w.U16(v)
	}

	return w.Bytes()
}

// imageListReader handles image lists and the arrays of lists.
type imageListReader struct {
	nop
	typ obj.Type
}

func (r imageListReader) Type() obj.Type { return r.typ }

func (r imageListReader) Read(info pakfile.NodeInfo, b []byte) (any, error) {
	l := &desc.ImageList{Count: info.Children}
	if len(b) >= 2 {
		l.Count = decode.U16At(b)
	}

	return l, nil
}

// soundReader handles named sound effects.
type soundReader struct{}

func (soundReader) Type() obj.Type { return obj.Sound }

func (soundReader) Read(_ pakfile.NodeInfo, b []byte) (any, error) {
	p := openPayload(b)
	s := &desc.Sound{}

	switch p.version {
	case 0:
		s.ID = int16(p.first)
	case 1:
		s.ID = p.S16()
	case 2:
		s.ID = p.S16()
		s.Filename = p.PString()
	}

	if err := p.done(obj.Sound, 2); err != nil {
		return nil, err
	}

	return s, nil
}

func (soundReader) Register(env *Env, h obj.Handle, _ obj.Slot) error {
	s := data[*desc.Sound](env, h)
	env.names(h, s)

	file := s.Filename
	if file == "" {
		file = s.Name
	}
	if s.ID < 0 {
		s.ID = env.Sounds.ID(file)
	}
	put(env, env.Reg.Sounds, s.Name, s)

	return nil
}

func (soundReader) SuccessfullyLoaded(*Env) error { return nil }

// EncodeSound returns a version 2 sound payload.
func EncodeSound(s *desc.Sound) []byte {
	w := &decode.Writer{}
	return w.Version(2).S16(s.ID).PString(s.Filename).Bytes()
}

// skinReader handles interface image sets. The payload is empty.
type skinReader struct {
	typ obj.Type
}

func (r skinReader) Type() obj.Type { return r.typ }

func (skinReader) Read(pakfile.NodeInfo, []byte) (any, error) { return &desc.Skin{}, nil }

func (r skinReader) Register(env *Env, h obj.Handle, _ obj.Slot) error {
	s := data[*desc.Skin](env, h)
	env.names(h, s)
	put(env, env.Reg.Skins[r.typ], s.Name, s)

	return nil
}

func (skinReader) SuccessfullyLoaded(*Env) error { return nil }

// groundReader handles ground textures. The outside ground also defines the
// tile raster width.
type groundReader struct{}

func (groundReader) Type() obj.Type { return obj.Ground }

func (groundReader) Read(pakfile.NodeInfo, []byte) (any, error) { return &desc.Ground{}, nil }

func (groundReader) Register(env *Env, h obj.Handle, _ obj.Slot) error {
	g := data[*desc.Ground](env, h)
	env.names(h, g)
	put(env, env.Reg.Grounds, g.Name, g)

	if g.Name == desc.OutsideGround {
		if img := firstImage(env.Arena, h); !img.Empty() {
			env.RasterWidth = int(img.W)
			env.Log.WithField("raster", env.RasterWidth).Info("tile raster width set")
		}
	}

	return nil
}

func (groundReader) SuccessfullyLoaded(*Env) error { return nil }

// firstImage returns the first image below h in depth-first order.
func firstImage(a *obj.Arena, h obj.Handle) *desc.Image {
	n := a.Get(h)
	if n == nil {
		return nil
	}
	if img, ok := n.Data.(*desc.Image); ok {
		return img
	}
	for _, c := range n.Children {
		if img := firstImage(a, c); img != nil {
			return img
		}
	}

	return nil
}
