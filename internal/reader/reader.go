// Package reader decodes node payloads into descriptors and registers them.
//
// Every record tag has one Reader. Read turns a payload into a descriptor
// value; Register is called once the node and all its children have been
// read; SuccessfullyLoaded is called once per reader after cross references
// of a load batch are resolved.
package reader

import (
	"fmt"

	"github.com/woozymasta/simpak/internal/decode"
	"github.com/woozymasta/simpak/internal/desc"
	"github.com/woozymasta/simpak/internal/obj"
	"github.com/woozymasta/simpak/internal/pakfile"
)

// Reader handles one record tag.
type Reader interface {
	Type() obj.Type
	Read(info pakfile.NodeInfo, payload []byte) (any, error)
	Register(env *Env, h obj.Handle, slot obj.Slot) error
	SuccessfullyLoaded(env *Env) error
}

// UnknownVersionError is returned for payload versions newer than the
// reader knows.
type UnknownVersionError struct {
	Type    obj.Type
	Version int
}

func (e *UnknownVersionError) Error() string {
	return fmt.Sprintf("%s: unknown payload version %d", e.Type, e.Version)
}

// Table maps record tags to readers.
type Table struct {
	readers map[obj.Type]Reader
	order   []obj.Type
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{readers: make(map[obj.Type]Reader)}
}

// Add registers r for its tag. A tag can only have one reader.
func (t *Table) Add(r Reader) error {
	typ := r.Type()
	if _, ok := t.readers[typ]; ok {
		return fmt.Errorf("reader for %s registered twice", typ)
	}
	t.readers[typ] = r
	t.order = append(t.order, typ)

	return nil
}

// Get returns the reader for t.
func (t *Table) Get(typ obj.Type) (Reader, bool) {
	r, ok := t.readers[typ]
	return r, ok
}

// Each calls fn for every reader in registration order.
func (t *Table) Each(fn func(Reader) error) error {
	for _, typ := range t.order {
		if err := fn(t.readers[typ]); err != nil {
			return err
		}
	}

	return nil
}

// Default returns a table with a reader for every known record tag.
func Default() *Table {
	t := NewTable()
	for _, r := range []Reader{
		rootReader{},
		textReader{},
		xrefReader{},
		imageReader{},
		imageListReader{typ: obj.ImageList},
		imageListReader{typ: obj.ImageList2D},
		imageListReader{typ: obj.ImageList3D},
		soundReader{},
		goodsReader{},
		vehicleReader{},
		wayReader{},
		wayObjReader{},
		buildingReader{},
		tileReader{},
		bridgeReader{},
		tunnelReader{},
		factoryReader{},
		smokeReader{},
		productReader{},
		supplierReader{},
		fieldGroupReader{},
		fieldClassReader{},
		crossingReader{},
		roadSignReader{},
		cityCarReader{},
		pedestrianReader{},
		groundReader{},
		treeReader{},
		groundObjReader{},
		skinReader{typ: obj.Menu},
		skinReader{typ: obj.Cursor},
		skinReader{typ: obj.Symbol},
		skinReader{typ: obj.Misc},
		skinReader{typ: obj.Smoke},
	} {
		if err := t.Add(r); err != nil {
			panic(err)
		}
	}

	return t
}

// payload is a decode cursor positioned after the version word.
type payload struct {
	*decode.Reader
	version int
	legacy  bool
	first   uint16 // first field of an unversioned layout
}

func openPayload(b []byte) payload {
	r := decode.NewReader(b)
	word := r.U16()
	version, legacy := decode.Version(word)

	p := payload{Reader: r, version: version, legacy: legacy}
	if legacy {
		p.first = word
	}

	return p
}

// done wraps a short read or an unknown version into an error.
func (p payload) done(t obj.Type, maxVersion int) error {
	if p.version > maxVersion {
		return &UnknownVersionError{Type: t, Version: p.version}
	}
	if err := p.Err(); err != nil {
		return fmt.Errorf("%s v%d: %w", t, p.version, err)
	}

	return nil
}

// soundName reads the trailing file name that follows a LoadSound id.
func (p payload) soundName(id int16) string {
	if id != desc.LoadSound {
		return ""
	}

	return p.PString()
}

// nop provides the hooks of readers whose nodes are owned by their parent.
type nop struct{}

func (nop) Register(*Env, obj.Handle, obj.Slot) error { return nil }

func (nop) SuccessfullyLoaded(*Env) error { return nil }
