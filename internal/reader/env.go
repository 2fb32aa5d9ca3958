package reader

import (
	"github.com/sirupsen/logrus"

	"github.com/woozymasta/simpak/internal/checksum"
	"github.com/woozymasta/simpak/internal/desc"
	"github.com/woozymasta/simpak/internal/obj"
	"github.com/woozymasta/simpak/internal/registry"
	"github.com/woozymasta/simpak/internal/xref"
)

// DefaultRasterWidth is the tile width used until the outside ground is
// loaded.
const DefaultRasterWidth = 64

// Env is the state readers work on during one load session.
type Env struct {
	Arena  *obj.Arena
	Xrefs  *xref.Resolver
	Reg    *registry.Set
	Sums   *checksum.Set
	Sounds *SoundTable
	Log    logrus.FieldLogger

	// RasterWidth is the tile image width of the pakset.
	RasterWidth int

	linkers []func()
}

// NewEnv returns an environment with empty tables.
func NewEnv(log logrus.FieldLogger) *Env {
	if log == nil {
		log = logrus.StandardLogger()
	}

	return &Env{
		Arena:       obj.NewArena(),
		Xrefs:       xref.New(),
		Reg:         registry.NewSet(),
		Sums:        checksum.NewSet(),
		Sounds:      NewSoundTable(),
		Log:         log,
		RasterWidth: DefaultRasterWidth,
	}
}

// OnResolved queues fn to run after cross references are resolved. Readers
// use it to fill the links between descriptors.
func (e *Env) OnResolved(fn func()) {
	e.linkers = append(e.linkers, fn)
}

// Link runs and clears the queued link functions.
func (e *Env) Link() {
	fns := e.linkers
	e.linkers = nil
	for _, fn := range fns {
		fn()
	}
}

// text returns the string of TEXT child i of h.
func (e *Env) text(h obj.Handle, i int) string {
	c := e.Arena.Child(h, i)
	if e.Arena.Type(c) != obj.Text {
		return ""
	}
	t, _ := obj.As[*desc.Text](e.Arena, c)
	if t == nil {
		return ""
	}

	return t.Value
}

// names copies the name and copyright children of h into v.
func (e *Env) names(h obj.Handle, v desc.Namer) {
	v.SetNames(e.text(h, 0), e.text(h, 1))
}

// data returns the descriptor of h.
func data[T any](e *Env, h obj.Handle) T {
	v, _ := obj.As[T](e.Arena, h)
	return v
}

// childData returns the descriptor of child i of h, or the zero value when
// the child is missing or of another kind.
func childData[T any](e *Env, h obj.Handle, i int) T {
	v, _ := obj.As[T](e.Arena, e.Arena.Child(h, i))
	return v
}

// put registers v in tab and logs a replaced entry.
func put[T any](e *Env, tab *registry.Table[T], name string, v T) {
	if _, replaced := tab.Put(name, v); replaced {
		e.Log.WithFields(logrus.Fields{"type": tab.Type().String(), "name": name}).
			Warn("object overlaid by a later definition")
	} else {
		e.Log.WithFields(logrus.Fields{"type": tab.Type().String(), "name": name}).
			Debug("registered")
	}
}

// sum records the checksum of v.
func (e *Env) sum(t obj.Type, name string, v checksum.Checksummer) {
	e.Sums.Add(t, name, checksum.Of(v))
}

// SoundTable assigns ids to sound file names. Ids are handed out in the order
// names are first seen, after the compiled-in ids.
type SoundTable struct {
	ids  map[string]int16
	next int16
}

// FirstLoadedSound is the first id given to a sound loaded by name.
const FirstLoadedSound int16 = 16

// NewSoundTable returns an empty table.
func NewSoundTable() *SoundTable {
	return &SoundTable{ids: make(map[string]int16), next: FirstLoadedSound}
}

// ID returns the id of name, assigning a new one when needed. An empty name
// has no sound.
func (s *SoundTable) ID(name string) int16 {
	if name == "" {
		return desc.NoSound
	}
	if id, ok := s.ids[name]; ok {
		return id
	}

	id := s.next
	s.next++
	s.ids[name] = id

	return id
}

// Lookup returns the id of name without assigning one.
func (s *SoundTable) Lookup(name string) (int16, bool) {
	id, ok := s.ids[name]
	return id, ok
}
