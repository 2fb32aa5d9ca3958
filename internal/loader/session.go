// Package loader reads paksets into a load session.
//
// A Session owns the node arena, the cross reference tables and the domain
// registries of one pakset. Files are read one after another; cross
// references are resolved once, by FinishLoading, after the pakset and any
// addons have been read.
package loader

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/woozymasta/simpak/internal/checksum"
	"github.com/woozymasta/simpak/internal/desc"
	"github.com/woozymasta/simpak/internal/obj"
	"github.com/woozymasta/simpak/internal/pakfile"
	"github.com/woozymasta/simpak/internal/reader"
	"github.com/woozymasta/simpak/internal/registry"
	"github.com/woozymasta/simpak/internal/xref"
)

// DefaultPrefetch is the number of files read ahead in parallel.
const DefaultPrefetch = 4

// Options configure a Session.
type Options struct {
	// Log receives load diagnostics. Defaults to the standard logger.
	Log logrus.FieldLogger
	// Readers handles the record tags. Defaults to reader.Default().
	Readers *reader.Table
	// Lister enumerates pak files. Defaults to a DirLister over Extensions.
	Lister Lister
	// Extensions and Recursive configure the default lister.
	Extensions []string
	Recursive  bool
	// Bootstrap files are loaded first; a failure among them is fatal.
	Bootstrap []string
	// Prefetch is the number of files read from disk in parallel.
	Prefetch int
	// SkipBroken skips structurally broken files with a warning instead of
	// aborting the pakset.
	SkipBroken bool
	// Progress is called after every file with the files done so far and
	// the total of the current pass.
	Progress func(done, total int)
}

// Session is one pakset load batch.
type Session struct {
	opts    Options
	log     logrus.FieldLogger
	env     *reader.Env
	readers *reader.Table

	files      map[uint64]string
	missing    *MissingTable
	unresolved []xref.Key
	anyVehicle obj.Handle
	finished   bool
}

// NewSession returns an empty session.
func NewSession(opts Options) *Session {
	if opts.Log == nil {
		opts.Log = logrus.StandardLogger()
	}
	if opts.Readers == nil {
		opts.Readers = reader.Default()
	}
	if opts.Lister == nil {
		opts.Lister = DirLister{Extensions: opts.Extensions, Recursive: opts.Recursive}
	}
	if opts.Bootstrap == nil {
		opts.Bootstrap = DefaultBootstrap
	}
	if opts.Prefetch < 1 {
		opts.Prefetch = DefaultPrefetch
	}

	return &Session{
		opts:    opts,
		log:     opts.Log,
		env:     reader.NewEnv(opts.Log),
		readers: opts.Readers,
		files:   make(map[uint64]string),
		missing: NewMissingTable(),
	}
}

// Registry returns the domain tables filled by the session.
func (s *Session) Registry() *registry.Set { return s.env.Reg }

// Checksums returns the per-object checksums.
func (s *Session) Checksums() *checksum.Set { return s.env.Sums }

// Arena returns the node arena.
func (s *Session) Arena() *obj.Arena { return s.env.Arena }

// Env returns the reader environment.
func (s *Session) Env() *reader.Env { return s.env }

// Missing returns the table of objects that could not be found.
func (s *Session) Missing() *MissingTable { return s.missing }

// Unresolved returns the non-fatal references left empty by FinishLoading.
func (s *Session) Unresolved() []xref.Key { return s.unresolved }

// AnyVehicle returns the coupling wildcard created by FinishLoading.
func (s *Session) AnyVehicle() *desc.Vehicle {
	v, _ := obj.As[*desc.Vehicle](s.env.Arena, s.anyVehicle)
	return v
}

// LoadFile reads one container held in memory. Identical contents already
// loaded are skipped with a warning.
func (s *Session) LoadFile(name string, data []byte) error {
	if s.finished {
		return ErrFinished
	}

	data, err := pakfile.Decompress(data)
	if err != nil {
		return &FileError{Path: name, Err: err}
	}

	return s.loadPlain(name, data)
}

// loadPlain reads a container that is already decompressed.
func (s *Session) loadPlain(name string, data []byte) error {
	if s.finished {
		return ErrFinished
	}

	fp := pakfile.Fingerprint(data)
	if first, ok := s.files[fp]; ok {
		s.log.WithFields(logrus.Fields{"file": name, "first": first}).Warn("identical pak already loaded, skipping")
		return nil
	}

	if err := s.readFile(name, data); err != nil {
		return &FileError{Path: name, Err: err}
	}
	s.files[fp] = name

	return nil
}

// FinishLoading resolves every cross reference read so far, links the
// descriptors and lets each reader finish its tables. The session accepts no
// files afterwards.
func (s *Session) FinishLoading() error {
	if s.finished {
		return ErrFinished
	}
	s.finished = true

	anyVehicle := &desc.Vehicle{
		Named:      desc.Named{Name: desc.AnyVehicleName},
		IntroDate:  desc.DefaultIntroDate,
		RetireDate: desc.DefaultRetireDate,
		Sound:      desc.NoSound,
	}
	s.anyVehicle = s.env.Arena.Alloc(&obj.Node{Type: obj.Vehicle, Data: anyVehicle})
	s.env.Xrefs.ObjForXref(obj.Vehicle, desc.AnyVehicleName, s.anyVehicle)

	missing, err := s.env.Xrefs.Resolve(s.env.Arena)
	if err != nil {
		return errors.Wrap(err, "resolve cross references")
	}

	for _, k := range missing {
		s.log.WithFields(logrus.Fields{"type": k.Type.String(), "name": k.Name}).Warn("unresolved reference")
		if level, ok := LevelFor(k.Type); ok {
			s.missing.Add(k.Name, level)
		}
	}
	s.unresolved = missing

	s.env.Link()

	return s.readers.Each(func(r reader.Reader) error {
		if err := r.SuccessfullyLoaded(s.env); err != nil {
			return errors.Wrapf(err, "finish %s objects", r.Type())
		}
		return nil
	})
}
