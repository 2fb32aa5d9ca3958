package loader

import (
	"bytes"
	"context"
	"io/fs"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/woozymasta/simpak/internal/pakfile"
)

// fetched is one file read ahead of parsing.
type fetched struct {
	path string
	data []byte
	err  error
}

// LoadPakset reads every pak file of fsys. Bootstrap files go first and any
// failure among them aborts. The remaining files follow in lexicographic
// order so later files override earlier ones by name.
func (s *Session) LoadPakset(ctx context.Context, fsys fs.FS) error {
	files, err := s.opts.Lister.List(fsys)
	if err != nil {
		return errors.Wrap(err, "list pakset files")
	}

	first, rest, missing := splitBootstrap(files, s.opts.Bootstrap)
	for _, name := range missing {
		s.log.WithField("file", name).Warn("bootstrap file not found")
	}

	for _, p := range first {
		data, err := readPak(fsys, p)
		if err == nil {
			err = s.loadPlain(p, data)
		}
		if err != nil {
			return errors.Wrap(err, "load bootstrap file")
		}
	}

	return s.loadAll(ctx, fsys, rest)
}

// LoadAddons reads an addon directory after the pakset. Addon objects
// replace pakset objects of the same name. No bootstrap files are looked up.
func (s *Session) LoadAddons(ctx context.Context, fsys fs.FS) error {
	files, err := s.opts.Lister.List(fsys)
	if err != nil {
		return errors.Wrap(err, "list addon files")
	}

	return s.loadAll(ctx, fsys, files)
}

// loadAll reads files in windows: a window is fetched in parallel, then
// parsed in order.
func (s *Session) loadAll(ctx context.Context, fsys fs.FS, files []string) error {
	window := s.opts.Prefetch
	done := 0

	for start := 0; start < len(files); start += window {
		end := min(start+window, len(files))

		batch, err := s.prefetch(ctx, fsys, files[start:end])
		if err != nil {
			return err
		}

		for _, f := range batch {
			if err := s.loadFetched(f); err != nil {
				return err
			}

			done++
			if s.opts.Progress != nil {
				s.opts.Progress(done, len(files))
			}
		}
	}

	return nil
}

// prefetch reads paths concurrently. Read errors are kept per file.
func (s *Session) prefetch(ctx context.Context, fsys fs.FS, paths []string) ([]fetched, error) {
	out := make([]fetched, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.Prefetch)
	for i, p := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := readPak(fsys, p)
			out[i] = fetched{path: p, data: data, err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// loadFetched loads one prefetched file, skipping it when it is broken and
// the session allows that.
func (s *Session) loadFetched(f fetched) error {
	log := s.log.WithField("file", f.path)

	if f.err != nil {
		if s.opts.SkipBroken {
			log.WithError(f.err).Warn("unreadable pak skipped")
			return nil
		}
		return &FileError{Path: f.path, Err: f.err}
	}

	if s.opts.SkipBroken {
		if err := checkStructure(f.data); err != nil {
			log.WithError(err).Warn("broken pak skipped")
			return nil
		}
	}

	return s.loadPlain(f.path, f.data)
}

// readPak reads and decompresses one file of fsys.
func readPak(fsys fs.FS, p string) ([]byte, error) {
	raw, err := fs.ReadFile(fsys, p)
	if err != nil {
		return nil, err
	}

	return pakfile.Decompress(raw)
}

// checkStructure walks every node header of a container without decoding.
func checkStructure(data []byte) error {
	_, err := pakfile.Walk(bytes.NewReader(data), func(int, pakfile.NodeInfo) error { return nil })
	return err
}

// Load runs a complete load: pakset, optional addons and FinishLoading.
func Load(ctx context.Context, opts Options, pakset, addons fs.FS) (*Session, error) {
	s := NewSession(opts)

	if err := s.LoadPakset(ctx, pakset); err != nil {
		return s, err
	}
	if addons != nil {
		if err := s.LoadAddons(ctx, addons); err != nil {
			return s, err
		}
	}
	if err := s.FinishLoading(); err != nil {
		return s, err
	}

	s.log.WithFields(logrus.Fields{
		"objects":  s.Checksums().Len(),
		"doubled":  len(s.Registry().Doubled()),
		"missing":  len(s.unresolved),
		"checksum": s.Checksums().Sum().String(),
	}).Info("pakset loaded")

	return s, nil
}
