package loader

import (
	"io/fs"
	"path"
	"slices"
	"strings"
)

// DefaultExtensions are the file suffixes treated as pak files.
var DefaultExtensions = []string{".pak", ".pak.gz", ".pak.zst"}

// DefaultBootstrap are the files loaded before everything else.
var DefaultBootstrap = []string{"ground.Outside.pak", "symbol.BigLogo.pak"}

// Lister enumerates the pak files of a directory.
type Lister interface {
	List(fsys fs.FS) ([]string, error)
}

// DirLister lists files by suffix, optionally descending into
// subdirectories. Paths come back in lexicographic order.
type DirLister struct {
	Extensions []string
	Recursive  bool
}

// List implements Lister.
func (l DirLister) List(fsys fs.FS) ([]string, error) {
	exts := l.Extensions
	if len(exts) == 0 {
		exts = DefaultExtensions
	}

	var out []string
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if p != "." && !l.Recursive {
				return fs.SkipDir
			}
			return nil
		}
		if hasExtension(p, exts) {
			out = append(out, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.Sort(out)

	return out, nil
}

// hasExtension matches suffixes case-insensitively.
func hasExtension(p string, exts []string) bool {
	name := strings.ToLower(path.Base(p))
	for _, ext := range exts {
		if strings.HasSuffix(name, strings.ToLower(ext)) {
			return true
		}
	}

	return false
}

// splitBootstrap moves the files named in bootstrap to the front, in
// bootstrap order. Missing bootstrap files are returned separately.
func splitBootstrap(files, bootstrap []string) (first, rest, missing []string) {
	taken := make(map[string]bool)
	for _, want := range bootstrap {
		found := false
		for _, f := range files {
			if !taken[f] && path.Base(f) == want {
				first = append(first, f)
				taken[f] = true
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, want)
		}
	}

	for _, f := range files {
		if !taken[f] {
			rest = append(rest, f)
		}
	}

	return first, rest, missing
}
