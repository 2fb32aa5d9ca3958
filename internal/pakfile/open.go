package pakfile

import (
	"bytes"
	"io"

	"github.com/cespare/xxhash"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
)

// Kind is the storage format detected from the first bytes of a file.
type Kind string

// Storage formats.
const (
	KindPak     Kind = "PAK"
	KindGzip    Kind = "GZIP"
	KindZstd    Kind = "ZSTD"
	KindUnknown Kind = "UNKNOWN"
)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// Sniff classifies data by its leading bytes. Plain pak files have no magic
// of their own, so anything containing the comment terminator counts as pak.
func Sniff(data []byte) Kind {
	switch {
	case bytes.HasPrefix(data, zstdMagic):
		return KindZstd
	case bytes.HasPrefix(data, gzipMagic):
		return KindGzip
	case bytes.IndexByte(data, HeaderEnd) >= 0:
		return KindPak
	default:
		return KindUnknown
	}
}

// Decompress returns the plain container bytes of data.
func Decompress(data []byte) ([]byte, error) {
	switch Sniff(data) {
	case KindGzip:
		zr, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, errors.Wrap(err, "open gzip stream")
		}
		defer zr.Close()

		out, err := io.ReadAll(zr)
		if err != nil {
			return nil, errors.Wrap(err, "inflate gzip stream")
		}
		return out, nil

	case KindZstd:
		zr, err := zstd.NewReader(nil)
		if err != nil {
			return nil, errors.Wrap(err, "create zstd decoder")
		}
		defer zr.Close()

		out, err := zr.DecodeAll(data, nil)
		if err != nil {
			return nil, errors.Wrap(err, "decode zstd stream")
		}
		return out, nil

	default:
		return data, nil
	}
}

// Fingerprint returns a content hash used to spot the same file loaded twice.
func Fingerprint(data []byte) uint64 {
	return xxhash.Sum64(data)
}
