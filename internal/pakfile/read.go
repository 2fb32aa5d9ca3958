package pakfile

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/woozymasta/simpak/internal/decode"
	"github.com/woozymasta/simpak/internal/obj"
)

// Stream is what the container reader needs from its input.
type Stream interface {
	io.Reader
	io.ByteReader
}

// ReadHeader skips the comment up to and including 0x1A and reads the
// version code. Files newer than CompilerVersionCode are rejected.
func ReadHeader(r Stream) (Header, error) {
	var comment bytes.Buffer
	for {
		c, err := r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return Header{}, ErrBadHeader
			}
			return Header{}, errors.Wrap(err, "read pak header")
		}
		if c == HeaderEnd {
			break
		}
		comment.WriteByte(c)
	}

	var v [4]byte
	if _, err := io.ReadFull(r, v[:]); err != nil {
		return Header{}, errors.Wrap(err, "read pak version")
	}

	h := Header{Comment: comment.String(), Version: decode.U32At(v[:])}
	if h.Version > CompilerVersionCode {
		return h, fmt.Errorf("%w: %d > %d", ErrVersionTooNew, h.Version, CompilerVersionCode)
	}

	return h, nil
}

// ReadNodeInfo reads a node header. A size of 0xFFFF is followed by the real
// 32-bit size, except in files of CompilerVersionCode11.
func ReadNodeInfo(r io.Reader, version uint32) (NodeInfo, error) {
	var b [NodeInfoSize]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return NodeInfo{}, errors.Wrap(err, "read node header")
	}

	info := NodeInfo{
		Type:     obj.Type(decode.U32At(b[0:])),
		Children: decode.U16At(b[4:]),
		Size:     uint32(decode.U16At(b[6:])),
	}

	if info.Size == LargeRecordSize && version != CompilerVersionCode11 {
		var ext [4]byte
		if _, err := io.ReadFull(r, ext[:]); err != nil {
			return NodeInfo{}, errors.Wrap(err, "read extended node size")
		}
		info.Size = decode.U32At(ext[:])
	}

	return info, nil
}

// ReadPayload reads exactly info.Size bytes. The buffer is only sized up
// front when r reports its remaining length; otherwise it grows as bytes
// arrive, so a forged size cannot force a huge allocation.
func ReadPayload(r io.Reader, info NodeInfo) ([]byte, error) {
	if l, ok := r.(interface{ Len() int }); ok {
		if int64(info.Size) > int64(l.Len()) {
			return nil, errors.Wrapf(io.ErrUnexpectedEOF, "read %s payload of %d bytes, %d left",
				info.Type, info.Size, l.Len())
		}

		buf := make([]byte, info.Size)
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, errors.Wrapf(err, "read %s payload of %d bytes", info.Type, info.Size)
		}
		return buf, nil
	}

	buf, err := io.ReadAll(io.LimitReader(r, int64(info.Size)))
	if err != nil {
		return nil, errors.Wrapf(err, "read %s payload of %d bytes", info.Type, info.Size)
	}
	if len(buf) < int(info.Size) {
		return nil, errors.Wrapf(io.ErrUnexpectedEOF, "read %s payload of %d bytes", info.Type, info.Size)
	}

	return buf, nil
}

// Discard skips n payload bytes.
func Discard(r io.Reader, n uint32) error {
	if n == 0 {
		return nil
	}

	if _, err := io.CopyN(io.Discard, r, int64(n)); err != nil {
		return errors.Wrapf(err, "skip %d bytes", n)
	}

	return nil
}

// SkipTree skips count complete node subtrees without decoding them.
func SkipTree(r io.Reader, version uint32, count int) error {
	for range count {
		info, err := ReadNodeInfo(r, version)
		if err != nil {
			return err
		}
		if err := Discard(r, info.Size); err != nil {
			return err
		}
		if err := SkipTree(r, version, int(info.Children)); err != nil {
			return err
		}
	}

	return nil
}

// WalkFunc is called for every node header in file order.
type WalkFunc func(depth int, info NodeInfo) error

// Walk visits every node header of one container without decoding payloads.
func Walk(r Stream, fn WalkFunc) (Header, error) {
	h, err := ReadHeader(r)
	if err != nil {
		return h, err
	}

	var visit func(depth int) error
	visit = func(depth int) error {
		info, err := ReadNodeInfo(r, h.Version)
		if err != nil {
			return err
		}
		if err := fn(depth, info); err != nil {
			return err
		}
		if err := Discard(r, info.Size); err != nil {
			return err
		}
		for range int(info.Children) {
			if err := visit(depth + 1); err != nil {
				return err
			}
		}
		return nil
	}

	for {
		if _, err := r.ReadByte(); errors.Is(err, io.EOF) {
			return h, nil
		}
		if err := unread(r); err != nil {
			return h, err
		}
		if err := visit(0); err != nil {
			return h, err
		}
	}
}

// unread steps back over a byte consumed to probe for end of file.
func unread(r Stream) error {
	if s, ok := r.(io.ByteScanner); ok {
		return s.UnreadByte()
	}

	return errors.New("stream cannot unread")
}
