// Package decode reads and writes the little-endian fixed-width fields of
// descriptor payloads.
package decode

import (
	"errors"
	"strings"
)

// ErrShortPayload is returned when a field runs past the end of a payload.
var ErrShortPayload = errors.New("payload too short")

// Reader is a cursor over one node payload. Reads past the end yield zero
// values and latch ErrShortPayload, so a decoder can read a whole layout and
// check Err once.
type Reader struct {
	buf []byte
	pos int
	err error
}

// NewReader returns a cursor at the start of buf.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Err returns ErrShortPayload if any read ran out of bytes.
func (r *Reader) Err() error { return r.err }

// Pos returns the number of bytes consumed.
func (r *Reader) Pos() int { return r.pos }

// Len returns the number of unread bytes.
func (r *Reader) Len() int { return len(r.buf) - r.pos }

// take returns the next n bytes or nil after latching the error.
func (r *Reader) take(n int) []byte {
	if r.err != nil {
		return nil
	}
	if n < 0 || r.pos+n > len(r.buf) {
		r.err = ErrShortPayload
		r.pos = len(r.buf)
		return nil
	}

	b := r.buf[r.pos : r.pos+n]
	r.pos += n

	return b
}

// U8 reads an unsigned byte.
func (r *Reader) U8() uint8 {
	b := r.take(1)
	if b == nil {
		return 0
	}

	return b[0]
}

// U16 reads a little-endian uint16.
func (r *Reader) U16() uint16 {
	return readU16(r.take(2))
}

// U32 reads a little-endian uint32.
func (r *Reader) U32() uint32 {
	return readU32(r.take(4))
}

// S8 reads a signed byte.
func (r *Reader) S8() int8 { return int8(r.U8()) }

// S16 reads a little-endian int16.
func (r *Reader) S16() int16 { return int16(r.U16()) }

// S32 reads a little-endian int32.
func (r *Reader) S32() int32 { return int32(r.U32()) }

// Bool reads a byte and reports whether it is non-zero.
func (r *Reader) Bool() bool { return r.U8() != 0 }

// Bytes returns the next n bytes without copying.
func (r *Reader) Bytes(n int) []byte {
	return r.take(n)
}

// Rest returns every unread byte.
func (r *Reader) Rest() []byte {
	return r.take(r.Len())
}

// PString reads a string prefixed by a one-byte length.
func (r *Reader) PString() string {
	n := int(r.U8())
	return string(r.take(n))
}

// CString returns b up to its first NUL byte.
func CString(b []byte) string {
	s := string(b)
	if i := strings.IndexByte(s, 0); i >= 0 {
		s = s[:i]
	}

	return s
}

// readU16 reads a 16-bit integer from a byte slice.
func readU16(b []byte) uint16 {
	if len(b) < 2 {
		return 0
	}

	return uint16(b[0]) | uint16(b[1])<<8
}

// readU32 reads a 32-bit integer from a byte slice.
func readU32(b []byte) uint32 {
	if len(b) < 4 {
		return 0
	}

	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

// U16At reads a little-endian uint16 at the start of b, or 0 if b is short.
func U16At(b []byte) uint16 { return readU16(b) }

// U32At reads a little-endian uint32 at the start of b, or 0 if b is short.
func U32At(b []byte) uint32 { return readU32(b) }
