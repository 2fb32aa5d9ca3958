package decode

// Writer appends little-endian fields. It is the inverse of Reader and is
// used by the payload encoders and the pak writer.
type Writer struct {
	buf []byte
}

// Bytes returns the encoded payload.
func (w *Writer) Bytes() []byte { return w.buf }

// Len returns the number of bytes written.
func (w *Writer) Len() int { return len(w.buf) }

// U8 appends a byte.
func (w *Writer) U8(v uint8) *Writer {
	w.buf = append(w.buf, v)
	return w
}

// U16 appends a little-endian uint16.
func (w *Writer) U16(v uint16) *Writer {
	var b [2]byte
	writeU16(b[:], v)
	w.buf = append(w.buf, b[:]...)
	return w
}

// U32 appends a little-endian uint32.
func (w *Writer) U32(v uint32) *Writer {
	var b [4]byte
	writeU32(b[:], v)
	w.buf = append(w.buf, b[:]...)
	return w
}

// S8 appends a signed byte.
func (w *Writer) S8(v int8) *Writer { return w.U8(uint8(v)) }

// S16 appends a little-endian int16.
func (w *Writer) S16(v int16) *Writer { return w.U16(uint16(v)) }

// S32 appends a little-endian int32.
func (w *Writer) S32(v int32) *Writer { return w.U32(uint32(v)) }

// Bool appends 1 or 0.
func (w *Writer) Bool(v bool) *Writer { return w.U8(boolByte(v)) }

// Raw appends b unchanged.
func (w *Writer) Raw(b []byte) *Writer {
	w.buf = append(w.buf, b...)
	return w
}

// PString appends a string prefixed by a one-byte length; longer strings are
// cut at 255 bytes.
func (w *Writer) PString(s string) *Writer {
	if len(s) > 255 {
		s = s[:255]
	}
	w.U8(uint8(len(s)))
	w.buf = append(w.buf, s...)
	return w
}

// CString appends s followed by a NUL byte.
func (w *Writer) CString(s string) *Writer {
	w.buf = append(w.buf, s...)
	w.buf = append(w.buf, 0)
	return w
}

// Version appends the version tag for a versioned layout.
func (w *Writer) Version(version int) *Writer {
	return w.U16(VersionTag(version))
}

// boolByte converts a flag to its on-disk byte.
func boolByte(v bool) byte {
	if v {
		return 1
	}

	return 0
}

// writeU16 writes a 16-bit integer to a byte slice.
func writeU16(b []byte, v uint16) {
	if len(b) < 2 {
		return
	}

	b[0] = byte(v)
	b[1] = byte(v >> 8)
}

// writeU32 writes a 32-bit integer to a byte slice.
func writeU32(b []byte, v uint32) {
	if len(b) < 4 {
		return
	}

	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
}
