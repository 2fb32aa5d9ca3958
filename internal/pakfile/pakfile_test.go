package pakfile

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woozymasta/simpak/internal/obj"
)

func TestReadHeader(t *testing.T) {
	t.Parallel()

	data := []byte("Simutrans object file\nCompiled with test\n\x1a\x62\xea\x00\x00")
	h, err := ReadHeader(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, "Simutrans object file\nCompiled with test\n", h.Comment)
	assert.Equal(t, uint32(60002), h.Version)
}

func TestReadHeaderErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"no terminator", []byte("just a comment"), ErrBadHeader},
		{"empty", nil, ErrBadHeader},
		{"too new", []byte{HeaderEnd, 0xff, 0xff, 0xff, 0x00}, ErrVersionTooNew},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := ReadHeader(bytes.NewReader(tc.data))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}

	_, err := ReadHeader(bytes.NewReader([]byte{HeaderEnd, 1, 2}))
	require.Error(t, err, "short version code")
}

func TestReadNodeInfo(t *testing.T) {
	t.Parallel()

	plain := []byte{'G', 'O', 'O', 'D', 2, 0, 10, 0}
	info, err := ReadNodeInfo(bytes.NewReader(plain), CompilerVersionCode)
	require.NoError(t, err)
	assert.Equal(t, NodeInfo{Type: obj.Good, Children: 2, Size: 10}, info)

	large := []byte{'V', 'H', 'C', 'L', 0, 0, 0xff, 0xff, 0x00, 0x00, 0x01, 0x00}
	info, err = ReadNodeInfo(bytes.NewReader(large), CompilerVersionCode)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x10000), info.Size)

	r := bytes.NewReader(large)
	info, err = ReadNodeInfo(r, CompilerVersionCode11)
	require.NoError(t, err)
	assert.Equal(t, uint32(LargeRecordSize), info.Size, "code 11 never escapes")
	assert.Equal(t, 4, r.Len(), "extension bytes left unread")

	_, err = ReadNodeInfo(bytes.NewReader(plain[:5]), CompilerVersionCode)
	require.Error(t, err)
	_, err = ReadNodeInfo(bytes.NewReader(large[:10]), CompilerVersionCode)
	require.Error(t, err)
}

func buildFile(t *testing.T, version uint32, nodes ...*Node) []byte {
	t.Helper()

	var buf bytes.Buffer
	w, err := NewWriter(&buf, "test file\n", version)
	require.NoError(t, err)
	for _, n := range nodes {
		require.NoError(t, w.WriteNode(n))
	}

	return buf.Bytes()
}

func TestWriterLargePayload(t *testing.T) {
	t.Parallel()

	payload := bytes.Repeat([]byte{7}, 70000)
	data := buildFile(t, CompilerVersionCode, N(obj.Image, payload))

	r := bytes.NewReader(data)
	h, err := ReadHeader(r)
	require.NoError(t, err)
	info, err := ReadNodeInfo(r, h.Version)
	require.NoError(t, err)
	assert.Equal(t, uint32(len(payload)), info.Size)
	got, err := ReadPayload(r, info)
	require.NoError(t, err)
	assert.Equal(t, payload, got)

	var buf bytes.Buffer
	w, err := NewWriter(&buf, "", CompilerVersionCode11)
	require.NoError(t, err)
	require.Error(t, w.WriteNode(N(obj.Image, payload)))
}

func TestReadPayloadForgedSize(t *testing.T) {
	t.Parallel()

	info := NodeInfo{Type: obj.Good, Size: 0xFFFFFFF0}
	tail := []byte{1, 2, 3}

	tests := []struct {
		name string
		r    io.Reader
	}{
		{"sized reader", bytes.NewReader(tail)},
		{"plain reader", struct{ io.Reader }{bytes.NewReader(tail)}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := ReadPayload(tc.r, info)
			require.Error(t, err)
			assert.True(t, errors.Is(err, io.ErrUnexpectedEOF), "got %v", err)
		})
	}

	got, err := ReadPayload(struct{ io.Reader }{bytes.NewReader(tail)}, NodeInfo{Type: obj.Good, Size: 3})
	require.NoError(t, err)
	assert.Equal(t, tail, got)
}

func TestSkipTreeAndWalk(t *testing.T) {
	t.Parallel()

	unknown := obj.C4ID('Z', 'Z', 'Z', 'Z')
	data := buildFile(t, CompilerVersionCode,
		N(obj.Good, []byte{1, 2, 3}),
		N(unknown, []byte{9, 9}, N(unknown, []byte{1}), N(unknown, nil, N(obj.Text, []byte("x\x00")))),
		N(obj.Good, []byte{4}),
	)

	r := bytes.NewReader(data)
	h, err := ReadHeader(r)
	require.NoError(t, err)
	require.NoError(t, SkipTree(r, h.Version, 1))
	require.NoError(t, SkipTree(r, h.Version, 1))
	info, err := ReadNodeInfo(r, h.Version)
	require.NoError(t, err)
	assert.Equal(t, obj.Good, info.Type)
	assert.Equal(t, uint32(1), info.Size)

	var seen []string
	_, err = Walk(bytes.NewReader(data), func(depth int, info NodeInfo) error {
		seen = append(seen, string(rune('0'+depth))+info.Type.String())
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"0GOOD", "0ZZZZ", "1ZZZZ", "1ZZZZ", "2TEXT", "0GOOD"}, seen)

	_, err = Walk(bytes.NewReader(data[:len(data)-1]), func(int, NodeInfo) error { return nil })
	require.Error(t, err, "truncated payload")
}

func TestDecompress(t *testing.T) {
	t.Parallel()

	data := buildFile(t, CompilerVersionCode, N(obj.Good, []byte("payload")))
	assert.Equal(t, KindPak, Sniff(data))

	var gz bytes.Buffer
	zw := gzip.NewWriter(&gz)
	_, err := zw.Write(data)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	assert.Equal(t, KindGzip, Sniff(gz.Bytes()))

	enc, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	zs := enc.EncodeAll(data, nil)
	require.NoError(t, enc.Close())
	assert.Equal(t, KindZstd, Sniff(zs))

	for _, in := range [][]byte{data, gz.Bytes(), zs} {
		out, err := Decompress(in)
		require.NoError(t, err)
		assert.Equal(t, data, out)
	}

	assert.Equal(t, KindUnknown, Sniff([]byte("plain text")))
	assert.Equal(t, Fingerprint(data), Fingerprint(append([]byte(nil), data...)))
	assert.NotEqual(t, Fingerprint(data), Fingerprint(zs))
}
