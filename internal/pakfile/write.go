package pakfile

import (
	"fmt"
	"io"

	"github.com/woozymasta/simpak/internal/decode"
	"github.com/woozymasta/simpak/internal/obj"
)

// Node is a node to be written: its tag, its encoded payload and its
// children in order.
type Node struct {
	Type     obj.Type
	Payload  []byte
	Children []*Node
}

// N is a convenience constructor for Node.
func N(t obj.Type, payload []byte, children ...*Node) *Node {
	return &Node{Type: t, Payload: payload, Children: children}
}

// Writer writes one pak container.
type Writer struct {
	w       io.Writer
	version uint32
}

// NewWriter writes the comment, the terminator and the version code.
func NewWriter(w io.Writer, comment string, version uint32) (*Writer, error) {
	hdr := &decode.Writer{}
	hdr.Raw([]byte(comment)).U8(HeaderEnd).U32(version)
	if _, err := w.Write(hdr.Bytes()); err != nil {
		return nil, err
	}

	return &Writer{w: w, version: version}, nil
}

// WriteNode writes n and its subtree.
func (pw *Writer) WriteNode(n *Node) error {
	if len(n.Children) > 0xFFFF {
		return fmt.Errorf("%s node has %d children", n.Type, len(n.Children))
	}

	hdr := &decode.Writer{}
	hdr.U32(uint32(n.Type)).U16(uint16(len(n.Children)))

	size := len(n.Payload)
	switch {
	case size < LargeRecordSize:
		hdr.U16(uint16(size))
	case pw.version == CompilerVersionCode11:
		return fmt.Errorf("%s payload of %d bytes needs an extended size", n.Type, size)
	default:
		hdr.U16(LargeRecordSize).U32(uint32(size))
	}

	if _, err := pw.w.Write(hdr.Bytes()); err != nil {
		return err
	}
	if _, err := pw.w.Write(n.Payload); err != nil {
		return err
	}

	for _, c := range n.Children {
		if err := pw.WriteNode(c); err != nil {
			return err
		}
	}

	return nil
}
