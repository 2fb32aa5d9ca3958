// Package pakfile reads and writes the pak container: a free-text comment
// ended by 0x1A, a 4-byte compiler version code and a tree of length-framed
// descriptor nodes.
package pakfile

import (
	"errors"

	"github.com/woozymasta/simpak/internal/obj"
)

// Compiler version codes are major*1000000 + minor*1000 + patch.
const (
	// CompilerVersionCode11 is the one legacy code whose files never use the
	// extended record size escape.
	CompilerVersionCode11 uint32 = 0*1_000_000 + 1*1_000 + 1

	// CompilerVersionCode is the newest container version this build reads.
	CompilerVersionCode uint32 = 0*1_000_000 + 60*1_000 + 2
)

const (
	// HeaderEnd terminates the free-text comment.
	HeaderEnd = 0x1A

	// LargeRecordSize in the 16-bit size field announces a 32-bit size.
	LargeRecordSize = 0xFFFF

	// NodeInfoSize is the fixed part of a node header.
	NodeInfoSize = 8
)

var (
	// ErrBadHeader is returned when the comment is not terminated by 0x1A.
	ErrBadHeader = errors.New("pak header not terminated")
	// ErrVersionTooNew is returned for files written by a newer compiler.
	ErrVersionTooNew = errors.New("pak version too new")
)

// Header is the container preamble.
type Header struct {
	Comment string `json:"comment"`
	Version uint32 `json:"version"`
}

// NodeInfo is the framing in front of every node payload.
type NodeInfo struct {
	Type     obj.Type `json:"type"`
	Children uint16   `json:"children"`
	Size     uint32   `json:"size"`
}
