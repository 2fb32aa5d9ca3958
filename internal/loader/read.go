package loader

import (
	"bytes"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/woozymasta/simpak/internal/obj"
	"github.com/woozymasta/simpak/internal/pakfile"
)

// cursorDepth is the depth from which cursor nodes belong to their parent
// only and are never registered.
const cursorDepth = 2

// readFile reads every top-level node of one container.
func (s *Session) readFile(name string, data []byte) error {
	log := s.log.WithField("file", name)
	prev := s.env.Log
	s.env.Log = log
	defer func() { s.env.Log = prev }()

	r := bytes.NewReader(data)
	hdr, err := pakfile.ReadHeader(r)
	if err != nil {
		return err
	}

	nodes := 0
	for r.Len() > 0 {
		slot := s.env.Arena.AddRoot(obj.Nil)
		if _, err := s.readNodes(r, hdr.Version, 0, slot); err != nil {
			return err
		}
		nodes++
	}

	log.WithFields(logrus.Fields{"version": hdr.Version, "nodes": nodes}).Info("pak loaded")

	return nil
}

// readNodes reads one node and its subtree and stores the result in slot.
// Unknown node types are skipped together with their children and yield
// obj.Nil. A failing child releases everything read for this node.
func (s *Session) readNodes(r *bytes.Reader, version uint32, depth int, slot obj.Slot) (obj.Handle, error) {
	info, err := pakfile.ReadNodeInfo(r, version)
	if err != nil {
		return obj.Nil, err
	}

	rd, ok := s.readers.Get(info.Type)
	if !ok {
		s.env.Log.WithFields(logrus.Fields{
			"type":     info.Type.String(),
			"size":     info.Size,
			"children": info.Children,
		}).Warn("skipping node of unknown type")

		if err := pakfile.Discard(r, info.Size); err != nil {
			return obj.Nil, err
		}
		if err := pakfile.SkipTree(r, version, int(info.Children)); err != nil {
			return obj.Nil, errors.Wrapf(err, "skip children of %s", info.Type)
		}
		return obj.Nil, nil
	}

	payload, err := pakfile.ReadPayload(r, info)
	if err != nil {
		return obj.Nil, err
	}

	v, err := rd.Read(info, payload)
	if err != nil {
		return obj.Nil, errors.Wrapf(err, "decode %s node", info.Type)
	}
	if v == nil {
		return obj.Nil, errors.Wrapf(ErrNoDescriptor, "decode %s node", info.Type)
	}

	n := &obj.Node{Type: info.Type, Data: v}
	if info.Children > 0 {
		n.Children = make([]obj.Handle, info.Children)
	}
	h := s.env.Arena.Alloc(n)

	for i := range n.Children {
		if _, err := s.readNodes(r, version, depth+1, obj.Slot{Parent: h, Index: i}); err != nil {
			s.env.Arena.Release(h)
			return obj.Nil, err
		}
	}

	if err := s.env.Arena.Set(slot, h); err != nil {
		s.env.Arena.Release(h)
		return obj.Nil, err
	}

	if depth >= cursorDepth && info.Type == obj.Cursor {
		return h, nil
	}

	if err := rd.Register(s.env, h, slot); err != nil {
		if s.env.Arena.At(slot) == h {
			_ = s.env.Arena.Set(slot, obj.Nil)
		}
		s.env.Arena.Release(h)
		return obj.Nil, errors.Wrapf(err, "register %s node", info.Type)
	}

	return h, nil
}
