package rope

import (
	"io"

	"github.com/pkg/errors"
)

// CharCount returns the number of Unicode scalars in the rope.
func (r *Rope) CharCount() uint64 { return r.numChars }

// ByteCount returns the number of UTF-8 bytes the rope's content occupies.
func (r *Rope) ByteCount() uint64 { return r.numBytes }

// Bytes returns a copy of the rope's full content as UTF-8 bytes.
func (r *Rope) Bytes() []byte {
	out := make([]byte, 0, r.numBytes)
	for n := r.heads0Next(); n != nil; n = n.links[0].next {
		out = append(out, n.bytes()...)
	}
	return out
}

// String returns a copy of the rope's full content.
func (r *Rope) String() string {
	return string(r.Bytes())
}

// Cursor streams a rope's content starting at some character position,
// implementing io.Reader by walking the level-0 chain of leaves one slab at
// a time.
type Cursor struct {
	node    *node
	byteOff int
}

// Reader returns an io.Reader that streams the rope's content starting at
// character pos. pos past the end of the rope yields a reader that reports
// io.EOF immediately.
func (r *Rope) Reader(pos uint64) io.Reader {
	c, err := r.locate(pos)
	if err != nil {
		// A rope can only ever hold content that was validated as UTF-8 on
		// the way in, so a live leaf failing to scan means the node graph
		// itself is corrupt.
		panic(errors.Wrap(err, "rope: invariant violation locating reader start"))
	}
	if c.leaf == nil {
		return &Cursor{node: r.successor(nil, 0), byteOff: 0}
	}
	return &Cursor{node: c.leaf, byteOff: c.leafByteOffset}
}

// Read implements io.Reader.
func (cu *Cursor) Read(b []byte) (int, error) {
	i := 0
	for i < len(b) {
		if cu.node == nil {
			if i == 0 {
				return 0, io.EOF
			}
			return i, nil
		}
		n := copy(b[i:], cu.node.bytes()[cu.byteOff:])
		cu.byteOff += n
		i += n
		if cu.byteOff == cu.node.numBytes {
			cu.node = cu.node.links[0].next
			cu.byteOff = 0
		}
	}
	return i, nil
}
