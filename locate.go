package rope

// cursor is the result of a positional search: for every level, the
// predecessor node the search stopped at (nil meaning "the virtual position
// before the first node") and the character distance from that
// predecessor's start to the target position. leaf is preds[0]; when it is
// non-nil, leafByteOffset is the UTF-8 byte offset inside leaf's slab that
// corresponds to the remaining character offset.
type cursor struct {
	preds          []*node
	offsets        []uint64
	leaf           *node
	leafByteOffset int
}

// locate performs the skip-list descent weighted by character distance: at
// each level, starting from the top, advance along forward links while the
// link's skip is strictly less than the remaining offset, then descend a
// level and continue with the same offset. pos is clamped to the rope's
// current character count.
func (r *Rope) locate(pos uint64) (*cursor, error) {
	if pos > r.numChars {
		pos = r.numChars
	}

	c := &cursor{
		preds:   make([]*node, r.height),
		offsets: make([]uint64, r.height),
	}

	var pred *node
	offset := pos
	for level := r.height - 1; level >= 0; level-- {
		for {
			l := r.linkAt(pred, level)
			if offset <= l.skip {
				break
			}
			offset -= l.skip
			pred = l.next
		}
		c.preds[level] = pred
		c.offsets[level] = offset
	}

	c.leaf = pred
	if pred != nil && offset > 0 {
		byteOff, err := byteOffsetForChar(pred.bytes(), offset)
		if err != nil {
			return nil, err
		}
		c.leafByteOffset = byteOff
	}
	return c, nil
}
