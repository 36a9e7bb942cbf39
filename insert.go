package rope

// Insert splices data, which must be valid UTF-8, into the rope so that its
// first byte becomes character pos. pos past the end of the rope is clamped
// to the end. On error the rope is left completely unmodified.
func (r *Rope) Insert(pos uint64, data []byte) error {
	if err := validateUTF8(data); err != nil {
		return err
	}
	if len(data) == 0 {
		return nil
	}
	if pos > r.numChars {
		pos = r.numChars
	}

	c, err := r.locate(pos)
	if err != nil {
		return err
	}

	if c.leaf != nil && c.leaf.numBytes+len(data) <= r.cfg.LeafCap {
		r.insertInPlace(c, data)
		return nil
	}
	return r.insertSplit(c, pos, data)
}

// insertInPlace is the fast path: the target leaf has enough spare capacity
// to absorb data without creating any new node. Every level's spanning link
// -- including level 0, which the reference implementation's in-place path
// forgot to touch -- is widened by the number of inserted characters.
func (r *Rope) insertInPlace(c *cursor, data []byte) {
	leaf := c.leaf
	off := c.leafByteOffset
	n := len(data)

	copy(leaf.slab[off+n:leaf.numBytes+n], leaf.slab[off:leaf.numBytes])
	copy(leaf.slab[off:off+n], data)
	leaf.numBytes += n

	k, _ := countChars(data) // data was already validated as UTF-8 above.
	for level := 0; level < r.height; level++ {
		l := r.linkPtr(c.preds[level], level)
		l.skip += uint64(k)
	}
	r.numChars += uint64(k)
	r.numBytes += uint64(n)
}

// insertSplit handles the case where the target leaf has no room: any
// trailing content past the insertion point is carved off and held aside,
// the new bytes are chunked into leaf-capacity-sized, codepoint-safe pieces
// and emitted as new nodes, and finally the carved-off tail is reinserted as
// one more node.
func (r *Rope) insertSplit(c *cursor, pos uint64, data []byte) error {
	var tailData []byte
	var tailChars uint64

	if c.leaf != nil && c.leafByteOffset < c.leaf.numBytes {
		leaf := c.leaf
		tailBytes := leaf.numBytes - c.leafByteOffset
		tailData = append([]byte(nil), leaf.bytes()[c.leafByteOffset:]...)
		tailChars = leaf.links[0].skip - c.offsets[0]

		leaf.numBytes = c.leafByteOffset

		for level := 0; level < r.height; level++ {
			l := r.linkPtr(c.preds[level], level)
			l.skip -= tailChars
		}
		r.numChars -= tailChars
		r.numBytes -= uint64(tailBytes)
	}

	cur := pos
	offset := 0
	for offset < len(data) {
		chunkBytes, chunkChars, err := nextChunk(data[offset:], r.cfg.LeafCap)
		if err != nil {
			return err // unreachable: data was validated as UTF-8 above.
		}
		r.emitChunk(c, cur, data[offset:offset+chunkBytes], chunkChars)
		cur += uint64(chunkChars)
		offset += chunkBytes
	}

	if len(tailData) > 0 {
		r.emitChunk(c, cur, tailData, int(tailChars))
	}
	return nil
}

// emitChunk creates one new node holding data and threads it into the
// skip list at c's current position, advancing c so the next emitChunk call
// (if any) picks up immediately after this node. pos is the node's logical
// character position in the rope at the moment it is emitted; it is only
// used to seed the cursor on levels above the rope's current height.
func (r *Rope) emitChunk(c *cursor, pos uint64, data []byte, chars int) {
	h := pickHeight(r.rng, r.cfg.MaxHeightLimit)
	if h > r.height {
		for level := r.height; level < h; level++ {
			c.preds = append(c.preds, nil)
			c.offsets = append(c.offsets, pos)
		}
		r.growHeads(h)
	}

	nn := newNode(h, r.cfg.LeafCap)
	copy(nn.slab, data)
	nn.numBytes = len(data)

	for level := 0; level < h; level++ {
		prev := r.linkPtr(c.preds[level], level)
		nn.links[level] = link{next: prev.next, skip: uint64(chars) + prev.skip - c.offsets[level]}
		prev.next = nn
		prev.skip = c.offsets[level]
		c.preds[level] = nn
		c.offsets[level] = uint64(chars)
	}
	for level := h; level < r.height; level++ {
		l := r.linkPtr(c.preds[level], level)
		l.skip += uint64(chars)
		c.offsets[level] += uint64(chars)
	}

	r.numChars += uint64(chars)
	r.numBytes += uint64(len(data))
}
