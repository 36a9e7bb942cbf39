package rope

import "github.com/pkg/errors"

// Delete removes up to n scalars starting at character pos. Positions and
// counts past the end of the rope are clamped; deleting zero characters is
// a no-op. The reference C implementation left this operation unimplemented
// entirely -- this is built from its own Insert's splice bookkeeping, run in
// reverse.
func (r *Rope) Delete(pos, n uint64) {
	if pos > r.numChars {
		pos = r.numChars
	}
	if n > r.numChars-pos {
		n = r.numChars - pos
	}
	if n == 0 {
		return
	}

	c, err := r.locate(pos)
	if err != nil {
		panic(errors.Wrap(err, "rope: invariant violation locating delete start"))
	}

	remaining := n
	charOff := c.offsets[0]

	for remaining > 0 {
		var leaf *node
		if charOff > 0 {
			leaf = c.preds[0]
		} else {
			leaf = r.successor(c.preds[0], 0)
		}
		if leaf == nil {
			// remaining was clamped to r.numChars-pos above, so this can only
			// happen if an invariant has already been broken elsewhere.
			panic("rope: delete ran past the end of the rope")
		}

		leafChars := leaf.links[0].skip
		avail := leafChars - charOff
		k := remaining
		if k > avail {
			k = avail
		}

		byteStart, err := byteOffsetForChar(leaf.bytes(), charOff)
		if err != nil {
			panic(errors.Wrap(err, "rope: invariant violation scanning leaf"))
		}
		kBytes, err := byteOffsetForChar(leaf.bytes()[byteStart:], k)
		if err != nil {
			panic(errors.Wrap(err, "rope: invariant violation scanning leaf"))
		}

		if charOff == 0 && k == leafChars {
			for level := leaf.height(); level < r.height; level++ {
				l := r.linkPtr(c.preds[level], level)
				l.skip -= k
			}
			r.unlinkNode(c.preds, leaf)
		} else {
			copy(leaf.slab[byteStart:leaf.numBytes-kBytes], leaf.slab[byteStart+kBytes:leaf.numBytes])
			leaf.numBytes -= kBytes

			for level := 0; level < leaf.height(); level++ {
				leaf.links[level].skip -= k
			}
			for level := leaf.height(); level < r.height; level++ {
				l := r.linkPtr(c.preds[level], level)
				l.skip -= k
			}
		}

		r.numChars -= k
		r.numBytes -= uint64(kBytes)
		remaining -= k
		charOff = 0
	}
}

// unlinkNode splices leaf out of the skip list at every level it
// participates in, folding its own span into its predecessor's, and shrinks
// the rope's reported height if the top levels are now empty.
func (r *Rope) unlinkNode(preds []*node, leaf *node) {
	leafChars := leaf.links[0].skip
	for level := 0; level < leaf.height(); level++ {
		pred := r.linkPtr(preds[level], level)
		pred.next = leaf.links[level].next
		pred.skip = pred.skip + leaf.links[level].skip - leafChars
	}
	r.shrinkHeightIfNeeded()
}

func (r *Rope) shrinkHeightIfNeeded() {
	for r.height > 0 && r.heads[r.height-1].next == nil {
		r.height--
	}
}
