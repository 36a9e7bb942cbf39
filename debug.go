package rope

import "github.com/pkg/errors"

// CheckInvariants walks the live structure and verifies the universal
// invariants expected to hold after any sequence of Insert/Delete calls:
// character and byte counts agree with what the leaves actually contain,
// every level's skip values sum to the total character count, and the
// rope's reported height matches the tallest live node. It is not called on
// any hot path; it exists for tests and for callers auditing their own use
// of the structure.
func (r *Rope) CheckInvariants() error {
	var chars, bytes uint64
	maxHeightSeen := 0
	for n := r.heads0Next(); n != nil; n = n.links[0].next {
		nc, err := countChars(n.bytes())
		if err != nil {
			return errors.Wrap(err, "leaf is not valid utf-8")
		}
		if n.numBytes > r.cfg.LeafCap {
			return errors.Errorf("leaf holds %d bytes, exceeding LeafCap %d", n.numBytes, r.cfg.LeafCap)
		}
		chars += uint64(nc)
		bytes += uint64(n.numBytes)
		if n.height() > maxHeightSeen {
			maxHeightSeen = n.height()
		}
	}
	if chars != r.numChars {
		return errors.Errorf("char count mismatch: rope reports %d, leaves hold %d", r.numChars, chars)
	}
	if bytes != r.numBytes {
		return errors.Errorf("byte count mismatch: rope reports %d, leaves hold %d", r.numBytes, bytes)
	}

	for level := 0; level < r.height; level++ {
		var sum uint64
		l := r.heads[level]
		for {
			sum += l.skip
			if l.next == nil {
				break
			}
			l = l.next.links[level]
		}
		if sum != r.numChars {
			return errors.Errorf("skip sum mismatch at level %d: got %d, want %d", level, sum, r.numChars)
		}
	}

	if r.numChars == 0 {
		if r.height != 0 {
			return errors.Errorf("empty rope must report height 0, got %d", r.height)
		}
	} else if maxHeightSeen != r.height {
		return errors.Errorf("height mismatch: tallest live node is %d, rope reports %d", maxHeightSeen, r.height)
	}

	return nil
}
