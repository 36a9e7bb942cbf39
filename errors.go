package rope

import "github.com/pkg/errors"

// ErrInvalidUTF8 is returned when Insert's payload -- or a byte sequence
// scanned while walking the rope's own leaves -- is not valid UTF-8. The
// rope is left unmodified: validation always runs before any node is
// touched.
var ErrInvalidUTF8 = errors.New("rope: invalid utf-8")

// ErrAllocationFailure exists for parity with the reference C API's
// allocation-failure error kind. Go's allocator does not return errors on
// exhaustion -- make and new panic instead -- so no code path in this
// package can construct this value. It is kept only so callers migrating
// error-handling logic from the original have somewhere to map it.
var ErrAllocationFailure = errors.New("rope: allocation failure")
