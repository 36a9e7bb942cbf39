package rope

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestInsertThenReadRoundTrips checks that appending several parts one after
// another and reading the whole rope back with String reproduces their
// concatenation.
func TestInsertThenReadRoundTrips(t *testing.T) {
	seeds := []int64{1, 2, 3, 42}
	for _, seed := range seeds {
		r := newTestRope(t, 4, seed)
		parts := []string{"the quick ", "brown fox ", "jumps over ", "the lazy dog"}
		pos := uint64(0)
		var want string
		for _, p := range parts {
			require.NoError(t, r.Insert(pos, []byte(p)))
			want += p
			pos += uint64(len([]rune(p)))
		}
		assert.Equal(t, want, r.String())
		require.NoError(t, r.CheckInvariants())
	}
}

// TestInsertDeleteCancel checks that deleting exactly what was just inserted
// restores the rope's prior content.
func TestInsertDeleteCancel(t *testing.T) {
	r := newTestRope(t, 4, 11)
	require.NoError(t, r.Insert(0, []byte("hello world")))
	before := r.String()

	inserted := "the quick brown fox"
	require.NoError(t, r.Insert(5, []byte(inserted)))
	nChars, err := countChars([]byte(inserted))
	require.NoError(t, err)
	r.Delete(5, uint64(nChars))

	assert.Equal(t, before, r.String())
	require.NoError(t, r.CheckInvariants())
}

// TestInsertOrderIndependenceAtDisjointPositions checks that inserting two
// strings at disjoint spots of the original content in either order produces
// the same final content. Inserting "AB" at 2 first shifts the later spot
// from 8 to 10, so that order inserts "YZ" at 10.
func TestInsertOrderIndependenceAtDisjointPositions(t *testing.T) {
	build := func(seed int64, first, second func(r *Rope) error) string {
		r := newTestRope(t, 4, seed)
		require.NoError(t, r.Insert(0, []byte("0123456789")))
		require.NoError(t, first(r))
		require.NoError(t, second(r))
		require.NoError(t, r.CheckInvariants())
		return r.String()
	}

	insertAt := func(pos uint64, s string) func(*Rope) error {
		return func(r *Rope) error { return r.Insert(pos, []byte(s)) }
	}

	a := build(1, insertAt(2, "AB"), insertAt(10, "YZ"))
	b := build(1, insertAt(8, "YZ"), insertAt(2, "AB"))
	assert.Equal(t, a, b)
}

// TestRandomOpsPreserveContentAgainstReferenceString runs a randomized
// sequence of inserts and deletes against both the rope and a plain Go
// string, checking they stay in lockstep the whole way.
func TestRandomOpsPreserveContentAgainstReferenceString(t *testing.T) {
	rng := rand.New(rand.NewSource(123))
	r := newTestRope(t, 4, 77)
	ref := []rune{}

	for i := 0; i < 200; i++ {
		if len(ref) == 0 || rng.Intn(2) == 0 {
			pos := rng.Intn(len(ref) + 1)
			n := rng.Intn(5) + 1
			s := make([]rune, n)
			for j := range s {
				s[j] = rune('a' + rng.Intn(26))
			}
			require.NoError(t, r.Insert(uint64(pos), []byte(string(s))))
			ref = append(ref[:pos], append(s, ref[pos:]...)...)
		} else {
			pos := rng.Intn(len(ref))
			n := rng.Intn(len(ref)-pos) + 1
			r.Delete(uint64(pos), uint64(n))
			ref = append(ref[:pos], ref[pos+n:]...)
		}
		require.Equal(t, string(ref), r.String())
		require.NoError(t, r.CheckInvariants())
	}
}
