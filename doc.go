// Package rope implements a mutable, single-owner Unicode string backed by a
// probabilistic skip list (Pugh, W. (1990). Skip lists: a probabilistic
// alternative to balanced trees. Communications of the ACM, 33(6), 668-676),
// combined with a piecewise UTF-8 buffer in the spirit of Boehm, Atkinson &
// Plass's rope (Ropes: an alternative to strings. Software: Practice and
// Experience, 25(12), 1315-1330, 1995).
//
// Each skip-list node owns a small, fixed-capacity byte slab holding a UTF-8
// fragment; forward links at every level carry a character-weighted "skip
// size" so that locating an arbitrary character offset, inserting, and
// deleting all share a single top-down descent. Node boundaries never split a
// codepoint.
//
// A Rope is NOT safe for concurrent use: every operation reads or mutates the
// node graph directly, and none of them synchronize with each other. Callers
// sharing a Rope across goroutines must supply their own locking.
package rope
