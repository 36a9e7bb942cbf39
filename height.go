package rope

import "math/rand"

// pickHeight draws a node height from the geometric distribution a skip
// list relies on: start at 1, and keep climbing, one level at a time, for as
// long as a fair coin flip keeps coming up heads, capped at maxHeight. This
// is the fair-coin behavior the reference implementation's random_height was
// supposed to implement; its actual `random() % 1` is always zero, which
// collapses every node to height 1 and degrades the whole structure to a
// linked list.
func pickHeight(rng *rand.Rand, maxHeight int) int {
	h := 1
	for h < maxHeight && rng.Intn(2) == 0 {
		h++
	}
	return h
}
