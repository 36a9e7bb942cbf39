package rope

// link is a single forward pointer at one skip-list level: the node it
// points to, and the number of Unicode scalars spanned between the start of
// the owning slot (a node, or the Rope's virtual head) and the start of
// next.
type link struct {
	next *node
	skip uint64
}

// node is a skip-list node owning a fixed-capacity UTF-8 slab. A node's
// height (the length of links) is fixed at creation and never changes; the
// forward-link arrays of neighboring nodes are what get rewired as the rope
// is edited.
type node struct {
	slab     []byte
	numBytes int
	links    []link
}

// newNode allocates a node with the given tower height and slab capacity.
// The slab is junk (zero-valued) until the caller fills it in.
func newNode(height, leafCap int) *node {
	if height < 1 {
		panic("rope: node height must be at least 1")
	}
	return &node{
		slab:  make([]byte, leafCap),
		links: make([]link, height),
	}
}

func (n *node) height() int {
	return len(n.links)
}

// bytes returns the in-use portion of the node's slab.
func (n *node) bytes() []byte {
	return n.slab[:n.numBytes]
}
