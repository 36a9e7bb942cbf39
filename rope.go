package rope

import "math/rand"

// Rope is a mutable, sub-linear-edit Unicode string. The zero value is not
// usable; construct one with New, NewWithConfig, NewFromUTF8, or
// NewFromUTF8WithConfig.
type Rope struct {
	cfg      Config
	heads    []link
	height   int
	numChars uint64
	numBytes uint64
	rng      *rand.Rand
}

// New returns an empty Rope using DefaultLeafCap and MaxHeight.
func New() *Rope {
	r, err := NewWithConfig(Config{})
	if err != nil {
		// Config{} always validates; setDefaults never produces invalid fields.
		panic(err)
	}
	return r
}

// NewWithConfig returns an empty Rope configured by cfg. Zero fields in cfg
// are filled in with their defaults before validation.
func NewWithConfig(cfg Config) (*Rope, error) {
	cfg.setDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Rope{
		cfg: cfg,
		rng: rand.New(cfg.Source),
	}, nil
}

// NewFromUTF8 returns a Rope whose initial content is data, which must be
// valid UTF-8.
func NewFromUTF8(data []byte) (*Rope, error) {
	return NewFromUTF8WithConfig(Config{}, data)
}

// NewFromUTF8WithConfig is NewFromUTF8 with an explicit Config.
func NewFromUTF8WithConfig(cfg Config, data []byte) (*Rope, error) {
	r, err := NewWithConfig(cfg)
	if err != nil {
		return nil, err
	}
	if err := r.Insert(0, data); err != nil {
		return nil, err
	}
	return r, nil
}

// Close releases r's reference to its node graph. Go's garbage collector
// reclaims the nodes once nothing else references them; Close exists so
// call sites ported from the reference C API, which requires an explicit
// free, still have something to call symmetrically.
func (r *Rope) Close() {
	r.heads = nil
	r.height = 0
	r.numChars = 0
	r.numBytes = 0
}

// linkAt returns the forward link at level from pred, or from the Rope's
// head array when pred is nil (the virtual position-0 predecessor).
func (r *Rope) linkAt(pred *node, level int) link {
	if pred == nil {
		return r.heads[level]
	}
	return pred.links[level]
}

// linkPtr is linkAt, but returns a pointer so the caller can mutate the slot
// in place.
func (r *Rope) linkPtr(pred *node, level int) *link {
	if pred == nil {
		return &r.heads[level]
	}
	return &pred.links[level]
}

// successor returns whatever currently follows pred at level (or the first
// node in the rope, if pred is nil).
func (r *Rope) successor(pred *node, level int) *node {
	if pred == nil {
		if level >= len(r.heads) {
			return nil
		}
		return r.heads[level].next
	}
	return pred.links[level].next
}

// growHeads raises the rope's reported height to newHeight. Levels already
// present in r.heads from an earlier, since-shrunk height are reset rather
// than trusted: a dormant level's stored skip only reflected r.numChars at
// the moment it fell dormant, and edits below it since then never touched
// it.
func (r *Rope) growHeads(newHeight int) {
	for len(r.heads) < newHeight {
		r.heads = append(r.heads, link{})
	}
	for level := r.height; level < newHeight; level++ {
		r.heads[level] = link{next: nil, skip: r.numChars}
	}
	r.height = newHeight
}

func (r *Rope) heads0Next() *node {
	if len(r.heads) == 0 {
		return nil
	}
	return r.heads[0].next
}
