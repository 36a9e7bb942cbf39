package rope

import (
	"math/rand"
	"time"

	"github.com/pkg/errors"
)

// DefaultLeafCap is the number of UTF-8 bytes a leaf slab holds when a
// Config leaves LeafCap unset.
const DefaultLeafCap = 128

// MaxHeight bounds how tall a node's forward-link tower may grow when a
// Config leaves MaxHeightLimit unset. 32 levels comfortably cover ropes with
// billions of characters: P(height > 32) is astronomically small under the
// fair-coin distribution height.go draws from.
const MaxHeight = 32

// Config carries the tunables the reference implementation exposed as
// compile-time constants. The zero value is valid: New and NewFromUTF8 fill
// it in with DefaultLeafCap, MaxHeight, and a time-seeded source. Tests that
// need to exercise small-capacity boundary behavior set LeafCap explicitly;
// tests that need reproducible structure supply a deterministic Source.
type Config struct {
	// LeafCap bounds the number of UTF-8 bytes held in a single leaf slab.
	LeafCap int

	// MaxHeightLimit bounds how tall a node's forward-link tower may grow.
	MaxHeightLimit int

	// Source drives the coin flips behind each node's random height.
	// Supply a fixed-seed source (e.g. rand.NewSource(1)) for reproducible
	// structure in tests.
	Source rand.Source
}

func (c *Config) setDefaults() {
	if c.LeafCap == 0 {
		c.LeafCap = DefaultLeafCap
	}
	if c.MaxHeightLimit == 0 {
		c.MaxHeightLimit = MaxHeight
	}
	if c.Source == nil {
		c.Source = rand.NewSource(time.Now().UnixNano())
	}
}

// Validate reports whether c can back a Rope.
func (c Config) Validate() error {
	if c.LeafCap <= 0 {
		return errors.Errorf("rope: LeafCap must be positive, got %d", c.LeafCap)
	}
	if c.MaxHeightLimit <= 0 || c.MaxHeightLimit > 255 {
		return errors.Errorf("rope: MaxHeightLimit must be in (0, 255], got %d", c.MaxHeightLimit)
	}
	return nil
}
