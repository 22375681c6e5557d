package state

import (
	"sync"

	"github.com/google/uuid"
)

// IDGenerator produces fresh unique ids for created entities.
// Implemented by UUIDv7Generator (production) and FixedGenerator
// (tests).
type IDGenerator interface {
	NewID(prefix string) string
}

// UUIDv7Generator generates time-sortable ids. UUIDv7 embeds a
// timestamp in the most significant bits, so ids created later always
// sort after ids created earlier, which keeps order ids
// monotonic-by-creation-time.
type UUIDv7Generator struct{}

// NewID returns prefix followed by a fresh UUIDv7.
//
// Panics if UUID generation fails (should never happen in practice).
func (UUIDv7Generator) NewID(prefix string) string {
	return prefix + uuid.Must(uuid.NewV7()).String()
}

// FixedGenerator returns predetermined ids for testing, ignoring the
// requested prefix when a token already carries one.
//
// Thread-safety: safe for concurrent use via internal mutex.
type FixedGenerator struct {
	mu  sync.Mutex
	ids []string
	idx int
}

// NewFixedGenerator creates a generator that returns ids in order.
//
// Example:
//
//	gen := NewFixedGenerator("ORD-1", "ORD-2")
//	gen.NewID("ORD-") // "ORD-1"
//	gen.NewID("ORD-") // "ORD-2"
//	gen.NewID("ORD-") // panic: all ids exhausted
func NewFixedGenerator(ids ...string) *FixedGenerator {
	return &FixedGenerator{ids: ids}
}

// NewID returns the next predetermined id.
// Panics when all ids have been consumed: a test asking for more ids
// than it declared is a test bug.
func (g *FixedGenerator) NewID(string) string {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.idx >= len(g.ids) {
		panic("FixedGenerator: all ids exhausted")
	}
	id := g.ids[g.idx]
	g.idx++
	return id
}
