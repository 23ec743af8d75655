package toast

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// UUIDGenerator generates random (version 4) UUIDs. 122 random bits make
// collisions negligible even if a counter-free store is recreated mid-session.
//
// Safe for concurrent use.
type UUIDGenerator struct{}

// Generate returns a new hyphenated UUID string
func (UUIDGenerator) Generate() string {
	return uuid.NewString()
}

// FixedGenerator returns predetermined ids in order, for tests.
type FixedGenerator struct {
	mu  sync.Mutex
	ids []string
	idx int
}

// NewFixedGenerator creates a generator that yields ids in order
func NewFixedGenerator(ids ...string) *FixedGenerator {
	return &FixedGenerator{ids: ids}
}

// Generate returns the next id. It panics once every id has been used;
// ids are never reused.
func (g *FixedGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.idx >= len(g.ids) {
		panic(fmt.Sprintf("toast: FixedGenerator exhausted after %d ids", len(g.ids)))
	}
	id := g.ids[g.idx]
	g.idx++
	return id
}
