package stitch

import (
	"sync"

	"github.com/wonny/finstitch/internal/contracts"
)

// resultCache stores stitched statements keyed by fingerprint. The
// fingerprint covers the full input content, so a changed input simply
// misses; cached entries are immutable and never go stale.
type resultCache struct {
	mu      sync.RWMutex
	entries map[string]*contracts.StitchedStatement
}

func newResultCache() *resultCache {
	return &resultCache{entries: make(map[string]*contracts.StitchedStatement)}
}

func (c *resultCache) get(fingerprint string) (*contracts.StitchedStatement, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	stitched, ok := c.entries[fingerprint]
	return stitched, ok
}

func (c *resultCache) put(fingerprint string, stitched *contracts.StitchedStatement) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[fingerprint] = stitched
}

func (c *resultCache) purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*contracts.StitchedStatement)
}

func (c *resultCache) size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
