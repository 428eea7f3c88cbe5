package material

import (
	"crypto/sha256"
	"sync"
)

// Cache memoizes Resolve by content identity: the same byte buffer yields
// the same resolved table without re-parsing. It holds the most recently
// resolved buffer only; supplying new bytes is the sole invalidation.
type Cache struct {
	mu    sync.Mutex
	sum   [sha256.Size]byte
	table Table
	valid bool
}

// Resolve returns the memoized table for raw, resolving it on a miss.
func (c *Cache) Resolve(raw []byte) Table {
	sum := sha256.Sum256(raw)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.valid && c.sum == sum {
		return c.table
	}
	c.table = Resolve(raw)
	c.sum = sum
	c.valid = true
	return c.table
}
