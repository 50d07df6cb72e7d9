package decoder

import "sync"

// defaultCacheSize bounds the dedup cache when the caller passes a
// non-positive ceiling.
const defaultCacheSize = 10000

// DedupCache is a bounded set of already-processed transaction ids.
// Once the population exceeds the ceiling, the oldest fifth of the
// entries is evicted in insertion order. Access recency is not
// tracked, so this is truncation, not LRU. Safe for concurrent use;
// it records completed attempts and does not serialize in-flight
// duplicates of the same id.
type DedupCache struct {
	mu    sync.Mutex
	max   int
	seen  map[string]struct{}
	order []string
}

// NewDedupCache returns a cache holding at most max ids.
func NewDedupCache(max int) *DedupCache {
	if max <= 0 {
		max = defaultCacheSize
	}
	return &DedupCache{
		max:  max,
		seen: make(map[string]struct{}, max),
	}
}

// Seen reports whether id was already marked.
func (c *DedupCache) Seen(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.seen[id]
	return ok
}

// Mark records id as processed, pruning when the ceiling is exceeded.
// Marking a present id again is a no-op.
func (c *DedupCache) Mark(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.seen[id]; ok {
		return
	}
	c.seen[id] = struct{}{}
	c.order = append(c.order, id)
	if len(c.seen) <= c.max {
		return
	}
	evict := c.max / 5
	if evict < 1 {
		evict = 1
	}
	for _, old := range c.order[:evict] {
		delete(c.seen, old)
	}
	c.order = append(c.order[:0], c.order[evict:]...)
}

// Len returns the number of ids currently cached.
func (c *DedupCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.seen)
}
