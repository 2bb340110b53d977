package scanner

import "sync"

const (
	// cacheCapacity bounds how many scanned directories stay resident.
	cacheCapacity = 50
	// evictBatch is how many of the oldest entries go when the cache is
	// full. FIFO by insertion order, not LRU: reads never reorder.
	evictBatch = 10
)

// DirCache holds prior scan results keyed by directory path. Reads may
// proceed concurrently; writes are mutually exclusive.
type DirCache struct {
	mu      sync.RWMutex
	entries map[string]*Result
	order   []string
}

// NewDirCache creates an empty directory cache
func NewDirCache() *DirCache {
	return &DirCache{
		entries: make(map[string]*Result),
	}
}

// Get returns the cached result for a directory
func (c *DirCache) Get(dir string) (*Result, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	r, ok := c.entries[dir]
	return r, ok
}

// Put stores a scan result. Replacing an existing key keeps its original
// insertion position. A new key that would exceed capacity first evicts
// the oldest batch.
func (c *DirCache) Put(dir string, r *Result) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[dir]; exists {
		c.entries[dir] = r
		return
	}

	if len(c.order) >= cacheCapacity {
		evicted := c.order[:evictBatch]
		for _, key := range evicted {
			delete(c.entries, key)
		}
		c.order = append(c.order[:0], c.order[evictBatch:]...)
	}

	c.entries[dir] = r
	c.order = append(c.order, dir)
}

// Invalidate drops the cached result for a directory, if any
func (c *DirCache) Invalidate(dir string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[dir]; !ok {
		return
	}
	delete(c.entries, dir)
	for i, key := range c.order {
		if key == dir {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// Clear drops every cached result
func (c *DirCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*Result)
	c.order = c.order[:0]
}

// Len returns the number of resident entries
func (c *DirCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
