package safety

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// Cache is the persisted verdict store, keyed by normalized path. Reads may
// proceed concurrently; writes are mutually exclusive and write through to
// disk. There is no eviction: verdicts live for the lifetime of the store.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]Verdict
	path    string // empty for an in-memory cache
	enabled bool
}

// NewCache creates an in-memory verdict cache
func NewCache() *Cache {
	return &Cache{
		entries: make(map[string]Verdict),
		enabled: true,
	}
}

// OpenCache loads a persisted verdict cache, creating an empty one when the
// file does not exist. A corrupt file is discarded rather than failing
// startup.
func OpenCache(path string) (*Cache, error) {
	c := &Cache{
		entries: make(map[string]Verdict),
		path:    path,
		enabled: true,
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return c, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read verdict cache: %w", err)
	}

	if err := yaml.Unmarshal(data, &c.entries); err != nil {
		c.entries = make(map[string]Verdict)
	}
	return c, nil
}

// SetEnabled toggles the cache. A disabled cache misses all reads and
// drops all writes.
func (c *Cache) SetEnabled(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.enabled = enabled
}

// Get returns the cached verdict for a normalized path
func (c *Cache) Get(normalizedPath string) (Verdict, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.enabled {
		return Verdict{}, false
	}
	v, ok := c.entries[normalizedPath]
	return v, ok
}

// Put stores a verdict and writes the store through to disk. Grey verdicts
// are placeholders, not classifications, and are silently ignored.
func (c *Cache) Put(normalizedPath string, v Verdict) error {
	if v.Tier == TierGrey {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.enabled {
		return nil
	}
	c.entries[normalizedPath] = v
	return c.saveLocked()
}

// Len returns the number of cached verdicts
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Clear removes all cached verdicts and persists the empty store
func (c *Cache) Clear() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]Verdict)
	return c.saveLocked()
}

func (c *Cache) saveLocked() error {
	if c.path == "" {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(c.path), 0755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	data, err := yaml.Marshal(c.entries)
	if err != nil {
		return fmt.Errorf("failed to marshal verdict cache: %w", err)
	}

	if err := os.WriteFile(c.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write verdict cache: %w", err)
	}
	return nil
}
