package engine

import (
	"strings"
	"sync"

	"github.com/munim/organize-bitwarden-folders-ai/internal/model"
)

// CacheEntry holds the classification recorded for a domain.
type CacheEntry struct {
	Category   string
	Reason     string
	Confidence int
}

// DomainCache maps lowercase hostnames to their last classification result.
// It lives for exactly one pipeline run: constructed at run start, passed by
// reference into every batch, discarded at run end. Safe for concurrent
// reads; writes happen only while a batch applies its service response.
type DomainCache struct {
	entries map[string]CacheEntry
	mu      sync.RWMutex
}

// NewDomainCache creates an empty run-scoped cache.
func NewDomainCache() *DomainCache {
	return &DomainCache{entries: make(map[string]CacheEntry)}
}

// Get returns the entry for domain, if present.
func (c *DomainCache) Get(domain string) (CacheEntry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.entries[strings.ToLower(domain)]
	return entry, ok
}

// Set records the classification for domain, overwriting any earlier batch's
// entry.
func (c *DomainCache) Set(domain string, entry CacheEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[strings.ToLower(domain)] = entry
}

// Len returns the number of cached domains.
func (c *DomainCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Result materializes a cache entry as the classification for one item.
func (e CacheEntry) Result(item *model.Item) model.Result {
	return model.Result{
		ID:         item.ID,
		Name:       item.Name,
		Category:   e.Category,
		Confidence: e.Confidence,
		Reason:     e.Reason,
	}
}
