package library

import (
	"container/list"
	"sync"

	"github.com/FocuswithJustin/chalk/core/ast"
)

// CacheStats contains parse cache counters.
type CacheStats struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
	MaxSize   int
}

// parseCache is a thread-safe LRU cache of parse results keyed by
// content digest. Entries never go stale: identical bytes parse to the
// same tree, so there is no expiry, only LRU eviction.
type parseCache struct {
	mu        sync.RWMutex
	maxSize   int
	entries   map[string]*list.Element
	evictList *list.List
	stats     CacheStats
}

type cacheEntry struct {
	digest string
	doc    *ast.Document
}

// newParseCache builds a cache holding at most maxSize parse results.
// A maxSize of 0 disables eviction.
func newParseCache(maxSize int) *parseCache {
	if maxSize < 0 {
		maxSize = 0
	}
	return &parseCache{
		maxSize:   maxSize,
		entries:   make(map[string]*list.Element),
		evictList: list.New(),
	}
}

func (c *parseCache) get(digest string) (*ast.Document, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ent, ok := c.entries[digest]
	if !ok {
		c.stats.Misses++
		return nil, false
	}
	c.evictList.MoveToFront(ent)
	c.stats.Hits++
	return ent.Value.(*cacheEntry).doc, true
}

func (c *parseCache) put(digest string, doc *ast.Document) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ent, ok := c.entries[digest]; ok {
		c.evictList.MoveToFront(ent)
		ent.Value.(*cacheEntry).doc = doc
		return
	}

	ent := c.evictList.PushFront(&cacheEntry{digest: digest, doc: doc})
	c.entries[digest] = ent

	if c.maxSize > 0 && c.evictList.Len() > c.maxSize {
		oldest := c.evictList.Back()
		if oldest != nil {
			c.evictList.Remove(oldest)
			delete(c.entries, oldest.Value.(*cacheEntry).digest)
			c.stats.Evictions++
		}
	}
}

func (c *parseCache) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.evictList.Len()
}

// Stats returns a snapshot of the cache counters.
func (c *parseCache) Stats() CacheStats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	s := c.stats
	s.Size = c.evictList.Len()
	s.MaxSize = c.maxSize
	return s
}
