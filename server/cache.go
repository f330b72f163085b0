package server

import (
	"container/list"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sync"
)

// payloadKey derives the cache key for a raw payload. Rendering is a pure
// function of the payload bytes, so identical bytes always map to an
// identical response.
func payloadKey(content json.RawMessage) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}

// renderCache memoizes render responses by payload key. It evicts the least
// recently used entry once full and is safe for concurrent use.
type renderCache struct {
	mu      sync.Mutex
	maxSize int
	entries map[string]*list.Element
	order   *list.List
}

type cacheEntry struct {
	key   string
	value RenderResponse
}

func newRenderCache(maxSize int) *renderCache {
	if maxSize <= 0 {
		maxSize = 1
	}
	return &renderCache{
		maxSize: maxSize,
		entries: make(map[string]*list.Element),
		order:   list.New(),
	}
}

func (c *renderCache) get(key string) (RenderResponse, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	element, found := c.entries[key]
	if !found {
		return RenderResponse{}, false
	}
	c.order.MoveToFront(element)
	return element.Value.(*cacheEntry).value, true
}

func (c *renderCache) put(key string, value RenderResponse) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if element, found := c.entries[key]; found {
		element.Value.(*cacheEntry).value = value
		c.order.MoveToFront(element)
		return
	}

	c.entries[key] = c.order.PushFront(&cacheEntry{key: key, value: value})

	if c.order.Len() > c.maxSize {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.entries, oldest.Value.(*cacheEntry).key)
	}
}

func (c *renderCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}
