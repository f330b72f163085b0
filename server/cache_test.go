package server

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"answer-guard/types"
)

// cachedResponse builds a distinguishable value; the session tag stands in
// for real tree content.
func cachedResponse(tag string) RenderResponse {
	return RenderResponse{Meta: types.Meta{Schema: types.SchemaV2, SessionID: tag}}
}

func TestPayloadKeyIsStable(t *testing.T) {
	a := payloadKey(json.RawMessage(`{"x":1}`))
	b := payloadKey(json.RawMessage(`{"x":1}`))
	c := payloadKey(json.RawMessage(`{"x":2}`))

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 64)
}

func TestRenderCacheEvictsLeastRecentlyUsed(t *testing.T) {
	cache := newRenderCache(2)

	cache.put("a", cachedResponse("a"))
	cache.put("b", cachedResponse("b"))

	// Touch "a" so "b" becomes the eviction candidate.
	_, found := cache.get("a")
	assert.True(t, found)

	cache.put("c", cachedResponse("c"))
	assert.Equal(t, 2, cache.len())

	_, found = cache.get("b")
	assert.False(t, found)
	_, found = cache.get("a")
	assert.True(t, found)
	_, found = cache.get("c")
	assert.True(t, found)
}

func TestRenderCachePutOverwrites(t *testing.T) {
	cache := newRenderCache(4)

	cache.put("k", cachedResponse("first"))
	cache.put("k", cachedResponse("second"))

	got, found := cache.get("k")
	assert.True(t, found)
	assert.Equal(t, cachedResponse("second"), got)
	assert.Equal(t, 1, cache.len())
}

func TestRenderCacheMinimumSize(t *testing.T) {
	cache := newRenderCache(0)

	cache.put("a", cachedResponse("a"))
	cache.put("b", cachedResponse("b"))
	assert.Equal(t, 1, cache.len())
}
