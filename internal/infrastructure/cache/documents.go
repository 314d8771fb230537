package cache

import (
	"bytes"
	"fmt"

	"github.com/cespare/xxhash/v2"

	"github.com/bnema/dockyard/internal/application/port"
	"github.com/bnema/dockyard/internal/domain/entity"
)

// DefaultDocumentCapacity bounds a DocumentCache created with a
// non-positive capacity.
const DefaultDocumentCapacity = 32

type documentKey struct {
	format string
	digest uint64
}

// DocumentCache memoizes codec decoding. Identical bytes decoded with the
// same codec share one document, which callers must treat as read-only.
type DocumentCache struct {
	lru *LRU[documentKey, *entity.LayoutDocument]
}

// NewDocumentCache creates a cache for up to capacity documents.
func NewDocumentCache(capacity int) *DocumentCache {
	if capacity <= 0 {
		capacity = DefaultDocumentCapacity
	}
	return &DocumentCache{lru: NewLRU[documentKey, *entity.LayoutDocument](capacity)}
}

// Decode returns the document encoded in data, decoding it only when the
// same bytes have not been seen with this codec. hit reports a cache hit.
func (c *DocumentCache) Decode(codec port.LayoutCodec, data []byte) (doc *entity.LayoutDocument, hit bool, err error) {
	key := documentKey{format: codec.Name(), digest: xxhash.Sum64(data)}
	if doc, ok := c.lru.Get(key); ok {
		return doc, true, nil
	}

	doc, err = codec.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, false, fmt.Errorf("decode %s layout: %w", codec.Name(), err)
	}
	c.lru.Set(key, doc)
	return doc, false, nil
}

// Forget drops the entry for data decoded with format.
func (c *DocumentCache) Forget(format string, data []byte) {
	c.lru.Remove(documentKey{format: format, digest: xxhash.Sum64(data)})
}

// Len returns the number of cached documents.
func (c *DocumentCache) Len() int {
	return c.lru.Len()
}
