package watcher

import (
	"os"
	"sync"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/attune/internal/core/domain"
)

// ContentCache tracks content digests of watched files so that events which
// do not change file content (metadata touches, editor save dances that end
// in identical bytes) can be suppressed.
type ContentCache struct {
	mu   sync.Mutex
	sums map[domain.InternedString]uint64
}

// NewContentCache creates an empty content cache.
func NewContentCache() *ContentCache {
	return &ContentCache{
		sums: make(map[domain.InternedString]uint64),
	}
}

// Refresh recomputes the digest of the file at path and reports whether it
// differs from the previously recorded one. A file that cannot be read is
// recorded as absent; transitions to or from absence count as changes.
func (c *ContentCache) Refresh(path string) bool {
	handle := domain.NewInternedString(path)
	sum, ok := c.digest(path)

	c.mu.Lock()
	defer c.mu.Unlock()

	prev, had := c.sums[handle]
	if !ok {
		delete(c.sums, handle)
		return had
	}
	c.sums[handle] = sum
	return !had || prev != sum
}

// Forget drops the recorded digest for path.
func (c *ContentCache) Forget(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.sums, domain.NewInternedString(path))
}

func (c *ContentCache) digest(path string) (uint64, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, false
	}
	return xxhash.Sum64(data), true
}
