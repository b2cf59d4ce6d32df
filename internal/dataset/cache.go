package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/Obaid38/USDeathsByPolice/internal/cache"
)

// CachingLoader wraps a Loader with a parsed-dataset cache so batch runs
// over overlapping snapshots do not reparse the same file
type CachingLoader struct {
	loader *Loader
	cache  cache.Cache
	ttl    time.Duration
}

// NewCachingLoader creates a caching loader. A nil cache disables caching.
func NewCachingLoader(loader *Loader, c cache.Cache, ttl time.Duration) *CachingLoader {
	return &CachingLoader{
		loader: loader,
		cache:  c,
		ttl:    ttl,
	}
}

// Load returns the parsed dataset, from cache when possible. Cache keys
// include the file modification time, so an edited snapshot is reparsed.
func (c *CachingLoader) Load(path string) (*LoadResult, error) {
	if c.cache == nil {
		return c.loader.Load(path)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat dataset: %w", err)
	}

	key := cache.DatasetKey(path, info.ModTime())

	if data, found := c.cache.Get(key); found {
		var result LoadResult
		if err := json.Unmarshal(data, &result); err == nil {
			return &result, nil
		}
		// Undecodable entry: fall through to a fresh parse
		_ = c.cache.Delete(key)
	}

	result, err := c.loader.Load(path)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(result); err == nil {
		_ = c.cache.Set(key, data, c.ttl)
	}

	return result, nil
}
