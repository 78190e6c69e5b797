package artwork

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const cacheKeyPrefix = "artwork:" // Cached catalog record: artwork:{artwork_id}

// Fetcher fetches a single artwork from the catalog.
type Fetcher interface {
	GetArtwork(ctx context.Context, artworkID int64) (*Artwork, error)
}

// Cache wraps catalog lookups with a Redis-backed cache. Successful lookups
// are kept for the configured TTL; not-found and failed lookups are never
// cached, so the next call queries the catalog again. All catalog access in
// the backend goes through this type.
type Cache struct {
	fetcher Fetcher
	rdb     *redis.Client
	ttl     time.Duration
}

func NewCache(fetcher Fetcher, rdb *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Cache{fetcher: fetcher, rdb: rdb, ttl: ttl}
}

// Lookup returns the artwork for artworkID, from cache when possible.
// Returns ErrNotFound when the catalog does not know the ID and ErrLookup
// when the catalog cannot be consulted.
func (c *Cache) Lookup(ctx context.Context, artworkID int64) (*Artwork, error) {
	key := c.key(artworkID)

	data, err := c.rdb.Get(ctx, key).Result()
	if err == nil {
		var art Artwork
		if jsonErr := json.Unmarshal([]byte(data), &art); jsonErr == nil {
			return &art, nil
		}
		// Unreadable entry: drop it and fall through to the catalog.
		c.rdb.Del(ctx, key)
	} else if !errors.Is(err, redis.Nil) {
		log.Printf("[warn] operation=artwork_cache_get artwork_id=%d error=%v", artworkID, err)
	}

	return c.Refresh(ctx, artworkID)
}

// Refresh fetches artworkID from the catalog and re-populates the cache,
// bypassing any existing entry.
func (c *Cache) Refresh(ctx context.Context, artworkID int64) (*Artwork, error) {
	art, err := c.fetcher.GetArtwork(ctx, artworkID)
	if err != nil {
		return nil, err
	}

	encoded, err := json.Marshal(art)
	if err != nil {
		return art, nil
	}
	if err := c.rdb.Set(ctx, c.key(artworkID), encoded, c.ttl).Err(); err != nil {
		// A cache write failure must not fail the lookup.
		log.Printf("[warn] operation=artwork_cache_set artwork_id=%d error=%v", artworkID, err)
	}

	return art, nil
}

func (c *Cache) key(artworkID int64) string {
	return fmt.Sprintf("%s%d", cacheKeyPrefix, artworkID)
}
