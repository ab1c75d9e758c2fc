// Package cache holds the redis-backed cache for the open-postings
// listing, the hottest read path. The cache stores the unfiltered open
// list; per-worker (minor) filtering always happens after the fetch.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"staffhub_backend/internal/logger"
	"staffhub_backend/internal/models"
)

const openPostingsKey = "postings:open"

// PostingCache is nil-safe: a nil cache misses on every read and drops
// every write, so services work unchanged without redis configured.
type PostingCache struct {
	client *redis.Client
	ttl    time.Duration
}

// New connects to redis and returns nil when addr is empty or the
// server is unreachable; callers degrade to uncached reads.
func New(addr, password string, db int, ttl time.Duration) *PostingCache {
	if addr == "" {
		logger.Warn("posting cache disabled: no redis address configured")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Error("posting cache disabled: redis ping failed", "error", err)
		return nil
	}

	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &PostingCache{client: client, ttl: ttl}
}

// GetOpenPostings returns the cached open list, or nil on miss.
func (c *PostingCache) GetOpenPostings(ctx context.Context) []models.JobPosting {
	if c == nil {
		return nil
	}

	data, err := c.client.Get(ctx, openPostingsKey).Bytes()
	if err != nil {
		return nil
	}

	var postings []models.JobPosting
	if err := json.Unmarshal(data, &postings); err != nil {
		return nil
	}
	return postings
}

// SetOpenPostings stores the open list with the configured TTL.
func (c *PostingCache) SetOpenPostings(ctx context.Context, postings []models.JobPosting) {
	if c == nil {
		return
	}

	data, err := json.Marshal(postings)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, openPostingsKey, data, c.ttl).Err(); err != nil {
		logger.Warn("posting cache: set failed", "error", err)
	}
}

// InvalidateOpenPostings drops the cached list. Called after any write
// that changes posting visibility (create, fill, expiry sweep).
func (c *PostingCache) InvalidateOpenPostings(ctx context.Context) {
	if c == nil {
		return
	}
	if err := c.client.Del(ctx, openPostingsKey).Err(); err != nil {
		logger.Warn("posting cache: invalidate failed", "error", err)
	}
}
