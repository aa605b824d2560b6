package question

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultCacheTTL = 2 * time.Minute

// Cache provides Redis-backed pack caching to cut provider spend on
// repeated (topic, count, difficulty) requests. The TTL is short so the
// same quiz does not serve identical questions for long.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

var _ PackCache = (*Cache)(nil)

// NewCache creates a pack cache with the given TTL (<=0 uses the default).
func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &Cache{client: client, ttl: ttl}
}

func (c *Cache) key(req GenerateRequest) string {
	return strings.Join([]string{
		"questionpack",
		strings.ToLower(req.Topic),
		strings.ToLower(req.Difficulty),
		fmt.Sprint(req.Count),
	}, ":")
}

// Get returns the cached pack for the request, or nil on a miss.
func (c *Cache) Get(ctx context.Context, req GenerateRequest) (*Pack, error) {
	data, err := c.client.Get(ctx, c.key(req)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}
	var pack Pack
	if err := json.Unmarshal(data, &pack); err != nil {
		return nil, err
	}
	return &pack, nil
}

// Set stores a pack under the request key for the cache TTL.
func (c *Cache) Set(ctx context.Context, req GenerateRequest, pack Pack) error {
	data, err := json.Marshal(pack)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(req), data, c.ttl).Err()
}
