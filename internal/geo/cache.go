package geo

import (
	"context"
	"fmt"
	"time"

	"linkpulse/internal/model"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

const (
	GeoKeyPrefix    = "lp:geo:"
	DefaultCacheTTL = 24 * time.Hour
)

// Cache stores resolved locations per IP. Get returns redis.Nil on a miss.
type Cache interface {
	Get(ctx context.Context, ip string) (*model.GeoLookupResult, error)
	Set(ctx context.Context, ip string, loc *model.GeoLookupResult) error
}

// RedisCache is a Cache backed by Redis
type RedisCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewRedisCache creates a new Redis-backed geolocation cache
func NewRedisCache(client redis.Cmdable, ttl time.Duration) *RedisCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &RedisCache{client: client, ttl: ttl}
}

// Get returns the cached location for ip
func (c *RedisCache) Get(ctx context.Context, ip string) (*model.GeoLookupResult, error) {
	data, err := c.client.Get(ctx, GeoKeyPrefix+ip).Bytes()
	if err != nil {
		return nil, err
	}
	var loc model.GeoLookupResult
	if err := json.Unmarshal(data, &loc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached location: %w", err)
	}
	return &loc, nil
}

// Set caches the location for ip
func (c *RedisCache) Set(ctx context.Context, ip string, loc *model.GeoLookupResult) error {
	data, err := json.Marshal(loc)
	if err != nil {
		return fmt.Errorf("failed to marshal location: %w", err)
	}
	return c.client.Set(ctx, GeoKeyPrefix+ip, data, c.ttl).Err()
}
