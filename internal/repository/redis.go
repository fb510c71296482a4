package repository

import (
	"context"
	"fmt"
	"time"

	"linkpulse/internal/config"
	"linkpulse/internal/model"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	// Redis key prefixes
	LinkKeyPrefix       = "lp:link:"
	DefaultLinkCacheTTL = time.Hour
)

// RedisRepository handles Redis operations
type RedisRepository struct {
	client *redis.Client
	cfg    *config.RedisConfig
}

// NewRedisRepository creates a new Redis repository
func NewRedisRepository(cfg *config.RedisConfig) *RedisRepository {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Error().Err(err).Msg("Failed to connect to Redis")
	} else {
		log.Info().Msg("Redis connected successfully")
	}

	return &RedisRepository{
		client: rdb,
		cfg:    cfg,
	}
}

// GetClient returns the Redis client
func (r *RedisRepository) GetClient() *redis.Client {
	return r.client
}

// SaveLink caches a link under its short code
func (r *RedisRepository) SaveLink(ctx context.Context, link *model.Link, ttl time.Duration) error {
	data, err := json.Marshal(link)
	if err != nil {
		return fmt.Errorf("failed to marshal link: %w", err)
	}
	if ttl <= 0 {
		ttl = r.defaultTTL()
	}
	return r.client.Set(ctx, r.linkKey(link.ShortCode), data, ttl).Err()
}

// GetLink retrieves a cached link. A miss returns redis.Nil.
func (r *RedisRepository) GetLink(ctx context.Context, shortCode string) (*model.Link, error) {
	data, err := r.client.Get(ctx, r.linkKey(shortCode)).Bytes()
	if err != nil {
		return nil, err
	}
	var link model.Link
	if err := json.Unmarshal(data, &link); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached link: %w", err)
	}
	return &link, nil
}

// Close closes the Redis connection
func (r *RedisRepository) Close() error {
	return r.client.Close()
}

func (r *RedisRepository) defaultTTL() time.Duration {
	if r.cfg != nil && r.cfg.LinkCacheTTL > 0 {
		return r.cfg.LinkCacheTTL
	}
	return DefaultLinkCacheTTL
}

func (r *RedisRepository) linkKey(shortCode string) string {
	return LinkKeyPrefix + shortCode
}
