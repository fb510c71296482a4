package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linkpulse/internal/config"
	"linkpulse/internal/model"
)

func newTestRedisRepo(t *testing.T) (*RedisRepository, *miniredis.Miniredis) {
	s := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: s.Addr()})

	return &RedisRepository{
		client: client,
		cfg: &config.RedisConfig{
			Addr:         s.Addr(),
			LinkCacheTTL: 30 * time.Minute,
		},
	}, s
}

func TestNewRedisRepository(t *testing.T) {
	s := miniredis.RunT(t)
	defer s.Close()

	cfg := &config.RedisConfig{
		Addr:     s.Addr(),
		Password: "",
		DB:       0,
	}

	repo := NewRedisRepository(cfg)

	assert.NotNil(t, repo)
	assert.NotNil(t, repo.GetClient())
	assert.Equal(t, cfg, repo.cfg)

	repo.Close()
}

func TestRedisRepository_SaveAndGetLink(t *testing.T) {
	repo, s := newTestRedisRepo(t)
	defer repo.Close()

	ctx := context.Background()
	expires := time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)
	link := &model.Link{
		ID:        9,
		ShortCode: "abc123",
		TargetURL: "https://example.com/landing",
		ExpiresAt: &expires,
		Status:    model.LinkStatusActive,
	}

	err := repo.SaveLink(ctx, link, time.Minute)
	require.NoError(t, err)

	got, err := repo.GetLink(ctx, "abc123")
	require.NoError(t, err)
	assert.Equal(t, int64(9), got.ID)
	assert.Equal(t, "https://example.com/landing", got.TargetURL)
	require.NotNil(t, got.ExpiresAt)
	assert.True(t, expires.Equal(*got.ExpiresAt))

	assert.Equal(t, time.Minute, s.TTL(LinkKeyPrefix+"abc123"))
}

func TestRedisRepository_SaveLink_DefaultTTL(t *testing.T) {
	repo, s := newTestRedisRepo(t)
	defer repo.Close()

	err := repo.SaveLink(context.Background(), &model.Link{ShortCode: "ttl"}, 0)
	require.NoError(t, err)

	assert.Equal(t, 30*time.Minute, s.TTL(LinkKeyPrefix+"ttl"))
}

func TestRedisRepository_GetLink_Miss(t *testing.T) {
	repo, _ := newTestRedisRepo(t)
	defer repo.Close()

	got, err := repo.GetLink(context.Background(), "nope")
	assert.Nil(t, got)
	assert.ErrorIs(t, err, redis.Nil)
}

func TestRedisRepository_GetLink_Corrupt(t *testing.T) {
	repo, s := newTestRedisRepo(t)
	defer repo.Close()

	require.NoError(t, s.Set(LinkKeyPrefix+"bad", "{not json"))

	got, err := repo.GetLink(context.Background(), "bad")
	assert.Nil(t, got)
	assert.Error(t, err)
}
