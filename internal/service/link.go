package service

import (
	"context"
	"errors"
	"time"

	"linkpulse/internal/model"
	"linkpulse/internal/repository"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// LinkService resolves short codes against the link registry with a Redis
// cache in front of MySQL
type LinkService struct {
	store    LinkStore
	cache    LinkCache
	cacheTTL time.Duration
	now      func() time.Time
}

// NewLinkService creates a new LinkService
func NewLinkService(store LinkStore, cache LinkCache, cacheTTL time.Duration) *LinkService {
	if cacheTTL <= 0 {
		cacheTTL = repository.DefaultLinkCacheTTL
	}
	return &LinkService{
		store:    store,
		cache:    cache,
		cacheTTL: cacheTTL,
		now:      time.Now,
	}
}

// FindActiveLink returns the link for shortCode if it may be followed.
// Expiry is checked before the disabled flag.
func (s *LinkService) FindActiveLink(ctx context.Context, shortCode string) (*model.Link, error) {
	link, err := s.lookup(ctx, shortCode)
	if err != nil {
		return nil, err
	}

	now := s.now()
	if link.IsExpired(now) {
		return nil, ErrLinkExpired
	}
	if link.IsDisabled() {
		return nil, ErrLinkDisabled
	}
	return link, nil
}

func (s *LinkService) lookup(ctx context.Context, shortCode string) (*model.Link, error) {
	if s.cache != nil {
		link, err := s.cache.GetLink(ctx, shortCode)
		if err == nil {
			return link, nil
		}
		if !errors.Is(err, redis.Nil) {
			log.Warn().Err(err).Str("short_code", shortCode).Msg("Link cache read failed")
		}
	}

	link, err := s.store.GetLinkByCode(ctx, shortCode)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrLinkNotFound
		}
		return nil, err
	}

	if ttl := s.ttlFor(link); s.cache != nil && ttl > 0 {
		if err := s.cache.SaveLink(ctx, link, ttl); err != nil {
			log.Warn().Err(err).Str("short_code", shortCode).Msg("Failed to cache link")
		}
	}
	return link, nil
}

// ttlFor caps the cache lifetime so a link never outlives its expiry in cache
func (s *LinkService) ttlFor(link *model.Link) time.Duration {
	ttl := s.cacheTTL
	if link.ExpiresAt != nil {
		if remaining := link.ExpiresAt.Sub(s.now()); remaining < ttl {
			ttl = remaining
		}
	}
	return ttl
}
