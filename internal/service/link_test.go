package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"linkpulse/internal/mocks"
	"linkpulse/internal/model"
	"linkpulse/internal/repository"

	"github.com/golang/mock/gomock"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinkService_FindActiveLink(t *testing.T) {
	now := time.Date(2025, 3, 16, 10, 0, 0, 0, time.UTC)
	future := now.Add(30 * time.Minute)
	past := now.Add(-time.Minute)

	tests := []struct {
		name      string
		setup     func(store *mocks.MockLinkStore, cache *mocks.MockLinkCache)
		expectErr error
		expectURL string
	}{
		{
			name: "cache hit",
			setup: func(store *mocks.MockLinkStore, cache *mocks.MockLinkCache) {
				cache.EXPECT().GetLink(gomock.Any(), "abc123").Return(&model.Link{
					ID: 1, ShortCode: "abc123", TargetURL: "https://example.com", Status: model.LinkStatusActive,
				}, nil)
			},
			expectURL: "https://example.com",
		},
		{
			name: "cache miss falls back to mysql and caches",
			setup: func(store *mocks.MockLinkStore, cache *mocks.MockLinkCache) {
				link := &model.Link{ID: 1, ShortCode: "abc123", TargetURL: "https://example.com/a", Status: model.LinkStatusActive}
				cache.EXPECT().GetLink(gomock.Any(), "abc123").Return(nil, redis.Nil)
				store.EXPECT().GetLinkByCode(gomock.Any(), "abc123").Return(link, nil)
				cache.EXPECT().SaveLink(gomock.Any(), link, time.Hour).Return(nil)
			},
			expectURL: "https://example.com/a",
		},
		{
			name: "cache ttl is capped at expiry",
			setup: func(store *mocks.MockLinkStore, cache *mocks.MockLinkCache) {
				link := &model.Link{ID: 1, ShortCode: "abc123", TargetURL: "https://example.com/b", Status: model.LinkStatusActive, ExpiresAt: &future}
				cache.EXPECT().GetLink(gomock.Any(), "abc123").Return(nil, redis.Nil)
				store.EXPECT().GetLinkByCode(gomock.Any(), "abc123").Return(link, nil)
				cache.EXPECT().SaveLink(gomock.Any(), link, 30*time.Minute).Return(nil)
			},
			expectURL: "https://example.com/b",
		},
		{
			name: "cache failure still resolves",
			setup: func(store *mocks.MockLinkStore, cache *mocks.MockLinkCache) {
				link := &model.Link{ID: 1, ShortCode: "abc123", TargetURL: "https://example.com/c", Status: model.LinkStatusActive}
				cache.EXPECT().GetLink(gomock.Any(), "abc123").Return(nil, errors.New("redis down"))
				store.EXPECT().GetLinkByCode(gomock.Any(), "abc123").Return(link, nil)
				cache.EXPECT().SaveLink(gomock.Any(), link, gomock.Any()).Return(errors.New("redis down"))
			},
			expectURL: "https://example.com/c",
		},
		{
			name: "unknown code",
			setup: func(store *mocks.MockLinkStore, cache *mocks.MockLinkCache) {
				cache.EXPECT().GetLink(gomock.Any(), "abc123").Return(nil, redis.Nil)
				store.EXPECT().GetLinkByCode(gomock.Any(), "abc123").Return(nil, &repository.StorageError{
					Op: "get_link", Attempts: 1, Err: repository.ErrNotFound,
				})
			},
			expectErr: ErrLinkNotFound,
		},
		{
			name: "storage failure propagates",
			setup: func(store *mocks.MockLinkStore, cache *mocks.MockLinkCache) {
				cache.EXPECT().GetLink(gomock.Any(), "abc123").Return(nil, redis.Nil)
				store.EXPECT().GetLinkByCode(gomock.Any(), "abc123").Return(nil, errors.New("too many connections"))
			},
			expectErr: errors.New("too many connections"),
		},
		{
			name: "expired link from cache",
			setup: func(store *mocks.MockLinkStore, cache *mocks.MockLinkCache) {
				cache.EXPECT().GetLink(gomock.Any(), "abc123").Return(&model.Link{
					ID: 1, ShortCode: "abc123", Status: model.LinkStatusActive, ExpiresAt: &past,
				}, nil)
			},
			expectErr: ErrLinkExpired,
		},
		{
			name: "expiry is checked before disabled",
			setup: func(store *mocks.MockLinkStore, cache *mocks.MockLinkCache) {
				cache.EXPECT().GetLink(gomock.Any(), "abc123").Return(nil, redis.Nil)
				store.EXPECT().GetLinkByCode(gomock.Any(), "abc123").Return(&model.Link{
					ID: 1, ShortCode: "abc123", Status: model.LinkStatusDisabled, ExpiresAt: &past,
				}, nil)
			},
			expectErr: ErrLinkExpired,
		},
		{
			name: "disabled link",
			setup: func(store *mocks.MockLinkStore, cache *mocks.MockLinkCache) {
				link := &model.Link{ID: 1, ShortCode: "abc123", Status: model.LinkStatusDisabled}
				cache.EXPECT().GetLink(gomock.Any(), "abc123").Return(nil, redis.Nil)
				store.EXPECT().GetLinkByCode(gomock.Any(), "abc123").Return(link, nil)
				cache.EXPECT().SaveLink(gomock.Any(), link, time.Hour).Return(nil)
			},
			expectErr: ErrLinkDisabled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mocks.NewMockLinkStore(ctrl)
			cache := mocks.NewMockLinkCache(ctrl)
			tt.setup(store, cache)

			svc := NewLinkService(store, cache, time.Hour)
			svc.now = func() time.Time { return now }

			link, err := svc.FindActiveLink(context.Background(), "abc123")
			if tt.expectErr != nil {
				require.Error(t, err)
				assert.Nil(t, link)
				if errors.Is(tt.expectErr, ErrLinkNotFound) || errors.Is(tt.expectErr, ErrLinkExpired) || errors.Is(tt.expectErr, ErrLinkDisabled) {
					assert.ErrorIs(t, err, tt.expectErr)
				} else {
					assert.EqualError(t, err, tt.expectErr.Error())
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectURL, link.TargetURL)
		})
	}
}

func TestNewLinkService_DefaultTTL(t *testing.T) {
	svc := NewLinkService(nil, nil, 0)
	assert.Equal(t, repository.DefaultLinkCacheTTL, svc.cacheTTL)
}
