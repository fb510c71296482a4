package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"linkpulse/internal/mocks"
	"linkpulse/internal/model"
	"linkpulse/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRedirectRouter(h *RedirectHandler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.GET("/:shortCode", h.Redirect)
	return router
}

func TestNewRedirectHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewRedirectHandler(mocks.NewMockLinkServiceInterface(ctrl), mocks.NewMockClickDispatcher(ctrl), "https://sho.rt/")

	assert.NotNil(t, handler)
	assert.Equal(t, "https://sho.rt", handler.baseURL)
}

func TestRedirectHandler_Redirect(t *testing.T) {
	clickedAt := time.Date(2025, 3, 16, 10, 0, 0, 0, time.UTC)

	t.Run("successful redirect records click", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockLinkService := mocks.NewMockLinkServiceInterface(ctrl)
		mockDispatcher := mocks.NewMockClickDispatcher(ctrl)

		link := &model.Link{ID: 42, ShortCode: "abc123", TargetURL: "https://example.com/landing"}
		mockLinkService.EXPECT().FindActiveLink(gomock.Any(), "abc123").Return(link, nil)
		mockDispatcher.EXPECT().Dispatch(model.ClickInput{
			LinkID:        42,
			ShortCode:     "abc123",
			ClientAddress: "203.0.113.45",
			UserAgent:     "Mozilla/5.0 Firefox/121.0",
			Referrer:      "https://www.google.com/",
			Timestamp:     clickedAt,
		})

		h := NewRedirectHandler(mockLinkService, mockDispatcher, "https://sho.rt")
		h.now = func() time.Time { return clickedAt }
		router := newTestRedirectRouter(h)

		req := httptest.NewRequest(http.MethodGet, "/abc123", nil)
		req.Header.Set("X-Forwarded-For", "203.0.113.45, 10.0.0.1")
		req.Header.Set("User-Agent", "Mozilla/5.0 Firefox/121.0")
		req.Header.Set("Referer", "https://www.google.com/")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "https://example.com/landing", w.Header().Get("Location"))
	})

	t.Run("nil dispatcher still redirects", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockLinkService := mocks.NewMockLinkServiceInterface(ctrl)
		mockLinkService.EXPECT().FindActiveLink(gomock.Any(), "abc123").
			Return(&model.Link{ID: 1, ShortCode: "abc123", TargetURL: "https://example.com"}, nil)

		router := newTestRedirectRouter(NewRedirectHandler(mockLinkService, nil, "https://sho.rt"))

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/abc123", nil))

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "https://example.com", w.Header().Get("Location"))
	})

	outcomes := []struct {
		name     string
		err      error
		location string
	}{
		{name: "not found", err: service.ErrLinkNotFound, location: "https://sho.rt/404"},
		{name: "expired", err: service.ErrLinkExpired, location: "https://sho.rt/expired"},
		{name: "disabled", err: service.ErrLinkDisabled, location: "https://sho.rt/disabled"},
		{name: "storage failure", err: errors.New("connection refused"), location: "https://sho.rt/?error=redirect-failed"},
	}
	for _, tt := range outcomes {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockLinkService := mocks.NewMockLinkServiceInterface(ctrl)
			mockDispatcher := mocks.NewMockClickDispatcher(ctrl)
			mockLinkService.EXPECT().FindActiveLink(gomock.Any(), "gone").Return(nil, tt.err)
			mockDispatcher.EXPECT().Dispatch(gomock.Any()).Times(0)

			router := newTestRedirectRouter(NewRedirectHandler(mockLinkService, mockDispatcher, "https://sho.rt"))

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/gone", nil))

			assert.Equal(t, http.StatusFound, w.Code)
			assert.Equal(t, tt.location, w.Header().Get("Location"))
		})
	}
}

func TestClientAddress(t *testing.T) {
	tests := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		expected   string
	}{
		{
			name: "cloudflare header wins",
			headers: map[string]string{
				"CF-Connecting-IP": "198.51.100.1",
				"X-Real-IP":        "198.51.100.2",
				"X-Forwarded-For":  "198.51.100.3",
			},
			remoteAddr: "192.0.2.1:5000",
			expected:   "198.51.100.1",
		},
		{
			name:       "real ip before forwarded",
			headers:    map[string]string{"X-Real-IP": "198.51.100.2", "X-Forwarded-For": "198.51.100.3"},
			remoteAddr: "192.0.2.1:5000",
			expected:   "198.51.100.2",
		},
		{
			name:       "first forwarded entry",
			headers:    map[string]string{"X-Forwarded-For": " 198.51.100.3 , 10.0.0.1"},
			remoteAddr: "192.0.2.1:5000",
			expected:   "198.51.100.3",
		},
		{
			name:       "peer address",
			remoteAddr: "192.0.2.1:5000",
			expected:   "192.0.2.1",
		},
		{
			name:       "mapped address is unmapped",
			headers:    map[string]string{"X-Real-IP": "::ffff:203.0.113.9"},
			remoteAddr: "192.0.2.1:5000",
			expected:   "203.0.113.9",
		},
		{
			name:       "unparsable header is kept",
			headers:    map[string]string{"X-Real-IP": "unknown"},
			remoteAddr: "192.0.2.1:5000",
			expected:   "unknown",
		},
		{
			name:     "no source falls back to loopback",
			expected: "127.0.0.1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = req

			assert.Equal(t, tt.expected, ClientAddress(c))
		})
	}
}
