package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := log.Logger
	prevLevel := zerolog.GlobalLevel()
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	t.Cleanup(func() {
		log.Logger = prev
		zerolog.SetGlobalLevel(prevLevel)
	})
	return &buf
}

func TestLogger(t *testing.T) {
	t.Run("logs request information", func(t *testing.T) {
		buf := captureLog(t)
		router := gin.New()
		router.Use(Logger())
		router.GET("/test", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "ok"})
		})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/test?param=value", nil)
		req.Header.Set("User-Agent", "test-agent")
		req.RemoteAddr = "203.0.113.45:5123"
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, buf.String(), `"level":"info"`)
		assert.Contains(t, buf.String(), `"query":"param=value"`)
		assert.Contains(t, buf.String(), `"ip":"203.0.113.xxx"`)
	})

	t.Run("assigns a request id", func(t *testing.T) {
		captureLog(t)
		router := gin.New()
		router.Use(Logger())
		var seen string
		router.GET("/test", func(c *gin.Context) {
			seen = RequestID(c)
			c.Status(http.StatusNoContent)
		})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/test", nil)
		router.ServeHTTP(w, req)

		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, w.Header().Get(RequestIDHeader))
	})

	t.Run("keeps caller request id", func(t *testing.T) {
		buf := captureLog(t)
		router := gin.New()
		router.Use(Logger())
		router.GET("/test", func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/test", nil)
		req.Header.Set(RequestIDHeader, "req-123")
		router.ServeHTTP(w, req)

		assert.Equal(t, "req-123", w.Header().Get(RequestIDHeader))
		assert.Contains(t, buf.String(), `"request_id":"req-123"`)
	})

	t.Run("level follows status", func(t *testing.T) {
		tests := []struct {
			path   string
			status int
			level  string
		}{
			{"/missing", http.StatusNotFound, "warn"},
			{"/broken", http.StatusInternalServerError, "error"},
			{"/health", http.StatusOK, "debug"},
		}

		for _, tt := range tests {
			buf := captureLog(t)
			router := gin.New()
			router.Use(Logger())
			router.GET(tt.path, func(c *gin.Context) {
				c.Status(tt.status)
			})

			w := httptest.NewRecorder()
			req, _ := http.NewRequest("GET", tt.path, nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			assert.Contains(t, buf.String(), `"level":"`+tt.level+`"`, tt.path)
		}
	})
}
