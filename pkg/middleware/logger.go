package middleware

import (
	"time"

	"linkpulse/pkg/util"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	// RequestIDHeader carries the request ID in and out
	RequestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

// quietPaths are polled by infrastructure and logged at debug level
var quietPaths = map[string]bool{
	"/health":  true,
	"/metrics": true,
}

// Logger returns a gin middleware for logging. Each request gets an ID,
// taken from X-Request-ID when the caller sent one.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = util.GenerateUUID()
		}
		c.Set(requestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)

		c.Next()

		status := c.Writer.Status()
		event := levelFor(path, status)
		if len(c.Errors) > 0 {
			event = event.Str("errors", c.Errors.String())
		}

		event.
			Str("request_id", requestID).
			Str("method", c.Request.Method).
			Str("path", path).
			Str("query", query).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("ip", util.MaskIP(c.ClientIP())).
			Str("user_agent", c.Request.UserAgent()).
			Msg("HTTP request")
	}
}

func levelFor(path string, status int) *zerolog.Event {
	switch {
	case status >= 500:
		return log.Error()
	case status >= 400:
		return log.Warn()
	case quietPaths[path]:
		return log.Debug()
	default:
		return log.Info()
	}
}

// RequestID returns the ID assigned to the request by Logger
func RequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
