package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// BearerAuth rejects requests whose Authorization header is not
// "Bearer <secret>". With an empty secret every request is rejected.
func BearerAuth(secret string) gin.HandlerFunc {
	expected := []byte("Bearer " + secret)

	return func(c *gin.Context) {
		header := strings.TrimSpace(c.GetHeader("Authorization"))
		if secret == "" || subtle.ConstantTimeCompare([]byte(header), expected) != 1 {
			log.Warn().
				Str("request_id", RequestID(c)).
				Str("path", c.Request.URL.Path).
				Bool("secret_configured", secret != "").
				Msg("Unauthorized request")

			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code":    http.StatusUnauthorized,
				"message": "Invalid or missing bearer token",
			})
			return
		}
		c.Next()
	}
}
