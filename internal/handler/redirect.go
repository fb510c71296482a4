package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"linkpulse/internal/geo"
	"linkpulse/internal/metrics"
	"linkpulse/internal/model"
	"linkpulse/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Paths the redirect falls back to when a link cannot be followed
const (
	NotFoundPath       = "/404"
	ExpiredPath        = "/expired"
	DisabledPath       = "/disabled"
	RedirectFailedPath = "/?error=redirect-failed"
)

const fallbackClientAddress = "127.0.0.1"

// RedirectHandler handles short link redirection
type RedirectHandler struct {
	linkService service.LinkServiceInterface
	dispatcher  service.ClickDispatcher
	baseURL     string
	now         func() time.Time
}

// NewRedirectHandler creates a new RedirectHandler. Outcome pages are
// resolved against baseURL.
func NewRedirectHandler(
	linkService service.LinkServiceInterface,
	dispatcher service.ClickDispatcher,
	baseURL string,
) *RedirectHandler {
	return &RedirectHandler{
		linkService: linkService,
		dispatcher:  dispatcher,
		baseURL:     strings.TrimRight(baseURL, "/"),
		now:         time.Now,
	}
}

// Redirect handles GET /:shortCode
// @Summary Redirect to the target URL
// @Description Redirects to the target URL for the given short code and records the click
// @Tags redirect
// @Param shortCode path string true "Short code"
// @Success 302
// @Router /{shortCode} [get]
func (h *RedirectHandler) Redirect(c *gin.Context) {
	shortCode := c.Param("shortCode")

	link, err := h.linkService.FindActiveLink(c.Request.Context(), shortCode)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrLinkNotFound):
			h.redirectOutcome(c, "not_found", NotFoundPath)
		case errors.Is(err, service.ErrLinkExpired):
			h.redirectOutcome(c, "expired", ExpiredPath)
		case errors.Is(err, service.ErrLinkDisabled):
			h.redirectOutcome(c, "disabled", DisabledPath)
		default:
			log.Error().Err(err).Str("short_code", shortCode).Msg("Failed to resolve short link")
			h.redirectOutcome(c, "error", RedirectFailedPath)
		}
		return
	}

	if h.dispatcher != nil {
		h.dispatcher.Dispatch(model.ClickInput{
			LinkID:        link.ID,
			ShortCode:     link.ShortCode,
			ClientAddress: ClientAddress(c),
			UserAgent:     c.Request.UserAgent(),
			Referrer:      c.Request.Referer(),
			Timestamp:     h.now(),
		})
	}

	metrics.Redirects.WithLabelValues("found").Inc()
	c.Redirect(http.StatusFound, link.TargetURL)
}

func (h *RedirectHandler) redirectOutcome(c *gin.Context, outcome, path string) {
	metrics.Redirects.WithLabelValues(outcome).Inc()
	c.Redirect(http.StatusFound, h.baseURL+path)
}

// ClientAddress picks the client address from proxy headers in the order
// CF-Connecting-IP, X-Real-IP, first X-Forwarded-For entry, then the
// transport peer. IPv4-mapped IPv6 addresses are reduced to IPv4.
func ClientAddress(c *gin.Context) string {
	candidates := []string{
		c.GetHeader("CF-Connecting-IP"),
		c.GetHeader("X-Real-IP"),
		firstForwarded(c.GetHeader("X-Forwarded-For")),
		c.RemoteIP(),
	}
	for _, candidate := range candidates {
		candidate = strings.TrimSpace(candidate)
		if candidate == "" {
			continue
		}
		if addr, ok := geo.NormalizeAddress(candidate); ok {
			return addr.String()
		}
		return candidate
	}
	return fallbackClientAddress
}

func firstForwarded(header string) string {
	first, _, _ := strings.Cut(header, ",")
	return first
}
