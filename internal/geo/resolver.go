package geo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"linkpulse/internal/config"
	"linkpulse/internal/metrics"
	"linkpulse/internal/model"

	"github.com/rs/zerolog/log"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"
)

const (
	maxResponseBytes  = 64 << 10
	breakerTripAfter  = 5
	breakerOpenPeriod = 30 * time.Second
)

// Resolver attributes client addresses to locations by asking each
// configured provider in turn. It never fails: callers always get a result.
type Resolver struct {
	chain  []*chainEntry
	client *http.Client
	cache  Cache
	local  model.GeoLookupResult
}

type chainEntry struct {
	provider Provider
	breaker  *gobreaker.CircuitBreaker[*model.GeoLookupResult]
	limiter  *rate.Limiter
}

// Option configures a Resolver
type Option func(*Resolver)

// WithHTTPClient overrides the HTTP client used for provider calls
func WithHTTPClient(client *http.Client) Option {
	return func(r *Resolver) {
		r.client = client
	}
}

// WithCache puts a cache in front of the provider chain
func WithCache(cache Cache) Option {
	return func(r *Resolver) {
		r.cache = cache
	}
}

// NewResolver creates a new Resolver from the geo configuration
func NewResolver(cfg *config.GeoConfig, opts ...Option) (*Resolver, error) {
	r := &Resolver{
		client: &http.Client{},
		local:  localLocation(cfg.LocalDefault),
	}

	for _, pc := range cfg.Providers {
		if pc.Disabled {
			continue
		}
		p, err := NewProvider(pc)
		if err != nil {
			return nil, err
		}
		r.chain = append(r.chain, newChainEntry(p, pc.RatePerMinute))
	}

	for _, opt := range opts {
		opt(r)
	}

	log.Info().Int("providers", len(r.chain)).Msg("Geolocation resolver ready")
	return r, nil
}

func newChainEntry(p Provider, ratePerMinute int) *chainEntry {
	entry := &chainEntry{provider: p}

	entry.breaker = gobreaker.NewCircuitBreaker[*model.GeoLookupResult](gobreaker.Settings{
		Name:        "geo-" + p.Name(),
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     breakerOpenPeriod,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= breakerTripAfter
		},
		IsSuccessful: func(err error) bool {
			// A provider that answers "no data" is healthy.
			return err == nil || errors.Is(err, ErrRejected)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("Geolocation circuit breaker state changed")
		},
	})

	if ratePerMinute > 0 {
		entry.limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(ratePerMinute)), ratePerMinute)
	}
	return entry
}

// Resolve returns the location of address. Loopback and private addresses
// get the configured local location without any network call. When no
// provider can place the address the unknown sentinel is returned.
func (r *Resolver) Resolve(ctx context.Context, address string) *model.GeoLookupResult {
	addr, ok := NormalizeAddress(address)
	if !ok {
		log.Debug().Str("address", address).Msg("Unparsable client address")
		return model.UnknownLocation()
	}
	if IsLocal(addr) {
		loc := r.local
		return &loc
	}

	ip := addr.String()
	if r.cache != nil {
		if loc, err := r.cache.Get(ctx, ip); err == nil && loc != nil {
			metrics.GeoLookups.WithLabelValues("cache", "hit").Inc()
			return loc
		}
	}

	for _, entry := range r.chain {
		name := entry.provider.Name()

		loc, err := r.lookup(ctx, entry, ip)
		if err != nil {
			metrics.GeoLookups.WithLabelValues(name, outcome(err)).Inc()
			log.Debug().Err(err).Str("provider", name).Str("ip", ip).Msg("Geolocation provider failed")
			continue
		}

		metrics.GeoLookups.WithLabelValues(name, "success").Inc()
		if r.cache != nil {
			if err := r.cache.Set(ctx, ip, loc); err != nil {
				log.Warn().Err(err).Str("ip", ip).Msg("Failed to cache geolocation")
			}
		}
		return loc
	}

	log.Warn().Str("ip", ip).Msg("All geolocation providers failed")
	return model.UnknownLocation()
}

func (r *Resolver) lookup(ctx context.Context, entry *chainEntry, ip string) (*model.GeoLookupResult, error) {
	if entry.limiter != nil && !entry.limiter.Allow() {
		return nil, ErrRateLimited
	}
	return entry.breaker.Execute(func() (*model.GeoLookupResult, error) {
		return r.call(ctx, entry.provider, ip)
	})
}

func (r *Resolver) call(ctx context.Context, p Provider, ip string) (*model.GeoLookupResult, error) {
	ctx, cancel := context.WithTimeout(ctx, p.Timeout())
	defer cancel()

	req, err := p.NewRequest(ctx, ip)
	if err != nil {
		return nil, err
	}
	resp, err := r.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s responded with %d: %w", p.Name(), resp.StatusCode, ErrProviderStatus)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, err
	}
	return p.Parse(body)
}

func outcome(err error) string {
	switch {
	case errors.Is(err, ErrRejected):
		return "rejected"
	case errors.Is(err, ErrRateLimited):
		return "rate_limited"
	case errors.Is(err, ErrProviderStatus):
		return "bad_status"
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return "circuit_open"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	default:
		return "error"
	}
}

func localLocation(c config.LocationConfig) model.GeoLookupResult {
	loc := model.GeoLookupResult{
		CountryCode:  optional(c.CountryCode),
		CountryName:  optional(c.CountryName),
		Region:       optional(c.Region),
		City:         optional(c.City),
		Timezone:     optional(c.Timezone),
		Organization: optional(c.Organization),
	}
	if c.Latitude != 0 || c.Longitude != 0 {
		lat, lon := c.Latitude, c.Longitude
		loc.Latitude = &lat
		loc.Longitude = &lon
	}
	return loc
}
