package repository

import (
	"context"
	"errors"
	"time"

	"linkpulse/internal/metrics"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
)

// Reconnector re-establishes the underlying connection pool
type Reconnector interface {
	Reconnect(ctx context.Context) error
}

// Options controls a single gateway call. Zero values fall back to the
// gateway defaults.
type Options struct {
	Name       string
	MaxRetries int
	BaseDelay  time.Duration
}

// Gateway runs storage operations with retry on transient failures.
// MaxRetries is the total number of attempts; the wait before attempt n+1
// is BaseDelay*n.
type Gateway struct {
	defaults    Options
	reconnector Reconnector
	group       singleflight.Group
	sleep       func(ctx context.Context, d time.Duration) error
}

// NewGateway creates a new storage gateway
func NewGateway(maxRetries int, baseDelay time.Duration, reconnector Reconnector) *Gateway {
	if maxRetries < 1 {
		maxRetries = 1
	}
	return &Gateway{
		defaults: Options{
			Name:       "storage",
			MaxRetries: maxRetries,
			BaseDelay:  baseDelay,
		},
		reconnector: reconnector,
		sleep:       sleepContext,
	}
}

// Execute runs op until it succeeds, fails terminally, or the attempt
// budget is spent. The returned error is always a *StorageError.
func (g *Gateway) Execute(ctx context.Context, opts Options, op func(ctx context.Context) error) error {
	opts = g.withDefaults(opts)

	var lastErr error
	for attempt := 1; attempt <= opts.MaxRetries; attempt++ {
		err := op(ctx)
		if err == nil {
			return nil
		}
		lastErr = err

		if errors.Is(err, ErrNotFound) {
			return &StorageError{Op: opts.Name, Attempts: attempt, Err: err}
		}

		// Never retry on behalf of a caller whose context is already done.
		transient := IsTransient(err) && ctx.Err() == nil

		log.Warn().
			Err(err).
			Str("op", opts.Name).
			Int("attempt", attempt).
			Int("max_retries", opts.MaxRetries).
			Str("error_code", ErrorCode(err)).
			Bool("transient", transient).
			Msg("Storage operation failed")

		if !transient {
			metrics.StorageFailures.WithLabelValues(opts.Name, "permanent").Inc()
			return &StorageError{Op: opts.Name, Attempts: attempt, Err: err}
		}
		if attempt == opts.MaxRetries {
			break
		}

		metrics.StorageRetries.WithLabelValues(opts.Name).Inc()
		g.reconnect(ctx, opts.Name)

		if err := g.sleep(ctx, opts.BaseDelay*time.Duration(attempt)); err != nil {
			metrics.StorageFailures.WithLabelValues(opts.Name, "canceled").Inc()
			return &StorageError{Op: opts.Name, Attempts: attempt, Transient: true, Err: lastErr}
		}
	}

	metrics.StorageFailures.WithLabelValues(opts.Name, "exhausted").Inc()
	log.Error().
		Err(lastErr).
		Str("op", opts.Name).
		Int("attempts", opts.MaxRetries).
		Msg("Storage operation exhausted retries")

	return &StorageError{Op: opts.Name, Attempts: opts.MaxRetries, Transient: true, Err: lastErr}
}

// Query is Execute for operations that produce a value
func Query[T any](ctx context.Context, g *Gateway, opts Options, op func(ctx context.Context) (T, error)) (T, error) {
	var result T
	err := g.Execute(ctx, opts, func(ctx context.Context) error {
		v, err := op(ctx)
		if err != nil {
			return err
		}
		result = v
		return nil
	})
	return result, err
}

// reconnect refreshes the pool once for all concurrent callers that hit a
// transient failure at the same time.
func (g *Gateway) reconnect(ctx context.Context, op string) {
	if g.reconnector == nil {
		return
	}
	_, err, shared := g.group.Do("reconnect", func() (interface{}, error) {
		return nil, g.reconnector.Reconnect(ctx)
	})
	if err != nil {
		log.Warn().Err(err).Str("op", op).Bool("shared", shared).Msg("Storage reconnect failed")
		return
	}
	log.Debug().Str("op", op).Bool("shared", shared).Msg("Storage reconnected")
}

func (g *Gateway) withDefaults(opts Options) Options {
	if opts.Name == "" {
		opts.Name = g.defaults.Name
	}
	if opts.MaxRetries < 1 {
		opts.MaxRetries = g.defaults.MaxRetries
	}
	if opts.BaseDelay <= 0 {
		opts.BaseDelay = g.defaults.BaseDelay
	}
	return opts
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
