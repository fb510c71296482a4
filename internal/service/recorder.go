package service

import (
	"context"
	"fmt"
	"time"

	"linkpulse/internal/metrics"
	"linkpulse/internal/model"
	"linkpulse/pkg/util"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ClickRecorder enriches a click with its location and persists it.
// Record never returns an error and never panics: a click that cannot be
// recorded is logged and dropped.
type ClickRecorder struct {
	resolver GeoResolver
	store    ClickStore
	newID    func() string
	now      func() time.Time
	logger   zerolog.Logger
}

// RecorderOption configures a ClickRecorder
type RecorderOption func(*ClickRecorder)

// WithRecorderLogger overrides the logger used for dropped clicks
func WithRecorderLogger(logger zerolog.Logger) RecorderOption {
	return func(r *ClickRecorder) {
		r.logger = logger
	}
}

// WithRecorderClock overrides the clock used when a click has no timestamp
func WithRecorderClock(now func() time.Time) RecorderOption {
	return func(r *ClickRecorder) {
		r.now = now
	}
}

// NewClickRecorder creates a new ClickRecorder
func NewClickRecorder(resolver GeoResolver, store ClickStore, opts ...RecorderOption) *ClickRecorder {
	r := &ClickRecorder{
		resolver: resolver,
		store:    store,
		newID:    util.GenerateUUID,
		now:      time.Now,
		logger:   log.Logger,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Record resolves the click location, builds the event and saves it
func (r *ClickRecorder) Record(ctx context.Context, in model.ClickInput) {
	defer func() {
		if p := recover(); p != nil {
			metrics.ClicksDropped.WithLabelValues("panic").Inc()
			r.logger.Error().
				Int64("link_id", in.LinkID).
				Str("short_code", in.ShortCode).
				Str("panic", fmt.Sprint(p)).
				Msg("Recovered panic while recording click")
		}
	}()

	if in.Timestamp.IsZero() {
		in.Timestamp = r.now()
	}

	var loc *model.GeoLookupResult
	if r.resolver != nil {
		loc = r.resolver.Resolve(ctx, in.ClientAddress)
	}

	event := model.NewClickEvent(r.newID(), in, loc)
	if err := r.store.SaveClick(ctx, event); err != nil {
		metrics.ClicksDropped.WithLabelValues("storage").Inc()
		r.logger.Error().
			Err(err).
			Int64("link_id", in.LinkID).
			Str("short_code", in.ShortCode).
			Str("click_id", event.ID).
			Msg("Failed to record click")
		return
	}

	metrics.ClicksRecorded.Inc()
	r.logger.Debug().
		Int64("link_id", in.LinkID).
		Str("click_id", event.ID).
		Str("country", model.StringValue(event.CountryCode)).
		Msg("Click recorded")
}
