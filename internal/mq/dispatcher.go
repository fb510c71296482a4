package mq

import (
	"context"
	"sync/atomic"
	"time"

	"linkpulse/internal/metrics"
	"linkpulse/internal/model"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"
)

const DefaultPublishTimeout = 3 * time.Second

// Dispatcher publishes clicks to RocketMQ off the request goroutine. At
// most maxInFlight publishes run at once; beyond that clicks are dropped.
type Dispatcher struct {
	producer    ProducerInterface
	sem         *semaphore.Weighted
	maxInFlight int64
	timeout     time.Duration
	closed      atomic.Bool
}

// NewDispatcher creates a new Dispatcher
func NewDispatcher(producer ProducerInterface, maxInFlight int) *Dispatcher {
	if maxInFlight < 1 {
		maxInFlight = 1
	}
	return &Dispatcher{
		producer:    producer,
		sem:         semaphore.NewWeighted(int64(maxInFlight)),
		maxInFlight: int64(maxInFlight),
		timeout:     DefaultPublishTimeout,
	}
}

// Dispatch publishes the click in the background
func (d *Dispatcher) Dispatch(in model.ClickInput) {
	if d.closed.Load() {
		metrics.ClicksDropped.WithLabelValues("closed").Inc()
		return
	}
	if !d.sem.TryAcquire(1) {
		metrics.ClicksDropped.WithLabelValues("queue_full").Inc()
		log.Warn().Int64("link_id", in.LinkID).Msg("Too many clicks in flight, dropping click")
		return
	}

	msg := model.NewClickMessage(in)
	go func() {
		defer d.sem.Release(1)

		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()

		if err := d.producer.SendClick(ctx, msg); err != nil {
			metrics.ClicksDropped.WithLabelValues("publish").Inc()
			log.Error().
				Err(err).
				Int64("link_id", msg.LinkID).
				Str("short_code", msg.ShortCode).
				Msg("Failed to publish click")
		}
	}()
}

// Close stops accepting clicks and waits for in-flight publishes. The
// semaphore stays fully held afterwards so no publish can start.
func (d *Dispatcher) Close(ctx context.Context) error {
	if d.closed.Swap(true) {
		return nil
	}
	return d.sem.Acquire(ctx, d.maxInFlight)
}
