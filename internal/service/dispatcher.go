package service

import (
	"context"
	"sync"

	"linkpulse/internal/metrics"
	"linkpulse/internal/model"

	"github.com/rs/zerolog/log"
)

// AsyncDispatcher records clicks on a fixed pool of workers so the redirect
// response never waits on geolocation or storage. When the queue is full
// the click is dropped.
type AsyncDispatcher struct {
	recorder ClickRecorderInterface
	queue    chan model.ClickInput
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
	mu       sync.RWMutex
	closed   bool
}

// NewAsyncDispatcher creates a dispatcher and starts its workers
func NewAsyncDispatcher(recorder ClickRecorderInterface, workers, queueSize int) *AsyncDispatcher {
	if workers < 1 {
		workers = 1
	}
	if queueSize < 1 {
		queueSize = 1
	}

	// Workers outlive the request that produced the click.
	ctx, cancel := context.WithCancel(context.Background())
	d := &AsyncDispatcher{
		recorder: recorder,
		queue:    make(chan model.ClickInput, queueSize),
		ctx:      ctx,
		cancel:   cancel,
	}

	for i := 0; i < workers; i++ {
		d.wg.Add(1)
		go d.worker()
	}
	return d
}

// Dispatch enqueues a click for recording without blocking
func (d *AsyncDispatcher) Dispatch(in model.ClickInput) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		metrics.ClicksDropped.WithLabelValues("closed").Inc()
		return
	}

	select {
	case d.queue <- in:
	default:
		metrics.ClicksDropped.WithLabelValues("queue_full").Inc()
		log.Warn().Int64("link_id", in.LinkID).Msg("Click queue full, dropping click")
	}
}

// Close stops accepting clicks and waits for queued ones to be recorded.
// If ctx ends first, in-flight recordings are cancelled.
func (d *AsyncDispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return nil
	}
	d.closed = true
	close(d.queue)
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		d.cancel()
		return nil
	case <-ctx.Done():
		d.cancel()
		<-done
		return ctx.Err()
	}
}

func (d *AsyncDispatcher) worker() {
	defer d.wg.Done()
	for in := range d.queue {
		d.recorder.Record(d.ctx, in)
	}
}
