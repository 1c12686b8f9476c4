// Package queue implements the background notification dispatcher: a bounded
// buffered queue drained by a fixed pool of workers. Delivery is best-effort;
// nothing that happens here is ever observable through the API.
package queue

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/orderdesk/order-service/internal/api/metrics"
	"github.com/orderdesk/order-service/internal/core/ports"
)

const (
	defaultWorkers  = 4
	defaultCapacity = 256
)

// AttemptGuard enforces the at-most-once scheduling contract per order.
// FirstAttempt reports whether this order's notification has not been
// attempted before, marking it attempted as a side effect.
type AttemptGuard interface {
	FirstAttempt(ctx context.Context, orderID string) (bool, error)
}

// Dispatcher delivers outcome notifications asynchronously. Schedule never
// blocks: when the queue is full the notification is dropped and logged, and
// delivery errors are swallowed after logging.
type Dispatcher struct {
	jobs    chan ports.Notification
	mailer  ports.Mailer
	guard   AttemptGuard
	log     zerolog.Logger
	workers int
}

// NewDispatcher creates a Dispatcher with the given worker count and queue
// capacity. Non-positive values fall back to the defaults. guard may be nil,
// in which case every notification is treated as a first attempt.
func NewDispatcher(workers, capacity int, mailer ports.Mailer, guard AttemptGuard, log zerolog.Logger) *Dispatcher {
	if workers <= 0 {
		workers = defaultWorkers
	}
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	return &Dispatcher{
		jobs:    make(chan ports.Notification, capacity),
		mailer:  mailer,
		guard:   guard,
		log:     log,
		workers: workers,
	}
}

// Start launches the worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i := 0; i < d.workers; i++ {
		go d.runWorker(ctx, i)
	}
}

// Schedule enqueues a notification without blocking. A full queue drops the
// notification; the caller is never told either way.
func (d *Dispatcher) Schedule(n ports.Notification) {
	select {
	case d.jobs <- n:
		metrics.NotificationsScheduledTotal.WithLabelValues(templateLabel(n.Success)).Inc()
		metrics.NotificationQueueDepth.Set(float64(len(d.jobs)))
	default:
		metrics.NotificationsDroppedTotal.Inc()
		d.log.Warn().
			Str("order_id", n.OrderID).
			Msg("notification queue full, dropping")
	}
}

func (d *Dispatcher) runWorker(ctx context.Context, id int) {
	for {
		select {
		case <-ctx.Done():
			return
		case n, ok := <-d.jobs:
			if !ok {
				return
			}
			metrics.NotificationQueueDepth.Set(float64(len(d.jobs)))
			d.deliver(ctx, id, n)
		}
	}
}

// deliver makes exactly one delivery attempt. Guard errors are logged and the
// attempt proceeds; send errors are logged and discarded.
func (d *Dispatcher) deliver(ctx context.Context, workerID int, n ports.Notification) {
	if d.guard != nil {
		first, err := d.guard.FirstAttempt(ctx, n.OrderID)
		if err != nil {
			d.log.Warn().Err(err).
				Str("order_id", n.OrderID).
				Msg("attempt guard check failed, delivering anyway")
		} else if !first {
			d.log.Debug().
				Str("order_id", n.OrderID).
				Msg("notification already attempted, skipping")
			return
		}
	}

	start := time.Now()
	err := d.mailer.SendOrderOutcome(ctx, n.Email, n.Success)
	metrics.NotificationSendDuration.WithLabelValues(templateLabel(n.Success)).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.NotificationsFailedTotal.WithLabelValues("send_error").Inc()
		d.log.Error().Err(err).
			Str("order_id", n.OrderID).
			Int("worker_id", workerID).
			Msg("notification delivery failed")
		return
	}

	d.log.Info().
		Str("order_id", n.OrderID).
		Str("template", templateLabel(n.Success)).
		Msg("notification delivered")
}

func templateLabel(success bool) string {
	if success {
		return "success"
	}
	return "failure"
}
