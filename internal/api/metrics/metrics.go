// Package metrics defines the custom Prometheus collectors for the order
// management service. It is the single source of truth for metric names,
// labels, and help strings; HTTP-level metrics come from the echoprometheus
// middleware and are not declared here.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "orders"

// OrdersCreatedTotal counts durably recorded order submissions.
// Label:
//   - outcome: "success" or "failure", the submitted outcome flag
var OrdersCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "created_total",
		Help:      "Total number of order records committed, by outcome.",
	},
	[]string{"outcome"},
)

// NotificationsScheduledTotal counts notifications accepted by the dispatcher queue.
// Label:
//   - template: "success" or "failure"
var NotificationsScheduledTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_scheduled_total",
		Help:      "Total number of outcome notifications enqueued for delivery.",
	},
	[]string{"template"},
)

// NotificationsDroppedTotal counts notifications discarded because the
// dispatcher queue was full at enqueue time.
var NotificationsDroppedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_dropped_total",
		Help:      "Total number of outcome notifications dropped on a full queue.",
	},
)

// NotificationsFailedTotal counts delivery attempts that returned an error.
// Label:
//   - reason: short failure class (e.g. "send_error")
var NotificationsFailedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_failed_total",
		Help:      "Total number of notification deliveries that failed.",
	},
	[]string{"reason"},
)

// NotificationQueueDepth tracks the number of notifications waiting in the
// dispatcher queue.
var NotificationQueueDepth = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "notification_queue_depth",
		Help:      "Current number of notifications pending in the dispatcher queue.",
	},
)

// NotificationSendDuration measures a single delivery attempt end-to-end.
// Label:
//   - template: "success" or "failure"
var NotificationSendDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "notification_send_duration_seconds",
		Help:      "Duration of one notification delivery attempt.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"template"},
)
