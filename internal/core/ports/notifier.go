package ports

import "context"

// Notification is one outcome email to be delivered in the background.
type Notification struct {
	OrderID string
	Email   string
	Success bool
}

// NotificationScheduler accepts notifications for asynchronous delivery.
// Schedule never blocks and never reports back: delivery is best-effort and
// fully decoupled from the order that triggered it.
type NotificationScheduler interface {
	Schedule(n Notification)
}

// Mailer delivers a single outcome email. Implementations pick the template
// from the success flag.
type Mailer interface {
	SendOrderOutcome(ctx context.Context, to string, success bool) error
}
