package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const guardTTL = 24 * time.Hour

// NotifyGuard backs the at-most-once notification contract with Redis.
// Key format: notify:<order_id>.
type NotifyGuard struct {
	client *redis.Client
}

func NewNotifyGuard(client *redis.Client) *NotifyGuard {
	return &NotifyGuard{client: client}
}

// FirstAttempt atomically marks the order's notification as attempted and
// reports whether this was the first time. The mark expires after guardTTL.
func (g *NotifyGuard) FirstAttempt(ctx context.Context, orderID string) (bool, error) {
	ok, err := g.client.SetNX(ctx, g.key(orderID), "1", guardTTL).Result()
	if err != nil {
		return false, fmt.Errorf("notify guard: %w", err)
	}
	return ok, nil
}

func (g *NotifyGuard) key(orderID string) string {
	return "notify:" + orderID
}
