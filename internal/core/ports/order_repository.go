package ports

import (
	"context"

	"github.com/orderdesk/order-service/internal/core/domain"
)

// OrderRepository defines the interface for order persistence. Insert is the
// single atomic commit point; both finders return records in insertion order.
type OrderRepository interface {
	Insert(ctx context.Context, order *domain.Order) (*domain.Order, error)
	FindByUserID(ctx context.Context, userID string) ([]domain.Order, error)
	FindAll(ctx context.Context) ([]domain.Order, error)
}
