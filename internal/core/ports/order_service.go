package ports

import (
	"context"

	"github.com/orderdesk/order-service/internal/core/domain"
)

type OrderService interface {
	// Create durably records the submission outcome for user, then schedules
	// the outcome notification. The returned order is already committed.
	Create(ctx context.Context, user *domain.User, success bool) (*domain.Order, error)
	// List returns every order for admins and only the caller's own orders
	// for any other role.
	List(ctx context.Context, user *domain.User) ([]domain.Order, error)
}
