package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/orderdesk/order-service/internal/api/metrics"
	"github.com/orderdesk/order-service/internal/core/domain"
	"github.com/orderdesk/order-service/internal/core/ports"
	"github.com/orderdesk/order-service/internal/pkg/actionlog"
)

// OrderService records order submissions and schedules their outcome
// notifications.
type OrderService struct {
	orders    ports.OrderRepository
	scheduler ports.NotificationScheduler
	actions   *actionlog.Recorder
	log       zerolog.Logger
}

func NewOrderService(orders ports.OrderRepository, scheduler ports.NotificationScheduler, actions *actionlog.Recorder, log zerolog.Logger) *OrderService {
	return &OrderService{orders: orders, scheduler: scheduler, actions: actions, log: log}
}

// Create persists the submission as a single atomic insert, then hands the
// outcome notification to the scheduler. Scheduling happens strictly after
// the write commits: a persistence failure leaves nothing enqueued, and a
// scheduling or delivery failure never reaches the caller.
func (s *OrderService) Create(ctx context.Context, user *domain.User, success bool) (*domain.Order, error) {
	var created *domain.Order
	err := s.actions.Do(ctx, "create_order", func(ctx context.Context) error {
		order := &domain.Order{
			UserID:    user.ID,
			Success:   success,
			CreatedAt: time.Now().UTC(),
		}

		var err error
		created, err = s.orders.Insert(ctx, order)
		if err != nil {
			s.log.Error().Err(err).Str("user_id", user.ID).Msg("order insert failed")
			return fmt.Errorf("create order: %w", domain.ErrStorage)
		}

		metrics.OrdersCreatedTotal.WithLabelValues(outcomeLabel(success)).Inc()

		s.scheduler.Schedule(ports.Notification{
			OrderID: created.ID,
			Email:   user.Email,
			Success: success,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// List applies the two-tier visibility rule: admins see every order, any
// other role sees only its own.
func (s *OrderService) List(ctx context.Context, user *domain.User) ([]domain.Order, error) {
	var orders []domain.Order
	err := s.actions.Do(ctx, "get_orders", func(ctx context.Context) error {
		var err error
		if user.Role == domain.RoleAdmin {
			orders, err = s.orders.FindAll(ctx)
		} else {
			orders, err = s.orders.FindByUserID(ctx, user.ID)
		}
		if err != nil {
			s.log.Error().Err(err).Str("user_id", user.ID).Msg("order listing failed")
			return fmt.Errorf("list orders: %w", domain.ErrStorage)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func outcomeLabel(success bool) string {
	if success {
		return "success"
	}
	return "failure"
}
