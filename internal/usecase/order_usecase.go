package usecase

import (
	"context"
	"errors"
	"panaderia_api/internal/domain/entities"
	"panaderia_api/internal/usecase/interfaces"
	"strings"

	"github.com/rs/zerolog"
)

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidOrderStatus = errors.New("invalid order status")
	ErrInvalidOrderID     = errors.New("invalid order id")
)

// IOrderUseCase covers order reads and the operator status override.
type IOrderUseCase interface {
	GetForSession(ctx context.Context, session *entities.Session, id string) (entities.Order, error)
	ListMine(ctx context.Context, session *entities.Session) ([]entities.Order, error)
	ListByStatus(ctx context.Context, status entities.OrderStatus) ([]entities.Order, error)
	UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error)
}

type OrderUseCase struct {
	orders interfaces.IOrderRepository
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(orders interfaces.IOrderRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders}
}

func (u *OrderUseCase) GetForSession(ctx context.Context, session *entities.Session, id string) (entities.Order, error) {
	if session == nil || session.UserID == "" {
		return entities.Order{}, ErrAuthRequired
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	o, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	if !o.CanBeReadBy(session) {
		zerolog.Ctx(ctx).Warn().
			Str("component", "order.usecase").
			Str("order_id", id).
			Str("user_id", session.UserID).
			Msg("order read denied")
		return entities.Order{}, ErrForbidden
	}
	return o, nil
}

func (u *OrderUseCase) ListMine(ctx context.Context, session *entities.Session) ([]entities.Order, error) {
	if session == nil || session.UserID == "" {
		return nil, ErrAuthRequired
	}
	return u.orders.ListByUserID(ctx, session.UserID)
}

func (u *OrderUseCase) ListByStatus(ctx context.Context, status entities.OrderStatus) ([]entities.Order, error) {
	if !status.IsValid() {
		return nil, ErrInvalidOrderStatus
	}
	return u.orders.ListByStatus(ctx, status)
}

// UpdateStatus is the operator override. Any known status except unknown is
// accepted; the regression clamp only binds webhook writes.
func (u *OrderUseCase) UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error) {
	logger := zerolog.Ctx(ctx).With().Str("component", "order.usecase").Logger()

	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	if !status.IsValid() || status == entities.OrderStatusUnknown {
		return entities.Order{}, ErrInvalidOrderStatus
	}

	o, err := u.orders.UpdateStatus(ctx, id, status)
	if err != nil {
		logger.Error().Err(err).Str("order_id", id).Msg("update-status failed: repository")
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	logger.Info().Str("order_id", id).Str("status", string(status)).Msg("update-status success")
	return o, nil
}
