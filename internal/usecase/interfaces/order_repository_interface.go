package interfaces

import (
	"context"
	"panaderia_api/internal/domain/entities"
)

// IOrderRepository abstracts DynamoDB persistence for Order.
//
// Lookups return a zero Order (empty ID) when the record does not exist.
// Every mutation after Create is a partial update of the stored document.
type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Order, error)
	ListByStatus(ctx context.Context, status entities.OrderStatus) ([]entities.Order, error)

	// ApplyPaymentUpdate merges the webhook fields onto the order when its stored
	// status is one of allowedFrom. It reports applied=false with the stored order
	// when the condition rejected the write, and a zero order when it is missing.
	ApplyPaymentUpdate(ctx context.Context, id string, update entities.PaymentUpdate, allowedFrom []entities.OrderStatus) (applied bool, current entities.Order, err error)

	UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error)
}
