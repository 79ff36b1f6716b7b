package response

import (
	"time"

	"panaderia_api/internal/domain/entities"
)

type OrderResponse struct {
	ID            string                   `json:"id"`
	UserID        string                   `json:"userId"`
	UserEmail     string                   `json:"userEmail,omitempty"`
	Items         []entities.OrderItem     `json:"items"`
	Address       entities.ShippingAddress `json:"address"`
	Shipping      ShippingQuoteResponse    `json:"shipping"`
	Express       bool                     `json:"express"`
	DeliverySlot  string                   `json:"deliverySlot,omitempty"`
	Totals        entities.OrderTotals     `json:"totals"`
	PaymentMethod string                   `json:"paymentMethod"`
	Status        string                   `json:"status"`
	Provider      string                   `json:"provider,omitempty"`
	MP            *entities.MPPayment      `json:"mp,omitempty"`
	CreatedAt     time.Time                `json:"createdAt"`
	UpdatedAt     time.Time                `json:"updatedAt"`
}

func FromOrder(o entities.Order) OrderResponse {
	items := o.Items
	if items == nil {
		items = []entities.OrderItem{}
	}
	return OrderResponse{
		ID:            o.ID,
		UserID:        o.UserID,
		UserEmail:     o.UserEmail,
		Items:         items,
		Address:       o.Address,
		Shipping:      FromShippingQuote(o.Shipping),
		Express:       o.Express,
		DeliverySlot:  string(o.DeliverySlot),
		Totals:        o.Totals,
		PaymentMethod: string(o.PaymentMethod),
		Status:        string(o.Status),
		Provider:      o.Provider,
		MP:            o.MP,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}

// OrderStatusEvent is the payload of each `order` event on the status stream.
type OrderStatusEvent struct {
	ID        string    `json:"id"`
	Status    string    `json:"status"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromOrderStatus(o entities.Order) OrderStatusEvent {
	return OrderStatusEvent{ID: o.ID, Status: string(o.Status), UpdatedAt: o.UpdatedAt}
}
