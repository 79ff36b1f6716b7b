package request

import (
	"strings"

	"panaderia_api/internal/domain/entities"
)

type PreferenceItemRequest struct {
	Title string  `json:"title"`
	Qty   int     `json:"qty"`
	Price float64 `json:"price"`
}

type PreferenceShippingRequest struct {
	Amount     float64 `json:"amount"`
	Express    bool    `json:"express"`
	ExpressFee float64 `json:"expressFee"`
}

// PreferenceRequest is the checkout-session body: items, shipping and the
// order id used as correlation key.
type PreferenceRequest struct {
	Items    []PreferenceItemRequest   `json:"items"`
	Shipping PreferenceShippingRequest `json:"shipping"`
	OrderID  string                    `json:"orderId"`
}

func (r PreferenceRequest) ToEntity() entities.PreferenceRequest {
	items := make([]entities.PreferenceItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, entities.PreferenceItem{Title: strings.TrimSpace(it.Title), Quantity: it.Qty, UnitPrice: it.Price})
	}
	return entities.PreferenceRequest{
		OrderID:    strings.TrimSpace(r.OrderID),
		Items:      items,
		Shipping:   r.Shipping.Amount,
		Express:    r.Shipping.Express,
		ExpressFee: r.Shipping.ExpressFee,
	}
}
