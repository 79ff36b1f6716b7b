package entities

import "time"

// OrderStatus is the lifecycle state of an order.
//
// Payment sub-flow (driven by the processor webhook):
//   - pending_payment -> paid | rejected | cancelled
//   - unknown records a processor status we do not recognise; it is not terminal.
//
// Store-pickup orders start in pending_store_payment and are moved through the
// fulfillment states by an operator.
type OrderStatus string

const (
	OrderStatusPendingPayment      OrderStatus = "pending_payment"
	OrderStatusPendingStorePayment OrderStatus = "pending_store_payment"
	OrderStatusPaid                OrderStatus = "paid"
	OrderStatusRejected            OrderStatus = "rejected"
	OrderStatusCancelled           OrderStatus = "cancelled"
	OrderStatusUnknown             OrderStatus = "unknown"

	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusEnRoute   OrderStatus = "en_route"
	OrderStatusDelivered OrderStatus = "delivered"
)

var knownOrderStatuses = map[OrderStatus]struct{}{
	OrderStatusPendingPayment:      {},
	OrderStatusPendingStorePayment: {},
	OrderStatusPaid:                {},
	OrderStatusRejected:            {},
	OrderStatusCancelled:           {},
	OrderStatusUnknown:             {},
	OrderStatusPreparing:           {},
	OrderStatusEnRoute:             {},
	OrderStatusDelivered:           {},
}

func (s OrderStatus) IsValid() bool {
	_, ok := knownOrderStatuses[s]
	return ok
}

// IsTerminal reports whether the payment sub-flow has finished.
func (s OrderStatus) IsTerminal() bool {
	switch s {
	case OrderStatusPaid, OrderStatusRejected, OrderStatusCancelled:
		return true
	}
	return false
}

// IsFulfillment reports whether an operator has taken the order over.
func (s OrderStatus) IsFulfillment() bool {
	switch s {
	case OrderStatusPreparing, OrderStatusEnRoute, OrderStatusDelivered:
		return true
	}
	return false
}

// Rank orders statuses by how far the order has progressed. A webhook write is
// only applied when it does not lower the stored rank.
func (s OrderStatus) Rank() int {
	switch s {
	case OrderStatusRejected, OrderStatusCancelled:
		return 1
	case OrderStatusPaid:
		return 2
	case OrderStatusPreparing, OrderStatusEnRoute, OrderStatusDelivered:
		return 3
	default:
		return 0
	}
}

// StatusesUpToRank lists every known status whose rank is <= rank.
func StatusesUpToRank(rank int) []OrderStatus {
	ordered := []OrderStatus{
		OrderStatusPendingPayment,
		OrderStatusPendingStorePayment,
		OrderStatusUnknown,
		OrderStatusRejected,
		OrderStatusCancelled,
		OrderStatusPaid,
		OrderStatusPreparing,
		OrderStatusEnRoute,
		OrderStatusDelivered,
	}
	out := make([]OrderStatus, 0, len(ordered))
	for _, s := range ordered {
		if s.Rank() <= rank {
			out = append(out, s)
		}
	}
	return out
}

type PaymentMethod string

const (
	PaymentMethodStore       PaymentMethod = "store"
	PaymentMethodMercadoPago PaymentMethod = "mp"
)

func (m PaymentMethod) IsValid() bool {
	return m == PaymentMethodStore || m == PaymentMethodMercadoPago
}

// InitialStatus is the status an order is created with for this payment method.
func (m PaymentMethod) InitialStatus() OrderStatus {
	if m == PaymentMethodStore {
		return OrderStatusPendingStorePayment
	}
	return OrderStatusPendingPayment
}

type DeliverySlot string

const (
	DeliverySlotEarly DeliverySlot = "early"
	DeliverySlotLate  DeliverySlot = "late"
)

type OrderItem struct {
	ProductID string            `json:"productId"`
	Title     string            `json:"title"`
	Quantity  int               `json:"qty"`
	UnitPrice float64           `json:"price"`
	Options   map[string]string `json:"options,omitempty"`
	Image     string            `json:"image,omitempty"`
}

type ShippingAddress struct {
	Street       string    `json:"street"`
	Number       string    `json:"number,omitempty"`
	Neighborhood string    `json:"neighborhood,omitempty"`
	Municipality string    `json:"municipality,omitempty"`
	State        string    `json:"state,omitempty"`
	PostalCode   string    `json:"postalCode,omitempty"`
	References   string    `json:"references,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	Location     *GeoPoint `json:"location,omitempty"`
}

// CustomerLocation is the part of an address the shipping calculator needs.
func (a ShippingAddress) CustomerLocation() CustomerLocation {
	return CustomerLocation{Coordinates: a.Location, Municipality: a.Municipality}
}

type OrderTotals struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Express  float64 `json:"express"`
	Total    float64 `json:"total"`
}

// MPPayment is the processor metadata written by webhook reconciliation.
type MPPayment struct {
	PaymentID         string  `json:"paymentId"`
	Status            string  `json:"status"`
	StatusDetail      string  `json:"status_detail"`
	TransactionAmount float64 `json:"transaction_amount"`
	CurrencyID        string  `json:"currency_id"`
	DateApproved      string  `json:"date_approved,omitempty"`
	PayerEmail        string  `json:"payer_email,omitempty"`
}

// Order is the purchase record persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (userId-index): userId
//   - GSI (status-index): status
//
// Items, address, shipping and totals are snapshots taken at creation time. Only
// the webhook (status, provider, paymentMethod, mp) and operators (status) mutate
// the record afterwards, always through partial updates.
type Order struct {
	ID            string          `json:"id"`
	UserID        string          `json:"userId"`
	UserEmail     string          `json:"userEmail,omitempty"`
	Items         []OrderItem     `json:"items"`
	Address       ShippingAddress `json:"address"`
	Shipping      ShippingQuote   `json:"shipping"`
	Express       bool            `json:"express"`
	DeliverySlot  DeliverySlot    `json:"deliverySlot,omitempty"`
	Totals        OrderTotals     `json:"totals"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	Status        OrderStatus     `json:"status"`
	Provider      string          `json:"provider,omitempty"`
	MP            *MPPayment      `json:"mp,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// CanBeReadBy reports whether the session may see this order.
func (o Order) CanBeReadBy(s *Session) bool {
	if s == nil {
		return false
	}
	return s.IsAdmin() || (s.UserID != "" && s.UserID == o.UserID)
}
