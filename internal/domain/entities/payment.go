package entities

// PaymentNotification is the normalised form of a processor webhook call.
type PaymentNotification struct {
	PaymentID string
	Topic     string
}

const NotificationTopicPayment = "payment"

// IsPaymentTopic is true when the topic is empty (processor omitted it) or payment.
func (n PaymentNotification) IsPaymentTopic() bool {
	return n.Topic == "" || n.Topic == NotificationTopicPayment
}

// ProviderPayment is the subset of processor payment details reconciliation uses.
type ProviderPayment struct {
	ID                string
	Status            string
	StatusDetail      string
	TransactionAmount float64
	CurrencyID        string
	DateApproved      string
	PayerEmail        string
	ExternalReference string
	Metadata          map[string]any
}

// OrderID returns the correlation id echoed back by the processor.
func (p ProviderPayment) OrderID() string {
	if p.ExternalReference != "" {
		return p.ExternalReference
	}
	for _, key := range []string{"order_id", "orderId"} {
		if v, ok := p.Metadata[key].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

// Processor payment statuses.
const (
	ProviderStatusApproved  = "approved"
	ProviderStatusPending   = "pending"
	ProviderStatusInProcess = "in_process"
	ProviderStatusRejected  = "rejected"
	ProviderStatusCancelled = "cancelled"
)

// MapProviderStatus translates a processor status into an order status. Values the
// processor may add later map to OrderStatusUnknown.
func MapProviderStatus(status string) OrderStatus {
	switch status {
	case ProviderStatusApproved:
		return OrderStatusPaid
	case ProviderStatusPending, ProviderStatusInProcess:
		return OrderStatusPendingPayment
	case ProviderStatusRejected:
		return OrderStatusRejected
	case ProviderStatusCancelled:
		return OrderStatusCancelled
	default:
		return OrderStatusUnknown
	}
}

// PaymentUpdate is the merge-write reconciliation applies to an order.
type PaymentUpdate struct {
	Status        OrderStatus
	Provider      string
	PaymentMethod PaymentMethod
	MP            MPPayment
}

type PreferenceItem struct {
	Title     string
	Quantity  int
	UnitPrice float64
}

// PreferenceRequest asks the processor for a hosted checkout page.
type PreferenceRequest struct {
	OrderID    string
	Items      []PreferenceItem
	Shipping   float64
	Express    bool
	ExpressFee float64
}

type PreferenceResult struct {
	PreferenceID string
	URL          string
}
