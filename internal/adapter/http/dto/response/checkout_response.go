package response

import (
	"panaderia_api/internal/domain/entities"
	"panaderia_api/internal/usecase"
)

type PreferenceResponse struct {
	URL          string `json:"url"`
	PreferenceID string `json:"preferenceId"`
}

func FromPreference(p entities.PreferenceResult) PreferenceResponse {
	return PreferenceResponse{URL: p.URL, PreferenceID: p.PreferenceID}
}

// CheckoutError is the bare `{error}` body the checkout-session endpoint
// answers with instead of the AppError envelope.
type CheckoutError struct {
	Error string `json:"error"`
}

type WebhookAck struct {
	OK      bool   `json:"ok"`
	Applied bool   `json:"applied"`
	Ignored bool   `json:"ignored"`
	Reason  string `json:"reason,omitempty"`
	OrderID string `json:"orderId,omitempty"`
	Status  string `json:"status,omitempty"`
}

func FromWebhookOutcome(o usecase.WebhookOutcome, ok bool) WebhookAck {
	return WebhookAck{
		OK:      ok,
		Applied: o.Applied,
		Ignored: o.Ignored,
		Reason:  o.Reason,
		OrderID: o.OrderID,
		Status:  string(o.Status),
	}
}
