package interfaces

import (
	"context"
	"panaderia_api/internal/domain/entities"
)

// IPaymentGateway abstracts the external payment processor (Mercado Pago).
//
// CreatePreference registers a hosted checkout page tagged with the order id;
// GetPayment fetches the current state of a payment reported by a webhook.
type IPaymentGateway interface {
	CreatePreference(ctx context.Context, req entities.PreferenceRequest) (entities.PreferenceResult, error)
	GetPayment(ctx context.Context, paymentID string) (entities.ProviderPayment, error)
}
