package handlers

import (
	"errors"
	"net/http"

	request "panaderia_api/internal/adapter/http/dto/request"
	response "panaderia_api/internal/adapter/http/dto/response"
	"panaderia_api/internal/adapter/http/middleware"
	"panaderia_api/internal/usecase"
	"panaderia_api/pkg"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Error codes of the checkout-session endpoint. That endpoint answers with a
// bare {error} body rather than the AppError envelope.
const (
	CheckoutErrInvalidBody      = "invalid_body"
	CheckoutErrMissingOrderID   = "missing_orderId"
	CheckoutErrEmptyItems       = "empty_items"
	CheckoutErrMPFailed         = "mp_failed"
	CheckoutErrMethodNotAllowed = "method_not_allowed"
)

// CheckoutHandler handles order placement and payment-session creation.
type CheckoutHandler struct {
	usecase usecase.ICheckoutUseCase
}

func NewCheckoutHandler(uc usecase.ICheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{usecase: uc}
}

// CreateOrder places an order for the authenticated customer. The shipping
// quote is always recomputed from the submitted address.
func (h *CheckoutHandler) CreateOrder(c *gin.Context) {
	ctx := c.Request.Context()
	logger := zerolog.Ctx(ctx).With().Str("component", "checkout.handler").Logger()

	var payload request.CreateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		logger.Warn().Err(err).Msg("create-order invalid payload")
		writeError(c, bindError("INVALID_ORDER_INPUT", "Invalid order payload", err))
		return
	}

	order, err := h.usecase.CreateOrder(ctx, middleware.SessionFrom(ctx), payload.ToCommand())
	if err != nil {
		writeError(c, mapCheckoutError(err))
		return
	}
	logger.Info().Str("order_id", order.ID).Str("status", string(order.Status)).Msg("create-order success")

	c.JSON(http.StatusCreated, response.FromOrder(order))
}

// CreatePreference opens a hosted payment session for an existing order id.
func (h *CheckoutHandler) CreatePreference(c *gin.Context) {
	ctx := c.Request.Context()

	var payload request.PreferenceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("component", "checkout.handler").Msg("preference invalid payload")
		c.JSON(http.StatusBadRequest, response.CheckoutError{Error: CheckoutErrInvalidBody})
		return
	}

	pref, err := h.usecase.CreatePaymentPreference(ctx, payload.ToEntity())
	if err != nil {
		status, code := mapPreferenceError(err)
		c.JSON(status, response.CheckoutError{Error: code})
		return
	}

	c.JSON(http.StatusOK, response.FromPreference(pref))
}

// PreferenceMethodNotAllowed answers every non-POST verb on the preference path.
func PreferenceMethodNotAllowed(c *gin.Context) {
	c.JSON(http.StatusMethodNotAllowed, response.CheckoutError{Error: CheckoutErrMethodNotAllowed})
}

func mapPreferenceError(err error) (int, string) {
	switch {
	case errors.Is(err, usecase.ErrMissingOrderID):
		return http.StatusBadRequest, CheckoutErrMissingOrderID
	case errors.Is(err, usecase.ErrEmptyPreferenceItems):
		return http.StatusBadRequest, CheckoutErrEmptyItems
	default:
		return http.StatusInternalServerError, CheckoutErrMPFailed
	}
}

func mapCheckoutError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrAuthRequired):
		return pkg.NewDomainErrorSimple("AUTH_REQUIRED", "Sign in to place an order", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrEmptyCart):
		return pkg.NewDomainErrorSimple("EMPTY_CART", "Cart is empty", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidOrderItem):
		return pkg.NewDomainErrorSimple("INVALID_ORDER_ITEM", "Invalid order item", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPaymentMethod):
		return pkg.NewDomainErrorSimple("INVALID_PAYMENT_METHOD", "Payment method must be store or mp", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidDeliverySlot):
		return pkg.NewDomainErrorSimple("INVALID_DELIVERY_SLOT", "Delivery slot must be early or late", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOutsideCoverage):
		return pkg.NewDomainErrorSimple("OUTSIDE_COVERAGE", "Address is outside the delivery area", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrSlotUnavailable):
		return pkg.NewDomainErrorSimple("SLOT_UNAVAILABLE", "Only early delivery is available for this address", http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError(errInternal.Code, errInternal.Message, err, http.StatusInternalServerError)
	}
}
