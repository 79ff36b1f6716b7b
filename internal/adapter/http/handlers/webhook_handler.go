package handlers

import (
	"errors"
	"net/http"

	request "panaderia_api/internal/adapter/http/dto/request"
	response "panaderia_api/internal/adapter/http/dto/response"
	"panaderia_api/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const reasonUnparseable = "unparseable"

// WebhookHandler receives Mercado Pago notifications.
//
// Every request is acknowledged with 200: the processor retries anything else,
// so failures are only logged and reported through the ok flag.
type WebhookHandler struct {
	usecase usecase.IWebhookUseCase
}

func NewWebhookHandler(uc usecase.IWebhookUseCase) *WebhookHandler {
	return &WebhookHandler{usecase: uc}
}

func (h *WebhookHandler) MercadoPago(c *gin.Context) {
	ctx := c.Request.Context()
	logger := zerolog.Ctx(ctx).With().Str("component", "webhook.handler").Logger()

	body, err := c.GetRawData()
	if err != nil {
		logger.Error().Err(err).Msg("webhook body read failed")
		c.JSON(http.StatusOK, response.WebhookAck{OK: false, Reason: reasonUnparseable})
		return
	}

	n, err := request.ParseNotification(c.Request.URL.Query(), body)
	if err != nil {
		logger.Warn().Err(err).Msg("webhook unparseable")
		c.JSON(http.StatusOK, response.WebhookAck{OK: false, Reason: reasonUnparseable})
		return
	}

	outcome, err := h.usecase.Reconcile(ctx, n)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, response.FromWebhookOutcome(outcome, true))
	case errors.Is(err, usecase.ErrMissingCorrelation):
		c.JSON(http.StatusOK, response.FromWebhookOutcome(outcome, true))
	default:
		logger.Error().Err(err).
			Str("payment_id", n.PaymentID).
			Str("order_id", outcome.OrderID).
			Msg("webhook reconcile failed")
		c.JSON(http.StatusOK, response.FromWebhookOutcome(outcome, false))
	}
}
