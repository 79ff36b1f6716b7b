package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	request "panaderia_api/internal/adapter/http/dto/request"
	response "panaderia_api/internal/adapter/http/dto/response"
	"panaderia_api/internal/adapter/http/middleware"
	"panaderia_api/internal/domain/entities"
	"panaderia_api/internal/infrastructure/config"
	"panaderia_api/internal/usecase"
	"panaderia_api/pkg"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const orderEvent = "order"

// OrderHandler serves order reads, the live status stream and the operator
// endpoints.
type OrderHandler struct {
	usecase usecase.IOrderUseCase
	stream  config.StreamConfig
}

func NewOrderHandler(uc usecase.IOrderUseCase, stream config.StreamConfig) *OrderHandler {
	if stream.PollInterval <= 0 {
		stream.PollInterval = 2 * time.Second
	}
	return &OrderHandler{usecase: uc, stream: stream}
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	ctx := c.Request.Context()
	order, err := h.usecase.GetForSession(ctx, middleware.SessionFrom(ctx), c.Param("id"))
	if err != nil {
		writeError(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

func (h *OrderHandler) ListMine(c *gin.Context) {
	ctx := c.Request.Context()
	orders, err := h.usecase.ListMine(ctx, middleware.SessionFrom(ctx))
	if err != nil {
		writeError(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromOrders(orders))
}

// StreamStatus pushes an `order` event with the current status, then one more
// each time status or updatedAt changes. The stream ends once the order
// reaches a terminal or fulfillment state, when the client goes away, or
// after the configured maximum duration.
func (h *OrderHandler) StreamStatus(c *gin.Context) {
	ctx := c.Request.Context()
	session := middleware.SessionFrom(ctx)
	id := c.Param("id")
	logger := zerolog.Ctx(ctx).With().Str("component", "order.stream").Str("order_id", id).Logger()

	last, err := h.usecase.GetForSession(ctx, session, id)
	if err != nil {
		writeError(c, mapOrderError(err))
		return
	}

	if h.stream.MaxDuration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.stream.MaxDuration)
		defer cancel()
	}
	ticker := time.NewTicker(h.stream.PollInterval)
	defer ticker.Stop()

	c.Header("Cache-Control", "no-cache")
	c.Header("X-Accel-Buffering", "no")
	logger.Debug().Msg("stream start")

	first := true
	c.Stream(func(_ io.Writer) bool {
		if first {
			first = false
			c.SSEvent(orderEvent, response.FromOrderStatus(last))
			return !streamDone(last.Status)
		}

		select {
		case <-ctx.Done():
			return false
		case <-ticker.C:
		}

		cur, err := h.usecase.GetForSession(ctx, session, id)
		if err != nil {
			if errors.Is(err, usecase.ErrOrderNotFound) || errors.Is(err, usecase.ErrForbidden) {
				return false
			}
			if ctx.Err() != nil {
				return false
			}
			logger.Warn().Err(err).Msg("stream poll failed")
			return true
		}
		if cur.Status != last.Status || !cur.UpdatedAt.Equal(last.UpdatedAt) {
			last = cur
			c.SSEvent(orderEvent, response.FromOrderStatus(cur))
		}
		return !streamDone(cur.Status)
	})
	logger.Debug().Str("status", string(last.Status)).Msg("stream closed")
}

func streamDone(s entities.OrderStatus) bool {
	return s.IsTerminal() || s.IsFulfillment()
}

func (h *OrderHandler) ListByStatus(c *gin.Context) {
	status := entities.OrderStatus(strings.TrimSpace(c.Query("status")))
	orders, err := h.usecase.ListByStatus(c.Request.Context(), status)
	if err != nil {
		writeError(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromOrders(orders))
}

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var payload request.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, bindError("INVALID_STATUS_INPUT", "Invalid status payload", err))
		return
	}

	status := entities.OrderStatus(strings.ToLower(strings.TrimSpace(payload.Status)))
	order, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), status)
	if err != nil {
		writeError(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrAuthRequired):
		return pkg.NewDomainErrorSimple("AUTH_REQUIRED", "Authentication required", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "You cannot access this order", http.StatusForbidden)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidOrderID):
		return pkg.NewDomainErrorSimple("INVALID_ORDER_ID", "Invalid order id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidOrderStatus):
		return pkg.NewDomainErrorSimple("INVALID_ORDER_STATUS", "Invalid order status", http.StatusBadRequest)
	default:
		return pkg.NewDomainError(errInternal.Code, errInternal.Message, err, http.StatusInternalServerError)
	}
}
