package usecase

import (
	"context"
	"errors"
	"fmt"
	"panaderia_api/internal/domain/entities"
	"panaderia_api/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

var (
	ErrAuthRequired         = errors.New("authentication required")
	ErrEmptyCart            = errors.New("cart is empty")
	ErrInvalidOrderItem     = errors.New("invalid order item")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrInvalidDeliverySlot  = errors.New("invalid delivery slot")
	ErrOutsideCoverage      = errors.New("address outside delivery coverage")
	ErrSlotUnavailable      = errors.New("delivery slot unavailable at this distance")
	ErrPaymentInitFailed    = errors.New("payment init failed")
	ErrMissingOrderID       = errors.New("missing order id")
	ErrEmptyPreferenceItems = errors.New("empty preference items")
)

// CreateOrderCommand is the cart/address snapshot a customer checks out with.
type CreateOrderCommand struct {
	Items         []entities.OrderItem
	Address       entities.ShippingAddress
	Express       bool
	DeliverySlot  entities.DeliverySlot
	PaymentMethod entities.PaymentMethod
}

// ICheckoutUseCase covers the customer side of checkout:
//   - CreateOrder persists a pending order and returns its id (the correlation id).
//   - CreatePaymentPreference asks the processor for a hosted checkout URL.
type ICheckoutUseCase interface {
	CreateOrder(ctx context.Context, session *entities.Session, cmd CreateOrderCommand) (entities.Order, error)
	CreatePaymentPreference(ctx context.Context, req entities.PreferenceRequest) (entities.PreferenceResult, error)
}

// ShippingQuoter prices an address against the stored branches and rules.
type ShippingQuoter interface {
	Quote(ctx context.Context, loc entities.CustomerLocation) (entities.ShippingQuote, error)
}

type CheckoutUseCase struct {
	orders  interfaces.IOrderRepository
	quoter  ShippingQuoter
	gateway interfaces.IPaymentGateway
	metrics interfaces.IMetricsRecorder
	now     func() time.Time
	newID   func() string
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(orders interfaces.IOrderRepository, quoter ShippingQuoter, gateway interfaces.IPaymentGateway, metrics interfaces.IMetricsRecorder) *CheckoutUseCase {
	return &CheckoutUseCase{
		orders:  orders,
		quoter:  quoter,
		gateway: gateway,
		metrics: metricsOrNoop(metrics),
		now:     func() time.Time { return time.Now().UTC() },
		newID:   uuid.NewString,
	}
}

func (u *CheckoutUseCase) CreateOrder(ctx context.Context, session *entities.Session, cmd CreateOrderCommand) (entities.Order, error) {
	logger := zerolog.Ctx(ctx).With().Str("component", "checkout.usecase").Logger()

	if session == nil || strings.TrimSpace(session.UserID) == "" {
		logger.Warn().Msg("create-order rejected: no session")
		return entities.Order{}, ErrAuthRequired
	}
	if len(cmd.Items) == 0 {
		logger.Warn().Str("user_id", session.UserID).Msg("create-order rejected: empty cart")
		return entities.Order{}, ErrEmptyCart
	}
	for i, it := range cmd.Items {
		if strings.TrimSpace(it.Title) == "" || it.Quantity <= 0 || it.UnitPrice < 0 {
			return entities.Order{}, fmt.Errorf("%w: item %d", ErrInvalidOrderItem, i)
		}
	}
	if !cmd.PaymentMethod.IsValid() {
		return entities.Order{}, ErrInvalidPaymentMethod
	}
	switch cmd.DeliverySlot {
	case "", entities.DeliverySlotEarly, entities.DeliverySlotLate:
	default:
		return entities.Order{}, ErrInvalidDeliverySlot
	}

	quote, err := u.quoter.Quote(ctx, cmd.Address.CustomerLocation())
	if err != nil {
		logger.Error().Err(err).Str("user_id", session.UserID).Msg("create-order failed: shipping quote")
		return entities.Order{}, err
	}
	if quote.OutOfCoverage {
		logger.Warn().Str("user_id", session.UserID).Float64("distance_km", quote.DistanceKm).Msg("create-order rejected: outside coverage")
		return entities.Order{}, ErrOutsideCoverage
	}
	if quote.EarlyOnly && cmd.DeliverySlot == entities.DeliverySlotLate {
		return entities.Order{}, ErrSlotUnavailable
	}

	now := u.now()
	o := entities.Order{
		ID:            u.newID(),
		UserID:        session.UserID,
		UserEmail:     session.Email,
		Items:         cmd.Items,
		Address:       cmd.Address,
		Shipping:      quote,
		Express:       cmd.Express,
		DeliverySlot:  cmd.DeliverySlot,
		Totals:        ComputeTotals(cmd.Items, quote, cmd.Express),
		PaymentMethod: cmd.PaymentMethod,
		Status:        cmd.PaymentMethod.InitialStatus(),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := u.orders.Create(ctx, o)
	if err != nil {
		logger.Error().Err(err).Str("order_id", o.ID).Msg("create-order failed: repository")
		return entities.Order{}, err
	}
	u.metrics.IncOrderCreated(string(created.PaymentMethod))
	logger.Info().Str("order_id", created.ID).Str("status", string(created.Status)).Float64("total", created.Totals.Total).Msg("create-order success")
	return created, nil
}

func (u *CheckoutUseCase) CreatePaymentPreference(ctx context.Context, req entities.PreferenceRequest) (entities.PreferenceResult, error) {
	logger := zerolog.Ctx(ctx).With().Str("component", "checkout.usecase").Logger()

	req.OrderID = strings.TrimSpace(req.OrderID)
	if req.OrderID == "" {
		return entities.PreferenceResult{}, ErrMissingOrderID
	}
	if len(req.Items) == 0 {
		return entities.PreferenceResult{}, ErrEmptyPreferenceItems
	}
	if u.gateway == nil {
		logger.Error().Str("order_id", req.OrderID).Msg("preference failed: gateway not configured")
		u.metrics.ObservePreference("failed")
		return entities.PreferenceResult{}, fmt.Errorf("%w: gateway not configured", ErrPaymentInitFailed)
	}

	logger.Info().Str("order_id", req.OrderID).Int("items", len(req.Items)).Msg("preference start")
	res, err := u.gateway.CreatePreference(ctx, req)
	if err != nil {
		logger.Error().Err(err).Str("order_id", req.OrderID).Msg("preference failed: gateway")
		u.metrics.ObservePreference("failed")
		return entities.PreferenceResult{}, fmt.Errorf("%w: %v", ErrPaymentInitFailed, err)
	}
	u.metrics.ObservePreference("ok")
	logger.Info().Str("order_id", req.OrderID).Str("preference_id", res.PreferenceID).Msg("preference success")
	return res, nil
}

// ComputeTotals sums line items and adds the shipping quote, plus the express
// surcharge when the customer opted in.
func ComputeTotals(items []entities.OrderItem, quote entities.ShippingQuote, express bool) entities.OrderTotals {
	subtotal := decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(decimal.NewFromFloat(it.UnitPrice).Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	shipping := decimal.NewFromInt(int64(quote.Amount))
	expressFee := decimal.Zero
	if express {
		expressFee = decimal.NewFromInt(int64(quote.ExpressFee))
	}
	total := subtotal.Add(shipping).Add(expressFee)

	return entities.OrderTotals{
		Subtotal: subtotal.Round(2).InexactFloat64(),
		Shipping: shipping.InexactFloat64(),
		Express:  expressFee.InexactFloat64(),
		Total:    total.Round(2).InexactFloat64(),
	}
}
