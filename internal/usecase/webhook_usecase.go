package usecase

import (
	"context"
	"errors"
	"fmt"
	"panaderia_api/internal/domain/entities"
	"panaderia_api/internal/usecase/interfaces"
	"strings"

	"github.com/rs/zerolog"
)

var ErrMissingCorrelation = errors.New("payment has no order reference")

// Reasons reported back to the processor in the webhook acknowledgement.
const (
	ReasonUnsupportedTopic   = "unsupported_topic"
	ReasonMissingPaymentID   = "missing_payment_id"
	ReasonMissingCorrelation = "missing_correlation"
	ReasonDuplicate          = "duplicate"
	ReasonStaleStatus        = "stale_status"
	ReasonOrderNotFound      = "order_not_found"
	ReasonPaymentLookup      = "payment_lookup_failed"
	ReasonUpdateFailed       = "update_failed"
)

const ProviderMercadoPago = "mercadopago"

type WebhookOutcome struct {
	Applied   bool
	Ignored   bool
	Reason    string
	PaymentID string
	OrderID   string
	Status    entities.OrderStatus
}

// metricLabel collapses the outcome into the webhook_notifications_total label.
func (o WebhookOutcome) metricLabel(err error) string {
	switch {
	case o.Applied:
		return "applied"
	case o.Reason != "":
		return o.Reason
	case err != nil:
		return "failed"
	default:
		return "noop"
	}
}

// IWebhookUseCase reconciles processor notifications onto orders.
//
// A nil error means the notification was handled (including ignored ones that
// carry a Reason). ErrMissingCorrelation is returned alongside an ignored
// outcome; every other error is an internal failure the caller logs and acks.
type IWebhookUseCase interface {
	Reconcile(ctx context.Context, n entities.PaymentNotification) (WebhookOutcome, error)
}

type WebhookUseCase struct {
	orders  interfaces.IOrderRepository
	gateway interfaces.IPaymentGateway
	deduper interfaces.IWebhookDeduper
	metrics interfaces.IMetricsRecorder
}

var _ IWebhookUseCase = (*WebhookUseCase)(nil)

// NewWebhookUseCase accepts a nil deduper; reconciliation is then purely
// idempotent-by-write.
func NewWebhookUseCase(orders interfaces.IOrderRepository, gateway interfaces.IPaymentGateway, deduper interfaces.IWebhookDeduper, metrics interfaces.IMetricsRecorder) *WebhookUseCase {
	return &WebhookUseCase{
		orders:  orders,
		gateway: gateway,
		deduper: deduper,
		metrics: metricsOrNoop(metrics),
	}
}

// DedupeKey identifies one processor state of a payment. It uses the raw
// provider status and detail so that distinct deliveries mapping to the same
// order status (pending then in_process) still refresh the stored mp fields.
func DedupeKey(paymentID, providerStatus, statusDetail string) string {
	return fmt.Sprintf("webhook:mp:%s:%s:%s", paymentID, providerStatus, statusDetail)
}

func (u *WebhookUseCase) Reconcile(ctx context.Context, n entities.PaymentNotification) (out WebhookOutcome, err error) {
	logger := zerolog.Ctx(ctx).With().Str("component", "webhook.usecase").Logger()
	defer func() { u.metrics.ObserveWebhook(out.metricLabel(err)) }()

	n.PaymentID = strings.TrimSpace(n.PaymentID)
	out.PaymentID = n.PaymentID

	if !n.IsPaymentTopic() {
		logger.Debug().Str("topic", n.Topic).Msg("reconcile ignored: topic")
		out.Ignored, out.Reason = true, ReasonUnsupportedTopic
		return out, nil
	}
	if n.PaymentID == "" {
		out.Ignored, out.Reason = true, ReasonMissingPaymentID
		return out, nil
	}

	logger = logger.With().Str("payment_id", n.PaymentID).Logger()
	logger.Info().Msg("reconcile start")

	if u.gateway == nil {
		out.Reason = ReasonPaymentLookup
		return out, errors.New("payment gateway not configured")
	}
	p, err := u.gateway.GetPayment(ctx, n.PaymentID)
	if err != nil {
		logger.Error().Err(err).Msg("reconcile failed: payment lookup")
		out.Reason = ReasonPaymentLookup
		return out, fmt.Errorf("get payment %s: %w", n.PaymentID, err)
	}

	out.OrderID = p.OrderID()
	if out.OrderID == "" {
		logger.Warn().Str("provider_status", p.Status).Msg("reconcile dropped: no order reference")
		out.Ignored, out.Reason = true, ReasonMissingCorrelation
		return out, ErrMissingCorrelation
	}
	logger = logger.With().Str("order_id", out.OrderID).Logger()

	status := entities.MapProviderStatus(p.Status)
	out.Status = status

	paymentID := p.ID
	if paymentID == "" {
		paymentID = n.PaymentID
	}
	key := DedupeKey(paymentID, p.Status, p.StatusDetail)
	if u.deduper != nil {
		seen, derr := u.deduper.Seen(ctx, key)
		if derr != nil {
			logger.Warn().Err(derr).Msg("dedupe lookup failed; continuing")
		} else if seen {
			logger.Info().Str("status", string(status)).Msg("reconcile skipped: duplicate")
			out.Reason = ReasonDuplicate
			return out, nil
		}
	}

	update := entities.PaymentUpdate{
		Status:        status,
		Provider:      ProviderMercadoPago,
		PaymentMethod: entities.PaymentMethodMercadoPago,
		MP: entities.MPPayment{
			PaymentID:         paymentID,
			Status:            p.Status,
			StatusDetail:      p.StatusDetail,
			TransactionAmount: p.TransactionAmount,
			CurrencyID:        p.CurrencyID,
			DateApproved:      p.DateApproved,
			PayerEmail:        p.PayerEmail,
		},
	}
	applied, current, err := u.orders.ApplyPaymentUpdate(ctx, out.OrderID, update, entities.StatusesUpToRank(status.Rank()))
	if err != nil {
		logger.Error().Err(err).Str("status", string(status)).Msg("reconcile failed: order update")
		out.Reason = ReasonUpdateFailed
		return out, fmt.Errorf("apply payment update: %w", err)
	}
	if !applied {
		if current.ID == "" {
			logger.Error().Msg("reconcile failed: order not found")
			out.Reason = ReasonOrderNotFound
			return out, ErrOrderNotFound
		}
		logger.Info().
			Str("status", string(status)).
			Str("stored_status", string(current.Status)).
			Msg("reconcile skipped: stale status")
		out.Reason = ReasonStaleStatus
		out.Status = current.Status
		return out, nil
	}

	if u.deduper != nil {
		if merr := u.deduper.Mark(ctx, key); merr != nil {
			logger.Warn().Err(merr).Msg("dedupe mark failed")
		}
	}
	out.Applied = true
	logger.Info().Str("status", string(status)).Msg("reconcile success")
	return out, nil
}
