package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"panaderia_api/internal/domain/entities"
	"panaderia_api/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"
	"github.com/rs/zerolog"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
var ErrInvalidPaymentID = errors.New("invalid payment id")

// MockPaymentPrefix marks payment ids resolved locally in mock mode.
const MockPaymentPrefix = "mock-"

type GatewayOptions struct {
	AccessToken     string
	Currency        string
	NotificationURL string
	BackURLBase     string
	Mock            bool
}

func (o GatewayOptions) sandbox() bool {
	return strings.HasPrefix(o.AccessToken, "TEST-")
}

type MercadoPagoGateway struct {
	opts     GatewayOptions
	mockMode bool

	createPreference func(ctx context.Context, payload []byte) ([]byte, error)
	getPayment       func(ctx context.Context, id int) ([]byte, error)
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(ctx context.Context, opts GatewayOptions) (*MercadoPagoGateway, error) {
	logger := zerolog.Ctx(ctx).With().Str("component", "payment.gateway").Logger()

	if opts.Mock {
		logger.Warn().Msg("mock mode enabled")
		return &MercadoPagoGateway{opts: opts, mockMode: true}, nil
	}
	if opts.AccessToken == "" {
		logger.Error().Msg("missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(opts.AccessToken)
	if err != nil {
		logger.Error().Err(err).Msg("failed creating sdk config")
		return nil, err
	}
	prefClient := preference.NewClient(cfg)
	payClient := payment.NewClient(cfg)
	logger.Info().Bool("sandbox", opts.sandbox()).Msg("Mercado Pago client initialized")

	return &MercadoPagoGateway{
		opts: opts,
		createPreference: func(ctx context.Context, payload []byte) ([]byte, error) {
			var req preference.Request
			if err := json.Unmarshal(payload, &req); err != nil {
				return nil, fmt.Errorf("build preference request: %w", err)
			}
			resp, err := prefClient.Create(ctx, req)
			if err != nil {
				return nil, err
			}
			return json.Marshal(resp)
		},
		getPayment: func(ctx context.Context, id int) ([]byte, error) {
			resp, err := payClient.Get(ctx, id)
			if err != nil {
				return nil, err
			}
			return json.Marshal(resp)
		},
	}, nil
}

type PreferenceItemPayload struct {
	Title      string  `json:"title"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	CurrencyID string  `json:"currency_id,omitempty"`
}

type BackURLsPayload struct {
	Success string `json:"success"`
	Failure string `json:"failure"`
	Pending string `json:"pending"`
}

type PreferencePayload struct {
	Items             []PreferenceItemPayload `json:"items"`
	BackURLs          *BackURLsPayload        `json:"back_urls,omitempty"`
	AutoReturn        string                  `json:"auto_return,omitempty"`
	NotificationURL   string                  `json:"notification_url,omitempty"`
	ExternalReference string                  `json:"external_reference"`
	Metadata          map[string]any          `json:"metadata"`
}

type preferenceResponse struct {
	ID               string `json:"id"`
	InitPoint        string `json:"init_point"`
	SandboxInitPoint string `json:"sandbox_init_point"`
}

type paymentResponse struct {
	ID                int64          `json:"id"`
	Status            string         `json:"status"`
	StatusDetail      string         `json:"status_detail"`
	TransactionAmount float64        `json:"transaction_amount"`
	CurrencyID        string         `json:"currency_id"`
	DateApproved      string         `json:"date_approved"`
	ExternalReference string         `json:"external_reference"`
	Metadata          map[string]any `json:"metadata"`
	Payer             struct {
		Email string `json:"email"`
	} `json:"payer"`
}

// BuildPreferencePayload maps a checkout request onto the processor's
// preference body. Shipping and the express surcharge become extra items.
func BuildPreferencePayload(opts GatewayOptions, req entities.PreferenceRequest) PreferencePayload {
	items := make([]PreferenceItemPayload, 0, len(req.Items)+2)
	for _, it := range req.Items {
		qty := it.Quantity
		if qty <= 0 {
			qty = 1
		}
		items = append(items, PreferenceItemPayload{Title: it.Title, Quantity: qty, UnitPrice: it.UnitPrice, CurrencyID: opts.Currency})
	}
	if req.Shipping > 0 {
		items = append(items, PreferenceItemPayload{Title: "Envío", Quantity: 1, UnitPrice: req.Shipping, CurrencyID: opts.Currency})
	}
	if req.Express && req.ExpressFee > 0 {
		items = append(items, PreferenceItemPayload{Title: "Entrega exprés", Quantity: 1, UnitPrice: req.ExpressFee, CurrencyID: opts.Currency})
	}

	p := PreferencePayload{
		Items:             items,
		NotificationURL:   opts.NotificationURL,
		ExternalReference: req.OrderID,
		Metadata:          map[string]any{"orderId": req.OrderID},
	}
	if base := strings.TrimRight(opts.BackURLBase, "/"); base != "" {
		q := "?orderId=" + url.QueryEscape(req.OrderID)
		p.BackURLs = &BackURLsPayload{
			Success: base + "/checkout/success" + q,
			Failure: base + "/checkout/failure" + q,
			Pending: base + "/checkout/pending" + q,
		}
		p.AutoReturn = "approved"
	}
	return p
}

func (g *MercadoPagoGateway) CreatePreference(ctx context.Context, req entities.PreferenceRequest) (entities.PreferenceResult, error) {
	logger := zerolog.Ctx(ctx).With().Str("component", "payment.gateway").Str("order_id", req.OrderID).Logger()

	if g != nil && g.mockMode {
		id := "mock-pref-" + req.OrderID
		link := strings.TrimRight(g.opts.BackURLBase, "/") + "/checkout/mock?orderId=" + url.QueryEscape(req.OrderID) +
			"&paymentId=" + url.QueryEscape(MockPaymentPrefix+req.OrderID)
		logger.Info().Str("preference_id", id).Msg("mock preference success")
		return entities.PreferenceResult{PreferenceID: id, URL: link}, nil
	}
	if g == nil || g.createPreference == nil {
		logger.Error().Msg("gateway not configured")
		return entities.PreferenceResult{}, ErrMercadoPagoGatewayNotConfigured
	}

	payload, err := json.Marshal(BuildPreferencePayload(g.opts, req))
	if err != nil {
		return entities.PreferenceResult{}, err
	}
	logger.Info().Int("payload_len", len(payload)).Msg("preference create start")

	raw, err := g.createPreference(ctx, payload)
	if err != nil {
		logger.Error().Err(err).Msg("sdk preference create failed")
		return entities.PreferenceResult{}, err
	}
	var resp preferenceResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		logger.Error().Err(err).Msg("preference response decode failed")
		return entities.PreferenceResult{}, err
	}

	link := resp.InitPoint
	if (g.opts.sandbox() && resp.SandboxInitPoint != "") || link == "" {
		link = resp.SandboxInitPoint
	}
	if link == "" {
		return entities.PreferenceResult{}, errors.New("preference response has no checkout url")
	}
	logger.Info().Str("preference_id", resp.ID).Msg("preference create success")
	return entities.PreferenceResult{PreferenceID: resp.ID, URL: link}, nil
}

func (g *MercadoPagoGateway) GetPayment(ctx context.Context, paymentID string) (entities.ProviderPayment, error) {
	logger := zerolog.Ctx(ctx).With().Str("component", "payment.gateway").Str("payment_id", paymentID).Logger()

	if g != nil && g.mockMode {
		orderID, ok := strings.CutPrefix(paymentID, MockPaymentPrefix)
		if !ok || orderID == "" {
			return entities.ProviderPayment{}, fmt.Errorf("%w: %q is not a mock payment", ErrInvalidPaymentID, paymentID)
		}
		logger.Info().Msg("mock payment lookup")
		return entities.ProviderPayment{
			ID:                paymentID,
			Status:            entities.ProviderStatusApproved,
			StatusDetail:      "accredited",
			CurrencyID:        g.opts.Currency,
			ExternalReference: orderID,
		}, nil
	}
	if g == nil || g.getPayment == nil {
		logger.Error().Msg("gateway not configured")
		return entities.ProviderPayment{}, ErrMercadoPagoGatewayNotConfigured
	}

	id, err := strconv.Atoi(strings.TrimSpace(paymentID))
	if err != nil {
		return entities.ProviderPayment{}, fmt.Errorf("%w: %q", ErrInvalidPaymentID, paymentID)
	}

	logger.Info().Msg("payment get start")
	raw, err := g.getPayment(ctx, id)
	if err != nil {
		logger.Error().Err(err).Msg("sdk payment get failed")
		return entities.ProviderPayment{}, err
	}
	var resp paymentResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		logger.Error().Err(err).Msg("payment response decode failed")
		return entities.ProviderPayment{}, err
	}
	logger.Info().Str("provider_status", resp.Status).Msg("payment get success")

	// The SDK encodes an unset approval time as the zero time.
	if strings.HasPrefix(resp.DateApproved, "0001-01-01") {
		resp.DateApproved = ""
	}

	return entities.ProviderPayment{
		ID:                strconv.FormatInt(resp.ID, 10),
		Status:            resp.Status,
		StatusDetail:      resp.StatusDetail,
		TransactionAmount: resp.TransactionAmount,
		CurrencyID:        resp.CurrencyID,
		DateApproved:      resp.DateApproved,
		PayerEmail:        resp.Payer.Email,
		ExternalReference: resp.ExternalReference,
		Metadata:          resp.Metadata,
	}, nil
}
