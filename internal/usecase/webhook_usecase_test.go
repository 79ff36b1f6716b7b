package usecase

import (
	"context"
	"errors"
	"slices"
	"testing"

	"panaderia_api/internal/domain/entities"
	mock_interfaces "panaderia_api/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func approvedPayment() entities.ProviderPayment {
	return entities.ProviderPayment{
		ID:                "P1",
		Status:            "approved",
		StatusDetail:      "accredited",
		TransactionAmount: 485.5,
		CurrencyID:        "MXN",
		DateApproved:      "2026-03-01T12:05:00.000-06:00",
		PayerEmail:        "ana@example.com",
		ExternalReference: "ORD1",
	}
}

func TestWebhookUseCase_Reconcile(t *testing.T) {
	ctx := context.Background()
	notification := entities.PaymentNotification{PaymentID: "P1", Topic: "payment"}

	t.Run("approved payment marks order paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		gw := mock_interfaces.NewMockIPaymentGateway(ctrl)
		m := &spyMetrics{}

		gw.EXPECT().GetPayment(gomock.Any(), "P1").Return(approvedPayment(), nil)
		repo.EXPECT().
			ApplyPaymentUpdate(gomock.Any(), "ORD1", gomock.Any(), entities.StatusesUpToRank(entities.OrderStatusPaid.Rank())).
			DoAndReturn(func(_ context.Context, _ string, u entities.PaymentUpdate, _ []entities.OrderStatus) (bool, entities.Order, error) {
				assert.Equal(t, entities.OrderStatusPaid, u.Status)
				assert.Equal(t, ProviderMercadoPago, u.Provider)
				assert.Equal(t, entities.PaymentMethodMercadoPago, u.PaymentMethod)
				assert.Equal(t, entities.MPPayment{
					PaymentID:         "P1",
					Status:            "approved",
					StatusDetail:      "accredited",
					TransactionAmount: 485.5,
					CurrencyID:        "MXN",
					DateApproved:      "2026-03-01T12:05:00.000-06:00",
					PayerEmail:        "ana@example.com",
				}, u.MP)
				return true, entities.Order{ID: "ORD1", Status: u.Status}, nil
			})

		out, err := NewWebhookUseCase(repo, gw, nil, m).Reconcile(ctx, notification)
		require.NoError(t, err)
		assert.True(t, out.Applied)
		assert.Equal(t, "ORD1", out.OrderID)
		assert.Equal(t, entities.OrderStatusPaid, out.Status)
		assert.Equal(t, []string{"applied"}, m.webhooks)
	})

	t.Run("non payment topic is ignored without lookup", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		gw := mock_interfaces.NewMockIPaymentGateway(ctrl)

		out, err := NewWebhookUseCase(repo, gw, nil, nil).Reconcile(ctx, entities.PaymentNotification{PaymentID: "S1", Topic: "subscription"})
		require.NoError(t, err)
		assert.True(t, out.Ignored)
		assert.Equal(t, ReasonUnsupportedTopic, out.Reason)
	})

	t.Run("missing payment id is acknowledged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		gw := mock_interfaces.NewMockIPaymentGateway(ctrl)

		out, err := NewWebhookUseCase(repo, gw, nil, nil).Reconcile(ctx, entities.PaymentNotification{Topic: "payment"})
		require.NoError(t, err)
		assert.Equal(t, ReasonMissingPaymentID, out.Reason)
	})

	t.Run("payment without correlation is dropped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		gw := mock_interfaces.NewMockIPaymentGateway(ctrl)

		p := approvedPayment()
		p.ExternalReference = ""
		gw.EXPECT().GetPayment(gomock.Any(), "P1").Return(p, nil)

		out, err := NewWebhookUseCase(repo, gw, nil, nil).Reconcile(ctx, notification)
		require.ErrorIs(t, err, ErrMissingCorrelation)
		assert.True(t, out.Ignored)
		assert.Equal(t, ReasonMissingCorrelation, out.Reason)
	})

	t.Run("metadata order id is used as correlation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		gw := mock_interfaces.NewMockIPaymentGateway(ctrl)

		p := approvedPayment()
		p.ExternalReference = ""
		p.Metadata = map[string]any{"order_id": "ORD9"}
		gw.EXPECT().GetPayment(gomock.Any(), "P1").Return(p, nil)
		repo.EXPECT().ApplyPaymentUpdate(gomock.Any(), "ORD9", gomock.Any(), gomock.Any()).Return(true, entities.Order{ID: "ORD9"}, nil)

		out, err := NewWebhookUseCase(repo, gw, nil, nil).Reconcile(ctx, notification)
		require.NoError(t, err)
		assert.Equal(t, "ORD9", out.OrderID)
	})

	t.Run("lookup failure is reported", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		gw := mock_interfaces.NewMockIPaymentGateway(ctrl)
		m := &spyMetrics{}

		gw.EXPECT().GetPayment(gomock.Any(), "P1").Return(entities.ProviderPayment{}, errors.New("timeout"))

		out, err := NewWebhookUseCase(repo, gw, nil, m).Reconcile(ctx, notification)
		require.Error(t, err)
		assert.False(t, out.Applied)
		assert.Equal(t, []string{ReasonPaymentLookup}, m.webhooks)
	})

	t.Run("stale status leaves order untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		gw := mock_interfaces.NewMockIPaymentGateway(ctrl)

		p := approvedPayment()
		p.Status = "pending"
		gw.EXPECT().GetPayment(gomock.Any(), "P1").Return(p, nil)
		repo.EXPECT().
			ApplyPaymentUpdate(gomock.Any(), "ORD1", gomock.Any(), entities.StatusesUpToRank(0)).
			Return(false, entities.Order{ID: "ORD1", Status: entities.OrderStatusPaid}, nil)

		out, err := NewWebhookUseCase(repo, gw, nil, nil).Reconcile(ctx, notification)
		require.NoError(t, err)
		assert.False(t, out.Applied)
		assert.Equal(t, ReasonStaleStatus, out.Reason)
		assert.Equal(t, entities.OrderStatusPaid, out.Status)
	})

	t.Run("unknown order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		gw := mock_interfaces.NewMockIPaymentGateway(ctrl)

		gw.EXPECT().GetPayment(gomock.Any(), "P1").Return(approvedPayment(), nil)
		repo.EXPECT().ApplyPaymentUpdate(gomock.Any(), "ORD1", gomock.Any(), gomock.Any()).Return(false, entities.Order{}, nil)

		out, err := NewWebhookUseCase(repo, gw, nil, nil).Reconcile(ctx, notification)
		require.ErrorIs(t, err, ErrOrderNotFound)
		assert.Equal(t, ReasonOrderNotFound, out.Reason)
	})

	t.Run("repository failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		gw := mock_interfaces.NewMockIPaymentGateway(ctrl)

		gw.EXPECT().GetPayment(gomock.Any(), "P1").Return(approvedPayment(), nil)
		repo.EXPECT().ApplyPaymentUpdate(gomock.Any(), "ORD1", gomock.Any(), gomock.Any()).Return(false, entities.Order{}, errors.New("throttled"))

		out, err := NewWebhookUseCase(repo, gw, nil, nil).Reconcile(ctx, notification)
		require.Error(t, err)
		assert.Equal(t, ReasonUpdateFailed, out.Reason)
	})

	t.Run("duplicate delivery is applied once", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		gw := mock_interfaces.NewMockIPaymentGateway(ctrl)
		dedupe := mock_interfaces.NewMockIWebhookDeduper(ctrl)

		key := DedupeKey("P1", "approved", "accredited")
		gw.EXPECT().GetPayment(gomock.Any(), "P1").Return(approvedPayment(), nil).Times(2)
		gomock.InOrder(
			dedupe.EXPECT().Seen(gomock.Any(), key).Return(false, nil),
			repo.EXPECT().ApplyPaymentUpdate(gomock.Any(), "ORD1", gomock.Any(), gomock.Any()).Return(true, entities.Order{ID: "ORD1", Status: entities.OrderStatusPaid}, nil),
			dedupe.EXPECT().Mark(gomock.Any(), key).Return(nil),
			dedupe.EXPECT().Seen(gomock.Any(), key).Return(true, nil),
		)

		uc := NewWebhookUseCase(repo, gw, dedupe, nil)
		first, err := uc.Reconcile(ctx, notification)
		require.NoError(t, err)
		second, err := uc.Reconcile(ctx, notification)
		require.NoError(t, err)

		assert.True(t, first.Applied)
		assert.False(t, second.Applied)
		assert.Equal(t, ReasonDuplicate, second.Reason)
		assert.Equal(t, first.Status, second.Status)
		assert.Equal(t, first.OrderID, second.OrderID)
	})

	t.Run("dedupe errors do not block reconciliation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		gw := mock_interfaces.NewMockIPaymentGateway(ctrl)
		dedupe := mock_interfaces.NewMockIWebhookDeduper(ctrl)

		gw.EXPECT().GetPayment(gomock.Any(), "P1").Return(approvedPayment(), nil)
		dedupe.EXPECT().Seen(gomock.Any(), gomock.Any()).Return(false, errors.New("redis: connection refused"))
		repo.EXPECT().ApplyPaymentUpdate(gomock.Any(), "ORD1", gomock.Any(), gomock.Any()).Return(true, entities.Order{ID: "ORD1"}, nil)
		dedupe.EXPECT().Mark(gomock.Any(), gomock.Any()).Return(errors.New("redis: connection refused"))

		out, err := NewWebhookUseCase(repo, gw, dedupe, nil).Reconcile(ctx, notification)
		require.NoError(t, err)
		assert.True(t, out.Applied)
	})

	t.Run("unrecognised processor status maps to unknown", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		gw := mock_interfaces.NewMockIPaymentGateway(ctrl)

		p := approvedPayment()
		p.Status = "charged_back"
		gw.EXPECT().GetPayment(gomock.Any(), "P1").Return(p, nil)
		repo.EXPECT().ApplyPaymentUpdate(gomock.Any(), "ORD1", gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, u entities.PaymentUpdate, _ []entities.OrderStatus) (bool, entities.Order, error) {
				assert.Equal(t, entities.OrderStatusUnknown, u.Status)
				assert.Equal(t, "charged_back", u.MP.Status)
				return true, entities.Order{ID: "ORD1", Status: u.Status}, nil
			})

		out, err := NewWebhookUseCase(repo, gw, nil, nil).Reconcile(ctx, notification)
		require.NoError(t, err)
		assert.Equal(t, entities.OrderStatusUnknown, out.Status)
	})
}

// memoryOrders keeps a single order and applies the conditional write the way
// the DynamoDB repository does.
type memoryOrders struct {
	order entities.Order
}

func (m *memoryOrders) Create(_ context.Context, o entities.Order) (entities.Order, error) {
	m.order = o
	return o, nil
}

func (m *memoryOrders) GetByID(_ context.Context, id string) (entities.Order, error) {
	if id != m.order.ID {
		return entities.Order{}, nil
	}
	return m.order, nil
}

func (m *memoryOrders) ListByUserID(context.Context, string) ([]entities.Order, error) {
	return nil, nil
}

func (m *memoryOrders) ListByStatus(context.Context, entities.OrderStatus) ([]entities.Order, error) {
	return nil, nil
}

func (m *memoryOrders) UpdateStatus(_ context.Context, _ string, status entities.OrderStatus) (entities.Order, error) {
	m.order.Status = status
	return m.order, nil
}

func (m *memoryOrders) ApplyPaymentUpdate(_ context.Context, id string, u entities.PaymentUpdate, allowedFrom []entities.OrderStatus) (bool, entities.Order, error) {
	if id != m.order.ID {
		return false, entities.Order{}, nil
	}
	if !slices.Contains(allowedFrom, m.order.Status) {
		return false, m.order, nil
	}
	mp := u.MP
	m.order.Status = u.Status
	m.order.Provider = u.Provider
	m.order.PaymentMethod = u.PaymentMethod
	m.order.MP = &mp
	return true, m.order, nil
}

func TestWebhookUseCase_RedeliveryWithoutDeduper(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	gw := mock_interfaces.NewMockIPaymentGateway(ctrl)
	gw.EXPECT().GetPayment(gomock.Any(), "P1").Return(approvedPayment(), nil).Times(2)

	repo := &memoryOrders{order: entities.Order{ID: "ORD1", Status: entities.OrderStatusPendingPayment}}
	uc := NewWebhookUseCase(repo, gw, nil, nil)
	notification := entities.PaymentNotification{PaymentID: "P1", Topic: "payment"}

	first, err := uc.Reconcile(ctx, notification)
	require.NoError(t, err)
	require.True(t, first.Applied)
	afterFirst := repo.order

	second, err := uc.Reconcile(ctx, notification)
	require.NoError(t, err)
	assert.True(t, second.Applied)
	assert.Empty(t, second.Reason)
	assert.Equal(t, afterFirst, repo.order)
	assert.Equal(t, entities.OrderStatusPaid, repo.order.Status)
	require.NotNil(t, repo.order.MP)
	assert.Equal(t, "accredited", repo.order.MP.StatusDetail)
}

func TestWebhookUseCase_SameStatusNewDetailIsNotDuplicate(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	gw := mock_interfaces.NewMockIPaymentGateway(ctrl)
	deduper := mock_interfaces.NewMockIWebhookDeduper(ctrl)

	pending := approvedPayment()
	pending.Status, pending.StatusDetail = "pending", "pending_waiting_payment"
	inProcess := approvedPayment()
	inProcess.Status, inProcess.StatusDetail = "in_process", "pending_review_manual"
	require.Equal(t, entities.MapProviderStatus(pending.Status), entities.MapProviderStatus(inProcess.Status))

	marked := map[string]bool{}
	deduper.EXPECT().Seen(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, key string) (bool, error) {
		return marked[key], nil
	}).Times(2)
	deduper.EXPECT().Mark(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, key string) error {
		marked[key] = true
		return nil
	}).Times(2)
	gomock.InOrder(
		gw.EXPECT().GetPayment(gomock.Any(), "P1").Return(pending, nil),
		gw.EXPECT().GetPayment(gomock.Any(), "P1").Return(inProcess, nil),
	)

	repo := &memoryOrders{order: entities.Order{ID: "ORD1", Status: entities.OrderStatusPendingPayment}}
	uc := NewWebhookUseCase(repo, gw, deduper, nil)
	notification := entities.PaymentNotification{PaymentID: "P1", Topic: "payment"}

	first, err := uc.Reconcile(ctx, notification)
	require.NoError(t, err)
	assert.True(t, first.Applied)

	second, err := uc.Reconcile(ctx, notification)
	require.NoError(t, err)
	assert.True(t, second.Applied)
	assert.NotEqual(t, ReasonDuplicate, second.Reason)
	require.NotNil(t, repo.order.MP)
	assert.Equal(t, "in_process", repo.order.MP.Status)
	assert.Equal(t, "pending_review_manual", repo.order.MP.StatusDetail)
	assert.Len(t, marked, 2)
}
