package usecase

import (
	"context"
	"errors"
	"testing"

	"panaderia_api/internal/domain/entities"
	mock_interfaces "panaderia_api/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestOrderUseCase_GetForSession(t *testing.T) {
	ctx := context.Background()
	owner := &entities.Session{UserID: "u1", Role: entities.RoleCustomer}
	stranger := &entities.Session{UserID: "u2", Role: entities.RoleCustomer}
	admin := &entities.Session{UserID: "ops", Role: entities.RoleAdmin}

	t.Run("owner and admin can read", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "o1").Return(entities.Order{ID: "o1", UserID: "u1"}, nil).Times(2)

		uc := NewOrderUseCase(repo)
		if _, err := uc.GetForSession(ctx, owner, "o1"); err != nil {
			t.Fatalf("owner: unexpected error: %v", err)
		}
		if _, err := uc.GetForSession(ctx, admin, "o1"); err != nil {
			t.Fatalf("admin: unexpected error: %v", err)
		}
	})

	t.Run("other customer is forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "o1").Return(entities.Order{ID: "o1", UserID: "u1"}, nil)

		if _, err := NewOrderUseCase(repo).GetForSession(ctx, stranger, "o1"); !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Order{}, nil)

		if _, err := NewOrderUseCase(repo).GetForSession(ctx, owner, "missing"); !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("requires session and id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo)

		if _, err := uc.GetForSession(ctx, nil, "o1"); !errors.Is(err, ErrAuthRequired) {
			t.Fatalf("expected ErrAuthRequired, got %v", err)
		}
		if _, err := uc.GetForSession(ctx, owner, " "); !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})
}

func TestOrderUseCase_Lists(t *testing.T) {
	ctx := context.Background()

	t.Run("list mine uses session user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		repo.EXPECT().ListByUserID(gomock.Any(), "u1").Return([]entities.Order{{ID: "o1"}}, nil)

		got, err := NewOrderUseCase(repo).ListMine(ctx, &entities.Session{UserID: "u1"})
		if err != nil || len(got) != 1 {
			t.Fatalf("unexpected result: %v %v", got, err)
		}
	})

	t.Run("list by status validates status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)

		if _, err := NewOrderUseCase(repo).ListByStatus(ctx, "lost"); !errors.Is(err, ErrInvalidOrderStatus) {
			t.Fatalf("expected ErrInvalidOrderStatus, got %v", err)
		}
	})
}

func TestOrderUseCase_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects unknown and invalid statuses", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo)

		for _, s := range []entities.OrderStatus{entities.OrderStatusUnknown, "shipped"} {
			if _, err := uc.UpdateStatus(ctx, "o1", s); !errors.Is(err, ErrInvalidOrderStatus) {
				t.Fatalf("status %s: expected ErrInvalidOrderStatus, got %v", s, err)
			}
		}
	})

	t.Run("operator can move to fulfillment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		repo.EXPECT().UpdateStatus(gomock.Any(), "o1", entities.OrderStatusPreparing).Return(entities.Order{ID: "o1", Status: entities.OrderStatusPreparing}, nil)

		got, err := NewOrderUseCase(repo).UpdateStatus(ctx, "o1", entities.OrderStatusPreparing)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.OrderStatusPreparing {
			t.Fatalf("expected preparing, got %s", got.Status)
		}
	})

	t.Run("missing order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		repo.EXPECT().UpdateStatus(gomock.Any(), "o1", entities.OrderStatusDelivered).Return(entities.Order{}, nil)

		if _, err := NewOrderUseCase(repo).UpdateStatus(ctx, "o1", entities.OrderStatusDelivered); !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})
}
