package response

import (
	"encoding/json"
	"testing"
	"time"

	"panaderia_api/internal/domain/entities"
	"panaderia_api/internal/usecase"
)

func TestFromOrder(t *testing.T) {
	now := time.Date(2026, 10, 2, 8, 0, 0, 0, time.UTC)
	o := entities.Order{
		ID:            "ord-1",
		UserID:        "u-1",
		PaymentMethod: entities.PaymentMethodMercadoPago,
		Status:        entities.OrderStatusPendingPayment,
		DeliverySlot:  entities.DeliverySlotEarly,
		Totals:        entities.OrderTotals{Subtotal: 100, Shipping: 39, Total: 139},
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	res := FromOrder(o)
	if res.ID != "ord-1" || res.Status != "pending_payment" || res.PaymentMethod != "mp" || res.DeliverySlot != "early" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.Items == nil || res.Shipping.Notes == nil {
		t.Fatalf("expected empty slices instead of nil: %+v", res)
	}
	if res.Totals.Total != 139 {
		t.Fatalf("unexpected totals: %+v", res.Totals)
	}

	ev := FromOrderStatus(o)
	if ev.ID != "ord-1" || ev.Status != "pending_payment" || !ev.UpdatedAt.Equal(now) {
		t.Fatalf("unexpected status event: %+v", ev)
	}
}

func TestFromBranch_AppliesRadiusDefaults(t *testing.T) {
	res := FromBranch(entities.Branch{ID: "centro", Name: "Centro"})
	if res.FreeRadiusKm != entities.DefaultFreeRadiusKm || res.LowCostRadiusKm != entities.DefaultLowCostRadiusKm {
		t.Fatalf("unexpected radii: %+v", res)
	}
	if got := FromBranches(nil); got == nil || len(got) != 0 {
		t.Fatalf("expected empty list, got %#v", got)
	}
}

func TestFromShippingRules(t *testing.T) {
	res := FromShippingRules(entities.ShippingRules{BasePerKm: 10})
	if res.BasePerKm != 10 || res.ExpressFee != entities.DefaultExpressFee || res.LowCostFlat != entities.DefaultLowCostFlat {
		t.Fatalf("unexpected rules: %+v", res)
	}
	if res.MunicipalitiesFree == nil {
		t.Fatal("expected empty municipality list")
	}
}

func TestFromWebhookOutcome(t *testing.T) {
	ack := FromWebhookOutcome(usecase.WebhookOutcome{Applied: true, OrderID: "ord-1", Status: entities.OrderStatusPaid}, true)

	raw, err := json.Marshal(ack)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"ok":true,"applied":true,"ignored":false,"orderId":"ord-1","status":"paid"}`
	if string(raw) != want {
		t.Fatalf("unexpected body: %s", raw)
	}
}
