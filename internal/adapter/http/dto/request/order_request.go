package request

import (
	"strings"

	"panaderia_api/internal/domain/entities"
	"panaderia_api/internal/usecase"
)

type GeoPointRequest struct {
	Lat float64 `json:"lat" binding:"gte=-90,lte=90"`
	Lng float64 `json:"lng" binding:"gte=-180,lte=180"`
}

type AddressRequest struct {
	Street       string           `json:"street"`
	Number       string           `json:"number"`
	Neighborhood string           `json:"neighborhood"`
	Municipality string           `json:"municipality"`
	State        string           `json:"state"`
	PostalCode   string           `json:"postalCode"`
	References   string           `json:"references"`
	Phone        string           `json:"phone"`
	Location     *GeoPointRequest `json:"location"`
}

func (a AddressRequest) ToEntity() entities.ShippingAddress {
	addr := entities.ShippingAddress{
		Street:       strings.TrimSpace(a.Street),
		Number:       strings.TrimSpace(a.Number),
		Neighborhood: strings.TrimSpace(a.Neighborhood),
		Municipality: strings.TrimSpace(a.Municipality),
		State:        strings.TrimSpace(a.State),
		PostalCode:   strings.TrimSpace(a.PostalCode),
		References:   strings.TrimSpace(a.References),
		Phone:        strings.TrimSpace(a.Phone),
	}
	if a.Location != nil {
		addr.Location = &entities.GeoPoint{Lat: a.Location.Lat, Lng: a.Location.Lng}
	}
	return addr
}

type OrderItemRequest struct {
	ProductID string            `json:"productId"`
	Title     string            `json:"title" binding:"required"`
	Quantity  int               `json:"qty" binding:"gt=0"`
	Price     float64           `json:"price" binding:"gte=0"`
	Options   map[string]string `json:"options"`
	Image     string            `json:"image"`
}

// CreateOrderRequest is the checkout payload. The shipping quote is recomputed
// server-side from the address; clients cannot submit one.
type CreateOrderRequest struct {
	Items         []OrderItemRequest `json:"items" binding:"dive"`
	Address       AddressRequest     `json:"address"`
	Express       bool               `json:"express"`
	DeliverySlot  string             `json:"deliverySlot" binding:"omitempty,oneof=early late"`
	PaymentMethod string             `json:"paymentMethod"`
}

func (r CreateOrderRequest) ToCommand() usecase.CreateOrderCommand {
	items := make([]entities.OrderItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, entities.OrderItem{
			ProductID: strings.TrimSpace(it.ProductID),
			Title:     strings.TrimSpace(it.Title),
			Quantity:  it.Quantity,
			UnitPrice: it.Price,
			Options:   it.Options,
			Image:     it.Image,
		})
	}
	return usecase.CreateOrderCommand{
		Items:         items,
		Address:       r.Address.ToEntity(),
		Express:       r.Express,
		DeliverySlot:  entities.DeliverySlot(r.DeliverySlot),
		PaymentMethod: entities.PaymentMethod(strings.ToLower(strings.TrimSpace(r.PaymentMethod))),
	}
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
