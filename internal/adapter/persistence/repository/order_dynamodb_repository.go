package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"panaderia_api/internal/domain/entities"
	"panaderia_api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	ordersUserIDIndex = "userId-index"
	ordersStatusIndex = "status-index"
)

type orderLineItem struct {
	ProductID string            `dynamodbav:"productId"`
	Title     string            `dynamodbav:"title"`
	Quantity  int               `dynamodbav:"qty"`
	UnitPrice float64           `dynamodbav:"price"`
	Options   map[string]string `dynamodbav:"options,omitempty"`
	Image     string            `dynamodbav:"image,omitempty"`
}

type geoPointItem struct {
	Lat float64 `dynamodbav:"lat"`
	Lng float64 `dynamodbav:"lng"`
}

type addressItem struct {
	Street       string        `dynamodbav:"street"`
	Number       string        `dynamodbav:"number,omitempty"`
	Neighborhood string        `dynamodbav:"neighborhood,omitempty"`
	Municipality string        `dynamodbav:"municipality,omitempty"`
	State        string        `dynamodbav:"state,omitempty"`
	PostalCode   string        `dynamodbav:"postalCode,omitempty"`
	References   string        `dynamodbav:"references,omitempty"`
	Phone        string        `dynamodbav:"phone,omitempty"`
	Location     *geoPointItem `dynamodbav:"location,omitempty"`
}

type quoteItem struct {
	BranchID           string   `dynamodbav:"branchId,omitempty"`
	BranchName         string   `dynamodbav:"branchName,omitempty"`
	BranchMunicipality string   `dynamodbav:"branchMunicipality,omitempty"`
	DistanceKm         float64  `dynamodbav:"distanceKm"`
	Amount             int      `dynamodbav:"amount"`
	EarlyOnly          bool     `dynamodbav:"earlyOnly"`
	OutOfCoverage      bool     `dynamodbav:"outOfCoverage"`
	Notes              []string `dynamodbav:"notes"`
	ExpressFee         int      `dynamodbav:"expressFee"`
}

type totalsItem struct {
	Subtotal float64 `dynamodbav:"subtotal"`
	Shipping float64 `dynamodbav:"shipping"`
	Express  float64 `dynamodbav:"express"`
	Total    float64 `dynamodbav:"total"`
}

type mpPaymentItem struct {
	PaymentID         string  `dynamodbav:"paymentId"`
	Status            string  `dynamodbav:"status"`
	StatusDetail      string  `dynamodbav:"status_detail"`
	TransactionAmount float64 `dynamodbav:"transaction_amount"`
	CurrencyID        string  `dynamodbav:"currency_id"`
	DateApproved      string  `dynamodbav:"date_approved,omitempty"`
	PayerEmail        string  `dynamodbav:"payer_email,omitempty"`
}

type orderItem struct {
	ID            string          `dynamodbav:"id"`
	UserID        string          `dynamodbav:"userId"`
	UserEmail     string          `dynamodbav:"userEmail,omitempty"`
	Items         []orderLineItem `dynamodbav:"items"`
	Address       addressItem     `dynamodbav:"address"`
	Shipping      quoteItem       `dynamodbav:"shipping"`
	Express       bool            `dynamodbav:"express"`
	DeliverySlot  string          `dynamodbav:"deliverySlot,omitempty"`
	Totals        totalsItem      `dynamodbav:"totals"`
	PaymentMethod string          `dynamodbav:"paymentMethod"`
	Status        string          `dynamodbav:"status"`
	Provider      string          `dynamodbav:"provider,omitempty"`
	MP            *mpPaymentItem  `dynamodbav:"mp,omitempty"`
	CreatedAt     string          `dynamodbav:"createdAt"`
	UpdatedAt     string          `dynamodbav:"updatedAt"`
}

// OrderDynamoRepository persists Order entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: userId-index (PK: userId, SK: createdAt)
//   - GSI: status-index (PK: status, SK: createdAt)
type OrderDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
	now       func() time.Time
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client, tableName string) *OrderDynamoRepository {
	return newOrderRepository(ddb, tableName)
}

func newOrderRepository(ddb dynamoAPI, tableName string) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: tableName,
		now:       timeNow,
	}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return entities.Order{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}
	return unmarshalOrder(out.Item)
}

func (r *OrderDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Order, error) {
	return r.queryIndex(ctx, ordersUserIDIndex, "userId", userID)
}

func (r *OrderDynamoRepository) ListByStatus(ctx context.Context, status entities.OrderStatus) ([]entities.Order, error) {
	return r.queryIndex(ctx, ordersStatusIndex, "status", string(status))
}

// queryIndex returns every page, newest first.
func (r *OrderDynamoRepository) queryIndex(ctx context.Context, index, attr, value string) ([]entities.Order, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String("#k = :v"),
		ExpressionAttributeNames: map[string]string{
			"#k": attr,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
		ScanIndexForward: aws.Bool(false),
	})

	orders := make([]entities.Order, 0)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			o, err := unmarshalOrder(raw)
			if err != nil {
				return nil, err
			}
			orders = append(orders, o)
		}
	}
	return orders, nil
}

func (r *OrderDynamoRepository) ApplyPaymentUpdate(ctx context.Context, id string, update entities.PaymentUpdate, allowedFrom []entities.OrderStatus) (bool, entities.Order, error) {
	if len(allowedFrom) == 0 {
		return false, entities.Order{}, fmt.Errorf("apply payment update: empty allowed status set")
	}
	mp, err := attributevalue.Marshal(toMPPaymentItem(update.MP))
	if err != nil {
		return false, entities.Order{}, err
	}

	values := map[string]types.AttributeValue{
		":status":        &types.AttributeValueMemberS{Value: string(update.Status)},
		":provider":      &types.AttributeValueMemberS{Value: update.Provider},
		":paymentMethod": &types.AttributeValueMemberS{Value: string(update.PaymentMethod)},
		":mp":            mp,
		":updatedAt":     &types.AttributeValueMemberS{Value: formatTime(r.now())},
	}
	placeholders := make([]string, 0, len(allowedFrom))
	for i, s := range allowedFrom {
		ph := fmt.Sprintf(":from%d", i)
		placeholders = append(placeholders, ph)
		values[ph] = &types.AttributeValueMemberS{Value: string(s)}
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:    aws.String("SET #status = :status, #provider = :provider, #paymentMethod = :paymentMethod, #mp = :mp, #updatedAt = :updatedAt"),
		ConditionExpression: aws.String("attribute_exists(#id) AND #status IN (" + strings.Join(placeholders, ", ") + ")"),
		ExpressionAttributeNames: map[string]string{
			"#id":            "id",
			"#status":        "status",
			"#provider":      "provider",
			"#paymentMethod": "paymentMethod",
			"#mp":            "mp",
			"#updatedAt":     "updatedAt",
		},
		ExpressionAttributeValues:           values,
		ReturnValues:                        types.ReturnValueAllNew,
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	if err != nil {
		if cfe, ok := conditionFailed(err); ok {
			if len(cfe.Item) == 0 {
				return false, entities.Order{}, nil
			}
			current, uerr := unmarshalOrder(cfe.Item)
			return false, current, uerr
		}
		return false, entities.Order{}, err
	}
	o, err := unmarshalOrder(out.Attributes)
	return true, o, err
}

func (r *OrderDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #updatedAt = :updatedAt"
		vals := map[string]types.AttributeValue{
			":status":    &types.AttributeValueMemberS{Value: string(status)},
			":updatedAt": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":    "status",
			"#updatedAt": "updatedAt",
		}
		return expr, vals, names
	})
}

func (r *OrderDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Order, error) {
	updateExpr, values, names := build(formatTime(r.now()))

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if _, ok := conditionFailed(err); ok {
			return entities.Order{}, nil
		}
		return entities.Order{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Order{}, nil
	}
	return unmarshalOrder(out.Attributes)
}

func unmarshalOrder(raw map[string]types.AttributeValue) (entities.Order, error) {
	var it orderItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func toOrderItem(o entities.Order) orderItem {
	lines := make([]orderLineItem, 0, len(o.Items))
	for _, it := range o.Items {
		lines = append(lines, orderLineItem(it))
	}
	notes := o.Shipping.Notes
	if notes == nil {
		notes = []string{}
	}

	it := orderItem{
		ID:        o.ID,
		UserID:    o.UserID,
		UserEmail: o.UserEmail,
		Items:     lines,
		Address: addressItem{
			Street:       o.Address.Street,
			Number:       o.Address.Number,
			Neighborhood: o.Address.Neighborhood,
			Municipality: o.Address.Municipality,
			State:        o.Address.State,
			PostalCode:   o.Address.PostalCode,
			References:   o.Address.References,
			Phone:        o.Address.Phone,
		},
		Shipping: quoteItem{
			BranchID:           o.Shipping.BranchID,
			BranchName:         o.Shipping.BranchName,
			BranchMunicipality: o.Shipping.BranchMunicipality,
			DistanceKm:         o.Shipping.DistanceKm,
			Amount:             o.Shipping.Amount,
			EarlyOnly:          o.Shipping.EarlyOnly,
			OutOfCoverage:      o.Shipping.OutOfCoverage,
			Notes:              notes,
			ExpressFee:         o.Shipping.ExpressFee,
		},
		Express:       o.Express,
		DeliverySlot:  string(o.DeliverySlot),
		Totals:        totalsItem(o.Totals),
		PaymentMethod: string(o.PaymentMethod),
		Status:        string(o.Status),
		Provider:      o.Provider,
		CreatedAt:     formatTime(o.CreatedAt),
		UpdatedAt:     formatTime(o.UpdatedAt),
	}
	if o.Address.Location != nil {
		it.Address.Location = &geoPointItem{Lat: o.Address.Location.Lat, Lng: o.Address.Location.Lng}
	}
	if o.MP != nil {
		mp := toMPPaymentItem(*o.MP)
		it.MP = &mp
	}
	return it
}

func fromOrderItem(it orderItem) entities.Order {
	lines := make([]entities.OrderItem, 0, len(it.Items))
	for _, l := range it.Items {
		lines = append(lines, entities.OrderItem(l))
	}
	notes := it.Shipping.Notes
	if notes == nil {
		notes = []string{}
	}

	o := entities.Order{
		ID:        it.ID,
		UserID:    it.UserID,
		UserEmail: it.UserEmail,
		Items:     lines,
		Address: entities.ShippingAddress{
			Street:       it.Address.Street,
			Number:       it.Address.Number,
			Neighborhood: it.Address.Neighborhood,
			Municipality: it.Address.Municipality,
			State:        it.Address.State,
			PostalCode:   it.Address.PostalCode,
			References:   it.Address.References,
			Phone:        it.Address.Phone,
		},
		Shipping: entities.ShippingQuote{
			BranchID:           it.Shipping.BranchID,
			BranchName:         it.Shipping.BranchName,
			BranchMunicipality: it.Shipping.BranchMunicipality,
			DistanceKm:         it.Shipping.DistanceKm,
			Amount:             it.Shipping.Amount,
			EarlyOnly:          it.Shipping.EarlyOnly,
			OutOfCoverage:      it.Shipping.OutOfCoverage,
			Notes:              notes,
			ExpressFee:         it.Shipping.ExpressFee,
		},
		Express:       it.Express,
		DeliverySlot:  entities.DeliverySlot(it.DeliverySlot),
		Totals:        entities.OrderTotals(it.Totals),
		PaymentMethod: entities.PaymentMethod(it.PaymentMethod),
		Status:        entities.OrderStatus(it.Status),
		Provider:      it.Provider,
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
	if it.Address.Location != nil {
		o.Address.Location = &entities.GeoPoint{Lat: it.Address.Location.Lat, Lng: it.Address.Location.Lng}
	}
	if it.MP != nil {
		mp := entities.MPPayment(*it.MP)
		o.MP = &mp
	}
	return o
}

func toMPPaymentItem(p entities.MPPayment) mpPaymentItem {
	return mpPaymentItem(p)
}
