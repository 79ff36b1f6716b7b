package repository

import (
	"context"
	"sort"

	"panaderia_api/internal/domain/entities"
	"panaderia_api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const shippingRulesID = "shipping_rules"

type branchItem struct {
	ID              string       `dynamodbav:"id"`
	Name            string       `dynamodbav:"name"`
	Municipality    string       `dynamodbav:"municipality"`
	Location        geoPointItem `dynamodbav:"location"`
	FreeRadiusKm    float64      `dynamodbav:"freeRadiusKm"`
	LowCostRadiusKm float64      `dynamodbav:"lowCostRadiusKm"`
}

type shippingRulesItem struct {
	ID                 string   `dynamodbav:"id"`
	BasePerKm          float64  `dynamodbav:"basePerKm"`
	LowCostFlat        float64  `dynamodbav:"lowCostFlat"`
	EarlyOnlyAfterKm   float64  `dynamodbav:"earlyOnlyAfterKm"`
	MaxDistanceKm      float64  `dynamodbav:"maxDistanceKm"`
	ExpressFee         float64  `dynamodbav:"expressFee"`
	MunicipalitiesFree []string `dynamodbav:"municipalitiesFree"`
	UpdatedAt          string   `dynamodbav:"updatedAt"`
}

// BranchDynamoRepository persists the branch catalog.
//
// Table requirements:
//   - PK: id (string)
//
// The catalog is a handful of stores, so List scans the whole table.
type BranchDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IBranchRepository = (*BranchDynamoRepository)(nil)

func NewBranchDynamoRepository(ddb *dynamodb.Client, tableName string) *BranchDynamoRepository {
	return &BranchDynamoRepository{ddb: ddb, tableName: tableName}
}

// List returns branches ordered by id so nearest-branch ties resolve the same
// way on every request.
func (r *BranchDynamoRepository) List(ctx context.Context) ([]entities.Branch, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})

	branches := make([]entities.Branch, 0)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it branchItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			branches = append(branches, fromBranchItem(it))
		}
	}
	sort.SliceStable(branches, func(i, j int) bool { return branches[i].ID < branches[j].ID })
	return branches, nil
}

func (r *BranchDynamoRepository) Upsert(ctx context.Context, b entities.Branch) (entities.Branch, error) {
	av, err := attributevalue.MarshalMap(toBranchItem(b))
	if err != nil {
		return entities.Branch{}, err
	}
	if _, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}); err != nil {
		return entities.Branch{}, err
	}
	return b, nil
}

func toBranchItem(b entities.Branch) branchItem {
	return branchItem{
		ID:              b.ID,
		Name:            b.Name,
		Municipality:    b.Municipality,
		Location:        geoPointItem(b.Location),
		FreeRadiusKm:    b.FreeRadiusKm,
		LowCostRadiusKm: b.LowCostRadiusKm,
	}
}

func fromBranchItem(it branchItem) entities.Branch {
	return entities.Branch{
		ID:              it.ID,
		Name:            it.Name,
		Municipality:    it.Municipality,
		Location:        entities.GeoPoint(it.Location),
		FreeRadiusKm:    it.FreeRadiusKm,
		LowCostRadiusKm: it.LowCostRadiusKm,
	}
}

// ShippingRulesDynamoRepository keeps the rules singleton in the settings table
// under id "shipping_rules".
type ShippingRulesDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
	now       func() string
}

var _ interfaces.IShippingRulesRepository = (*ShippingRulesDynamoRepository)(nil)

func NewShippingRulesDynamoRepository(ddb *dynamodb.Client, tableName string) *ShippingRulesDynamoRepository {
	return newShippingRulesRepository(ddb, tableName)
}

func newShippingRulesRepository(ddb dynamoAPI, tableName string) *ShippingRulesDynamoRepository {
	return &ShippingRulesDynamoRepository{ddb: ddb, tableName: tableName, now: func() string { return formatTime(timeNow()) }}
}

func (r *ShippingRulesDynamoRepository) Get(ctx context.Context) (*entities.ShippingRules, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: shippingRulesID},
		},
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, nil
	}
	var it shippingRulesItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, err
	}
	rules := entities.ShippingRules{
		BasePerKm:          it.BasePerKm,
		LowCostFlat:        it.LowCostFlat,
		EarlyOnlyAfterKm:   it.EarlyOnlyAfterKm,
		MaxDistanceKm:      it.MaxDistanceKm,
		ExpressFee:         it.ExpressFee,
		MunicipalitiesFree: it.MunicipalitiesFree,
	}
	if rules.MunicipalitiesFree == nil {
		rules.MunicipalitiesFree = []string{}
	}
	return &rules, nil
}

func (r *ShippingRulesDynamoRepository) Put(ctx context.Context, rules entities.ShippingRules) (entities.ShippingRules, error) {
	if rules.MunicipalitiesFree == nil {
		rules.MunicipalitiesFree = []string{}
	}
	av, err := attributevalue.MarshalMap(shippingRulesItem{
		ID:                 shippingRulesID,
		BasePerKm:          rules.BasePerKm,
		LowCostFlat:        rules.LowCostFlat,
		EarlyOnlyAfterKm:   rules.EarlyOnlyAfterKm,
		MaxDistanceKm:      rules.MaxDistanceKm,
		ExpressFee:         rules.ExpressFee,
		MunicipalitiesFree: rules.MunicipalitiesFree,
		UpdatedAt:          r.now(),
	})
	if err != nil {
		return entities.ShippingRules{}, err
	}
	if _, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}); err != nil {
		return entities.ShippingRules{}, err
	}
	return rules, nil
}
