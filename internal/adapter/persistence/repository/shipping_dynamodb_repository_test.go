package repository

import (
	"context"
	"testing"

	"panaderia_api/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func TestBranchDynamoRepository_ListSortsByID(t *testing.T) {
	b2, _ := attributevalue.MarshalMap(toBranchItem(entities.Branch{ID: "b2", Name: "Norte"}))
	b1, _ := attributevalue.MarshalMap(toBranchItem(entities.Branch{ID: "b1", Name: "Centro", Location: entities.GeoPoint{Lat: 20.6, Lng: -103.3}}))
	fake := &fakeDynamo{scanPages: []*dynamodb.ScanOutput{
		{Items: []map[string]types.AttributeValue{b2}, LastEvaluatedKey: map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: "b2"}}},
		{Items: []map[string]types.AttributeValue{b1}},
	}}

	got, err := (&BranchDynamoRepository{ddb: fake, tableName: "branches"}).List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].ID != "b1" || got[1].ID != "b2" {
		t.Fatalf("expected branches sorted by id, got %+v", got)
	}
	if got[0].Location.Lat != 20.6 {
		t.Fatalf("expected location to survive storage, got %+v", got[0].Location)
	}
}

func TestBranchDynamoRepository_Upsert(t *testing.T) {
	fake := &fakeDynamo{}
	repo := &BranchDynamoRepository{ddb: fake, tableName: "branches"}

	if _, err := repo.Upsert(context.Background(), entities.Branch{ID: "b1", Name: "Centro"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fake.putIn.ConditionExpression != nil {
		t.Fatalf("upsert must not be conditional")
	}
	if fake.putIn.Item["name"].(*types.AttributeValueMemberS).Value != "Centro" {
		t.Fatalf("unexpected item %v", fake.putIn.Item)
	}
}

func TestShippingRulesDynamoRepository(t *testing.T) {
	t.Run("absent record is nil", func(t *testing.T) {
		r, err := newShippingRulesRepository(&fakeDynamo{}, "settings").Get(context.Background())
		if err != nil || r != nil {
			t.Fatalf("expected nil rules, got %+v err=%v", r, err)
		}
	})

	t.Run("put then get", func(t *testing.T) {
		fake := &fakeDynamo{}
		repo := newShippingRulesRepository(fake, "settings")
		repo.now = func() string { return "2026-03-01T12:00:00Z" }

		if _, err := repo.Put(context.Background(), entities.ShippingRules{BasePerKm: 10, MunicipalitiesFree: []string{"Zapopan"}}); err != nil {
			t.Fatalf("put failed: %v", err)
		}
		if fake.putIn.Item["id"].(*types.AttributeValueMemberS).Value != shippingRulesID {
			t.Fatalf("expected singleton id")
		}

		fake.getOut = &dynamodb.GetItemOutput{Item: fake.putIn.Item}
		got, err := repo.Get(context.Background())
		if err != nil || got == nil {
			t.Fatalf("get failed: %+v err=%v", got, err)
		}
		if got.BasePerKm != 10 || len(got.MunicipalitiesFree) != 1 {
			t.Fatalf("unexpected rules %+v", got)
		}
		if fake.getIn.Key["id"].(*types.AttributeValueMemberS).Value != shippingRulesID {
			t.Fatalf("expected singleton key")
		}
	})
}
