package interfaces

import (
	"context"
	"panaderia_api/internal/domain/entities"
)

// IBranchRepository abstracts persistence for the branch catalog.
type IBranchRepository interface {
	List(ctx context.Context) ([]entities.Branch, error)
	Upsert(ctx context.Context, b entities.Branch) (entities.Branch, error)
}

// IShippingRulesRepository abstracts persistence for the shipping rules singleton.
//
// Get returns nil when no rules were ever stored.
type IShippingRulesRepository interface {
	Get(ctx context.Context) (*entities.ShippingRules, error)
	Put(ctx context.Context, r entities.ShippingRules) (entities.ShippingRules, error)
}
