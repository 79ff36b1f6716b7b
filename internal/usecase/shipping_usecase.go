package usecase

import (
	"context"
	"errors"
	"fmt"
	"panaderia_api/internal/domain/entities"
	"panaderia_api/internal/domain/shipping"
	"panaderia_api/internal/usecase/interfaces"
	"strings"

	"github.com/rs/zerolog"
	"go.uber.org/multierr"
)

var (
	ErrInvalidBranch        = errors.New("invalid branch")
	ErrInvalidShippingRules = errors.New("invalid shipping rules")
)

// IShippingUseCase exposes the shipping calculator over the stored catalog and
// the admin operations that maintain it.
type IShippingUseCase interface {
	Quote(ctx context.Context, loc entities.CustomerLocation) (entities.ShippingQuote, error)
	ListBranches(ctx context.Context) ([]entities.Branch, error)
	GetRules(ctx context.Context) (entities.ShippingRules, error)
	PutRules(ctx context.Context, r entities.ShippingRules) (entities.ShippingRules, error)
	UpsertBranch(ctx context.Context, b entities.Branch) (entities.Branch, error)
}

type ShippingUseCase struct {
	branches interfaces.IBranchRepository
	rules    interfaces.IShippingRulesRepository
}

var (
	_ IShippingUseCase = (*ShippingUseCase)(nil)
	_ ShippingQuoter   = (*ShippingUseCase)(nil)
)

func NewShippingUseCase(branches interfaces.IBranchRepository, rules interfaces.IShippingRulesRepository) *ShippingUseCase {
	return &ShippingUseCase{branches: branches, rules: rules}
}

// Quote never fails on missing data: no coordinates, no branches or no stored
// rules all yield the neutral quote. Only storage errors are returned.
func (u *ShippingUseCase) Quote(ctx context.Context, loc entities.CustomerLocation) (entities.ShippingQuote, error) {
	if loc.Coordinates == nil {
		return shipping.NeutralQuote(), nil
	}
	branches, err := u.branches.List(ctx)
	if err != nil {
		return entities.ShippingQuote{}, fmt.Errorf("list branches: %w", err)
	}
	rules, err := u.rules.Get(ctx)
	if err != nil {
		return entities.ShippingQuote{}, fmt.Errorf("get shipping rules: %w", err)
	}

	q := shipping.Compute(loc, branches, rules)
	zerolog.Ctx(ctx).Debug().
		Str("component", "shipping.usecase").
		Str("branch_id", q.BranchID).
		Float64("distance_km", q.DistanceKm).
		Int("amount", q.Amount).
		Bool("early_only", q.EarlyOnly).
		Msg("quote computed")
	return q, nil
}

func (u *ShippingUseCase) ListBranches(ctx context.Context) ([]entities.Branch, error) {
	return u.branches.List(ctx)
}

func (u *ShippingUseCase) GetRules(ctx context.Context) (entities.ShippingRules, error) {
	r, err := u.rules.Get(ctx)
	if err != nil {
		return entities.ShippingRules{}, err
	}
	if r == nil {
		return entities.ShippingRules{MunicipalitiesFree: []string{}}.WithDefaults(), nil
	}
	return r.WithDefaults(), nil
}

func (u *ShippingUseCase) PutRules(ctx context.Context, r entities.ShippingRules) (entities.ShippingRules, error) {
	if err := ValidateShippingRules(r); err != nil {
		return entities.ShippingRules{}, err
	}
	r.MunicipalitiesFree = cleanMunicipalities(r.MunicipalitiesFree)
	saved, err := u.rules.Put(ctx, r)
	if err != nil {
		return entities.ShippingRules{}, err
	}
	zerolog.Ctx(ctx).Info().Str("component", "shipping.usecase").Msg("shipping rules replaced")
	return saved, nil
}

func (u *ShippingUseCase) UpsertBranch(ctx context.Context, b entities.Branch) (entities.Branch, error) {
	b.ID = strings.TrimSpace(b.ID)
	b.Name = strings.TrimSpace(b.Name)
	b.Municipality = strings.TrimSpace(b.Municipality)
	if err := ValidateBranch(b); err != nil {
		return entities.Branch{}, err
	}
	saved, err := u.branches.Upsert(ctx, b)
	if err != nil {
		return entities.Branch{}, err
	}
	zerolog.Ctx(ctx).Info().Str("component", "shipping.usecase").Str("branch_id", saved.ID).Msg("branch upserted")
	return saved, nil
}

// ValidateBranch collects every problem with b; the result matches ErrInvalidBranch.
func ValidateBranch(b entities.Branch) error {
	var err error
	if b.ID == "" {
		err = multierr.Append(err, fmt.Errorf("%w: id is required", ErrInvalidBranch))
	}
	if b.Name == "" {
		err = multierr.Append(err, fmt.Errorf("%w: name is required", ErrInvalidBranch))
	}
	if b.Location.Lat < -90 || b.Location.Lat > 90 {
		err = multierr.Append(err, fmt.Errorf("%w: lat out of range", ErrInvalidBranch))
	}
	if b.Location.Lng < -180 || b.Location.Lng > 180 {
		err = multierr.Append(err, fmt.Errorf("%w: lng out of range", ErrInvalidBranch))
	}
	if b.FreeRadiusKm < 0 || b.LowCostRadiusKm < 0 {
		err = multierr.Append(err, fmt.Errorf("%w: radii must be non-negative", ErrInvalidBranch))
	}
	if b.FreeRadiusKm > 0 && b.LowCostRadiusKm > 0 && b.LowCostRadiusKm < b.FreeRadiusKm {
		err = multierr.Append(err, fmt.Errorf("%w: lowCostRadiusKm must be >= freeRadiusKm", ErrInvalidBranch))
	}
	return err
}

func ValidateShippingRules(r entities.ShippingRules) error {
	var err error
	fields := []struct {
		name  string
		value float64
	}{
		{"basePerKm", r.BasePerKm},
		{"lowCostFlat", r.LowCostFlat},
		{"earlyOnlyAfterKm", r.EarlyOnlyAfterKm},
		{"maxDistanceKm", r.MaxDistanceKm},
		{"expressFee", r.ExpressFee},
	}
	for _, f := range fields {
		if f.value < 0 {
			err = multierr.Append(err, fmt.Errorf("%w: %s must be non-negative", ErrInvalidShippingRules, f.name))
		}
	}
	return err
}

func cleanMunicipalities(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, m := range in {
		m = strings.TrimSpace(m)
		key := shipping.NormalizeMunicipality(m)
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, m)
	}
	return out
}
