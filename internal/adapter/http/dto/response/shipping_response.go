package response

import "panaderia_api/internal/domain/entities"

type ShippingQuoteResponse struct {
	BranchID           string   `json:"branchId,omitempty"`
	BranchName         string   `json:"branchName,omitempty"`
	BranchMunicipality string   `json:"branchMunicipality,omitempty"`
	DistanceKm         float64  `json:"distanceKm"`
	Amount             int      `json:"amount"`
	EarlyOnly          bool     `json:"earlyOnly"`
	OutOfCoverage      bool     `json:"outOfCoverage"`
	Notes              []string `json:"notes"`
	ExpressFee         int      `json:"expressFee"`
}

func FromShippingQuote(q entities.ShippingQuote) ShippingQuoteResponse {
	notes := q.Notes
	if notes == nil {
		notes = []string{}
	}
	return ShippingQuoteResponse{
		BranchID:           q.BranchID,
		BranchName:         q.BranchName,
		BranchMunicipality: q.BranchMunicipality,
		DistanceKm:         q.DistanceKm,
		Amount:             q.Amount,
		EarlyOnly:          q.EarlyOnly,
		OutOfCoverage:      q.OutOfCoverage,
		Notes:              notes,
		ExpressFee:         q.ExpressFee,
	}
}

type BranchResponse struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Municipality    string            `json:"municipality"`
	Location        entities.GeoPoint `json:"location"`
	FreeRadiusKm    float64           `json:"freeRadiusKm"`
	LowCostRadiusKm float64           `json:"lowCostRadiusKm"`
}

func FromBranch(b entities.Branch) BranchResponse {
	return BranchResponse{
		ID:              b.ID,
		Name:            b.Name,
		Municipality:    b.Municipality,
		Location:        b.Location,
		FreeRadiusKm:    b.EffectiveFreeRadiusKm(),
		LowCostRadiusKm: b.EffectiveLowCostRadiusKm(),
	}
}

func FromBranches(branches []entities.Branch) []BranchResponse {
	out := make([]BranchResponse, 0, len(branches))
	for _, b := range branches {
		out = append(out, FromBranch(b))
	}
	return out
}

type ShippingRulesResponse struct {
	BasePerKm          float64  `json:"basePerKm"`
	LowCostFlat        float64  `json:"lowCostFlat"`
	EarlyOnlyAfterKm   float64  `json:"earlyOnlyAfterKm"`
	MaxDistanceKm      float64  `json:"maxDistanceKm"`
	ExpressFee         float64  `json:"expressFee"`
	MunicipalitiesFree []string `json:"municipalitiesFree"`
}

func FromShippingRules(r entities.ShippingRules) ShippingRulesResponse {
	r = r.WithDefaults()
	municipalities := r.MunicipalitiesFree
	if municipalities == nil {
		municipalities = []string{}
	}
	return ShippingRulesResponse{
		BasePerKm:          r.BasePerKm,
		LowCostFlat:        r.LowCostFlat,
		EarlyOnlyAfterKm:   r.EarlyOnlyAfterKm,
		MaxDistanceKm:      r.MaxDistanceKm,
		ExpressFee:         r.ExpressFee,
		MunicipalitiesFree: municipalities,
	}
}
